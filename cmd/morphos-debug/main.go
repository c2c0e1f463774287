// Command morphos-debug is an interactive inspection tool over a compiled
// dictionary: it reads lines from stdin and, depending on the chosen
// subcommand, dumps the raw lattice, the analyzed lattice with its best
// path, a direct trie lookup, or every prefix match.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"midomoji/dictionary"
	"midomoji/lattice"
	"midomoji/token"
	"midomoji/utils"
)

func main() {
	var dictPath = flag.String("dict", "", "path to a compiled dictionary file")
	flag.Parse()
	sub := flag.Arg(0)
	if *dictPath == "" || sub == "" {
		fail("usage: morphos-debug -dict <DICT_PATH> <build|analyze|search|prefix_search>")
	}

	dict, closer, err := dictionary.OpenMapped[token.Token](*dictPath)
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	sc := bufio.NewScanner(os.Stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	switch sub {
	case "build":
		for sc.Scan() {
			lat := lattice.Build(dict, identity, sc.Bytes())
			lat.Debug(os.Stdout)
		}
	case "analyze":
		for sc.Scan() {
			lat := lattice.Build(dict, identity, sc.Bytes())
			lattice.Analyze(lat, dict)
			lat.Debug(os.Stdout)
			fmt.Println("=== === === result === === ===")
			for _, node := range lat.BestPath() {
				fmt.Printf("(surface: %q, left_id: %d, right_id: %d, cost: %d, total_cost: %d)\n",
					node.Surface, node.Token.LeftID, node.Token.RightID, node.Token.Cost, node.TotalCost)
			}
		}
	case "search":
		for sc.Scan() {
			line := sc.Text()
			fmt.Println(line)
			if values, ok := dict.LookupTrie([]byte(line)); ok {
				for i, formatted := range utils.Map(values, formatToken) {
					fmt.Printf("|    %d: %s\n", i, formatted)
				}
			}
		}
	case "prefix_search":
		for sc.Scan() {
			line := sc.Text()
			for match := range dict.PrefixLookup([]byte(line)) {
				fmt.Println(line[:match.Len])
				for i, formatted := range utils.Map(match.Values, formatToken) {
					fmt.Printf("|    %d: %s\n", i, formatted)
				}
			}
		}
	default:
		fail("unknown subcommand: %s", sub)
	}
	if err := sc.Err(); err != nil {
		fail("reading stdin: %v", err)
	}
}

func identity(t token.Token) token.Token { return t }

func formatToken(t token.Token) string {
	return fmt.Sprintf("%+v", t)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
