// Command morphos-analyze reads lines from stdin (or -input), segments each
// against a compiled dictionary, and prints the recovered surfaces one per
// line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"midomoji/dictionary"
	"midomoji/lattice"
	"midomoji/token"
)

func main() {
	var (
		dictPath  = flag.String("dict", "", "path to a compiled dictionary file")
		inputPath = flag.String("input", "", "path to read input lines from (default: stdin)")
	)
	flag.Parse()
	if *dictPath == "" {
		fail("usage: morphos-analyze -dict <DICT_PATH> [-input <INPUT_PATH>]")
	}

	dict, closer, err := dictionary.OpenMapped[token.Token](*dictPath)
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	var in io.Reader = os.Stdin
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			fail("opening input file: %v", err)
		}
		defer f.Close()
		in = f
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Bytes()
		lat := lattice.Build(dict, identity, line)
		lattice.Analyze(lat, dict)
		path := lat.BestPath()
		for _, node := range path[1 : len(path)-1] {
			out.Write(node.Surface)
			out.WriteByte('\n')
		}
	}
	if err := sc.Err(); err != nil {
		fail("reading input: %v", err)
	}
}

func identity(t token.Token) token.Token { return t }

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
