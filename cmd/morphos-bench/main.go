// Command morphos-bench times the trie-build and double-array-encode
// phases over a lexicon and reports a memory-usage breakdown of the
// result.
package main

import (
	"flag"
	"fmt"
	"os"

	"midomoji/doublearray"
	"midomoji/internal/lexicon"
	"midomoji/internal/progress"
	"midomoji/token"
	"midomoji/trie"
	"midomoji/utils"
)

func main() {
	var lexPath = flag.String("lex", "", "path to the morpheme lexicon CSV to benchmark against")
	flag.Parse()
	if *lexPath == "" {
		fail("usage: morphos-bench -lex <LEX_PATH>")
	}

	timer := utils.NewTimer()

	timer.Start()
	lexFile, err := os.Open(*lexPath)
	if err != nil {
		fail("opening lexicon: %v", err)
	}
	entries, err := lexicon.ReadLexicon(lexFile)
	lexFile.Close()
	if err != nil {
		fail("reading lexicon: %v", err)
	}

	tb := trie.New[token.Token]()
	for _, e := range entries {
		if err := tb.Insert([]byte(e.Surface), e.Token); err != nil {
			fail("inserting %q: %v", e.Surface, err)
		}
	}
	timer.Stop()
	fmt.Printf("build trie complete (%s, %s)\n", timer, progress.Rate(len(entries), timer.Elapsed()))

	timer.Reset()
	timer.Start()
	base, check, data, stats, err := doublearray.Encode(tb)
	if err != nil {
		fail("encoding double array: %v", err)
	}
	timer.Stop()
	fmt.Printf("build double_array complete (%s, %s, cache %d words / %d bits set / start window %d words)\n",
		timer, progress.Rate(len(entries), timer.Elapsed()), stats.Words, stats.SetBits, stats.StartWindowWords)

	totalBytes := len(base)*4 + len(check)*4 + len(data)*token.Token{}.Size()
	report := utils.MemReport{
		Name:       "dictionary",
		TotalBytes: totalBytes,
		Children: []utils.MemReport{
			{Name: "base", TotalBytes: len(base) * 4},
			{Name: "check", TotalBytes: len(check) * 4},
			{Name: "data", TotalBytes: len(data) * token.Token{}.Size()},
		},
	}
	report.Print(0)
	fmt.Printf("in-memory dictionary size: %s\n", progress.Bytes(uint64(totalBytes)))
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
