// Command morphos-verify rebuilds an independent reference lookup index
// from the same lexicon used to build a dictionary (a
// github.com/hashicorp/go-immutable-radix tree, rather than the
// double-array under test) and cross-checks every entry: the dictionary's
// LookupTrie must return exactly what the lexicon says, for every surface
// form the lexicon defines.
package main

import (
	"flag"
	"fmt"
	"os"

	iradix "github.com/hashicorp/go-immutable-radix"

	"midomoji/dictionary"
	"midomoji/internal/lexicon"
	"midomoji/internal/progress"
	"midomoji/token"
)

func main() {
	var (
		lexPath    = flag.String("lex", "", "path to the morpheme lexicon CSV used to build -dict")
		matrixPath = flag.String("matrix", "", "path to the connection-cost matrix file used to build -dict")
		dictPath   = flag.String("dict", "", "path to the compiled dictionary file to verify")
		showSample = flag.Int("sample", 5, "number of mismatches to print in detail before stopping")
	)
	flag.Parse()
	if *lexPath == "" || *matrixPath == "" || *dictPath == "" {
		fail("usage: morphos-verify -lex <LEX_PATH> -matrix <MATRIX_PATH> -dict <DICT_PATH>")
	}

	lexFile, err := os.Open(*lexPath)
	if err != nil {
		fail("opening lexicon: %v", err)
	}
	entries, err := lexicon.ReadLexicon(lexFile)
	lexFile.Close()
	if err != nil {
		fail("reading lexicon: %v", err)
	}

	reference := iradix.New()
	want := make(map[string][]token.Token, len(entries))
	for _, e := range entries {
		want[e.Surface] = append(want[e.Surface], e.Token)
	}
	for surface := range want {
		reference, _, _ = reference.Insert([]byte(surface), want[surface])
	}

	dict, closer, err := dictionary.OpenMapped[token.Token](*dictPath)
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	matrixFile, err := os.Open(*matrixPath)
	if err != nil {
		fail("opening matrix: %v", err)
	}
	_, cells, err := lexicon.ReadMatrix(matrixFile)
	matrixFile.Close()
	if err != nil {
		fail("reading matrix: %v", err)
	}
	matrixMismatches := 0
	for _, c := range cells {
		got := dict.MatrixCost(uint16(c.LeftID), uint16(c.RightID))
		if got != c.Cost {
			matrixMismatches++
			if matrixMismatches <= *showSample {
				fmt.Printf("MATRIX MISMATCH: left_id=%d right_id=%d cost(file)=%d cost(dict)=%d\n", c.LeftID, c.RightID, c.Cost, got)
			}
		}
	}
	fmt.Printf("checked %d matrix cells, %d mismatches\n", len(cells), matrixMismatches)

	bar := progress.New(os.Stderr, reference.Len(), "verify")
	mismatches := 0
	reference.Root().Walk(func(key []byte, v interface{}) bool {
		surface := string(key)
		expected := v.([]token.Token)
		got, ok := dict.LookupTrie(key)
		switch {
		case !ok:
			mismatches++
			if mismatches <= *showSample {
				fmt.Printf("MISSING: %q expected %d entries, dictionary has none\n", surface, len(expected))
			}
		case !tokensEqual(got, expected):
			mismatches++
			if mismatches <= *showSample {
				fmt.Printf("MISMATCH: %q expected %v, got %v\n", surface, expected, got)
			}
		}
		bar.Add(1)
		return false
	})
	bar.Finish()

	refCount := reference.Len()
	fmt.Printf("reference index holds %d distinct surfaces\n", refCount)
	fmt.Printf("checked %d surfaces, %d mismatches\n", len(want), mismatches)
	if mismatches > 0 || matrixMismatches > 0 {
		os.Exit(1)
	}
}

func tokensEqual(a, b []token.Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
