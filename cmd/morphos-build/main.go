// Command morphos-build compiles a CSV lexicon and a whitespace-delimited
// connection-cost matrix into a single binary dictionary file.
package main

import (
	"flag"
	"fmt"
	"os"

	"midomoji/dictionary"
	"midomoji/doublearray"
	"midomoji/internal/lexicon"
	"midomoji/internal/progress"
	"midomoji/matrix"
	"midomoji/token"
	"midomoji/trie"
	"midomoji/utils"
)

func main() {
	var (
		lexPath    = flag.String("lex", "", "path to the morpheme lexicon CSV (surface,left_id,right_id,cost)")
		matrixPath = flag.String("matrix", "", "path to the connection-cost matrix file")
		outPath    = flag.String("output", "", "path to write the compiled dictionary to")
		verbose    = flag.Bool("v", false, "print a memory-usage report after build")
	)
	flag.Parse()
	if *lexPath == "" || *matrixPath == "" || *outPath == "" {
		fail("usage: morphos-build -lex <LEX_PATH> -matrix <MATRIX_PATH> -output <OUTPUT_PATH>")
	}

	timer := utils.NewTimer()

	timer.Start()
	matrixFile, err := os.Open(*matrixPath)
	if err != nil {
		fail("opening matrix file: %v", err)
	}
	dims, cells, err := lexicon.ReadMatrix(matrixFile)
	matrixFile.Close()
	if err != nil {
		fail("reading matrix file: %v", err)
	}
	mb := matrix.NewBuilder(dims.LeftMax, dims.RightMax)
	for _, c := range cells {
		mb.Set(c.LeftID, c.RightID, c.Cost)
	}
	timer.Stop()
	populated, total := mb.Coverage()
	fmt.Printf("build matrix complete (%s, %d/%d cells populated)\n", timer, populated, total)

	timer.Reset()
	timer.Start()
	lexFile, err := os.Open(*lexPath)
	if err != nil {
		fail("opening lexicon file: %v", err)
	}
	entries, err := lexicon.ReadLexicon(lexFile)
	lexFile.Close()
	if err != nil {
		fail("reading lexicon file: %v", err)
	}

	tb := trie.New[token.Token]()
	bar := progress.New(os.Stderr, len(entries), "trie")
	for _, e := range entries {
		if err := tb.Insert([]byte(e.Surface), e.Token); err != nil {
			fail("inserting %q: %v", e.Surface, err)
		}
		bar.Add(1)
	}
	bar.Finish()
	timer.Stop()
	fmt.Printf("build trie complete (%s, %s)\n", timer, progress.Rate(len(entries), timer.Elapsed()))

	timer.Reset()
	timer.Start()
	base, check, data, stats, err := doublearray.Encode(tb)
	if err != nil {
		fail("encoding double array: %v", err)
	}
	timer.Stop()
	fmt.Printf("build double array complete (%s, cache %d words / %d bits set / start window %d words)\n",
		timer, stats.Words, stats.SetBits, stats.StartWindowWords)

	timer.Reset()
	timer.Start()
	if err := dictionary.Serialize(*outPath, base, check, data, mb); err != nil {
		fail("serializing dictionary: %v", err)
	}
	timer.Stop()
	outInfo, err := os.Stat(*outPath)
	if err != nil {
		fail("statting output file: %v", err)
	}
	fmt.Printf("serialize dictionary complete (%s, %s)\n", timer, progress.Bytes(uint64(outInfo.Size())))

	if *verbose {
		report := utils.MemReport{
			Name:       "dictionary",
			TotalBytes: len(base)*4 + len(check)*4 + len(data)*token.Token{}.Size(),
			Children: []utils.MemReport{
				{Name: "base", TotalBytes: len(base) * 4},
				{Name: "check", TotalBytes: len(check) * 4},
				{Name: "data", TotalBytes: len(data) * token.Token{}.Size()},
			},
		}
		report.Print(0)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
