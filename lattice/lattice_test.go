package lattice

import (
	"testing"

	"github.com/stretchr/testify/require"

	"midomoji/dictionary"
	"midomoji/doublearray"
	"midomoji/matrix"
	"midomoji/token"
	"midomoji/trie"
)

func buildDict(t *testing.T, words map[string]token.Token, matrixCosts map[[2]uint16]int16) *dictionary.Container[token.Token] {
	t.Helper()
	tb := trie.New[token.Token]()
	for w, tok := range words {
		require.NoError(t, tb.Insert([]byte(w), tok))
	}
	base, check, data, _, err := doublearray.Encode(tb)
	require.NoError(t, err)

	mb := matrix.NewBuilder(4, 4)
	for k, cost := range matrixCosts {
		mb.Set(int(k[0]), int(k[1]), cost)
	}

	// Round-trip through Open so the lattice walks exactly the
	// representation morphos-analyze would (zero-copy over typed slices,
	// not the trie.Builder it was constructed from).
	path, c := serializeAndOpen(t, base, check, data, mb)
	_ = path
	return c
}

func serializeAndOpen(t *testing.T, base, check []uint32, data []token.Token, mb *matrix.Builder) (string, *dictionary.Container[token.Token]) {
	t.Helper()
	path := t.TempDir() + "/dict.bin"
	require.NoError(t, dictionary.Serialize(path, base, check, data, mb))
	c, closer, err := dictionary.OpenMapped[token.Token](path)
	require.NoError(t, err)
	t.Cleanup(func() { closer.Close() })
	return path, c
}

func identity(t token.Token) token.Token { return t }

func TestLattice_BestPath_PrefersLowerCost(t *testing.T) {
	// Two segmentations of "abcd": ["ab","cd"] vs ["a","b","c","d"] (unknown
	// fallback). The dictionary path must win when its total cost is lower.
	words := map[string]token.Token{
		"ab": {LeftID: 1, RightID: 1, Cost: 10},
		"cd": {LeftID: 1, RightID: 1, Cost: 10},
	}
	costs := map[[2]uint16]int16{
		{0, 0}: 0,
		{0, 1}: 0,
		{1, 0}: 0,
		{1, 1}: 0,
	}
	dict := buildDict(t, words, costs)

	lat := Build(dict, identity, []byte("abcd"))
	Analyze(lat, dict)
	path := lat.BestPath()

	var surfaces []string
	for _, n := range path[1 : len(path)-1] {
		surfaces = append(surfaces, string(n.Surface))
	}
	require.Equal(t, []string{"ab", "cd"}, surfaces)
}

func TestLattice_UnknownWordFallback(t *testing.T) {
	dict := buildDict(t, map[string]token.Token{}, nil)

	lat := Build(dict, identity, []byte("x"))
	Analyze(lat, dict)
	path := lat.BestPath()

	require.Len(t, path, 3) // bos, one unknown node, eos
	require.Equal(t, "x", string(path[1].Surface))
}

func TestLattice_MultibyteUnknownWordSizing(t *testing.T) {
	dict := buildDict(t, map[string]token.Token{}, nil)

	// "あ" is U+3042, a 3-byte UTF-8 character.
	surface := "あ"
	lat := Build(dict, identity, []byte(surface))
	Analyze(lat, dict)
	path := lat.BestPath()

	require.Len(t, path, 3)
	require.Equal(t, surface, string(path[1].Surface))
}

func TestLattice_DictionaryMatchBeatsUnknownFallback(t *testing.T) {
	words := map[string]token.Token{
		"x": {LeftID: 1, RightID: 1, Cost: -100},
	}
	costs := map[[2]uint16]int16{{0, 1}: 0, {1, 0}: 0}
	dict := buildDict(t, words, costs)

	lat := Build(dict, identity, []byte("x"))
	Analyze(lat, dict)
	path := lat.BestPath()

	require.Len(t, path, 3)
	require.Equal(t, uint16(1), path[1].Token.LeftID)
}
