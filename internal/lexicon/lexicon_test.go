package lexicon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadLexicon(t *testing.T) {
	csv := "すもも,1,2,100\nもも,3,4,-50\n"
	entries, err := ReadLexicon(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "すもも", entries[0].Surface)
	require.Equal(t, uint16(1), entries[0].Token.LeftID)
	require.Equal(t, uint16(2), entries[0].Token.RightID)
	require.Equal(t, int16(100), entries[0].Token.Cost)
	require.Equal(t, int16(-50), entries[1].Token.Cost)
}

func TestReadLexicon_InvalidField(t *testing.T) {
	_, err := ReadLexicon(strings.NewReader("word,notanumber,2,3\n"))
	require.Error(t, err)
}

func TestReadLexicon_WrongFieldCount(t *testing.T) {
	_, err := ReadLexicon(strings.NewReader("word,1,2\n"))
	require.Error(t, err)
}

func TestReadMatrix(t *testing.T) {
	data := "2 3\n0 0 10\n0 1 20\n1 2 -30\n"
	dims, cells, err := ReadMatrix(strings.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, MatrixDims{LeftMax: 2, RightMax: 3}, dims)
	require.Len(t, cells, 3)
	require.Equal(t, MatrixCell{LeftID: 1, RightID: 2, Cost: -30}, cells[2])
}

func TestReadMatrix_EmptyFile(t *testing.T) {
	_, _, err := ReadMatrix(strings.NewReader(""))
	require.Error(t, err)
}

func TestReadMatrix_BadRow(t *testing.T) {
	_, _, err := ReadMatrix(strings.NewReader("2 2\n0 0\n"))
	require.Error(t, err)
}

func TestReadMatrix_SkipsBlankLines(t *testing.T) {
	data := "1 1\n\n0 0 5\n\n"
	_, cells, err := ReadMatrix(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, cells, 1)
}
