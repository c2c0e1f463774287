package trie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilder_InsertLookup(t *testing.T) {
	tb := New[int]()
	require.NoError(t, tb.Insert([]byte("a"), 1))
	require.NoError(t, tb.Insert([]byte("ab"), 2))
	require.NoError(t, tb.Insert([]byte("abc"), 3))
	require.NoError(t, tb.Insert([]byte("b"), 4))

	values, ok := tb.Lookup([]byte("a"))
	require.True(t, ok)
	require.Equal(t, []int{1}, values)

	values, ok = tb.Lookup([]byte("ab"))
	require.True(t, ok)
	require.Equal(t, []int{2}, values)

	_, ok = tb.Lookup([]byte("abcd"))
	require.False(t, ok)

	_, ok = tb.Lookup([]byte("c"))
	require.False(t, ok)
}

func TestBuilder_MultipleValuesPerKey(t *testing.T) {
	tb := New[string]()
	require.NoError(t, tb.Insert([]byte("key"), "first"))
	require.NoError(t, tb.Insert([]byte("key"), "second"))

	values, ok := tb.Lookup([]byte("key"))
	require.True(t, ok)
	require.Equal(t, []string{"first", "second"}, values)
}

func TestBuilder_CapacityExceeded(t *testing.T) {
	tb := New[int]()
	for i := 0; i < MaxValuesPerKey; i++ {
		require.NoError(t, tb.Insert([]byte("k"), i))
	}
	err := tb.Insert([]byte("k"), MaxValuesPerKey)
	require.Error(t, err)
}

func TestBuilder_ChildrenStaySorted(t *testing.T) {
	tb := New[int]()
	keys := []byte{'z', 'a', 'm', 'b', 'y', 'c'}
	for i, k := range keys {
		require.NoError(t, tb.Insert([]byte{k}, i))
	}
	root := tb.Root()
	for i := 1; i < len(root.Children); i++ {
		require.Less(t, root.Children[i-1].Key, root.Children[i].Key)
	}
}

func TestBuilder_EmptyTrie(t *testing.T) {
	tb := New[int]()
	_, ok := tb.Lookup([]byte("anything"))
	require.False(t, ok)
	require.Equal(t, 0, tb.ValueCount())
}
