package bitcache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitCache_SetGet(t *testing.T) {
	c := New()
	require.False(t, c.Get(0))
	c.Set(0)
	require.True(t, c.Get(0))
	require.False(t, c.Get(1))

	c.Set(200)
	require.True(t, c.Get(200))
	require.False(t, c.Get(199))
	require.False(t, c.Get(201))
}

func TestBitCache_FindEmpty(t *testing.T) {
	c := New()
	require.Equal(t, 0, c.FindEmpty(0))

	c.Set(0)
	c.Set(1)
	c.Set(2)
	require.Equal(t, 3, c.FindEmpty(0))

	c.Set(3)
	c.Set(5)
	require.Equal(t, 4, c.FindEmpty(0))
}

func TestBitCache_FindEmptyExhaustsMaterializedRange(t *testing.T) {
	c := New()
	c.Set(63)
	for i := 0; i <= 63; i++ {
		c.Set(i)
	}
	require.Equal(t, 64, c.FindEmpty(0))
}

func TestBitCache_LastSetIndex(t *testing.T) {
	c := New()
	_, ok := c.LastSetIndex()
	require.False(t, ok)

	c.Set(10)
	c.Set(5)
	idx, ok := c.LastSetIndex()
	require.True(t, ok)
	require.Equal(t, 10, idx)

	c.Set(500)
	idx, ok = c.LastSetIndex()
	require.True(t, ok)
	require.Equal(t, 500, idx)
}

func TestBitCache_AdvanceStartWindow(t *testing.T) {
	c := New()
	for i := 0; i < 60; i++ {
		c.Set(i)
	}
	c.AdvanceStartWindow()
	_, _, startWindowWords := c.Stats()
	require.Equal(t, 1, startWindowWords)

	// a bit below the start window is still reported Set: the window never
	// hides bits, it only biases where FindEmpty starts scanning.
	require.True(t, c.Get(5))
}

func TestBitCache_Stats(t *testing.T) {
	c := New()
	c.Set(0)
	c.Set(64)
	c.Set(65)
	words, setBits, _ := c.Stats()
	require.Equal(t, 2, words)
	require.Equal(t, 3, setBits)
}
