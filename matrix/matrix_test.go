package matrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilder_SetGet(t *testing.T) {
	b := NewBuilder(3, 4)
	b.Set(1, 2, -57)
	require.Equal(t, int16(-57), b.Get(1, 2))
	require.Equal(t, int16(0), b.Get(0, 0))
}

func TestBuilder_Coverage(t *testing.T) {
	b := NewBuilder(2, 2)
	b.Set(0, 0, 1)
	b.Set(0, 1, 2)
	populated, total := b.Coverage()
	require.Equal(t, 2, populated)
	require.Equal(t, 4, total)
}

func TestCost_UnknownIDSentinel(t *testing.T) {
	b := NewBuilder(2, 2)
	b.Set(0, 0, 5)
	cost := Cost(b.Cells(), b.RightMax(), math.MaxUint16, 0)
	require.Equal(t, int16(math.MaxInt16), cost)

	cost = Cost(b.Cells(), b.RightMax(), 0, math.MaxUint16)
	require.Equal(t, int16(math.MaxInt16), cost)
}

func TestCost_RoundTripsWithBuilder(t *testing.T) {
	b := NewBuilder(4, 4)
	for l := 0; l < 4; l++ {
		for r := 0; r < 4; r++ {
			b.Set(l, r, int16(l*10+r))
		}
	}
	for l := uint16(0); l < 4; l++ {
		for r := uint16(0); r < 4; r++ {
			require.Equal(t, int16(int(l)*10+int(r)), Cost(b.Cells(), b.RightMax(), l, r))
		}
	}
}
