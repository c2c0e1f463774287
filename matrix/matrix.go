// Package matrix builds and serves the left/right context-id connection
// cost table.
package matrix

import (
	"math"

	"github.com/bits-and-blooms/bitset"
)

// unknownID mirrors token.IsUnknownID without importing the token package,
// keeping matrix dependency-free of the token data model (it only knows
// about bare ids and costs).
const unknownID = math.MaxUint16

// Builder accumulates connection costs into a dense, row-major left_max x
// right_max table before serialization.
//
// Builder is single-owner, single-writer during its build phase.
type Builder struct {
	leftMax, rightMax int
	cells             []int16
	populated         *bitset.BitSet // tracks explicitly Set cells, for coverage diagnostics
}

// NewBuilder allocates a zero-filled leftMax x rightMax matrix.
func NewBuilder(leftMax, rightMax int) *Builder {
	return &Builder{
		leftMax:   leftMax,
		rightMax:  rightMax,
		cells:     make([]int16, leftMax*rightMax),
		populated: bitset.New(uint(leftMax * rightMax)),
	}
}

// Set records the connection cost for (leftID, rightID).
func (b *Builder) Set(leftID, rightID int, cost int16) {
	i := leftID*b.rightMax + rightID
	b.cells[i] = cost
	b.populated.Set(uint(i))
}

// Get returns the connection cost for (leftID, rightID).
func (b *Builder) Get(leftID, rightID int) int16 {
	return b.cells[leftID*b.rightMax+rightID]
}

// LeftMax and RightMax report the matrix dimensions.
func (b *Builder) LeftMax() int  { return b.leftMax }
func (b *Builder) RightMax() int { return b.rightMax }

// Cells returns the dense, row-major cost table for serialization.
func (b *Builder) Cells() []int16 { return b.cells }

// Coverage reports how many of the leftMax*rightMax cells were ever
// explicitly Set, for morphos-build's build-report line: a sparse matrix
// file likely left unreachable context-id pairs at the zero-cost default.
func (b *Builder) Coverage() (populated, total int) {
	return int(b.populated.Count()), len(b.cells)
}

// Cost looks up the connection cost over a read-only, possibly
// memory-mapped dense table (used by dictionary.Container, which does not
// keep a Builder around). Either id being the unknown-context sentinel
// returns math.MaxInt16.
func Cost(cells []int16, rightMax int, leftID, rightID uint16) int16 {
	if leftID == unknownID || rightID == unknownID {
		return math.MaxInt16
	}
	return cells[int(leftID)*rightMax+int(rightID)]
}
