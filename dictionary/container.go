// Package dictionary defines the on-disk/mapped binary dictionary format
// and exposes zero-copy, read-only accessors over it.
//
// The format is a header followed by four concatenated raw little-endian
// blocks: base (uint32), check (uint32), data (T), matrix (int16). Container
// is safe for concurrent read-only use from multiple goroutines: it only
// ever reads the backing byte slice.
package dictionary

import (
	"fmt"
	"iter"
	"math"
	"unsafe"

	"midomoji/internal/errutil"
	"midomoji/matrix"
)

// Record is the constraint on the trie's out-of-line value type: fixed
// size, comparable, and trivially reinterpretable as raw bytes on the
// target platform.
type Record interface {
	comparable
	Size() int
}

const valueSentinel = 255
const unknownID = math.MaxUint16

// Container is a read-only view over a built dictionary's bytes, typically
// a memory-mapped file. The byte slice passed to Open must outlive the
// Container.
type Container[T Record] struct {
	header Header
	Base   []uint32
	Check  []uint32
	Data   []T
	Matrix []int16
}

// Open reinterprets bytes (typically a memory-mapped file) as a Container.
// This is the one unsafe seam in the package; everything downstream of it
// works with typed slices.
func Open[T Record](bytes []byte) (*Container[T], error) {
	if len(bytes) < HeaderSize {
		return nil, errutil.IOError("dictionary file too small: %d bytes", len(bytes))
	}
	h := decodeHeader(bytes[:HeaderSize])

	var zero T
	if unsafe.Sizeof(zero) != uintptr(zero.Size()) {
		errutil.Bug("Record.Size() %d does not match unsafe.Sizeof %d for %T", zero.Size(), unsafe.Sizeof(zero), zero)
	}

	base, err := reinterpret[uint32](bytes, h.BaseOff, h.BaseLen)
	if err != nil {
		return nil, err
	}
	check, err := reinterpret[uint32](bytes, h.CheckOff, h.CheckLen)
	if err != nil {
		return nil, err
	}
	data, err := reinterpret[T](bytes, h.DataOff, h.DataLen)
	if err != nil {
		return nil, err
	}
	matrixCells, err := reinterpret[int16](bytes, h.MatrixOff, h.MatrixLen)
	if err != nil {
		return nil, err
	}

	return &Container[T]{
		header: h,
		Base:   base,
		Check:  check,
		Data:   data,
		Matrix: matrixCells,
	}, nil
}

// reinterpret casts bytes[off : off+count*sizeof(E)] into a typed slice
// without copying.
func reinterpret[E any](bytes []byte, off, count uint64) ([]E, error) {
	if count == 0 {
		return nil, nil
	}
	var zero E
	elemSize := uint64(unsafe.Sizeof(zero))
	end := off + count*elemSize
	if end > uint64(len(bytes)) || off > uint64(len(bytes)) {
		return nil, errutil.IOError("dictionary block out of range: off=%d count=%d len=%d", off, count, len(bytes))
	}
	ptr := unsafe.Pointer(&bytes[off])
	return unsafe.Slice((*E)(ptr), count), nil
}

// LookupTrie walks the double array from the root consuming key, and
// returns the terminal's value slice iff key has one.
func (c *Container[T]) LookupTrie(key []byte) ([]T, bool) {
	idx := 1
	base := int(c.Base[idx])
	for _, b := range key {
		next := base + int(b)
		if next >= len(c.Check) || int(c.Check[next]) != idx {
			return nil, false
		}
		idx = next
		base = int(c.Base[idx])
	}
	return c.valueAt(idx, base)
}

// LookupTrieAt checks for a value terminal at an already-resolved state
// (idx, base), as produced by a caller walking the double array itself
// (lattice.Build interleaves dictionary matching with its own unknown-word
// bookkeeping, so it cannot simply call LookupTrie per substring).
func (c *Container[T]) LookupTrieAt(idx, base int) ([]T, bool) {
	return c.valueAt(idx, base)
}

// valueAt checks for a value terminal at state idx (whose base offset is
// base) and, if present, returns its data slice.
func (c *Container[T]) valueAt(idx, base int) ([]T, bool) {
	v := base + valueSentinel
	if v >= len(c.Check) || int(c.Check[v]) != idx {
		return nil, false
	}
	dataIdx := int(c.Base[v] >> 8)
	dataLen := int(c.Base[v] & 0xFF)
	if dataLen == 0 {
		// len==256 is stored as 0; the value-terminal presence check
		// above already proved this state carries a value list, so an
		// encoded 0 always means 256, never "no values".
		dataLen = 256
	}
	if dataIdx+dataLen > len(c.Data) {
		return nil, false
	}
	return c.Data[dataIdx : dataIdx+dataLen], true
}

// PrefixMatch is one (prefix_len, values) pair yielded by PrefixLookup.
type PrefixMatch[T Record] struct {
	Len    int
	Values []T
}

// PrefixLookup walks the double array along key and yields, for every
// prefix of key that is itself an inserted key, its length and value
// slice, in ascending length order. It stops at the first failed
// transition.
func (c *Container[T]) PrefixLookup(key []byte) iter.Seq[PrefixMatch[T]] {
	return func(yield func(PrefixMatch[T]) bool) {
		idx := 1
		base := int(c.Base[idx])
		for i, b := range key {
			next := base + int(b)
			if next >= len(c.Check) || int(c.Check[next]) != idx {
				return
			}
			idx = next
			base = int(c.Base[idx])
			if values, ok := c.valueAt(idx, base); ok {
				if !yield(PrefixMatch[T]{Len: i + 1, Values: values}) {
					return
				}
			}
		}
	}
}

// MatrixCost returns the connection cost for (leftID, rightID). Either id
// equal to the unknown-context sentinel returns math.MaxInt16.
func (c *Container[T]) MatrixCost(leftID, rightID uint16) int16 {
	return matrix.Cost(c.Matrix, int(c.header.MatrixRightMax), leftID, rightID)
}

// MatrixDims reports the matrix's (left_max, right_max).
func (c *Container[T]) MatrixDims() (leftMax, rightMax int) {
	return int(c.header.MatrixLeftMax), int(c.header.MatrixRightMax)
}

// String renders the header for debugging.
func (h Header) String() string {
	return fmt.Sprintf(
		"base_off=%d check_off=%d data_off=%d matrix_off=%d base_len=%d check_len=%d data_len=%d matrix_len=%d matrix=%dx%d",
		h.BaseOff, h.CheckOff, h.DataOff, h.MatrixOff, h.BaseLen, h.CheckLen, h.DataLen, h.MatrixLen, h.MatrixLeftMax, h.MatrixRightMax,
	)
}

// Header returns the dictionary's parsed header, for inspection tooling.
func (c *Container[T]) Header() Header { return c.header }
