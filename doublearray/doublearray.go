// Package doublearray converts a trie.Builder into a packed (base, check,
// data) triple: a byte-keyed transition table where `next = base[i] + b` is
// valid iff `check[next] == i`, plus an out-of-line data block holding each
// terminal's value list.
//
// The algorithm is a depth-first, LIFO walk of the trie, using a
// bitcache.BitCache to find, for each node's children, the smallest base
// offset at which none of the children's slots collide with an already
// placed transition.
package doublearray

import (
	"midomoji/bitcache"
	"midomoji/internal/errutil"
	"midomoji/trie"
)

// valueSentinel is the reserved byte value (255) used as the value-terminal
// marker: a synthetic child with this key records "this state has a value
// list". UTF-8 never produces 0xFF, so UTF-8 keys never collide with it.
const valueSentinel = 255

// minArraySize is the floor on initial (base, check) sizing.
const minArraySize = 256

// Stats reports the internal BitCache occupancy an Encode run left behind,
// for construction-quality diagnostics (cache bloat, start-window drift).
type Stats struct {
	Words            int
	SetBits          int
	StartWindowWords int
}

// Encode walks tb depth-first and returns the base/check/data arrays.
// data holds every inserted value, in the order each node's values were
// appended to the trie.
func Encode[T any](tb *trie.Builder[T]) (base []uint32, check []uint32, data []T, stats Stats, err error) {
	size := minArraySize
	if want := 4 * tb.ValueCount(); want > size {
		size = want
	}
	base = make([]uint32, size)
	check = make([]uint32, size)

	cache := bitcache.New()
	cache.Set(0)
	cache.Set(1)

	type frame struct {
		idx  int
		node *trie.Node[T]
	}
	stack := []frame{{idx: 1, node: tb.Root()}}

	grow := func(newSize int) {
		if newSize <= len(base) {
			return
		}
		grownBase := make([]uint32, newSize)
		grownCheck := make([]uint32, newSize)
		copy(grownBase, base)
		copy(grownCheck, check)
		base, check = grownBase, grownCheck
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cache.AdvanceStartWindow()

		children := top.node.Children
		if len(top.node.Values) > 0 {
			children = append(append([]*trie.Node[T]{}, children...), &trie.Node[T]{Key: valueSentinel})
		}
		if len(children) == 0 {
			// Only the root can legitimately have no children: a trie
			// with nothing ever inserted into it. Every other node on
			// the stack was reached because it lies on the path to at
			// least one inserted key, so it always has a child or a
			// value (and therefore a synthesized 255 terminal).
			if top.idx == 1 {
				base[top.idx] = 0
				continue
			}
			errutil.Bug("find_base called with no children and no value terminal at state %d", top.idx)
		}

		baseVal, err := findBase(children, cache)
		if err != nil {
			return nil, nil, nil, Stats{}, err
		}
		base[top.idx] = uint32(baseVal)

		if needed := baseVal + 255; needed >= len(base) {
			newSize := len(base) * 2
			for newSize <= needed {
				newSize *= 2
			}
			grow(newSize)
		}

		for _, c := range children {
			i := baseVal + int(c.Key)
			cache.Set(i)
			check[i] = uint32(top.idx)
			if c.Key == valueSentinel {
				dataOffset := len(data)
				values := top.node.Values
				encodedLen := len(values) & 0xFF
				base[i] = uint32(dataOffset<<8) | uint32(encodedLen)
				data = append(data, values...)
				continue
			}
			stack = append(stack, frame{idx: i, node: c})
		}
	}

	finalLen := minArraySize
	if last, ok := cache.LastSetIndex(); ok {
		finalLen = last + 256
	}
	if finalLen < len(base) {
		base = base[:finalLen]
		check = check[:finalLen]
	}

	words, setBits, startWindowWords := cache.Stats()
	stats = Stats{Words: words, SetBits: setBits, StartWindowWords: startWindowWords}
	return base, check, data, stats, nil
}

// findBase finds the smallest base offset such that every child in children
// lands on a currently-unoccupied slot: base_val + child.Key is free in
// cache for every child. children must be non-empty and sorted ascending
// by Key (the trie invariant guarantees this; the synthesized value
// sentinel is always appended last since 255 is the maximum byte).
func findBase[T any](children []*trie.Node[T], cache *bitcache.BitCache) (int, error) {
	if len(children) == 0 {
		return 0, errutil.InvalidInputFormat("find_base called with empty children")
	}
	firstKey := int(children[0].Key)
	offset := 0
	for {
		e := cache.FindEmpty(offset)
		candidate := e - firstKey
		// candidate must leave room for index 0 (unused); when the
		// probed empty slot sits below firstKey, no shift makes this
		// offset usable, so keep scanning forward.
		if candidate < 1 {
			offset++
			continue
		}
		collision := false
		for _, c := range children {
			if cache.Get(candidate + int(c.Key)) {
				collision = true
				break
			}
		}
		if !collision {
			return candidate, nil
		}
		offset++
	}
}
