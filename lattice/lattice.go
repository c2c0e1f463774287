// Package lattice builds the word lattice over an input byte string and
// runs forward Viterbi analysis over it to recover the minimum-cost
// segmentation. It is generalized over any dictionary.Container whose
// records embed enough of a Token to score, rather than a single built-in
// token type.
package lattice

import (
	"fmt"
	"io"
	"math"

	"midomoji/dictionary"
	"midomoji/token"
)

// edge is a back-pointer into a previous start-column node: (column, index).
type edge struct {
	col, idx int
	has      bool
}

// Node is one candidate morpheme occupying lattice column si (the node's
// start position among start-anchored columns), carrying its surface span,
// token, running best cost, and back-pointer.
type Node struct {
	Token     token.Token
	Surface   []byte
	TotalCost int64
	Prev      edge
}

// Lattice is the full start/end-anchored node grid built over one input
// byte string. start[i] holds every node beginning at byte offset i-1
// (column 0 is reserved for BOS); end[i] holds, for every node ending at
// byte offset i-1, a (start column, index) pointer back into start.
//
// Lattice is single-owner, single-writer: it has no internal locking.
type Lattice struct {
	bytes []byte
	start [][]Node
	end   [][]edge
}

// New allocates an empty lattice with exactly size columns. Build passes the
// input byte length plus 2, one extra column for BOS and one for EOS.
func New(size int) *Lattice {
	return &Lattice{
		start: make([][]Node, size),
		end:   make([][]edge, size),
	}
}

func (l *Lattice) setToken(idxStart, idxEnd int, surface []byte, tok token.Token) {
	idxStart++
	idxEnd++
	l.start[idxStart] = append(l.start[idxStart], Node{Token: tok, Surface: surface, TotalCost: math.MaxInt64, Prev: edge{has: true}})
	l.end[idxEnd] = append(l.end[idxEnd], edge{col: idxStart, idx: len(l.start[idxStart]) - 1, has: true})
}

func (l *Lattice) setTokens(idxStart, idxEnd int, surface []byte, toks []token.Token) {
	for _, t := range toks {
		l.setToken(idxStart, idxEnd, surface, t)
	}
}

func (l *Lattice) setBOSEOS() {
	l.start[0] = append(l.start[0], Node{Token: token.BOSEOS(), TotalCost: 0})
	l.end[1] = append(l.end[1], edge{col: 0, idx: 0, has: true})

	idxEOS := len(l.start) - 1
	l.start[idxEOS] = append(l.start[idxEOS], Node{Token: token.BOSEOS(), TotalCost: math.MaxInt64})
}

// unknownEndIndex classifies the UTF-8 lead byte at bytes[i] and returns the
// exclusive end offset of the minimal unknown-word span starting there, or
// ok=false if byte i is a continuation byte and should be skipped as a
// start position.
func unknownEndIndex(bytes []byte, i int) (end int, ok bool) {
	b := bytes[i]
	switch {
	case b&0b11111000 == 0b11110000:
		return i + 4, true
	case b&0b11110000 == 0b11100000:
		return i + 3, true
	case b&0b11100000 == 0b11000000:
		return i + 2, true
	case b&0b11000000 == 0b10000000:
		return 0, false
	default:
		return i + 1, true
	}
}

// Build walks dict over bytes and populates every lattice node reachable by
// either a dictionary match or the minimal unknown-word fallback. It does
// not run Viterbi; call Analyze next.
func Build[T dictionary.Record](dict *dictionary.Container[T], tokensOf func(T) token.Token, bytes []byte) *Lattice {
	l := New(len(bytes) + 2)
	idx := 1
	base := int(dict.Base[idx])

	l.setBOSEOS()

	for i := range bytes {
		end, ok := unknownEndIndex(bytes, i)
		if !ok {
			continue
		}
		if end > len(bytes) {
			end = len(bytes)
		}
		l.setToken(i, end, bytes[i:end], token.Unknown())

		for j, b := range bytes[i:] {
			next := base + int(b)
			if next >= len(dict.Check) || int(dict.Check[next]) != idx {
				break
			}
			idx = next
			base = int(dict.Base[idx])

			if values, ok := dict.LookupTrieAt(idx, base); ok {
				startIdx := i
				endIdx := i + j + 1
				toks := make([]token.Token, len(values))
				for k, v := range values {
					toks[k] = tokensOf(v)
				}
				l.setTokens(startIdx, endIdx, bytes[startIdx:endIdx], toks)
			}
		}
		idx = 1
		base = int(dict.Base[idx])
	}
	l.bytes = bytes
	return l
}

// Analyze runs forward Viterbi: every node's TotalCost becomes the minimum,
// over all edges ending at its start column, of (predecessor's TotalCost +
// this node's emission cost + the connection cost between them).
func Analyze[T dictionary.Record](l *Lattice, dict *dictionary.Container[T]) {
	for si := 1; si < len(l.start); si++ {
		for sj := range l.start[si] {
			node := &l.start[si][sj]
			leftID := node.Token.LeftID
			cost := int64(node.Token.Cost)
			for _, e := range l.end[si] {
				prev := &l.start[e.col][e.idx]
				rightID := prev.Token.RightID
				connCost := int64(dict.MatrixCost(leftID, rightID))
				total := prev.TotalCost + cost + connCost
				if total < node.TotalCost {
					node.TotalCost = total
					node.Prev = edge{col: e.col, idx: e.idx, has: true}
				}
			}
		}
	}
}

// BestPath walks back from the EOS node to BOS and returns the minimum-cost
// path, BOS first and EOS last.
func (l *Lattice) BestPath() []Node {
	var result []Node
	col, idx := len(l.start)-1, 0
	for {
		node := l.start[col][idx]
		result = append(result, node)
		if !node.Prev.has {
			break
		}
		col, idx = node.Prev.col, node.Prev.idx
	}
	// reverse into BOS-first order
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result
}

// Debug writes a column-by-column dump of every start/end node.
func (l *Lattice) Debug(w io.Writer) {
	for i := range l.start {
		fmt.Fprintf(w, "index: %d\n", i)
		for j, node := range l.start[i] {
			if j == 0 {
				fmt.Fprintln(w, "=== === === start === === ===")
			}
			fmt.Fprintf(w, "|    %s\n", formatNode(node))
		}
		for j, e := range l.end[i] {
			if j == 0 {
				fmt.Fprintln(w, "=== === === end === === ===")
			}
			fmt.Fprintf(w, "|    %s\n", formatNode(l.start[e.col][e.idx]))
		}
	}
}

func formatNode(n Node) string {
	return fmt.Sprintf(
		"(surface: %q, left_id: %d, right_id: %d, cost: %d, total_cost: %d, prev: %v)",
		n.Surface, n.Token.LeftID, n.Token.RightID, n.Token.Cost, n.TotalCost, n.Prev,
	)
}
