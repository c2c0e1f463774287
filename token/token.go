// Package token defines the fixed-size morpheme token stored in the trie's
// value slots and threaded through the lattice.
package token

import "math"

// Token is the emission payload attached to every trie value and lattice
// node: a left/right context id pair plus a word cost. It packs to exactly
// 6 bytes, little-endian, with no implicit padding.
type Token struct {
	LeftID  uint16
	RightID uint16
	Cost    int16
}

// Size reports the fixed on-disk size of a Token in bytes. It satisfies the
// dictionary.Record constraint.
func (Token) Size() int { return 6 }

// unknownID is the sentinel left/right context id meaning "no known context".
const unknownID = math.MaxUint16

// BOSEOS is the sentinel token anchoring both ends of a lattice.
func BOSEOS() Token { return Token{LeftID: 0, RightID: 0, Cost: 0} }

// Unknown is the sentinel token injected for the minimal unknown-word policy.
func Unknown() Token { return Token{LeftID: unknownID, RightID: unknownID, Cost: math.MaxInt16} }

// IsUnknownID reports whether id is the reserved "unknown context" id used
// by the connection-cost matrix's unknown-id contract.
func IsUnknownID(id uint16) bool { return id == unknownID }
