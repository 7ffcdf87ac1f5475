// Package constraint implements the per-cell candidate model and the
// propagate/invert inference routines that make up the core of the solver.
package constraint

import "math/bits"

// Candidates is a bitmask over the digits 1..9, stored in bits 1..9 of a
// uint16 (bit 0 is always unused). It is the systems-language rendering of
// a tile's "still possible" set.
type Candidates uint16

// AllCandidates returns the full 1..9 candidate set.
const AllCandidates Candidates = 0x3FE // bits 1..9

// NewCandidates builds a bitmask from a slice of digits.
func NewCandidates(digits []int) Candidates {
	var c Candidates
	for _, d := range digits {
		c = c.Set(d)
	}
	return c
}

// Has reports whether v is a member of the set.
func (c Candidates) Has(v int) bool {
	return c&(1<<uint(v)) != 0
}

// Set returns c with v added.
func (c Candidates) Set(v int) Candidates {
	return c | (1 << uint(v))
}

// Clear returns c with v removed.
func (c Candidates) Clear(v int) Candidates {
	return c &^ (1 << uint(v))
}

// Count returns the number of candidates still possible.
func (c Candidates) Count() int {
	return bits.OnesCount16(uint16(c))
}

// IsEmpty reports whether no candidate remains.
func (c Candidates) IsEmpty() bool {
	return c == 0
}

// Only returns the sole candidate and true if the set is a singleton.
func (c Candidates) Only() (int, bool) {
	if c.Count() != 1 {
		return 0, false
	}
	return bits.TrailingZeros16(uint16(c)), true
}

// ToSlice returns the candidates in ascending order.
func (c Candidates) ToSlice() []int {
	out := make([]int, 0, c.Count())
	for v := 1; v <= 9; v++ {
		if c.Has(v) {
			out = append(out, v)
		}
	}
	return out
}

// Intersect returns the set intersection of c and o.
func (c Candidates) Intersect(o Candidates) Candidates {
	return c & o
}

// Union returns the set union of c and o.
func (c Candidates) Union(o Candidates) Candidates {
	return c | o
}
