package browse

import (
	"slices"

	"github.com/samber/lo"
)

// PositionSet is a set of zero-based row positions within a page.
type PositionSet map[int]struct{}

// NewPositionSet returns a set holding the given positions.
func NewPositionSet(positions ...int) PositionSet {
	s := make(PositionSet, len(positions))
	for _, p := range positions {
		s[p] = struct{}{}
	}
	return s
}

// Has reports whether p is in the set. A nil set has no members.
func (s PositionSet) Has(p int) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of positions in the set.
func (s PositionSet) Len() int {
	return len(s)
}

// Sorted returns the positions in ascending order.
func (s PositionSet) Sorted() []int {
	keys := lo.Keys(s)
	slices.Sort(keys)
	return keys
}

// Clone returns an independent copy of the set.
func (s PositionSet) Clone() PositionSet {
	return lo.Assign(PositionSet{}, s)
}

// Union returns a new set holding the members of s and other. Neither
// input is modified.
func (s PositionSet) Union(other PositionSet) PositionSet {
	return lo.Assign(PositionSet{}, s, other)
}

// Equal reports whether both sets hold the same positions.
func (s PositionSet) Equal(other PositionSet) bool {
	if len(s) != len(other) {
		return false
	}
	for p := range s {
		if !other.Has(p) {
			return false
		}
	}
	return true
}
