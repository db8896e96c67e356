package paths

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/stairpath/pkg/errors"
)

// Moves is an immutable set of allowed move sizes, kept sorted.
type Moves struct {
	sizes []uint
}

// NewMoves builds a move set. Duplicates are dropped; a zero size is an
// ErrCodeInvalidInput error. An empty set is valid and admits no walk longer
// than zero steps.
func NewMoves(sizes ...uint) (Moves, error) {
	s := slices.Clone(sizes)
	slices.Sort(s)
	s = slices.Compact(s)
	if len(s) > 0 && s[0] == 0 {
		return Moves{}, errors.New(errors.ErrCodeInvalidInput, "move sizes must be positive")
	}
	return Moves{sizes: s}, nil
}

// MustMoves is like NewMoves but panics on error.
func MustMoves(sizes ...uint) Moves {
	m, err := NewMoves(sizes...)
	if err != nil {
		panic(err)
	}
	return m
}

// Sizes returns the move sizes in increasing order.
func (m Moves) Sizes() []uint { return slices.Clone(m.sizes) }

// Len returns the number of distinct move sizes.
func (m Moves) Len() int { return len(m.sizes) }

// Max returns the largest move size, or 0 for an empty set.
func (m Moves) Max() uint {
	if len(m.sizes) == 0 {
		return 0
	}
	return m.sizes[len(m.sizes)-1]
}

// Contains reports whether k is an allowed move size.
func (m Moves) Contains(k uint) bool {
	_, ok := slices.BinarySearch(m.sizes, k)
	return ok
}

// String renders the set as "1, 2, 3".
func (m Moves) String() string {
	parts := make([]string, len(m.sizes))
	for i, s := range m.sizes {
		parts[i] = fmt.Sprint(s)
	}
	return strings.Join(parts, ", ")
}
