package stair

import (
	"slices"

	"github.com/matzehuels/stairpath/pkg/errors"
)

// ID identifies a staircase. Ids are 1-based; the zero value means "no link"
// (START for Feeding, END for Returning).
type ID int

// NoLink is the Feeding value of the primary corridor and the Returning value
// of a staircase that terminates.
const NoLink ID = 0

// Primary is the id of the primary corridor.
const Primary ID = 1

// StepRank is a position along the corridor.
type StepRank uint

// Staircase is a linear segment covering the ranks Begin through End.
type Staircase struct {
	Begin     StepRank
	End       StepRank
	Feeding   ID // staircase this one branches off at Begin, NoLink for START
	Returning ID // staircase this one hands off to at End, NoLink for END
}

// Span returns the number of unit steps needed to walk the staircase.
func (s Staircase) Span() StepRank { return s.End - s.Begin }

// Covers reports whether r lies inside the staircase.
func (s Staircase) Covers(r StepRank) bool { return s.Begin <= r && r <= s.End }

// Set is a validated, immutable staircase layout. Staircases are stored in an
// arena indexed by id-1.
type Set struct {
	stairs []Staircase
	fedBy  [][]ID // fedBy[id-1] lists, by id, the staircases fed from id
	order  []Node
	index  map[Node]int
}

// NewSet validates stairs and builds the node visiting order.
// The slice is copied; stairs[i] becomes staircase i+1.
func NewSet(stairs []Staircase) (*Set, error) {
	s := &Set{stairs: slices.Clone(stairs)}
	if err := s.validate(); err != nil {
		return nil, err
	}

	s.fedBy = make([][]ID, len(s.stairs))
	for i, st := range s.stairs {
		if st.Feeding != NoLink {
			s.fedBy[st.Feeding-1] = append(s.fedBy[st.Feeding-1], ID(i+1))
		}
	}

	order, err := s.buildOrder()
	if err != nil {
		return nil, err
	}
	s.order = order
	s.index = make(map[Node]int, len(order))
	for i, n := range order {
		s.index[n] = i
	}
	return s, nil
}

// MustNewSet is like NewSet but panics on error. Intended for tests and
// package examples with literal layouts.
func MustNewSet(stairs []Staircase) *Set {
	s, err := NewSet(stairs)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Set) validate() error {
	if len(s.stairs) == 0 {
		return errors.Structural(0, errors.InvariantEmpty, "layout has no staircases")
	}

	n := ID(len(s.stairs))
	var starts []ID
	for i, st := range s.stairs {
		id := ID(i + 1)
		if st.Begin > st.End {
			return errors.Structural(int(id), errors.InvariantSpan,
				"S%d begins at %d after it ends at %d", id, st.Begin, st.End)
		}
		if st.Feeding < 0 || st.Feeding > n {
			return errors.Structural(int(id), errors.InvariantUnknownFeed,
				"S%d is fed from unknown staircase S%d", id, st.Feeding)
		}
		if st.Returning < 0 || st.Returning > n {
			return errors.Structural(int(id), errors.InvariantUnknownReturn,
				"S%d returns into unknown staircase S%d", id, st.Returning)
		}
		if st.Feeding == id || st.Returning == id {
			return errors.Structural(int(id), errors.InvariantSelfLink, "S%d links to itself", id)
		}
		if st.Feeding == NoLink {
			starts = append(starts, id)
		}
	}

	switch {
	case len(starts) == 0:
		return errors.Structural(0, errors.InvariantSingleStart, "no staircase is fed from START")
	case len(starts) > 1:
		return errors.Structural(int(starts[1]), errors.InvariantSingleStart,
			"S%d and S%d are both fed from START", starts[0], starts[1])
	case starts[0] != Primary:
		return errors.Structural(int(starts[0]), errors.InvariantPrimaryStart,
			"S%d is fed from START but only S1 may be", starts[0])
	}

	primary := s.stairs[0]
	for i, st := range s.stairs[1:] {
		id := ID(i + 2)
		if !primary.Covers(st.Begin) || !primary.Covers(st.End) {
			return errors.Structural(int(id), errors.InvariantInsidePrimary,
				"S%d spans %d..%d outside S1 %d..%d", id, st.Begin, st.End, primary.Begin, primary.End)
		}
		if feeder := s.stairs[st.Feeding-1]; !feeder.Covers(st.Begin) {
			return errors.Structural(int(id), errors.InvariantFeedPoint,
				"S%d begins at %d outside its feeding staircase S%d", id, st.Begin, st.Feeding)
		}
	}
	for i, st := range s.stairs {
		if st.Returning == NoLink {
			continue
		}
		if target := s.stairs[st.Returning-1]; !target.Covers(st.End) {
			return errors.Structural(i+1, errors.InvariantReturnPoint,
				"S%d ends at %d outside its returning staircase S%d", i+1, st.End, st.Returning)
		}
	}
	return nil
}

// Len returns the number of staircases.
func (s *Set) Len() int { return len(s.stairs) }

// Staircase returns the staircase with the given id.
func (s *Set) Staircase(id ID) (Staircase, bool) {
	if id < 1 || int(id) > len(s.stairs) {
		return Staircase{}, false
	}
	return s.stairs[id-1], true
}

// Staircases returns a copy of the layout, staircase 1 first.
func (s *Set) Staircases() []Staircase { return slices.Clone(s.stairs) }

// FedBy returns the ids of the staircases branching off id, in id order.
// The returned slice must not be modified.
func (s *Set) FedBy(id ID) []ID {
	if id < 1 || int(id) > len(s.stairs) {
		return nil
	}
	return s.fedBy[id-1]
}

// Begin returns the global first rank (the start of staircase 1).
func (s *Set) Begin() StepRank { return s.stairs[0].Begin }

// End returns the global last rank (the end of staircase 1).
func (s *Set) End() StepRank { return s.stairs[0].End }

// Start returns the node every path begins at.
func (s *Set) Start() Node { return Node{Staircase: Primary, Rank: s.Begin()} }

// Terminal returns the node every path ends at.
func (s *Set) Terminal() Node { return Node{Staircase: Primary, Rank: s.End()} }

// Contains reports whether n is a node of the layout.
func (s *Set) Contains(n Node) bool {
	st, ok := s.Staircase(n.Staircase)
	return ok && st.Covers(n.Rank)
}
