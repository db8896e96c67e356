package stair

import (
	"slices"

	"github.com/matzehuels/stairpath/pkg/errors"
)

// Order returns every node of the layout in visiting order: increasing rank,
// and within a rank every node before the same-rank nodes it can reach.
// The returned slice is a copy.
func (s *Set) Order() []Node { return slices.Clone(s.order) }

// Position returns the index of n in Order, or -1 if n is not a node.
func (s *Set) Position(n Node) int {
	if i, ok := s.index[n]; ok {
		return i
	}
	return -1
}

// NodeCount returns the number of nodes in the layout.
func (s *Set) NodeCount() int { return len(s.order) }

// buildOrder sweeps the ranks of staircase 1 keeping the set of staircases
// whose span covers the current rank.
func (s *Set) buildOrder() ([]Node, error) {
	beginning := make(map[StepRank][]ID)
	for i, st := range s.stairs {
		beginning[st.Begin] = append(beginning[st.Begin], ID(i+1))
	}

	var (
		order  []Node
		active []ID
	)
	for r := s.Begin(); ; r++ {
		var ending, continuing []ID
		for _, id := range active {
			if s.stairs[id-1].End == r {
				ending = append(ending, id)
			} else {
				continuing = append(continuing, id)
			}
		}

		group := slices.Concat(ending, continuing, beginning[r])
		ranked, err := s.rankGroup(r, group)
		if err != nil {
			return nil, err
		}
		for _, id := range ranked {
			order = append(order, Node{Staircase: id, Rank: r})
		}

		active = continuing
		for _, id := range beginning[r] {
			if s.stairs[id-1].End != r {
				active = append(active, id)
			}
		}
		slices.Sort(active)

		if r == s.End() {
			break
		}
	}
	return order, nil
}

// rankGroup orders the staircases present at rank r. group holds the base
// order (ending, continuing, beginning). A stable Kahn sort then moves every
// staircase after the same-rank staircases that reach it: feed branches
// starting at r and return hand-offs ending at r.
func (s *Set) rankGroup(r StepRank, group []ID) ([]ID, error) {
	pos := make(map[ID]int, len(group))
	for i, id := range group {
		pos[id] = i
	}

	indeg := make([]int, len(group))
	out := make([][]int, len(group))
	link := func(from, to ID) {
		j, ok := pos[to]
		if !ok {
			return
		}
		i := pos[from]
		out[i] = append(out[i], j)
		indeg[j]++
	}
	for _, id := range group {
		st := s.stairs[id-1]
		if st.End == r && st.Returning != NoLink {
			link(id, st.Returning)
		}
		for _, fed := range s.fedBy[id-1] {
			if s.stairs[fed-1].Begin == r {
				link(id, fed)
			}
		}
	}

	var ready []int
	for i := range group {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	ranked := make([]ID, 0, len(group))
	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]
		ranked = append(ranked, group[i])
		for _, j := range out[i] {
			if indeg[j]--; indeg[j] == 0 {
				k, _ := slices.BinarySearch(ready, j)
				ready = slices.Insert(ready, k, j)
			}
		}
	}

	if len(ranked) != len(group) {
		for i, d := range indeg {
			if d > 0 {
				return nil, errors.Structural(int(group[i]), errors.InvariantHandoffOrder,
					"S%d is part of a feed/return cycle at rank %d", group[i], r)
			}
		}
	}
	return ranked, nil
}
