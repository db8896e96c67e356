package paths

import (
	"maps"
	"slices"

	"github.com/matzehuels/stairpath/pkg/stair"
)

// Table is the successor relation of a layout under a move set: for every
// node, the nodes reachable by exactly one allowed move, sorted by
// staircase id then rank. A Table is immutable once built.
type Table struct {
	set   *stair.Set
	moves Moves
	succ  map[stair.Node][]stair.Node
	edges int
}

// BuildTable derives the successor relation of set under moves.
//
// Each node advances a single frontier from 1 to moves.Max() sub-steps and
// unions in the frontier after every allowed size. The scan stops early once
// the frontier is empty. The terminal node is absorbing: a walk that reaches
// it ends there, so its successor set is empty.
func BuildTable(set *stair.Set, moves Moves) *Table {
	exp := NewExpander(set)
	t := &Table{
		set:   set,
		moves: moves,
		succ:  make(map[stair.Node][]stair.Node, set.NodeCount()),
	}

	terminal := set.Terminal()
	for _, n := range set.Order() {
		if n == terminal {
			t.succ[n] = nil
			continue
		}

		found := make(map[stair.Node]struct{})
		f := exp.NewFrontier(n)
		for k := uint(1); k <= moves.Max(); k++ {
			f.Advance()
			if f.Empty() {
				break
			}
			if moves.Contains(k) {
				for m := range f.nodes {
					found[m] = struct{}{}
				}
			}
		}

		succ := slices.SortedFunc(maps.Keys(found), stair.Compare)
		t.succ[n] = succ
		t.edges += len(succ)
	}
	return t
}

// Successors returns the sorted successors of n. The returned slice must not
// be modified. Unknown nodes have no successors.
func (t *Table) Successors(n stair.Node) []stair.Node { return t.succ[n] }

// Set returns the layout the table was built from.
func (t *Table) Set() *stair.Set { return t.set }

// Moves returns the move set the table was built with.
func (t *Table) Moves() Moves { return t.moves }

// EdgeCount returns the total number of (node, successor) pairs.
func (t *Table) EdgeCount() int { return t.edges }
