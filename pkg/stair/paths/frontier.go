package paths

import (
	"maps"
	"slices"

	"github.com/matzehuels/stairpath/pkg/stair"
)

// Expander computes sub-step frontiers over a layout.
type Expander struct {
	set *stair.Set
}

// NewExpander returns an expander over set.
func NewExpander(set *stair.Set) *Expander {
	return &Expander{set: set}
}

// Frontier is the set of nodes a walker can occupy after a number of
// sub-steps from a fixed origin. It is advanced one sub-step at a time so
// callers scanning increasing budgets never recompute earlier steps.
type Frontier struct {
	exp   *Expander
	nodes map[stair.Node]struct{}
	steps uint
}

// NewFrontier returns the zero-step frontier of origin: origin alone.
func (e *Expander) NewFrontier(origin stair.Node) *Frontier {
	return &Frontier{
		exp:   e,
		nodes: map[stair.Node]struct{}{origin: {}},
	}
}

// Expand returns the sorted set of nodes reachable from origin by exactly
// budget sub-steps.
func (e *Expander) Expand(origin stair.Node, budget uint) []stair.Node {
	f := e.NewFrontier(origin)
	for range budget {
		if f.Empty() {
			break
		}
		f.Advance()
	}
	return f.Nodes()
}

// Advance consumes one sub-step. The current set is first closed under
// zero-cost feed branches, then every node takes its single forward step or
// return hand-off. Nodes at the end of a staircase without a return link
// drop out.
func (f *Frontier) Advance() {
	next := make(map[stair.Node]struct{}, len(f.nodes))
	for n := range f.exp.closure(f.nodes) {
		if h, ok := f.exp.hop(n); ok {
			next[h] = struct{}{}
		}
	}
	f.nodes = next
	f.steps++
}

// Nodes returns the frontier sorted by staircase id then rank.
func (f *Frontier) Nodes() []stair.Node {
	return slices.SortedFunc(maps.Keys(f.nodes), stair.Compare)
}

// Steps returns the number of sub-steps consumed so far.
func (f *Frontier) Steps() uint { return f.steps }

// Empty reports whether the walker has nowhere left to be.
func (f *Frontier) Empty() bool { return len(f.nodes) == 0 }

// closure unions in feed branch targets until no new node appears.
func (e *Expander) closure(nodes map[stair.Node]struct{}) map[stair.Node]struct{} {
	closed := maps.Clone(nodes)
	work := slices.Collect(maps.Keys(nodes))
	for len(work) > 0 {
		n := work[len(work)-1]
		work = work[:len(work)-1]
		for _, id := range e.set.FedBy(n.Staircase) {
			st, _ := e.set.Staircase(id)
			if st.Begin != n.Rank {
				continue
			}
			b := stair.Node{Staircase: id, Rank: n.Rank}
			if _, seen := closed[b]; !seen {
				closed[b] = struct{}{}
				work = append(work, b)
			}
		}
	}
	return closed
}

// hop applies one unit sub-step to n.
func (e *Expander) hop(n stair.Node) (stair.Node, bool) {
	st, _ := e.set.Staircase(n.Staircase)
	switch {
	case n.Rank < st.End:
		return stair.Node{Staircase: n.Staircase, Rank: n.Rank + 1}, true
	case st.Returning != stair.NoLink:
		return stair.Node{Staircase: st.Returning, Rank: n.Rank}, true
	default:
		return stair.Node{}, false
	}
}
