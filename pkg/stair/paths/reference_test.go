package paths

import (
	"maps"
	"slices"

	"github.com/matzehuels/stairpath/pkg/stair"
)

// refReach follows the sub-step rules directly on the raw staircase list,
// without the Expander: close under feeds until stable, then hop once.
func refReach(stairs []stair.Staircase, from stair.Node, k uint) map[stair.Node]bool {
	cur := map[stair.Node]bool{from: true}
	for ; k > 0 && len(cur) > 0; k-- {
		for changed := true; changed; {
			changed = false
			for n := range maps.Clone(cur) {
				for i, st := range stairs {
					b := stair.Node{Staircase: stair.ID(i + 1), Rank: n.Rank}
					if st.Feeding == n.Staircase && st.Begin == n.Rank && !cur[b] {
						cur[b] = true
						changed = true
					}
				}
			}
		}

		next := make(map[stair.Node]bool)
		for n := range cur {
			st := stairs[n.Staircase-1]
			switch {
			case n.Rank < st.End:
				next[stair.Node{Staircase: n.Staircase, Rank: n.Rank + 1}] = true
			case st.Returning != stair.NoLink:
				next[stair.Node{Staircase: st.Returning, Rank: n.Rank}] = true
			}
		}
		cur = next
	}
	return cur
}

// refPaths enumerates every walk in canonical order by depth-first search.
// stairs must be a layout stair.NewSet accepts.
func refPaths(stairs []stair.Staircase, moves []uint) [][]stair.Node {
	start := stair.Node{Staircase: 1, Rank: stairs[0].Begin}
	terminal := stair.Node{Staircase: 1, Rank: stairs[0].End}

	succOf := make(map[stair.Node][]stair.Node)
	successors := func(at stair.Node) []stair.Node {
		if s, ok := succOf[at]; ok {
			return s
		}
		found := make(map[stair.Node]bool)
		for _, m := range moves {
			maps.Copy(found, refReach(stairs, at, m))
		}
		succOf[at] = slices.SortedFunc(maps.Keys(found), stair.Compare)
		return succOf[at]
	}

	var out [][]stair.Node
	var walk func(prefix []stair.Node)
	walk = func(prefix []stair.Node) {
		at := prefix[len(prefix)-1]
		if at == terminal {
			out = append(out, slices.Clone(prefix))
			return
		}
		for _, s := range successors(at) {
			walk(append(prefix, s))
		}
	}
	walk([]stair.Node{start})
	return out
}
