package paths

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/matzehuels/stairpath/pkg/stair"
)

func node(id int, rank uint) stair.Node {
	return stair.Node{Staircase: stair.ID(id), Rank: stair.StepRank(rank)}
}

// bypass is a corridor 0..6 with a side staircase 2..4 that branches off and
// rejoins it.
func bypass() *stair.Set {
	return stair.MustNewSet([]stair.Staircase{
		{Begin: 0, End: 6},
		{Begin: 2, End: 4, Feeding: 1, Returning: 1},
	})
}

func TestExpand(t *testing.T) {
	exp := NewExpander(bypass())

	tests := []struct {
		name   string
		origin stair.Node
		budget uint
		want   []stair.Node
	}{
		{"zero budget", node(1, 2), 0, []stair.Node{node(1, 2)}},
		{"landing is not branched", node(1, 1), 1, []stair.Node{node(1, 2)}},
		{"branch before step", node(1, 2), 1, []stair.Node{node(1, 3), node(2, 3)}},
		{"two steps", node(1, 2), 2, []stair.Node{node(1, 4), node(2, 4)}},
		{"return hand-off costs a step", node(2, 3), 2, []stair.Node{node(1, 4)}},
		{"hand-off then forward", node(2, 4), 2, []stair.Node{node(1, 5)}},
		{"terminal has nowhere to go", node(1, 6), 1, nil},
		{"runs off the end", node(1, 5), 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exp.Expand(tt.origin, tt.budget)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Expand(%v, %d) mismatch (-want +got):\n%s", tt.origin, tt.budget, diff)
			}
		})
	}
}

func TestExpand_ChainedFeeds(t *testing.T) {
	// S3 branches off S2 at the very rank S2 branches off S1, so a walker on
	// S1:2 reaches all three staircases within one sub-step.
	set := stair.MustNewSet([]stair.Staircase{
		{Begin: 0, End: 5},
		{Begin: 2, End: 4, Feeding: 1, Returning: 1},
		{Begin: 2, End: 3, Feeding: 2, Returning: 2},
	})

	got := NewExpander(set).Expand(node(1, 2), 1)
	want := []stair.Node{node(1, 3), node(2, 3), node(3, 3)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Expand mismatch (-want +got):\n%s", diff)
	}
}

func TestFrontier_Advance(t *testing.T) {
	f := NewExpander(bypass()).NewFrontier(node(1, 3))

	if f.Steps() != 0 || f.Empty() {
		t.Fatalf("new frontier: Steps() = %d, Empty() = %v", f.Steps(), f.Empty())
	}

	for i := 0; i < 3; i++ {
		f.Advance()
	}
	if f.Steps() != 3 {
		t.Errorf("Steps() = %d, want 3", f.Steps())
	}
	if diff := cmp.Diff([]stair.Node{node(1, 6)}, f.Nodes()); diff != "" {
		t.Errorf("Nodes() mismatch (-want +got):\n%s", diff)
	}

	f.Advance()
	if !f.Empty() {
		t.Errorf("frontier past the terminal = %v, want empty", f.Nodes())
	}
}
