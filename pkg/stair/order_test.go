package stair

import (
	"slices"
	"testing"
)

func nodes(pairs ...int) []Node {
	var out []Node
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, Node{Staircase: ID(pairs[i]), Rank: StepRank(pairs[i+1])})
	}
	return out
}

func TestOrder_SingleStaircase(t *testing.T) {
	set := MustNewSet([]Staircase{{Begin: 2, End: 5}})

	want := nodes(1, 2, 1, 3, 1, 4, 1, 5)
	if got := set.Order(); !slices.Equal(got, want) {
		t.Errorf("Order() = %v, want %v", got, want)
	}
}

func TestOrder_TieBreak(t *testing.T) {
	// S2 ends at 4 and returns into S1; S3 begins at 4 off S1.
	set := MustNewSet([]Staircase{
		{Begin: 0, End: 5},
		{Begin: 2, End: 4, Feeding: 1, Returning: 1},
		{Begin: 4, End: 5, Feeding: 1, Returning: 1},
	})

	got := set.Order()
	var atFour []Node
	for _, n := range got {
		if n.Rank == 4 {
			atFour = append(atFour, n)
		}
	}

	// ending, then continuing, then beginning
	want := nodes(2, 4, 1, 4, 3, 4)
	if !slices.Equal(atFour, want) {
		t.Errorf("rank 4 order = %v, want %v", atFour, want)
	}
	if len(got) != set.NodeCount() || set.NodeCount() != 6+3+2 {
		t.Errorf("NodeCount() = %d, want 11", set.NodeCount())
	}
}

func TestOrder_ReturnChainWithinRank(t *testing.T) {
	// S3 ends at 3 and returns into S2, which also ends at 3 and returns
	// into S1. Both are "ending", but S3 must come before S2.
	set := MustNewSet([]Staircase{
		{Begin: 0, End: 6},
		{Begin: 1, End: 3, Feeding: 1, Returning: 1},
		{Begin: 2, End: 3, Feeding: 2, Returning: 2},
	})

	var atThree []Node
	for _, n := range set.Order() {
		if n.Rank == 3 {
			atThree = append(atThree, n)
		}
	}
	want := nodes(3, 3, 2, 3, 1, 3)
	if !slices.Equal(atThree, want) {
		t.Errorf("rank 3 order = %v, want %v", atThree, want)
	}
}

func TestOrder_RanksIncrease(t *testing.T) {
	set := MustNewSet([]Staircase{
		{Begin: 0, End: 8},
		{Begin: 1, End: 5, Feeding: 1, Returning: 1},
		{Begin: 3, End: 7, Feeding: 2, Returning: 1},
	})

	order := set.Order()
	for i := 1; i < len(order); i++ {
		if order[i].Rank < order[i-1].Rank {
			t.Fatalf("Order()[%d] = %v after %v", i, order[i], order[i-1])
		}
	}
	for i, n := range order {
		if set.Position(n) != i {
			t.Errorf("Position(%v) = %d, want %d", n, set.Position(n), i)
		}
	}
	if set.Position(Node{Staircase: 2, Rank: 0}) != -1 {
		t.Error("Position() of a non-node should be -1")
	}
}

func TestOrder_IsCopy(t *testing.T) {
	set := MustNewSet([]Staircase{{Begin: 0, End: 2}})
	o := set.Order()
	o[0] = Node{Staircase: 9, Rank: 9}

	if set.Order()[0] != set.Start() {
		t.Error("mutating Order() result changed the set")
	}
}
