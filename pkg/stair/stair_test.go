package stair

import (
	stderrors "errors"
	"testing"

	"github.com/matzehuels/stairpath/pkg/errors"
)

func TestNewSet_Valid(t *testing.T) {
	set, err := NewSet([]Staircase{
		{Begin: 0, End: 6},
		{Begin: 2, End: 4, Feeding: 1, Returning: 1},
	})
	if err != nil {
		t.Fatalf("NewSet() error = %v", err)
	}

	if set.Len() != 2 {
		t.Errorf("Len() = %d, want 2", set.Len())
	}
	if got := set.Start(); got != (Node{Staircase: 1, Rank: 0}) {
		t.Errorf("Start() = %v, want S1:0", got)
	}
	if got := set.Terminal(); got != (Node{Staircase: 1, Rank: 6}) {
		t.Errorf("Terminal() = %v, want S1:6", got)
	}
	if got := set.FedBy(1); len(got) != 1 || got[0] != 2 {
		t.Errorf("FedBy(1) = %v, want [2]", got)
	}
	if set.FedBy(9) != nil {
		t.Error("FedBy(9) should be nil")
	}
	if !set.Contains(Node{Staircase: 2, Rank: 3}) {
		t.Error("Contains(S2:3) = false, want true")
	}
	if set.Contains(Node{Staircase: 2, Rank: 5}) {
		t.Error("Contains(S2:5) = true, want false")
	}
	if _, ok := set.Staircase(3); ok {
		t.Error("Staircase(3) should not exist")
	}
}

func TestNewSet_CopiesInput(t *testing.T) {
	stairs := []Staircase{{Begin: 0, End: 3}}
	set := MustNewSet(stairs)
	stairs[0].End = 99

	if set.End() != 3 {
		t.Errorf("End() = %d after caller mutation, want 3", set.End())
	}
}

func TestNewSet_DegenerateSpan(t *testing.T) {
	set, err := NewSet([]Staircase{
		{Begin: 0, End: 3, Returning: 2},
		{Begin: 3, End: 3, Feeding: 1},
	})
	if err != nil {
		t.Fatalf("NewSet() error = %v", err)
	}
	if set.NodeCount() != 5 {
		t.Errorf("NodeCount() = %d, want 5", set.NodeCount())
	}
}

func TestNewSet_StructuralErrors(t *testing.T) {
	tests := []struct {
		name      string
		stairs    []Staircase
		staircase int
		invariant errors.Invariant
	}{
		{
			name:      "empty",
			stairs:    nil,
			staircase: 0,
			invariant: errors.InvariantEmpty,
		},
		{
			name:      "begin after end",
			stairs:    []Staircase{{Begin: 0, End: 5}, {Begin: 4, End: 2, Feeding: 1}},
			staircase: 2,
			invariant: errors.InvariantSpan,
		},
		{
			name:      "unknown return",
			stairs:    []Staircase{{Begin: 0, End: 5, Returning: 7}},
			staircase: 1,
			invariant: errors.InvariantUnknownReturn,
		},
		{
			name:      "unknown feed",
			stairs:    []Staircase{{Begin: 0, End: 5}, {Begin: 1, End: 2, Feeding: 3}},
			staircase: 2,
			invariant: errors.InvariantUnknownFeed,
		},
		{
			name:      "negative feed",
			stairs:    []Staircase{{Begin: 0, End: 5}, {Begin: 1, End: 2, Feeding: -1}},
			staircase: 2,
			invariant: errors.InvariantUnknownFeed,
		},
		{
			name:      "self link",
			stairs:    []Staircase{{Begin: 0, End: 5}, {Begin: 1, End: 2, Feeding: 2}},
			staircase: 2,
			invariant: errors.InvariantSelfLink,
		},
		{
			name:      "no start",
			stairs:    []Staircase{{Begin: 0, End: 5, Feeding: 2}, {Begin: 1, End: 2, Feeding: 1}},
			staircase: 0,
			invariant: errors.InvariantSingleStart,
		},
		{
			name:      "two starts",
			stairs:    []Staircase{{Begin: 0, End: 5}, {Begin: 1, End: 2}},
			staircase: 2,
			invariant: errors.InvariantSingleStart,
		},
		{
			name:      "start is not primary",
			stairs:    []Staircase{{Begin: 0, End: 5, Feeding: 2}, {Begin: 1, End: 2}},
			staircase: 2,
			invariant: errors.InvariantPrimaryStart,
		},
		{
			name:      "outside primary",
			stairs:    []Staircase{{Begin: 2, End: 5}, {Begin: 1, End: 3, Feeding: 1}},
			staircase: 2,
			invariant: errors.InvariantInsidePrimary,
		},
		{
			name: "feed point outside feeder",
			stairs: []Staircase{
				{Begin: 0, End: 9},
				{Begin: 1, End: 3, Feeding: 1},
				{Begin: 5, End: 6, Feeding: 2},
			},
			staircase: 3,
			invariant: errors.InvariantFeedPoint,
		},
		{
			name: "return point outside target",
			stairs: []Staircase{
				{Begin: 0, End: 9},
				{Begin: 1, End: 3, Feeding: 1},
				{Begin: 4, End: 8, Feeding: 1, Returning: 2},
			},
			staircase: 3,
			invariant: errors.InvariantReturnPoint,
		},
		{
			name: "same-rank hand-off cycle",
			stairs: []Staircase{
				{Begin: 0, End: 9},
				{Begin: 4, End: 4, Feeding: 1, Returning: 1},
			},
			staircase: 1,
			invariant: errors.InvariantHandoffOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSet(tt.stairs)
			if err == nil {
				t.Fatal("NewSet() error = nil, want structural error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidStructure) {
				t.Fatalf("NewSet() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidStructure)
			}
			var inv *errors.InvariantError
			if !stderrors.As(err, &inv) {
				t.Fatalf("NewSet() error %v carries no InvariantError", err)
			}
			if inv.Staircase != tt.staircase || inv.Invariant != tt.invariant {
				t.Errorf("InvariantError = {S%d %q}, want {S%d %q}",
					inv.Staircase, inv.Invariant, tt.staircase, tt.invariant)
			}
		})
	}
}

func TestMustNewSet_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNewSet() did not panic on invalid layout")
		}
	}()
	MustNewSet(nil)
}

func TestParseNode(t *testing.T) {
	n, err := ParseNode(" S12:40 ")
	if err != nil {
		t.Fatalf("ParseNode() error = %v", err)
	}
	if n != (Node{Staircase: 12, Rank: 40}) {
		t.Errorf("ParseNode() = %v, want S12:40", n)
	}
	if n.String() != "S12:40" {
		t.Errorf("String() = %q, want S12:40", n.String())
	}

	for _, bad := range []string{"", "12:40", "S:1", "S0:1", "S1", "S1:-2", "S1:x"} {
		if _, err := ParseNode(bad); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("ParseNode(%q) error = %v, want INVALID_INPUT", bad, err)
		}
	}
}

func TestCompare(t *testing.T) {
	a := Node{Staircase: 1, Rank: 5}
	b := Node{Staircase: 2, Rank: 1}
	c := Node{Staircase: 2, Rank: 3}

	if Compare(a, b) >= 0 || Compare(b, c) >= 0 || Compare(c, a) <= 0 || Compare(a, a) != 0 {
		t.Error("Compare() does not order by staircase id then rank")
	}
}
