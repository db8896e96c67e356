package paths

import (
	"slices"
	"testing"

	"github.com/matzehuels/stairpath/pkg/errors"
)

func TestNewMoves(t *testing.T) {
	m, err := NewMoves(3, 1, 3, 2)
	if err != nil {
		t.Fatalf("NewMoves() error = %v", err)
	}
	if got := m.Sizes(); !slices.Equal(got, []uint{1, 2, 3}) {
		t.Errorf("Sizes() = %v, want [1 2 3]", got)
	}
	if m.Len() != 3 || m.Max() != 3 {
		t.Errorf("Len() = %d, Max() = %d", m.Len(), m.Max())
	}
	if !m.Contains(2) || m.Contains(4) {
		t.Error("Contains() disagrees with Sizes()")
	}
	if m.String() != "1, 2, 3" {
		t.Errorf("String() = %q", m.String())
	}
}

func TestNewMoves_Empty(t *testing.T) {
	m, err := NewMoves()
	if err != nil {
		t.Fatalf("NewMoves() error = %v", err)
	}
	if m.Len() != 0 || m.Max() != 0 || m.Contains(1) {
		t.Errorf("empty Moves = %v", m.Sizes())
	}
}

func TestNewMoves_Zero(t *testing.T) {
	_, err := NewMoves(2, 0)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("NewMoves(2, 0) error = %v, want INVALID_INPUT", err)
	}
}
