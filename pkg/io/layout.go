package io

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/stairpath/pkg/errors"
	"github.com/matzehuels/stairpath/pkg/stair"
	"github.com/matzehuels/stairpath/pkg/stair/paths"
)

// Format names an input encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ValidFormats is the set of supported input formats.
var ValidFormats = map[Format]bool{
	FormatText: true,
	FormatTOML: true,
	FormatJSON: true,
}

// Layout is an unvalidated staircase list plus move sizes.
type Layout struct {
	Staircases []stair.Staircase
	Moves      []uint
}

// Build validates the layout into an immutable set and move set.
func (l Layout) Build() (*stair.Set, paths.Moves, error) {
	set, err := stair.NewSet(l.Staircases)
	if err != nil {
		return nil, paths.Moves{}, err
	}
	moves, err := paths.NewMoves(l.Moves...)
	if err != nil {
		return nil, paths.Moves{}, err
	}
	return set, moves, nil
}

// fileLayout is the shared TOML/JSON shape.
type fileLayout struct {
	Moves     []uint          `toml:"moves" json:"moves"`
	Staircase []fileStaircase `toml:"staircase" json:"staircase"`
}

type fileStaircase struct {
	ID    int    `toml:"id,omitempty" json:"id,omitempty"`
	Begin uint   `toml:"begin" json:"begin"`
	End   uint   `toml:"end" json:"end"`
	From  string `toml:"from" json:"from"`
	To    string `toml:"to" json:"to"`
}

func (f fileLayout) layout() (Layout, error) {
	ids := make([]int, len(f.Staircase))
	stairs := make([]stair.Staircase, len(f.Staircase))
	for i, fs := range f.Staircase {
		feeding, err := parseLink(fs.From, "START")
		if err != nil {
			return Layout{}, fmt.Errorf("staircase %d from: %w", i+1, err)
		}
		returning, err := parseLink(fs.To, "END")
		if err != nil {
			return Layout{}, fmt.Errorf("staircase %d to: %w", i+1, err)
		}
		ids[i] = fs.ID
		if ids[i] == 0 {
			ids[i] = i + 1
		}
		stairs[i] = stair.Staircase{
			Begin:     stair.StepRank(fs.Begin),
			End:       stair.StepRank(fs.End),
			Feeding:   feeding,
			Returning: returning,
		}
	}

	placed, err := place(ids, stairs)
	if err != nil {
		return Layout{}, err
	}
	return Layout{Staircases: placed, Moves: f.Moves}, nil
}

func fromLayout(l Layout) fileLayout {
	out := fileLayout{Moves: l.Moves, Staircase: make([]fileStaircase, len(l.Staircases))}
	for i, st := range l.Staircases {
		out.Staircase[i] = fileStaircase{
			ID:    i + 1,
			Begin: uint(st.Begin),
			End:   uint(st.End),
			From:  formatLink(st.Feeding, "START"),
			To:    formatLink(st.Returning, "END"),
		}
	}
	return out
}

// place puts stairs[i] at position ids[i]-1, requiring ids to be exactly
// 1..len(stairs).
func place(ids []int, stairs []stair.Staircase) ([]stair.Staircase, error) {
	out := make([]stair.Staircase, len(stairs))
	seen := make([]bool, len(stairs))
	for i, id := range ids {
		if id < 1 || id > len(stairs) {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"staircase id S%d out of range 1..%d", id, len(stairs))
		}
		if seen[id-1] {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "staircase id S%d declared twice", id)
		}
		seen[id-1] = true
		out[id-1] = stairs[i]
	}
	return out, nil
}

// parseLink parses "S<n>" or the sentinel word into an id.
func parseLink(s, sentinel string) (stair.ID, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, sentinel) {
		return stair.NoLink, nil
	}
	if !strings.HasPrefix(s, "S") {
		return 0, errors.New(errors.ErrCodeInvalidFormat, "link %q is neither %s nor S<id>", s, sentinel)
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || n < 1 {
		return 0, errors.New(errors.ErrCodeInvalidFormat, "link %q has an invalid staircase id", s)
	}
	return stair.ID(n), nil
}

func formatLink(id stair.ID, sentinel string) string {
	if id == stair.NoLink {
		return sentinel
	}
	return fmt.Sprintf("S%d", id)
}
