package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"lukechampine.com/uint128"

	"github.com/matzehuels/stairpath/pkg/cache"
	"github.com/matzehuels/stairpath/pkg/errors"
	stairio "github.com/matzehuels/stairpath/pkg/io"
	"github.com/matzehuels/stairpath/pkg/stair"
)

func corridor(span stair.StepRank, moves ...uint) *stairio.Layout {
	return &stairio.Layout{
		Staircases: []stair.Staircase{{Begin: 0, End: span}},
		Moves:      moves,
	}
}

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return NewRunner(c, nil, log.New(os.Stderr))
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"no input", Options{}, errors.ErrCodeInvalidInput},
		{"bad format", Options{Input: "x", Format: "yaml"}, errors.ErrCodeInvalidFormat},
		{"rank and path", Options{Input: "x", Rank: "1", Path: "S1:0"}, errors.ErrCodeInvalidInput},
		{"zero rank", Options{Input: "x", Rank: "0"}, errors.ErrCodePrecondition},
		{"bad rank", Options{Input: "x", Rank: "ten"}, errors.ErrCodeInvalidInput},
		{"zero move", Options{Input: "x", Moves: []uint{1, 0}}, errors.ErrCodeInvalidInput},
		{"ok", Options{Input: "x", Rank: "5"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if tt.code == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestOptionsMode(t *testing.T) {
	if m := (&Options{}).Mode(); m != "count" {
		t.Errorf("Mode() = %s", m)
	}
	if m := (&Options{Rank: "1"}).Mode(); m != "select" {
		t.Errorf("Mode() = %s", m)
	}
	if m := (&Options{Path: "S1:0"}).Mode(); m != "rank" {
		t.Errorf("Mode() = %s", m)
	}
}

func TestExecute_CountCached(t *testing.T) {
	ctx := context.Background()
	r := newTestRunner(t)

	first, err := r.Execute(ctx, Options{Layout: corridor(5, 1, 2)})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if first.Total != uint128.From64(8) {
		t.Errorf("Total = %s, want 8", first.Total)
	}
	if first.Counts == nil || first.CacheInfo.CountHit {
		t.Error("first run should compute")
	}
	if first.Stats.NodeCount != 6 {
		t.Errorf("NodeCount = %d, want 6", first.Stats.NodeCount)
	}

	second, err := r.Execute(ctx, Options{Layout: corridor(5, 2, 1)})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !second.CacheInfo.CountHit || second.Counts != nil {
		t.Error("second run should hit the cache")
	}
	if second.Total != first.Total {
		t.Errorf("cached Total = %s, want %s", second.Total, first.Total)
	}

	third, err := r.Execute(ctx, Options{Layout: corridor(5, 1, 2), Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheInfo.CountHit || third.Counts == nil {
		t.Error("refresh should bypass the cache")
	}
}

func TestExecute_Select(t *testing.T) {
	ctx := context.Background()
	r := newTestRunner(t)

	tests := []struct {
		rank     string
		wantRank string
		wantPath string
	}{
		{"1", "1", "S1:0-S1:1-S1:2-S1:3-S1:4-S1:5"},
		{"8", "8", "S1:0-S1:2-S1:4-S1:5"},
		{"1000", "8", "S1:0-S1:2-S1:4-S1:5"},
	}

	for _, tt := range tests {
		for _, pass := range []string{"computed", "cached"} {
			res, err := r.Execute(ctx, Options{Layout: corridor(5, 1, 2), Rank: tt.rank})
			if err != nil {
				t.Fatalf("Execute(rank=%s) error = %v", tt.rank, err)
			}
			if got := res.Path.String(); got != tt.wantPath {
				t.Errorf("%s rank=%s: Path = %s, want %s", pass, tt.rank, got, tt.wantPath)
			}
			if got := res.Rank.String(); got != tt.wantRank {
				t.Errorf("%s rank=%s: Rank = %s, want %s", pass, tt.rank, got, tt.wantRank)
			}
			if pass == "cached" && !res.CacheInfo.PathHit {
				t.Errorf("rank=%s: second run should hit the path cache", tt.rank)
			}
		}
	}
}

func TestExecute_RankRoundTrip(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(nil, nil, nil)

	sel, err := r.Execute(ctx, Options{Layout: corridor(5, 1, 2), Rank: "5"})
	if err != nil {
		t.Fatal(err)
	}
	res, err := r.Execute(ctx, Options{Layout: corridor(5, 1, 2), Path: sel.Path.String()})
	if err != nil {
		t.Fatalf("Execute(path) error = %v", err)
	}
	if res.Rank != uint128.From64(5) {
		t.Errorf("Rank = %s, want 5", res.Rank)
	}

	_, err = r.Execute(ctx, Options{Layout: corridor(5, 1, 2), Path: "S1:0-S1:3-S1:5"})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("invalid walk error = %v, want INVALID_INPUT", err)
	}
}

func TestExecute_MovesOverride(t *testing.T) {
	res, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{
		Layout: corridor(5, 1, 2),
		Moves:  []uint{1},
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != uint128.From64(1) {
		t.Errorf("Total = %s, want 1", res.Total)
	}
}

func TestExecute_NoWalk(t *testing.T) {
	ctx := context.Background()
	r := newTestRunner(t)

	res, err := r.Execute(ctx, Options{Layout: corridor(3, 2)})
	if err != nil {
		t.Fatalf("count error = %v", err)
	}
	if !res.Total.IsZero() {
		t.Errorf("Total = %s, want 0", res.Total)
	}

	_, err = r.Execute(ctx, Options{Layout: corridor(3, 2), Rank: "1"})
	if !errors.Is(err, errors.ErrCodePrecondition) {
		t.Errorf("select error = %v, want PRECONDITION", err)
	}
}

func TestExecute_StructuralError(t *testing.T) {
	layout := &stairio.Layout{
		Staircases: []stair.Staircase{{Begin: 0, End: 4}, {Begin: 5, End: 6, Feeding: 1, Returning: 1}},
		Moves:      []uint{1},
	}
	_, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{Layout: layout})
	if !errors.Is(err, errors.ErrCodeInvalidStructure) {
		t.Errorf("error = %v, want INVALID_STRUCTURE", err)
	}
}

func TestExecute_InputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzle.txt")
	text := "S1 : 0 -> 6 : FROM START TO END\nS2 : 2 -> 4 : FROM S1 TO S1\n\nPossible Moves : 1\n"
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}

	res, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{Input: path, Rank: "2"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if res.Total != uint128.From64(2) {
		t.Errorf("Total = %s, want 2", res.Total)
	}
	if got, want := res.Path.String(), "S1:0-S1:1-S1:2-S2:3-S2:4-S1:4-S1:5-S1:6"; got != want {
		t.Errorf("Path = %s, want %s", got, want)
	}
}

func TestResultJSON(t *testing.T) {
	res, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{
		Layout: corridor(150, 1, 2),
		Rank:   "1",
	})
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(res)
	if err != nil {
		t.Fatal(err)
	}

	var s Summary
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatal(err)
	}
	if s.Total != res.Total.String() || len(s.Total) < 20 {
		t.Errorf("total = %q, want full decimal %s", s.Total, res.Total)
	}
	if s.Rank != "1" || !strings.HasPrefix(s.Path, "S1:0-S1:1-") {
		t.Errorf("summary = %+v", s)
	}
	if s.Cached {
		t.Error("computed result should not be marked cached")
	}
}

func TestRenderDOT(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	counts, _, err := r.Build(context.Background(), *corridor(3, 1))
	if err != nil {
		t.Fatal(err)
	}
	data, err := Render(context.Background(), counts, RenderOptions{Format: FormatDOT})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"S1:2" -> "S1:3";`) {
		t.Errorf("unexpected DOT:\n%s", data)
	}

	if _, err := Render(context.Background(), counts, RenderOptions{Format: "gif"}); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{FormatDOT, FormatSVG, FormatPNG, FormatPDF} {
		if err := ValidateFormat(f); err != nil {
			t.Errorf("ValidateFormat(%q) = %v", f, err)
		}
	}
	if err := ValidateFormat("gif"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ValidateFormat(gif) = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}
