package pipeline

import (
	"context"
	"path/filepath"
	"testing"

	"lukechampine.com/uint128"
)

func TestExampleLayouts(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "..", "examples", "layouts", "*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) < 3 {
		t.Fatalf("found %d example layouts, want at least 3", len(files))
	}

	want := map[string]uint64{
		"corridor.json": 1346269,
	}

	ctx := context.Background()
	r := NewRunner(nil, nil, nil)
	for _, f := range files {
		t.Run(filepath.Base(f), func(t *testing.T) {
			layout, err := r.Load(Options{Input: f})
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			counts, _, err := r.Build(ctx, layout)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			total := counts.Total()
			if total.IsZero() {
				t.Fatal("example layout has no walk")
			}
			if n, ok := want[filepath.Base(f)]; ok && total != uint128.From64(n) {
				t.Errorf("Total = %s, want %d", total, n)
			}

			last, err := counts.Select(total)
			if err != nil {
				t.Fatal(err)
			}
			if rank, err := counts.Rank(last); err != nil || rank != total {
				t.Errorf("Rank(Select(Total)) = %s, %v; want %s", rank, err, total)
			}
		})
	}
}
