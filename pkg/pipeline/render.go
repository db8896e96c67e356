package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/stairpath/pkg/render"
	"github.com/matzehuels/stairpath/pkg/render/nodelink"
	"github.com/matzehuels/stairpath/pkg/stair/paths"
)

// RenderOptions configures Render.
type RenderOptions struct {
	Format     string
	Highlight  paths.Path
	ShowCounts bool
	Scale      float64
}

// Render draws the successor graph of counts in the requested format.
func Render(ctx context.Context, counts *paths.Counts, opts RenderOptions) ([]byte, error) {
	if opts.Format == "" {
		opts.Format = FormatSVG
	}
	if err := ValidateFormat(opts.Format); err != nil {
		return nil, err
	}

	dot := nodelink.ToDOT(counts, nodelink.Options{
		Highlight:  opts.Highlight,
		ShowCounts: opts.ShowCounts,
	})
	if opts.Format == FormatDOT {
		return []byte(dot), nil
	}

	svg, err := nodelink.RenderSVG(ctx, dot)
	if err != nil {
		return nil, fmt.Errorf("render svg: %w", err)
	}
	switch opts.Format {
	case FormatPNG:
		if opts.Scale == 0 {
			opts.Scale = 2.0
		}
		return render.ToPNG(svg, opts.Scale)
	case FormatPDF:
		return render.ToPDF(svg)
	}
	return svg, nil
}
