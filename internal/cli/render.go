package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stairpath/pkg/pipeline"
	"github.com/matzehuels/stairpath/pkg/stair/paths"
)

type renderFlags struct {
	input      inputFlags
	output     string
	to         string
	rank       string
	showCounts bool
	scale      float64
}

func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render <layout-file>",
		Short: "Draw the successor graph of a layout",
		Long: `Draw the successor graph of a layout: one cluster per staircase, one node per
step, one edge per allowed move. DOT and SVG need no external tools; PNG and
PDF are converted from SVG with rsvg-convert.`,
		Example: `  stairpath render puzzle.txt -o puzzle.svg
  stairpath render puzzle.txt --to dot --rank 7 --counts`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], flags)
		},
	}

	flags.input.register(cmd)
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default: stdout for dot and svg)")
	cmd.Flags().StringVar(&flags.to, "to", "", "output format: dot, svg, png, pdf (default: by extension, else svg)")
	cmd.Flags().StringVar(&flags.rank, "rank", "", "highlight the walk at this rank")
	cmd.Flags().BoolVar(&flags.showCounts, "counts", false, "label nodes with their walk counts")
	cmd.Flags().Float64Var(&flags.scale, "scale", 2.0, "PNG scale factor")
	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, flags renderFlags) error {
	opts, err := flags.input.options(input)
	if err != nil {
		return err
	}
	format := renderFormat(flags.to, flags.output)
	if err := pipeline.ValidateFormat(format); err != nil {
		return err
	}
	if flags.output == "" && (format == pipeline.FormatPNG || format == pipeline.FormatPDF) {
		flags.output = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + "." + format
	}

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	layout, err := runner.Load(opts)
	if err != nil {
		return err
	}
	counts, stats, err := runner.Build(ctx, layout)
	if err != nil {
		return err
	}

	var highlight paths.Path
	if flags.rank != "" {
		rank, err := paths.ParseRank(flags.rank)
		if err != nil {
			return err
		}
		if highlight, err = counts.Select(rank); err != nil {
			return err
		}
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", format))
	spinner.Start()
	data, err := pipeline.Render(ctx, counts, pipeline.RenderOptions{
		Format:     format,
		Highlight:  highlight,
		ShowCounts: flags.showCounts,
		Scale:      flags.scale,
	})
	spinner.Stop()
	if err != nil {
		return err
	}

	if flags.output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(flags.output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", flags.output, err)
	}
	printSuccess("Rendered %s", format)
	printStats(stats.NodeCount, stats.EdgeCount, false)
	printFile(flags.output)
	return nil
}

// renderFormat picks the explicit format, then the output extension, then SVG.
func renderFormat(explicit, output string) string {
	if explicit != "" {
		return strings.ToLower(explicit)
	}
	if ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), "."); pipeline.ValidFormats[ext] {
		return ext
	}
	return pipeline.FormatSVG
}
