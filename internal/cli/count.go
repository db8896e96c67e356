package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stairpath/pkg/errors"
	stairio "github.com/matzehuels/stairpath/pkg/io"
	"github.com/matzehuels/stairpath/pkg/pipeline"
	"github.com/matzehuels/stairpath/pkg/stair/paths"
)

func (c *CLI) countCommand() *cobra.Command {
	var (
		flags    inputFlags
		asJSON   bool
		corridor uint
	)

	cmd := &cobra.Command{
		Use:   "count [layout-file]",
		Short: "Count the walks from the bottom of a layout to its top",
		Long: `Count the walks from the bottom of staircase 1 to its top.

With --corridor N no file is read: the walks along a single staircase of N
steps are counted for the sizes given by --moves.`,
		Example: `  stairpath count puzzle.txt
  stairpath count layout.toml --moves 1,2,3
  stairpath count --corridor 30 --moves 1,2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("corridor") {
				return runCorridor(corridor, flags.moves.value(), asJSON)
			}
			if len(args) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "a layout file is required")
			}
			opts, err := flags.options(args[0])
			if err != nil {
				return err
			}
			return c.runCount(cmd.Context(), args[0], opts, asJSON)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().UintVar(&corridor, "corridor", 0, "count walks along a single staircase of this many steps")
	return cmd
}

func (c *CLI) runCount(ctx context.Context, input string, opts pipeline.Options, asJSON bool) error {
	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done("Counted walks")

	if asJSON {
		return printJSON(result.Summary())
	}
	printKeyValue("walks", StyleNumber.Render(result.Total.String()))
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.CountHit)
	if !result.Total.IsZero() {
		printNextStep("Select a walk", fmt.Sprintf("%s select %s 1", appName, input))
	}
	return nil
}

func runCorridor(span uint, sizes []uint, asJSON bool) error {
	if sizes == nil {
		return errors.New(errors.ErrCodeInvalidInput, "--corridor needs --moves")
	}
	moves, err := paths.NewMoves(sizes...)
	if err != nil {
		return err
	}
	total, err := paths.CorridorCount(span, moves)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(map[string]any{"span": span, "moves": moves.Sizes(), "total": total.String()})
	}
	printKeyValue("walks", StyleNumber.Render(total.String()))
	printDetail("%d steps, moves %s", span, moves)
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func stairFormat(s string) stairio.Format {
	return stairio.Format(strings.ToLower(strings.TrimSpace(s)))
}
