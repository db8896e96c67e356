package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stairpath/pkg/pipeline"
)

func (c *CLI) selectCommand() *cobra.Command {
	var (
		flags  inputFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "select <layout-file> <rank>",
		Short: "Print the walk at a 1-based rank",
		Long: `Print the walk at a 1-based rank in canonical order.

Ranks above the total select the last walk. Ranks may exceed 64 bits.`,
		Example: `  stairpath select puzzle.txt 1
  stairpath select puzzle.txt 12345678901234567890123`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(args[0])
			if err != nil {
				return err
			}
			opts.Rank = args[1]
			return c.runWalk(cmd.Context(), opts, asJSON)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func (c *CLI) rankCommand() *cobra.Command {
	var (
		flags  inputFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:     "rank <layout-file> <walk>",
		Short:   "Print the rank of a walk",
		Long:    `Print the 1-based canonical rank of a walk given as S<id>:<step> nodes joined by hyphens.`,
		Example: `  stairpath rank puzzle.txt S1:0-S1:1-S1:2-S2:3-S2:4-S1:4-S1:5-S1:6`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(args[0])
			if err != nil {
				return err
			}
			opts.Path = args[1]
			return c.runWalk(cmd.Context(), opts, asJSON)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func (c *CLI) runWalk(ctx context.Context, opts pipeline.Options, asJSON bool) error {
	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(result.Summary())
	}

	printKeyValue("rank", fmt.Sprintf("%s %s",
		StyleNumber.Render(result.Rank.String()),
		StyleDim.Render("of "+result.Total.String())))
	printKeyValue("moves", fmt.Sprint(len(result.Path)-1))
	printKeyValue("walk", formatWalk(result.Path))
	printDetail("%s", result.Path)
	return nil
}
