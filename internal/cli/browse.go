package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"lukechampine.com/uint128"

	"github.com/matzehuels/stairpath/pkg/errors"
	"github.com/matzehuels/stairpath/pkg/stair/paths"
)

var (
	browseHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
	browseFrameStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// pageSize is the rank distance covered by pgup/pgdown.
const pageSize = 10

func (c *CLI) browseCommand() *cobra.Command {
	var (
		flags inputFlags
		start string
	)

	cmd := &cobra.Command{
		Use:   "browse <layout-file>",
		Short: "Step through walks interactively",
		Long: `Step through the walks of a layout in canonical order.

  ↑/k ↓/j   previous/next walk
  pgup/pgdn ten walks back/forward
  g/G       first/last walk
  q         quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBrowse(cmd.Context(), args[0], flags, start)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&start, "rank", "1", "rank to open at")
	return cmd
}

func (c *CLI) runBrowse(ctx context.Context, input string, flags inputFlags, start string) error {
	opts, err := flags.options(input)
	if err != nil {
		return err
	}
	rank, err := paths.ParseRank(start)
	if err != nil {
		return err
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
	counts, _, err := runner.Build(ctx, layout)
	if err != nil {
		return err
	}
	if counts.Total().IsZero() {
		return errors.New(errors.ErrCodePrecondition, "%s has no walk to browse", input)
	}

	_, err = tea.NewProgram(newWalkBrowser(counts, rank), tea.WithContext(ctx)).Run()
	return err
}

// walkBrowser is the bubbletea model behind browse.
type walkBrowser struct {
	counts *paths.Counts
	total  uint128.Uint128
	rank   uint128.Uint128
	walk   paths.Path
	err    error
}

func newWalkBrowser(counts *paths.Counts, rank uint128.Uint128) walkBrowser {
	m := walkBrowser{counts: counts, total: counts.Total()}
	if rank.Cmp(m.total) > 0 {
		rank = m.total
	}
	return m.at(rank)
}

func (m walkBrowser) at(rank uint128.Uint128) walkBrowser {
	m.rank = rank
	m.walk, m.err = m.counts.Select(rank)
	return m
}

// step moves by delta ranks, saturating at 1 and Total.
func (m walkBrowser) step(delta int64) walkBrowser {
	if delta < 0 {
		d := uint64(-delta)
		if m.rank.Cmp64(d) <= 0 {
			return m.at(uint128.From64(1))
		}
		return m.at(m.rank.Sub64(d))
	}
	if m.total.Sub(m.rank).Cmp64(uint64(delta)) < 0 {
		return m.at(m.total)
	}
	return m.at(m.rank.Add64(uint64(delta)))
}

func (m walkBrowser) Init() tea.Cmd { return nil }

func (m walkBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		return m.step(-1), nil
	case "down", "j":
		return m.step(1), nil
	case "pgup":
		return m.step(-pageSize), nil
	case "pgdown":
		return m.step(pageSize), nil
	case "home", "g":
		return m.at(uint128.From64(1)), nil
	case "end", "G":
		return m.at(m.total), nil
	}
	return m, nil
}

func (m walkBrowser) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Walks"))
	b.WriteString("  ")
	b.WriteString(StyleNumber.Render(m.rank.String()))
	b.WriteString(StyleDim.Render(" / " + m.total.String()))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render(m.err.Error()))
	} else {
		body := formatWalk(m.walk) + "\n" + StyleDim.Render(fmt.Sprintf("%d moves", len(m.walk)-1))
		b.WriteString(browseFrameStyle.Render(body))
	}

	b.WriteString("\n\n")
	b.WriteString(browseHelpStyle.Render("↑/↓ walk  pgup/pgdn ±10  g/G first/last  q quit"))
	b.WriteString("\n")
	return b.String()
}
