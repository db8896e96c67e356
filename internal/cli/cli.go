package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stairpath/pkg/buildinfo"
	"github.com/matzehuels/stairpath/pkg/cache"
	"github.com/matzehuels/stairpath/pkg/errors"
	"github.com/matzehuels/stairpath/pkg/observability"
	"github.com/matzehuels/stairpath/pkg/pipeline"
)

const (
	// appName is used for directories and display.
	appName = "stairpath"

	// envRedisURL selects the Redis cache backend when set.
	envRedisURL = "STAIRPATH_REDIS_URL"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	cacheURL string
	noCache  bool
}

// New creates a CLI writing logs to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Count and enumerate walks through linked staircases",
		Long: `stairpath counts the walks from the bottom of a staircase layout to its top,
where each move climbs a fixed number of steps and branch staircases may be
entered where they start and left where they end. Any walk can be looked up
by its rank in canonical order, and any walk can be ranked.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			observability.SetCacheHooks(logHooks{c.Logger})
			observability.SetEngineHooks(logHooks{c.Logger})
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.cacheURL, "cache-url", os.Getenv(envRedisURL),
		"Redis URL for the result cache (default: local file cache, env "+envRedisURL+")")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable the result cache")

	root.AddCommand(c.countCommand())
	root.AddCommand(c.selectCommand())
	root.AddCommand(c.rankCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cc, nil, c.Logger), nil
}

func (c *CLI) newCache(ctx context.Context) (cache.Cache, error) {
	if c.noCache {
		return cache.NewNullCache(), nil
	}
	if c.cacheURL != "" {
		return cache.NewRedisCache(ctx, c.cacheURL, cache.Namespace)
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Warn("no cache directory, caching disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/stairpath/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// moveFlag holds a --moves value. Unset means "use the layout's moves".
type moveFlag struct {
	sizes []uint
	set   bool
}

func (m *moveFlag) String() string {
	parts := make([]string, len(m.sizes))
	for i, s := range m.sizes {
		parts[i] = strconv.FormatUint(uint64(s), 10)
	}
	return strings.Join(parts, ",")
}

func (m *moveFlag) Set(s string) error {
	sizes, err := parseMoves(s)
	if err != nil {
		return err
	}
	m.sizes, m.set = sizes, true
	return nil
}

func (m *moveFlag) Type() string { return "sizes" }

// value returns nil when the flag was not given.
func (m *moveFlag) value() []uint {
	if !m.set {
		return nil
	}
	if m.sizes == nil {
		return []uint{}
	}
	return m.sizes
}

// parseMoves parses a comma-separated list of positive move sizes.
func parseMoves(s string) ([]uint, error) {
	var sizes []uint
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseUint(f, 10, 0)
		if err != nil || v == 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "move size must be a positive integer: %q", f)
		}
		sizes = append(sizes, uint(v))
	}
	return sizes, nil
}

// inputFlags are shared by every command that reads a layout file.
type inputFlags struct {
	format  string
	moves   moveFlag
	refresh bool
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "input format: text, toml or json (default: by extension)")
	cmd.Flags().Var(&f.moves, "moves", "override the layout's move sizes, e.g. 1,2,3")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute and overwrite cached results")
}

func (f *inputFlags) options(input string) (pipeline.Options, error) {
	if err := errors.ValidatePath(input); err != nil {
		return pipeline.Options{}, err
	}
	return pipeline.Options{
		Input:   input,
		Format:  stairFormat(f.format),
		Moves:   f.moves.value(),
		Refresh: f.refresh,
	}, nil
}
