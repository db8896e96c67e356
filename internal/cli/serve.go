package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stairpath/internal/server"
	"github.com/matzehuels/stairpath/pkg/cache"
	"github.com/matzehuels/stairpath/pkg/pipeline"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr   string
		prefix string
		limits = pipeline.DefaultLimits()
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the counting API over HTTP",
		Long: `Serve POST /v1/count, /v1/select and /v1/rank and GET /healthz.

With --cache-url several replicas share one Redis cache; --key-prefix keeps
their keys apart from other deployments on the same database. --max-nodes
and --max-move bound the layouts a single request may submit.`,
		Example: `  stairpath serve --addr :8080
  STAIRPATH_REDIS_URL=redis://localhost:6379/0 stairpath serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, prefix, limits)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&prefix, "key-prefix", "api:", "prefix for cache keys written by the server")
	cmd.Flags().Uint64Var(&limits.MaxNodes, "max-nodes", limits.MaxNodes, "largest layout accepted, in nodes (0 for no limit)")
	cmd.Flags().UintVar(&limits.MaxMove, "max-move", limits.MaxMove, "largest move size accepted (0 for no limit)")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, prefix string, limits pipeline.Limits) error {
	cc, err := c.newCache(ctx)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(cc, cache.NewScopedKeyer(nil, prefix), c.Logger)
	defer runner.Close()

	printInfo("Serving on %s", StyleValue.Render(addr))
	srv := server.New(runner, c.Logger)
	srv.SetLimits(limits)
	return srv.ListenAndServe(ctx, addr)
}
