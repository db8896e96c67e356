package pipeline

import (
	"context"
	"fmt"
	"math/big"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"lukechampine.com/uint128"

	"github.com/matzehuels/stairpath/pkg/cache"
	"github.com/matzehuels/stairpath/pkg/errors"
	stairio "github.com/matzehuels/stairpath/pkg/io"
	"github.com/matzehuels/stairpath/pkg/observability"
	"github.com/matzehuels/stairpath/pkg/stair/paths"
)

// Runner executes the pipeline with caching. It holds no per-run state, so
// one Runner may serve concurrent requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching and a nil keyer
// selects the DefaultKeyer.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs load, build, count and, when requested, select or rank.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	layout, err := r.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	if err := opts.Limits.Check(layout); err != nil {
		return nil, err
	}
	result := &Result{
		Layout:     layout,
		LayoutHash: cache.Hash(stairio.Canonical(layout)),
	}

	var rank uint128.Uint128
	if opts.Rank != "" {
		if rank, err = paths.ParseRank(opts.Rank); err != nil {
			return nil, err
		}
	}

	if opts.Path == "" && !opts.Refresh && r.fromCache(ctx, result, opts, rank) {
		return result, nil
	}

	if err := r.compute(ctx, result, opts.Refresh); err != nil {
		return nil, err
	}

	switch opts.Mode() {
	case "select":
		err = r.selectPath(ctx, result, rank)
	case "rank":
		err = r.rankPath(ctx, result, opts.Path)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Load returns the layout named by opts with any move override applied.
func (r *Runner) Load(opts Options) (stairio.Layout, error) {
	var layout stairio.Layout
	if opts.Layout != nil {
		layout = *opts.Layout
	} else {
		l, err := stairio.Import(opts.Input, opts.Format)
		if err != nil {
			return stairio.Layout{}, err
		}
		layout = l
	}
	if opts.Moves != nil {
		layout.Moves = slices.Clone(opts.Moves)
	}
	return layout, nil
}

// Build validates the layout, builds the successor table and counts walks.
// The CLI's render and browse commands use it directly.
func (r *Runner) Build(ctx context.Context, layout stairio.Layout) (*paths.Counts, Stats, error) {
	var stats Stats

	start := time.Now()
	set, moves, err := layout.Build()
	if err != nil {
		observability.Engine().OnBuild(ctx, 0, 0, time.Since(start), err)
		return nil, stats, fmt.Errorf("build: %w", err)
	}
	table := paths.BuildTable(set, moves)
	stats.BuildTime = time.Since(start)
	stats.NodeCount = set.NodeCount()
	stats.EdgeCount = table.EdgeCount()
	observability.Engine().OnBuild(ctx, stats.NodeCount, stats.EdgeCount, stats.BuildTime, nil)

	r.Logger.Debug("built successor table",
		"staircases", set.Len(),
		"nodes", stats.NodeCount,
		"edges", stats.EdgeCount,
		"moves", moves.String(),
		"duration", stats.BuildTime)

	start = time.Now()
	counts, err := paths.Count(table)
	stats.CountTime = time.Since(start)
	if err != nil {
		observability.Engine().OnCount(ctx, "", stats.CountTime, err)
		return nil, stats, fmt.Errorf("count: %w", err)
	}
	observability.Engine().OnCount(ctx, counts.Total().String(), stats.CountTime, nil)

	r.Logger.Debug("counted walks", "total", counts.Total(), "duration", stats.CountTime)
	return counts, stats, nil
}

func (r *Runner) compute(ctx context.Context, result *Result, refresh bool) error {
	counts, stats, err := r.Build(ctx, result.Layout)
	if err != nil {
		return err
	}
	result.Counts = counts
	result.Total = counts.Total()
	result.Stats = stats

	key := r.Keyer.CountKey(result.LayoutHash, result.Layout.Moves)
	r.store(ctx, "count", key, []byte(result.Total.String()))
	r.Logger.Info("counted walks",
		"total", result.Total,
		"nodes", stats.NodeCount,
		"edges", stats.EdgeCount,
		"refresh", refresh,
		"duration", stats.BuildTime+stats.CountTime)
	return nil
}

// fromCache fills result from cached values. It reports false when any
// value the run needs is missing.
func (r *Runner) fromCache(ctx context.Context, result *Result, opts Options, rank uint128.Uint128) bool {
	moves := result.Layout.Moves
	data, ok := r.lookup(ctx, "count", r.Keyer.CountKey(result.LayoutHash, moves))
	if !ok {
		return false
	}
	total, err := decodeCount(data)
	if err != nil {
		return false
	}
	if opts.Rank == "" {
		result.Total = total
		result.CacheInfo.CountHit = true
		r.Logger.Info("counted walks", "total", total, "cached", true)
		return true
	}
	if total.IsZero() {
		return false
	}

	rank = clamp(rank, total)
	data, ok = r.lookup(ctx, "path", r.Keyer.PathKey(result.LayoutHash, moves, rank.String()))
	if !ok {
		return false
	}
	p, err := paths.ParsePath(string(data))
	if err != nil {
		return false
	}
	result.Total = total
	result.Rank = rank
	result.Path = p
	result.CacheInfo.CountHit = true
	result.CacheInfo.PathHit = true
	r.Logger.Info("selected walk", "rank", rank, "steps", len(p)-1, "cached", true)
	return true
}

func (r *Runner) selectPath(ctx context.Context, result *Result, rank uint128.Uint128) error {
	start := time.Now()
	p, err := result.Counts.Select(rank)
	result.Stats.SelectTime = time.Since(start)
	observability.Engine().OnSelect(ctx, rank.String(), result.Stats.SelectTime, err)
	if err != nil {
		return fmt.Errorf("select: %w", err)
	}
	result.Rank = clamp(rank, result.Total)
	result.Path = p

	key := r.Keyer.PathKey(result.LayoutHash, result.Layout.Moves, result.Rank.String())
	r.store(ctx, "path", key, []byte(p.String()))
	r.Logger.Info("selected walk", "rank", result.Rank, "steps", len(p)-1, "duration", result.Stats.SelectTime)
	return nil
}

func (r *Runner) rankPath(ctx context.Context, result *Result, s string) error {
	p, err := paths.ParsePath(s)
	if err != nil {
		return fmt.Errorf("rank: %w", err)
	}
	start := time.Now()
	rank, err := result.Counts.Rank(p)
	result.Stats.SelectTime = time.Since(start)
	if err != nil {
		return fmt.Errorf("rank: %w", err)
	}
	result.Rank = rank
	result.Path = p
	r.Logger.Info("ranked walk", "rank", rank, "steps", len(p)-1)
	return nil
}

func (r *Runner) lookup(ctx context.Context, keyType, key string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "key", key, "error", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return data, true
}

func (r *Runner) store(ctx context.Context, keyType, key string, data []byte) {
	if err := r.Cache.Set(ctx, key, data, cache.TTLResult); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func clamp(rank, total uint128.Uint128) uint128.Uint128 {
	if rank.Cmp(total) > 0 {
		return total
	}
	return rank
}

func decodeCount(data []byte) (uint128.Uint128, error) {
	v, ok := new(big.Int).SetString(string(data), 10)
	if !ok || v.Sign() < 0 || v.BitLen() > 128 {
		return uint128.Zero, errors.New(errors.ErrCodeInternal, "corrupt cached count %q", data)
	}
	return uint128.FromBig(v), nil
}
