package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports engine and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnBuild(_ context.Context, nodes, edges int, d time.Duration, err error) {
	h.logger.Debug("build", "nodes", nodes, "edges", edges, "duration", d, "error", err)
}

func (h logHooks) OnCount(_ context.Context, total string, d time.Duration, err error) {
	h.logger.Debug("count", "total", total, "duration", d, "error", err)
}

func (h logHooks) OnSelect(_ context.Context, rank string, d time.Duration, err error) {
	h.logger.Debug("select", "rank", rank, "duration", d, "error", err)
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
