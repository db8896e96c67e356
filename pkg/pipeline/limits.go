package pipeline

import (
	"math"

	"github.com/matzehuels/stairpath/pkg/errors"
	stairio "github.com/matzehuels/stairpath/pkg/io"
)

// Defaults applied by the HTTP server. Building the successor table costs
// memory per node and up to the largest move in frontier sub-steps per node,
// so both are bounded before any table is built.
const (
	DefaultMaxNodes = 200_000
	DefaultMaxMove  = 1_000
)

// Limits bounds the work a single run may cause. Zero fields are unlimited.
type Limits struct {
	// MaxNodes caps the number of (staircase, step) nodes, the sum of
	// End-Begin+1 over all staircases.
	MaxNodes uint64

	// MaxMove caps the largest allowed move size.
	MaxMove uint
}

// DefaultLimits returns the limits the HTTP server applies.
func DefaultLimits() Limits {
	return Limits{MaxNodes: DefaultMaxNodes, MaxMove: DefaultMaxMove}
}

// Check rejects layouts over the limits with UNSUPPORTED_SCALE. It only
// inspects spans and move sizes, so it runs in time linear in the number of
// staircases and moves, whatever their spans.
func (l Limits) Check(layout stairio.Layout) error {
	if l.MaxNodes > 0 {
		if n := NodeCount(layout); n > l.MaxNodes {
			return errors.New(errors.ErrCodeUnsupportedScale,
				"layout has %d nodes, limit is %d", n, l.MaxNodes)
		}
	}
	if l.MaxMove > 0 {
		for _, m := range layout.Moves {
			if m > l.MaxMove {
				return errors.New(errors.ErrCodeUnsupportedScale,
					"move size %d exceeds limit %d", m, l.MaxMove)
			}
		}
	}
	return nil
}

// NodeCount is the number of nodes the layout declares, saturating at
// math.MaxUint64. Staircases with End < Begin count zero; validation
// rejects them later.
func NodeCount(layout stairio.Layout) uint64 {
	var total uint64
	for _, st := range layout.Staircases {
		if st.End < st.Begin {
			continue
		}
		span := uint64(st.End - st.Begin)
		if span == math.MaxUint64 || total > math.MaxUint64-span-1 {
			return math.MaxUint64
		}
		total += span + 1
	}
	return total
}
