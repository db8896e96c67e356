package pipeline

import (
	"encoding/json"
	"time"

	"lukechampine.com/uint128"

	stairio "github.com/matzehuels/stairpath/pkg/io"
	"github.com/matzehuels/stairpath/pkg/stair/paths"
)

// Result holds the outputs of a pipeline run.
type Result struct {
	Layout     stairio.Layout
	LayoutHash string

	// Counts is nil when every requested value came from the cache.
	Counts *paths.Counts

	Total uint128.Uint128

	// Path is the selected walk, or the walk that was ranked.
	Path paths.Path

	// Rank is the clamped rank of Path. Zero in count mode.
	Rank uint128.Uint128

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains timing and size information.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	BuildTime  time.Duration
	CountTime  time.Duration
	SelectTime time.Duration
}

// CacheInfo records which stages were served from the cache.
type CacheInfo struct {
	CountHit bool
	PathHit  bool
}

// Summary is the wire form of a Result. 128-bit values are decimal strings
// because JSON numbers lose precision past 2^53.
type Summary struct {
	LayoutHash string `json:"layout_hash"`
	Moves      []uint `json:"moves"`
	Total      string `json:"total"`
	Rank       string `json:"rank,omitempty"`
	Path       string `json:"path,omitempty"`
	Nodes      int    `json:"nodes,omitempty"`
	Edges      int    `json:"edges,omitempty"`
	Cached     bool   `json:"cached"`
}

// Summary returns the wire form of r.
func (r *Result) Summary() Summary {
	s := Summary{
		LayoutHash: r.LayoutHash,
		Moves:      r.Layout.Moves,
		Total:      r.Total.String(),
		Nodes:      r.Stats.NodeCount,
		Edges:      r.Stats.EdgeCount,
		Cached:     r.Counts == nil,
	}
	if s.Moves == nil {
		s.Moves = []uint{}
	}
	if len(r.Path) > 0 {
		s.Path = r.Path.String()
		s.Rank = r.Rank.String()
	}
	return s
}

func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Summary())
}
