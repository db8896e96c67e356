package cache

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

// TTLResult bounds how long counts and paths stay cached. Results are
// deterministic, so the limit only keeps stale entries from piling up.
const TTLResult = 30 * 24 * time.Hour

// Keyer derives cache keys from a layout hash and query options.
type Keyer interface {
	// CountKey identifies the total path count of a layout under a move set.
	CountKey(layoutHash string, moves []uint) string

	// PathKey identifies the path selected at rank.
	PathKey(layoutHash string, moves []uint, rank string) string
}

// DefaultKeyer produces "count:<sha256>" and "path:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

func (DefaultKeyer) CountKey(layoutHash string, moves []uint) string {
	return hashKey("count", layoutHash, movesKey(moves))
}

func (DefaultKeyer) PathKey(layoutHash string, moves []uint, rank string) string {
	return hashKey("path", layoutHash, movesKey(moves), rank)
}

// movesKey normalizes moves so that {2, 1, 2} and {1, 2} share keys.
func movesKey(moves []uint) string {
	m := slices.Clone(moves)
	slices.Sort(m)
	m = slices.Compact(m)

	parts := make([]string, len(m))
	for i, v := range m {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(parts, ",")
}
