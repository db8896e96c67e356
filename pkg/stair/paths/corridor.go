package paths

import (
	"lukechampine.com/uint128"

	"github.com/matzehuels/stairpath/pkg/errors"
)

// CorridorCount returns the number of move sequences covering exactly span
// unit steps along a single corridor with no feed or return links, i.e. the
// number of compositions of span into parts drawn from moves.
//
// It needs no layout and runs in O(span * moves.Len()), which makes it a
// cheap cross-check of Count on the primary corridor alone.
func CorridorCount(span uint, moves Moves) (uint128.Uint128, error) {
	ways := make([]uint128.Uint128, span+1)
	ways[0] = uint128.From64(1)
	for n := uint(1); n <= span; n++ {
		for _, m := range moves.sizes {
			if m > n {
				break
			}
			sum, overflow := addChecked(ways[n], ways[n-m])
			if overflow {
				return uint128.Zero, errors.New(errors.ErrCodeUnsupportedScale,
					"corridor count over %d steps exceeds %s", n, MaxPathCount)
			}
			ways[n] = sum
		}
	}
	return ways[span], nil
}
