package paths

import (
	"math/big"
	"strings"

	"lukechampine.com/uint128"

	"github.com/matzehuels/stairpath/pkg/errors"
	"github.com/matzehuels/stairpath/pkg/stair"
)

// ParseRank parses a decimal 1-based rank. Values wider than 128 bits
// saturate to the maximum, which Select then clamps to the total.
func ParseRank(s string) (uint128.Uint128, error) {
	s = strings.TrimSpace(s)
	if err := errors.ValidateRank(s); err != nil {
		return uint128.Zero, err
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return uint128.Zero, errors.New(errors.ErrCodeInvalidInput, "rank must be a decimal integer: %q", s)
	}
	if v.BitLen() > 128 {
		return uint128.Max, nil
	}
	return uint128.FromBig(v), nil
}

// ParsePath parses the String form of a Path.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "path cannot be empty")
	}
	parts := strings.Split(s, "-")
	p := make(Path, 0, len(parts))
	for _, part := range parts {
		n, err := stair.ParseNode(part)
		if err != nil {
			return nil, err
		}
		p = append(p, n)
	}
	return p, nil
}
