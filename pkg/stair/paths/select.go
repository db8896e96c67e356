package paths

import (
	"strings"

	"lukechampine.com/uint128"

	"github.com/matzehuels/stairpath/pkg/errors"
	"github.com/matzehuels/stairpath/pkg/stair"
)

// Path is a walk from the start node to the terminal node.
type Path []stair.Node

// String joins the nodes with hyphens: "S1:0-S1:2-S2:3".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, n := range p {
		parts[i] = n.String()
	}
	return strings.Join(parts, "-")
}

// Select returns the walk at 1-based position rank in canonical order.
//
// A rank above Total is clamped to Total, returning the last walk. A rank of
// zero, or a layout with no walk at all, is an ErrCodePrecondition error.
//
// At each node the successors are scanned in order while accumulating their
// counts; the first successor whose cumulative count reaches the rank still
// to be located is taken, and the counts skipped before it move the offset.
func (c *Counts) Select(rank uint128.Uint128) (Path, error) {
	total := c.Total()
	if total.IsZero() {
		return nil, errors.New(errors.ErrCodePrecondition, "no walk leads from %v to %v",
			c.table.set.Start(), c.table.set.Terminal())
	}
	if rank.IsZero() {
		return nil, errors.New(errors.ErrCodePrecondition, "rank is 1-based, got 0")
	}
	if rank.Cmp(total) > 0 {
		rank = total
	}

	terminal := c.table.set.Terminal()
	node := c.table.set.Start()
	path := Path{node}
	var offset uint128.Uint128

	// offset+running never exceeds Total, so the additions below cannot wrap.
	for node != terminal {
		var running uint128.Uint128
		next, found := stair.Node{}, false
		for _, s := range c.table.Successors(node) {
			cs := c.of[s]
			if cs.IsZero() {
				continue
			}
			if offset.Add(running).Add(cs).Cmp(rank) >= 0 {
				next, found = s, true
				break
			}
			running = running.Add(cs)
		}
		if !found {
			return nil, errors.New(errors.ErrCodeInternal, "no successor of %v covers rank %s", node, rank)
		}
		offset = offset.Add(running)
		node = next
		path = append(path, node)
	}
	return path, nil
}

// Rank returns the 1-based canonical position of p. It is the inverse of
// Select: Rank(Select(r)) == min(r, Total()).
//
// Rank returns an ErrCodeInvalidInput error if p does not start at the start
// node, end at the terminal node, or follow the successor table.
func (c *Counts) Rank(p Path) (uint128.Uint128, error) {
	set := c.table.set
	if len(p) == 0 || p[0] != set.Start() {
		return uint128.Zero, errors.New(errors.ErrCodeInvalidInput, "walk must start at %v", set.Start())
	}
	if p[len(p)-1] != set.Terminal() {
		return uint128.Zero, errors.New(errors.ErrCodeInvalidInput, "walk must end at %v", set.Terminal())
	}

	rank := uint128.From64(1)
	for i := 1; i < len(p); i++ {
		from, to := p[i-1], p[i]
		if from == set.Terminal() {
			return uint128.Zero, errors.New(errors.ErrCodeInvalidInput, "walk continues past %v", from)
		}
		found := false
		for _, s := range c.table.Successors(from) {
			if s == to {
				found = true
				break
			}
			rank = rank.Add(c.of[s])
		}
		if !found {
			return uint128.Zero, errors.New(errors.ErrCodeInvalidInput, "%v is not a successor of %v", to, from)
		}
	}
	return rank, nil
}
