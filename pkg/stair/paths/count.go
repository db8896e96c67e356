package paths

import (
	"lukechampine.com/uint128"

	"github.com/matzehuels/stairpath/pkg/errors"
	"github.com/matzehuels/stairpath/pkg/stair"
)

// MaxPathCount is the largest path count the engine represents.
var MaxPathCount = uint128.Max

// Counts holds, for every node of a table, the number of walks from that
// node to the terminal node.
type Counts struct {
	table *Table
	of    map[stair.Node]uint128.Uint128
}

// Count computes path counts for every node of t.
//
// Nodes are processed in the reverse of the layout's visiting order, so every
// successor is counted before the nodes leading to it. The terminal node
// counts 1; any other node counts the sum over its successors, which is 0 for
// a dead end.
//
// Count returns an ErrCodeUnsupportedScale error naming the node whose count
// exceeds MaxPathCount, and an ErrCodeInvalidStructure error if a successor
// is met before it was counted.
func Count(t *Table) (*Counts, error) {
	order := t.set.Order()
	terminal := t.set.Terminal()
	c := &Counts{
		table: t,
		of:    make(map[stair.Node]uint128.Uint128, len(order)),
	}

	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		if n == terminal {
			c.of[n] = uint128.From64(1)
			continue
		}

		var sum uint128.Uint128
		for _, s := range t.Successors(n) {
			cs, ok := c.of[s]
			if !ok {
				return nil, errors.Structural(int(n.Staircase), errors.InvariantSuccessorOrder,
					"successor %v of %v is not counted yet", s, n)
			}
			next, overflow := addChecked(sum, cs)
			if overflow {
				return nil, errors.New(errors.ErrCodeUnsupportedScale,
					"path count from %v exceeds %s", n, MaxPathCount)
			}
			sum = next
		}
		c.of[n] = sum
	}
	return c, nil
}

// Of returns the number of walks from n to the terminal node.
// Nodes outside the layout count zero.
func (c *Counts) Of(n stair.Node) uint128.Uint128 { return c.of[n] }

// Total returns the number of walks from the start node to the terminal node.
func (c *Counts) Total() uint128.Uint128 { return c.of[c.table.set.Start()] }

// Table returns the successor table the counts were computed over.
func (c *Counts) Table() *Table { return c.table }

func addChecked(a, b uint128.Uint128) (uint128.Uint128, bool) {
	s := a.AddWrap(b)
	return s, s.Cmp(a) < 0
}
