package stair

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/stairpath/pkg/errors"
)

// Node is a position on a staircase. It is comparable and used as the key of
// every derived table.
type Node struct {
	Staircase ID
	Rank      StepRank
}

// String renders the node as "S<id>:<rank>".
func (n Node) String() string {
	return fmt.Sprintf("S%d:%d", n.Staircase, n.Rank)
}

// Compare orders nodes by staircase id, then by rank. It is the canonical
// successor order.
func Compare(a, b Node) int {
	if c := cmp.Compare(a.Staircase, b.Staircase); c != 0 {
		return c
	}
	return cmp.Compare(a.Rank, b.Rank)
}

// ParseNode parses the "S<id>:<rank>" form produced by Node.String.
func ParseNode(s string) (Node, error) {
	name, rank, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || !strings.HasPrefix(name, "S") {
		return Node{}, errors.New(errors.ErrCodeInvalidInput, "node %q is not of the form S<id>:<rank>", s)
	}
	id, err := strconv.Atoi(name[1:])
	if err != nil || id < 1 {
		return Node{}, errors.New(errors.ErrCodeInvalidInput, "node %q has an invalid staircase id", s)
	}
	r, err := strconv.ParseUint(rank, 10, 0)
	if err != nil {
		return Node{}, errors.New(errors.ErrCodeInvalidInput, "node %q has an invalid rank", s)
	}
	return Node{Staircase: ID(id), Rank: StepRank(r)}, nil
}
