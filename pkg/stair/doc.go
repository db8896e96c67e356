// Package stair provides the staircase layout model: linear segments of step
// ranks linked by feed and return connections, and the node space derived
// from them.
//
// # Overview
//
// A layout is a list of staircases identified by 1-based ids. Staircase 1 is
// the primary corridor: it is the only staircase fed from START and its span
// bounds every other staircase. A staircase may be fed from another one (a
// walker standing on the feeding staircase at the fed staircase's first rank
// may branch onto it without spending a step) and may return into another one
// (a walker reaching its last rank continues at the same rank on the
// returning staircase).
//
// Create a layout with [NewSet]; it validates every structural rule and
// computes the visiting order up front, so a returned [Set] is immutable and
// always consistent:
//
//	set, err := stair.NewSet([]stair.Staircase{
//	    {Begin: 0, End: 6},
//	    {Begin: 2, End: 4, Feeding: 1, Returning: 1},
//	})
//
// # Nodes
//
// A [Node] is a (staircase id, step rank) pair. Nodes are plain comparable
// values used as map keys by every derived structure; there are no pointer
// links between staircases, only ids into the [Set] arena.
//
// # Visiting Order
//
// [Set.Order] lists every node by increasing rank. Within a rank, staircases
// ending there come first, then staircases passing through, then staircases
// beginning there, each group by id. That base order is then refined so a
// node always precedes the same-rank nodes it can reach through a feed branch
// or a return hand-off. Path counting walks this order backwards.
//
// # Errors
//
// Every structural violation is reported as an
// [errors.ErrCodeInvalidStructure] error whose cause is an
// [errors.InvariantError] naming the staircase and the broken rule.
//
// [errors.ErrCodeInvalidStructure]: github.com/matzehuels/stairpath/pkg/errors
// [errors.InvariantError]: github.com/matzehuels/stairpath/pkg/errors
package stair
