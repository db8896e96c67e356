// Package paths counts and unranks walks through a staircase layout.
//
// # Moves and Sub-steps
//
// A walker advances by one of a finite set of allowed move sizes ([Moves]).
// A move of size m is m unit sub-steps. A sub-step is either one rank forward
// on the current staircase or, at the last rank of a staircase with a return
// link, a hand-off to the same rank on the returning staircase. Before each
// sub-step the walker may also branch, for free, onto any staircase fed from
// its current staircase at its current rank.
//
// # Pipeline
//
// The package is a chain of one-shot passes over immutable data:
//
//  1. [Expander] computes the frontier reachable after k sub-steps.
//  2. [BuildTable] derives, per node, the sorted set of nodes reachable by
//     exactly one allowed move.
//  3. [Count] runs a dynamic programme over the layout's visiting order in
//     reverse, giving the number of walks from every node to the terminal.
//  4. [Counts.Select] picks the walk at a given 1-based rank in canonical
//     order without enumerating the others; [Counts.Rank] is its inverse.
//
// Canonical order is lexicographic over successor choices, successors being
// sorted by staircase id then rank.
//
// # Integer Width
//
// Counts and ranks are 128-bit unsigned integers ([uint128.Uint128]). Sums
// are checked: a count above [MaxPathCount] is reported as an
// [errors.ErrCodeUnsupportedScale] error instead of wrapping around.
//
// # Concurrency
//
// A built [Table] and [Counts] are read-only and safe for concurrent readers.
// Building them is single-threaded.
//
// [uint128.Uint128]: lukechampine.com/uint128
// [errors.ErrCodeUnsupportedScale]: github.com/matzehuels/stairpath/pkg/errors
package paths
