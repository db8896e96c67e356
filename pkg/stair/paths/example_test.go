package paths_test

import (
	"fmt"

	"lukechampine.com/uint128"

	"github.com/matzehuels/stairpath/pkg/stair"
	"github.com/matzehuels/stairpath/pkg/stair/paths"
)

func ExampleCount() {
	set := stair.MustNewSet([]stair.Staircase{{Begin: 0, End: 5}})
	counts, err := paths.Count(paths.BuildTable(set, paths.MustMoves(1, 2)))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("walks:", counts.Total())
	// Output:
	// walks: 8
}

func ExampleCounts_Select() {
	set := stair.MustNewSet([]stair.Staircase{
		{Begin: 0, End: 4},
		{Begin: 1, End: 3, Feeding: 1, Returning: 1},
	})
	counts, _ := paths.Count(paths.BuildTable(set, paths.MustMoves(1)))

	for r := uint64(1); r <= counts.Total().Lo; r++ {
		p, _ := counts.Select(uint128.From64(r))
		fmt.Println(r, p)
	}
	// Output:
	// 1 S1:0-S1:1-S1:2-S1:3-S1:4
	// 2 S1:0-S1:1-S2:2-S2:3-S1:3-S1:4
}

func ExampleCorridorCount() {
	n, _ := paths.CorridorCount(10, paths.MustMoves(1, 2))
	fmt.Println(n)
	// Output:
	// 89
}
