package stair_test

import (
	"fmt"

	"github.com/matzehuels/stairpath/pkg/stair"
)

func ExampleNewSet() {
	set, err := stair.NewSet([]stair.Staircase{
		{Begin: 0, End: 4},
		{Begin: 1, End: 3, Feeding: 1, Returning: 1},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("start:", set.Start())
	fmt.Println("terminal:", set.Terminal())
	fmt.Println("nodes:", set.NodeCount())
	// Output:
	// start: S1:0
	// terminal: S1:4
	// nodes: 8
}

func ExampleSet_Order() {
	set := stair.MustNewSet([]stair.Staircase{
		{Begin: 0, End: 2},
		{Begin: 1, End: 2, Feeding: 1, Returning: 1},
	})
	fmt.Println(set.Order())
	// Output:
	// [S1:0 S1:1 S2:1 S2:2 S1:2]
}

func ExampleNewSet_invalid() {
	_, err := stair.NewSet([]stair.Staircase{
		{Begin: 0, End: 4, Returning: 3},
	})
	fmt.Println(err)
	// Output:
	// INVALID_STRUCTURE: S1 returns into unknown staircase S3: staircase S1 violates "returning id in range"
}
