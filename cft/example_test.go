package cft_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/setcover/cft"
	"github.com/katalvlaran/setcover/instance"
)

func ExampleSolve() {
	inst := instance.New()
	_, _ = inst.AddColumn([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 10)
	_, _ = inst.AddColumn([]int{0, 1, 2, 3, 4, 5}, 5)
	_, _ = inst.AddColumn([]int{0, 1, 2, 3, 4}, 4)
	_, _ = inst.AddColumn([]int{6, 7, 8, 9}, 4)

	res, err := cft.Solve(context.Background(), inst, nil, cft.WithSeed(7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Columns(), res.Cost(), res.Status)
	fmt.Println(res.LowerBound >= 8.9)
	// Output:
	// [1 3] 9 gap-closed
	// true
}

func ExampleSolve_warmStart() {
	inst := instance.New()
	_, _ = inst.AddColumn([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 10)
	_, _ = inst.AddColumn([]int{0, 1, 2, 3, 4, 5}, 5)
	_, _ = inst.AddColumn([]int{0, 1, 2, 3, 4}, 4)
	_, _ = inst.AddColumn([]int{6, 7, 8, 9}, 4)

	ctx := context.Background()
	first, _ := cft.Solve(ctx, inst, nil)

	// A strictly cheaper column arrives; re-solve from the previous cover.
	_, _ = inst.AddColumn([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 5)
	second, err := cft.Solve(ctx, inst, &first.Solution)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(first.Columns(), first.Cost())
	fmt.Println(second.Columns(), second.Cost())
	// Output:
	// [1 3] 9
	// [4] 5
}
