// Package cft drives the Caprara–Fischetti–Toth heuristic for weighted set
// covering.
//
// A solve moves through an explicit state machine:
//
//	Init → PrimalConstruct (raw-cost greedy, so a cover exists early)
//	     → rounds of { DualAscent → PrimalConstruct → inner fixing } on the
//	       current restriction (the "three-phase" loop)
//	     → Refine (fix part of the incumbent, grow the fraction by Alpha)
//	     → Done
//
// The lower bound reported in Result is the best Lagrangian bound of the full
// instance, computed in the first round before any refinement fixing. Covers
// found on restricted problems are lifted back to original column indices
// before they compete for the incumbent.
//
// Determinism: for a fixed instance, Options and Seed the result is
// reproducible, including with Workers > 1 (parallel pricing sums in block
// order). Only the time limit and ctx can make two runs differ.
//
// Example:
//
//	inst := instance.New()
//	_, _ = inst.AddColumn([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 10)
//	_, _ = inst.AddColumn([]int{0, 1, 2, 3, 4, 5}, 5)
//	_, _ = inst.AddColumn([]int{0, 1, 2, 3, 4}, 4)
//	_, _ = inst.AddColumn([]int{6, 7, 8, 9}, 4)
//
//	res, err := cft.Solve(ctx, inst, nil,
//	        cft.WithSeed(7),
//	        cft.WithTimeLimit(2*time.Second))
//	// res.Columns() == [1 3], res.Cost() == 9, res.LowerBound ≥ 8.99
//
// Warm start: pass a previous Result.Solution to keep improving after new
// columns were added. The solution is only read; a warm start that no longer
// covers the universe is ignored.
package cft
