// Package setcover is a heuristic solver for the weighted Set Covering
// Problem built on the CFT family: Lagrangian relaxation with subgradient
// optimisation, greedy primal construction and column-fixing refinement.
//
// What is in the box?
//
//	numeric/      the tolerance policy every bound/cost comparison goes through
//	instance/     append-only Instance (Building → Prepared), sparse incidence, Solution
//	lagrangian/   reduced costs, Lagrangian lower bound, subgradient ascent
//	greedy/       score-driven greedy cover + redundancy removal
//	fixing/       fixed-column subproblems and refinement fixing strategies
//	cft/          the solve driver: three-phase rounds, refinement, termination
//	builder/      deterministic synthetic instances for tests and benchmarks
//	cmd/cftsolve  command line front-end
//	examples/     runnable scenarios (sensor placement, crew scheduling)
//
// Quick example:
//
//	inst := instance.New()
//	_, _ = inst.AddColumn([]int{0, 1, 2, 3, 4, 5}, 5)
//	_, _ = inst.AddColumn([]int{6, 7, 8, 9}, 4)
//	_ = inst.Prepare()
//	res, err := cft.Solve(ctx, inst, nil, cft.WithSeed(7))
//
// The solver never finds provably optimal covers (no branch-and-bound); it
// returns the best cover found together with a valid Lagrangian lower bound.
package setcover
