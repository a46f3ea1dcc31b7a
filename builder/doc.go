// Package builder generates deterministic set-covering instances for tests,
// benchmarks and the command line front-end.
//
// One orchestrator, many constructors:
//
//	inst, err := builder.BuildInstance(nil,
//	        []builder.BuilderOption{builder.WithSeed(42)},
//	        builder.RandomSparse(200, 2000, 0.02))
//
// BuildInstance creates an instance.Instance, resolves the builder options into
// an immutable config, runs every Constructor in order and finally calls
// Prepare. Constructors only append columns, so several of them can be
// composed over the same universe.
//
// Available constructors:
//
//   - RandomSparse(rows, cols, density): Bernoulli incidence, repaired so every
//     row is covered by at least WithMinRowCover columns.
//   - Rail(rows, cols, maxSpan): crew-scheduling shaped columns covering runs of
//     consecutive rows, with small integer costs (RAIL-like).
//   - Planted(rows, parts, decoys, density): a hidden disjoint partition whose
//     total cost bounds the optimum from above, buried among decoy columns.
//   - Fixture(name): the small hand-made instances used throughout the tests.
//
// Cost distributions are pluggable through WithCostFn (ConstantCostFn,
// UniformCostFn, IntegerCostFn).
//
// Option constructors panic on meaningless values. Constructors themselves
// never panic; they return the sentinel errors from errors.go wrapped with
// the constructor name.
package builder
