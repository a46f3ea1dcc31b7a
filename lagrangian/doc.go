// Package lagrangian implements the Lagrangian dual side of the CFT heuristic
// for weighted set covering.
//
// Relaxing every covering constraint Σ_{j∋i} x_j ≥ 1 with a multiplier u_i ≥ 0
// gives, for every column j, the reduced cost
//
//	rc_j = c_j − Σ_{i∈j} u_i
//
// and the Lagrangian lower bound
//
//	L(u) = Σ_i u_i + Σ_j min(0, rc_j)
//
// which is valid for every u ≥ 0. The Engine maximizes L(u) with a projected
// subgradient ascent whose step is the Held–Karp recipe
//
//	t = f · (UB − L(u)) / ||g||²
//
// where g_i = 1 − (coverage of row i by the relaxed selection) and f is the
// step factor, halved on every plateau of PlateauWindow non-improving iterations.
//
// Contracts:
//   - The best bound over the whole history is reported, never the last one.
//   - Multipliers stay non-negative after every update.
//   - Pricing may fan out over column blocks (errgroup); the block partition and
//     the summation order do not depend on the worker count, so results are
//     bit-identical for every Workers value.
//
// Complexity: O(nnz) per iteration plus O(k log k) to order the k columns of the
// relaxed selection.
package lagrangian
