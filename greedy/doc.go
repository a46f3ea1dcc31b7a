// Package greedy builds primal covers from Lagrangian multipliers.
//
// Each column j carries
//
//	gamma_j = c_j − Σ_{i ∈ j, i uncovered} u_i     (reduced cost on the open rows)
//	mu_j    = |{i ∈ j : i uncovered}|              (rows it would newly cover)
//
// and the score is gamma/mu when gamma > 0, gamma·mu otherwise. The column with
// the lowest score is taken (ties by lowest index), its rows are closed, and the
// scores of every column touching a closed row are refreshed. With u = 0 the
// score is the classical cost per newly covered row.
//
// After a cover is complete, redundant columns are pruned: the most expensive
// redundant ones are dropped until at most EnumLimit remain, then the best
// subset of the remainder is found by enumeration.
//
// Scores live in a lazy binary heap (stale entries are skipped by version), so
// one construction costs O(nnz · log ncols).
package greedy
