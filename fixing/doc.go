// Package fixing shrinks a set covering instance by forcing columns into the
// solution, and decides which columns to force.
//
// A Subproblem is the base incidence restricted to the rows left open by the
// fixed columns, with the surviving columns re-indexed densely. Solutions of
// the subproblem lift back to base indices (fixed columns included), and
// base multipliers project onto its rows.
//
// Two selection rules live here:
//   - inner fixing: non-overlapping columns with clearly negative reduced cost;
//   - refinement fixing: columns of the incumbent ordered by a pluggable Scorer,
//     taken while the rows they cover stay within a fraction of all rows; the
//     fraction follows a Schedule that grows by alpha on stagnation and falls
//     back to its minimum on real improvement.
//
// Reduced-cost fixing-out (FixOut) marks columns that cannot take part in any
// strictly better cover given a lower bound and an upper bound.
package fixing
