// Package instance models a weighted set covering instance.
//
// An Instance is append-only: columns (candidate sets) are added one at a
// time and receive their insertion index as a stable identifier. Rows
// (elements) are never created explicitly; they are the universe
// [0, NumElements) implied by the referenced indices or declared with
// WithUniverse.
//
// Lifecycle:
//
//	Building ──Prepare()──▶ Prepared ──AddColumn()──▶ Building
//
// Prepare rebuilds the row→column incidence (Sparse) and fails with
// ErrInfeasibleInstance when some element is covered by no column. Solvers
// only ever read the Sparse view of a Prepared instance.
//
// Errors (sentinel, match with errors.Is):
//
//	– ErrInvalidInput       negative cost, negative/out-of-universe element, empty column.
//	– ErrInfeasibleInstance an element no column covers.
//	– ErrNotPrepared        Sparse requested while Building.
//	– ErrColumnOutOfRange   a solution references an unknown column.
package instance
