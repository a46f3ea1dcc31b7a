// SPDX-License-Identifier: MIT

package instance

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks malformed input at the API boundary. It is always
	// returned synchronously by the call that introduced the bad value.
	ErrInvalidInput = errors.New("instance: invalid input")

	// ErrInfeasibleInstance marks an instance (or a fixed subproblem) where at
	// least one element cannot be covered by any admissible column.
	ErrInfeasibleInstance = errors.New("instance: infeasible instance")

	// ErrNotPrepared is returned when the incidence view is requested while the
	// instance is still Building.
	ErrNotPrepared = errors.New("instance: not prepared")

	// ErrColumnOutOfRange indicates a column index outside [0, NumColumns).
	ErrColumnOutOfRange = errors.New("instance: column index out of range")

	// ErrUncovered indicates a solution whose columns leave some element uncovered.
	ErrUncovered = errors.New("instance: solution does not cover every element")
)

// ColumnError describes a rejected AddColumn call. It unwraps to ErrInvalidInput.
type ColumnError struct {
	Column  int     // index the column would have received
	Element int     // offending element, -1 when the cost is at fault
	Cost    float64 // offered cost
	Reason  string
}

func (e ColumnError) Error() string {
	if e.Element >= 0 {
		return fmt.Sprintf("instance: column %d: element %d: %s", e.Column, e.Element, e.Reason)
	}

	return fmt.Sprintf("instance: column %d: cost %g: %s", e.Column, e.Cost, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvalidInput) match.
func (e ColumnError) Unwrap() error { return ErrInvalidInput }
