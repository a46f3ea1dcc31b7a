package cft

import (
	"errors"

	"github.com/katalvlaran/setcover/instance"
)

var (
	// ErrTimeLimit marks a solve whose wall-clock budget ran out before any
	// feasible cover existed. It is always joined with ErrInfeasibleInstance.
	ErrTimeLimit = errors.New("cft: time limit reached")

	// ErrInvalidInput is instance.ErrInvalidInput, re-exported so callers of
	// Solve need a single import for errors.Is checks.
	ErrInvalidInput = instance.ErrInvalidInput

	// ErrInfeasibleInstance is instance.ErrInfeasibleInstance, re-exported.
	ErrInfeasibleInstance = instance.ErrInfeasibleInstance
)
