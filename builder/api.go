// SPDX-License-Identifier: MIT
// Package: setcover/builder
//
// api.go - public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: BuildInstance(iopts, bopts, cons...). Creates the
//     instance, resolves cfg, runs cons in order, then prepares.
//   - Determinism: same inputs, options, seed and constructor order give
//     identical instances.
//   - Constructors return sentinel errors; they never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/setcover/instance"
)

// Constructor appends columns to in using the resolved builderConfig.
// Constructors MUST validate parameters before touching in and MUST be
// deterministic for the same config and call order.
type Constructor func(in *instance.Instance, cfg builderConfig) error

// BuildInstance creates a new instance with iopts, resolves bopts and applies
// every constructor in order. The returned instance is Prepared.
//
// Errors: constructor errors wrapped as "BuildInstance: %w"; a nil constructor
// or a failed Prepare yields ErrConstructFailed.
func BuildInstance(iopts []instance.Option, bopts []BuilderOption, cons ...Constructor) (*instance.Instance, error) {
	in := instance.New(iopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildInstance: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(in, cfg); err != nil {
			return nil, fmt.Errorf("BuildInstance: %w", err)
		}
	}

	if err := in.Prepare(); err != nil {
		return nil, fmt.Errorf("BuildInstance: %w: %w", ErrConstructFailed, err)
	}

	return in, nil
}

// appendColumns adds cols to in, pricing each column with cfg.
func appendColumns(method string, in *instance.Instance, cfg builderConfig, cols [][]int) error {
	for j, col := range cols {
		if _, err := in.AddColumn(col, cfg.cost(len(col))); err != nil {
			return fmt.Errorf("%s: AddColumn(#%d): %w: %w", method, j, ErrConstructFailed, err)
		}
	}

	return nil
}
