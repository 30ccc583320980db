// SPDX-License-Identifier: MIT

// Package grid: sentinel error set.
// Every error returned by the package is (or wraps) one of these sentinels,
// so callers match with errors.Is. Public methods never panic on user input;
// MustNew is the single documented exception.

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrOversizedInput is returned by Populate when the input is longer than
	// the backing buffer. No cell is written in that case.
	ErrOversizedInput = errors.New("grid: data to populate is larger than the grid")

	// ErrInvalidRow indicates a row outside [0, Height()).
	ErrInvalidRow = errors.New("grid: invalid row for data access")

	// ErrInvalidColumn indicates a column outside [0, Width()).
	ErrInvalidColumn = errors.New("grid: invalid column for data access")

	// ErrInvalidDimensions is returned by New when width*height overflows int,
	// or when non-positive dimensions are passed under WithStrictDimensions.
	ErrInvalidDimensions = errors.New("grid: invalid dimensions")

	// ErrNilGrid indicates a method was called on a nil *Grid.
	ErrNilGrid = errors.New("grid: nil receiver")
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxPopulate = "Populate"
	ctxNew      = "New"
)

// gridErrorf attaches the method tag and coordinates to a sentinel.
// The sentinel stays reachable through %w.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}
