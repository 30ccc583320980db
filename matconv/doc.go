// Package matconv converts between grid.Grid[float64] and gonum's mat types.
//
// Both sides are row-major: grid height maps to matrix rows and grid width to
// matrix columns, so cell (row, column) keeps its coordinates.
//
// gonum cannot represent an empty Dense; converting a 0×0 grid returns
// ErrEmptyGrid.
package matconv
