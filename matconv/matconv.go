// SPDX-License-Identifier: MIT

package matconv

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/array2d/grid"
)

// ErrEmptyGrid indicates a zero-sized grid or matrix, which gonum's Dense rejects.
var ErrEmptyGrid = errors.New("matconv: empty grid")

// ToDense copies g into a new height×width *mat.Dense.
// Complexity: O(w*h).
func ToDense(g *grid.Grid[float64]) (*mat.Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("matconv.ToDense: %w", grid.ErrNilGrid)
	}
	if g.Size() == 0 {
		return nil, fmt.Errorf("matconv.ToDense: %w", ErrEmptyGrid)
	}
	rows, cols := g.Height(), g.Width()
	data := make([]float64, 0, g.Size())
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data = append(data, g.AtUnchecked(i, j)) // bounds fixed by the loops
		}
	}

	return mat.NewDense(rows, cols, data), nil
}

// FromMatrix copies any gonum matrix into a new grid with Width()=cols and Height()=rows.
// Complexity: O(r*c).
func FromMatrix(m mat.Matrix) (*grid.Grid[float64], error) {
	if m == nil {
		return nil, fmt.Errorf("matconv.FromMatrix: nil matrix: %w", ErrEmptyGrid)
	}
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("matconv.FromMatrix(%d×%d): %w", rows, cols, ErrEmptyGrid)
	}
	g, err := grid.New[float64](cols, rows, grid.WithStrictDimensions())
	if err != nil {
		return nil, fmt.Errorf("matconv.FromMatrix: %w", err)
	}
	data := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data = append(data, m.At(i, j))
		}
	}
	if err = g.Populate(data); err != nil {
		return nil, fmt.Errorf("matconv.FromMatrix: %w", err)
	}

	return g, nil
}
