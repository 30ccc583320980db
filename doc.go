// Package array2d is a small home for a fixed-size, row-major 2D array
// container over any element type.
//
// Under the hood:
//
//	grid/    — Grid[T]: construction, bulk Populate, bounds-checked At/Set,
//	           unchecked fast paths, Clone and String
//	matconv/ — Grid[float64] ⇄ gonum mat.Dense conversion
//
// Quick ASCII example (width 3, height 2, offset = row*3 + column):
//
//	row 0 │ 0 1 2
//	row 1 │ 3 4 5
//
//	go get github.com/katalvlaran/array2d/grid
package array2d
