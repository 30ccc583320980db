// SPDX-License-Identifier: MIT

// Package grid - row-major storage & safe accessors.
//
// Purpose:
//   - Keep a width×height grid in one flat buffer with offset row*width + column.
//   - Guarantee safety at the public surface: At/Set/Populate return errors instead of panicking.
//   - Offer clearly named unchecked paths for callers that already validated coordinates.
//
// Complexity quicksheet:
//   - New: O(w*h) zero-init; At/Set/Index: O(1); Populate: O(len(data)); Clone/String: O(w*h).

package grid

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Cloner is implemented by element types that own aliased state (slices,
// maps, pointers). Grid calls Clone whenever a value crosses its boundary,
// so reads never hand out references into the buffer.
type Cloner[T any] interface {
	Clone() T
}

// Grid is a fixed-size two-dimensional array stored row-major.
//   - width is the number of columns, height the number of rows.
//   - data holds width*height cells; offset = row*width + column.
//
// The zero value is an empty 0×0 grid. A Grid is not safe for concurrent use;
// callers sharing one must synchronize externally.
type Grid[T any] struct {
	data          []T // contiguous row-major storage (len == width*height)
	width, height int // column and row counts (both 0 for an empty grid)
}

var _ fmt.Stringer = (*Grid[int])(nil)

// New creates a width×height grid with every cell set to T's zero value.
// MAIN DESCRIPTION:
//   - Public constructor with an explicit policy for degenerate sizes.
//
// Implementation:
//   - Stage 1: gather options.
//   - Stage 2: width<1 or height<1 ⇒ empty grid (default) or ErrInvalidDimensions (strict).
//   - Stage 3: reject width*height overflowing int.
//   - Stage 4: allocate the zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (overflow, or non-positive size under WithStrictDimensions).
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func New[T any](width, height int, opts ...Option) (*Grid[T], error) {
	o := gatherOptions(opts...)

	if width < 1 || height < 1 {
		if o.dims == DimensionsStrict {
			return nil, fmt.Errorf("Grid.%s(%d,%d): %w", ctxNew, width, height, ErrInvalidDimensions)
		}
		return &Grid[T]{data: []T{}}, nil
	}
	if height > math.MaxInt/width {
		return nil, fmt.Errorf("Grid.%s(%d,%d): size overflows int: %w", ctxNew, width, height, ErrInvalidDimensions)
	}

	return &Grid[T]{
		data:   make([]T, width*height),
		width:  width,
		height: height,
	}, nil
}

// MustNew is like New but panics on error. Intended for tests and
// package-level literals with constant dimensions.
func MustNew[T any](width, height int, opts ...Option) *Grid[T] {
	g, err := New[T](width, height, opts...)
	if err != nil {
		panic(err)
	}

	return g
}

// Populate overwrites the first len(data) cells with data, in row-major order.
// Cells past len(data) keep their values. If data is longer than the grid,
// ErrOversizedInput is returned and nothing is written.
func (g *Grid[T]) Populate(data []T) error {
	if g == nil {
		return gridErrorf(ctxPopulate, 0, 0, ErrNilGrid)
	}
	if len(data) > len(g.data) {
		return fmt.Errorf("Grid.%s: %d values for %d cells: %w", ctxPopulate, len(data), len(g.data), ErrOversizedInput)
	}
	for i, v := range data {
		g.data[i] = copyOf(v)
	}

	return nil
}

// Size returns the number of cells, width*height.
func (g *Grid[T]) Size() int {
	if g == nil {
		return 0
	}

	return len(g.data)
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int {
	if g == nil {
		return 0
	}

	return g.height
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int {
	if g == nil {
		return 0
	}

	return g.width
}

// Index returns the buffer offset of (row, column): width*row + column.
// It performs no bounds checking.
func (g *Grid[T]) Index(row, column int) int {
	return g.width*row + column
}

// checkBounds is the single bounds routine behind every checked accessor.
// Rows are validated before columns.
func (g *Grid[T]) checkBounds(method string, row, column int) error {
	if g == nil {
		return gridErrorf(method, row, column, ErrNilGrid)
	}
	if row < 0 || row >= g.height {
		return gridErrorf(method, row, column, ErrInvalidRow)
	}
	if column < 0 || column >= g.width {
		return gridErrorf(method, row, column, ErrInvalidColumn)
	}

	return nil
}

// At returns a copy of the value at (row, column).
// Errors:
//   - ErrInvalidRow when row < 0 or row >= Height().
//   - ErrInvalidColumn when column < 0 or column >= Width().
//   - ErrNilGrid on a nil receiver.
func (g *Grid[T]) At(row, column int) (T, error) {
	if err := g.checkBounds(ctxAt, row, column); err != nil {
		var zero T
		return zero, err
	}

	return copyOf(g.data[g.Index(row, column)]), nil
}

// Set stores a copy of v at (row, column). It validates coordinates exactly like At.
func (g *Grid[T]) Set(row, column int, v T) error {
	if err := g.checkBounds(ctxSet, row, column); err != nil {
		return err
	}
	g.data[g.Index(row, column)] = copyOf(v)

	return nil
}

// AtUnchecked reads (row, column) without validating the coordinates.
// Out-of-range coordinates that still land inside the buffer return another
// cell's value; those outside it panic.
func (g *Grid[T]) AtUnchecked(row, column int) T {
	return copyOf(g.data[g.Index(row, column)])
}

// SetUnchecked writes (row, column) without validating the coordinates.
// Same caveats as AtUnchecked.
func (g *Grid[T]) SetUnchecked(row, column int, v T) {
	g.data[g.Index(row, column)] = copyOf(v)
}

// Clone returns a deep copy with independent storage.
// Elements implementing Cloner are cloned cell by cell.
// Complexity: O(w*h).
func (g *Grid[T]) Clone() *Grid[T] {
	if g == nil {
		return nil
	}
	buf := make([]T, len(g.data))
	for i, v := range g.data {
		buf[i] = copyOf(v)
	}

	return &Grid[T]{data: buf, width: g.width, height: g.height}
}

// String implements fmt.Stringer: one bracketed line per row.
func (g *Grid[T]) String() string {
	if g == nil {
		return ""
	}
	var sb strings.Builder
	for i := 0; i < g.height; i++ {
		sb.WriteString(_fmtRowOpen)
		row := g.data[i*g.width : (i+1)*g.width]
		for j, v := range row {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%v", v)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// copyOf duplicates v through Cloner when T provides it; otherwise plain
// assignment already copies. Nil references are returned as-is.
func copyOf[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok && !isNil(v) {
		return c.Clone()
	}

	return v
}

// isNil reports whether v is a nil pointer, map, slice, interface, func or chan.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
