// Package grid provides Grid, a fixed-size two-dimensional array over any
// element type, stored row-major in a single contiguous buffer.
//
// What:
//
//   - New allocates width×height cells, each holding T's zero value.
//   - Populate overwrites a prefix of the buffer in row-major order.
//   - At/Set read and write one cell behind a shared bounds check.
//   - AtUnchecked/SetUnchecked skip validation for pre-validated hot loops.
//
// Addressing:
//
//	offset = row*width + column,  0 <= row < height, 0 <= column < width
//
// Sizes:
//
//   - By default width<1 or height<1 yields an empty 0×0 grid and no error.
//   - WithStrictDimensions turns that case into ErrInvalidDimensions.
//   - width*height overflowing int is always ErrInvalidDimensions.
//
// Errors:
//
//   - ErrOversizedInput: Populate data longer than the grid; nothing written.
//   - ErrInvalidRow / ErrInvalidColumn: coordinate outside the grid.
//   - ErrInvalidDimensions: rejected construction.
//   - ErrNilGrid: method called on a nil *Grid.
//
// A row equal to Height() is rejected. Earlier revisions of this container
// accepted it (row > height check) and read into the next row's storage.
//
// Grid does no locking. Share it across goroutines only behind the caller's
// own synchronization.
package grid
