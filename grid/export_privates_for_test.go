// SPDX-License-Identifier: MIT

package grid

// Test-Bridge (White-Box) for Grid internals
//
// Purpose:
//   - Expose the unexported backing buffer and resolved options to grid_test ONLY.
//   - Let tests assert buffer-level invariants (prefix overwrite, no mutation on error)
//     without widening the production API.
//
// Build Policy:
//   - The _test.go suffix keeps this file out of production builds.
//
// Provided Surface:
//   - ExportedData: the live buffer (no copy); mutations reach the grid.
//   - ExportedDimensionPolicy: the DimensionPolicy gatherOptions resolves for opts.

// ExportedData returns the backing buffer without copying.
func ExportedData[T any](g *Grid[T]) []T { return g.data }

// ExportedDimensionPolicy reports the policy gatherOptions resolves for opts.
func ExportedDimensionPolicy(opts ...Option) DimensionPolicy { return gatherOptions(opts...).dims }
