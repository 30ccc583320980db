// SPDX-License-Identifier: MIT

// Package grid: functional configuration for construction.
// Options are applied in order; the last one touching a field wins.
// Unset fields fall back to the Default* constants below.

package grid

// DimensionPolicy selects how New treats non-positive width or height.
type DimensionPolicy int

const (
	// DimensionsNormalize turns width<1 or height<1 into an empty 0×0 grid.
	DimensionsNormalize DimensionPolicy = iota

	// DimensionsStrict rejects width<1 or height<1 with ErrInvalidDimensions.
	DimensionsStrict
)

// DefaultDimensionPolicy keeps construction infallible for non-positive sizes.
const DefaultDimensionPolicy = DimensionsNormalize

// Option mutates construction options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	dims DimensionPolicy
}

// WithStrictDimensions makes New fail with ErrInvalidDimensions instead of
// silently returning an empty grid.
func WithStrictDimensions() Option {
	return func(o *options) { o.dims = DimensionsStrict }
}

// WithNormalizedDimensions restores the default policy explicitly.
func WithNormalizedDimensions() Option {
	return func(o *options) { o.dims = DimensionsNormalize }
}

// gatherOptions folds opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) options {
	o := options{dims: DefaultDimensionPolicy}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
