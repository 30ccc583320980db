package matconv_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/array2d/grid"
	"github.com/katalvlaran/array2d/matconv"
)

// TestToDense checks that a 3-wide, 2-high grid becomes a 2×3 matrix with the same cells.
func TestToDense(t *testing.T) {
	g := grid.MustNew[float64](3, 2)
	require.NoError(t, g.Populate([]float64{1, 2, 3, 4, 5, 6}))

	d, err := matconv.ToDense(g)
	require.NoError(t, err)

	r, c := d.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	if diff := cmp.Diff([]float64{1, 2, 3, 4, 5, 6}, d.RawMatrix().Data); diff != "" {
		t.Errorf("dense data mismatch (-want +got):\n%s", diff)
	}

	// The matrix owns its storage.
	d.Set(0, 0, 99)
	v, err := g.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestToDenseErrors covers nil and empty grids.
func TestToDenseErrors(t *testing.T) {
	_, err := matconv.ToDense(nil)
	require.ErrorIs(t, err, grid.ErrNilGrid)

	_, err = matconv.ToDense(grid.MustNew[float64](0, 0))
	require.ErrorIs(t, err, matconv.ErrEmptyGrid)
}

// TestFromMatrix converts a transposed view, exercising the generic mat.Matrix path.
func TestFromMatrix(t *testing.T) {
	d := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	g, err := matconv.FromMatrix(d.T())
	require.NoError(t, err)
	require.Equal(t, 2, g.Width())
	require.Equal(t, 3, g.Height())
	require.Equal(t, "[1, 4]\n[2, 5]\n[3, 6]\n", g.String())
}

// TestFromMatrixErrors covers nil and zero-sized inputs.
func TestFromMatrixErrors(t *testing.T) {
	_, err := matconv.FromMatrix(nil)
	require.ErrorIs(t, err, matconv.ErrEmptyGrid)

	_, err = matconv.FromMatrix(&mat.Dense{})
	require.ErrorIs(t, err, matconv.ErrEmptyGrid)
}

// TestRoundTrip converts grid → Dense → grid and compares buffers.
func TestRoundTrip(t *testing.T) {
	g := grid.MustNew[float64](4, 3)
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			require.NoError(t, g.Set(r, c, float64(10*r+c)))
		}
	}

	d, err := matconv.ToDense(g)
	require.NoError(t, err)
	back, err := matconv.FromMatrix(d)
	require.NoError(t, err)

	require.Equal(t, g.String(), back.String())
	require.Equal(t, g.Size(), back.Size())
}
