package amc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ramp builds an n-by-1 matrix whose single channel counts 0..n-1.
func ramp(n int) *mat.Dense {
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i)
	}
	return mat.NewDense(n, 1, data)
}

// TestCenter checks every channel is exactly zero-mean afterwards.
func TestCenter(t *testing.T) {
	m := mat.NewDense(3, 2, []float64{
		0, 7,
		10, 7,
		20, 7,
	})

	Center(m)

	assert.Equal(t, []float64{-10, 0, 10}, mat.Col(nil, 0, m))
	assert.Equal(t, []float64{0, 0, 0}, mat.Col(nil, 1, m))
	assert.InDelta(t, 0, stat.Mean(mat.Col(nil, 0, m), nil), 1e-12)
}

// TestResample_SingletonRemainder checks the boundary rule for
// N=121, window=12: ten averaged windows plus the last row passed through
// raw, giving 11 output rows.
func TestResample_SingletonRemainder(t *testing.T) {
	out := Resample(ramp(121), 12, 1)

	rows, cols := out.Dims()
	require.Equal(t, 11, rows)
	require.Equal(t, 1, cols)
	assert.InDelta(t, 5.5, out.At(0, 0), 1e-12) // mean of 0..11
	assert.Equal(t, 120.0, out.At(10, 0))       // raw passthrough
}

// TestResample_PartialRemainder checks N=125, window=12: ten averaged
// windows plus an averaged remainder of 5 rows, 11 output rows.
func TestResample_PartialRemainder(t *testing.T) {
	out := Resample(ramp(125), 12, 1)

	rows, _ := out.Dims()
	require.Equal(t, 11, rows)
	assert.InDelta(t, 122, out.At(10, 0), 1e-12) // mean of 120..124
}

// TestResample_ExactMultiple checks that a zero-row remainder emits no
// extra output row.
func TestResample_ExactMultiple(t *testing.T) {
	out := Resample(ramp(24), 12, 1)

	rows, _ := out.Dims()
	require.Equal(t, 2, rows)
	assert.InDelta(t, 5.5, out.At(0, 0), 1e-12)
	assert.InDelta(t, 17.5, out.At(1, 0), 1e-12)
}

// TestResample_UnitWindow checks that equal rates leave the matrix as-is.
func TestResample_UnitWindow(t *testing.T) {
	m := ramp(5)
	out := Resample(m, 60, 60)

	assert.True(t, mat.Equal(m, out))
}

// TestResample_CeilWindow checks the window size rounds up for rates that
// do not divide evenly.
func TestResample_CeilWindow(t *testing.T) {
	// ceil(120/9) = 14, so 28 rows collapse to exactly 2 windows.
	out := Resample(ramp(28), 120, 9)

	rows, _ := out.Dims()
	assert.Equal(t, 2, rows)
}
