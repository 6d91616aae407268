package amc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestSmoothAngles_WrapUp checks a positive-direction wrap: a channel
// smoothly passing 180 degrees but recorded as jumping to -178 is shifted
// up by 360 from the wrap point onward. The second channel must be
// untouched by the first channel's shift.
func TestSmoothAngles_WrapUp(t *testing.T) {
	m := mat.NewDense(4, 2, []float64{
		170, 5,
		175, 6,
		-178, 7,
		-170, 8,
	})

	shifted := SmoothAngles(m, []string{"lhumerus.rz", "root.ty"})

	assert.Equal(t, []string{"lhumerus.rz"}, shifted)
	assert.Equal(t, []float64{170, 175, 182, 190}, mat.Col(nil, 0, m))
	assert.Equal(t, []float64{5, 6, 7, 8}, mat.Col(nil, 1, m))
}

// TestSmoothAngles_WrapDown checks the symmetric negative-direction rule.
func TestSmoothAngles_WrapDown(t *testing.T) {
	m := mat.NewDense(3, 1, []float64{-170, -175, 178})

	shifted := SmoothAngles(m, []string{"rfemur.rx"})

	assert.Equal(t, []string{"rfemur.rx"}, shifted)
	assert.Equal(t, []float64{-170, -175, -182}, mat.Col(nil, 0, m))
}

// TestSmoothAngles_Idempotent checks that re-running the smoother on its
// own output introduces no further shifts.
func TestSmoothAngles_Idempotent(t *testing.T) {
	m := mat.NewDense(4, 1, []float64{170, 175, -178, -170})

	require.NotEmpty(t, SmoothAngles(m, []string{"c"}))
	before := mat.DenseCopyOf(m)

	assert.Empty(t, SmoothAngles(m, []string{"c"}))
	assert.True(t, mat.Equal(before, m))
}

// TestSmoothAngles_NoWrap checks that ordinary motion is left alone.
func TestSmoothAngles_NoWrap(t *testing.T) {
	m := mat.NewDense(3, 1, []float64{10, 30, -40})

	assert.Empty(t, SmoothAngles(m, []string{"c"}))
	assert.Equal(t, []float64{10, 30, -40}, mat.Col(nil, 0, m))
}
