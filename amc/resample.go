package amc

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Center subtracts each channel's mean over all frames, in place, leaving
// every channel zero-mean at native resolution. It must run before any
// resampling so the mean is taken at full resolution.
func Center(m *mat.Dense) {
	_, cols := m.Dims()
	var col []float64
	for j := 0; j < cols; j++ {
		col = mat.Col(col, j, m)
		floats.AddConst(-stat.Mean(col, nil), col)
		m.SetCol(j, col)
	}
}

// Resample block-averages m down from inputRate to outputRate. Rows are
// grouped into consecutive non-overlapping windows of
// max(1, ceil(inputRate/outputRate)) rows and each window collapses to its
// per-channel mean. A leftover window of more than one row is averaged
// like the rest; a leftover of exactly one row passes through raw; no
// leftover, no extra row.
func Resample(m *mat.Dense, inputRate, outputRate float64) *mat.Dense {
	rows, cols := m.Dims()
	window := int(math.Ceil(inputRate / outputRate))
	if window < 1 {
		window = 1
	}

	whole := rows / window
	rem := rows - whole*window
	outRows := whole
	if rem >= 1 {
		outRows++
	}

	out := mat.NewDense(outRows, cols, nil)
	for i := 0; i < whole; i++ {
		meanRows(out, i, m, i*window, window)
	}
	switch {
	case rem > 1:
		meanRows(out, whole, m, whole*window, rem)
	case rem == 1:
		out.SetRow(whole, mat.Row(nil, rows-1, m))
	}
	return out
}

// meanRows writes the column-wise mean of n source rows starting at src
// into row dst of out.
func meanRows(out *mat.Dense, dst int, m *mat.Dense, src, n int) {
	_, cols := m.Dims()
	for j := 0; j < cols; j++ {
		sum := 0.0
		for i := src; i < src+n; i++ {
			sum += m.At(i, j)
		}
		out.Set(dst, j, sum/float64(n))
	}
}
