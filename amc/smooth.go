package amc

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// wrapStep is the discontinuity the smoother removes. AMC angles are
// recorded in degrees, so a wrap shows up as a ±360 jump between frames.
const wrapStep = 360.0

// SmoothAngles removes wraparound discontinuities from every channel of m,
// in place. Whenever a step between consecutive frames lands closer to
// zero after shifting by ±360, that shift is folded into a running offset
// applied to the rest of the channel, permanently moving its baseline.
// Channels are handled independently. The returned list names the channels
// that were shifted at least once.
func SmoothAngles(m *mat.Dense, names []string) []string {
	rows, cols := m.Dims()
	if rows < 2 {
		return nil
	}

	var shifted []string
	for j := 0; j < cols; j++ {
		offset := 0.0
		touched := false
		prev := m.At(0, j)
		for i := 1; i < rows; i++ {
			cur := m.At(i, j) + offset
			delta := cur - prev
			switch {
			case math.Abs(delta+wrapStep) < math.Abs(delta):
				offset += wrapStep
				cur += wrapStep
				touched = true
			case math.Abs(delta-wrapStep) < math.Abs(delta):
				offset -= wrapStep
				cur -= wrapStep
				touched = true
			}
			m.Set(i, j, cur)
			prev = cur
		}
		if touched {
			shifted = append(shifted, names[j])
		}
	}
	return shifted
}
