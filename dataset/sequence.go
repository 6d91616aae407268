// Package dataset defines the container types handed to the dataset
// assembly step: per-recording observation sequences plus the integer
// labels aligned with them.
package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Sequence is one recording prepared for sequence modeling. X holds the
// observation at each timestep and Xprev the observation one step earlier,
// both views into the same resampled matrix offset by one row; the first
// raw row has no predecessor and is dropped. TrueZ carries one integer
// label per row of X.
type Sequence struct {
	X         *mat.Dense
	Xprev     *mat.Dense
	TrueZ     []int
	Filename  string
	Framerate float64
}

// NewSequence splits a resampled observation matrix into the X/Xprev pair
// and attaches labels. labels must align 1:1 with X, which has one row
// fewer than m.
func NewSequence(m *mat.Dense, labels []int, filename string, framerate float64) (*Sequence, error) {
	rows, cols := m.Dims()
	if rows < 2 {
		return nil, fmt.Errorf("%s: need at least 2 resampled frames, got %d", filename, rows)
	}
	if len(labels) != rows-1 {
		return nil, fmt.Errorf("%s: %d labels for %d timesteps", filename, len(labels), rows-1)
	}
	x := m.Slice(1, rows, 0, cols).(*mat.Dense)
	xprev := m.Slice(0, rows-1, 0, cols).(*mat.Dense)
	return &Sequence{X: x, Xprev: xprev, TrueZ: labels, Filename: filename, Framerate: framerate}, nil
}

// Dataset bundles every recording's sequence with the dataset-wide channel
// and action vocabularies.
type Dataset struct {
	Sequences    []*Sequence
	ChannelNames []string
	ActionNames  []string
}
