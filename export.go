package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WriteChannelsCSV writes a resampled channel matrix to a CSV file with a
// leading time column derived from the output frame rate.
func WriteChannelsCSV(m *mat.Dense, names []string, framerate float64, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	fmt.Fprintf(writer, "time,%s\n", strings.Join(names, ","))
	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		fmt.Fprintf(writer, "%10.5f", float64(i)/framerate)
		for j := 0; j < cols; j++ {
			fmt.Fprintf(writer, ",%10.5f", m.At(i, j))
		}
		fmt.Fprintf(writer, "\n")
	}
	return nil
}

// PlotChannel renders one channel's trace over time to a PNG.
func PlotChannel(m *mat.Dense, names []string, channel string, framerate float64, filePath string) error {
	col := -1
	for j, name := range names {
		if name == channel {
			col = j
			break
		}
	}
	if col < 0 {
		return fmt.Errorf("channel %s not in output", channel)
	}

	rows, _ := m.Dims()
	pts := make(plotter.XYs, rows)
	for i := 0; i < rows; i++ {
		pts[i] = plotter.XY{X: float64(i) / framerate, Y: m.At(i, col)}
	}

	p := plot.New()
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	p.X.Label.Text = "time"
	p.Y.Label.Text = channel

	return p.Save(8*vg.Inch, 4*vg.Inch, filePath)
}
