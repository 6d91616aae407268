// Package amc decodes Acclaim AMC motion-capture recordings into dense
// frame-by-channel matrices and prepares them for sequence modeling:
// channel selection, angle-wrap smoothing, mean centering and
// block-average resampling.
package amc

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/michaelchughes/mocap6dataset/internal/log"
)

// DegreesMarker terminates the AMC header; frame data follows it.
const DegreesMarker = ":DEGREES"

// KeyFileName is the joint-definition file expected next to every AMC file.
const KeyFileName = "SkeletonJoints.key"

// Decode parses an AMC file into a frames-by-channels matrix. Channel
// identity and column order come from the SkeletonJoints.key file in the
// same directory; the AMC file itself only supplies numeric values. Frames
// whose marker is never followed by data are dropped, and channels that
// never receive a value are dropped column-wise.
func Decode(amcPath string) (*mat.Dense, []string, error) {
	channels, err := ReadChannelKey(filepath.Join(filepath.Dir(amcPath), KeyFileName))
	if err != nil {
		return nil, nil, err
	}

	file, err := os.Open(amcPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open amc: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	inHeader := true
	var rows [][]float64
	cursor := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if inHeader {
			if line == DegreesMarker {
				inHeader = false
			}
			continue
		}
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 1 {
			// Frame marker: open the next frame with all channels unset.
			row := make([]float64, len(channels))
			for i := range row {
				row[i] = math.NaN()
			}
			rows = append(rows, row)
			cursor = 0
			continue
		}

		if len(rows) == 0 {
			return nil, nil, &FormatError{Path: amcPath, Line: lineNo, Msg: "joint data before first frame marker"}
		}
		// The joint name is discarded: channel identity comes from the key
		// file, never re-derived per frame.
		values := fields[1:]
		if cursor+len(values) > len(channels) {
			return nil, nil, &FormatError{Path: amcPath, Line: lineNo,
				Msg: fmt.Sprintf("frame %d overflows %d channels", len(rows), len(channels))}
		}
		row := rows[len(rows)-1]
		for _, s := range values {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, nil, &FormatError{Path: amcPath, Line: lineNo, Msg: fmt.Sprintf("bad value %q", s)}
			}
			row[cursor] = v
			cursor++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read amc: %w", err)
	}
	if inHeader {
		return nil, nil, &FormatError{Path: amcPath, Msg: fmt.Sprintf("header marker %s not found", DegreesMarker)}
	}

	for len(rows) > 0 && unsetRow(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
		log.Warn("dropped empty trailing frame", "path", amcPath, "frame", len(rows)+1)
	}
	if len(rows) == 0 {
		return nil, nil, &FormatError{Path: amcPath, Msg: "no frames"}
	}

	// Keep only channels observed in at least one frame.
	keep := make([]int, 0, len(channels))
	for j := range channels {
		for _, row := range rows {
			if !math.IsNaN(row[j]) {
				keep = append(keep, j)
				break
			}
		}
	}

	names := make([]string, len(keep))
	m := mat.NewDense(len(rows), len(keep), nil)
	for k, j := range keep {
		names[k] = channels[j]
		for i, row := range rows {
			if math.IsNaN(row[j]) {
				return nil, nil, &FormatError{Path: amcPath,
					Msg: fmt.Sprintf("frame %d missing value for channel %s", i+1, channels[j])}
			}
			m.Set(i, k, row[j])
		}
	}
	return m, names, nil
}

// unsetRow reports whether no channel of the frame ever received a value.
func unsetRow(row []float64) bool {
	for _, v := range row {
		if !math.IsNaN(v) {
			return false
		}
	}
	return true
}
