package amc

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/gonum/mat"

	"github.com/michaelchughes/mocap6dataset/internal/log"
)

// Recording identifies one motion-capture trial. Subject and trial map to
// exactly one AMC file; every trial of a capture session shares that
// directory's key file.
type Recording struct {
	Subject int
	Trial   int
}

// Name returns the zero-padded "SS_TT" form used in CMU file names.
func (r Recording) Name() string {
	return fmt.Sprintf("%02d_%02d", r.Subject, r.Trial)
}

// AMCPath returns the recording's AMC file path under dir.
func (r Recording) AMCPath(dir string) string {
	return filepath.Join(dir, r.Name()+".amc")
}

// Extract runs the full preprocessing pipeline on one AMC file: decode,
// project onto the queried channels, remove angle wraps, center each
// channel at native resolution and block-average down to outputRate. The
// result is the clean observation matrix paired with its channel names.
func Extract(amcPath string, query []string, outputRate, inputRate float64) (*mat.Dense, []string, error) {
	m, names, err := Decode(amcPath)
	if err != nil {
		return nil, nil, err
	}
	rows, cols := m.Dims()
	log.Debug("decoded", "path", amcPath, "frames", rows, "channels", cols)

	m, names = SelectChannels(m, names, query)
	if len(names) == 0 {
		return nil, nil, fmt.Errorf("%s: no queried channels matched", amcPath)
	}

	if shifted := SmoothAngles(m, names); len(shifted) > 0 {
		log.Info("smoothed angle wraps", "path", amcPath, "channels", shifted)
	}

	Center(m)
	return Resample(m, inputRate, outputRate), names, nil
}
