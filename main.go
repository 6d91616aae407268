package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cheggaaa/pb/v3"

	"github.com/michaelchughes/mocap6dataset/amc"
	"github.com/michaelchughes/mocap6dataset/internal/log"
)

// The six CMU recordings making up the mocap6 dataset.
const defaultRecordings = "13_29,13_30,13_31,14_06,14_14,14_20"

// Shoulder and hip joint angles, the channels used for sequence modeling.
const defaultChannels = "lhumerus.rx,lhumerus.ry,lhumerus.rz," +
	"rhumerus.rx,rhumerus.ry,rhumerus.rz," +
	"lfemur.rx,lfemur.ry,lfemur.rz," +
	"rfemur.rx,rfemur.ry,rfemur.rz"

var (
	dataDir    string
	outDir     string
	recordings string
	channels   string
	inputRate  float64
	outputRate float64
	plotChan   string
	logLevel   string
)

func init() {
	flag.StringVar(&dataDir, "dataDir", ".", "directory holding the AMC files and SkeletonJoints.key")
	flag.StringVar(&outDir, "outDir", ".", "directory for per-recording CSV output")
	flag.StringVar(&recordings, "recordings", defaultRecordings, "comma-separated subject_trial recording names")
	flag.StringVar(&channels, "channels", defaultChannels, "comma-separated channel names to extract")
	flag.Float64Var(&inputRate, "inputRate", 120, "native frame rate of the AMC files")
	flag.Float64Var(&outputRate, "outputRate", 10, "frame rate after block-average resampling")
	flag.StringVar(&plotChan, "plot", "", "also render this channel's trace to a PNG per recording")
	flag.StringVar(&logLevel, "logLevel", "info", "log level: debug, info, warn, error")
}

func main() {
	flag.Parse()
	log.Init(logLevel)

	if inputRate <= 0 || outputRate <= 0 {
		log.Error("inputRate and outputRate must be positive")
		os.Exit(1)
	}

	recs, err := parseRecordings(recordings)
	if err != nil {
		log.Error("bad -recordings", "err", err)
		os.Exit(1)
	}
	query := parseChannels(channels)

	bar := pb.StartNew(len(recs))
	failed := 0
	for _, rec := range recs {
		// A bad recording never takes the rest of the batch down with it.
		if err := process(rec, query); err != nil {
			log.Error("recording failed", "recording", rec.Name(), "err", err)
			failed++
		}
		bar.Increment()
	}
	bar.Finish()

	log.Info("done", "recordings", len(recs), "failed", failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// process extracts one recording and writes its outputs.
func process(rec amc.Recording, query []string) error {
	m, names, err := amc.Extract(rec.AMCPath(dataDir), query, outputRate, inputRate)
	if err != nil {
		return err
	}

	csvPath := filepath.Join(outDir, rec.Name()+".csv")
	if err := WriteChannelsCSV(m, names, outputRate, csvPath); err != nil {
		return err
	}
	log.Info("wrote", "csv", csvPath)

	if plotChan != "" {
		pngPath := filepath.Join(outDir, rec.Name()+"_"+plotChan+".png")
		if err := PlotChannel(m, names, plotChan, outputRate, pngPath); err != nil {
			return err
		}
		log.Info("wrote", "plot", pngPath)
	}
	return nil
}

// parseChannels turns a comma list of channel names into a query list,
// trimming whitespace so "a, b" queries "b" and not " b".
func parseChannels(list string) []string {
	var query []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			query = append(query, name)
		}
	}
	return query
}

// parseRecordings turns a comma list of "SS_TT" names into Recording ids.
func parseRecordings(list string) ([]amc.Recording, error) {
	var recs []amc.Recording
	for _, name := range strings.Split(list, ",") {
		subject, trial, ok := strings.Cut(strings.TrimSpace(name), "_")
		if !ok {
			return nil, fmt.Errorf("recording %q is not subject_trial", name)
		}
		s, err := strconv.Atoi(subject)
		if err != nil {
			return nil, fmt.Errorf("recording %q: %w", name, err)
		}
		t, err := strconv.Atoi(trial)
		if err != nil {
			return nil, fmt.Errorf("recording %q: %w", name, err)
		}
		recs = append(recs, amc.Recording{Subject: s, Trial: t})
	}
	return recs, nil
}
