// Package session loads lap tables from exported session files. The
// degradation core itself is input-agnostic; this is the collaborator
// feeding it when running from the command line.
package session

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Vishnu-Cyber-Blip/f1-race-replay/pkg/model"
)

// Load reads a lap table from path, dispatching on the file extension
// (.json or .csv).
func Load(path string) ([]model.Lap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening session file: %w", err)
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ReadJSON(f)
	case ".csv":
		return ReadCSV(f)
	default:
		return nil, fmt.Errorf("unsupported session file format: %s", path)
	}
}

type jsonLap struct {
	Driver         string `json:"driver"`
	LapNumber      int    `json:"lapNumber"`
	LapTime        string `json:"lapTime"`
	Compound       string `json:"compound"`
	Stint          int    `json:"stint"`
	TrackCondition string `json:"trackCondition"`
}

// ReadJSON reads a JSON array of lap records. Lap times are duration
// strings ("1m32.5s") or plain seconds ("92.5").
func ReadJSON(r io.Reader) ([]model.Lap, error) {
	var raw []jsonLap
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding session json: %w", err)
	}
	laps := make([]model.Lap, 0, len(raw))
	for i, jl := range raw {
		lapTime, err := parseLapTime(jl.LapTime)
		if err != nil {
			return nil, fmt.Errorf("lap %d: %w", i+1, err)
		}
		laps = append(laps, model.Lap{
			Driver:         jl.Driver,
			LapNumber:      jl.LapNumber,
			LapTime:        lapTime,
			Compound:       jl.Compound,
			Stint:          jl.Stint,
			TrackCondition: model.TrackCondition(jl.TrackCondition),
		})
	}
	return laps, nil
}

// ReadCSV reads lap records with the header
// driver,lap,laptime,compound,stint,condition (condition optional).
func ReadCSV(r io.Reader) ([]model.Lap, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading session csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	laps := make([]model.Lap, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) < 5 {
			return nil, fmt.Errorf("row %d: expected at least 5 columns, got %d",
				i+2, len(rec))
		}
		lapNo, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: lap number: %w", i+2, err)
		}
		lapTime, err := parseLapTime(rec[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		stint, err := strconv.Atoi(rec[4])
		if err != nil {
			return nil, fmt.Errorf("row %d: stint: %w", i+2, err)
		}
		lap := model.Lap{
			Driver:    rec[0],
			LapNumber: lapNo,
			LapTime:   lapTime,
			Compound:  rec[3],
			Stint:     stint,
		}
		if len(rec) > 5 {
			lap.TrackCondition = model.TrackCondition(rec[5])
		}
		laps = append(laps, lap)
	}
	return laps, nil
}

// parseLapTime accepts a Go duration string or plain seconds. An empty
// value yields a zero duration (the preparer drops such laps).
func parseLapTime(arg string) (time.Duration, error) {
	if arg == "" {
		return 0, nil
	}
	if d, err := time.ParseDuration(arg); err == nil {
		return d, nil
	}
	secs, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid lap time %q", arg)
	}
	// rounded so "93.1" becomes exactly 93.1s
	return time.Duration(math.Round(secs * float64(time.Second))), nil
}
