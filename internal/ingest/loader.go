// Package ingest loads the Apple Watch workout export into typed records.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/2024-FALL-DSC-412-001/DSC412-project-caden-phan/internal/domain"
)

// Column names as they appear in the export header.
const (
	ColStartDate    = "startDate"
	ColEndDate      = "endDate"
	ColDuration     = "duration"
	ColDistance     = "totalDistance"
	ColEnergy       = "totalEnergyBurned"
	ColActivityType = "activityType"
	ColAvgMETs      = "HKAverageMETs"
	ColTemperature  = "HKWeatherTemperature"
	ColHumidity     = "HKWeatherHumidity"
)

// requiredColumns must all be present in the header for a run to proceed.
var requiredColumns = []string{ColStartDate, ColDuration, ColEnergy, ColActivityType}

// timeLayouts covers the timestamp shapes seen in Apple Health exports.
var timeLayouts = []string{
	"2006-01-02 15:04:05 -0700",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// LoadStats records per-run loading bookkeeping, mirrored into the report.
type LoadStats struct {
	TotalRows           int // data rows in the file, header excluded
	Loaded              int
	Skipped             int
	MissingByColumn     map[string]int
	ImputedTemperatures int
}

// Result bundles the loaded workouts with the loading bookkeeping. RowErrors
// aggregates per-row skip reasons; it is informational, never fatal.
type Result struct {
	Workouts  []domain.Workout
	Stats     LoadStats
	RowErrors error
}

// Loader reads one CSV export into an ordered Workout slice.
type Loader struct {
	logger *zap.Logger
}

// NewLoader constructs a Loader.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

// LoadFile opens and parses the export at path. A missing or unreadable file
// and a missing required column are fatal; malformed rows are skipped and
// accumulated in Result.RowErrors.
func (l *Loader) LoadFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export %s: %w", path, err)
	}
	defer f.Close()

	res, err := l.load(f)
	if err != nil {
		return nil, fmt.Errorf("load export %s: %w", path, err)
	}
	return res, nil
}

func (l *Loader) load(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.ErrEmptyDataset
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingColumn, col)
		}
	}

	res := &Result{
		Stats: LoadStats{MissingByColumn: make(map[string]int)},
	}

	row := 0
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			// Malformed CSV framing on a single line: skip, keep going.
			row++
			res.Stats.TotalRows++
			res.Stats.Skipped++
			res.RowErrors = multierr.Append(res.RowErrors, fmt.Errorf("row %d: %w", row, err))
			l.logger.Warn("skipping unreadable row", zap.Int("row", row), zap.Error(err))
			continue
		}
		row++
		res.Stats.TotalRows++

		workout, err := l.parseRow(record, idx, &res.Stats)
		if err != nil {
			res.Stats.Skipped++
			res.RowErrors = multierr.Append(res.RowErrors, fmt.Errorf("row %d: %w", row, err))
			l.logger.Warn("skipping malformed row", zap.Int("row", row), zap.Error(err))
			continue
		}
		res.Stats.Loaded++
		res.Workouts = append(res.Workouts, workout)
	}

	imputeTemperature(res)
	return res, nil
}

// parseRow converts one record into a Workout. An unparseable required field
// fails the row; optional fields degrade to their Has* flags.
func (l *Loader) parseRow(record []string, idx map[string]int, stats *LoadStats) (domain.Workout, error) {
	var w domain.Workout

	startRaw := field(record, idx, ColStartDate)
	started, ok := parseTimestamp(startRaw)
	if !ok {
		return w, fmt.Errorf("unparseable %s %q", ColStartDate, startRaw)
	}
	w.StartedAt = started

	durRaw := field(record, idx, ColDuration)
	dur, err := strconv.ParseFloat(strings.TrimSpace(durRaw), 64)
	if err != nil {
		return w, fmt.Errorf("unparseable %s %q", ColDuration, durRaw)
	}
	w.DurationSec = dur

	energyRaw := stripSuffix(field(record, idx, ColEnergy), " kcal")
	energy, err := strconv.ParseFloat(energyRaw, 64)
	if err != nil {
		return w, fmt.Errorf("unparseable %s %q", ColEnergy, energyRaw)
	}
	w.EnergyKcal = energy

	w.ActivityType = strings.TrimSpace(field(record, idx, ColActivityType))
	if w.ActivityType == "" {
		stats.MissingByColumn[ColActivityType]++
		w.ActivityType = "Unknown"
	}

	if raw := field(record, idx, ColEndDate); raw != "" {
		if ended, ok := parseTimestamp(raw); ok {
			w.EndedAt = ended
			w.HasEndedAt = true
		} else {
			stats.MissingByColumn[ColEndDate]++
		}
	} else if _, present := idx[ColEndDate]; present {
		stats.MissingByColumn[ColEndDate]++
	}

	// Blank or junk distance is zero-filled rather than dropped.
	if raw := field(record, idx, ColDistance); raw != "" {
		if dist, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			w.DistanceMi = dist
		} else {
			stats.MissingByColumn[ColDistance]++
		}
	} else if _, present := idx[ColDistance]; present {
		stats.MissingByColumn[ColDistance]++
	}

	if raw := field(record, idx, ColAvgMETs); raw != "" {
		if mets, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(raw), " kcal/hr·kg"), 64); err == nil {
			w.AvgMETs = mets
			w.HasAvgMETs = true
		} else {
			stats.MissingByColumn[ColAvgMETs]++
		}
	} else if _, present := idx[ColAvgMETs]; present {
		stats.MissingByColumn[ColAvgMETs]++
	}

	if raw := stripSuffix(field(record, idx, ColTemperature), " degF"); raw != "" {
		if temp, err := strconv.ParseFloat(raw, 64); err == nil {
			w.TemperatureF = temp
			w.HasTemperature = true
		} else {
			stats.MissingByColumn[ColTemperature]++
		}
	} else if _, present := idx[ColTemperature]; present {
		stats.MissingByColumn[ColTemperature]++
	}

	if raw := strings.TrimSuffix(strings.TrimSpace(field(record, idx, ColHumidity)), "%"); raw != "" {
		if hum, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			w.HumidityPct = hum
			w.HasHumidity = true
		} else {
			stats.MissingByColumn[ColHumidity]++
		}
	} else if _, present := idx[ColHumidity]; present {
		stats.MissingByColumn[ColHumidity]++
	}

	return w, nil
}

// imputeTemperature fills workouts missing a temperature reading with the
// mean over present readings, matching the source data's cleaning step.
func imputeTemperature(res *Result) {
	var sum float64
	var n int
	for _, w := range res.Workouts {
		if w.HasTemperature {
			sum += w.TemperatureF
			n++
		}
	}
	if n == 0 {
		return
	}
	mean := sum / float64(n)
	for i := range res.Workouts {
		if !res.Workouts[i].HasTemperature {
			res.Workouts[i].TemperatureF = mean
			res.Workouts[i].HasTemperature = true
			res.Workouts[i].TemperatureImputed = true
			res.Stats.ImputedTemperatures++
		}
	}
}

func field(record []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

func stripSuffix(raw, suffix string) string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), suffix))
}

func parseTimestamp(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
