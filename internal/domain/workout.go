// Package domain defines the core records for the workout analysis pipeline.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrMissingColumn indicates the export header lacks a required column.
	ErrMissingColumn = errors.New("required column missing from header")
	// ErrEmptyDataset indicates no usable rows survived loading.
	ErrEmptyDataset = errors.New("no usable workout rows in dataset")
)

// Workout is one row of the Apple Watch export: a single timestamped
// workout sample with its raw measurements already parsed and unit-cleaned.
type Workout struct {
	StartedAt    time.Time
	EndedAt      time.Time
	HasEndedAt   bool
	ActivityType string
	DurationSec  float64
	DistanceMi   float64 // zero when the export left the field blank
	EnergyKcal   float64

	AvgMETs    float64
	HasAvgMETs bool

	TemperatureF       float64
	HasTemperature     bool
	TemperatureImputed bool

	HumidityPct float64
	HasHumidity bool
}

// Features holds the values derived from a single Workout. Built once by the
// deriver and read-only afterward.
type Features struct {
	Hour        int
	Month       time.Month
	Weekday     time.Weekday
	DurationMin float64

	// EnergyPerMin is only meaningful when HasEnergyPerMin is true;
	// zero-duration workouts never produce a ratio.
	EnergyPerMin    float64
	HasEnergyPerMin bool

	TimeOfDay TimeOfDay
}
