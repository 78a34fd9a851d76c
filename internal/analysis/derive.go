// Package analysis derives per-workout features and computes the grouped
// summaries and correlations the report is built from.
package analysis

import (
	"github.com/2024-FALL-DSC-412-001/DSC412-project-caden-phan/internal/domain"
)

// Sample pairs a loaded workout with its derived features.
type Sample struct {
	Workout  domain.Workout
	Features domain.Features
}

// Derive computes the feature set for a single workout. Pure and
// deterministic; a zero-duration workout gets no energy-per-minute ratio.
func Derive(w domain.Workout) domain.Features {
	f := domain.Features{
		Hour:        w.StartedAt.Hour(),
		Month:       w.StartedAt.Month(),
		Weekday:     w.StartedAt.Weekday(),
		DurationMin: w.DurationSec / 60,
	}
	f.TimeOfDay = domain.TimeOfDayFor(f.Hour)
	if f.DurationMin > 0 {
		f.EnergyPerMin = w.EnergyKcal / f.DurationMin
		f.HasEnergyPerMin = true
	}
	return f
}

// DeriveAll augments every workout, preserving input order.
func DeriveAll(workouts []domain.Workout) []Sample {
	samples := make([]Sample, len(workouts))
	for i, w := range workouts {
		samples[i] = Sample{Workout: w, Features: Derive(w)}
	}
	return samples
}
