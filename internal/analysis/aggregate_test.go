package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/2024-FALL-DSC-412-001/DSC412-project-caden-phan/internal/domain"
)

func sampleAt(t *testing.T, ts, activity string, energy float64) Sample {
	t.Helper()
	started, err := time.Parse("2006-01-02 15:04:05", ts)
	require.NoError(t, err)
	w := domain.Workout{
		StartedAt:    started,
		ActivityType: activity,
		DurationSec:  1800,
		EnergyKcal:   energy,
	}
	return Sample{Workout: w, Features: Derive(w)}
}

func TestEnergyByHourGroupsAndSortsKeys(t *testing.T) {
	samples := []Sample{
		sampleAt(t, "2024-10-01 08:00:00", "Running", 5.0),
		sampleAt(t, "2024-10-01 12:30:00", "Running", 10.0),
		sampleAt(t, "2024-10-01 08:45:00", "Running", 6.0),
	}

	groups := EnergyByHour(samples)
	require.Len(t, groups, 2)

	require.Equal(t, "08:00", groups[0].Key)
	require.Equal(t, 2, groups[0].Count)
	require.InDelta(t, 5.5, groups[0].Mean, 1e-9)

	require.Equal(t, "12:00", groups[1].Key)
	require.Equal(t, 1, groups[1].Count)
	require.InDelta(t, 10.0, groups[1].Mean, 1e-9)
}

func TestGroupsPartitionSamples(t *testing.T) {
	samples := []Sample{
		sampleAt(t, "2024-10-01 08:00:00", "Running", 5.0),
		sampleAt(t, "2024-10-01 12:30:00", "Walking", 10.0),
		sampleAt(t, "2024-10-01 08:45:00", "Running", 6.0),
	}

	total := 0
	for _, g := range EnergyByActivityType(samples) {
		total += g.Count
	}
	require.Equal(t, len(samples), total)
}

func TestPearsonUndefinedBelowTwoPairs(t *testing.T) {
	require.False(t, Pearson(nil, nil).OK)
	require.False(t, Pearson([]float64{1}, []float64{2}).OK)
}

func TestPearsonUndefinedOnZeroVariance(t *testing.T) {
	c := Pearson([]float64{3, 3, 3}, []float64{1, 2, 3})
	require.False(t, c.OK)
	require.Equal(t, 3, c.N)
}

func TestPearsonPerfectCorrelation(t *testing.T) {
	c := Pearson([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8})
	require.True(t, c.OK)
	require.InDelta(t, 1.0, c.R, 1e-9)

	inv := Pearson([]float64{1, 2, 3, 4}, []float64{8, 6, 4, 2})
	require.True(t, inv.OK)
	require.InDelta(t, -1.0, inv.R, 1e-9)
}

func TestEnergyByActivityTypeSorted(t *testing.T) {
	samples := []Sample{
		sampleAt(t, "2024-10-01 08:00:00", "Walking", 100),
		sampleAt(t, "2024-10-01 09:00:00", "Cycling", 300),
		sampleAt(t, "2024-10-01 10:00:00", "Running", 250),
	}

	groups := EnergyByActivityType(samples)
	require.Len(t, groups, 3)
	require.Equal(t, "Cycling", groups[0].Key)
	require.Equal(t, "Running", groups[1].Key)
	require.Equal(t, "Walking", groups[2].Key)
}

func TestEnergyByTimeOfDayBucketOrder(t *testing.T) {
	samples := []Sample{
		sampleAt(t, "2024-10-01 19:00:00", "Running", 200), // Evening
		sampleAt(t, "2024-10-01 07:00:00", "Running", 100), // Morning
		sampleAt(t, "2024-10-01 13:00:00", "Running", 150), // Afternoon
	}

	groups := EnergyByTimeOfDay(samples)
	require.Len(t, groups, 3)
	require.Equal(t, domain.Morning.String(), groups[0].Key)
	require.Equal(t, domain.Afternoon.String(), groups[1].Key)
	require.Equal(t, domain.Evening.String(), groups[2].Key)
}

func TestIntensityExcludesZeroDuration(t *testing.T) {
	zeroDur := sampleAt(t, "2024-10-01 07:00:00", "Running", 100)
	zeroDur.Workout.DurationSec = 0
	zeroDur.Features = Derive(zeroDur.Workout)

	samples := []Sample{
		zeroDur,
		sampleAt(t, "2024-10-01 07:30:00", "Running", 300),
	}

	groups := IntensityByTimeOfDay(samples)
	require.Len(t, groups, 1)
	require.Equal(t, 1, groups[0].Count)
	require.InDelta(t, 10, groups[0].Mean, 1e-9) // 300 kcal over 30 min
}

func TestMETsTrendLinesFitsKnownLine(t *testing.T) {
	mets := []float64{2, 4, 6, 8}
	samples := make([]Sample, 0, len(mets))
	for _, m := range mets {
		s := sampleAt(t, "2024-10-01 08:00:00", "Running", 1+2*m)
		s.Workout.AvgMETs = m
		s.Workout.HasAvgMETs = true
		samples = append(samples, s)
	}

	lines := METsTrendLines(samples)
	require.Len(t, lines, 1)
	require.True(t, lines[0].OK)
	require.Equal(t, "Running", lines[0].ActivityType)
	require.InDelta(t, 1.0, lines[0].Alpha, 1e-9)
	require.InDelta(t, 2.0, lines[0].Beta, 1e-9)
}

func TestMETsTrendLinesUndefinedForSinglePoint(t *testing.T) {
	s := sampleAt(t, "2024-10-01 08:00:00", "Running", 100)
	s.Workout.AvgMETs = 5
	s.Workout.HasAvgMETs = true

	lines := METsTrendLines([]Sample{s})
	require.Len(t, lines, 1)
	require.False(t, lines[0].OK)
	require.Equal(t, 1, lines[0].N)
}

func TestMonthlyFrequencyOrdering(t *testing.T) {
	samples := []Sample{
		sampleAt(t, "2024-11-01 08:00:00", "Walking", 100),
		sampleAt(t, "2024-10-01 08:00:00", "Walking", 100),
		sampleAt(t, "2024-10-05 08:00:00", "Running", 200),
		sampleAt(t, "2024-10-09 08:00:00", "Running", 210),
	}

	counts := MonthlyFrequency(samples)
	require.Len(t, counts, 3)
	require.Equal(t, MonthlyCount{Month: time.October, ActivityType: "Running", Count: 2}, counts[0])
	require.Equal(t, MonthlyCount{Month: time.October, ActivityType: "Walking", Count: 1}, counts[1])
	require.Equal(t, MonthlyCount{Month: time.November, ActivityType: "Walking", Count: 1}, counts[2])
}

func TestWeatherCorrelationsSkipMissingReadings(t *testing.T) {
	withTemp := sampleAt(t, "2024-10-01 08:00:00", "Running", 100)
	withTemp.Workout.TemperatureF = 60
	withTemp.Workout.HasTemperature = true

	hotter := sampleAt(t, "2024-10-02 08:00:00", "Running", 200)
	hotter.Workout.TemperatureF = 80
	hotter.Workout.HasTemperature = true

	noWeather := sampleAt(t, "2024-10-03 08:00:00", "Running", 300)

	impact := WeatherCorrelations([]Sample{withTemp, hotter, noWeather})
	require.True(t, impact.Temperature.OK)
	require.Equal(t, 2, impact.Temperature.N)
	require.InDelta(t, 1.0, impact.Temperature.R, 1e-9)
	require.False(t, impact.Humidity.OK)
	require.Equal(t, 0, impact.Humidity.N)
}
