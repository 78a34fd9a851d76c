package analysis

import (
	"fmt"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/2024-FALL-DSC-412-001/DSC412-project-caden-phan/internal/domain"
)

// GroupSummary is one aggregate over a group of samples sharing a key.
type GroupSummary struct {
	Key   string
	Count int
	Mean  float64
	Min   float64
	Max   float64
}

// Correlation is a Pearson coefficient over paired series. OK is false when
// the coefficient is undefined (fewer than two pairs, or zero variance in
// either series); callers render that as "n/a".
type Correlation struct {
	R  float64
	N  int
	OK bool
}

// TrendLine is a degree-one fit of energy against a predictor for one
// activity type.
type TrendLine struct {
	ActivityType string
	Alpha        float64 // intercept
	Beta         float64 // slope
	N            int
	OK           bool
}

// ActivityCorrelation pairs an activity type with a correlation.
type ActivityCorrelation struct {
	ActivityType string
	Corr         Correlation
}

// Pearson computes the Pearson correlation over paired values, guarding the
// undefined cases instead of emitting NaN.
func Pearson(xs, ys []float64) Correlation {
	n := len(xs)
	if n != len(ys) || n < 2 {
		return Correlation{N: n}
	}
	if stat.Variance(xs, nil) == 0 || stat.Variance(ys, nil) == 0 {
		return Correlation{N: n}
	}
	return Correlation{R: stat.Correlation(xs, ys, nil), N: n, OK: true}
}

// summarize folds values into a GroupSummary keyed by key.
func summarize(key string, values []float64) GroupSummary {
	g := GroupSummary{Key: key, Count: len(values)}
	if len(values) == 0 {
		return g
	}
	g.Mean = stat.Mean(values, nil)
	g.Min = values[0]
	g.Max = values[0]
	for _, v := range values[1:] {
		if v < g.Min {
			g.Min = v
		}
		if v > g.Max {
			g.Max = v
		}
	}
	return g
}

// EnergyByActivityType returns count and mean energy per activity type,
// sorted by activity name.
func EnergyByActivityType(samples []Sample) []GroupSummary {
	groups := make(map[string][]float64)
	for _, s := range samples {
		groups[s.Workout.ActivityType] = append(groups[s.Workout.ActivityType], s.Workout.EnergyKcal)
	}
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]GroupSummary, 0, len(keys))
	for _, k := range keys {
		out = append(out, summarize(k, groups[k]))
	}
	return out
}

// EnergyByHour returns mean energy per start hour, ascending, only for hours
// that occur in the data.
func EnergyByHour(samples []Sample) []GroupSummary {
	groups := make(map[int][]float64)
	for _, s := range samples {
		groups[s.Features.Hour] = append(groups[s.Features.Hour], s.Workout.EnergyKcal)
	}
	hours := make([]int, 0, len(groups))
	for h := range groups {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	out := make([]GroupSummary, 0, len(hours))
	for _, h := range hours {
		out = append(out, summarize(fmt.Sprintf("%02d:00", h), groups[h]))
	}
	return out
}

// EnergyByTimeOfDay returns mean energy per day segment in bucket order.
// Empty buckets are omitted.
func EnergyByTimeOfDay(samples []Sample) []GroupSummary {
	groups := make(map[domain.TimeOfDay][]float64)
	for _, s := range samples {
		groups[s.Features.TimeOfDay] = append(groups[s.Features.TimeOfDay], s.Workout.EnergyKcal)
	}
	out := make([]GroupSummary, 0, len(groups))
	for _, bucket := range domain.TimeOfDayBuckets {
		if values, ok := groups[bucket]; ok {
			out = append(out, summarize(bucket.String(), values))
		}
	}
	return out
}

// IntensityByTimeOfDay returns mean energy-per-minute per day segment,
// excluding samples without a defined ratio.
func IntensityByTimeOfDay(samples []Sample) []GroupSummary {
	groups := make(map[domain.TimeOfDay][]float64)
	for _, s := range samples {
		if !s.Features.HasEnergyPerMin {
			continue
		}
		groups[s.Features.TimeOfDay] = append(groups[s.Features.TimeOfDay], s.Features.EnergyPerMin)
	}
	out := make([]GroupSummary, 0, len(groups))
	for _, bucket := range domain.TimeOfDayBuckets {
		if values, ok := groups[bucket]; ok {
			out = append(out, summarize(bucket.String(), values))
		}
	}
	return out
}

// MonthlyCount is the number of workouts of one activity type in one month.
type MonthlyCount struct {
	Month        time.Month
	ActivityType string
	Count        int
}

// MonthlyFrequency counts workouts per month and activity type, ordered by
// month then activity name.
func MonthlyFrequency(samples []Sample) []MonthlyCount {
	type key struct {
		month    time.Month
		activity string
	}
	counts := make(map[key]int)
	for _, s := range samples {
		counts[key{s.Features.Month, s.Workout.ActivityType}]++
	}
	keys := make([]key, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].month != keys[j].month {
			return keys[i].month < keys[j].month
		}
		return keys[i].activity < keys[j].activity
	})

	out := make([]MonthlyCount, 0, len(keys))
	for _, k := range keys {
		out = append(out, MonthlyCount{Month: k.month, ActivityType: k.activity, Count: counts[k]})
	}
	return out
}

// EnergyDurationCorrelation correlates workout duration (minutes) with
// energy burned across all samples.
func EnergyDurationCorrelation(samples []Sample) Correlation {
	xs := make([]float64, 0, len(samples))
	ys := make([]float64, 0, len(samples))
	for _, s := range samples {
		xs = append(xs, s.Features.DurationMin)
		ys = append(ys, s.Workout.EnergyKcal)
	}
	return Pearson(xs, ys)
}

// EnergyDurationByActivity computes the duration/energy correlation per
// activity type, sorted by activity name.
func EnergyDurationByActivity(samples []Sample) []ActivityCorrelation {
	type series struct{ xs, ys []float64 }
	groups := make(map[string]*series)
	for _, s := range samples {
		g := groups[s.Workout.ActivityType]
		if g == nil {
			g = &series{}
			groups[s.Workout.ActivityType] = g
		}
		g.xs = append(g.xs, s.Features.DurationMin)
		g.ys = append(g.ys, s.Workout.EnergyKcal)
	}
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]ActivityCorrelation, 0, len(keys))
	for _, k := range keys {
		g := groups[k]
		out = append(out, ActivityCorrelation{ActivityType: k, Corr: Pearson(g.xs, g.ys)})
	}
	return out
}

// METsCorrelation correlates average METs with energy burned over samples
// that carry a METs reading.
func METsCorrelation(samples []Sample) Correlation {
	var xs, ys []float64
	for _, s := range samples {
		if !s.Workout.HasAvgMETs {
			continue
		}
		xs = append(xs, s.Workout.AvgMETs)
		ys = append(ys, s.Workout.EnergyKcal)
	}
	return Pearson(xs, ys)
}

// METsTrendLines fits energy against average METs per activity type, sorted
// by activity name. A fit needs at least two points with METs variance.
func METsTrendLines(samples []Sample) []TrendLine {
	type series struct{ xs, ys []float64 }
	groups := make(map[string]*series)
	for _, s := range samples {
		if !s.Workout.HasAvgMETs {
			continue
		}
		g := groups[s.Workout.ActivityType]
		if g == nil {
			g = &series{}
			groups[s.Workout.ActivityType] = g
		}
		g.xs = append(g.xs, s.Workout.AvgMETs)
		g.ys = append(g.ys, s.Workout.EnergyKcal)
	}
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]TrendLine, 0, len(keys))
	for _, k := range keys {
		g := groups[k]
		line := TrendLine{ActivityType: k, N: len(g.xs)}
		if len(g.xs) >= 2 && stat.Variance(g.xs, nil) > 0 {
			line.Alpha, line.Beta = stat.LinearRegression(g.xs, g.ys, nil, false)
			line.OK = true
		}
		out = append(out, line)
	}
	return out
}

// WeatherImpact holds the environmental correlations against energy burned.
type WeatherImpact struct {
	Temperature Correlation
	Humidity    Correlation
}

// WeatherCorrelations correlates temperature and humidity with energy
// burned. Imputed temperatures participate, as in the source cleaning.
func WeatherCorrelations(samples []Sample) WeatherImpact {
	var tx, ty, hx, hy []float64
	for _, s := range samples {
		if s.Workout.HasTemperature {
			tx = append(tx, s.Workout.TemperatureF)
			ty = append(ty, s.Workout.EnergyKcal)
		}
		if s.Workout.HasHumidity {
			hx = append(hx, s.Workout.HumidityPct)
			hy = append(hy, s.Workout.EnergyKcal)
		}
	}
	return WeatherImpact{
		Temperature: Pearson(tx, ty),
		Humidity:    Pearson(hx, hy),
	}
}
