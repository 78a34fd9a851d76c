// Package report assembles and renders the run's summaries.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/2024-FALL-DSC-412-001/DSC412-project-caden-phan/internal/analysis"
	"github.com/2024-FALL-DSC-412-001/DSC412-project-caden-phan/internal/ingest"
)

// Report bundles everything a single run computed. Built once, read-only
// afterward.
type Report struct {
	Stats   ingest.LoadStats
	Samples []analysis.Sample

	ActivityEnergy     []analysis.GroupSummary
	HourlyEnergy       []analysis.GroupSummary
	TimeOfDayEnergy    []analysis.GroupSummary
	TimeOfDayIntensity []analysis.GroupSummary

	DurationCorr       analysis.Correlation
	DurationByActivity []analysis.ActivityCorrelation
	METsCorr           analysis.Correlation
	METsTrends         []analysis.TrendLine
	Weather            analysis.WeatherImpact

	Monthly []analysis.MonthlyCount
}

// Build computes every summary from the loaded samples.
func Build(stats ingest.LoadStats, samples []analysis.Sample) *Report {
	return &Report{
		Stats:              stats,
		Samples:            samples,
		ActivityEnergy:     analysis.EnergyByActivityType(samples),
		HourlyEnergy:       analysis.EnergyByHour(samples),
		TimeOfDayEnergy:    analysis.EnergyByTimeOfDay(samples),
		TimeOfDayIntensity: analysis.IntensityByTimeOfDay(samples),
		DurationCorr:       analysis.EnergyDurationCorrelation(samples),
		DurationByActivity: analysis.EnergyDurationByActivity(samples),
		METsCorr:           analysis.METsCorrelation(samples),
		METsTrends:         analysis.METsTrendLines(samples),
		Weather:            analysis.WeatherCorrelations(samples),
		Monthly:            analysis.MonthlyFrequency(samples),
	}
}

// Render produces the full text report. Output is byte-identical for
// identical input data.
func (r *Report) Render() string {
	var b strings.Builder

	b.WriteString("WORKOUT ANALYSIS\n")
	b.WriteString("================\n\n")

	fmt.Fprintf(&b, "Rows: %d loaded, %d skipped (of %d)\n",
		r.Stats.Loaded, r.Stats.Skipped, r.Stats.TotalRows)
	if r.Stats.ImputedTemperatures > 0 {
		fmt.Fprintf(&b, "Temperatures imputed with dataset mean: %d\n", r.Stats.ImputedTemperatures)
	}
	if len(r.Stats.MissingByColumn) > 0 {
		b.WriteString("Missing values by column:\n")
		cols := make([]string, 0, len(r.Stats.MissingByColumn))
		for col := range r.Stats.MissingByColumn {
			cols = append(cols, col)
		}
		sort.Strings(cols)
		for _, col := range cols {
			fmt.Fprintf(&b, "  %-22s %d\n", col, r.Stats.MissingByColumn[col])
		}
	}
	b.WriteString("\n")

	b.WriteString("Workouts by activity type\n")
	b.WriteString("-------------------------\n")
	for _, g := range r.ActivityEnergy {
		fmt.Fprintf(&b, "  %-22s count=%-4d mean=%.2f kcal (min=%.2f, max=%.2f)\n",
			g.Key, g.Count, g.Mean, g.Min, g.Max)
	}
	b.WriteString("\n")

	b.WriteString("Energy by start hour\n")
	b.WriteString("--------------------\n")
	for _, g := range r.HourlyEnergy {
		fmt.Fprintf(&b, "  %-7s count=%-4d mean=%.2f kcal\n", g.Key, g.Count, g.Mean)
	}
	b.WriteString("\n")

	b.WriteString("Energy by time of day\n")
	b.WriteString("---------------------\n")
	for _, g := range r.TimeOfDayEnergy {
		fmt.Fprintf(&b, "  %-18s count=%-4d mean=%.2f kcal\n", g.Key, g.Count, g.Mean)
	}
	b.WriteString("\n")

	if len(r.TimeOfDayIntensity) > 0 {
		b.WriteString("Intensity (kcal/min) by time of day\n")
		b.WriteString("-----------------------------------\n")
		for _, g := range r.TimeOfDayIntensity {
			fmt.Fprintf(&b, "  %-18s count=%-4d mean=%.2f kcal/min\n", g.Key, g.Count, g.Mean)
		}
		b.WriteString("\n")
	}

	b.WriteString("Correlations with energy burned\n")
	b.WriteString("-------------------------------\n")
	fmt.Fprintf(&b, "  duration (min):        %s\n", formatCorr(r.DurationCorr))
	fmt.Fprintf(&b, "  average METs:          %s\n", formatCorr(r.METsCorr))
	fmt.Fprintf(&b, "  temperature (degF):    %s\n", formatCorr(r.Weather.Temperature))
	fmt.Fprintf(&b, "  humidity (%%):          %s\n", formatCorr(r.Weather.Humidity))
	b.WriteString("\n")

	if len(r.DurationByActivity) > 0 {
		b.WriteString("Duration correlation per activity\n")
		b.WriteString("---------------------------------\n")
		for _, ac := range r.DurationByActivity {
			fmt.Fprintf(&b, "  %-22s %s\n", ac.ActivityType, formatCorr(ac.Corr))
		}
		b.WriteString("\n")
	}

	if len(r.METsTrends) > 0 {
		b.WriteString("Energy vs METs trend per activity\n")
		b.WriteString("---------------------------------\n")
		for _, t := range r.METsTrends {
			if t.OK {
				fmt.Fprintf(&b, "  %-22s energy = %.2f + %.2f*METs (n=%d)\n",
					t.ActivityType, t.Alpha, t.Beta, t.N)
			} else {
				fmt.Fprintf(&b, "  %-22s n/a (n=%d)\n", t.ActivityType, t.N)
			}
		}
		b.WriteString("\n")
	}

	if len(r.Monthly) > 0 {
		b.WriteString("Workout frequency by month\n")
		b.WriteString("--------------------------\n")
		for _, m := range r.Monthly {
			fmt.Fprintf(&b, "  %-10s %-22s %d\n", m.Month.String(), m.ActivityType, m.Count)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func formatCorr(c analysis.Correlation) string {
	if !c.OK {
		return fmt.Sprintf("n/a (n=%d)", c.N)
	}
	return fmt.Sprintf("r=%.3f (n=%d)", c.R, c.N)
}
