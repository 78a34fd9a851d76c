package report

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// RenderCharts writes the run's charts as PNGs under dir. Chart failures are
// logged and skipped; the text report has already been produced by then.
func RenderCharts(dir string, r *Report, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("cannot create chart directory, skipping charts",
			zap.String("dir", dir), zap.Error(err))
		return
	}

	charts := []struct {
		name string
		fn   func(*Report) (*plot.Plot, error)
	}{
		{"energy_vs_duration.png", energyVsDuration},
		{"energy_vs_mets.png", energyVsMETs},
		{"energy_vs_temperature.png", energyVsTemperature},
		{"energy_vs_humidity.png", energyVsHumidity},
		{"energy_by_time_of_day.png", energyByTimeOfDay},
		{"monthly_frequency.png", monthlyFrequency},
	}
	for _, c := range charts {
		p, err := c.fn(r)
		if err != nil {
			logger.Warn("chart skipped", zap.String("chart", c.name), zap.Error(err))
			continue
		}
		path := filepath.Join(dir, c.name)
		if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
			logger.Warn("chart save failed", zap.String("chart", c.name), zap.Error(err))
			continue
		}
		logger.Info("chart written", zap.String("path", path))
	}
}

func energyVsDuration(r *Report) (*plot.Plot, error) {
	pts := make(plotter.XYs, 0, len(r.Samples))
	for _, s := range r.Samples {
		pts = append(pts, plotter.XY{X: s.Features.DurationMin, Y: s.Workout.EnergyKcal})
	}
	return scatterPlot("Calories Burned vs. Duration of Workout", "Duration (minutes)", "Calories Burned", pts)
}

func energyVsMETs(r *Report) (*plot.Plot, error) {
	pts := make(plotter.XYs, 0, len(r.Samples))
	for _, s := range r.Samples {
		if !s.Workout.HasAvgMETs {
			continue
		}
		pts = append(pts, plotter.XY{X: s.Workout.AvgMETs, Y: s.Workout.EnergyKcal})
	}
	p, err := scatterPlot("Calories Burned vs. Average METs", "Average METs", "Calories Burned", pts)
	if err != nil {
		return nil, err
	}
	for _, t := range r.METsTrends {
		if !t.OK {
			continue
		}
		xmin, xmax := metsRange(r, t.ActivityType)
		line, err := plotter.NewLine(plotter.XYs{
			{X: xmin, Y: t.Alpha + t.Beta*xmin},
			{X: xmax, Y: t.Alpha + t.Beta*xmax},
		})
		if err != nil {
			return nil, err
		}
		line.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("Trend line for %s", t.ActivityType), line)
	}
	return p, nil
}

func metsRange(r *Report, activity string) (float64, float64) {
	first := true
	var lo, hi float64
	for _, s := range r.Samples {
		if !s.Workout.HasAvgMETs || s.Workout.ActivityType != activity {
			continue
		}
		v := s.Workout.AvgMETs
		if first {
			lo, hi = v, v
			first = false
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func energyVsTemperature(r *Report) (*plot.Plot, error) {
	pts := make(plotter.XYs, 0, len(r.Samples))
	for _, s := range r.Samples {
		if !s.Workout.HasTemperature {
			continue
		}
		pts = append(pts, plotter.XY{X: s.Workout.TemperatureF, Y: s.Workout.EnergyKcal})
	}
	return scatterPlot("Temperature vs. Calories Burned", "Temperature (degF)", "Calories Burned", pts)
}

func energyVsHumidity(r *Report) (*plot.Plot, error) {
	pts := make(plotter.XYs, 0, len(r.Samples))
	for _, s := range r.Samples {
		if !s.Workout.HasHumidity {
			continue
		}
		pts = append(pts, plotter.XY{X: s.Workout.HumidityPct, Y: s.Workout.EnergyKcal})
	}
	return scatterPlot("Humidity vs. Calories Burned", "Humidity (%)", "Calories Burned", pts)
}

func energyByTimeOfDay(r *Report) (*plot.Plot, error) {
	if len(r.TimeOfDayEnergy) == 0 {
		return nil, fmt.Errorf("no time-of-day groups")
	}
	values := make(plotter.Values, 0, len(r.TimeOfDayEnergy))
	labels := make([]string, 0, len(r.TimeOfDayEnergy))
	for _, g := range r.TimeOfDayEnergy {
		values = append(values, g.Mean)
		labels = append(labels, g.Key)
	}
	return barPlot("Calories Burned by Time of Day", "Mean Calories Burned", values, labels)
}

func monthlyFrequency(r *Report) (*plot.Plot, error) {
	if len(r.Monthly) == 0 {
		return nil, fmt.Errorf("no monthly counts")
	}
	totals := make(map[string]float64)
	order := make([]string, 0)
	for _, m := range r.Monthly {
		label := m.Month.String()[:3]
		if _, seen := totals[label]; !seen {
			order = append(order, label)
		}
		totals[label] += float64(m.Count)
	}
	values := make(plotter.Values, 0, len(order))
	for _, label := range order {
		values = append(values, totals[label])
	}
	return barPlot("Workout Frequency by Month", "Number of Workouts", values, order)
}

func scatterPlot(title, xlabel, ylabel string, pts plotter.XYs) (*plot.Plot, error) {
	if len(pts) == 0 {
		return nil, fmt.Errorf("no points for %q", title)
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	p.Add(scatter)
	return p, nil
}

func barPlot(title, ylabel string, values plotter.Values, labels []string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = ylabel
	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return nil, err
	}
	p.Add(bars)
	p.NominalX(labels...)
	return p, nil
}
