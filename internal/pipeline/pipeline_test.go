package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/2024-FALL-DSC-412-001/DSC412-project-caden-phan/internal/config"
	"github.com/2024-FALL-DSC-412-001/DSC412-project-caden-phan/internal/domain"
)

func writeExport(t *testing.T, content string) config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "health.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return config.Config{CSVPath: path}
}

const export = "startDate,endDate,duration,totalDistance,totalEnergyBurned,activityType,HKAverageMETs,HKWeatherTemperature,HKWeatherHumidity\n" +
	"2024-10-01 08:00:00 -0400,,1800,2.5,250 kcal,Running,8.2 kcal/hr·kg,68 degF,55%\n" +
	"2024-10-01 12:30:00 -0400,,900,0.0,120 kcal,Walking,3.4 kcal/hr·kg,72 degF,58%\n" +
	"garbage-timestamp,,900,0.0,100 kcal,Walking,,,\n" +
	"2024-10-02 18:15:00 -0400,,2700,5.1,400 kcal,Running,9.0 kcal/hr·kg,61 degF,40%\n"

func TestRunProducesDeterministicReport(t *testing.T) {
	cfg := writeExport(t, export)

	first, err := Run(cfg, nil)
	require.NoError(t, err)
	second, err := Run(cfg, nil)
	require.NoError(t, err)

	require.Equal(t, first.Render(), second.Render())
	require.Equal(t, 3, first.Stats.Loaded)
	require.Equal(t, 1, first.Stats.Skipped)
	require.Len(t, first.Samples, 3)
}

func TestRunFailsOnMissingFile(t *testing.T) {
	cfg := config.Config{CSVPath: filepath.Join(t.TempDir(), "nope.csv")}
	_, err := Run(cfg, nil)
	require.Error(t, err)
}

func TestRunFailsWhenNoRowsSurvive(t *testing.T) {
	cfg := writeExport(t, "startDate,duration,totalEnergyBurned,activityType\n"+
		"bad,60,10 kcal,Running\n")
	_, err := Run(cfg, nil)
	require.ErrorIs(t, err, domain.ErrEmptyDataset)
}
