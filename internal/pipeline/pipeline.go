// Package pipeline wires the single forward pass: load, derive, aggregate.
package pipeline

import (
	"go.uber.org/zap"

	"github.com/2024-FALL-DSC-412-001/DSC412-project-caden-phan/internal/analysis"
	"github.com/2024-FALL-DSC-412-001/DSC412-project-caden-phan/internal/config"
	"github.com/2024-FALL-DSC-412-001/DSC412-project-caden-phan/internal/domain"
	"github.com/2024-FALL-DSC-412-001/DSC412-project-caden-phan/internal/ingest"
	"github.com/2024-FALL-DSC-412-001/DSC412-project-caden-phan/internal/report"
)

// Run executes one full analysis pass over the configured export and returns
// the assembled report. Fatal only when the file cannot be loaded or no rows
// survive parsing.
func Run(cfg config.Config, logger *zap.Logger) (*report.Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loader := ingest.NewLoader(logger)
	result, err := loader.LoadFile(cfg.CSVPath)
	if err != nil {
		return nil, err
	}
	logger.Info("export loaded",
		zap.String("path", cfg.CSVPath),
		zap.Int("rows", result.Stats.TotalRows),
		zap.Int("loaded", result.Stats.Loaded),
		zap.Int("skipped", result.Stats.Skipped))
	if len(result.Workouts) == 0 {
		return nil, domain.ErrEmptyDataset
	}

	samples := analysis.DeriveAll(result.Workouts)
	rep := report.Build(result.Stats, samples)
	logger.Info("report assembled",
		zap.Int("samples", len(samples)),
		zap.Int("activity_groups", len(rep.ActivityEnergy)))
	return rep, nil
}
