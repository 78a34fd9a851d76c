package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/2024-FALL-DSC-412-001/DSC412-project-caden-phan/internal/config"
	"github.com/2024-FALL-DSC-412-001/DSC412-project-caden-phan/internal/logutil"
	"github.com/2024-FALL-DSC-412-001/DSC412-project-caden-phan/internal/pipeline"
	"github.com/2024-FALL-DSC-412-001/DSC412-project-caden-phan/internal/report"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logutil.InitLogger(cfg.LogLevel)
	logger := logutil.GetLogger().With(zap.String("run_id", uuid.NewString()))
	defer logger.Sync()

	rep, err := pipeline.Run(cfg, logger)
	if err != nil {
		logger.Error("analysis failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "fitstats: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(rep.Render())

	if cfg.ChartsEnabled {
		report.RenderCharts(cfg.ChartDir, rep, logger)
	}
}
