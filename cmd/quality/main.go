package main

import (
	"context"
	"errors"
	"flag"
	"time"

	"github.com/henrykw/travel-medallion/internal/config"
	"github.com/henrykw/travel-medallion/internal/logger"
	"github.com/henrykw/travel-medallion/internal/quality"
	"github.com/henrykw/travel-medallion/internal/report"
	"github.com/henrykw/travel-medallion/internal/warehouse"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	flag.StringVar(&cfg.Project, "project", cfg.Project, "GCP project id")
	flag.StringVar(&cfg.TargetDataset, "target-dataset", cfg.TargetDataset, "dataset the pipeline writes to")
	flag.StringVar(&cfg.ReportBucket, "report-bucket", cfg.ReportBucket, "GCS bucket for the JSON run report (empty disables the upload)")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	store, err := warehouse.NewClient(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Creating warehouse client failed")
	}
	defer store.Close()

	log.Info().Str("project", cfg.Project).Str("target_dataset", cfg.TargetDataset).Msg("Starting quality audit")

	auditor := quality.NewAuditor(cfg, store, logger.ForStage(log, "quality"))
	if cfg.ReportBucket != "" {
		auditor.WithReporter(report.NewPublisher(cfg.ReportBucket))
	}

	if err := auditor.Run(ctx); err != nil {
		if errors.Is(err, quality.ErrChecksFailed) {
			log.Fatal().Err(err).Msg("Quality audit failed")
		}
		log.Fatal().Err(err).Msg("Quality audit could not complete")
	}

	log.Info().Msg("Quality audit completed")
}
