package main

import (
	"context"
	"flag"
	"time"

	"github.com/henrykw/travel-medallion/internal/bronze"
	"github.com/henrykw/travel-medallion/internal/config"
	"github.com/henrykw/travel-medallion/internal/gold"
	"github.com/henrykw/travel-medallion/internal/logger"
	"github.com/henrykw/travel-medallion/internal/pipeline"
	"github.com/henrykw/travel-medallion/internal/quality"
	"github.com/henrykw/travel-medallion/internal/report"
	"github.com/henrykw/travel-medallion/internal/silver"
	"github.com/henrykw/travel-medallion/internal/warehouse"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	flag.StringVar(&cfg.Project, "project", cfg.Project, "GCP project id")
	flag.StringVar(&cfg.SourceDataset, "source-dataset", cfg.SourceDataset, "dataset holding the raw travel relations")
	flag.StringVar(&cfg.TargetDataset, "target-dataset", cfg.TargetDataset, "dataset the pipeline writes to")
	flag.StringVar(&cfg.ReportBucket, "report-bucket", cfg.ReportBucket, "GCS bucket for the JSON run report (empty disables the upload)")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Hour)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	store, err := warehouse.NewClient(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Creating warehouse client failed")
	}
	defer store.Close()

	auditor := quality.NewAuditor(cfg, store, logger.ForStage(log, "quality"))
	if cfg.ReportBucket != "" {
		auditor.WithReporter(report.NewPublisher(cfg.ReportBucket))
	}

	runner := pipeline.NewRunner(log,
		bronze.NewStage(cfg, store, logger.ForStage(log, "bronze")),
		silver.NewStage(cfg, store, logger.ForStage(log, "silver")),
		gold.NewStage(cfg, store, logger.ForStage(log, "gold")),
		auditor,
	)

	log.Info().Str("project", cfg.Project).
		Str("source_dataset", cfg.SourceDataset).Str("target_dataset", cfg.TargetDataset).
		Msg("Starting medallion pipeline")

	if err := runner.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Pipeline failed")
	}

	log.Info().Msg("Pipeline completed")
}
