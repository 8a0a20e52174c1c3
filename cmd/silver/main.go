package main

import (
	"context"
	"flag"
	"time"

	"github.com/henrykw/travel-medallion/internal/config"
	"github.com/henrykw/travel-medallion/internal/logger"
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
	flag.StringVar(&cfg.TargetDataset, "target-dataset", cfg.TargetDataset, "dataset the pipeline writes to")
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

	log.Info().Str("project", cfg.Project).Str("target_dataset", cfg.TargetDataset).Msg("Starting silver cleaning")

	stage := silver.NewStage(cfg, store, logger.ForStage(log, "silver"))
	if err := stage.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Silver cleaning failed")
	}

	log.Info().Msg("Silver cleaning completed")
}
