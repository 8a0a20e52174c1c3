package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the resolved run parameters for a pipeline invocation.
// Every stage receives a Config value explicitly; nothing reads run
// parameters from ambient state.
type Config struct {
	// Project is the GCP project that owns the source and target datasets.
	Project string `envconfig:"PROJECT" default:"dbdemos-henryk"`

	// SourceDataset is the dataset holding the raw travel relations.
	SourceDataset string `envconfig:"SOURCE_DATASET" default:"dbdemos_fs_travel"`

	// TargetDataset is the dataset the pipeline writes every derived table to.
	TargetDataset string `envconfig:"TARGET_DATASET" default:"medallion_pipeline"`

	// ReportBucket, when set, is the GCS bucket the quality auditor uploads
	// its JSON run report to. Empty disables the upload.
	ReportBucket string `envconfig:"REPORT_BUCKET" default:""`
}

// Load resolves configuration from MEDALLION_* environment variables,
// falling back to the documented defaults for anything unset.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("medallion", &cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every required parameter is non-empty.
func (c Config) Validate() error {
	if c.Project == "" {
		return fmt.Errorf("config: project must not be empty")
	}
	if c.SourceDataset == "" {
		return fmt.Errorf("config: source dataset must not be empty")
	}
	if c.TargetDataset == "" {
		return fmt.Errorf("config: target dataset must not be empty")
	}
	return nil
}
