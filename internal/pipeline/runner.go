// Package pipeline sequences the medallion stages. Data flows one direction
// only: ingestion, cleaning, aggregation, audit. A stage failure stops the
// run; later stages never see a partially built layer.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/henrykw/travel-medallion/internal/logger"
)

// Stage is one step of the medallion flow.
type Stage interface {
	Name() string
	Run(ctx context.Context) error
}

// Runner executes stages in order, aborting on the first failure.
type Runner struct {
	stages []Stage
	log    zerolog.Logger
}

// NewRunner creates a runner over the given stages, in execution order.
func NewRunner(log zerolog.Logger, stages ...Stage) *Runner {
	return &Runner{stages: stages, log: log}
}

// Run executes every stage sequentially.
func (r *Runner) Run(ctx context.Context) error {
	for _, stage := range r.stages {
		log := logger.ForStage(r.log, stage.Name())
		log.Info().Msg("stage started")

		start := time.Now()
		if err := stage.Run(ctx); err != nil {
			log.Error().Err(err).Msg("stage failed")
			return fmt.Errorf("pipeline: stage %s: %w", stage.Name(), err)
		}
		log.Info().Dur("elapsed", time.Since(start)).Msg("stage complete")
	}
	return nil
}
