package quality

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/henrykw/travel-medallion/internal/config"
	"github.com/henrykw/travel-medallion/internal/warehouse"
)

// ErrChecksFailed is returned by Run when at least one check recorded a FAIL
// status. The audit log has already been persisted by the time it is returned.
var ErrChecksFailed = errors.New("quality checks failed")

// Reporter publishes the results of one audit run to an external sink.
type Reporter interface {
	Publish(ctx context.Context, runID string, results []warehouse.AuditResultRow) error
}

// Auditor executes the checklist, writes the audit log, and reports the
// overall verdict.
type Auditor struct {
	cfg      config.Config
	store    Store
	reporter Reporter
	log      zerolog.Logger
	now      func() time.Time
	newRunID func() string
}

// NewAuditor creates the quality auditor.
func NewAuditor(cfg config.Config, store Store, log zerolog.Logger) *Auditor {
	return &Auditor{
		cfg:      cfg,
		store:    store,
		log:      log,
		now:      time.Now,
		newRunID: uuid.NewString,
	}
}

// WithReporter attaches an external report sink. A publish failure is logged
// but never changes the run's verdict.
func (a *Auditor) WithReporter(r Reporter) *Auditor {
	a.reporter = r
	return a
}

// Name returns the stage name.
func (a *Auditor) Name() string { return "quality" }

// Run executes every check, persists the full result list, then fails the
// run if any check recorded FAIL. WARN results are surfaced in the log and
// the audit table but do not fail the run.
func (a *Auditor) Run(ctx context.Context) error {
	runID := a.newRunID()
	checkedAt := a.now().UTC()
	checklist := Checklist()

	results := make([]warehouse.AuditResultRow, 0, len(checklist))
	var warned, failed int
	for _, def := range checklist {
		actual, ok, err := def.Eval(ctx, a.store, checkedAt)

		status := warehouse.StatusPass
		switch {
		case err != nil:
			status = warehouse.StatusFail
			actual = err.Error()
		case !ok:
			status = def.Severity
		}

		var event *zerolog.Event
		switch status {
		case warehouse.StatusWarn:
			warned++
			event = a.log.Warn()
		case warehouse.StatusFail:
			failed++
			event = a.log.Error()
		default:
			event = a.log.Info()
		}
		event.Str("check", def.Name).Str("table", def.Table).
			Str("expected", def.Expected).Str("actual", actual).
			Msg(status)

		results = append(results, warehouse.AuditResultRow{
			RunID:     runID,
			Check:     def.Name,
			TableName: def.Table,
			Layer:     warehouse.LayerOf(def.Table),
			Expected:  def.Expected,
			Actual:    actual,
			Status:    status,
			CheckedAt: checkedAt,
		})
	}

	// Persist the evidence before deciding the verdict.
	if err := a.store.ReplaceAuditLog(ctx, results); err != nil {
		return fmt.Errorf("quality: persist audit log: %w", err)
	}

	if a.reporter != nil {
		if err := a.reporter.Publish(ctx, runID, results); err != nil {
			a.log.Warn().Err(err).Str("run_id", runID).Msg("audit report publish failed")
		}
	}

	a.log.Info().Str("run_id", runID).
		Int("checks", len(results)).Int("warnings", warned).Int("failures", failed).
		Msg("audit complete")

	if failed > 0 {
		return fmt.Errorf("quality: %d of %d checks failed: %w", failed, len(results), ErrChecksFailed)
	}
	return nil
}
