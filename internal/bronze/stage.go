package bronze

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/henrykw/travel-medallion/internal/config"
	"github.com/henrykw/travel-medallion/internal/warehouse"
)

// Store is the warehouse surface the bronze stage needs.
type Store interface {
	EnsureTargetDataset(ctx context.Context) error
	ReadSourcePurchases(ctx context.Context) ([]warehouse.RawPurchaseRow, error)
	ReadSourceUsers(ctx context.Context) ([]warehouse.RawUserRow, error)
	ReadSourceDestinations(ctx context.Context) ([]warehouse.RawDestinationRow, error)
	ReplaceBronzePurchases(ctx context.Context, rows []warehouse.BronzePurchaseRow) error
	ReplaceBronzeUsers(ctx context.Context, rows []warehouse.BronzeUserRow) error
	ReplaceBronzeDestinations(ctx context.Context, rows []warehouse.BronzeDestinationRow) error
}

// Stage ingests the three raw source relations into the bronze layer.
type Stage struct {
	cfg   config.Config
	store Store
	log   zerolog.Logger
	now   func() time.Time
}

// NewStage creates the bronze stage.
func NewStage(cfg config.Config, store Store, log zerolog.Logger) *Stage {
	return &Stage{cfg: cfg, store: store, log: log, now: time.Now}
}

// Name returns the stage name.
func (s *Stage) Name() string { return "bronze" }

// Run copies each source relation into its bronze table with lineage columns
// attached. Every table gets the same ingestion timestamp for the run.
func (s *Stage) Run(ctx context.Context) error {
	if err := s.store.EnsureTargetDataset(ctx); err != nil {
		return fmt.Errorf("bronze: %w", err)
	}

	ingestedAt := s.now().UTC()

	purchases, err := s.store.ReadSourcePurchases(ctx)
	if err != nil {
		return fmt.Errorf("bronze: %w", err)
	}
	source := s.cfg.SourceDataset + "." + warehouse.SourcePurchasesTable
	if err := s.store.ReplaceBronzePurchases(ctx, IngestPurchases(purchases, ingestedAt, source)); err != nil {
		return fmt.Errorf("bronze: %w", err)
	}
	s.log.Info().Int("rows", len(purchases)).Str("table", warehouse.BronzePurchasesTable).Msg("bronze table created")

	users, err := s.store.ReadSourceUsers(ctx)
	if err != nil {
		return fmt.Errorf("bronze: %w", err)
	}
	source = s.cfg.SourceDataset + "." + warehouse.SourceUsersTable
	if err := s.store.ReplaceBronzeUsers(ctx, IngestUsers(users, ingestedAt, source)); err != nil {
		return fmt.Errorf("bronze: %w", err)
	}
	s.log.Info().Int("rows", len(users)).Str("table", warehouse.BronzeUsersTable).Msg("bronze table created")

	destinations, err := s.store.ReadSourceDestinations(ctx)
	if err != nil {
		return fmt.Errorf("bronze: %w", err)
	}
	source = s.cfg.SourceDataset + "." + warehouse.SourceDestinationsTable
	if err := s.store.ReplaceBronzeDestinations(ctx, IngestDestinations(destinations, ingestedAt, source)); err != nil {
		return fmt.Errorf("bronze: %w", err)
	}
	s.log.Info().Int("rows", len(destinations)).Str("table", warehouse.BronzeDestinationsTable).Msg("bronze table created")

	return nil
}
