package silver

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/henrykw/travel-medallion/internal/config"
	"github.com/henrykw/travel-medallion/internal/warehouse"
)

// Store is the warehouse surface the silver stage needs.
type Store interface {
	ReadBronzePurchases(ctx context.Context) ([]warehouse.BronzePurchaseRow, error)
	ReadBronzeUsers(ctx context.Context) ([]warehouse.BronzeUserRow, error)
	ReadBronzeDestinations(ctx context.Context) ([]warehouse.BronzeDestinationRow, error)
	ReplaceSilverPurchases(ctx context.Context, rows []warehouse.SilverPurchaseRow) error
	ReplaceSilverUsers(ctx context.Context, rows []warehouse.SilverUserRow) error
	ReplaceSilverDestinations(ctx context.Context, rows []warehouse.SilverDestinationRow) error
}

// Stage cleans and validates the bronze layer into silver tables.
type Stage struct {
	cfg   config.Config
	store Store
	log   zerolog.Logger
	now   func() time.Time
}

// NewStage creates the silver stage.
func NewStage(cfg config.Config, store Store, log zerolog.Logger) *Stage {
	return &Stage{cfg: cfg, store: store, log: log, now: time.Now}
}

// Name returns the stage name.
func (s *Stage) Name() string { return "silver" }

// Run cleans each bronze table into its silver counterpart.
func (s *Stage) Run(ctx context.Context) error {
	processedAt := s.now().UTC()

	purchases, err := s.store.ReadBronzePurchases(ctx)
	if err != nil {
		return fmt.Errorf("silver: %w", err)
	}
	cleanedPurchases := CleanPurchases(purchases, processedAt)
	if err := s.store.ReplaceSilverPurchases(ctx, cleanedPurchases); err != nil {
		return fmt.Errorf("silver: %w", err)
	}
	invalid := 0
	for _, p := range cleanedPurchases {
		if p.PriceInvalid {
			invalid++
		}
	}
	s.log.Info().
		Int("rows", len(cleanedPurchases)).
		Int("dropped", len(purchases)-len(cleanedPurchases)).
		Int("invalid_prices", invalid).
		Str("table", warehouse.SilverPurchasesTable).
		Msg("silver table created")

	users, err := s.store.ReadBronzeUsers(ctx)
	if err != nil {
		return fmt.Errorf("silver: %w", err)
	}
	cleanedUsers := CleanUsers(users, processedAt)
	if err := s.store.ReplaceSilverUsers(ctx, cleanedUsers); err != nil {
		return fmt.Errorf("silver: %w", err)
	}
	s.log.Info().
		Int("rows", len(cleanedUsers)).
		Int("dropped", len(users)-len(cleanedUsers)).
		Str("table", warehouse.SilverUsersTable).
		Msg("silver table created")

	destinations, err := s.store.ReadBronzeDestinations(ctx)
	if err != nil {
		return fmt.Errorf("silver: %w", err)
	}
	cleanedDestinations := CleanDestinations(destinations, processedAt)
	if err := s.store.ReplaceSilverDestinations(ctx, cleanedDestinations); err != nil {
		return fmt.Errorf("silver: %w", err)
	}
	s.log.Info().
		Int("rows", len(cleanedDestinations)).
		Int("dropped", len(destinations)-len(cleanedDestinations)).
		Str("table", warehouse.SilverDestinationsTable).
		Msg("silver table created")

	return nil
}
