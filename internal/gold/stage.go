package gold

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/henrykw/travel-medallion/internal/config"
	"github.com/henrykw/travel-medallion/internal/warehouse"
)

// Store is the warehouse surface the gold stage needs.
type Store interface {
	ReadSilverPurchases(ctx context.Context) ([]warehouse.SilverPurchaseRow, error)
	ReadSilverUsers(ctx context.Context) ([]warehouse.SilverUserRow, error)
	ReadSilverDestinations(ctx context.Context) ([]warehouse.SilverDestinationRow, error)
	ReplaceGoldDailyRevenue(ctx context.Context, rows []warehouse.GoldDailyRevenueRow) error
	ReplaceGoldDestinationPerformance(ctx context.Context, rows []warehouse.GoldDestinationRow) error
	ReplaceGoldUserEngagement(ctx context.Context, rows []warehouse.GoldUserEngagementRow) error
	ReplaceGoldMonthlySummary(ctx context.Context, rows []warehouse.GoldMonthlySummaryRow) error
}

// Stage aggregates the silver layer into the four gold tables.
type Stage struct {
	cfg   config.Config
	store Store
	log   zerolog.Logger
	now   func() time.Time
}

// NewStage creates the gold stage.
func NewStage(cfg config.Config, store Store, log zerolog.Logger) *Stage {
	return &Stage{cfg: cfg, store: store, log: log, now: time.Now}
}

// Name returns the stage name.
func (s *Stage) Name() string { return "gold" }

// Run reads the silver snapshot once and derives all four aggregates from it.
func (s *Stage) Run(ctx context.Context) error {
	generatedAt := s.now().UTC()

	purchases, err := s.store.ReadSilverPurchases(ctx)
	if err != nil {
		return fmt.Errorf("gold: %w", err)
	}
	users, err := s.store.ReadSilverUsers(ctx)
	if err != nil {
		return fmt.Errorf("gold: %w", err)
	}
	destinations, err := s.store.ReadSilverDestinations(ctx)
	if err != nil {
		return fmt.Errorf("gold: %w", err)
	}

	daily := DailyRevenue(purchases, generatedAt)
	if err := s.store.ReplaceGoldDailyRevenue(ctx, daily); err != nil {
		return fmt.Errorf("gold: %w", err)
	}
	s.log.Info().Int("rows", len(daily)).Str("table", warehouse.GoldDailyRevenueTable).Msg("gold table created")

	performance := DestinationPerformance(destinations, purchases, generatedAt)
	if err := s.store.ReplaceGoldDestinationPerformance(ctx, performance); err != nil {
		return fmt.Errorf("gold: %w", err)
	}
	s.log.Info().Int("rows", len(performance)).Str("table", warehouse.GoldDestinationPerformanceTable).Msg("gold table created")

	engagement := UserEngagement(users, purchases, generatedAt)
	if err := s.store.ReplaceGoldUserEngagement(ctx, engagement); err != nil {
		return fmt.Errorf("gold: %w", err)
	}
	s.log.Info().Int("rows", len(engagement)).Str("table", warehouse.GoldUserEngagementTable).Msg("gold table created")

	monthly := MonthlySummary(purchases, generatedAt)
	if err := s.store.ReplaceGoldMonthlySummary(ctx, monthly); err != nil {
		return fmt.Errorf("gold: %w", err)
	}
	s.log.Info().Int("rows", len(monthly)).Str("table", warehouse.GoldMonthlySummaryTable).Msg("gold table created")

	return nil
}
