// Package quality runs the data-quality checklist over the derived tables
// and persists the outcome to the audit log. Checks are independent: one
// check failing, or erroring, never stops the others from running.
package quality

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/henrykw/travel-medallion/internal/warehouse"
)

// FreshnessWindow is how old a table's newest generation timestamp may be
// before the freshness check flags it.
const FreshnessWindow = 24 * time.Hour

// Store is the warehouse surface the auditor probes.
type Store interface {
	CountRows(ctx context.Context, table string) (int64, error)
	OrphanUserCount(ctx context.Context) (int64, error)
	OrphanDestinationCount(ctx context.Context) (int64, error)
	MaxTimestamp(ctx context.Context, table, column string) (*time.Time, error)
	NegativePriceCount(ctx context.Context) (int64, error)
	InvalidConversionRateCount(ctx context.Context) (int64, error)
	ReplaceAuditLog(ctx context.Context, rows []warehouse.AuditResultRow) error
}

// Definition is one entry of the checklist. Eval returns the observed value
// and whether the expectation holds; Severity is the status recorded when it
// does not. An Eval error is always recorded as FAIL regardless of Severity.
type Definition struct {
	Name     string
	Table    string
	Expected string
	Severity string
	Eval     func(ctx context.Context, store Store, now time.Time) (actual string, ok bool, err error)
}

// Checklist builds the fixed, ordered list of checks: a record-count and a
// freshness check for every derived table, the two referential-integrity
// directions, and the business-rule bounds.
func Checklist() []Definition {
	defs := make([]Definition, 0, 2*len(warehouse.DerivedTables)+4)

	for _, table := range warehouse.DerivedTables {
		defs = append(defs, Definition{
			Name:     "record_count",
			Table:    table,
			Expected: "row count > 0",
			Severity: warehouse.StatusFail,
			Eval: func(ctx context.Context, store Store, _ time.Time) (string, bool, error) {
				n, err := store.CountRows(ctx, table)
				if err != nil {
					return "", false, err
				}
				return strconv.FormatInt(n, 10), n > 0, nil
			},
		})
	}

	defs = append(defs,
		Definition{
			Name:     "referential_integrity_users",
			Table:    warehouse.SilverPurchasesTable,
			Expected: "0 orphaned user ids",
			Severity: warehouse.StatusWarn,
			Eval: func(ctx context.Context, store Store, _ time.Time) (string, bool, error) {
				n, err := store.OrphanUserCount(ctx)
				if err != nil {
					return "", false, err
				}
				return strconv.FormatInt(n, 10), n == 0, nil
			},
		},
		Definition{
			Name:     "referential_integrity_destinations",
			Table:    warehouse.SilverPurchasesTable,
			Expected: "0 orphaned destination ids",
			Severity: warehouse.StatusWarn,
			Eval: func(ctx context.Context, store Store, _ time.Time) (string, bool, error) {
				n, err := store.OrphanDestinationCount(ctx)
				if err != nil {
					return "", false, err
				}
				return strconv.FormatInt(n, 10), n == 0, nil
			},
		},
	)

	for _, table := range warehouse.DerivedTables {
		column := warehouse.TimestampColumn(table)
		defs = append(defs, Definition{
			Name:     "freshness",
			Table:    table,
			Expected: fmt.Sprintf("max %s within %s", column, FreshnessWindow),
			Severity: warehouse.StatusWarn,
			Eval: func(ctx context.Context, store Store, now time.Time) (string, bool, error) {
				ts, err := store.MaxTimestamp(ctx, table, column)
				if err != nil {
					return "", false, err
				}
				if ts == nil {
					// An empty table has no freshest row at all.
					return "no rows", false, nil
				}
				age := now.Sub(*ts)
				return fmt.Sprintf("age %s", age.Truncate(time.Second)), age <= FreshnessWindow, nil
			},
		})
	}

	defs = append(defs,
		Definition{
			Name:     "no_negative_prices",
			Table:    warehouse.SilverPurchasesTable,
			Expected: "0 rows with price_usd < 0",
			Severity: warehouse.StatusFail,
			Eval: func(ctx context.Context, store Store, _ time.Time) (string, bool, error) {
				n, err := store.NegativePriceCount(ctx)
				if err != nil {
					return "", false, err
				}
				return strconv.FormatInt(n, 10), n == 0, nil
			},
		},
		Definition{
			Name:     "conversion_rate_bounds",
			Table:    warehouse.GoldDailyRevenueTable,
			Expected: "0 rows with conversion_rate_pct outside [0, 100]",
			Severity: warehouse.StatusFail,
			Eval: func(ctx context.Context, store Store, _ time.Time) (string, bool, error) {
				n, err := store.InvalidConversionRateCount(ctx)
				if err != nil {
					return "", false, err
				}
				return strconv.FormatInt(n, 10), n == 0, nil
			},
		},
	)

	return defs
}
