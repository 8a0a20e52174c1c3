package warehouse

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"
)

// Probe queries backing the quality auditor. Each runs against the target
// dataset and returns a single observed value; interpretation (PASS / WARN /
// FAIL) is the auditor's job.

// CountRows returns the row count of a derived table.
func (c *Client) CountRows(ctx context.Context, table string) (int64, error) {
	sql := fmt.Sprintf("SELECT COUNT(*) AS n FROM %s", c.targetRef(table))
	n, err := c.queryCount(ctx, sql)
	if err != nil {
		return 0, fmt.Errorf("CountRows %q: %w", table, err)
	}
	return n, nil
}

// OrphanUserCount returns how many distinct user ids referenced by silver
// purchases are absent from the silver user dimension.
func (c *Client) OrphanUserCount(ctx context.Context) (int64, error) {
	sql := fmt.Sprintf(`
		SELECT COUNT(DISTINCT t.user_id) AS n
		FROM %s t
		LEFT JOIN %s u ON t.user_id = u.user_id
		WHERE u.user_id IS NULL
	`, c.targetRef(SilverPurchasesTable), c.targetRef(SilverUsersTable))

	n, err := c.queryCount(ctx, sql)
	if err != nil {
		return 0, fmt.Errorf("OrphanUserCount: %w", err)
	}
	return n, nil
}

// OrphanDestinationCount returns how many distinct destination ids referenced
// by silver purchases are absent from the silver destination dimension.
func (c *Client) OrphanDestinationCount(ctx context.Context) (int64, error) {
	sql := fmt.Sprintf(`
		SELECT COUNT(DISTINCT t.destination_id) AS n
		FROM %s t
		LEFT JOIN %s d ON t.destination_id = d.destination_id
		WHERE d.destination_id IS NULL
	`, c.targetRef(SilverPurchasesTable), c.targetRef(SilverDestinationsTable))

	n, err := c.queryCount(ctx, sql)
	if err != nil {
		return 0, fmt.Errorf("OrphanDestinationCount: %w", err)
	}
	return n, nil
}

// MaxTimestamp returns the most recent value of a table's generation
// timestamp column, or nil when the table is empty.
func (c *Client) MaxTimestamp(ctx context.Context, table, column string) (*time.Time, error) {
	type maxRow struct {
		MaxTS bigquery.NullTimestamp `bigquery:"max_ts"`
	}
	sql := fmt.Sprintf("SELECT MAX(%s) AS max_ts FROM %s", column, c.targetRef(table))

	rows, err := queryRows[maxRow](ctx, c, sql)
	if err != nil {
		return nil, fmt.Errorf("MaxTimestamp %q.%s: %w", table, column, err)
	}
	if len(rows) == 0 || !rows[0].MaxTS.Valid {
		return nil, nil
	}
	ts := rows[0].MaxTS.Timestamp
	return &ts, nil
}

// NegativePriceCount returns how many silver purchase rows carry a negative
// validated price. The cleaning rules should make this impossible.
func (c *Client) NegativePriceCount(ctx context.Context) (int64, error) {
	sql := fmt.Sprintf(`
		SELECT COUNT(*) AS n
		FROM %s
		WHERE price_usd < 0
	`, c.targetRef(SilverPurchasesTable))

	n, err := c.queryCount(ctx, sql)
	if err != nil {
		return 0, fmt.Errorf("NegativePriceCount: %w", err)
	}
	return n, nil
}

// InvalidConversionRateCount returns how many daily revenue rows carry a
// conversion rate outside [0, 100].
func (c *Client) InvalidConversionRateCount(ctx context.Context) (int64, error) {
	sql := fmt.Sprintf(`
		SELECT COUNT(*) AS n
		FROM %s
		WHERE conversion_rate_pct < 0 OR conversion_rate_pct > 100
	`, c.targetRef(GoldDailyRevenueTable))

	n, err := c.queryCount(ctx, sql)
	if err != nil {
		return 0, fmt.Errorf("InvalidConversionRateCount: %w", err)
	}
	return n, nil
}
