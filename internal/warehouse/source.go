package warehouse

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
)

// RawPurchaseRow is a travel purchase event exactly as received from the
// source system. Every field is nullable; nothing upstream is trusted.
type RawPurchaseRow struct {
	ID            bigquery.NullInt64     `bigquery:"id"`
	TS            bigquery.NullTimestamp `bigquery:"ts"`
	UserID        bigquery.NullInt64     `bigquery:"user_id"`
	DestinationID bigquery.NullInt64     `bigquery:"destination_id"`
	Clicked       bigquery.NullBool      `bigquery:"clicked"`
	Purchased     bigquery.NullBool      `bigquery:"purchased"`
	BookingDate   bigquery.NullDate      `bigquery:"booking_date"`
	Price         bigquery.NullFloat64   `bigquery:"price"`
	UserLatitude  bigquery.NullFloat64   `bigquery:"user_latitude"`
	UserLongitude bigquery.NullFloat64   `bigquery:"user_longitude"`
}

// RawUserRow is a user feature snapshot as received from the source system.
type RawUserRow struct {
	UserID          bigquery.NullInt64     `bigquery:"user_id"`
	TS              bigquery.NullTimestamp `bigquery:"ts"`
	MeanPrice7D     bigquery.NullFloat64   `bigquery:"mean_price_7d"`
	Last6MPurchases bigquery.NullInt64     `bigquery:"last_6m_purchases"`
	UserLongitude   bigquery.NullFloat64   `bigquery:"user_longitude"`
	UserLatitude    bigquery.NullFloat64   `bigquery:"user_latitude"`
}

// RawDestinationRow is a destination reference record as received from the
// source system.
type RawDestinationRow struct {
	DestinationID bigquery.NullInt64   `bigquery:"destination_id"`
	Name          bigquery.NullString  `bigquery:"name"`
	Latitude      bigquery.NullFloat64 `bigquery:"latitude"`
	Longitude     bigquery.NullFloat64 `bigquery:"longitude"`
}

// ReadSourcePurchases retrieves every raw purchase event from the source dataset.
func (c *Client) ReadSourcePurchases(ctx context.Context) ([]RawPurchaseRow, error) {
	sql := fmt.Sprintf(`
		SELECT
			id,
			ts,
			user_id,
			destination_id,
			clicked,
			purchased,
			booking_date,
			price,
			user_latitude,
			user_longitude
		FROM %s
	`, c.sourceRef(SourcePurchasesTable))

	rows, err := queryRows[RawPurchaseRow](ctx, c, sql)
	if err != nil {
		return nil, fmt.Errorf("ReadSourcePurchases: %w", err)
	}
	return rows, nil
}

// ReadSourceUsers retrieves every raw user feature snapshot from the source dataset.
func (c *Client) ReadSourceUsers(ctx context.Context) ([]RawUserRow, error) {
	sql := fmt.Sprintf(`
		SELECT
			user_id,
			ts,
			mean_price_7d,
			last_6m_purchases,
			user_longitude,
			user_latitude
		FROM %s
	`, c.sourceRef(SourceUsersTable))

	rows, err := queryRows[RawUserRow](ctx, c, sql)
	if err != nil {
		return nil, fmt.Errorf("ReadSourceUsers: %w", err)
	}
	return rows, nil
}

// ReadSourceDestinations retrieves every raw destination record from the source dataset.
func (c *Client) ReadSourceDestinations(ctx context.Context) ([]RawDestinationRow, error) {
	sql := fmt.Sprintf(`
		SELECT
			destination_id,
			name,
			latitude,
			longitude
		FROM %s
	`, c.sourceRef(SourceDestinationsTable))

	rows, err := queryRows[RawDestinationRow](ctx, c, sql)
	if err != nil {
		return nil, fmt.Errorf("ReadSourceDestinations: %w", err)
	}
	return rows, nil
}
