package warehouse

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"
)

// BronzePurchaseRow is a raw purchase event with lineage metadata attached.
// All source columns pass through unchanged.
type BronzePurchaseRow struct {
	ID            bigquery.NullInt64     `bigquery:"id" json:"id"`
	TS            bigquery.NullTimestamp `bigquery:"ts" json:"ts"`
	UserID        bigquery.NullInt64     `bigquery:"user_id" json:"user_id"`
	DestinationID bigquery.NullInt64     `bigquery:"destination_id" json:"destination_id"`
	Clicked       bigquery.NullBool      `bigquery:"clicked" json:"clicked"`
	Purchased     bigquery.NullBool      `bigquery:"purchased" json:"purchased"`
	BookingDate   bigquery.NullDate      `bigquery:"booking_date" json:"booking_date"`
	Price         bigquery.NullFloat64   `bigquery:"price" json:"price"`
	UserLatitude  bigquery.NullFloat64   `bigquery:"user_latitude" json:"user_latitude"`
	UserLongitude bigquery.NullFloat64   `bigquery:"user_longitude" json:"user_longitude"`

	IngestedAt  time.Time `bigquery:"_ingested_at" json:"_ingested_at"`
	SourceTable string    `bigquery:"_source_table" json:"_source_table"`
	RowHash     string    `bigquery:"_row_hash" json:"_row_hash"`
}

// BronzeUserRow is a raw user feature snapshot with lineage metadata attached.
type BronzeUserRow struct {
	UserID          bigquery.NullInt64     `bigquery:"user_id" json:"user_id"`
	TS              bigquery.NullTimestamp `bigquery:"ts" json:"ts"`
	MeanPrice7D     bigquery.NullFloat64   `bigquery:"mean_price_7d" json:"mean_price_7d"`
	Last6MPurchases bigquery.NullInt64     `bigquery:"last_6m_purchases" json:"last_6m_purchases"`
	UserLongitude   bigquery.NullFloat64   `bigquery:"user_longitude" json:"user_longitude"`
	UserLatitude    bigquery.NullFloat64   `bigquery:"user_latitude" json:"user_latitude"`

	IngestedAt  time.Time `bigquery:"_ingested_at" json:"_ingested_at"`
	SourceTable string    `bigquery:"_source_table" json:"_source_table"`
}

// BronzeDestinationRow is a raw destination record with lineage metadata
// attached. The source name and coordinate columns are renamed to the bronze
// column set here, values untouched.
type BronzeDestinationRow struct {
	DestinationID   bigquery.NullInt64   `bigquery:"destination_id" json:"destination_id"`
	DestinationName bigquery.NullString  `bigquery:"destination_name" json:"destination_name"`
	DestLatitude    bigquery.NullFloat64 `bigquery:"dest_latitude" json:"dest_latitude"`
	DestLongitude   bigquery.NullFloat64 `bigquery:"dest_longitude" json:"dest_longitude"`

	IngestedAt  time.Time `bigquery:"_ingested_at" json:"_ingested_at"`
	SourceTable string    `bigquery:"_source_table" json:"_source_table"`
}

// ReadBronzePurchases retrieves every bronze purchase row.
func (c *Client) ReadBronzePurchases(ctx context.Context) ([]BronzePurchaseRow, error) {
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
			user_longitude,
			_ingested_at,
			_source_table,
			_row_hash
		FROM %s
	`, c.targetRef(BronzePurchasesTable))

	rows, err := queryRows[BronzePurchaseRow](ctx, c, sql)
	if err != nil {
		return nil, fmt.Errorf("ReadBronzePurchases: %w", err)
	}
	return rows, nil
}

// ReadBronzeUsers retrieves every bronze user feature row.
func (c *Client) ReadBronzeUsers(ctx context.Context) ([]BronzeUserRow, error) {
	sql := fmt.Sprintf(`
		SELECT
			user_id,
			ts,
			mean_price_7d,
			last_6m_purchases,
			user_longitude,
			user_latitude,
			_ingested_at,
			_source_table
		FROM %s
	`, c.targetRef(BronzeUsersTable))

	rows, err := queryRows[BronzeUserRow](ctx, c, sql)
	if err != nil {
		return nil, fmt.Errorf("ReadBronzeUsers: %w", err)
	}
	return rows, nil
}

// ReadBronzeDestinations retrieves every bronze destination row.
func (c *Client) ReadBronzeDestinations(ctx context.Context) ([]BronzeDestinationRow, error) {
	sql := fmt.Sprintf(`
		SELECT
			destination_id,
			destination_name,
			dest_latitude,
			dest_longitude,
			_ingested_at,
			_source_table
		FROM %s
	`, c.targetRef(BronzeDestinationsTable))

	rows, err := queryRows[BronzeDestinationRow](ctx, c, sql)
	if err != nil {
		return nil, fmt.Errorf("ReadBronzeDestinations: %w", err)
	}
	return rows, nil
}

// ReplaceBronzePurchases replaces the bronze purchase table contents.
func (c *Client) ReplaceBronzePurchases(ctx context.Context, rows []BronzePurchaseRow) error {
	return replaceRows(ctx, c, BronzePurchasesTable, rows)
}

// ReplaceBronzeUsers replaces the bronze user feature table contents.
func (c *Client) ReplaceBronzeUsers(ctx context.Context, rows []BronzeUserRow) error {
	return replaceRows(ctx, c, BronzeUsersTable, rows)
}

// ReplaceBronzeDestinations replaces the bronze destination table contents.
func (c *Client) ReplaceBronzeDestinations(ctx context.Context, rows []BronzeDestinationRow) error {
	return replaceRows(ctx, c, BronzeDestinationsTable, rows)
}
