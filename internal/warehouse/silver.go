package warehouse

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"
)

// SilverPurchaseRow is a validated purchase transaction. Identifier fields
// are non-null by construction: rows missing any of them never reach silver.
type SilverPurchaseRow struct {
	TransactionID int64                  `bigquery:"transaction_id" json:"transaction_id"`
	TransactionTS bigquery.NullTimestamp `bigquery:"transaction_timestamp" json:"transaction_timestamp"`
	UserID        int64                  `bigquery:"user_id" json:"user_id"`
	DestinationID int64                  `bigquery:"destination_id" json:"destination_id"`
	Clicked       bool                   `bigquery:"clicked" json:"clicked"`
	Purchased     bool                   `bigquery:"purchased" json:"purchased"`
	BookingDate   bigquery.NullDate      `bigquery:"booking_date" json:"booking_date"`
	PriceUSD      bigquery.NullFloat64   `bigquery:"price_usd" json:"price_usd"`
	UserLatitude  bigquery.NullFloat64   `bigquery:"user_latitude" json:"user_latitude"`
	UserLongitude bigquery.NullFloat64   `bigquery:"user_longitude" json:"user_longitude"`

	PriceInvalid    bool `bigquery:"_price_invalid" json:"_price_invalid"`
	LocationInvalid bool `bigquery:"_location_invalid" json:"_location_invalid"`

	TransactionYear      bigquery.NullInt64  `bigquery:"transaction_year" json:"transaction_year"`
	TransactionMonth     bigquery.NullInt64  `bigquery:"transaction_month" json:"transaction_month"`
	TransactionDayOfWeek bigquery.NullInt64  `bigquery:"transaction_day_of_week" json:"transaction_day_of_week"`
	TransactionHour      bigquery.NullInt64  `bigquery:"transaction_hour" json:"transaction_hour"`
	DayType              bigquery.NullString `bigquery:"day_type" json:"day_type"`

	IngestedAt  time.Time `bigquery:"_ingested_at" json:"_ingested_at"`
	ProcessedAt time.Time `bigquery:"_processed_at" json:"_processed_at"`
}

// SilverUserRow is a validated user feature snapshot with segmentation.
type SilverUserRow struct {
	UserID          int64                  `bigquery:"user_id" json:"user_id"`
	LastUpdatedAt   bigquery.NullTimestamp `bigquery:"last_updated_at" json:"last_updated_at"`
	AvgPrice7Day    float64                `bigquery:"avg_price_7day" json:"avg_price_7day"`
	Purchases6Month int64                  `bigquery:"purchases_6month" json:"purchases_6month"`
	UserLatitude    bigquery.NullFloat64   `bigquery:"user_latitude" json:"user_latitude"`
	UserLongitude   bigquery.NullFloat64   `bigquery:"user_longitude" json:"user_longitude"`

	PurchaseFrequencySegment string `bigquery:"purchase_frequency_segment" json:"purchase_frequency_segment"`
	PriceSegment             string `bigquery:"price_segment" json:"price_segment"`

	IngestedAt  time.Time `bigquery:"_ingested_at" json:"_ingested_at"`
	ProcessedAt time.Time `bigquery:"_processed_at" json:"_processed_at"`
}

// SilverDestinationRow is a validated destination reference record.
type SilverDestinationRow struct {
	DestinationID   int64                `bigquery:"destination_id" json:"destination_id"`
	DestinationName bigquery.NullString  `bigquery:"destination_name" json:"destination_name"`
	Latitude        bigquery.NullFloat64 `bigquery:"latitude" json:"latitude"`
	Longitude       bigquery.NullFloat64 `bigquery:"longitude" json:"longitude"`
	Hemisphere      bigquery.NullString  `bigquery:"hemisphere" json:"hemisphere"`

	IngestedAt  time.Time `bigquery:"_ingested_at" json:"_ingested_at"`
	ProcessedAt time.Time `bigquery:"_processed_at" json:"_processed_at"`
}

// ReadSilverPurchases retrieves every cleaned purchase row.
func (c *Client) ReadSilverPurchases(ctx context.Context) ([]SilverPurchaseRow, error) {
	sql := fmt.Sprintf(`
		SELECT
			transaction_id,
			transaction_timestamp,
			user_id,
			destination_id,
			clicked,
			purchased,
			booking_date,
			price_usd,
			user_latitude,
			user_longitude,
			_price_invalid,
			_location_invalid,
			transaction_year,
			transaction_month,
			transaction_day_of_week,
			transaction_hour,
			day_type,
			_ingested_at,
			_processed_at
		FROM %s
	`, c.targetRef(SilverPurchasesTable))

	rows, err := queryRows[SilverPurchaseRow](ctx, c, sql)
	if err != nil {
		return nil, fmt.Errorf("ReadSilverPurchases: %w", err)
	}
	return rows, nil
}

// ReadSilverUsers retrieves every cleaned user row.
func (c *Client) ReadSilverUsers(ctx context.Context) ([]SilverUserRow, error) {
	sql := fmt.Sprintf(`
		SELECT
			user_id,
			last_updated_at,
			avg_price_7day,
			purchases_6month,
			user_latitude,
			user_longitude,
			purchase_frequency_segment,
			price_segment,
			_ingested_at,
			_processed_at
		FROM %s
	`, c.targetRef(SilverUsersTable))

	rows, err := queryRows[SilverUserRow](ctx, c, sql)
	if err != nil {
		return nil, fmt.Errorf("ReadSilverUsers: %w", err)
	}
	return rows, nil
}

// ReadSilverDestinations retrieves every cleaned destination row.
func (c *Client) ReadSilverDestinations(ctx context.Context) ([]SilverDestinationRow, error) {
	sql := fmt.Sprintf(`
		SELECT
			destination_id,
			destination_name,
			latitude,
			longitude,
			hemisphere,
			_ingested_at,
			_processed_at
		FROM %s
	`, c.targetRef(SilverDestinationsTable))

	rows, err := queryRows[SilverDestinationRow](ctx, c, sql)
	if err != nil {
		return nil, fmt.Errorf("ReadSilverDestinations: %w", err)
	}
	return rows, nil
}

// ReplaceSilverPurchases replaces the silver purchase table contents.
func (c *Client) ReplaceSilverPurchases(ctx context.Context, rows []SilverPurchaseRow) error {
	return replaceRows(ctx, c, SilverPurchasesTable, rows)
}

// ReplaceSilverUsers replaces the silver user table contents.
func (c *Client) ReplaceSilverUsers(ctx context.Context, rows []SilverUserRow) error {
	return replaceRows(ctx, c, SilverUsersTable, rows)
}

// ReplaceSilverDestinations replaces the silver destination table contents.
func (c *Client) ReplaceSilverDestinations(ctx context.Context, rows []SilverDestinationRow) error {
	return replaceRows(ctx, c, SilverDestinationsTable, rows)
}
