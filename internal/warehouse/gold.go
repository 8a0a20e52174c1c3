package warehouse

import (
	"context"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
)

// GoldDailyRevenueRow is one day (split by day type) of revenue and
// transaction metrics.
type GoldDailyRevenueRow struct {
	ReportDate       civil.Date `bigquery:"report_date" json:"report_date"`
	TransactionYear  int64      `bigquery:"transaction_year" json:"transaction_year"`
	TransactionMonth int64      `bigquery:"transaction_month" json:"transaction_month"`
	DayType          string     `bigquery:"day_type" json:"day_type"`

	TotalTransactions int64 `bigquery:"total_transactions" json:"total_transactions"`
	TotalClicks       int64 `bigquery:"total_clicks" json:"total_clicks"`
	TotalPurchases    int64 `bigquery:"total_purchases" json:"total_purchases"`

	ConversionRatePct      bigquery.NullFloat64 `bigquery:"conversion_rate_pct" json:"conversion_rate_pct"`
	ClickToPurchaseRatePct bigquery.NullFloat64 `bigquery:"click_to_purchase_rate_pct" json:"click_to_purchase_rate_pct"`

	TotalRevenueUSD        float64              `bigquery:"total_revenue_usd" json:"total_revenue_usd"`
	AvgTransactionValueUSD bigquery.NullFloat64 `bigquery:"avg_transaction_value_usd" json:"avg_transaction_value_usd"`
	MinTransactionUSD      bigquery.NullFloat64 `bigquery:"min_transaction_usd" json:"min_transaction_usd"`
	MaxTransactionUSD      bigquery.NullFloat64 `bigquery:"max_transaction_usd" json:"max_transaction_usd"`

	UniqueUsers        int64 `bigquery:"unique_users" json:"unique_users"`
	UniqueDestinations int64 `bigquery:"unique_destinations" json:"unique_destinations"`

	GeneratedAt time.Time `bigquery:"_generated_at" json:"_generated_at"`
}

// GoldDestinationRow is the performance summary of a single destination,
// including destinations with no transaction history.
type GoldDestinationRow struct {
	DestinationID   int64                `bigquery:"destination_id" json:"destination_id"`
	DestinationName bigquery.NullString  `bigquery:"destination_name" json:"destination_name"`
	Latitude        bigquery.NullFloat64 `bigquery:"latitude" json:"latitude"`
	Longitude       bigquery.NullFloat64 `bigquery:"longitude" json:"longitude"`
	Hemisphere      bigquery.NullString  `bigquery:"hemisphere" json:"hemisphere"`

	TotalViews    int64 `bigquery:"total_views" json:"total_views"`
	TotalClicks   int64 `bigquery:"total_clicks" json:"total_clicks"`
	TotalBookings int64 `bigquery:"total_bookings" json:"total_bookings"`

	ClickRatePct   bigquery.NullFloat64 `bigquery:"click_rate_pct" json:"click_rate_pct"`
	BookingRatePct bigquery.NullFloat64 `bigquery:"booking_rate_pct" json:"booking_rate_pct"`

	TotalRevenueUSD    float64              `bigquery:"total_revenue_usd" json:"total_revenue_usd"`
	AvgBookingValueUSD bigquery.NullFloat64 `bigquery:"avg_booking_value_usd" json:"avg_booking_value_usd"`

	UniqueVisitors int64 `bigquery:"unique_visitors" json:"unique_visitors"`
	UniqueBuyers   int64 `bigquery:"unique_buyers" json:"unique_buyers"`

	FirstTransaction bigquery.NullTimestamp `bigquery:"first_transaction" json:"first_transaction"`
	LastTransaction  bigquery.NullTimestamp `bigquery:"last_transaction" json:"last_transaction"`

	BookingRank int64 `bigquery:"booking_rank" json:"booking_rank"`
	RevenueRank int64 `bigquery:"revenue_rank" json:"revenue_rank"`

	GeneratedAt time.Time `bigquery:"_generated_at" json:"_generated_at"`
}

// GoldUserEngagementRow is the engagement summary of a single user, including
// users with no transaction history.
type GoldUserEngagementRow struct {
	UserID                   int64  `bigquery:"user_id" json:"user_id"`
	PurchaseFrequencySegment string `bigquery:"purchase_frequency_segment" json:"purchase_frequency_segment"`
	PriceSegment             string `bigquery:"price_segment" json:"price_segment"`

	HistoricalAvgPrice  float64              `bigquery:"historical_avg_price" json:"historical_avg_price"`
	HistoricalPurchases int64                `bigquery:"historical_purchases" json:"historical_purchases"`
	UserLatitude        bigquery.NullFloat64 `bigquery:"user_latitude" json:"user_latitude"`
	UserLongitude       bigquery.NullFloat64 `bigquery:"user_longitude" json:"user_longitude"`

	TotalInteractions int64 `bigquery:"total_interactions" json:"total_interactions"`
	TotalClicks       int64 `bigquery:"total_clicks" json:"total_clicks"`
	TotalPurchases    int64 `bigquery:"total_purchases" json:"total_purchases"`

	ConversionRatePct bigquery.NullFloat64 `bigquery:"conversion_rate_pct" json:"conversion_rate_pct"`

	TotalSpendUSD  float64              `bigquery:"total_spend_usd" json:"total_spend_usd"`
	AvgPurchaseUSD bigquery.NullFloat64 `bigquery:"avg_purchase_usd" json:"avg_purchase_usd"`

	DestinationsViewed int64 `bigquery:"destinations_viewed" json:"destinations_viewed"`
	DestinationsBooked int64 `bigquery:"destinations_booked" json:"destinations_booked"`

	FirstActivity  bigquery.NullTimestamp `bigquery:"first_activity" json:"first_activity"`
	LastActivity   bigquery.NullTimestamp `bigquery:"last_activity" json:"last_activity"`
	EngagementDays bigquery.NullInt64     `bigquery:"engagement_days" json:"engagement_days"`

	CustomerTier string `bigquery:"customer_tier" json:"customer_tier"`

	GeneratedAt time.Time `bigquery:"_generated_at" json:"_generated_at"`
}

// GoldMonthlySummaryRow is one calendar month of executive metrics with the
// prior month's revenue carried alongside.
type GoldMonthlySummaryRow struct {
	TransactionYear  int64 `bigquery:"transaction_year" json:"transaction_year"`
	TransactionMonth int64 `bigquery:"transaction_month" json:"transaction_month"`

	TotalTransactions int64 `bigquery:"total_transactions" json:"total_transactions"`
	TotalBookings     int64 `bigquery:"total_bookings" json:"total_bookings"`

	MonthlyRevenueUSD  float64              `bigquery:"monthly_revenue_usd" json:"monthly_revenue_usd"`
	AvgBookingValueUSD bigquery.NullFloat64 `bigquery:"avg_booking_value_usd" json:"avg_booking_value_usd"`

	ActiveUsers          int64 `bigquery:"active_users" json:"active_users"`
	DestinationsInDemand int64 `bigquery:"destinations_in_demand" json:"destinations_in_demand"`

	MonthlyConversionPct bigquery.NullFloat64 `bigquery:"monthly_conversion_pct" json:"monthly_conversion_pct"`
	PrevMonthRevenue     bigquery.NullFloat64 `bigquery:"prev_month_revenue" json:"prev_month_revenue"`

	GeneratedAt time.Time `bigquery:"_generated_at" json:"_generated_at"`
}

// ReplaceGoldDailyRevenue replaces the daily revenue metrics table contents.
func (c *Client) ReplaceGoldDailyRevenue(ctx context.Context, rows []GoldDailyRevenueRow) error {
	return replaceRows(ctx, c, GoldDailyRevenueTable, rows)
}

// ReplaceGoldDestinationPerformance replaces the destination performance table contents.
func (c *Client) ReplaceGoldDestinationPerformance(ctx context.Context, rows []GoldDestinationRow) error {
	return replaceRows(ctx, c, GoldDestinationPerformanceTable, rows)
}

// ReplaceGoldUserEngagement replaces the user engagement table contents.
func (c *Client) ReplaceGoldUserEngagement(ctx context.Context, rows []GoldUserEngagementRow) error {
	return replaceRows(ctx, c, GoldUserEngagementTable, rows)
}

// ReplaceGoldMonthlySummary replaces the monthly summary table contents.
func (c *Client) ReplaceGoldMonthlySummary(ctx context.Context, rows []GoldMonthlySummaryRow) error {
	return replaceRows(ctx, c, GoldMonthlySummaryTable, rows)
}
