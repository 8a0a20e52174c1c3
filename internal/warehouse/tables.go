package warehouse

import "strings"

// Source relation names, as provisioned in the source dataset.
const (
	SourcePurchasesTable    = "travel_purchase"
	SourceUsersTable        = "user_features"
	SourceDestinationsTable = "destination_location"
)

// Derived table names, written to the target dataset.
const (
	BronzePurchasesTable    = "bronze_travel_purchases"
	BronzeUsersTable        = "bronze_user_features"
	BronzeDestinationsTable = "bronze_destinations"

	SilverPurchasesTable    = "silver_travel_purchases"
	SilverUsersTable        = "silver_users"
	SilverDestinationsTable = "silver_destinations"

	GoldDailyRevenueTable           = "gold_daily_revenue_metrics"
	GoldDestinationPerformanceTable = "gold_destination_performance"
	GoldUserEngagementTable         = "gold_user_engagement"
	GoldMonthlySummaryTable         = "gold_monthly_summary"

	AuditLogTable = "dq_audit_log"
)

// DerivedTables lists every table the pipeline materializes, in dependency
// order. The quality auditor iterates this list for its per-table checks.
var DerivedTables = []string{
	BronzePurchasesTable,
	BronzeUsersTable,
	BronzeDestinationsTable,
	SilverPurchasesTable,
	SilverUsersTable,
	SilverDestinationsTable,
	GoldDailyRevenueTable,
	GoldDestinationPerformanceTable,
	GoldUserEngagementTable,
	GoldMonthlySummaryTable,
}

// TimestampColumn returns the generation-timestamp column a table carries,
// which the freshness check reads.
func TimestampColumn(table string) string {
	switch LayerOf(table) {
	case "bronze":
		return "_ingested_at"
	case "silver":
		return "_processed_at"
	case "gold":
		return "_generated_at"
	default:
		return ""
	}
}

// LayerOf returns the medallion layer a derived table belongs to.
func LayerOf(table string) string {
	switch {
	case strings.HasPrefix(table, "bronze_"):
		return "bronze"
	case strings.HasPrefix(table, "silver_"):
		return "silver"
	case strings.HasPrefix(table, "gold_"):
		return "gold"
	default:
		return "audit"
	}
}
