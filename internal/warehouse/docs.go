package warehouse

// TableDocs carries the documentation applied to a derived table after each
// replace: a table description, labels, and per-column descriptions.
type TableDocs struct {
	Description string
	Labels      map[string]string
	Columns     map[string]string
}

var tableDocs = map[string]TableDocs{
	BronzePurchasesTable: {
		Description: "Bronze layer: Raw travel purchase transactions - unmodified source data with ingestion metadata",
		Labels: map[string]string{
			"layer":        "bronze",
			"pipeline":     "medallion_travel_analytics",
			"source_table": SourcePurchasesTable,
		},
		Columns: map[string]string{
			"id":             "Unique transaction identifier (Primary Key)",
			"ts":             "Transaction timestamp",
			"user_id":        "User identifier (Foreign Key)",
			"destination_id": "Destination identifier (Foreign Key)",
			"purchased":      "Whether user completed the purchase",
			"price":          "Transaction price in USD",
			"_ingested_at":   "Timestamp when record was ingested",
			"_row_hash":      "MD5 hash for CDC",
		},
	},
	BronzeUsersTable: {
		Description: "Bronze layer: Raw user feature data - user attributes and behavior metrics",
		Labels: map[string]string{
			"layer":        "bronze",
			"pipeline":     "medallion_travel_analytics",
			"source_table": SourceUsersTable,
		},
		Columns: map[string]string{
			"user_id":           "Unique user identifier (Primary Key)",
			"mean_price_7d":     "Average price over last 7 days",
			"last_6m_purchases": "Purchases in last 6 months",
		},
	},
	BronzeDestinationsTable: {
		Description: "Bronze layer: Raw destination location data - travel destination reference data",
		Labels: map[string]string{
			"layer":        "bronze",
			"pipeline":     "medallion_travel_analytics",
			"source_table": SourceDestinationsTable,
		},
		Columns: map[string]string{
			"destination_id":   "Unique destination identifier (Primary Key)",
			"destination_name": "Destination name",
		},
	},
	SilverPurchasesTable: {
		Description: "Silver layer: Cleaned travel purchases with data quality rules applied",
		Labels: map[string]string{
			"layer":        "silver",
			"pipeline":     "medallion_travel_analytics",
			"data_quality": "validated",
		},
		Columns: map[string]string{
			"transaction_id": "Unique transaction ID (PK)",
			"user_id":        "User ID (FK to silver_users)",
			"destination_id": "Destination ID (FK to silver_destinations)",
			"price_usd":      "Validated price in USD",
			"_price_invalid": "DQ flag: invalid price",
			"day_type":       "weekend or weekday",
		},
	},
	SilverUsersTable: {
		Description: "Silver layer: Cleaned user data with segmentation",
		Labels: map[string]string{
			"layer":        "silver",
			"pipeline":     "medallion_travel_analytics",
			"data_quality": "validated",
		},
		Columns: map[string]string{
			"user_id":                    "Unique user ID (PK)",
			"purchase_frequency_segment": "User segment: high/medium/low",
			"price_segment":              "Price preference: premium/standard/budget",
		},
	},
	SilverDestinationsTable: {
		Description: "Silver layer: Cleaned destination reference data",
		Labels: map[string]string{
			"layer":        "silver",
			"pipeline":     "medallion_travel_analytics",
			"data_quality": "validated",
		},
		Columns: map[string]string{
			"destination_id":   "Unique destination ID (PK)",
			"destination_name": "Standardized name (Title Case)",
			"hemisphere":       "Northern or Southern",
		},
	},
	GoldDailyRevenueTable: {
		Description: "Gold layer: Daily revenue and transaction metrics",
		Labels: map[string]string{
			"layer":             "gold",
			"pipeline":          "medallion_travel_analytics",
			"business_domain":   "finance",
			"refresh_frequency": "daily",
		},
		Columns: map[string]string{
			"report_date":         "Report date (PK)",
			"conversion_rate_pct": "Purchase conversion rate",
			"total_revenue_usd":   "Total revenue in USD",
		},
	},
	GoldDestinationPerformanceTable: {
		Description: "Gold layer: Destination performance metrics",
		Labels: map[string]string{
			"layer":             "gold",
			"pipeline":          "medallion_travel_analytics",
			"business_domain":   "marketing",
			"refresh_frequency": "daily",
		},
		Columns: map[string]string{
			"destination_id": "Destination ID (PK)",
			"booking_rank":   "Rank by bookings (1=top)",
			"revenue_rank":   "Rank by revenue (1=top)",
		},
	},
	GoldUserEngagementTable: {
		Description: "Gold layer: User engagement and behavior metrics",
		Labels: map[string]string{
			"layer":             "gold",
			"pipeline":          "medallion_travel_analytics",
			"business_domain":   "customer",
			"refresh_frequency": "daily",
		},
		Columns: map[string]string{
			"user_id":       "User ID (PK)",
			"customer_tier": "Value tier: platinum/gold/silver/bronze",
		},
	},
	GoldMonthlySummaryTable: {
		Description: "Gold layer: Monthly executive summary",
		Labels: map[string]string{
			"layer":             "gold",
			"pipeline":          "medallion_travel_analytics",
			"business_domain":   "executive",
			"refresh_frequency": "monthly",
		},
	},
	AuditLogTable: {
		Description: "Data quality audit log - one row per check per run",
		Labels: map[string]string{
			"layer":    "audit",
			"pipeline": "medallion_travel_analytics",
		},
	},
}
