package warehouse

import "testing"

func TestLayerOf(t *testing.T) {
	tests := []struct {
		table string
		want  string
	}{
		{BronzePurchasesTable, "bronze"},
		{SilverUsersTable, "silver"},
		{GoldMonthlySummaryTable, "gold"},
		{AuditLogTable, "audit"},
	}
	for _, tt := range tests {
		if got := LayerOf(tt.table); got != tt.want {
			t.Errorf("LayerOf(%q) = %q, want %q", tt.table, got, tt.want)
		}
	}
}

func TestTimestampColumn(t *testing.T) {
	tests := []struct {
		table string
		want  string
	}{
		{BronzeDestinationsTable, "_ingested_at"},
		{SilverPurchasesTable, "_processed_at"},
		{GoldDailyRevenueTable, "_generated_at"},
		{AuditLogTable, ""},
	}
	for _, tt := range tests {
		if got := TimestampColumn(tt.table); got != tt.want {
			t.Errorf("TimestampColumn(%q) = %q, want %q", tt.table, got, tt.want)
		}
	}
}

func TestDerivedTablesHaveTimestampColumns(t *testing.T) {
	for _, table := range DerivedTables {
		if TimestampColumn(table) == "" {
			t.Errorf("derived table %q has no generation timestamp column", table)
		}
	}
}
