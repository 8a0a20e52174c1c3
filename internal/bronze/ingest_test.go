package bronze

import (
	"testing"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/henrykw/travel-medallion/internal/warehouse"
)

func nullInt(v int64) bigquery.NullInt64 {
	return bigquery.NullInt64{Int64: v, Valid: true}
}

func nullTS(t time.Time) bigquery.NullTimestamp {
	return bigquery.NullTimestamp{Timestamp: t, Valid: true}
}

func TestFingerprint(t *testing.T) {
	ts := time.Date(2023, 6, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		row  warehouse.RawPurchaseRow
		want string
	}{
		{
			name: "all key fields present",
			row: warehouse.RawPurchaseRow{
				ID:            nullInt(1),
				TS:            nullTS(ts),
				UserID:        nullInt(42),
				DestinationID: nullInt(7),
			},
			want: "9e23d6976d04518059ad02b1f27c4f7a",
		},
		{
			name: "null timestamp is skipped by the join",
			row: warehouse.RawPurchaseRow{
				ID:            nullInt(1),
				UserID:        nullInt(42),
				DestinationID: nullInt(7),
			},
			want: "46d6f42818ec6c7edaf90dd05ea6bbab",
		},
		{
			name: "all key fields null",
			row:  warehouse.RawPurchaseRow{},
			want: "d41d8cd98f00b204e9800998ecf8427e",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fingerprint(tt.row)
			if got != tt.want {
				t.Errorf("Fingerprint() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	row := warehouse.RawPurchaseRow{
		ID:            nullInt(99),
		TS:            nullTS(time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)),
		UserID:        nullInt(5),
		DestinationID: nullInt(11),
	}

	first := Fingerprint(row)
	for i := 0; i < 10; i++ {
		if got := Fingerprint(row); got != first {
			t.Fatalf("Fingerprint not deterministic: %q != %q", got, first)
		}
	}
}

func TestFingerprint_TimezoneNormalized(t *testing.T) {
	utc := time.Date(2023, 6, 15, 14, 30, 0, 0, time.UTC)
	offset := utc.In(time.FixedZone("UTC+2", 2*3600))

	a := Fingerprint(warehouse.RawPurchaseRow{ID: nullInt(1), TS: nullTS(utc)})
	b := Fingerprint(warehouse.RawPurchaseRow{ID: nullInt(1), TS: nullTS(offset)})
	if a != b {
		t.Errorf("Fingerprint differs across zones for the same instant: %q != %q", a, b)
	}
}

func TestIngestPurchases(t *testing.T) {
	ingestedAt := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	raw := []warehouse.RawPurchaseRow{
		{
			ID:            nullInt(1),
			UserID:        nullInt(10),
			DestinationID: nullInt(20),
			Price:         bigquery.NullFloat64{Float64: 129.99, Valid: true},
		},
		{
			// Rows with missing keys are still ingested verbatim.
			Price: bigquery.NullFloat64{Float64: -5, Valid: true},
		},
	}

	rows := IngestPurchases(raw, ingestedAt, "dbdemos_fs_travel.travel_purchase")

	if len(rows) != len(raw) {
		t.Fatalf("got %d rows, want %d", len(rows), len(raw))
	}
	for i, row := range rows {
		if !row.IngestedAt.Equal(ingestedAt) {
			t.Errorf("row %d: IngestedAt = %v, want %v", i, row.IngestedAt, ingestedAt)
		}
		if row.SourceTable != "dbdemos_fs_travel.travel_purchase" {
			t.Errorf("row %d: SourceTable = %q", i, row.SourceTable)
		}
		if row.RowHash == "" {
			t.Errorf("row %d: RowHash is empty", i)
		}
	}
	if rows[0].Price != raw[0].Price {
		t.Errorf("price not passed through: got %v, want %v", rows[0].Price, raw[0].Price)
	}
	if rows[1].Price.Float64 != -5 {
		t.Errorf("invalid price must pass through unchanged at bronze, got %v", rows[1].Price)
	}
}

func TestIngestUsers(t *testing.T) {
	ingestedAt := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	raw := []warehouse.RawUserRow{
		{UserID: nullInt(7), MeanPrice7D: bigquery.NullFloat64{Float64: 210.5, Valid: true}},
	}

	rows := IngestUsers(raw, ingestedAt, "dbdemos_fs_travel.user_features")

	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].UserID != raw[0].UserID {
		t.Errorf("UserID = %v, want %v", rows[0].UserID, raw[0].UserID)
	}
	if rows[0].SourceTable != "dbdemos_fs_travel.user_features" {
		t.Errorf("SourceTable = %q", rows[0].SourceTable)
	}
}

func TestIngestDestinations(t *testing.T) {
	ingestedAt := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	raw := []warehouse.RawDestinationRow{
		{
			DestinationID: nullInt(3),
			Name:          bigquery.NullString{StringVal: "  paris  ", Valid: true},
			Latitude:      bigquery.NullFloat64{Float64: 48.8566, Valid: true},
		},
	}

	rows := IngestDestinations(raw, ingestedAt, "dbdemos_fs_travel.destination_location")

	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	// Bronze preserves the raw name; normalization happens in silver.
	if rows[0].DestinationName.StringVal != "  paris  " {
		t.Errorf("DestinationName = %q, want raw value", rows[0].DestinationName.StringVal)
	}
	if rows[0].DestLatitude != raw[0].Latitude {
		t.Errorf("DestLatitude = %v, want %v", rows[0].DestLatitude, raw[0].Latitude)
	}
}
