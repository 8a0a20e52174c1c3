package silver

import (
	"testing"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/henrykw/travel-medallion/internal/warehouse"
)

func nullStr(s string) bigquery.NullString {
	return bigquery.NullString{StringVal: s, Valid: true}
}

func TestCleanDestinations_HardFilter(t *testing.T) {
	raw := []warehouse.BronzeDestinationRow{
		{DestinationID: nullInt(1)},
		{DestinationName: nullStr("Orphan")}, // null destination_id excluded
	}

	rows := CleanDestinations(raw, time.Now())

	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
}

func TestCleanDestinations_NameNormalization(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "paris", "Paris"},
		{"uppercase", "NEW YORK", "New York"},
		{"surrounding whitespace", "  rio de janeiro  ", "Rio De Janeiro"},
		{"mixed case", "saN fraNCISco", "San Francisco"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := []warehouse.BronzeDestinationRow{{
				DestinationID:   nullInt(1),
				DestinationName: nullStr(tt.in),
			}}

			row := CleanDestinations(raw, time.Now())[0]

			if row.DestinationName.StringVal != tt.want {
				t.Errorf("name = %q, want %q", row.DestinationName.StringVal, tt.want)
			}
		})
	}
}

func TestCleanDestinations_NullNameStaysNull(t *testing.T) {
	raw := []warehouse.BronzeDestinationRow{{DestinationID: nullInt(1)}}

	row := CleanDestinations(raw, time.Now())[0]

	if row.DestinationName.Valid {
		t.Errorf("null name must stay null, got %q", row.DestinationName.StringVal)
	}
}

func TestCleanDestinations_Hemisphere(t *testing.T) {
	tests := []struct {
		name     string
		lat      bigquery.NullFloat64
		want     string
		wantNull bool
	}{
		{"northern", nullFloat(48.8566), "Northern", false},
		{"equator is northern", nullFloat(0), "Northern", false},
		{"southern", nullFloat(-33.8688), "Southern", false},
		{"null latitude gives null hemisphere", bigquery.NullFloat64{}, "", true},
		{"out-of-range latitude gives null hemisphere", nullFloat(100), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := []warehouse.BronzeDestinationRow{{
				DestinationID: nullInt(1),
				DestLatitude:  tt.lat,
			}}

			row := CleanDestinations(raw, time.Now())[0]

			if tt.wantNull {
				if row.Hemisphere.Valid {
					t.Errorf("hemisphere = %q, want null", row.Hemisphere.StringVal)
				}
				return
			}
			if !row.Hemisphere.Valid || row.Hemisphere.StringVal != tt.want {
				t.Errorf("hemisphere = %v, want %q", row.Hemisphere, tt.want)
			}
		})
	}
}

func TestCleanDestinations_CoordinateRounding(t *testing.T) {
	raw := []warehouse.BronzeDestinationRow{{
		DestinationID: nullInt(1),
		DestLatitude:  nullFloat(48.85661234),
		DestLongitude: nullFloat(2.35221789),
	}}

	row := CleanDestinations(raw, time.Now())[0]

	if row.Latitude.Float64 != 48.856612 {
		t.Errorf("latitude = %v, want 48.856612", row.Latitude.Float64)
	}
	if row.Longitude.Float64 != 2.352218 {
		t.Errorf("longitude = %v, want 2.352218", row.Longitude.Float64)
	}
}
