package gold

import (
	"testing"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/henrykw/travel-medallion/internal/warehouse"
)

func user(id int64) warehouse.SilverUserRow {
	return warehouse.SilverUserRow{
		UserID:                   id,
		PurchaseFrequencySegment: "low_frequency",
		PriceSegment:             "budget",
	}
}

func TestUserEngagement_Aggregates(t *testing.T) {
	ts := time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC)
	users := []warehouse.SilverUserRow{user(1)}
	purchases := []warehouse.SilverPurchaseRow{
		tx(1, 1, 10, ts, true, true, nullFloat(150)),
		tx(2, 1, 20, ts.AddDate(0, 0, 9), true, false, bigquery.NullFloat64{}),
		tx(3, 1, 10, ts.AddDate(0, 0, 30), false, true, nullFloat(250)),
	}

	rows := UserEngagement(users, purchases, time.Now())

	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	r := rows[0]
	if r.TotalInteractions != 3 || r.TotalClicks != 2 || r.TotalPurchases != 2 {
		t.Errorf("interactions/clicks/purchases = %d/%d/%d, want 3/2/2", r.TotalInteractions, r.TotalClicks, r.TotalPurchases)
	}
	if !r.ConversionRatePct.Valid || r.ConversionRatePct.Float64 != 66.67 {
		t.Errorf("conversion = %v, want 66.67", r.ConversionRatePct)
	}
	if r.TotalSpendUSD != 400 {
		t.Errorf("spend = %v, want 400", r.TotalSpendUSD)
	}
	if !r.AvgPurchaseUSD.Valid || r.AvgPurchaseUSD.Float64 != 200 {
		t.Errorf("avg purchase = %v, want 200", r.AvgPurchaseUSD)
	}
	if r.DestinationsViewed != 2 || r.DestinationsBooked != 1 {
		t.Errorf("viewed/booked = %d/%d, want 2/1", r.DestinationsViewed, r.DestinationsBooked)
	}
	if !r.EngagementDays.Valid || r.EngagementDays.Int64 != 30 {
		t.Errorf("engagement days = %v, want 30", r.EngagementDays)
	}
	if r.CustomerTier != "bronze" {
		t.Errorf("tier = %q, want bronze for 400 spend", r.CustomerTier)
	}
}

func TestUserEngagement_CustomerTiers(t *testing.T) {
	ts := time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		spend float64
		want  string
	}{
		{"platinum", 7500, "platinum"},
		{"platinum boundary", 5000, "platinum"},
		{"gold", 2500, "gold"},
		{"silver", 500, "silver"},
		{"bronze", 499.99, "bronze"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := []warehouse.SilverUserRow{user(1)}
			purchases := []warehouse.SilverPurchaseRow{
				tx(1, 1, 10, ts, true, true, nullFloat(tt.spend)),
			}
			rows := UserEngagement(users, purchases, time.Now())
			if got := rows[0].CustomerTier; got != tt.want {
				t.Errorf("tier for %v spend = %q, want %q", tt.spend, got, tt.want)
			}
		})
	}
}

func TestUserEngagement_ZeroHistory(t *testing.T) {
	// Users with no transactions keep their silver attributes and land in
	// the bronze tier with null rates.
	u := user(9)
	u.AvgPrice7Day = 120.5
	u.Purchases6Month = 4
	u.PriceSegment = "standard"

	rows := UserEngagement([]warehouse.SilverUserRow{u}, nil, time.Now())

	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	r := rows[0]
	if r.TotalInteractions != 0 || r.TotalSpendUSD != 0 {
		t.Errorf("interactions/spend = %d/%v, want 0/0", r.TotalInteractions, r.TotalSpendUSD)
	}
	if r.ConversionRatePct.Valid || r.AvgPurchaseUSD.Valid || r.EngagementDays.Valid {
		t.Errorf("derived metrics should be null with no history: %+v", r)
	}
	if r.CustomerTier != "bronze" {
		t.Errorf("tier = %q, want bronze", r.CustomerTier)
	}
	if r.HistoricalAvgPrice != 120.5 || r.HistoricalPurchases != 4 || r.PriceSegment != "standard" {
		t.Errorf("silver attributes not carried through: %+v", r)
	}
}

func TestUserEngagement_SortedByUserID(t *testing.T) {
	users := []warehouse.SilverUserRow{user(3), user(1), user(2)}

	rows := UserEngagement(users, nil, time.Now())

	for i, want := range []int64{1, 2, 3} {
		if rows[i].UserID != want {
			t.Errorf("rows[%d].UserID = %d, want %d", i, rows[i].UserID, want)
		}
	}
}
