package gold

import (
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"

	"github.com/henrykw/travel-medallion/internal/warehouse"
)

func nullFloat(v float64) bigquery.NullFloat64 {
	return bigquery.NullFloat64{Float64: v, Valid: true}
}

func nullInt64(v int64) bigquery.NullInt64 {
	return bigquery.NullInt64{Int64: v, Valid: true}
}

func nullStr(s string) bigquery.NullString {
	return bigquery.NullString{StringVal: s, Valid: true}
}

func nullTS(t time.Time) bigquery.NullTimestamp {
	return bigquery.NullTimestamp{Timestamp: t, Valid: true}
}

// tx builds a cleaned purchase on the given day with calendar fields filled
// the way the silver stage would.
func tx(id, userID, destID int64, ts time.Time, clicked, purchased bool, price bigquery.NullFloat64) warehouse.SilverPurchaseRow {
	dayType := "weekday"
	if wd := ts.Weekday(); wd == time.Saturday || wd == time.Sunday {
		dayType = "weekend"
	}
	return warehouse.SilverPurchaseRow{
		TransactionID:    id,
		TransactionTS:    nullTS(ts),
		UserID:           userID,
		DestinationID:    destID,
		Clicked:          clicked,
		Purchased:        purchased,
		PriceUSD:         price,
		PriceInvalid:     !price.Valid,
		TransactionYear:  nullInt64(int64(ts.Year())),
		TransactionMonth: nullInt64(int64(ts.Month())),
		DayType:          nullStr(dayType),
	}
}

func TestDailyRevenue_Grouping(t *testing.T) {
	day := time.Date(2023, 6, 15, 10, 0, 0, 0, time.UTC) // Thursday
	generatedAt := time.Now().UTC()

	purchases := []warehouse.SilverPurchaseRow{
		tx(1, 1, 1, day, true, true, nullFloat(100)),
		tx(2, 2, 1, day.Add(2*time.Hour), true, false, bigquery.NullFloat64{}),
		tx(3, 3, 2, day.Add(4*time.Hour), false, false, bigquery.NullFloat64{}),
		tx(4, 1, 2, day.AddDate(0, 0, 1), true, true, nullFloat(250.505)),
	}

	rows := DailyRevenue(purchases, generatedAt)

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 report dates", len(rows))
	}

	first := rows[0]
	if first.ReportDate != civil.DateOf(day) {
		t.Errorf("report date = %v, want %v", first.ReportDate, civil.DateOf(day))
	}
	if first.TotalTransactions != 3 {
		t.Errorf("total transactions = %d, want 3", first.TotalTransactions)
	}
	if first.TotalClicks != 2 {
		t.Errorf("total clicks = %d, want 2", first.TotalClicks)
	}
	if first.TotalPurchases != 1 {
		t.Errorf("total purchases = %d, want 1", first.TotalPurchases)
	}
	if first.TotalRevenueUSD != 100 {
		t.Errorf("revenue = %v, want 100", first.TotalRevenueUSD)
	}
	if first.UniqueUsers != 3 || first.UniqueDestinations != 2 {
		t.Errorf("unique users/destinations = %d/%d, want 3/2", first.UniqueUsers, first.UniqueDestinations)
	}
	if !first.GeneratedAt.Equal(generatedAt) {
		t.Errorf("generated at = %v, want %v", first.GeneratedAt, generatedAt)
	}

	second := rows[1]
	if second.TotalRevenueUSD != 250.51 {
		t.Errorf("second day revenue = %v, want 250.51 (rounded)", second.TotalRevenueUSD)
	}
}

func TestDailyRevenue_ConversionRates(t *testing.T) {
	day := time.Date(2023, 6, 15, 10, 0, 0, 0, time.UTC)

	t.Run("25 of 100", func(t *testing.T) {
		var purchases []warehouse.SilverPurchaseRow
		for i := int64(0); i < 100; i++ {
			purchases = append(purchases, tx(i, i, 1, day, false, i < 25, nullFloat(10)))
		}
		rows := DailyRevenue(purchases, time.Now())
		if got := rows[0].ConversionRatePct; !got.Valid || got.Float64 != 25.0 {
			t.Errorf("conversion rate = %v, want 25.0", got)
		}
	})

	t.Run("all purchased", func(t *testing.T) {
		var purchases []warehouse.SilverPurchaseRow
		for i := int64(0); i < 50; i++ {
			purchases = append(purchases, tx(i, i, 1, day, true, true, nullFloat(10)))
		}
		rows := DailyRevenue(purchases, time.Now())
		if got := rows[0].ConversionRatePct; !got.Valid || got.Float64 != 100.0 {
			t.Errorf("conversion rate = %v, want 100.0", got)
		}
	})

	t.Run("no clicks gives null click-to-purchase rate", func(t *testing.T) {
		purchases := []warehouse.SilverPurchaseRow{
			tx(1, 1, 1, day, false, false, bigquery.NullFloat64{}),
		}
		rows := DailyRevenue(purchases, time.Now())
		if rows[0].ClickToPurchaseRatePct.Valid {
			t.Errorf("click-to-purchase = %v, want null on zero clicks", rows[0].ClickToPurchaseRatePct)
		}
	})
}

func TestDailyRevenue_InvalidPriceCountedNotSummed(t *testing.T) {
	// A purchase whose price failed validation still counts as a transaction
	// and a purchase, but contributes nothing to revenue.
	day := time.Date(2023, 6, 15, 10, 0, 0, 0, time.UTC)
	purchases := []warehouse.SilverPurchaseRow{
		tx(1, 1, 1, day, true, true, bigquery.NullFloat64{}), // price was -50 upstream
		tx(2, 2, 1, day, true, true, nullFloat(100)),
	}

	rows := DailyRevenue(purchases, time.Now())

	row := rows[0]
	if row.TotalTransactions != 2 {
		t.Errorf("total transactions = %d, want 2", row.TotalTransactions)
	}
	if row.TotalPurchases != 2 {
		t.Errorf("total purchases = %d, want 2", row.TotalPurchases)
	}
	if row.TotalRevenueUSD != 100 {
		t.Errorf("revenue = %v, want 100 (null price excluded)", row.TotalRevenueUSD)
	}
	if !row.AvgTransactionValueUSD.Valid || row.AvgTransactionValueUSD.Float64 != 100 {
		t.Errorf("avg = %v, want 100 over priced purchases only", row.AvgTransactionValueUSD)
	}
}

func TestDailyRevenue_WeekendSplit(t *testing.T) {
	saturday := time.Date(2023, 6, 17, 12, 0, 0, 0, time.UTC)
	purchases := []warehouse.SilverPurchaseRow{
		tx(1, 1, 1, saturday, true, true, nullFloat(50)),
	}

	rows := DailyRevenue(purchases, time.Now())

	if rows[0].DayType != "weekend" {
		t.Errorf("day type = %q, want weekend", rows[0].DayType)
	}
}

func TestDailyRevenue_SkipsUndatedTransactions(t *testing.T) {
	undated := warehouse.SilverPurchaseRow{TransactionID: 1, UserID: 1, DestinationID: 1}

	rows := DailyRevenue([]warehouse.SilverPurchaseRow{undated}, time.Now())

	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0 for undated transactions", len(rows))
	}
}
