package silver

import (
	"math"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/henrykw/travel-medallion/internal/warehouse"
)

// Price bounds for a plausible travel purchase. Values outside are nulled
// and flagged, not dropped.
const (
	MinPriceUSD = 0
	MaxPriceUSD = 50000
)

// Spark day-of-week numbering: 1=Sunday .. 7=Saturday.
const (
	dayOfWeekSunday   = 1
	dayOfWeekSaturday = 7
)

// CleanPurchases validates bronze purchase events into silver rows. Rows
// missing any identifier are excluded entirely; out-of-range values are
// nulled and flagged so the row survives with its defect recorded.
func CleanPurchases(raw []warehouse.BronzePurchaseRow, processedAt time.Time) []warehouse.SilverPurchaseRow {
	rows := make([]warehouse.SilverPurchaseRow, 0, len(raw))
	for _, p := range raw {
		if !p.ID.Valid || !p.UserID.Valid || !p.DestinationID.Valid {
			continue
		}

		row := warehouse.SilverPurchaseRow{
			TransactionID: p.ID.Int64,
			TransactionTS: p.TS,
			UserID:        p.UserID.Int64,
			DestinationID: p.DestinationID.Int64,
			Clicked:       p.Clicked.Valid && p.Clicked.Bool,
			Purchased:     p.Purchased.Valid && p.Purchased.Bool,
			BookingDate:   p.BookingDate,
			IngestedAt:    p.IngestedAt,
			ProcessedAt:   processedAt,
		}

		row.PriceUSD, row.PriceInvalid = CleanPrice(p.Price)
		row.UserLatitude, row.UserLongitude, row.LocationInvalid = cleanCoordinatePair(p.UserLatitude, p.UserLongitude)

		if p.TS.Valid {
			ts := p.TS.Timestamp.UTC()
			row.TransactionYear = nullInt64(int64(ts.Year()))
			row.TransactionMonth = nullInt64(int64(ts.Month()))
			dow := int64(ts.Weekday()) + 1
			row.TransactionDayOfWeek = nullInt64(dow)
			row.TransactionHour = nullInt64(int64(ts.Hour()))
			row.DayType = nullString(dayType(dow))
		}

		rows = append(rows, row)
	}
	return rows
}

// CleanPrice validates a raw price. Null, negative or implausibly large
// prices come back null with the invalid flag set; everything else is
// rounded to cents.
func CleanPrice(price bigquery.NullFloat64) (bigquery.NullFloat64, bool) {
	if !price.Valid || price.Float64 < MinPriceUSD || price.Float64 > MaxPriceUSD {
		return bigquery.NullFloat64{}, true
	}
	return bigquery.NullFloat64{Float64: round2(price.Float64), Valid: true}, false
}

// cleanCoordinatePair validates a latitude/longitude pair as a unit: if
// either component is null or out of range, both come back null and the
// location flag is set. A half-valid location is not a location.
func cleanCoordinatePair(lat, lon bigquery.NullFloat64) (bigquery.NullFloat64, bigquery.NullFloat64, bool) {
	if !latitudeInRange(lat) || !longitudeInRange(lon) {
		return bigquery.NullFloat64{}, bigquery.NullFloat64{}, true
	}
	return lat, lon, false
}

func latitudeInRange(lat bigquery.NullFloat64) bool {
	return lat.Valid && lat.Float64 >= -90 && lat.Float64 <= 90
}

func longitudeInRange(lon bigquery.NullFloat64) bool {
	return lon.Valid && lon.Float64 >= -180 && lon.Float64 <= 180
}

func dayType(dayOfWeek int64) string {
	if dayOfWeek == dayOfWeekSunday || dayOfWeek == dayOfWeekSaturday {
		return "weekend"
	}
	return "weekday"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

func nullInt64(v int64) bigquery.NullInt64 {
	return bigquery.NullInt64{Int64: v, Valid: true}
}

func nullString(v string) bigquery.NullString {
	return bigquery.NullString{StringVal: v, Valid: true}
}

func nullFloat64(v float64) bigquery.NullFloat64 {
	return bigquery.NullFloat64{Float64: v, Valid: true}
}
