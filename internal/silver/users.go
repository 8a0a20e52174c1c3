package silver

import (
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/henrykw/travel-medallion/internal/segment"
	"github.com/henrykw/travel-medallion/internal/warehouse"
)

// CleanUsers validates bronze user feature snapshots into silver rows.
// Missing behavior metrics default to zero; coordinates are validated
// independently per axis, unlike the purchase pairing rule.
func CleanUsers(raw []warehouse.BronzeUserRow, processedAt time.Time) []warehouse.SilverUserRow {
	rows := make([]warehouse.SilverUserRow, 0, len(raw))
	for _, u := range raw {
		if !u.UserID.Valid {
			continue
		}

		avgPrice := 0.0
		if u.MeanPrice7D.Valid {
			avgPrice = u.MeanPrice7D.Float64
		}
		purchases := int64(0)
		if u.Last6MPurchases.Valid {
			purchases = u.Last6MPurchases.Int64
		}

		rows = append(rows, warehouse.SilverUserRow{
			UserID:                   u.UserID.Int64,
			LastUpdatedAt:            u.TS,
			AvgPrice7Day:             round2(avgPrice),
			Purchases6Month:          purchases,
			UserLatitude:             cleanLatitude(u.UserLatitude),
			UserLongitude:            cleanLongitude(u.UserLongitude),
			PurchaseFrequencySegment: segment.PurchaseFrequency(purchases),
			PriceSegment:             segment.Price(avgPrice),
			IngestedAt:               u.IngestedAt,
			ProcessedAt:              processedAt,
		})
	}
	return rows
}

// cleanLatitude nulls an out-of-range or missing latitude, otherwise rounds
// it to six decimal places.
func cleanLatitude(lat bigquery.NullFloat64) bigquery.NullFloat64 {
	if !latitudeInRange(lat) {
		return bigquery.NullFloat64{}
	}
	return nullFloat64(round6(lat.Float64))
}

// cleanLongitude nulls an out-of-range or missing longitude, otherwise
// rounds it to six decimal places.
func cleanLongitude(lon bigquery.NullFloat64) bigquery.NullFloat64 {
	if !longitudeInRange(lon) {
		return bigquery.NullFloat64{}
	}
	return nullFloat64(round6(lon.Float64))
}
