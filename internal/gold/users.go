package gold

import (
	"sort"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"

	"github.com/henrykw/travel-medallion/internal/segment"
	"github.com/henrykw/travel-medallion/internal/warehouse"
)

// UserEngagement aggregates purchases per user and assigns the customer
// tier from cumulative purchased spend. The join is left-outer: users with
// no transaction history still appear with zero counts and the bronze tier.
func UserEngagement(users []warehouse.SilverUserRow, purchases []warehouse.SilverPurchaseRow, generatedAt time.Time) []warehouse.GoldUserEngagementRow {
	byUser := make(map[int64][]warehouse.SilverPurchaseRow)
	for _, p := range purchases {
		byUser[p.UserID] = append(byUser[p.UserID], p)
	}

	rows := make([]warehouse.GoldUserEngagementRow, 0, len(users))
	for _, u := range users {
		txs := byUser[u.UserID]

		var clicks, bought int64
		var prices priceStats
		viewed := make(map[int64]struct{})
		booked := make(map[int64]struct{})
		var first, last bigquery.NullTimestamp

		for _, t := range txs {
			if t.Clicked {
				clicks++
			}
			if t.Purchased {
				bought++
				booked[t.DestinationID] = struct{}{}
				if t.PriceUSD.Valid {
					prices.add(t.PriceUSD.Float64)
				}
			}
			viewed[t.DestinationID] = struct{}{}
			if t.TransactionTS.Valid {
				ts := t.TransactionTS.Timestamp
				if !first.Valid || ts.Before(first.Timestamp) {
					first = t.TransactionTS
				}
				if !last.Valid || ts.After(last.Timestamp) {
					last = t.TransactionTS
				}
			}
		}

		var engagementDays bigquery.NullInt64
		if first.Valid && last.Valid {
			days := civil.DateOf(last.Timestamp.UTC()).DaysSince(civil.DateOf(first.Timestamp.UTC()))
			engagementDays = bigquery.NullInt64{Int64: int64(days), Valid: true}
		}

		totalSpend := prices.Revenue()
		rows = append(rows, warehouse.GoldUserEngagementRow{
			UserID:                   u.UserID,
			PurchaseFrequencySegment: u.PurchaseFrequencySegment,
			PriceSegment:             u.PriceSegment,
			HistoricalAvgPrice:       u.AvgPrice7Day,
			HistoricalPurchases:      u.Purchases6Month,
			UserLatitude:             u.UserLatitude,
			UserLongitude:            u.UserLongitude,
			TotalInteractions:        int64(len(txs)),
			TotalClicks:              clicks,
			TotalPurchases:           bought,
			ConversionRatePct:        pct(bought, int64(len(txs))),
			TotalSpendUSD:            totalSpend,
			AvgPurchaseUSD:           prices.Avg(),
			DestinationsViewed:       int64(len(viewed)),
			DestinationsBooked:       int64(len(booked)),
			FirstActivity:            first,
			LastActivity:             last,
			EngagementDays:           engagementDays,
			CustomerTier:             segment.CustomerTier(totalSpend),
			GeneratedAt:              generatedAt,
		})
	}

	sort.Slice(rows, func(a, b int) bool {
		return rows[a].UserID < rows[b].UserID
	})
	return rows
}
