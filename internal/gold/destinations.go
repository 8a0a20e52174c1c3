package gold

import (
	"sort"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/henrykw/travel-medallion/internal/warehouse"
)

// DestinationPerformance aggregates purchases per destination. The join is
// left-outer: destinations with no transaction history still appear with
// zero counts and null rates, and they participate in the rankings.
func DestinationPerformance(destinations []warehouse.SilverDestinationRow, purchases []warehouse.SilverPurchaseRow, generatedAt time.Time) []warehouse.GoldDestinationRow {
	byDest := make(map[int64][]warehouse.SilverPurchaseRow)
	for _, p := range purchases {
		byDest[p.DestinationID] = append(byDest[p.DestinationID], p)
	}

	rows := make([]warehouse.GoldDestinationRow, 0, len(destinations))
	for _, d := range destinations {
		txs := byDest[d.DestinationID]

		var clicks, bookings int64
		var prices priceStats
		visitors := make(map[int64]struct{})
		buyers := make(map[int64]struct{})
		var first, last bigquery.NullTimestamp

		for _, t := range txs {
			if t.Clicked {
				clicks++
			}
			if t.Purchased {
				bookings++
				buyers[t.UserID] = struct{}{}
				if t.PriceUSD.Valid {
					prices.add(t.PriceUSD.Float64)
				}
			}
			visitors[t.UserID] = struct{}{}
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

		views := int64(len(txs))
		rows = append(rows, warehouse.GoldDestinationRow{
			DestinationID:      d.DestinationID,
			DestinationName:    d.DestinationName,
			Latitude:           d.Latitude,
			Longitude:          d.Longitude,
			Hemisphere:         d.Hemisphere,
			TotalViews:         views,
			TotalClicks:        clicks,
			TotalBookings:      bookings,
			ClickRatePct:       pct(clicks, views),
			BookingRatePct:     pct(bookings, clicks),
			TotalRevenueUSD:    prices.Revenue(),
			AvgBookingValueUSD: prices.Avg(),
			UniqueVisitors:     int64(len(visitors)),
			UniqueBuyers:       int64(len(buyers)),
			FirstTransaction:   first,
			LastTransaction:    last,
			GeneratedAt:        generatedAt,
		})
	}

	bookingValues := make([]float64, len(rows))
	revenueValues := make([]float64, len(rows))
	for i, r := range rows {
		bookingValues[i] = float64(r.TotalBookings)
		revenueValues[i] = r.TotalRevenueUSD
	}
	bookingRanks := CompetitionRanks(bookingValues)
	revenueRanks := CompetitionRanks(revenueValues)
	for i := range rows {
		rows[i].BookingRank = bookingRanks[i]
		rows[i].RevenueRank = revenueRanks[i]
	}

	sort.Slice(rows, func(a, b int) bool {
		if rows[a].TotalBookings != rows[b].TotalBookings {
			return rows[a].TotalBookings > rows[b].TotalBookings
		}
		return rows[a].DestinationID < rows[b].DestinationID
	})
	return rows
}
