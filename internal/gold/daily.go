package gold

import (
	"sort"
	"time"

	"cloud.google.com/go/civil"

	"github.com/henrykw/travel-medallion/internal/warehouse"
)

type dailyKey struct {
	date    civil.Date
	dayType string
}

type dailyAcc struct {
	year         int64
	month        int64
	total        int64
	clicks       int64
	purchases    int64
	prices       priceStats
	users        map[int64]struct{}
	destinations map[int64]struct{}
}

// DailyRevenue aggregates cleaned purchases into one row per report date and
// day type. Transactions without a timestamp cannot be placed on the
// calendar and are left out of time-keyed aggregates.
func DailyRevenue(purchases []warehouse.SilverPurchaseRow, generatedAt time.Time) []warehouse.GoldDailyRevenueRow {
	groups := make(map[dailyKey]*dailyAcc)

	for _, p := range purchases {
		if !p.TransactionTS.Valid {
			continue
		}
		key := dailyKey{
			date:    civil.DateOf(p.TransactionTS.Timestamp.UTC()),
			dayType: p.DayType.StringVal,
		}
		acc, ok := groups[key]
		if !ok {
			acc = &dailyAcc{
				year:         p.TransactionYear.Int64,
				month:        p.TransactionMonth.Int64,
				users:        make(map[int64]struct{}),
				destinations: make(map[int64]struct{}),
			}
			groups[key] = acc
		}

		acc.total++
		if p.Clicked {
			acc.clicks++
		}
		if p.Purchased {
			acc.purchases++
			if p.PriceUSD.Valid {
				acc.prices.add(p.PriceUSD.Float64)
			}
		}
		acc.users[p.UserID] = struct{}{}
		acc.destinations[p.DestinationID] = struct{}{}
	}

	rows := make([]warehouse.GoldDailyRevenueRow, 0, len(groups))
	for key, acc := range groups {
		rows = append(rows, warehouse.GoldDailyRevenueRow{
			ReportDate:             key.date,
			TransactionYear:        acc.year,
			TransactionMonth:       acc.month,
			DayType:                key.dayType,
			TotalTransactions:      acc.total,
			TotalClicks:            acc.clicks,
			TotalPurchases:         acc.purchases,
			ConversionRatePct:      pct(acc.purchases, acc.total),
			ClickToPurchaseRatePct: pct(acc.purchases, acc.clicks),
			TotalRevenueUSD:        acc.prices.Revenue(),
			AvgTransactionValueUSD: acc.prices.Avg(),
			MinTransactionUSD:      acc.prices.Min(),
			MaxTransactionUSD:      acc.prices.Max(),
			UniqueUsers:            int64(len(acc.users)),
			UniqueDestinations:     int64(len(acc.destinations)),
			GeneratedAt:            generatedAt,
		})
	}

	sort.Slice(rows, func(a, b int) bool {
		if rows[a].ReportDate != rows[b].ReportDate {
			return rows[a].ReportDate.Before(rows[b].ReportDate)
		}
		return rows[a].DayType < rows[b].DayType
	})
	return rows
}
