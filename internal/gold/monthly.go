package gold

import (
	"sort"
	"time"

	"github.com/henrykw/travel-medallion/internal/warehouse"
)

type monthKey struct {
	year  int64
	month int64
}

type monthAcc struct {
	total        int64
	bookings     int64
	prices       priceStats
	users        map[int64]struct{}
	destinations map[int64]struct{}
}

// MonthlySummary aggregates cleaned purchases per calendar month, ordered by
// (year, month) ascending, and carries each month's predecessor revenue
// alongside. The earliest month has no prior value.
func MonthlySummary(purchases []warehouse.SilverPurchaseRow, generatedAt time.Time) []warehouse.GoldMonthlySummaryRow {
	groups := make(map[monthKey]*monthAcc)

	for _, p := range purchases {
		if !p.TransactionYear.Valid || !p.TransactionMonth.Valid {
			continue
		}
		key := monthKey{year: p.TransactionYear.Int64, month: p.TransactionMonth.Int64}
		acc, ok := groups[key]
		if !ok {
			acc = &monthAcc{
				users:        make(map[int64]struct{}),
				destinations: make(map[int64]struct{}),
			}
			groups[key] = acc
		}

		acc.total++
		if p.Purchased {
			acc.bookings++
			if p.PriceUSD.Valid {
				acc.prices.add(p.PriceUSD.Float64)
			}
		}
		acc.users[p.UserID] = struct{}{}
		acc.destinations[p.DestinationID] = struct{}{}
	}

	rows := make([]warehouse.GoldMonthlySummaryRow, 0, len(groups))
	for key, acc := range groups {
		rows = append(rows, warehouse.GoldMonthlySummaryRow{
			TransactionYear:      key.year,
			TransactionMonth:     key.month,
			TotalTransactions:    acc.total,
			TotalBookings:        acc.bookings,
			MonthlyRevenueUSD:    acc.prices.Revenue(),
			AvgBookingValueUSD:   acc.prices.Avg(),
			ActiveUsers:          int64(len(acc.users)),
			DestinationsInDemand: int64(len(acc.destinations)),
			MonthlyConversionPct: pct(acc.bookings, acc.total),
			GeneratedAt:          generatedAt,
		})
	}

	sort.Slice(rows, func(a, b int) bool {
		if rows[a].TransactionYear != rows[b].TransactionYear {
			return rows[a].TransactionYear < rows[b].TransactionYear
		}
		return rows[a].TransactionMonth < rows[b].TransactionMonth
	})

	for i := 1; i < len(rows); i++ {
		rows[i].PrevMonthRevenue = nullFloat64(rows[i-1].MonthlyRevenueUSD)
	}
	return rows
}
