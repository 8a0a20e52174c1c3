// Package gold derives the business-facing aggregate tables from the silver
// layer. Every transform is a pure function over silver rows; each run fully
// recomputes its output.
package gold

import (
	"math"

	"cloud.google.com/go/bigquery"
)

// pct returns numerator/denominator as a percentage rounded to two decimals.
// A zero denominator yields null, never NaN or an error.
func pct(numerator, denominator int64) bigquery.NullFloat64 {
	if denominator == 0 {
		return bigquery.NullFloat64{}
	}
	return nullFloat64(round2(float64(numerator) * 100.0 / float64(denominator)))
}

// priceStats accumulates revenue metrics over the purchased transactions of
// one grouping key. Only rows with purchased=true and a non-null validated
// price contribute.
type priceStats struct {
	sum   float64
	count int64
	min   float64
	max   float64
}

func (s *priceStats) add(price float64) {
	if s.count == 0 || price < s.min {
		s.min = price
	}
	if s.count == 0 || price > s.max {
		s.max = price
	}
	s.sum += price
	s.count++
}

// Revenue returns the total purchased revenue, rounded to cents.
func (s *priceStats) Revenue() float64 {
	return round2(s.sum)
}

// Avg returns the mean purchase value, or null when nothing was purchased.
func (s *priceStats) Avg() bigquery.NullFloat64 {
	if s.count == 0 {
		return bigquery.NullFloat64{}
	}
	return nullFloat64(round2(s.sum / float64(s.count)))
}

// Min returns the smallest purchase value, or null when nothing was purchased.
func (s *priceStats) Min() bigquery.NullFloat64 {
	if s.count == 0 {
		return bigquery.NullFloat64{}
	}
	return nullFloat64(s.min)
}

// Max returns the largest purchase value, or null when nothing was purchased.
func (s *priceStats) Max() bigquery.NullFloat64 {
	if s.count == 0 {
		return bigquery.NullFloat64{}
	}
	return nullFloat64(s.max)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func nullFloat64(v float64) bigquery.NullFloat64 {
	return bigquery.NullFloat64{Float64: v, Valid: true}
}
