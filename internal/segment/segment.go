// Package segment maps continuous metrics to categorical labels via ordered
// inclusive lower bounds.
package segment

// Threshold pairs an inclusive lower bound with the label it grants.
type Threshold struct {
	Min   float64
	Label string
}

// Classify returns the label of the first threshold the metric meets or
// exceeds, or the default label when none match. Thresholds must be ordered
// by descending Min; ties at a bound resolve to the higher label.
func Classify(metric float64, thresholds []Threshold, defaultLabel string) string {
	for _, t := range thresholds {
		if metric >= t.Min {
			return t.Label
		}
	}
	return defaultLabel
}

var purchaseFrequencyThresholds = []Threshold{
	{Min: 10, Label: "high_frequency"},
	{Min: 3, Label: "medium_frequency"},
}

// PurchaseFrequency segments a user by purchases over the last six months.
func PurchaseFrequency(purchases int64) string {
	return Classify(float64(purchases), purchaseFrequencyThresholds, "low_frequency")
}

var priceThresholds = []Threshold{
	{Min: 500, Label: "premium"},
	{Min: 200, Label: "standard"},
}

// Price segments a user by their 7-day average purchase price.
func Price(avgPrice float64) string {
	return Classify(avgPrice, priceThresholds, "budget")
}

var customerTierThresholds = []Threshold{
	{Min: 5000, Label: "platinum"},
	{Min: 2000, Label: "gold"},
	{Min: 500, Label: "silver"},
}

// CustomerTier tiers a user by cumulative purchased spend.
func CustomerTier(totalSpend float64) string {
	return Classify(totalSpend, customerTierThresholds, "bronze")
}
