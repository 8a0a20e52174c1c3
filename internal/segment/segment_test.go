package segment

import "testing"

func TestClassify_BoundaryInclusive(t *testing.T) {
	thresholds := []Threshold{
		{Min: 10, Label: "high"},
		{Min: 3, Label: "medium"},
	}

	tests := []struct {
		metric float64
		want   string
	}{
		{15, "high"},
		{10, "high"}, // exact bound resolves to the higher label
		{9.99, "medium"},
		{3, "medium"},
		{2.99, "low"},
		{0, "low"},
		{-1, "low"},
	}

	for _, tt := range tests {
		if got := Classify(tt.metric, thresholds, "low"); got != tt.want {
			t.Errorf("Classify(%v) = %q, want %q", tt.metric, got, tt.want)
		}
	}
}

func TestPurchaseFrequency(t *testing.T) {
	tests := []struct {
		purchases int64
		want      string
	}{
		{15, "high_frequency"},
		{10, "high_frequency"},
		{9, "medium_frequency"},
		{5, "medium_frequency"},
		{3, "medium_frequency"},
		{2, "low_frequency"},
		{1, "low_frequency"},
		{0, "low_frequency"},
	}

	for _, tt := range tests {
		if got := PurchaseFrequency(tt.purchases); got != tt.want {
			t.Errorf("PurchaseFrequency(%d) = %q, want %q", tt.purchases, got, tt.want)
		}
	}
}

func TestPrice(t *testing.T) {
	tests := []struct {
		avgPrice float64
		want     string
	}{
		{750, "premium"},
		{500, "premium"},
		{499.99, "standard"},
		{350, "standard"},
		{200, "standard"},
		{199.99, "budget"},
		{99, "budget"},
		{0, "budget"},
	}

	for _, tt := range tests {
		if got := Price(tt.avgPrice); got != tt.want {
			t.Errorf("Price(%v) = %q, want %q", tt.avgPrice, got, tt.want)
		}
	}
}

func TestCustomerTier(t *testing.T) {
	tests := []struct {
		totalSpend float64
		want       string
	}{
		{7500, "platinum"},
		{5000, "platinum"},
		{4999.99, "gold"},
		{2000, "gold"},
		{1999.99, "silver"},
		{500, "silver"},
		{499.99, "bronze"},
		{0, "bronze"},
	}

	for _, tt := range tests {
		if got := CustomerTier(tt.totalSpend); got != tt.want {
			t.Errorf("CustomerTier(%v) = %q, want %q", tt.totalSpend, got, tt.want)
		}
	}
}
