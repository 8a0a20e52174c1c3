package gold

import (
	"reflect"
	"testing"
)

func TestCompetitionRanks(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   []int64
	}{
		{
			name:   "distinct values",
			values: []float64{10, 30, 20},
			want:   []int64{3, 1, 2},
		},
		{
			name:   "ties share a rank and the next rank skips",
			values: []float64{5, 3, 3, 1},
			want:   []int64{1, 2, 2, 4},
		},
		{
			name:   "all equal",
			values: []float64{7, 7, 7},
			want:   []int64{1, 1, 1},
		},
		{
			name:   "zero history entries rank last together",
			values: []float64{4, 0, 0},
			want:   []int64{1, 2, 2},
		},
		{
			name:   "single value",
			values: []float64{42},
			want:   []int64{1},
		},
		{
			name:   "empty",
			values: nil,
			want:   []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompetitionRanks(tt.values)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CompetitionRanks(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}
