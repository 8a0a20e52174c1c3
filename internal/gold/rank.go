package gold

import "sort"

// CompetitionRanks assigns standard competition ranking to values, highest
// first: equal values share a rank, and the next distinct value's rank
// reflects how many entries are ahead of it (1, 2, 2, 4).
func CompetitionRanks(values []float64) []int64 {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return values[idx[a]] > values[idx[b]]
	})

	ranks := make([]int64, len(values))
	var rank int64
	for pos, i := range idx {
		if pos == 0 || values[i] != values[idx[pos-1]] {
			rank = int64(pos + 1)
		}
		ranks[i] = rank
	}
	return ranks
}
