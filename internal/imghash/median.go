package imghash

import "sort"

// median returns the statistical median of values: the middle element of the
// sorted sequence for an odd count, the mean of the two middle elements for
// an even count. The even-count rule must stay exactly this; previously
// computed hashes were derived against it.
func median(values []float64) float64 {
	if len(values) == 0 {
		panic("imghash: median of empty sequence")
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}
