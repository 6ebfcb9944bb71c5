// Package stats implements the order statistics used by the metrics aggregator.
package stats

import "sort"

// MinQuantileSample is the smallest sample for which P85 interpolates.
const MinQuantileSample = 100

// Median returns the median of values, averaging the two middle elements for
// even-sized samples. It returns 0 for an empty sample.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := sortedCopy(values)
	mid := n / 2
	if n%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// Max returns the largest value, or 0 for an empty sample.
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Quantile returns the i-th of n-1 cut points dividing the sample into n
// equal-probability buckets, using exclusive linear interpolation over
// positions (len+1)*i/n. Samples with fewer than two points return the single
// value (or 0 when empty).
func Quantile(values []float64, i, n int) float64 {
	size := len(values)
	switch {
	case size == 0:
		return 0
	case size == 1:
		return values[0]
	}

	sorted := sortedCopy(values)
	m := size + 1
	j := i * m / n
	if j < 1 {
		j = 1
	} else if j > size-1 {
		j = size - 1
	}
	delta := i*m - j*n
	return (sorted[j-1]*float64(n-delta) + sorted[j]*float64(delta)) / float64(n)
}

// P85 returns the 85th percentile for samples of at least MinQuantileSample
// points and the sample maximum otherwise.
func P85(values []float64) float64 {
	if len(values) < MinQuantileSample {
		return Max(values)
	}
	return Quantile(values, 85, 100)
}

func sortedCopy(values []float64) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted
}
