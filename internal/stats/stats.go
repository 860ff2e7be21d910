// Package stats provides small numeric helpers for cohort-relative scoring.
package stats

// Mode returns the most common value in values and the number of times it
// appears. Ties are broken toward the value that reaches the winning count
// first in slice order. Returns (0, 0) for an empty slice.
func Mode(values []int) (mode int, count int) {
	if len(values) == 0 {
		return 0, 0
	}

	counts := make(map[int]int, len(values))
	for _, v := range values {
		counts[v]++
		if counts[v] > count {
			mode = v
			count = counts[v]
		}
	}
	return mode, count
}

// ModeCoverage returns the mode of values together with the percentage of
// values (0-100, truncated) that share it. Returns (0, 0) for an empty slice.
func ModeCoverage(values []int) (mode int, coverage int) {
	mode, count := Mode(values)
	if len(values) == 0 {
		return 0, 0
	}
	return mode, count * 100 / len(values)
}

// Average returns the arithmetic mean of values, or 0 for an empty slice.
func Average(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// AverageFloat returns the arithmetic mean of values, or 0 for an empty slice.
func AverageFloat(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// PercentWhere returns matching as a percentage (0-100, truncated) of n,
// or 0 when n is 0.
func PercentWhere(n int, matching int) int {
	if n == 0 {
		return 0
	}
	return matching * 100 / n
}
