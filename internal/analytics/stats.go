package analytics

import (
	"math"
	"sort"

	"github.com/gigwallet/insights/internal/utils"
)

// ModifiedZScale converts a MAD-based deviation into a z-like score. It is
// the inverse of the 75th percentile of the standard normal and must be used
// everywhere MAD is turned into a score so that severities stay comparable
// across detectors.
const ModifiedZScale = 0.6745

// madFallbackScore is assigned when MAD collapses to zero (more than half of
// the values equal the median). Points off the median get +/-3.5, points on
// it get 0, instead of dividing by zero.
const madFallbackScore = 3.5

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the sample standard deviation (n-1 denominator). The sample
// convention is applied engine-wide. Returns 0 for fewer than two values.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	sumSq := 0.0
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(values)-1))
}

// Median returns the middle of the sorted values, averaging the two central
// elements for an even count. Returns 0 for an empty slice.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := sortedCopy(values)
	return medianSorted(sorted)
}

// Quartiles returns Tukey's hinges: the sorted values are split into a lower
// and an upper half, excluding the median element itself when the count is
// odd; Q1 and Q3 are the medians of those halves.
func Quartiles(values []float64) (q1, median, q3 float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}
	sorted := sortedCopy(values)
	n := len(sorted)
	median = medianSorted(sorted)
	if n == 1 {
		return sorted[0], median, sorted[0]
	}
	lower := sorted[:n/2]
	upper := sorted[(n+1)/2:]
	return medianSorted(lower), median, medianSorted(upper)
}

// MAD returns the median absolute deviation from the median, a robust
// counterpart to the standard deviation.
func MAD(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	med := Median(values)
	deviations := make([]float64, len(values))
	for i, v := range values {
		deviations[i] = math.Abs(v - med)
	}
	return Median(deviations)
}

// Percentile returns the p-th percentile (p in [0, 1]) using linear
// interpolation between bracketing sorted values (Excel PERCENTILE.INC /
// R type=7 semantics).
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := sortedCopy(values)
	if len(sorted) == 1 {
		return sorted[0]
	}
	p = utils.Clamp01(p)
	rank := p * float64(len(sorted)-1)
	lower := int(rank)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := rank - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// ModifiedZScores returns 0.6745*(x - median)/MAD for every element. When MAD
// collapses to zero the scores degrade to a binary assignment: 0 on the
// median, +/-3.5 off it.
func ModifiedZScores(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	med := Median(values)
	mad := MAD(values)

	scores := make([]float64, len(values))
	for i, v := range values {
		diff := v - med
		switch {
		case utils.ApproxZero(mad):
			if utils.ApproxZero(diff) {
				scores[i] = 0
			} else if diff > 0 {
				scores[i] = madFallbackScore
			} else {
				scores[i] = -madFallbackScore
			}
		default:
			scores[i] = ModifiedZScale * diff / mad
		}
	}
	return scores
}

// ModifiedZScoreAgainst scores a single value against a separate baseline's
// median and MAD, with the same zero-MAD fallback as ModifiedZScores.
func ModifiedZScoreAgainst(baseline []float64, v float64) float64 {
	if len(baseline) == 0 {
		return 0
	}
	med := Median(baseline)
	mad := MAD(baseline)
	diff := v - med
	if utils.ApproxZero(mad) {
		if utils.ApproxZero(diff) {
			return 0
		}
		if diff > 0 {
			return madFallbackScore
		}
		return -madFallbackScore
	}
	return ModifiedZScale * diff / mad
}

func sortedCopy(values []float64) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted
}

// medianSorted assumes its input is already sorted ascending.
func medianSorted(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
