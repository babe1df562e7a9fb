package anomaly

import (
	"github.com/gigwallet/insights/internal/analytics"
)

// DetectIQR flags values outside the Tukey fences Q1 - k*IQR and Q3 + k*IQR.
// The score attached to each hit is the value's MAD-based modified z-score
// rather than its fence distance, so severity stays comparable with the
// z-score detector. Requires at least cfg.MinSamples points.
func DetectIQR(values []float64, cfg DetectorConfig) []Result {
	if len(values) < cfg.MinSamples {
		return nil
	}

	q1, _, q3 := analytics.Quartiles(values)
	iqr := q3 - q1
	lower := q1 - cfg.IQRMultiplier*iqr
	upper := q3 + cfg.IQRMultiplier*iqr
	expected := Range{Low: lower, High: upper}

	modZ := analytics.ModifiedZScores(values)

	var results []Result
	for i, v := range values {
		if v >= lower && v <= upper {
			continue
		}
		direction := DirectionSpike
		if v < lower {
			direction = DirectionDrop
		}
		results = append(results, Result{
			Index:     i,
			Score:     modZ[i],
			Direction: direction,
			Expected:  expected,
		})
	}
	return results
}
