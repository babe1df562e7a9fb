package anomaly

import (
	"math"

	"github.com/gigwallet/insights/internal/analytics"
	"github.com/gigwallet/insights/internal/utils"
)

// DetectZScore flags values whose classical z-score exceeds cfg.Threshold in
// magnitude. The sign of the score decides spike versus drop. Requires at
// least cfg.MinSamples points and non-degenerate spread.
func DetectZScore(values []float64, cfg DetectorConfig) []Result {
	if len(values) < cfg.MinSamples {
		return nil
	}

	mean := analytics.Mean(values)
	sd := analytics.StdDev(values)
	if utils.ApproxZero(sd) {
		return nil
	}

	expected := Range{
		Low:  mean - cfg.Threshold*sd,
		High: mean + cfg.Threshold*sd,
	}

	var results []Result
	for i, v := range values {
		z := (v - mean) / sd
		if math.Abs(z) <= cfg.Threshold {
			continue
		}
		direction := DirectionSpike
		if z < 0 {
			direction = DirectionDrop
		}
		results = append(results, Result{
			Index:     i,
			Score:     z,
			Direction: direction,
			Expected:  expected,
		})
	}
	return results
}
