// Package forecast turns daily earnings and expense series into trend-aware
// projections with calibrated confidence. Every forecaster is a one-shot pure
// computation; insufficient or degenerate input yields ErrInsufficientData
// rather than a best-effort guess.
package forecast

import (
	"errors"
	"math"

	"github.com/gigwallet/insights/internal/utils"
)

// ErrInsufficientData is returned when a forecaster's minimum sample size is
// not met. Callers decide whether to surface it as "not enough data yet" or
// drop it silently.
var ErrInsufficientData = errors.New("insufficient data points")

// Minimum zero-filled day counts per forecaster.
const (
	MinEarningsDays = 14
	MinExpenseDays  = 7
	MinVelocityDays = 10
)

// Confidence blend weights: data volume, goodness of fit, consistency.
const (
	volumeWeight      = 0.40
	fitWeight         = 0.30
	consistencyWeight = 0.30
)

// maxDaysToTarget bounds the optional days-to-target projection; anything
// larger is noise, not a plan.
const maxDaysToTarget = 100000

// Trend classifies the direction a daily series is heading.
type Trend string

const (
	TrendAccelerating Trend = "accelerating"
	TrendDecelerating Trend = "decelerating"
	TrendSteady       Trend = "steady"
	TrendVolatile     Trend = "volatile"
	TrendInsufficient Trend = "insufficient"
)

// Confidence blends data volume, regression fit and series consistency into
// [0, 1]. The volume factor is log-scaled: roughly 0.3 at two weeks of data,
// 0.6 at a month, saturating at ninety days.
func Confidence(days int, rSquared, cv float64) float64 {
	if days <= 0 {
		return 0
	}
	volume := utils.Clamp01(math.Log(float64(days)/10) / math.Log(9))
	fit := utils.Clamp01(rSquared)
	consistency := utils.Clamp01(1 - cv)
	return utils.Clamp01(volumeWeight*volume + fitWeight*fit + consistencyWeight*consistency)
}

// classifyTrend applies the shared trend rules: high volatility first, then
// fit quality, then slope magnitude relative to the mean.
func classifyTrend(cv, rSquared, slope, mean float64) Trend {
	if cv > 1.0 {
		return TrendVolatile
	}
	if rSquared < 0.05 {
		if cv > 0.6 {
			return TrendVolatile
		}
		return TrendSteady
	}
	if utils.ApproxZero(mean) || math.Abs(slope)/math.Abs(mean) < 0.01 {
		return TrendSteady
	}
	if slope > 0 {
		return TrendAccelerating
	}
	return TrendDecelerating
}
