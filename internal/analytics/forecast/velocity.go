package forecast

import (
	"fmt"
	"math"

	"github.com/gigwallet/insights/internal/analytics"
	"github.com/gigwallet/insights/internal/utils"
)

// maxVelocitySpan caps the EMA span used on each half of the series.
const maxVelocitySpan = 14

// IncomeVelocity compares the recent daily earning rate against the prior
// period's rate.
type IncomeVelocity struct {
	CurrentDailyRate float64
	PriorDailyRate   float64
	// Acceleration is the relative change between the two rates: 1.0 when
	// income appears from nothing, 0 when both rates are effectively zero.
	Acceleration float64
	// DaysToTarget is nil when no target was given, the current rate is not
	// positive, or the projection is absurdly far out.
	DaysToTarget *int
}

// ForecastVelocity splits the zero-filled daily series into halves and
// smooths each with an EMA to estimate the prior and current daily rates.
// A target above zero additionally yields the days needed to reach it at the
// current rate. Requires at least 10 days; otherwise ErrInsufficientData.
func ForecastVelocity(entries []analytics.EarningsEntry, target float64) (*IncomeVelocity, error) {
	daily := analytics.FillDays(analytics.EarningsDailyTotals(entries))
	if len(daily) < MinVelocityDays {
		return nil, fmt.Errorf("%w: need %d days, have %d", ErrInsufficientData, MinVelocityDays, len(daily))
	}

	values := daily.Values()
	half := len(values) / 2
	prior := values[:half]
	current := values[half:]

	priorRate := analytics.LastEMA(prior, minInt(len(prior), maxVelocitySpan))
	currentRate := analytics.LastEMA(current, minInt(len(current), maxVelocitySpan))

	velocity := &IncomeVelocity{
		CurrentDailyRate: currentRate,
		PriorDailyRate:   priorRate,
		Acceleration:     acceleration(currentRate, priorRate),
	}

	if target > 0 && currentRate > 0 {
		days := int(math.Ceil(target / currentRate))
		if days < maxDaysToTarget {
			velocity.DaysToTarget = &days
		}
	}

	return velocity, nil
}

func acceleration(current, prior float64) float64 {
	switch {
	case utils.ApproxZero(prior) && current > 0:
		return 1.0
	case utils.ApproxZero(prior):
		return 0
	default:
		return (current - prior) / math.Abs(prior)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
