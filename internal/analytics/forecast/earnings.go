package forecast

import (
	"fmt"
	"time"

	"github.com/gigwallet/insights/internal/analytics"
	"github.com/gigwallet/insights/internal/utils"
)

// emaSpanEarnings is the smoothing span for the recency-biased daily rate.
const emaSpanEarnings = 7

// EarningsForecast projects earnings over the next week and month.
type EarningsForecast struct {
	PredictedNextWeek  float64
	PredictedNextMonth float64
	Confidence         float64
	Trend              Trend
	SeasonalAdjustment float64
	ForecastBasis      int // number of zero-filled days the forecast rests on
}

// ForecastEarnings builds a contiguous zero-filled daily series, fits an OLS
// trend over the day index, blends it with a 7-day EMA weighted by the fit's
// R-squared, and applies day-of-week seasonal factors to each projected day.
// Requires at least 14 days between the earliest and latest earning;
// otherwise ErrInsufficientData.
func ForecastEarnings(entries []analytics.EarningsEntry) (*EarningsForecast, error) {
	daily := analytics.FillDays(analytics.EarningsDailyTotals(entries))
	if len(daily) < MinEarningsDays {
		return nil, fmt.Errorf("%w: need %d days, have %d", ErrInsufficientData, MinEarningsDays, len(daily))
	}

	values := daily.Values()
	n := len(values)

	reg, regOK := analytics.LinearRegression(analytics.IndexSeries(n), values)
	weight := 0.0
	if regOK {
		weight = utils.Clamp01(reg.RSquared)
	}
	emaRate := analytics.LastEMA(values, emaSpanEarnings)
	seasonal := seasonalFactors(daily)

	lastDay := daily[n-1].Day
	var week, month, appliedFactors float64
	for i := 1; i <= 30; i++ {
		day := lastDay.AddDate(0, 0, i)
		regValue := reg.Intercept + reg.Slope*float64(n-1+i)
		blended := weight*regValue + (1-weight)*emaRate
		factor := seasonal[day.Weekday()]
		predicted := utils.NonNegative(blended * factor)

		month += predicted
		if i <= 7 {
			week += predicted
			appliedFactors += factor
		}
	}

	cv := daily.CV()
	rSquared := 0.0
	if regOK {
		rSquared = reg.RSquared
	}

	return &EarningsForecast{
		PredictedNextWeek:  week,
		PredictedNextMonth: month,
		Confidence:         Confidence(n, rSquared, cv),
		Trend:              classifyTrend(cv, rSquared, reg.Slope, daily.Mean()),
		SeasonalAdjustment: appliedFactors / 7,
		ForecastBasis:      n,
	}, nil
}

// seasonalFactors computes mean(weekday)/mean(all) for each day of the week.
// With a degenerate overall mean, or a weekday absent from the series, the
// factor falls back to 1 (no adjustment).
func seasonalFactors(daily analytics.DailySeries) map[time.Weekday]float64 {
	factors := map[time.Weekday]float64{
		time.Sunday: 1, time.Monday: 1, time.Tuesday: 1, time.Wednesday: 1,
		time.Thursday: 1, time.Friday: 1, time.Saturday: 1,
	}
	overall := daily.Mean()
	if utils.ApproxZero(overall) {
		return factors
	}

	sums := make(map[time.Weekday]float64)
	counts := make(map[time.Weekday]int)
	for _, p := range daily {
		wd := p.Day.Weekday()
		sums[wd] += p.Value
		counts[wd]++
	}
	for wd, count := range counts {
		if count > 0 {
			factors[wd] = (sums[wd] / float64(count)) / overall
		}
	}
	return factors
}
