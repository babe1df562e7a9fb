package forecast

import (
	"fmt"
	"math"
	"sort"

	"github.com/gigwallet/insights/internal/analytics"
	"github.com/gigwallet/insights/internal/utils"
)

// emaSpanExpenses is the smoothing span for the daily burn rate.
const emaSpanExpenses = 14

// ExpenseForecast projects the next 30 days of spending.
type ExpenseForecast struct {
	PredictedMonthlyExpenses float64
	CategoryForecasts        []CategoryForecast
	BurnRatePerDay           float64
	// DaysUntilBudgetExhausted is nil when no budget was given or the burn
	// rate is degenerate.
	DaysUntilBudgetExhausted *int
}

// CategoryForecast is the per-category share of the monthly projection.
type CategoryForecast struct {
	Category         string
	PredictedMonthly float64
	Trend            Trend
}

// ForecastExpenses projects monthly spending from a zero-filled daily series:
// a 14-day EMA supplies the burn rate and an OLS fit, weighted by its
// R-squared, bends the 30-day projection toward the trend. A monthlyBudget
// above zero additionally yields an estimate of the days left before the
// budget runs out, measured against spend in the latest observed calendar
// month. Requires at least 7 days; otherwise ErrInsufficientData.
func ForecastExpenses(entries []analytics.ExpenseEntry, monthlyBudget float64) (*ExpenseForecast, error) {
	daily := analytics.FillDays(analytics.ExpenseDailyTotals(entries))
	if len(daily) < MinExpenseDays {
		return nil, fmt.Errorf("%w: need %d days, have %d", ErrInsufficientData, MinExpenseDays, len(daily))
	}

	values := daily.Values()
	n := len(values)
	burnRate := utils.NonNegative(analytics.LastEMA(values, emaSpanExpenses))
	monthly := blendedProjection(values, burnRate)

	forecast := &ExpenseForecast{
		PredictedMonthlyExpenses: monthly,
		CategoryForecasts:        categoryForecasts(entries),
		BurnRatePerDay:           burnRate,
	}

	if monthlyBudget > 0 && !utils.ApproxZero(burnRate) {
		lastDay := daily[n-1].Day
		spent := 0.0
		for _, e := range entries {
			if e.Date.Year() == lastDay.Year() && e.Date.Month() == lastDay.Month() {
				spent += e.Amount
			}
		}
		remaining := utils.NonNegative(monthlyBudget - spent)
		days := int(math.Floor(remaining / burnRate))
		forecast.DaysUntilBudgetExhausted = &days
	}

	return forecast, nil
}

// blendedProjection sums 30 future days of the regression/EMA blend, with the
// regression weighted by its R-squared.
func blendedProjection(values []float64, emaRate float64) float64 {
	n := len(values)
	reg, regOK := analytics.LinearRegression(analytics.IndexSeries(n), values)
	weight := 0.0
	if regOK {
		weight = utils.Clamp01(reg.RSquared)
	}

	total := 0.0
	for i := 1; i <= 30; i++ {
		regValue := reg.Intercept + reg.Slope*float64(n-1+i)
		total += utils.NonNegative(weight*regValue + (1-weight)*emaRate)
	}
	return total
}

// categoryForecasts projects each category independently over its own daily
// span. A category observed on fewer than two days cannot support a trend
// fit and falls back to mean-times-thirty with an insufficient marker.
func categoryForecasts(entries []analytics.ExpenseEntry) []CategoryForecast {
	byCategory := make(map[string][]analytics.ExpenseEntry)
	for _, e := range entries {
		byCategory[e.Category] = append(byCategory[e.Category], e)
	}

	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	forecasts := make([]CategoryForecast, 0, len(categories))
	for _, category := range categories {
		catEntries := byCategory[category]
		daily := analytics.FillDays(analytics.ExpenseDailyTotals(catEntries))

		if len(daily) < 2 {
			amounts := make([]float64, len(catEntries))
			for i, e := range catEntries {
				amounts[i] = e.Amount
			}
			forecasts = append(forecasts, CategoryForecast{
				Category:         category,
				PredictedMonthly: utils.NonNegative(analytics.Mean(amounts) * 30),
				Trend:            TrendInsufficient,
			})
			continue
		}

		values := daily.Values()
		emaRate := utils.NonNegative(analytics.LastEMA(values, emaSpanExpenses))
		reg, regOK := analytics.LinearRegression(analytics.IndexSeries(len(values)), values)
		rSquared := 0.0
		if regOK {
			rSquared = reg.RSquared
		}

		forecasts = append(forecasts, CategoryForecast{
			Category:         category,
			PredictedMonthly: blendedProjection(values, emaRate),
			Trend:            classifyTrend(daily.CV(), rSquared, reg.Slope, daily.Mean()),
		})
	}
	return forecasts
}
