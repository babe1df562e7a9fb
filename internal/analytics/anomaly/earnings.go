package anomaly

import (
	"fmt"
	"time"

	"github.com/gigwallet/insights/internal/analytics"
)

// MetricDailyEarnings names the daily-total earnings series.
const MetricDailyEarnings = "daily_earnings"

// MetricEarningGap names the inter-earning-day interval series.
const MetricEarningGap = "earning_gap_days"

// AnalyzeEarnings flags irregular daily earnings, unusually long gaps between
// earning days, and recent deviations from the weekday/weekend pattern.
// Requires at least 10 earning days; below that it returns nil.
func AnalyzeEarnings(entries []analytics.EarningsEntry) []Anomaly {
	cfg := DefaultConfig()
	daily := analytics.EarningsDailyTotals(entries)
	if len(daily) < cfg.MinSamples {
		return nil
	}

	var anomalies []Anomaly
	anomalies = append(anomalies, earningsLevelAnomalies(daily)...)
	anomalies = append(anomalies, earningsGapAnomalies(daily, cfg)...)
	anomalies = append(anomalies, scheduleDeviationAnomalies(daily)...)

	sortAnomalies(anomalies)
	return anomalies
}

// earningsLevelAnomalies applies modified z-scores to the daily totals and
// flags days beyond +/-1.5.
func earningsLevelAnomalies(daily analytics.DailySeries) []Anomaly {
	values := daily.Values()
	modZ := analytics.ModifiedZScores(values)
	expected := madExpectedRange(values, earningsFlagZ)

	var anomalies []Anomaly
	for i, z := range modZ {
		if z > earningsFlagZ {
			anomalies = append(anomalies, Anomaly{
				Type:           TypeEarningsSpike,
				Severity:       GradeSeverity(z),
				Metric:         MetricDailyEarnings,
				Observed:       values[i],
				Expected:       expected,
				ZScore:         z,
				Description:    fmt.Sprintf("Earnings of $%.2f on %s are well above your typical day", values[i], daily[i].Day.Format("Jan 2")),
				Recommendation: "Note what drove this day so you can repeat it",
				DetectedAt:     daily[i].Day,
			})
		} else if z < -earningsFlagZ {
			anomalies = append(anomalies, Anomaly{
				Type:           TypeEarningsDrop,
				Severity:       GradeSeverity(z),
				Metric:         MetricDailyEarnings,
				Observed:       values[i],
				Expected:       expected,
				ZScore:         z,
				Description:    fmt.Sprintf("Earnings of $%.2f on %s are well below your typical day", values[i], daily[i].Day.Format("Jan 2")),
				Recommendation: "Check whether demand dipped or you worked fewer hours",
				DetectedAt:     daily[i].Day,
			})
		}
	}
	return anomalies
}

// earningsGapAnomalies studies the intervals between consecutive earning
// days. Only unusually long gaps are flagged; short intervals are routine.
func earningsGapAnomalies(daily analytics.DailySeries, cfg DetectorConfig) []Anomaly {
	if len(daily) < 2 {
		return nil
	}
	gaps := make([]float64, 0, len(daily)-1)
	gapEnds := make([]time.Time, 0, len(daily)-1)
	for i := 1; i < len(daily); i++ {
		days := daily[i].Day.Sub(daily[i-1].Day).Hours() / 24
		gaps = append(gaps, days)
		gapEnds = append(gapEnds, daily[i].Day)
	}
	if len(gaps) < cfg.MinSamples {
		return nil
	}

	modZ := analytics.ModifiedZScores(gaps)
	expected := madExpectedRange(gaps, gapFlagZ)

	var anomalies []Anomaly
	for i, z := range modZ {
		if z <= gapFlagZ {
			continue
		}
		anomalies = append(anomalies, Anomaly{
			Type:           TypeIncomeGap,
			Severity:       GradeSeverity(z),
			Metric:         MetricEarningGap,
			Observed:       gaps[i],
			Expected:       expected,
			ZScore:         z,
			Description:    fmt.Sprintf("%.0f days without earnings before %s, longer than your usual break", gaps[i], gapEnds[i].Format("Jan 2")),
			Recommendation: "Long quiet stretches make income forecasts less reliable",
			DetectedAt:     gapEnds[i],
		})
	}
	return anomalies
}

// scheduleDeviationAnomalies splits the daily series into weekend and weekday
// segments and compares each segment's most recent points against the rest of
// that segment as a baseline. A segment needs a 10-point baseline plus the 3
// recent points before it is examined.
func scheduleDeviationAnomalies(daily analytics.DailySeries) []Anomaly {
	var weekday, weekend analytics.DailySeries
	for _, p := range daily {
		switch p.Day.Weekday() {
		case time.Saturday, time.Sunday:
			weekend = append(weekend, p)
		default:
			weekday = append(weekday, p)
		}
	}

	var anomalies []Anomaly
	anomalies = append(anomalies, segmentDeviations(weekday, "weekday_earnings")...)
	anomalies = append(anomalies, segmentDeviations(weekend, "weekend_earnings")...)
	return anomalies
}

func segmentDeviations(segment analytics.DailySeries, metric string) []Anomaly {
	baselineLen := len(segment) - scheduleRecentPoints
	if baselineLen < DefaultConfig().MinSamples {
		return nil
	}
	baseline := segment[:baselineLen].Values()
	expected := madExpectedRange(baseline, scheduleFlagZ)

	var anomalies []Anomaly
	for _, p := range segment[baselineLen:] {
		z := scoreAgainst(baseline, p.Value)
		if z > scheduleFlagZ {
			anomalies = append(anomalies, Anomaly{
				Type:           TypeScheduleDeviation,
				Severity:       GradeSeverity(z),
				Metric:         metric,
				Observed:       p.Value,
				Expected:       expected,
				ZScore:         z,
				Description:    fmt.Sprintf("Recent %s of $%.2f breaks your usual pattern for that part of the week", p.Day.Format("Monday"), p.Value),
				Recommendation: "Your schedule may be shifting; keep an eye on whether it sticks",
				DetectedAt:     p.Day,
			})
		} else if z < -scheduleFlagZ {
			anomalies = append(anomalies, Anomaly{
				Type:           TypeScheduleDeviation,
				Severity:       GradeSeverity(z),
				Metric:         metric,
				Observed:       p.Value,
				Expected:       expected,
				ZScore:         z,
				Description:    fmt.Sprintf("Recent %s of $%.2f is far below your usual pattern for that part of the week", p.Day.Format("Monday"), p.Value),
				Recommendation: "Your schedule may be shifting; keep an eye on whether it sticks",
				DetectedAt:     p.Day,
			})
		}
	}
	return anomalies
}
