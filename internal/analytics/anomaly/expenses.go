package anomaly

import (
	"fmt"
	"sort"
	"time"

	"github.com/gigwallet/insights/internal/analytics"
)

// MetricWeeklyExpenseCount names the expenses-per-week series.
const MetricWeeklyExpenseCount = "weekly_expense_count"

// AnalyzeExpenses flags single expenses above their category's upper Tukey
// fence, categories that appeared recently with outsized spend, and weeks
// with an unusual number of expenses. Requires at least 10 entries overall;
// the per-category fence additionally needs 10 entries in that category.
func AnalyzeExpenses(entries []analytics.ExpenseEntry) []Anomaly {
	cfg := DefaultConfig()
	if len(entries) < cfg.MinSamples {
		return nil
	}

	var anomalies []Anomaly
	anomalies = append(anomalies, categorySpikeAnomalies(entries, cfg)...)
	anomalies = append(anomalies, newCategoryAnomalies(entries)...)
	anomalies = append(anomalies, frequencySpikeAnomalies(entries, cfg)...)

	sortAnomalies(anomalies)
	return anomalies
}

// categorySpikeAnomalies runs an upper-fence-only IQR check on the individual
// amounts within each category. Drops are routine for spending, so only the
// upper fence matters.
func categorySpikeAnomalies(entries []analytics.ExpenseEntry, cfg DetectorConfig) []Anomaly {
	byCategory := make(map[string][]analytics.ExpenseEntry)
	for _, e := range entries {
		byCategory[e.Category] = append(byCategory[e.Category], e)
	}

	var anomalies []Anomaly
	for _, category := range sortedKeys(byCategory) {
		catEntries := byCategory[category]
		if len(catEntries) < cfg.MinSamples {
			continue
		}
		amounts := make([]float64, len(catEntries))
		for i, e := range catEntries {
			amounts[i] = e.Amount
		}

		q1, _, q3 := analytics.Quartiles(amounts)
		upper := q3 + cfg.IQRMultiplier*(q3-q1)
		modZ := analytics.ModifiedZScores(amounts)

		for i, e := range catEntries {
			if e.Amount <= upper {
				continue
			}
			anomalies = append(anomalies, Anomaly{
				Type:           TypeExpenseSpike,
				Severity:       GradeSeverity(modZ[i]),
				Metric:         "expense_amount:" + category,
				Observed:       e.Amount,
				Expected:       Range{Low: q1, High: upper},
				ZScore:         modZ[i],
				Description:    fmt.Sprintf("$%.2f on %s is unusually high for %s", e.Amount, e.Date.Format("Jan 2"), category),
				Recommendation: "Double-check this charge if you don't recognize it",
				DetectedAt:     analytics.DayOf(e.Date),
			})
		}
	}
	return anomalies
}

// newCategoryAnomalies flags categories whose first entry is inside the last
// 30 days (relative to the latest observed entry) and whose total spend
// exceeds the median of all expense amounts.
func newCategoryAnomalies(entries []analytics.ExpenseEntry) []Anomaly {
	if len(entries) == 0 {
		return nil
	}

	var latest time.Time
	amounts := make([]float64, len(entries))
	firstSeen := make(map[string]time.Time)
	totals := make(map[string]float64)
	for i, e := range entries {
		day := analytics.DayOf(e.Date)
		if day.After(latest) {
			latest = day
		}
		amounts[i] = e.Amount
		totals[e.Category] += e.Amount
		if first, ok := firstSeen[e.Category]; !ok || day.Before(first) {
			firstSeen[e.Category] = day
		}
	}

	overallMedian := analytics.Median(amounts)
	cutoff := latest.AddDate(0, 0, -newCategoryWindowDays)

	var anomalies []Anomaly
	for _, category := range sortedKeys(totals) {
		first := firstSeen[category]
		total := totals[category]
		if first.Before(cutoff) || total <= overallMedian {
			continue
		}
		anomalies = append(anomalies, Anomaly{
			Type:           TypeCategoryOutlier,
			Severity:       SeverityWarning,
			Metric:         "new_category:" + category,
			Observed:       total,
			Expected:       Range{Low: 0, High: overallMedian},
			ZScore:         0,
			Description:    fmt.Sprintf("New spending category %s already totals $%.2f", category, total),
			Recommendation: "Decide whether this is a one-off or a budget line to track",
			DetectedAt:     first,
		})
	}
	return anomalies
}

// frequencySpikeAnomalies counts expenses per week (weeks starting Monday,
// zero-filled across the observed span) and flags weeks whose count's
// modified z-score exceeds 2.0.
func frequencySpikeAnomalies(entries []analytics.ExpenseEntry, cfg DetectorConfig) []Anomaly {
	if len(entries) == 0 {
		return nil
	}

	counts := make(map[time.Time]float64)
	var first, last time.Time
	for _, e := range entries {
		week := weekStart(e.Date)
		counts[week]++
		if first.IsZero() || week.Before(first) {
			first = week
		}
		if week.After(last) {
			last = week
		}
	}

	var weeks []time.Time
	var series []float64
	for w := first; !w.After(last); w = w.AddDate(0, 0, 7) {
		weeks = append(weeks, w)
		series = append(series, counts[w])
	}
	if len(series) < cfg.MinSamples {
		return nil
	}

	modZ := analytics.ModifiedZScores(series)
	expected := madExpectedRange(series, frequencyFlagZ)

	var anomalies []Anomaly
	for i, z := range modZ {
		if z <= frequencyFlagZ {
			continue
		}
		anomalies = append(anomalies, Anomaly{
			Type:           TypeFrequencySpike,
			Severity:       GradeSeverity(z),
			Metric:         MetricWeeklyExpenseCount,
			Observed:       series[i],
			Expected:       expected,
			ZScore:         z,
			Description:    fmt.Sprintf("%.0f expenses in the week of %s, more than your usual pace", series[i], weeks[i].Format("Jan 2")),
			Recommendation: "Frequent small charges add up; review this week's activity",
			DetectedAt:     weeks[i],
		})
	}
	return anomalies
}

// weekStart truncates a timestamp to the Monday of its week.
func weekStart(t time.Time) time.Time {
	day := analytics.DayOf(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
