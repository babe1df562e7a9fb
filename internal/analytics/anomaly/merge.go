package anomaly

import (
	"math"
	"sort"

	"github.com/gigwallet/insights/internal/analytics"
)

// AnalyzeAll runs every domain analyzer, deduplicates overlapping findings,
// and returns a single ranked list. Two anomalies are duplicates when they
// share type, metric and calendar day; the higher-severity record wins, with
// larger |z| breaking ties. Identical inputs always yield identical output.
func AnalyzeAll(
	earnings []analytics.EarningsEntry,
	expenses []analytics.ExpenseEntry,
	fees []analytics.FeeEntry,
) []Anomaly {
	var all []Anomaly
	all = append(all, AnalyzeEarnings(earnings)...)
	all = append(all, AnalyzeExpenses(expenses)...)
	all = append(all, AnalyzeFees(fees)...)

	merged := dedup(all)
	sortAnomalies(merged)
	return merged
}

type dedupKey struct {
	typ    Type
	metric string
	day    string
}

func dedup(anomalies []Anomaly) []Anomaly {
	best := make(map[dedupKey]Anomaly, len(anomalies))
	order := make([]dedupKey, 0, len(anomalies))

	for _, a := range anomalies {
		key := dedupKey{typ: a.Type, metric: a.Metric, day: a.DetectedAt.Format("2006-01-02")}
		existing, seen := best[key]
		if !seen {
			best[key] = a
			order = append(order, key)
			continue
		}
		if outranks(a, existing) {
			best[key] = a
		}
	}

	out := make([]Anomaly, 0, len(order))
	for _, key := range order {
		out = append(out, best[key])
	}
	return out
}

// outranks reports whether a should replace b under the severity-then-|z|
// rule.
func outranks(a, b Anomaly) bool {
	if a.Severity.Rank() != b.Severity.Rank() {
		return a.Severity.Rank() > b.Severity.Rank()
	}
	return math.Abs(a.ZScore) > math.Abs(b.ZScore)
}

// sortAnomalies orders by severity descending, then |z| descending, with
// metric and day as deterministic tie-breaks so repeated calls are
// bit-identical.
func sortAnomalies(anomalies []Anomaly) {
	sort.SliceStable(anomalies, func(i, j int) bool {
		a, b := anomalies[i], anomalies[j]
		if a.Severity.Rank() != b.Severity.Rank() {
			return a.Severity.Rank() > b.Severity.Rank()
		}
		if az, bz := math.Abs(a.ZScore), math.Abs(b.ZScore); az != bz {
			return az > bz
		}
		if a.Metric != b.Metric {
			return a.Metric < b.Metric
		}
		return a.DetectedAt.Before(b.DetectedAt)
	})
}

// madExpectedRange converts a series' median and MAD into the band a value
// may occupy before its modified z-score crosses flagZ.
func madExpectedRange(values []float64, flagZ float64) Range {
	med := analytics.Median(values)
	spread := flagZ * analytics.MAD(values) / analytics.ModifiedZScale
	return Range{Low: med - spread, High: med + spread}
}

// scoreAgainst is a thin wrapper kept close to its callers.
func scoreAgainst(baseline []float64, v float64) float64 {
	return analytics.ModifiedZScoreAgainst(baseline, v)
}
