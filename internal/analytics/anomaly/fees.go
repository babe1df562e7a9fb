package anomaly

import (
	"fmt"
	"sort"

	"github.com/gigwallet/insights/internal/analytics"
)

// AnalyzeFees watches each platform's fee-to-gross ratio and flags increases.
// Fee decreases are good news for the user and are never reported. Entries
// with non-positive gross amounts are skipped; a platform needs at least 10
// usable entries before its ratios are examined.
func AnalyzeFees(entries []analytics.FeeEntry) []Anomaly {
	cfg := DefaultConfig()

	byPlatform := make(map[string][]analytics.FeeEntry)
	for _, e := range entries {
		if e.GrossAmount <= 0 {
			continue
		}
		byPlatform[e.Platform] = append(byPlatform[e.Platform], e)
	}

	platforms := make([]string, 0, len(byPlatform))
	for p := range byPlatform {
		platforms = append(platforms, p)
	}
	sort.Strings(platforms)

	var anomalies []Anomaly
	for _, platform := range platforms {
		platEntries := byPlatform[platform]
		if len(platEntries) < cfg.MinSamples {
			continue
		}
		sort.Slice(platEntries, func(i, j int) bool {
			return platEntries[i].Date.Before(platEntries[j].Date)
		})

		ratios := make([]float64, len(platEntries))
		for i, e := range platEntries {
			ratios[i] = e.Fees / e.GrossAmount
		}

		modZ := analytics.ModifiedZScores(ratios)
		expected := madExpectedRange(ratios, feeFlagZ)

		for i, z := range modZ {
			if z <= feeFlagZ {
				continue
			}
			anomalies = append(anomalies, Anomaly{
				Type:           TypeFeeIncrease,
				Severity:       GradeSeverity(z),
				Metric:         "fee_rate:" + platform,
				Observed:       ratios[i],
				Expected:       expected,
				ZScore:         z,
				Description:    fmt.Sprintf("%s took %.1f%% in fees on %s, above its usual cut", platform, ratios[i]*100, platEntries[i].Date.Format("Jan 2")),
				Recommendation: "Check whether the platform changed its fee structure",
				DetectedAt:     analytics.DayOf(platEntries[i].Date),
			})
		}
	}

	sortAnomalies(anomalies)
	return anomalies
}
