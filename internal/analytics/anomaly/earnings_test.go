package anomaly

import (
	"testing"
	"time"

	"github.com/gigwallet/insights/internal/analytics"
)

func earningsOn(day time.Time, amount float64) analytics.EarningsEntry {
	return analytics.EarningsEntry{Date: day, Amount: amount, Platform: "rideshare"}
}

func consecutiveEarnings(start time.Time, amounts []float64) []analytics.EarningsEntry {
	entries := make([]analytics.EarningsEntry, len(amounts))
	for i, a := range amounts {
		entries[i] = earningsOn(start.AddDate(0, 0, i), a)
	}
	return entries
}

func TestAnalyzeEarnings_SpikeScenario(t *testing.T) {
	// 14 consecutive days at $100 except day 10 at $900.
	amounts := make([]float64, 14)
	for i := range amounts {
		amounts[i] = 100
	}
	amounts[9] = 900
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	anomalies := AnalyzeEarnings(consecutiveEarnings(start, amounts))

	if len(anomalies) != 1 {
		t.Fatalf("Expected exactly 1 anomaly, got %d", len(anomalies))
	}
	a := anomalies[0]
	if a.Type != TypeEarningsSpike {
		t.Errorf("Expected earnings spike, got %s", a.Type)
	}
	if a.Severity.Rank() < SeverityWarning.Rank() {
		t.Errorf("Expected severity at least warning, got %s", a.Severity)
	}
	if a.Observed != 900 {
		t.Errorf("Expected observed 900, got %f", a.Observed)
	}
	if !a.DetectedAt.Equal(start.AddDate(0, 0, 9)) {
		t.Errorf("Expected detection on the spike day, got %v", a.DetectedAt)
	}
}

func TestAnalyzeEarnings_DropDirection(t *testing.T) {
	amounts := []float64{100, 105, 95, 100, 110, 90, 100, 105, 95, 100, 105, 95, 100, 5}
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	anomalies := AnalyzeEarnings(consecutiveEarnings(start, amounts))

	var foundDrop bool
	for _, a := range anomalies {
		if a.Type == TypeEarningsDrop && a.Observed == 5 {
			foundDrop = true
			if a.ZScore >= 0 {
				t.Errorf("Expected negative z for a drop, got %f", a.ZScore)
			}
		}
	}
	if !foundDrop {
		t.Error("Expected the $5 day to be flagged as a drop")
	}
}

func TestAnalyzeEarnings_MinimumSampleBoundary(t *testing.T) {
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	nine := make([]float64, 9)
	for i := range nine {
		nine[i] = 100 + float64(i)
	}
	if got := AnalyzeEarnings(consecutiveEarnings(start, nine)); got != nil {
		t.Errorf("Expected nil below 10 earning days, got %d anomalies", len(got))
	}

	// At the boundary the analyzer runs; a flat series legitimately yields
	// nothing.
	ten := make([]float64, 10)
	for i := range ten {
		ten[i] = 100
	}
	if got := AnalyzeEarnings(consecutiveEarnings(start, ten)); len(got) != 0 {
		t.Errorf("Expected no anomalies in flat data at the boundary, got %d", len(got))
	}
}

func TestAnalyzeEarnings_GapDetection(t *testing.T) {
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	// Ten consecutive earning days, then a 15-day silence before one more.
	entries := consecutiveEarnings(start, []float64{100, 100, 100, 100, 100, 100, 100, 100, 100, 100})
	gapEnd := start.AddDate(0, 0, 24)
	entries = append(entries, earningsOn(gapEnd, 100))

	anomalies := AnalyzeEarnings(entries)

	if len(anomalies) != 1 {
		t.Fatalf("Expected exactly 1 anomaly, got %d", len(anomalies))
	}
	a := anomalies[0]
	if a.Type != TypeIncomeGap {
		t.Errorf("Expected income gap, got %s", a.Type)
	}
	if a.Observed != 15 {
		t.Errorf("Expected a 15-day gap, got %f", a.Observed)
	}
	if !a.DetectedAt.Equal(gapEnd) {
		t.Errorf("Expected detection on the day the gap ended, got %v", a.DetectedAt)
	}
}

func TestAnalyzeEarnings_UniformCadenceNoGaps(t *testing.T) {
	// Earning every single day means every interval is identical; nothing to
	// flag.
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	amounts := make([]float64, 12)
	for i := range amounts {
		amounts[i] = 100
	}

	for _, a := range AnalyzeEarnings(consecutiveEarnings(start, amounts)) {
		if a.Type == TypeIncomeGap {
			t.Errorf("Did not expect a gap anomaly for daily earnings, got one at %v", a.DetectedAt)
		}
	}
}

func TestAnalyzeEarnings_ScheduleDeviation(t *testing.T) {
	// Sixteen weekdays at a steady $100, then three weekdays at $300.
	start := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC) // a Monday
	var entries []analytics.EarningsEntry
	day := start
	added := 0
	for added < 19 {
		if day.Weekday() != time.Saturday && day.Weekday() != time.Sunday {
			amount := 100.0
			if added >= 16 {
				amount = 300
			}
			entries = append(entries, earningsOn(day, amount))
			added++
		}
		day = day.AddDate(0, 0, 1)
	}

	anomalies := AnalyzeEarnings(entries)

	deviations := 0
	for _, a := range anomalies {
		if a.Type == TypeScheduleDeviation {
			deviations++
			if a.Metric != "weekday_earnings" {
				t.Errorf("Expected weekday segment metric, got %s", a.Metric)
			}
		}
	}
	if deviations != 3 {
		t.Errorf("Expected the 3 recent weekdays flagged, got %d", deviations)
	}
}

func TestAnalyzeEarnings_SortedBySeverityThenZ(t *testing.T) {
	amounts := []float64{100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 250, 100, 900, 100}
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	anomalies := AnalyzeEarnings(consecutiveEarnings(start, amounts))

	for i := 1; i < len(anomalies); i++ {
		prev, cur := anomalies[i-1], anomalies[i]
		if prev.Severity.Rank() < cur.Severity.Rank() {
			t.Fatalf("Anomalies out of severity order at %d", i)
		}
	}
}
