package forecast

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gigwallet/insights/internal/analytics"
)

func dailyEarnings(start time.Time, amounts []float64) []analytics.EarningsEntry {
	entries := make([]analytics.EarningsEntry, len(amounts))
	for i, a := range amounts {
		entries[i] = analytics.EarningsEntry{Date: start.AddDate(0, 0, i), Amount: a, Platform: "rideshare"}
	}
	return entries
}

func TestForecastEarnings_SteadyIncome(t *testing.T) {
	// Four weeks of a flat $100/day should project exactly $700/$3000 with a
	// steady trend and no seasonal tilt.
	start := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	amounts := make([]float64, 28)
	for i := range amounts {
		amounts[i] = 100
	}

	fc, err := ForecastEarnings(dailyEarnings(start, amounts))
	if err != nil {
		t.Fatalf("ForecastEarnings failed: %v", err)
	}

	if math.Abs(fc.PredictedNextWeek-700) > 1e-6 {
		t.Errorf("Expected $700 next week, got %f", fc.PredictedNextWeek)
	}
	if math.Abs(fc.PredictedNextMonth-3000) > 1e-6 {
		t.Errorf("Expected $3000 next month, got %f", fc.PredictedNextMonth)
	}
	if fc.Trend != TrendSteady {
		t.Errorf("Expected steady trend, got %s", fc.Trend)
	}
	if math.Abs(fc.SeasonalAdjustment-1) > 1e-6 {
		t.Errorf("Expected neutral seasonal adjustment, got %f", fc.SeasonalAdjustment)
	}
	if fc.Confidence <= 0.5 || fc.Confidence > 1 {
		t.Errorf("Expected high confidence for a long flat series, got %f", fc.Confidence)
	}
	if fc.ForecastBasis != 28 {
		t.Errorf("Expected 28 basis days, got %d", fc.ForecastBasis)
	}
}

func TestForecastEarnings_GrowingIncome(t *testing.T) {
	// A clean linear ramp should classify as accelerating and project more
	// for the month than four flat weeks would.
	start := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	amounts := make([]float64, 21)
	for i := range amounts {
		amounts[i] = 50 + 5*float64(i)
	}

	fc, err := ForecastEarnings(dailyEarnings(start, amounts))
	if err != nil {
		t.Fatalf("ForecastEarnings failed: %v", err)
	}

	if fc.Trend != TrendAccelerating {
		t.Errorf("Expected accelerating trend, got %s", fc.Trend)
	}
	if fc.PredictedNextWeek <= 0 {
		t.Errorf("Expected a positive weekly projection, got %f", fc.PredictedNextWeek)
	}
	if fc.PredictedNextMonth <= fc.PredictedNextWeek {
		t.Errorf("Expected the month to exceed the week, got %f vs %f", fc.PredictedNextMonth, fc.PredictedNextWeek)
	}
}

func TestForecastEarnings_ErraticIncome(t *testing.T) {
	// Wild swings around zero trend should come back volatile with low
	// confidence.
	start := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	amounts := []float64{300, 0, 0, 250, 0, 10, 0, 400, 0, 0, 5, 0, 350, 0, 0, 280, 0, 0, 0, 320, 0}

	fc, err := ForecastEarnings(dailyEarnings(start, amounts))
	if err != nil {
		t.Fatalf("ForecastEarnings failed: %v", err)
	}

	if fc.Trend != TrendVolatile {
		t.Errorf("Expected volatile trend, got %s", fc.Trend)
	}
	if fc.Confidence >= 0.6 {
		t.Errorf("Expected low confidence for erratic income, got %f", fc.Confidence)
	}
	if fc.PredictedNextWeek < 0 || fc.PredictedNextMonth < 0 {
		t.Errorf("Projections must not go negative, got %f / %f", fc.PredictedNextWeek, fc.PredictedNextMonth)
	}
}

func TestForecastEarnings_InsufficientData(t *testing.T) {
	start := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	_, err := ForecastEarnings(dailyEarnings(start, []float64{100, 100, 100, 100, 100}))
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("Expected ErrInsufficientData, got %v", err)
	}
}

func TestForecastEarnings_SparseSpanCounts(t *testing.T) {
	// Two earnings two weeks apart zero-fill to a 15-day basis, clearing the
	// minimum even though only two records exist.
	start := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	entries := []analytics.EarningsEntry{
		{Date: start, Amount: 200, Platform: "rideshare"},
		{Date: start.AddDate(0, 0, 14), Amount: 200, Platform: "rideshare"},
	}

	fc, err := ForecastEarnings(entries)
	if err != nil {
		t.Fatalf("ForecastEarnings failed: %v", err)
	}
	if fc.ForecastBasis != 15 {
		t.Errorf("Expected 15 basis days, got %d", fc.ForecastBasis)
	}
}

func TestConfidence_Bounds(t *testing.T) {
	cases := []struct {
		name     string
		days     int
		rSquared float64
		cv       float64
	}{
		{"zero days", 0, 1, 0},
		{"short noisy", 14, 0.01, 2.5},
		{"long clean", 90, 0.99, 0.1},
		{"bad fit inputs", 30, -5, -1},
	}
	for _, tc := range cases {
		got := Confidence(tc.days, tc.rSquared, tc.cv)
		if got < 0 || got > 1 {
			t.Errorf("%s: confidence %f out of [0,1]", tc.name, got)
		}
	}

	if low, high := Confidence(14, 0.5, 0.5), Confidence(90, 0.5, 0.5); low >= high {
		t.Errorf("Expected more data to raise confidence, got %f vs %f", low, high)
	}
}
