// Package analytics provides the statistical core shared by the anomaly
// detection and forecasting packages: domain entry types, calendar-day
// aggregation, robust statistics, distribution approximations and regression.
//
// Every function here is a pure, synchronous computation over caller-owned
// slices. Inputs are never mutated and nothing holds state between calls.
package analytics

import (
	"math"
	"time"
)

// EarningsEntry is a single recorded earning event.
type EarningsEntry struct {
	Date     time.Time
	Amount   float64
	Platform string
}

// ExpenseEntry is a single recorded expense.
type ExpenseEntry struct {
	Date     time.Time
	Amount   float64
	Category string
}

// FeeEntry records the gross amount and platform fee for a single payout.
type FeeEntry struct {
	Date        time.Time
	GrossAmount float64
	Fees        float64
	Platform    string
}

// DailyPoint is one calendar day's aggregated value.
type DailyPoint struct {
	Day   time.Time
	Value float64
}

// DailySeries is a chronologically ordered sequence of daily totals.
type DailySeries []DailyPoint

// Values extracts just the values from the series.
func (s DailySeries) Values() []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		values[i] = p.Value
	}
	return values
}

// Len returns the number of days in the series.
func (s DailySeries) Len() int {
	return len(s)
}

// Mean calculates the mean of all daily values.
func (s DailySeries) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range s {
		sum += p.Value
	}
	return sum / float64(len(s))
}

// StdDev calculates the sample standard deviation of all daily values.
// The engine uses the sample convention (n-1 denominator) everywhere.
func (s DailySeries) StdDev() float64 {
	return StdDev(s.Values())
}

// CV returns the coefficient of variation, stddev/|mean|, a scale-free
// volatility measure. Returns 0 when the mean is degenerate.
func (s DailySeries) CV() float64 {
	mean := s.Mean()
	if math.Abs(mean) < 1e-9 {
		return 0
	}
	return s.StdDev() / math.Abs(mean)
}
