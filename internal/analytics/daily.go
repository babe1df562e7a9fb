package analytics

import (
	"sort"
	"time"
)

// DayOf truncates a timestamp to its calendar day, preserving the location.
// All aggregation buckets entries sharing the same local date.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EarningsDailyTotals buckets earnings by calendar day and returns the
// per-day totals sorted chronologically. Only days with recorded entries
// appear; use FillDays when a contiguous series is needed.
func EarningsDailyTotals(entries []EarningsEntry) DailySeries {
	totals := make(map[time.Time]float64, len(entries))
	for _, e := range entries {
		totals[DayOf(e.Date)] += e.Amount
	}
	return sortedSeries(totals)
}

// ExpenseDailyTotals buckets expenses by calendar day, sorted chronologically.
func ExpenseDailyTotals(entries []ExpenseEntry) DailySeries {
	totals := make(map[time.Time]float64, len(entries))
	for _, e := range entries {
		totals[DayOf(e.Date)] += e.Amount
	}
	return sortedSeries(totals)
}

// FillDays expands a sorted daily series into a contiguous one spanning the
// earliest to the latest observed day. Days with no recorded activity become
// explicit zeros: for forecasting, a quiet day is a real zero, not missing
// data.
func FillDays(series DailySeries) DailySeries {
	if len(series) == 0 {
		return nil
	}
	byDay := make(map[time.Time]float64, len(series))
	for _, p := range series {
		byDay[p.Day] = p.Value
	}
	first := series[0].Day
	last := series[len(series)-1].Day

	var filled DailySeries
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		filled = append(filled, DailyPoint{Day: day, Value: byDay[day]})
	}
	return filled
}

func sortedSeries(totals map[time.Time]float64) DailySeries {
	series := make(DailySeries, 0, len(totals))
	for day, value := range totals {
		series = append(series, DailyPoint{Day: day, Value: value})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Day.Before(series[j].Day)
	})
	return series
}
