// Package anomaly flags statistical irregularities in earnings, expenses and
// platform fees. All analyzers are pure: they take snapshot slices, return
// freshly allocated anomaly lists sorted by severity, and hold no state.
package anomaly

import (
	"time"
)

// Type classifies what kind of irregularity was detected.
type Type string

const (
	TypeEarningsSpike     Type = "earnings_spike"     // Daily earnings far above the norm
	TypeEarningsDrop      Type = "earnings_drop"      // Daily earnings far below the norm
	TypeIncomeGap         Type = "income_gap"         // Unusually long stretch without earnings
	TypeScheduleDeviation Type = "schedule_deviation" // Recent weekday/weekend pattern shift
	TypeExpenseSpike      Type = "expense_spike"      // Single expense above its category's fence
	TypeCategoryOutlier   Type = "category_outlier"   // New category with outsized spend
	TypeFrequencySpike    Type = "frequency_spike"    // Unusual number of expenses in a week
	TypeFeeIncrease       Type = "fee_increase"       // Platform fee rate climbing
)

// Severity grades how alarming an anomaly is.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Rank orders severities for sorting and dedup: higher is worse.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 2
	case SeverityWarning:
		return 1
	default:
		return 0
	}
}

// Severity cut points shared by every analyzer. A z-like score is graded the
// same way no matter which detector produced it.
const (
	criticalZ = 3.0
	warningZ  = 2.0
)

// Modified z-score flag thresholds per analyzer.
const (
	earningsFlagZ  = 1.5
	feeFlagZ       = 1.5
	gapFlagZ       = 2.0
	scheduleFlagZ  = 2.0
	frequencyFlagZ = 2.0
)

// newCategoryWindowDays is how far back a category's first entry may be for
// the category to still count as new.
const newCategoryWindowDays = 30

// scheduleRecentPoints is how many trailing points per weekday/weekend
// segment are compared against the segment's baseline.
const scheduleRecentPoints = 3

// Range is the expected band an observed value fell outside of.
type Range struct {
	Low  float64
	High float64
}

// Anomaly is a single flagged irregularity. Instances are immutable value
// objects owned by the caller; DetectedAt is the calendar day of the
// offending observation, so identical inputs always produce identical output.
type Anomaly struct {
	Type           Type
	Severity       Severity
	Metric         string
	Observed       float64
	Expected       Range
	ZScore         float64
	Description    string
	Recommendation string
	DetectedAt     time.Time
}

// DetectorConfig holds tuning for the generic detectors. All configuration is
// per call; there is no ambient state.
type DetectorConfig struct {
	Threshold     float64 // z-score threshold for DetectZScore
	IQRMultiplier float64 // fence multiplier k for DetectIQR
	MinSamples    int     // minimum points before any detection runs
}

// DefaultConfig returns the standard detector tuning.
func DefaultConfig() DetectorConfig {
	return DetectorConfig{
		Threshold:     2.0,
		IQRMultiplier: 1.5,
		MinSamples:    10,
	}
}

// GradeSeverity classifies a z-like score with the shared cut points:
// |z| > 3 critical, |z| > 2 warning, otherwise info.
func GradeSeverity(z float64) Severity {
	abs := z
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs > criticalZ:
		return SeverityCritical
	case abs > warningZ:
		return SeverityWarning
	default:
		return SeverityInfo
	}
}

// Direction tells whether a generic detection was above or below the norm.
type Direction int

const (
	DirectionSpike Direction = iota
	DirectionDrop
)

// Result is a single generic-detector hit, indexed into the input slice.
type Result struct {
	Index     int
	Score     float64
	Direction Direction
	Expected  Range
}
