package analytics

import (
	"math"
	"testing"
)

func TestMedian(t *testing.T) {
	if got := Median([]float64{1, 2, 3, 4}); got != 2.5 {
		t.Errorf("Expected median 2.5, got %f", got)
	}
	if got := Median([]float64{1, 3, 5}); got != 3 {
		t.Errorf("Expected median 3, got %f", got)
	}
	if got := Median([]float64{5, 1, 3}); got != 3 {
		t.Errorf("Expected median 3 on unsorted input, got %f", got)
	}
	if got := Median(nil); got != 0 {
		t.Errorf("Expected median 0 for empty input, got %f", got)
	}
}

func TestQuartiles_TukeyHinges(t *testing.T) {
	q1, median, q3 := Quartiles([]float64{1, 2, 3, 4, 5, 6, 7, 8})

	if q1 != 2.5 {
		t.Errorf("Expected Q1 2.5, got %f", q1)
	}
	if median != 4.5 {
		t.Errorf("Expected median 4.5, got %f", median)
	}
	if q3 != 6.5 {
		t.Errorf("Expected Q3 6.5, got %f", q3)
	}
}

func TestQuartiles_OddCountExcludesMedian(t *testing.T) {
	q1, median, q3 := Quartiles([]float64{1, 2, 3, 4, 5})

	if q1 != 1.5 {
		t.Errorf("Expected Q1 1.5, got %f", q1)
	}
	if median != 3 {
		t.Errorf("Expected median 3, got %f", median)
	}
	if q3 != 4.5 {
		t.Errorf("Expected Q3 4.5, got %f", q3)
	}
}

func TestMAD_WorkedExample(t *testing.T) {
	// median=3.5, deviations=[2.5,1.5,0.5,0.5,1.5,96.5], MAD=1.5
	got := MAD([]float64{1, 2, 3, 4, 5, 100})
	if got != 1.5 {
		t.Errorf("Expected MAD 1.5, got %f", got)
	}
}

func TestStdDev_SampleConvention(t *testing.T) {
	// Sample stddev of {2,4,4,4,5,5,7,9} is sqrt(32/7).
	got := StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	want := math.Sqrt(32.0 / 7.0)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected sample stddev %f, got %f", want, got)
	}

	if got := StdDev([]float64{5}); got != 0 {
		t.Errorf("Expected stddev 0 for a single value, got %f", got)
	}
}

func TestPercentile_LinearInterpolation(t *testing.T) {
	values := []float64{1, 2, 3, 4}

	if got := Percentile(values, 0.5); got != 2.5 {
		t.Errorf("Expected 50th percentile 2.5, got %f", got)
	}
	if got := Percentile(values, 0); got != 1 {
		t.Errorf("Expected 0th percentile 1, got %f", got)
	}
	if got := Percentile(values, 1); got != 4 {
		t.Errorf("Expected 100th percentile 4, got %f", got)
	}
	// rank = 0.25*3 = 0.75 -> between 1 and 2
	if got := Percentile(values, 0.25); math.Abs(got-1.75) > 1e-9 {
		t.Errorf("Expected 25th percentile 1.75, got %f", got)
	}
}

func TestModifiedZScores_Basic(t *testing.T) {
	values := []float64{10, 12, 14, 16, 18}
	scores := ModifiedZScores(values)

	// median=14, MAD=2: score of 18 is 0.6745*4/2
	want := ModifiedZScale * 4 / 2
	if math.Abs(scores[4]-want) > 1e-9 {
		t.Errorf("Expected score %f, got %f", want, scores[4])
	}
	if scores[2] != 0 {
		t.Errorf("Expected median element score 0, got %f", scores[2])
	}
}

func TestModifiedZScores_ZeroMADFallback(t *testing.T) {
	// More than half the values equal the median, so MAD collapses.
	values := []float64{100, 100, 100, 100, 100, 900, 50}
	scores := ModifiedZScores(values)

	for i := 0; i < 5; i++ {
		if scores[i] != 0 {
			t.Errorf("Expected score 0 at index %d, got %f", i, scores[i])
		}
	}
	if scores[5] != 3.5 {
		t.Errorf("Expected fallback +3.5 for high value, got %f", scores[5])
	}
	if scores[6] != -3.5 {
		t.Errorf("Expected fallback -3.5 for low value, got %f", scores[6])
	}
}

// TestModifiedZScores_ContaminationRobustness verifies the property that
// motivates MAD over stddev: one injected extreme barely moves the modified
// z-scores of the other points, while it drags their plain z-scores toward
// zero.
func TestModifiedZScores_ContaminationRobustness(t *testing.T) {
	clean := make([]float64, 20)
	for i := range clean {
		clean[i] = 90 + float64(i) // 90..109
	}
	contaminated := make([]float64, 20)
	copy(contaminated, clean)
	contaminated[19] = 1000

	modBefore := ModifiedZScores(clean)
	modAfter := ModifiedZScores(contaminated)

	maxShift := 0.0
	for i := 0; i < 19; i++ {
		if shift := math.Abs(modAfter[i] - modBefore[i]); shift > maxShift {
			maxShift = shift
		}
	}
	if maxShift > 0.1 {
		t.Errorf("Modified z-scores shifted by %f after contamination, expected near-zero shift", maxShift)
	}

	plainBefore := plainZScores(clean)
	plainAfter := plainZScores(contaminated)

	var absBefore, absAfter float64
	for i := 0; i < 19; i++ {
		absBefore += math.Abs(plainBefore[i])
		absAfter += math.Abs(plainAfter[i])
	}
	if absAfter >= absBefore*0.7 {
		t.Errorf("Expected plain z-scores to collapse toward zero: mean |z| went %f -> %f", absBefore/19, absAfter/19)
	}
}

func plainZScores(values []float64) []float64 {
	mean := Mean(values)
	sd := StdDev(values)
	scores := make([]float64, len(values))
	for i, v := range values {
		scores[i] = (v - mean) / sd
	}
	return scores
}

func TestModifiedZScoreAgainst(t *testing.T) {
	baseline := []float64{10, 12, 14, 16, 18}

	// median=14, MAD=2
	want := ModifiedZScale * (20 - 14) / 2
	if got := ModifiedZScoreAgainst(baseline, 20); math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %f, got %f", want, got)
	}

	flat := []float64{5, 5, 5, 5}
	if got := ModifiedZScoreAgainst(flat, 9); got != 3.5 {
		t.Errorf("Expected fallback 3.5 against flat baseline, got %f", got)
	}
	if got := ModifiedZScoreAgainst(flat, 5); got != 0 {
		t.Errorf("Expected 0 on the flat baseline's median, got %f", got)
	}
}
