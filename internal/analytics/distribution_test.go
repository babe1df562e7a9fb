package analytics

import (
	"math"
	"testing"
)

func TestNormalQuantile_KnownValues(t *testing.T) {
	// The Abramowitz-Stegun approximation is good to ~4.5e-4.
	cases := []struct {
		p    float64
		want float64
	}{
		{0.5, 0},
		{0.975, 1.959964},
		{0.025, -1.959964},
		{0.95, 1.644854},
		{0.99, 2.326348},
		{0.01, -2.326348},
	}

	for _, c := range cases {
		got := NormalQuantile(c.p)
		if math.Abs(got-c.want) > 1e-3 {
			t.Errorf("NormalQuantile(%f): expected %f, got %f", c.p, c.want, got)
		}
	}
}

func TestNormalQuantile_Symmetry(t *testing.T) {
	for _, p := range []float64{0.6, 0.75, 0.9, 0.99} {
		upper := NormalQuantile(p)
		lower := NormalQuantile(1 - p)
		if math.Abs(upper+lower) > 1e-9 {
			t.Errorf("Expected symmetry about 0.5: q(%f)=%f, q(%f)=%f", p, upper, 1-p, lower)
		}
	}
}

func TestTQuantile_LargeDFMatchesNormal(t *testing.T) {
	for _, p := range []float64{0.9, 0.95, 0.99} {
		z := NormalQuantile(p)
		tq := TQuantile(p, 200)
		if tq != z {
			t.Errorf("Expected normal approximation at df=200: got %f, want %f", tq, z)
		}
	}
}

func TestTQuantile_SmallDF(t *testing.T) {
	// Reference values from standard t tables. The Cornish-Fisher expansion
	// is an approximation; a 2% relative error bound is the contract here.
	cases := []struct {
		p    float64
		df   int
		want float64
	}{
		{0.975, 10, 2.228},
		{0.95, 20, 1.725},
		{0.975, 30, 2.042},
		{0.99, 15, 2.602},
	}

	for _, c := range cases {
		got := TQuantile(c.p, c.df)
		if math.Abs(got-c.want)/c.want > 0.02 {
			t.Errorf("TQuantile(%f, %d): expected ~%f, got %f", c.p, c.df, c.want, got)
		}
	}
}

func TestGrubbsCriticalValue_Table(t *testing.T) {
	// Two-sided Grubbs critical values at alpha=0.05.
	cases := []struct {
		n    int
		want float64
	}{
		{10, 2.290},
		{15, 2.549},
		{20, 2.709},
	}

	for _, c := range cases {
		got := GrubbsCriticalValue(c.n, 0.05)
		if math.Abs(got-c.want) > 0.05 {
			t.Errorf("GrubbsCriticalValue(%d, 0.05): expected ~%f, got %f", c.n, c.want, got)
		}
	}
}

func TestGrubbsTest_DetectsOutlier(t *testing.T) {
	values := []float64{99, 101, 100, 98, 102, 100, 99, 101, 100, 97, 103, 100, 99, 101, 100, 1000}

	index, ok := GrubbsTest(values, 0.05)
	if !ok {
		t.Fatal("Expected Grubbs' test to flag the extreme value")
	}
	if index != 15 {
		t.Errorf("Expected outlier index 15, got %d", index)
	}
}

func TestGrubbsTest_NoOutlier(t *testing.T) {
	values := []float64{99, 101, 100, 98, 102, 100, 99, 101, 100, 97, 103, 100, 99, 101, 100}

	if _, ok := GrubbsTest(values, 0.05); ok {
		t.Error("Expected no outlier in tight data")
	}
}

func TestGrubbsTest_InsufficientData(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 1000}

	if _, ok := GrubbsTest(values, 0.05); ok {
		t.Error("Expected no result below 10 samples")
	}
}

func TestGrubbsTest_ZeroVariance(t *testing.T) {
	values := []float64{5, 5, 5, 5, 5, 5, 5, 5, 5, 5}

	if _, ok := GrubbsTest(values, 0.05); ok {
		t.Error("Expected no result for zero-variance data")
	}
}
