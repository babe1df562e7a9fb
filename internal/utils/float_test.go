package utils

import (
	"math"
	"testing"
)

func TestApproxZero(t *testing.T) {
	cases := []struct {
		v    float64
		want bool
	}{
		{0, true},
		{Epsilon / 2, true},
		{-Epsilon / 2, true},
		{Epsilon * 2, false},
		{1, false},
		{-0.5, false},
	}
	for _, c := range cases {
		if got := ApproxZero(c.v); got != c.want {
			t.Errorf("ApproxZero(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestApproxEqual(t *testing.T) {
	if !ApproxEqual(1.0, 1.0+1e-10, 1e-9) {
		t.Error("values within tolerance should compare equal")
	}
	if ApproxEqual(1.0, 1.1, 1e-9) {
		t.Error("values outside tolerance should not compare equal")
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{42, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestClamp01(t *testing.T) {
	if got := Clamp01(1.5); got != 1 {
		t.Errorf("Clamp01(1.5) = %v, want 1", got)
	}
	if got := Clamp01(-0.2); got != 0 {
		t.Errorf("Clamp01(-0.2) = %v, want 0", got)
	}
	if got := Clamp01(0.37); math.Abs(got-0.37) > 1e-12 {
		t.Errorf("Clamp01(0.37) = %v, want 0.37", got)
	}
}

func TestNonNegative(t *testing.T) {
	if got := NonNegative(-12.5); got != 0 {
		t.Errorf("NonNegative(-12.5) = %v, want 0", got)
	}
	if got := NonNegative(7.25); got != 7.25 {
		t.Errorf("NonNegative(7.25) = %v, want 7.25", got)
	}
}
