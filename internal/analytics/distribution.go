package analytics

import (
	"math"

	"github.com/gigwallet/insights/internal/utils"
)

// Abramowitz & Stegun 26.2.23 rational approximation coefficients for the
// normal quantile. Absolute error is below 4.5e-4, which is plenty for a
// consumer-facing outlier heuristic.
const (
	asC0 = 2.515517
	asC1 = 0.802853
	asC2 = 0.010328
	asD1 = 1.432788
	asD2 = 0.189269
	asD3 = 0.001308
)

// normalApproxDF is the degrees-of-freedom cutoff beyond which the
// t-distribution is indistinguishable from the normal for our purposes.
const normalApproxDF = 120

// minGrubbsSamples is the smallest sample Grubbs' test will consider.
const minGrubbsSamples = 10

// NormalQuantile returns the p-th quantile of the standard normal
// distribution (the probit function), symmetric about p = 0.5.
func NormalQuantile(p float64) float64 {
	if p <= 0 {
		return math.Inf(-1)
	}
	if p >= 1 {
		return math.Inf(1)
	}
	if p < 0.5 {
		return -normalQuantileUpper(p)
	}
	return normalQuantileUpper(1 - p)
}

// normalQuantileUpper computes the positive quantile for tail probability p
// in (0, 0.5].
func normalQuantileUpper(p float64) float64 {
	t := math.Sqrt(-2 * math.Log(p))
	num := asC0 + asC1*t + asC2*t*t
	den := 1 + asD1*t + asD2*t*t + asD3*t*t*t
	return t - num/den
}

// TQuantile approximates the p-th quantile of Student's t-distribution with
// df degrees of freedom via a Cornish-Fisher expansion around the normal
// quantile. At df >= 120 the normal quantile is returned directly.
func TQuantile(p float64, df int) float64 {
	z := NormalQuantile(p)
	if df >= normalApproxDF {
		return z
	}
	if df < 1 {
		df = 1
	}
	d := float64(df)
	z2 := z * z

	g1 := z * (z2 + 1) / 4
	g2 := z * (5*z2*z2 + 16*z2 + 3) / 96
	g3 := z * (3*z2*z2*z2 + 19*z2*z2 + 17*z2 - 15) / 384
	g4 := z * (79*z2*z2*z2*z2 + 776*z2*z2*z2 + 1482*z2*z2 - 1920*z2 - 945) / 92160

	return z + g1/d + g2/(d*d) + g3/(d*d*d) + g4/(d*d*d*d)
}

// GrubbsCriticalValue returns the rejection threshold for Grubbs' test on a
// sample of size n at significance alpha.
func GrubbsCriticalValue(n int, alpha float64) float64 {
	if n < 3 {
		return math.Inf(1)
	}
	nf := float64(n)
	t := TQuantile(1-alpha/(2*nf), n-2)
	return (nf - 1) / math.Sqrt(nf) * math.Sqrt(t*t/(nf-2+t*t))
}

// GrubbsTest locates the value farthest from the mean and tests whether it is
// a statistical outlier at significance alpha. It returns the candidate's
// index and true only when the test statistic exceeds the critical value.
// Requires at least 10 values and non-degenerate spread; otherwise ok is
// false.
func GrubbsTest(values []float64, alpha float64) (index int, ok bool) {
	if len(values) < minGrubbsSamples {
		return 0, false
	}
	mean := Mean(values)
	sd := StdDev(values)
	if utils.ApproxZero(sd) {
		return 0, false
	}

	maxDev := 0.0
	for i, v := range values {
		if dev := math.Abs(v - mean); dev > maxDev {
			maxDev = dev
			index = i
		}
	}

	g := maxDev / sd
	if g > GrubbsCriticalValue(len(values), alpha) {
		return index, true
	}
	return 0, false
}
