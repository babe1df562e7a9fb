package analytics

import (
	"github.com/gigwallet/insights/internal/utils"
)

// Regression is the result of an ordinary least squares fit y = Slope*x +
// Intercept. RSquared is the coefficient of determination clamped to [0, 1].
type Regression struct {
	Slope     float64
	Intercept float64
	RSquared  float64
}

// LinearRegression fits a closed-form OLS line through (x, y). It requires at
// least two points and non-zero variance in x; otherwise ok is false. When
// all y values are identical the fit is exact by definition and RSquared is 1.
func LinearRegression(x, y []float64) (reg Regression, ok bool) {
	if len(x) < 2 || len(x) != len(y) {
		return Regression{}, false
	}
	n := float64(len(x))

	var sumX, sumY, sumXY, sumX2 float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
	}

	denom := n*sumX2 - sumX*sumX
	if utils.ApproxZero(denom) {
		return Regression{}, false
	}

	reg.Slope = (n*sumXY - sumX*sumY) / denom
	reg.Intercept = sumY/n - reg.Slope*sumX/n

	meanY := sumY / n
	var ssTot, ssRes float64
	for i := range y {
		fitted := reg.Intercept + reg.Slope*x[i]
		ssRes += (y[i] - fitted) * (y[i] - fitted)
		ssTot += (y[i] - meanY) * (y[i] - meanY)
	}
	if utils.ApproxZero(ssTot) {
		reg.RSquared = 1
	} else {
		reg.RSquared = utils.Clamp01(1 - ssRes/ssTot)
	}
	return reg, true
}

// EMA returns the exponential moving average of values with smoothing factor
// alpha = 2/(span+1). The first output equals the first input.
func EMA(values []float64, span int) []float64 {
	if len(values) == 0 {
		return nil
	}
	if span < 1 {
		span = 1
	}
	alpha := 2 / float64(span+1)

	out := make([]float64, len(values))
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}

// SMA returns the simple moving average of values: an expanding average over
// the first window-1 points, then a true rolling average of the trailing
// window values.
func SMA(values []float64, window int) []float64 {
	if len(values) == 0 {
		return nil
	}
	if window < 1 {
		window = 1
	}

	out := make([]float64, len(values))
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
			out[i] = sum / float64(window)
		} else {
			out[i] = sum / float64(i+1)
		}
	}
	return out
}

// LastEMA is a convenience for the final smoothed value, the recency-biased
// rate used by the forecasters.
func LastEMA(values []float64, span int) float64 {
	ema := EMA(values, span)
	if len(ema) == 0 {
		return 0
	}
	return ema[len(ema)-1]
}

// IndexSeries returns [0, 1, ..., n-1] as float64, the x axis for day-index
// regressions.
func IndexSeries(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}
