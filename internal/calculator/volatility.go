package calculator

import (
	"math"

	"CryptoStudy/internal/model"
)

// DefaultVolatilityWindow is the rolling window in trading days.
const DefaultVolatilityWindow = 30

// Annualization converts a daily standard deviation to an annual one,
// assuming 252 trading days per year.
var Annualization = math.Sqrt(252)

// RollingVolatility computes the annualized rolling standard deviation of
// daily returns. A point is produced for every bar index >= window; earlier
// bars have no defined volatility. Returns nil when fewer than window
// returns exist.
func RollingVolatility(bars []model.OHLCV, window int, annualization float64) []model.VolatilityPoint {
	rets := DailyReturns(bars)
	if window <= 0 || len(rets) < window {
		return nil
	}
	points := make([]model.VolatilityPoint, 0, len(rets)-window+1)
	for i := window; i < len(bars); i++ {
		// trailing window returns for the bar at index i
		trailing := rets[i-window : i]
		points = append(points, model.VolatilityPoint{
			Date:  bars[i].Time,
			Value: sampleStdDev(trailing) * annualization,
		})
	}
	return points
}

// sampleStdDev uses the n-1 divisor.
func sampleStdDev(xs []float64) float64 {
	n := len(xs)
	if n < 2 {
		return 0
	}
	m := mean(xs)
	var sq float64
	for _, x := range xs {
		d := x - m
		sq += d * d
	}
	return math.Sqrt(sq / float64(n-1))
}

// Volatility interpretation labels.
const (
	VolLow      = "Low"
	VolModerate = "Moderate"
	VolHigh     = "High"
	VolNA       = "N/A"
)

// Interpret maps an annualized volatility value to a coarse label:
// below 0.30 is Low, below 0.60 Moderate, otherwise High. A nil point
// (no volatility computed) maps to N/A.
func Interpret(point *model.VolatilityPoint) string {
	if point == nil {
		return VolNA
	}
	switch {
	case point.Value < 0.30:
		return VolLow
	case point.Value < 0.60:
		return VolModerate
	default:
		return VolHigh
	}
}
