package analysis

import (
	"CryptoStudy/internal/calculator"
	"CryptoStudy/internal/model"
)

// Params controls the analysis windows and thresholds.
type Params struct {
	VolatilityWindow int
	Annualization    float64
	TrendWindow      int
	TrendThreshold   float64
}

// DefaultParams returns the standard study parameters: 30-day annualized
// volatility and 7-day / 3% trend segmentation.
func DefaultParams() Params {
	return Params{
		VolatilityWindow: calculator.DefaultVolatilityWindow,
		Annualization:    calculator.Annualization,
		TrendWindow:      calculator.DefaultTrendWindow,
		TrendThreshold:   calculator.DefaultTrendThreshold,
	}
}

// Evaluate runs every statistic over the series and aggregates the results.
// Each statistic degrades independently: a series too short for one leaves
// that field nil/empty without affecting the others.
func Evaluate(series *model.PriceSeries, p Params) *model.StudyResult {
	res := &model.StudyResult{
		Symbol:           series.Symbol,
		BarCount:         len(series.Bars),
		VolatilityWindow: p.VolatilityWindow,
		TrendWindow:      p.TrendWindow,
		TrendThreshold:   p.TrendThreshold,
	}
	if series.Empty() {
		res.VolatilityLabel = calculator.VolNA
		return res
	}
	res.RangeStart = series.Start()
	res.RangeEnd = series.End()

	if peak, ok := calculator.FindPeak(series.Bars); ok {
		res.Peak = &peak
	}
	if gain, ok := calculator.FindBestGain(series.Bars); ok {
		res.BestGain = &gain
	}

	res.Volatility = calculator.RollingVolatility(series.Bars, p.VolatilityWindow, p.Annualization)
	if n := len(res.Volatility); n > 0 {
		latest := res.Volatility[n-1]
		res.LatestVolatility = &latest
	}
	res.VolatilityLabel = calculator.Interpret(res.LatestVolatility)

	res.BearTimelines, res.BullTimelines = calculator.SegmentTrends(series.Bars, p.TrendWindow, p.TrendThreshold)
	return res
}
