package calculator

import "CryptoStudy/internal/model"

// FindPeak returns the date and price of the highest close in the series.
// Ties resolve to the earliest occurrence. ok is false for an empty series.
func FindPeak(bars []model.OHLCV) (peak model.PricePoint, ok bool) {
	if len(bars) == 0 {
		return model.PricePoint{}, false
	}
	best := 0
	for i := 1; i < len(bars); i++ {
		if bars[i].Close > bars[best].Close {
			best = i
		}
	}
	return model.PricePoint{Date: bars[best].Time, Price: bars[best].Close}, true
}

// FindBestGain returns the date and size of the largest single-day gain.
// The first bar is excluded since it has no defined return. Ties resolve
// to the earliest occurrence. ok is false with fewer than two bars.
func FindBestGain(bars []model.OHLCV) (gain model.GainPoint, ok bool) {
	rets := DailyReturns(bars)
	if len(rets) == 0 {
		return model.GainPoint{}, false
	}
	best := 0
	for i := 1; i < len(rets); i++ {
		if rets[i] > rets[best] {
			best = i
		}
	}
	return model.GainPoint{Date: bars[best+1].Time, Pct: rets[best]}, true
}
