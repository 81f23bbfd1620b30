package calculator

import "CryptoStudy/internal/model"

// DailyReturns computes the fractional day-over-day change in closing price.
// The result has len(bars)-1 entries; entry i-1 belongs to the bar at index i
// (the first bar has no prior close and therefore no return).
func DailyReturns(bars []model.OHLCV) []float64 {
	if len(bars) < 2 {
		return nil
	}
	rets := make([]float64, len(bars)-1)
	for i := 1; i < len(bars); i++ {
		rets[i-1] = (bars[i].Close - bars[i-1].Close) / bars[i-1].Close
	}
	return rets
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
