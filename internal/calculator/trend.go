package calculator

import (
	"time"

	"CryptoStudy/internal/model"
)

// Trend segmentation defaults: a 7-day return window against a 3% average
// daily move threshold.
const (
	DefaultTrendWindow    = 7
	DefaultTrendThreshold = 0.03
)

// SegmentTrends slides a window over the daily returns and collects maximal
// runs of windows whose average return crosses the threshold: below
// -threshold is a bear window, above +threshold a bull window. Consecutive
// qualifying windows merge into a single timeline per polarity.
//
// The window starting at bar index i covers the returns of bars [i, i+window).
// Start indexes run from 1 through len(bars)-window, so the final window-1
// bars never open a new run on their own; a run already open extends into
// them and closes at the series' last date.
func SegmentTrends(bars []model.OHLCV, window int, threshold float64) (bear, bull []model.Timeline) {
	if window <= 0 || len(bars) <= window {
		return nil, nil
	}
	rets := DailyReturns(bars)

	var bearStart, bullStart time.Time
	bearOpen, bullOpen := false, false

	for i := 1; i <= len(bars)-window; i++ {
		avg := mean(rets[i-1 : i+window-1])

		if avg < -threshold {
			if !bearOpen {
				bearOpen = true
				bearStart = bars[i].Time
			}
		} else if bearOpen {
			bear = append(bear, model.Timeline{Start: bearStart, End: bars[i-1].Time})
			bearOpen = false
		}

		if avg > threshold {
			if !bullOpen {
				bullOpen = true
				bullStart = bars[i].Time
			}
		} else if bullOpen {
			bull = append(bull, model.Timeline{Start: bullStart, End: bars[i-1].Time})
			bullOpen = false
		}
	}

	// Runs still open at scan end close at the series' true final date,
	// not at the last evaluated window start.
	last := bars[len(bars)-1].Time
	if bearOpen {
		bear = append(bear, model.Timeline{Start: bearStart, End: last})
	}
	if bullOpen {
		bull = append(bull, model.Timeline{Start: bullStart, End: last})
	}
	return bear, bull
}
