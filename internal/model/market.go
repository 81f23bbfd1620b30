package model

import "time"

// OHLCV represents a single daily candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds the fetched daily history for one symbol.
// Bars are strictly increasing by date. The series is treated as
// immutable after Collect; all derived values live in StudyResult.
type PriceSeries struct {
	Symbol    string
	Bars      []OHLCV
	FetchedAt time.Time
}

// Empty reports whether the fetch returned no bars.
func (s *PriceSeries) Empty() bool {
	return s == nil || len(s.Bars) == 0
}

// Start returns the date of the first bar. Only valid when not Empty.
func (s *PriceSeries) Start() time.Time {
	return s.Bars[0].Time
}

// End returns the date of the last bar. Only valid when not Empty.
func (s *PriceSeries) End() time.Time {
	return s.Bars[len(s.Bars)-1].Time
}
