package model

import "time"

// PricePoint is a dated closing price, used for the historical peak.
type PricePoint struct {
	Date  time.Time
	Price float64
}

// GainPoint is a dated daily return. Pct is fractional (0.5 = +50%).
type GainPoint struct {
	Date time.Time
	Pct  float64
}

// VolatilityPoint is a dated annualized rolling volatility value.
type VolatilityPoint struct {
	Date  time.Time
	Value float64
}

// Timeline is a closed date range classified as a sustained trend.
// Start <= End always holds; timelines of the same polarity never overlap.
type Timeline struct {
	Start time.Time
	End   time.Time
}

// StudyResult aggregates everything one analysis run produces.
// Nil pointer fields mean "no data" for that statistic.
type StudyResult struct {
	Symbol     string
	RangeStart time.Time
	RangeEnd   time.Time
	BarCount   int

	// parameters the statistics were computed with, echoed in the report
	VolatilityWindow int
	TrendWindow      int
	TrendThreshold   float64

	Peak             *PricePoint
	BestGain         *GainPoint
	Volatility       []VolatilityPoint
	LatestVolatility *VolatilityPoint
	VolatilityLabel  string

	BearTimelines []Timeline
	BullTimelines []Timeline
}
