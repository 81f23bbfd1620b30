package calculator

import (
	"testing"

	"CryptoStudy/internal/model"
)

// barsWithReturns builds a series whose daily return at index i+1 is rets[i].
func barsWithReturns(rets []float64) []model.OHLCV {
	closes := make([]float64, len(rets)+1)
	closes[0] = 100
	for i, r := range rets {
		closes[i+1] = closes[i] * (1 + r)
	}
	return barsFromCloses(closes)
}

func TestSegmentTrends_SustainedBearClosesAtSeriesEnd(t *testing.T) {
	// 16 returns of -5%: every 7-day window averages -0.05, giving 10
	// qualifying windows and a single run that stays open through the scan.
	rets := make([]float64, 16)
	for i := range rets {
		rets[i] = -0.05
	}
	bars := barsWithReturns(rets)

	bear, bull := SegmentTrends(bars, 7, 0.03)
	if len(bull) != 0 {
		t.Errorf("expected no bull timelines, got %d", len(bull))
	}
	if len(bear) != 1 {
		t.Fatalf("expected exactly 1 bear timeline, got %d", len(bear))
	}
	if !bear[0].Start.Equal(day(1)) {
		t.Errorf("expected start %s, got %s", day(1), bear[0].Start)
	}
	// run closes at the last data point, not the last window start
	if !bear[0].End.Equal(day(16)) {
		t.Errorf("expected end %s, got %s", day(16), bear[0].End)
	}
}

func TestSegmentTrends_GapSplitsTimelines(t *testing.T) {
	// window 2: a single non-qualifying window between two qualifying runs
	// must yield two disjoint timelines, never one merged range.
	bars := barsWithReturns([]float64{-0.05, -0.05, 0.10, -0.05, -0.05})

	bear, bull := SegmentTrends(bars, 2, 0.03)
	if len(bull) != 0 {
		t.Errorf("expected no bull timelines, got %d", len(bull))
	}
	if len(bear) != 2 {
		t.Fatalf("expected 2 bear timelines, got %d", len(bear))
	}
	if !bear[0].Start.Equal(day(1)) || !bear[0].End.Equal(day(1)) {
		t.Errorf("first timeline: expected %s..%s, got %s..%s",
			day(1), day(1), bear[0].Start, bear[0].End)
	}
	if !bear[1].Start.Equal(day(4)) || !bear[1].End.Equal(day(5)) {
		t.Errorf("second timeline: expected %s..%s, got %s..%s",
			day(4), day(5), bear[1].Start, bear[1].End)
	}
}

func TestSegmentTrends_SustainedBull(t *testing.T) {
	rets := make([]float64, 16)
	for i := range rets {
		rets[i] = 0.05
	}
	bear, bull := SegmentTrends(barsWithReturns(rets), 7, 0.03)
	if len(bear) != 0 {
		t.Errorf("expected no bear timelines, got %d", len(bear))
	}
	if len(bull) != 1 {
		t.Fatalf("expected 1 bull timeline, got %d", len(bull))
	}
	if !bull[0].Start.Equal(day(1)) || !bull[0].End.Equal(day(16)) {
		t.Errorf("expected %s..%s, got %s..%s", day(1), day(16), bull[0].Start, bull[0].End)
	}
}

func TestSegmentTrends_NeutralSeries(t *testing.T) {
	rets := make([]float64, 20)
	for i := range rets {
		rets[i] = 0.001
	}
	bear, bull := SegmentTrends(barsWithReturns(rets), 7, 0.03)
	if len(bear) != 0 || len(bull) != 0 {
		t.Errorf("expected no timelines for a flat series, got bear=%d bull=%d", len(bear), len(bull))
	}
}

func TestSegmentTrends_TooShort(t *testing.T) {
	bear, bull := SegmentTrends(barsWithReturns([]float64{-0.05, -0.05}), 7, 0.03)
	if bear != nil || bull != nil {
		t.Errorf("expected nil timelines when series is shorter than the window")
	}
}
