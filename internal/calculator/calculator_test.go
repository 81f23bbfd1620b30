package calculator

import (
	"math"
	"testing"
	"time"

	"CryptoStudy/internal/model"
)

var testStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// barsFromCloses builds one bar per day starting at testStart.
func barsFromCloses(closes []float64) []model.OHLCV {
	bars := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time:   testStart.AddDate(0, 0, i),
			Open:   c,
			High:   c,
			Low:    c,
			Close:  c,
			Volume: 1000,
		}
	}
	return bars
}

func day(i int) time.Time {
	return testStart.AddDate(0, 0, i)
}

func TestDailyReturns(t *testing.T) {
	bars := barsFromCloses([]float64{100, 110, 99, 108.9})
	rets := DailyReturns(bars)
	if len(rets) != len(bars)-1 {
		t.Fatalf("expected %d returns, got %d", len(bars)-1, len(rets))
	}
	if math.Abs(rets[0]-0.10) > 1e-12 {
		t.Errorf("first return: expected 0.10, got %v", rets[0])
	}
	if math.Abs(rets[1]+0.10) > 1e-12 {
		t.Errorf("second return: expected -0.10, got %v", rets[1])
	}
}

func TestDailyReturns_TooShort(t *testing.T) {
	if rets := DailyReturns(nil); rets != nil {
		t.Errorf("expected nil returns for empty series, got %v", rets)
	}
	if rets := DailyReturns(barsFromCloses([]float64{100})); rets != nil {
		t.Errorf("expected nil returns for single bar, got %v", rets)
	}
}

func TestInterpret_Boundaries(t *testing.T) {
	tests := []struct {
		value float64
		label string
	}{
		{0.0, VolLow},
		{0.2999, VolLow},
		{0.30, VolModerate},
		{0.45, VolModerate},
		{0.5999, VolModerate},
		{0.60, VolHigh},
		{1.2, VolHigh},
	}
	for _, tt := range tests {
		got := Interpret(&model.VolatilityPoint{Date: day(0), Value: tt.value})
		if got != tt.label {
			t.Errorf("value %.4f: expected %q, got %q", tt.value, tt.label, got)
		}
	}
	if got := Interpret(nil); got != VolNA {
		t.Errorf("nil point: expected %q, got %q", VolNA, got)
	}
}
