package calculator

import (
	"math"
	"testing"
)

func TestRollingVolatility_ConstantSeries(t *testing.T) {
	closes := make([]float64, 33)
	for i := range closes {
		closes[i] = 100
	}
	points := RollingVolatility(barsFromCloses(closes), 30, Annualization)
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	for _, p := range points {
		if p.Value != 0 {
			t.Errorf("constant series: expected 0 volatility at %s, got %v", p.Date, p.Value)
		}
	}
	if !points[0].Date.Equal(day(30)) {
		t.Errorf("first point: expected %s, got %s", day(30), points[0].Date)
	}
}

func TestRollingVolatility_InsufficientData(t *testing.T) {
	if points := RollingVolatility(nil, 30, Annualization); points != nil {
		t.Errorf("expected nil for empty series, got %v", points)
	}
	closes := []float64{100, 101, 102}
	if points := RollingVolatility(barsFromCloses(closes), 30, Annualization); points != nil {
		t.Errorf("expected nil for short series, got %v", points)
	}
}

func TestRollingVolatility_SampleStdDev(t *testing.T) {
	// returns alternate +10%/-10%; each 2-return window has mean 0 and
	// sample variance 0.02
	bars := barsFromCloses([]float64{100, 110, 99, 108.9})
	points := RollingVolatility(bars, 2, 1.0)
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	want := math.Sqrt(0.02)
	for _, p := range points {
		if math.Abs(p.Value-want) > 1e-9 {
			t.Errorf("at %s: expected %v, got %v", p.Date, want, p.Value)
		}
	}
}
