package report

import (
	"os"
	"strings"
	"testing"
	"time"

	"CryptoStudy/internal/calculator"
	"CryptoStudy/internal/model"
)

func sampleResult() *model.StudyResult {
	d := func(day int) time.Time {
		return time.Date(2024, 1, 1+day, 0, 0, 0, 0, time.UTC)
	}
	return &model.StudyResult{
		Symbol:           "ETH-USD",
		RangeStart:       d(0),
		RangeEnd:         d(99),
		BarCount:         100,
		VolatilityWindow: 30,
		TrendWindow:      7,
		TrendThreshold:   0.03,
		Peak:             &model.PricePoint{Date: d(42), Price: 4812.087},
		BestGain:         &model.GainPoint{Date: d(10), Pct: 0.5},
		LatestVolatility: &model.VolatilityPoint{Date: d(99), Value: 0.62},
		VolatilityLabel:  calculator.VolHigh,
		BearTimelines:    []model.Timeline{{Start: d(20), End: d(30)}},
		BullTimelines:    nil,
	}
}

func TestGenerate_Sections(t *testing.T) {
	text := Generate(sampleResult())

	for _, want := range []string{
		"ETH-USD Historical Data Analysis Report",
		"Data Range: 2024-01-01 to 2024-04-09",
		"1. Peak Price:",
		"Peak Price (Close): 4812.09 USD",
		"2. Best Single-Day Gain:",
		"Highest Single-Day Gain: 50.00%",
		"3. Volatility Index (last 30 days, annualized):",
		"Value: 0.62",
		"High Volatility",
		"4. Bear Timelines (average daily drop > 3.0% over 7 days):",
		"- From 2024-01-21 to 2024-01-31",
		"5. Bull Timelines (average daily rise > 3.0% over 7 days):",
		"No significant bull timelines identified",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q\n---\n%s", want, text)
		}
	}
}

func TestGenerate_InsufficientVolatility(t *testing.T) {
	res := sampleResult()
	res.Volatility = nil
	res.LatestVolatility = nil
	res.VolatilityLabel = calculator.VolNA

	text := Generate(res)
	if !strings.Contains(text, "N/A (not enough data for calculation)") {
		t.Errorf("expected not-enough-data line, got:\n%s", text)
	}
	if !strings.Contains(text, "Interpretation: N/A") {
		t.Errorf("expected N/A interpretation, got:\n%s", text)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(sampleResult())
	b := Generate(sampleResult())
	if a != b {
		t.Error("expected byte-identical reports for identical results")
	}
}

func TestFormatGain(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{0.5, "50.00%"},
		{0.1234, "12.34%"},
		{-0.05, "-5.00%"},
		{0, "0.00%"},
	}
	for _, tt := range tests {
		if got := FormatGain(tt.pct); got != tt.want {
			t.Errorf("FormatGain(%v): expected %q, got %q", tt.pct, tt.want, got)
		}
	}
}

func TestWrite(t *testing.T) {
	path := t.TempDir() + "/out/report.txt"
	if err := Write(path, "hello\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "hello\n" {
		t.Errorf("expected %q, got %q", "hello\n", string(data))
	}
}
