package recorder

import (
	"testing"
	"time"

	"CryptoStudy/internal/model"
)

func TestSQLiteRecorder_RecordRun(t *testing.T) {
	r, err := NewSQLiteRecorder(t.TempDir() + "/study.db")
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer r.Close()

	d := func(day int) time.Time {
		return time.Date(2024, 1, 1+day, 0, 0, 0, 0, time.UTC)
	}
	rec := &RunRecord{
		Result: &model.StudyResult{
			Symbol:           "ETH-USD",
			RangeStart:       d(0),
			RangeEnd:         d(99),
			BarCount:         100,
			Peak:             &model.PricePoint{Date: d(42), Price: 4800},
			BestGain:         &model.GainPoint{Date: d(10), Pct: 0.5},
			LatestVolatility: &model.VolatilityPoint{Date: d(99), Value: 0.62},
			VolatilityLabel:  "High",
			BearTimelines:    []model.Timeline{{Start: d(20), End: d(30)}},
			BullTimelines:    []model.Timeline{{Start: d(50), End: d(60)}, {Start: d(70), End: d(80)}},
		},
		ReportPath: "data/report.txt",
	}
	if err := r.RecordRun(rec); err != nil {
		t.Fatalf("record run: %v", err)
	}

	var runs, timelines int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM study_runs").Scan(&runs); err != nil {
		t.Fatalf("count runs: %v", err)
	}
	if runs != 1 {
		t.Errorf("expected 1 run row, got %d", runs)
	}
	if err := r.db.QueryRow("SELECT COUNT(*) FROM timelines").Scan(&timelines); err != nil {
		t.Fatalf("count timelines: %v", err)
	}
	if timelines != 3 {
		t.Errorf("expected 3 timeline rows, got %d", timelines)
	}
}

func TestSQLiteRecorder_NilStatistics(t *testing.T) {
	r, err := NewSQLiteRecorder(t.TempDir() + "/study.db")
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer r.Close()

	// a run over too little data has no peak, gain, or volatility
	rec := &RunRecord{
		Result: &model.StudyResult{
			Symbol:          "ETH-USD",
			VolatilityLabel: "N/A",
		},
		ReportPath: "data/report.txt",
	}
	if err := r.RecordRun(rec); err != nil {
		t.Fatalf("record run with nil statistics: %v", err)
	}
}
