package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"CryptoStudy/internal/model"
)

const recordDateLayout = "2006-01-02"

// SQLiteRecorder persists study runs to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external tooling can read while a scheduled run writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS study_runs (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp         INTEGER NOT NULL,
			symbol            TEXT NOT NULL,
			range_start       TEXT,
			range_end         TEXT,
			bar_count         INTEGER,
			peak_date         TEXT,
			peak_price        REAL,
			best_gain_date    TEXT,
			best_gain_pct     REAL,
			latest_volatility REAL,
			volatility_label  TEXT,
			bear_count        INTEGER,
			bull_count        INTEGER,
			report_path       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON study_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS timelines (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id     INTEGER NOT NULL REFERENCES study_runs(id),
			polarity   TEXT NOT NULL,
			start_date TEXT NOT NULL,
			end_date   TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_timelines_run ON timelines(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun inserts the run row plus one row per timeline, atomically.
func (r *SQLiteRecorder) RecordRun(rec *RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := rec.Result

	var peakDate, gainDate, vol interface{}
	var peakPrice, gainPct interface{}
	if res.Peak != nil {
		peakDate = res.Peak.Date.Format(recordDateLayout)
		peakPrice = res.Peak.Price
	}
	if res.BestGain != nil {
		gainDate = res.BestGain.Date.Format(recordDateLayout)
		gainPct = res.BestGain.Pct
	}
	if res.LatestVolatility != nil {
		vol = res.LatestVolatility.Value
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`INSERT INTO study_runs
		(timestamp, symbol, range_start, range_end, bar_count,
		 peak_date, peak_price, best_gain_date, best_gain_pct,
		 latest_volatility, volatility_label, bear_count, bull_count, report_path)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), res.Symbol,
		res.RangeStart.Format(recordDateLayout), res.RangeEnd.Format(recordDateLayout),
		res.BarCount, peakDate, peakPrice, gainDate, gainPct,
		vol, res.VolatilityLabel,
		len(res.BearTimelines), len(res.BullTimelines), rec.ReportPath,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}

	insert := func(polarity string, timelines []model.Timeline) error {
		for _, tl := range timelines {
			if _, err := tx.Exec(`INSERT INTO timelines (run_id, polarity, start_date, end_date)
				VALUES (?,?,?,?)`,
				runID, polarity,
				tl.Start.Format(recordDateLayout), tl.End.Format(recordDateLayout),
			); err != nil {
				return fmt.Errorf("insert %s timeline: %w", polarity, err)
			}
		}
		return nil
	}
	if err := insert("bear", res.BearTimelines); err != nil {
		return err
	}
	if err := insert("bull", res.BullTimelines); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
