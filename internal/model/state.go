package model

import "time"

// RunState tracks study executions across process restarts.
type RunState struct {
	RunCount        int       `json:"run_count"`
	LastRunAt       time.Time `json:"last_run_at"`
	LastSymbol      string    `json:"last_symbol"`
	LastReportPath  string    `json:"last_report_path"`
	LastVolatility  float64   `json:"last_volatility"`
	VolatilityLabel string    `json:"volatility_label"`
	UpdatedAt       time.Time `json:"updated_at"`
}
