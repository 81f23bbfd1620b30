package state

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"CryptoStudy/internal/model"
)

// LoadState reads the run state from a JSON file. Returns a zero state if the
// file doesn't exist.
func LoadState(filePath string) (*model.RunState, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.RunState{}, nil
		}
		return nil, err
	}
	var st model.RunState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// SaveState writes the run state to a JSON file.
func SaveState(filePath string, st *model.RunState) error {
	st.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(filePath, data, 0644)
}

// Manager handles run-state updates with concurrency safety.
type Manager struct {
	mu       sync.Mutex
	state    *model.RunState
	filePath string
}

// NewManager creates a Manager, loading state from disk if present.
func NewManager(filePath string) (*Manager, error) {
	st, err := LoadState(filePath)
	if err != nil {
		return nil, err
	}
	return &Manager{state: st, filePath: filePath}, nil
}

// Get returns a copy of the current run state.
func (m *Manager) Get() model.RunState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.state
}

// RecordRun updates the state after a completed study run.
func (m *Manager) RecordRun(res *model.StudyResult, reportPath string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.RunCount++
	m.state.LastRunAt = time.Now()
	m.state.LastSymbol = res.Symbol
	m.state.LastReportPath = reportPath
	m.state.VolatilityLabel = res.VolatilityLabel
	if res.LatestVolatility != nil {
		m.state.LastVolatility = res.LatestVolatility.Value
	} else {
		m.state.LastVolatility = 0
	}

	if err := SaveState(m.filePath, m.state); err != nil {
		log.Printf("[ERROR] failed to save run state: %v", err)
	}
}
