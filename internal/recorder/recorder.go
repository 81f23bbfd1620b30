package recorder

import "CryptoStudy/internal/model"

// RunRecord holds everything persisted for one study run.
type RunRecord struct {
	Result     *model.StudyResult
	ReportPath string
}

// Recorder persists study runs for later comparison across invocations.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Close() error
}
