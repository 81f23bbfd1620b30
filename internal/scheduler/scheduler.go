package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"CryptoStudy/internal/analysis"
	"CryptoStudy/internal/collector"
	"CryptoStudy/internal/notifier"
	"CryptoStudy/internal/recorder"
	"CryptoStudy/internal/report"
	"CryptoStudy/internal/state"

	"github.com/robfig/cron/v3"
)

// ErrNoData is returned when the fetch produced an empty series; the pipeline
// halts before writing a report.
var ErrNoData = errors.New("no price data fetched")

// Options wires the scheduler's collaborators and study parameters.
type Options struct {
	Collector  *collector.Collector
	Params     analysis.Params
	RangeStart time.Time
	RangeEnd   time.Time // zero = current day at each run
	ReportPath string
	Recorder   recorder.Recorder
	State      *state.Manager
	Notifier   *notifier.TelegramNotifier
}

// Scheduler runs the study pipeline, either once or on a cron schedule.
type Scheduler struct {
	Cron *cron.Cron
	Ctx  context.Context
	opts Options

	mu          sync.Mutex
	lastSummary string
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, opts Options) *Scheduler {
	return &Scheduler{
		Cron: cron.New(cron.WithSeconds()),
		Ctx:  ctx,
		opts: opts,
	}
}

// Register adds the periodic study task.
func (s *Scheduler) Register(cronExpr string) error {
	if _, err := s.Cron.AddFunc(cronExpr, s.runTask); err != nil {
		return fmt.Errorf("register study task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

func (s *Scheduler) runTask() {
	if err := s.RunStudy(); err != nil {
		log.Printf("[ERROR] scheduled study: %v", err)
	}
}

// RunStudy executes the full pipeline: fetch, analyze, write the report,
// persist the run, notify.
func (s *Scheduler) RunStudy() error {
	log.Println("[INFO] running study")

	end := s.opts.RangeEnd
	if end.IsZero() {
		end = time.Now().UTC()
	}

	series, err := s.opts.Collector.Collect(s.opts.RangeStart, end)
	if err != nil {
		s.trySend(fmt.Sprintf("❌ data fetch failed: %v", err))
		return err
	}
	if series.Empty() {
		s.trySend(fmt.Sprintf("⚠️ no price data for %s, report skipped", s.opts.Collector.Symbol))
		return fmt.Errorf("%w for %s", ErrNoData, s.opts.Collector.Symbol)
	}

	res := analysis.Evaluate(series, s.opts.Params)

	text := report.Generate(res)
	if err := report.Write(s.opts.ReportPath, text); err != nil {
		return err
	}
	log.Printf("[INFO] report written to %s", s.opts.ReportPath)

	if err := s.opts.Recorder.RecordRun(&recorder.RunRecord{Result: res, ReportPath: s.opts.ReportPath}); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
	s.opts.State.RecordRun(res, s.opts.ReportPath)

	summary := report.FormatSummary(res, s.opts.ReportPath)
	s.mu.Lock()
	s.lastSummary = summary
	s.mu.Unlock()
	s.trySend(summary)
	return nil
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/run":
		if err := s.RunStudy(); err != nil {
			return fmt.Sprintf("study failed: %v", err)
		}
		return "" // summary already sent by the run
	case "/status":
		st := s.opts.State.Get()
		if st.RunCount == 0 {
			return "No study has run yet."
		}
		return fmt.Sprintf("Runs: %d\nLast run: %s\nSymbol: %s\nVolatility: %.2f (%s)\nReport: %s",
			st.RunCount, st.LastRunAt.Format("2006-01-02 15:04"),
			st.LastSymbol, st.LastVolatility, st.VolatilityLabel, st.LastReportPath)
	case "/report":
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.lastSummary == "" {
			return "No study has run yet."
		}
		return s.lastSummary
	default:
		return "Available commands:\n• /run\n• /status\n• /report"
	}
}

func (s *Scheduler) trySend(text string) {
	if s.opts.Notifier == nil || !s.opts.Notifier.Enabled() {
		return
	}
	if err := s.opts.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
