package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"CryptoStudy/internal/analysis"
	"CryptoStudy/internal/collector"
	"CryptoStudy/internal/config"
	"CryptoStudy/internal/notifier"
	"CryptoStudy/internal/recorder"
	"CryptoStudy/internal/scheduler"
	"CryptoStudy/internal/state"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] CryptoStudy starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewAPIFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init collector
	col := collector.NewCollector(fetcher, cfg.DataSource.Symbol)

	// Init run-state manager
	sm, err := state.NewManager(cfg.StateFile)
	if err != nil {
		log.Fatalf("[FATAL] init state manager: %v", err)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init Telegram notifier (optional)
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Study parameters and date range
	params := analysis.DefaultParams()
	params.VolatilityWindow = cfg.Analysis.VolatilityWindow
	params.TrendWindow = cfg.Analysis.TrendWindow
	params.TrendThreshold = cfg.Analysis.TrendThreshold

	rangeStart, rangeEnd, err := cfg.DateRange()
	if err != nil {
		log.Fatalf("[FATAL] date range: %v", err)
	}
	if cfg.DataSource.EndDate == "" {
		// open-ended range: resolve "today" at each run, not at startup
		rangeEnd = time.Time{}
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, scheduler.Options{
		Collector:  col,
		Params:     params,
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
		ReportPath: cfg.Report.Path,
		Recorder:   rec,
		State:      sm,
		Notifier:   tn,
	})

	// Always run once on start
	runErr := sched.RunStudy()

	if cfg.Schedule.Cron == "" {
		if runErr != nil {
			if errors.Is(runErr, scheduler.ErrNoData) {
				log.Println("[WARN] could not fetch price data, exiting")
				return
			}
			log.Fatalf("[FATAL] study: %v", runErr)
		}
		log.Println("[INFO] CryptoStudy finished")
		return
	}

	// Resident mode: keep re-running on the configured schedule
	if runErr != nil {
		log.Printf("[ERROR] initial study: %v", runErr)
	}
	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if tn.Enabled() {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	log.Println("[INFO] CryptoStudy is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] CryptoStudy stopped")
}
