package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		BaseURL   string `yaml:"base_url"`
		APIKey    string `yaml:"api_key"`
		Symbol    string `yaml:"symbol"`
		StartDate string `yaml:"start_date"`
		EndDate   string `yaml:"end_date"` // empty = today
	} `yaml:"data_source"`
	Analysis struct {
		VolatilityWindow int     `yaml:"volatility_window"`
		TrendWindow      int     `yaml:"trend_window"`
		TrendThreshold   float64 `yaml:"trend_threshold"`
	} `yaml:"analysis"`
	Report struct {
		Path string `yaml:"path"`
	} `yaml:"report"`
	Schedule struct {
		Cron string `yaml:"cron"` // empty = run once and exit
	} `yaml:"schedule"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	StateFile string `yaml:"state_file"`
	Proxy     string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("STUDY_SYMBOL"); v != "" {
		cfg.DataSource.Symbol = v
	}
	if v := os.Getenv("STUDY_START_DATE"); v != "" {
		cfg.DataSource.StartDate = v
	}
	if v := os.Getenv("STUDY_END_DATE"); v != "" {
		cfg.DataSource.EndDate = v
	}
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("REPORT_PATH"); v != "" {
		cfg.Report.Path = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("CRON_SCHEDULE"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataSource.Symbol == "" {
		cfg.DataSource.Symbol = "ETH-USD"
	}
	if cfg.DataSource.StartDate == "" {
		cfg.DataSource.StartDate = "2015-08-07" // ETH launch
	}
	if cfg.Analysis.VolatilityWindow == 0 {
		cfg.Analysis.VolatilityWindow = 30
	}
	if cfg.Analysis.TrendWindow == 0 {
		cfg.Analysis.TrendWindow = 7
	}
	if cfg.Analysis.TrendThreshold == 0 {
		cfg.Analysis.TrendThreshold = 0.03
	}
	if cfg.Report.Path == "" {
		cfg.Report.Path = "data/report.txt"
	}
	if cfg.StateFile == "" {
		cfg.StateFile = "data/run_state.json"
	}

	return cfg, nil
}

// DateRange parses the configured acquisition range. An empty end date means
// the current day.
func (c *Config) DateRange() (start, end time.Time, err error) {
	start, err = time.Parse(dateLayout, c.DataSource.StartDate)
	if err != nil {
		return start, end, fmt.Errorf("parse start_date: %w", err)
	}
	if c.DataSource.EndDate == "" {
		return start, time.Now().UTC(), nil
	}
	end, err = time.Parse(dateLayout, c.DataSource.EndDate)
	if err != nil {
		return start, end, fmt.Errorf("parse end_date: %w", err)
	}
	return start, end, nil
}

// Validate checks that all required fields are set and consistent.
func (c *Config) Validate() error {
	if c.DataSource.Symbol == "" {
		return fmt.Errorf("data_source.symbol is required")
	}
	if c.Report.Path == "" {
		return fmt.Errorf("report.path is required")
	}
	if c.Analysis.VolatilityWindow <= 0 {
		return fmt.Errorf("analysis.volatility_window must be positive")
	}
	if c.Analysis.TrendWindow <= 0 {
		return fmt.Errorf("analysis.trend_window must be positive")
	}
	if c.Analysis.TrendThreshold <= 0 {
		return fmt.Errorf("analysis.trend_threshold must be positive")
	}
	start, end, err := c.DateRange()
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("end_date %s is before start_date %s", c.DataSource.EndDate, c.DataSource.StartDate)
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	return nil
}
