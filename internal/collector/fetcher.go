package collector

import (
	"time"

	"CryptoStudy/internal/model"
)

// Fetcher defines the interface for fetching historical market data.
type Fetcher interface {
	FetchDailyHistory(symbol string, start, end time.Time) ([]model.OHLCV, error)
	Name() string
}
