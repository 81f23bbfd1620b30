package collector

import (
	"fmt"
	"log"
	"time"

	"CryptoStudy/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	Bars  []model.OHLCV
	Err   error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyHistory(_ string, start, end time.Time) ([]model.OHLCV, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	return generateMockBars(m.Price, start, end), nil
}

func generateMockBars(basePrice float64, start, end time.Time) []model.OHLCV {
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 0 {
		return nil
	}
	bars := make([]model.OHLCV, days)
	for i := 0; i < days; i++ {
		p := basePrice * (1 + float64(i-days/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector fetches the historical series for one symbol.
type Collector struct {
	Fetcher Fetcher
	Symbol  string
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, symbol string) *Collector {
	return &Collector{Fetcher: fetcher, Symbol: symbol}
}

// Collect fetches the daily history and assembles the price series. An empty
// series is returned without error; the caller halts the pipeline on it.
func (c *Collector) Collect(start, end time.Time) (*model.PriceSeries, error) {
	bars, err := c.Fetcher.FetchDailyHistory(c.Symbol, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch daily history: %w", err)
	}

	series := &model.PriceSeries{
		Symbol:    c.Symbol,
		Bars:      bars,
		FetchedAt: time.Now(),
	}
	if series.Empty() {
		log.Printf("[WARN] no data returned for %s", c.Symbol)
		return series, nil
	}
	log.Printf("[INFO] fetched %d bars for %s (%s to %s)",
		len(bars), c.Symbol,
		series.Start().Format("2006-01-02"), series.End().Format("2006-01-02"))
	return series, nil
}
