package collector

import (
	"fmt"
	"log"
	"time"

	"TrendScout/internal/calculator"
	"TrendScout/internal/model"
	"TrendScout/internal/strategy"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars  []model.PricePoint
	Stats model.StockStats
	Price float64
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ string, days int) ([]model.PricePoint, error) {
	if m.Bars != nil {
		return m.Bars, nil
	}
	return GenerateMockBars(m.Price, days), nil
}

func (m *MockFetcher) FetchStockStats(_ string) (model.StockStats, error) {
	return m.Stats, nil
}

// GenerateMockBars produces a gently drifting synthetic series around a
// base price.
func GenerateMockBars(basePrice float64, count int) []model.PricePoint {
	bars := make([]model.PricePoint, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.PricePoint{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector orchestrates data fetching and classification for a set of
// tickers. FTDRecords is the ingested fails-to-deliver ledger, keyed by
// symbol; it may be empty.
type Collector struct {
	Fetcher     Fetcher
	HistoryDays int
	FTDRecords  map[string]model.FTDRecord
}

// NewCollector creates a Collector over the given fetcher. historyDays is
// how much daily history each evaluation fetches.
func NewCollector(fetcher Fetcher, historyDays int, ftdRecords map[string]model.FTDRecord) *Collector {
	if historyDays <= 0 {
		historyDays = 250
	}
	if ftdRecords == nil {
		ftdRecords = map[string]model.FTDRecord{}
	}
	return &Collector{Fetcher: fetcher, HistoryDays: historyDays, FTDRecords: ftdRecords}
}

// Evaluate runs one full scan of one ticker: fetch, derive indicators,
// classify trend and squeeze. A source with no data for the symbol yields
// an evaluation with all-unavailable indicators and a Neutral trend; an
// error return means a transient fetch failure worth retrying next cycle.
func (c *Collector) Evaluate(symbol string) (*model.Evaluation, error) {
	bars, err := c.Fetcher.FetchDailyBars(symbol, c.HistoryDays)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars for %s: %w", symbol, err)
	}

	stats, err := c.Fetcher.FetchStockStats(symbol)
	if err != nil {
		// Stats are auxiliary: keep the evaluation going on zeroed stats.
		log.Printf("[WARN] fetch stock stats for %s: %v", symbol, err)
		stats = model.StockStats{}
	}

	series := model.NewSeries(symbol, bars)

	eval := &model.Evaluation{
		Symbol:      symbol,
		EvaluatedAt: time.Now(),
		Series:      series,
		Stats:       stats,
		Indicators:  calculator.Compute(series),
		Trend:       strategy.ClassifyTrend(series),
	}
	if rec, ok := c.FTDRecords[symbol]; ok {
		eval.FTD = &rec
	}
	eval.Squeeze = strategy.AssessSqueeze(series, eval.Indicators, &stats, eval.FTD, false)
	return eval, nil
}
