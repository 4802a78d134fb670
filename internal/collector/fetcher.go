package collector

import "TrendScout/internal/model"

// Fetcher defines the interface for fetching market data. An empty bar
// slice means the source has no data for the symbol, which is not an
// error; errors are reserved for transient fetch failures.
type Fetcher interface {
	FetchDailyBars(symbol string, days int) ([]model.PricePoint, error)
	FetchStockStats(symbol string) (model.StockStats, error)
	Name() string
}
