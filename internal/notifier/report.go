package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"TrendScout/internal/model"
)

// Market-cap bucket thresholds, in dollars.
const (
	megaCap  = 200e9
	largeCap = 10e9
	midCap   = 2e9
	smallCap = 300e6
)

// trendOrder fixes the report section order. Neutral tickers are not
// reported.
var trendOrder = []model.TrendLabel{
	model.TrendStrictBullish,
	model.TrendSoftBullish,
	model.TrendStrictBearish,
	model.TrendSoftBearish,
}

var capBucketOrder = []string{"Mega Cap", "Large Cap", "Mid Cap", "Small Cap", "Micro Cap", "Unknown Cap"}

// CapBucket names the market-cap bucket for a cap in dollars.
func CapBucket(marketCap float64) string {
	switch {
	case marketCap >= megaCap:
		return "Mega Cap"
	case marketCap >= largeCap:
		return "Large Cap"
	case marketCap >= midCap:
		return "Mid Cap"
	case marketCap >= smallCap:
		return "Small Cap"
	case marketCap > 0:
		return "Micro Cap"
	default:
		return "Unknown Cap"
	}
}

// GroupByTrend buckets non-neutral evaluations by trend label, then by
// market-cap bucket. Order within a bucket follows input order.
func GroupByTrend(evals []*model.Evaluation) map[model.TrendLabel]map[string][]*model.Evaluation {
	grouped := make(map[model.TrendLabel]map[string][]*model.Evaluation)
	for _, trend := range trendOrder {
		grouped[trend] = make(map[string][]*model.Evaluation)
	}
	for _, e := range evals {
		buckets, ok := grouped[e.Trend]
		if !ok {
			continue
		}
		bucket := CapBucket(e.Stats.MarketCap)
		buckets[bucket] = append(buckets[bucket], e)
	}
	return grouped
}

// FormatReport renders the grouped console report for one scan cycle.
func FormatReport(evals []*model.Evaluation) string {
	grouped := GroupByTrend(evals)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("=== TrendScout scan | %s ===\n", time.Now().Format("2006-01-02 15:04:05")))

	for _, trend := range trendOrder {
		b.WriteString(fmt.Sprintf("\n--- %s ---\n", trend))
		buckets := grouped[trend]
		empty := true
		for _, bucket := range capBucketOrder {
			entries := buckets[bucket]
			if len(entries) == 0 {
				continue
			}
			empty = false
			b.WriteString(fmt.Sprintf("%s:\n", bucket))
			for _, e := range entries {
				b.WriteString("  " + formatTickerLine(e) + "\n")
			}
		}
		if empty {
			b.WriteString("(none)\n")
		}
	}
	return b.String()
}

func formatTickerLine(e *model.Evaluation) string {
	var b strings.Builder
	b.WriteString(e.Symbol)
	b.WriteString(" | Current Price: " + formatPrice(e.Indicators.CurrentPrice))
	b.WriteString(" | Open: " + formatPrice(e.Indicators.PriceAtOpen))
	b.WriteString(" | Previous Close: " + formatPrice(e.Indicators.PreviousClose))
	if e.Stats.MarketCap > 0 {
		b.WriteString(" | Market Cap: $" + humanize.Commaf(e.Stats.MarketCap))
	}
	if v, ok := e.VolumeToday(); ok {
		b.WriteString(" | Volume: " + humanize.Comma(v))
	}
	b.WriteString(" | Squeeze: " + string(e.Squeeze.Label))
	if e.Squeeze.Label != model.SqueezeError {
		c := e.Squeeze.Criteria
		b.WriteString(fmt.Sprintf(" (SI %.1f%%, FTD %.1f%%, Chg %.2f%%)",
			c.ShortInterestPct, c.FTDPctOfFloat, c.PriceChangePct))
	}
	return b.String()
}

func formatPrice(v model.Value) string {
	if !v.Valid {
		return "NA"
	}
	return fmt.Sprintf("%.2f", v.Float64)
}
