package notifier

import (
	"strings"
	"testing"

	"TrendScout/internal/model"
)

func TestCapBucket(t *testing.T) {
	tests := []struct {
		cap    float64
		bucket string
	}{
		{500e9, "Mega Cap"},
		{200e9, "Mega Cap"},
		{50e9, "Large Cap"},
		{5e9, "Mid Cap"},
		{1e9, "Small Cap"},
		{100e6, "Micro Cap"},
		{0, "Unknown Cap"},
	}
	for _, tt := range tests {
		if got := CapBucket(tt.cap); got != tt.bucket {
			t.Errorf("CapBucket(%g): expected %q, got %q", tt.cap, tt.bucket, got)
		}
	}
}

func TestGroupByTrend_SkipsNeutral(t *testing.T) {
	evals := []*model.Evaluation{
		{Symbol: "GME", Trend: model.TrendStrictBullish, Stats: model.StockStats{MarketCap: 5e9}},
		{Symbol: "AMC", Trend: model.TrendNeutral, Stats: model.StockStats{MarketCap: 2e9}},
		{Symbol: "DJT", Trend: model.TrendSoftBearish, Stats: model.StockStats{MarketCap: 100e6}},
	}
	grouped := GroupByTrend(evals)

	if got := grouped[model.TrendStrictBullish]["Mid Cap"]; len(got) != 1 || got[0].Symbol != "GME" {
		t.Errorf("unexpected strict bullish group: %+v", got)
	}
	if got := grouped[model.TrendSoftBearish]["Micro Cap"]; len(got) != 1 || got[0].Symbol != "DJT" {
		t.Errorf("unexpected soft bearish group: %+v", got)
	}
	for trend, buckets := range grouped {
		for _, entries := range buckets {
			for _, e := range entries {
				if e.Trend == model.TrendNeutral {
					t.Errorf("neutral ticker leaked into %s group", trend)
				}
			}
		}
	}
}

func TestFormatReport(t *testing.T) {
	evals := []*model.Evaluation{
		{
			Symbol: "GME",
			Trend:  model.TrendStrictBullish,
			Stats:  model.StockStats{MarketCap: 5e9},
			Series: model.NewSeries("GME", nil),
			Indicators: model.IndicatorSet{
				CurrentPrice:  model.SomeValue(25.50),
				PriceAtOpen:   model.SomeValue(24.00),
				PreviousClose: model.SomeValue(24.75),
			},
			Squeeze: model.SqueezeAssessment{
				Label:    model.SqueezeModerate,
				Criteria: model.SqueezeCriteria{ShortInterestPct: 18.5},
			},
		},
	}
	report := FormatReport(evals)

	for _, want := range []string{
		"--- Strict Bullish ---",
		"Mid Cap:",
		"GME",
		"Current Price: 25.50",
		"Moderate Squeeze Potential",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
	if !strings.Contains(report, "--- Soft Bearish ---\n(none)") {
		t.Errorf("expected empty sections to render (none):\n%s", report)
	}
}
