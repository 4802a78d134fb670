package model

import "time"

// Evaluation is the full result of one scan of one ticker: the series that
// was fetched plus everything derived from it.
type Evaluation struct {
	Symbol      string
	EvaluatedAt time.Time
	Series      *Series
	Stats       StockStats
	Indicators  IndicatorSet
	Trend       TrendLabel
	Squeeze     SqueezeAssessment
	FTD         *FTDRecord // nil when no FTD data was ingested for the symbol
}

// VolumeToday returns the most recent volume, unavailable-style: ok is
// false when the series has no points.
func (e *Evaluation) VolumeToday() (int64, bool) {
	if e.Series == nil || e.Series.Empty() {
		return 0, false
	}
	return e.Series.Last().Volume, true
}

// VolumeYesterday returns the second most recent volume.
func (e *Evaluation) VolumeYesterday() (int64, bool) {
	if e.Series == nil || e.Series.Len() < 2 {
		return 0, false
	}
	return e.Series.At(-2).Volume, true
}
