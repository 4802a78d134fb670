package strategy

import "TrendScout/internal/model"

// Trend classification windows and thresholds. Strict labels require both
// price and volume to move together over the longer window; soft labels
// fire on either signal over the shorter one.
const (
	strictWindow    = 5
	softWindow      = 3
	priceThreshold  = 0.02
	volumeThreshold = 0.10
)

// ClassifyTrend labels the recent direction of a series. Requires at least
// 2 points, else Neutral. First match wins, bullish checks first.
func ClassifyTrend(series *model.Series) model.TrendLabel {
	if series == nil || series.Len() < 2 {
		return model.TrendNeutral
	}

	priceStrict := priceChange(series, strictWindow)
	volumeStrict := volumeChange(series, strictWindow)
	priceSoft := priceChange(series, softWindow)
	volumeSoft := volumeChange(series, softWindow)

	switch {
	case priceStrict > priceThreshold && volumeStrict > volumeThreshold:
		return model.TrendStrictBullish
	case priceSoft > priceThreshold || volumeSoft > volumeThreshold:
		return model.TrendSoftBullish
	case priceStrict < -priceThreshold && volumeStrict < -volumeThreshold:
		return model.TrendStrictBearish
	case priceSoft < -priceThreshold || volumeSoft < -volumeThreshold:
		return model.TrendSoftBearish
	}
	return model.TrendNeutral
}

// priceChange returns the fractional close change from w points back to the
// last point. A window longer than the series, or a zero base, yields 0 so
// no trend triggers on it.
func priceChange(series *model.Series, w int) float64 {
	if series.Len() < w {
		return 0
	}
	base := series.At(-w).Close
	if base == 0 {
		return 0
	}
	return (series.Last().Close - base) / base
}

func volumeChange(series *model.Series, w int) float64 {
	if series.Len() < w {
		return 0
	}
	base := series.At(-w).Volume
	if base == 0 {
		return 0
	}
	return float64(series.Last().Volume-base) / float64(base)
}
