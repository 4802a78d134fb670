package strategy

import "TrendScout/internal/model"

// Squeeze tier thresholds, in percent.
const (
	highShortInterest     = 15.0
	moderateShortInterest = 10.0
	highFTDPct            = 5.0
	moderateFTDPct        = 3.0
)

// AssessSqueeze grades short-squeeze potential from short interest, FTD
// pressure, volume trend, and Bollinger state. ftdRec may be nil (zero FTD
// signal). shortVolumeSpike is a caller-supplied signal with no in-house
// source yet; callers without one pass false, which keeps the low tier
// reachable and nothing else.
//
// Data-quality failures (nil stats, fewer than 2 points) come back as the
// Error label with empty criteria, never as a panic or error.
func AssessSqueeze(series *model.Series, ind model.IndicatorSet, stats *model.StockStats, ftdRec *model.FTDRecord, shortVolumeSpike bool) model.SqueezeAssessment {
	if series == nil || stats == nil || series.Len() < 2 {
		return model.SqueezeAssessment{Label: model.SqueezeError}
	}

	shortInterestPct := stats.ShortPercentOfFloat * 100

	ftdPctOfFloat := 0.0
	if ftdRec != nil && stats.FloatShares > 0 {
		ftdPctOfFloat = float64(ftdRec.MaxFTD) / stats.FloatShares * 100
	}

	volumeDecreasing := dailyVolumeDecreasing(series)

	currentPrice := series.Last().Close
	previousPrice := series.At(-2).Close
	priceChangePct := 0.0
	if previousPrice != 0 {
		priceChangePct = (currentPrice - previousPrice) / previousPrice * 100
	}

	priceWithinBands := ind.BollingerUpper.Valid && ind.BollingerLower.Valid &&
		ind.BollingerLower.Float64 < currentPrice && currentPrice < ind.BollingerUpper.Float64

	high := shortInterestPct > highShortInterest && volumeDecreasing && ftdPctOfFloat > highFTDPct
	moderate := (shortInterestPct >= moderateShortInterest && shortInterestPct <= highShortInterest) ||
		ftdPctOfFloat > moderateFTDPct || volumeDecreasing
	low := shortInterestPct < moderateShortInterest && ftdPctOfFloat <= moderateFTDPct && !shortVolumeSpike

	criteria := model.SqueezeCriteria{
		HighSqueeze:           high,
		ModerateSqueeze:       moderate,
		LowSqueeze:            low,
		PriceWithinBands:      priceWithinBands,
		DailyVolumeDecreasing: volumeDecreasing,
		ShortInterestPct:      shortInterestPct,
		FTDPctOfFloat:         ftdPctOfFloat,
		PriceChangePct:        priceChangePct,
	}

	var label model.SqueezeLabel
	switch {
	case high && priceWithinBands && priceChangePct > 3:
		label = model.SqueezeHigh
	case moderate || (priceWithinBands && priceChangePct > 1):
		label = model.SqueezeModerate
	case low:
		label = model.SqueezeLow
	default:
		label = model.SqueezeNone
	}

	return model.SqueezeAssessment{Label: label, Criteria: criteria}
}

// dailyVolumeDecreasing reports whether volume strictly fell on each of the
// last 5 day-over-day comparisons. Needs at least 6 points, else false.
func dailyVolumeDecreasing(series *model.Series) bool {
	if series.Len() < 6 {
		return false
	}
	for i := 1; i <= 5; i++ {
		if series.At(-i).Volume >= series.At(-i-1).Volume {
			return false
		}
	}
	return true
}
