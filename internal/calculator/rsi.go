package calculator

import "TrendScout/internal/model"

const rsiPeriod = 14

// RSI computes the 14-period RSI using exponentially weighted average gain
// and loss (alpha = 1/14, seeded with the first delta). Requires at least
// 15 points (14 deltas). When the average loss at the last point is zero
// there is no loss data to form a relative strength from, so the result is
// unavailable rather than a saturated 100.
func RSI(series *model.Series) model.Value {
	closes := series.Closes()
	if len(closes) < rsiPeriod+1 {
		return model.Unavailable
	}

	alpha := 1.0 / float64(rsiPeriod)
	var avgGain, avgLoss float64
	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if delta > 0 {
			gain = delta
		} else {
			loss = -delta
		}
		if i == 1 {
			avgGain = gain
			avgLoss = loss
			continue
		}
		avgGain = alpha*gain + (1-alpha)*avgGain
		avgLoss = alpha*loss + (1-alpha)*avgLoss
	}

	if avgLoss == 0 {
		return model.Unavailable
	}
	rs := avgGain / avgLoss
	return model.SomeValue(100.0 - 100.0/(1.0+rs))
}
