package calculator

import (
	"math"

	"TrendScout/internal/model"
)

const atrPeriod = 14

// ATR computes the 14-period Average True Range as an exponentially
// weighted moving average of the true range (alpha = 1/14, seeded with the
// first true range). The first point has no previous close, so its true
// range is simply high-low. Requires at least 14 points.
func ATR(series *model.Series) model.Value {
	points := series.Points
	if len(points) < atrPeriod {
		return model.Unavailable
	}

	alpha := 1.0 / float64(atrPeriod)
	var ewma float64
	for i, p := range points {
		tr := p.High - p.Low
		if i > 0 {
			prevClose := points[i-1].Close
			tr = math.Max(tr, math.Abs(p.High-prevClose))
			tr = math.Max(tr, math.Abs(p.Low-prevClose))
		}
		if i == 0 {
			ewma = tr
			continue
		}
		ewma = alpha*tr + (1-alpha)*ewma
	}
	return model.SomeValue(ewma)
}
