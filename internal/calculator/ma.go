package calculator

import "TrendScout/internal/model"

// SMA computes the simple moving average of the trailing window. When fewer
// than window values exist, all available values are averaged down to
// minPeriods; below minPeriods the result is unavailable.
func SMA(values []float64, window, minPeriods int) model.Value {
	if window <= 0 || minPeriods <= 0 || len(values) < minPeriods {
		return model.Unavailable
	}
	start := len(values) - window
	if start < 0 {
		start = 0
	}
	sum := 0.0
	for _, v := range values[start:] {
		sum += v
	}
	return model.SomeValue(sum / float64(len(values)-start))
}

// MA50 returns the 50-day simple moving average of closes, degrading to the
// mean of whatever history exists.
func MA50(series *model.Series) model.Value {
	return SMA(series.Closes(), 50, 1)
}

// MA200 returns the 200-day simple moving average of closes.
func MA200(series *model.Series) model.Value {
	return SMA(series.Closes(), 200, 1)
}
