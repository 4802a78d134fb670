package calculator

import (
	"math"

	"TrendScout/internal/model"
)

const (
	bollingerWindow = 20
	bollingerStdDev = 2.0
)

// Bollinger computes the 20-day, 2-sigma Bollinger Bands at the last point:
// SMA of closes plus/minus two sample standard deviations. Unlike the
// moving averages, the bands are only meaningful over a full window, so
// both are unavailable when fewer than 20 points exist.
func Bollinger(series *model.Series) (upper, lower model.Value) {
	closes := series.Closes()
	if len(closes) < bollingerWindow {
		return model.Unavailable, model.Unavailable
	}

	window := closes[len(closes)-bollingerWindow:]
	sum := 0.0
	for _, c := range window {
		sum += c
	}
	sma := sum / float64(len(window))

	squareSum := 0.0
	for _, c := range window {
		diff := c - sma
		squareSum += diff * diff
	}
	// Sample standard deviation (n-1 divisor).
	std := math.Sqrt(squareSum / float64(len(window)-1))

	return model.SomeValue(sma + bollingerStdDev*std), model.SomeValue(sma - bollingerStdDev*std)
}
