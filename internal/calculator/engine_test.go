package calculator

import (
	"math"
	"testing"
	"time"

	"TrendScout/internal/model"
)

func seriesFromCloses(closes []float64) *model.Series {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	points := make([]model.PricePoint, len(closes))
	for i, c := range closes {
		points[i] = model.PricePoint{
			Time:   base.AddDate(0, 0, i),
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1000,
		}
	}
	return model.NewSeries("TEST", points)
}

func constantCloses(n int, price float64) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = price
	}
	return closes
}

func TestCompute_EmptySeries(t *testing.T) {
	ind := Compute(seriesFromCloses(nil))
	if ind.CurrentPrice.Valid || ind.MA50.Valid || ind.MA200.Valid ||
		ind.RSI.Valid || ind.ATR.Valid || ind.BollingerUpper.Valid {
		t.Errorf("expected all fields unavailable for empty series, got %+v", ind)
	}
}

func TestCompute_PreviousCloseRequiresTwoPoints(t *testing.T) {
	ind := Compute(seriesFromCloses([]float64{100}))
	if !ind.CurrentPrice.Valid {
		t.Error("expected current price available for 1-point series")
	}
	if ind.PreviousClose.Valid {
		t.Error("expected previous close unavailable for 1-point series")
	}

	ind = Compute(seriesFromCloses([]float64{100, 102}))
	if !ind.PreviousClose.Valid || ind.PreviousClose.Float64 != 100 {
		t.Errorf("expected previous close 100, got %+v", ind.PreviousClose)
	}
	if ind.CurrentPrice.Float64 != 102 {
		t.Errorf("expected current price 102, got %+v", ind.CurrentPrice)
	}
}

func TestSMA_DegradesToAvailableHistory(t *testing.T) {
	// 3 points against a 50-window: mean of all 3.
	got := SMA([]float64{10, 20, 30}, 50, 1)
	if !got.Valid || got.Float64 != 20 {
		t.Errorf("expected SMA 20, got %+v", got)
	}

	// Full window uses only the trailing values.
	got = SMA([]float64{100, 1, 1, 1}, 3, 1)
	if !got.Valid || got.Float64 != 1 {
		t.Errorf("expected trailing-3 SMA 1, got %+v", got)
	}

	if SMA(nil, 50, 1).Valid {
		t.Error("expected SMA unavailable for empty input")
	}
}

func TestRSI_NoLossesIsUnavailable(t *testing.T) {
	// Strictly increasing closes: avg loss is 0, RSI must be unavailable
	// rather than a misleading 100.
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	if RSI(seriesFromCloses(closes)).Valid {
		t.Error("expected RSI unavailable when there are no losses")
	}
}

func TestRSI_MinimumPoints(t *testing.T) {
	// Alternate up/down so both gains and losses exist.
	alternating := func(n int) []float64 {
		closes := make([]float64, n)
		for i := range closes {
			if i%2 == 0 {
				closes[i] = 100
			} else {
				closes[i] = 104
			}
		}
		return closes
	}

	if RSI(seriesFromCloses(alternating(14))).Valid {
		t.Error("expected RSI unavailable at 14 points")
	}
	got := RSI(seriesFromCloses(alternating(15)))
	if !got.Valid {
		t.Fatal("expected RSI available at 15 points")
	}
	if got.Float64 < 0 || got.Float64 > 100 {
		t.Errorf("RSI out of range: %f", got.Float64)
	}
}

func TestATR_MinimumPoints(t *testing.T) {
	if ATR(seriesFromCloses(constantCloses(13, 100))).Valid {
		t.Error("expected ATR unavailable at 13 points")
	}
	got := ATR(seriesFromCloses(constantCloses(14, 100)))
	if !got.Valid {
		t.Fatal("expected ATR available at 14 points")
	}
	// High-low is a constant 2 in the fixture, so the EWMA is exactly 2.
	if math.Abs(got.Float64-2) > 1e-9 {
		t.Errorf("expected ATR 2, got %f", got.Float64)
	}
}

func TestBollinger_RequiresFullWindow(t *testing.T) {
	upper, lower := Bollinger(seriesFromCloses(constantCloses(19, 100)))
	if upper.Valid || lower.Valid {
		t.Error("expected bands unavailable below 20 points")
	}
}

func TestBollinger_ConstantSeriesCollapses(t *testing.T) {
	// Zero standard deviation: both bands equal the SMA.
	upper, lower := Bollinger(seriesFromCloses(constantCloses(20, 100)))
	if !upper.Valid || !lower.Valid {
		t.Fatal("expected bands available at 20 points")
	}
	if upper.Float64 != 100 || lower.Float64 != 100 {
		t.Errorf("expected collapsed bands at 100, got upper=%f lower=%f", upper.Float64, lower.Float64)
	}
}

func TestBollinger_Bands(t *testing.T) {
	closes := constantCloses(20, 100)
	closes[19] = 120
	upper, lower := Bollinger(seriesFromCloses(closes))
	if !upper.Valid || !lower.Valid {
		t.Fatal("expected bands available")
	}
	sma := (19*100.0 + 120) / 20
	if upper.Float64 <= sma || lower.Float64 >= sma {
		t.Errorf("expected bands around SMA %f, got upper=%f lower=%f", sma, upper.Float64, lower.Float64)
	}
	if math.Abs((upper.Float64+lower.Float64)/2-sma) > 1e-9 {
		t.Errorf("bands not centered on SMA: upper=%f lower=%f", upper.Float64, lower.Float64)
	}
}

func TestCompute_ShortSeriesPartialResults(t *testing.T) {
	// 10 points: MAs degrade gracefully, RSI/ATR/Bollinger do not.
	ind := Compute(seriesFromCloses(constantCloses(10, 50)))
	if !ind.MA50.Valid || !ind.MA200.Valid {
		t.Error("expected MAs available for short series")
	}
	if ind.RSI.Valid || ind.ATR.Valid || ind.BollingerUpper.Valid || ind.BollingerLower.Valid {
		t.Error("expected RSI/ATR/Bollinger unavailable for 10-point series")
	}
}
