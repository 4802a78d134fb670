package calculator

import "TrendScout/internal/model"

// Compute derives the full indicator battery from a series, evaluated at
// its last point. Each indicator degrades to unavailable on its own when
// history is insufficient; an empty series yields all fields unavailable.
func Compute(series *model.Series) model.IndicatorSet {
	if series == nil || series.Empty() {
		return model.IndicatorSet{}
	}

	ind := model.IndicatorSet{
		CurrentPrice: model.SomeValue(series.Last().Close),
		PriceAtOpen:  model.SomeValue(series.Last().Open),
		MA50:         MA50(series),
		MA200:        MA200(series),
		RSI:          RSI(series),
		ATR:          ATR(series),
	}
	if series.Len() >= 2 {
		ind.PreviousClose = model.SomeValue(series.At(-2).Close)
	}
	ind.BollingerUpper, ind.BollingerLower = Bollinger(series)
	return ind
}
