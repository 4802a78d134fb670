package model

// IndicatorSet holds all computed technical indicators for one evaluation
// of a series, taken at its last point. Each field is independently
// unavailable when its minimum-data requirement is unmet; partial results
// are normal.
type IndicatorSet struct {
	CurrentPrice   Value
	PriceAtOpen    Value
	PreviousClose  Value
	MA50           Value
	MA200          Value
	RSI            Value
	BollingerUpper Value
	BollingerLower Value
	ATR            Value
}
