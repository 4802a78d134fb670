package model

// TrendLabel classifies recent price/volume behavior.
type TrendLabel string

const (
	TrendStrictBullish TrendLabel = "Strict Bullish"
	TrendSoftBullish   TrendLabel = "Soft Bullish"
	TrendStrictBearish TrendLabel = "Strict Bearish"
	TrendSoftBearish   TrendLabel = "Soft Bearish"
	TrendNeutral       TrendLabel = "Neutral"
)
