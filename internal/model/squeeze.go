package model

// StockStats is the flat per-ticker snapshot from the statistics source.
// Missing keys default to zero.
type StockStats struct {
	FloatShares         float64
	SharesOutstanding   float64
	MarketCap           float64
	ShortPercentOfFloat float64
}

// SqueezeLabel grades short-squeeze potential.
type SqueezeLabel string

const (
	SqueezeHigh     SqueezeLabel = "High Squeeze Potential"
	SqueezeModerate SqueezeLabel = "Moderate Squeeze Potential"
	SqueezeLow      SqueezeLabel = "Low Squeeze Potential"
	SqueezeNone     SqueezeLabel = "No Squeeze Potential"
	SqueezeError    SqueezeLabel = "Error"
)

// SqueezeCriteria records the signals behind a squeeze label.
type SqueezeCriteria struct {
	HighSqueeze           bool
	ModerateSqueeze       bool
	LowSqueeze            bool
	PriceWithinBands      bool
	DailyVolumeDecreasing bool
	ShortInterestPct      float64
	FTDPctOfFloat         float64
	PriceChangePct        float64
}

// SqueezeAssessment is the squeeze classifier output. Label Error carries
// zero-valued criteria.
type SqueezeAssessment struct {
	Label    SqueezeLabel
	Criteria SqueezeCriteria
}
