package model

// FTDRecord is the worst-case fails-to-deliver aggregate for one ticker:
// the largest quantity seen across the ingested file, with the settlement
// date and price it was reported at.
type FTDRecord struct {
	Symbol         string
	MaxFTD         int64
	SettlementDate string
	Price          float64
}
