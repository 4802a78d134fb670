package model

// Value is a float indicator result that may be unavailable. The zero value
// is unavailable; downstream code must check Valid before using Float64.
// This replaces sentinel defaults so missing data can never be mistaken for
// a real reading.
type Value struct {
	Float64 float64
	Valid   bool
}

// SomeValue wraps an available float.
func SomeValue(v float64) Value { return Value{Float64: v, Valid: true} }

// Unavailable is the missing-data marker.
var Unavailable = Value{}
