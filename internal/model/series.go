package model

import (
	"sort"
	"time"
)

// PricePoint represents a single daily OHLCV bar.
type PricePoint struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// Series holds one ticker's price history, ordered ascending by date with a
// unique date index. Trading-day gaps are allowed; duplicate or out-of-order
// dates are not.
type Series struct {
	Symbol string
	Points []PricePoint
}

// NewSeries builds a Series from raw points: sorts ascending by date and
// drops duplicate dates, keeping the first occurrence.
func NewSeries(symbol string, points []PricePoint) *Series {
	sorted := make([]PricePoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time.Before(sorted[j].Time) })

	deduped := sorted[:0]
	for _, p := range sorted {
		if len(deduped) > 0 && sameDay(deduped[len(deduped)-1].Time, p.Time) {
			continue
		}
		deduped = append(deduped, p)
	}
	return &Series{Symbol: symbol, Points: deduped}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// Len returns the number of points in the series.
func (s *Series) Len() int { return len(s.Points) }

// Empty reports whether the series has no points.
func (s *Series) Empty() bool { return len(s.Points) == 0 }

// Last returns the most recent point. The series must be non-empty.
func (s *Series) Last() PricePoint { return s.Points[len(s.Points)-1] }

// At returns the point at a negative offset from the end: At(-1) is the last
// point, At(-2) the one before it.
func (s *Series) At(offset int) PricePoint { return s.Points[len(s.Points)+offset] }

// Closes returns all close prices in date order.
func (s *Series) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}

// Volumes returns all volumes in date order.
func (s *Series) Volumes() []int64 {
	vols := make([]int64, len(s.Points))
	for i, p := range s.Points {
		vols[i] = p.Volume
	}
	return vols
}
