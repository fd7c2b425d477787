package chart

import (
	"math"
	"time"
)

// Extent returns [min, max] of accessor over data, skipping NaN values.
// With nothing to measure both bounds are NaN.
func Extent[T any](data []T, accessor func(T) float64) [2]float64 {
	lo, hi := math.NaN(), math.NaN()
	for _, d := range data {
		v := accessor(d)
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(lo) || v < lo {
			lo = v
		}
		if math.IsNaN(hi) || v > hi {
			hi = v
		}
	}
	return [2]float64{lo, hi}
}

// TimeExtent is Extent for dates; records whose date does not parse are
// skipped. The result is invalid when no record has a date.
func TimeExtent[T any](data []T, accessor func(T) (time.Time, bool)) TimeDomain {
	var dom TimeDomain
	for _, d := range data {
		t, ok := accessor(d)
		if !ok {
			continue
		}
		if !dom.Valid || t.Before(dom.Min) {
			dom.Min = t
		}
		if !dom.Valid || t.After(dom.Max) {
			dom.Max = t
		}
		dom.Valid = true
	}
	return dom
}

type TimeDomain struct {
	Min   time.Time
	Max   time.Time
	Valid bool
}
