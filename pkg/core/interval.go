package core

import "math"

// Interval represents a closed range of real values. Min may exceed Max,
// which represents the empty interval.
type Interval struct {
	Min, Max float64
}

// EmptyInterval contains no values
var EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}

// UniverseInterval contains every value
var UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Size returns the width of the interval. Negative only for the
// empty interval.
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether x lies in the closed interval [Min, Max]
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether x lies strictly inside the interval.
// Ray acceptance uses this rather than Contains so an endpoint is
// never itself a valid hit.
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp limits x to the interval
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}
