package stepseries

import "sort"

// Point is a single recorded event: a value observed at a timestamp.
type Point[V any] struct {
	Time  float64 // event timestamp
	Value V       // value observed at Time, held until the next event
}

// Series is an ordered sequence of events, sorted non-decreasing by Time.
// Duplicate timestamps may occur; ResolveDuplicates removes them.
type Series[V any] []Point[V]

// Window is a half-open time interval [Start, End), extended by a synthetic
// point at End when squashing.
type Window struct {
	Start float64
	End   float64
}

// Times returns the timestamps as a fresh slice.
func (s Series[V]) Times() []float64 {
	ts := make([]float64, len(s))
	for i, p := range s {
		ts[i] = p.Time
	}
	return ts
}

// Values returns the values as a fresh slice, in series order.
func (s Series[V]) Values() []V {
	vs := make([]V, len(s))
	for i, p := range s {
		vs[i] = p.Value
	}
	return vs
}

// Copy returns a fresh shallow copy of the series.
func (s Series[V]) Copy() Series[V] {
	out := make(Series[V], len(s))
	copy(out, s)
	return out
}

// IsSortedByTime reports whether timestamps are non-decreasing.
func (s Series[V]) IsSortedByTime() bool {
	for i := 1; i < len(s); i++ {
		if s[i].Time < s[i-1].Time {
			return false
		}
	}
	return true
}

// SortByTime orders the series by timestamp ascending, in place. Points with
// equal timestamps keep their relative order.
func (s Series[V]) SortByTime() {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Time < s[j].Time
	})
}

// ValueAt returns the value holding at time t, i.e. the value of the last
// point with Time <= t. The second return is false when t precedes the first
// point or the series is empty.
func (s Series[V]) ValueAt(t float64) (V, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].Time <= t {
			return s[i].Value, true
		}
	}
	var zero V
	return zero, false
}
