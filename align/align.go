// Package align merges independently recorded timeseries onto a shared time
// index so they can be compared point for point, using the same held-value
// semantics as the root package.
package align

import (
	"errors"
	"fmt"
	"sort"

	"github.com/serieslab/stepseries"
)

// ErrDuplicateTimes is returned when a source series still carries duplicate
// timestamps. Run stepseries.ResolveDuplicates before reindexing.
var ErrDuplicateTimes = errors.New("duplicate timestamps in series")

// UnionTimes returns the sorted distinct union of the given time indexes.
func UnionTimes(indexes ...[]float64) []float64 {
	total := 0
	for _, idx := range indexes {
		total += len(idx)
	}
	if total == 0 {
		return nil
	}

	merged := make([]float64, 0, total)
	for _, idx := range indexes {
		merged = append(merged, idx...)
	}
	sort.Float64s(merged)

	// Compact in place, dropping equal neighbors.
	out := merged[:1]
	for _, t := range merged[1:] {
		if t != out[len(out)-1] {
			out = append(out, t)
		}
	}
	return out
}

// Reindex projects s onto the given target times with held-value semantics:
// each target takes the value of the last source point at or before it.
// Targets preceding the first source point are omitted, so the result may be
// shorter than times.
//
// The source timestamps must be strictly increasing and the targets sorted
// non-decreasing. Returns ErrDuplicateTimes for a source with duplicate
// timestamps, and an error wrapping stepseries.ErrInvalidInput for unsorted
// input.
func Reindex[V any](s stepseries.Series[V], times []float64) (stepseries.Series[V], error) {
	if !s.IsSortedByTime() {
		return nil, fmt.Errorf("%w: source series is not sorted by time", stepseries.ErrInvalidInput)
	}
	for i := 1; i < len(s); i++ {
		if s[i].Time == s[i-1].Time {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateTimes, s[i].Time)
		}
	}
	if !sort.Float64sAreSorted(times) {
		return nil, fmt.Errorf("%w: target times are not sorted", stepseries.ErrInvalidInput)
	}

	out := make(stepseries.Series[V], 0, len(times))
	src := 0
	for _, t := range times {
		for src < len(s) && s[src].Time <= t {
			src++
		}
		if src == 0 {
			// No source point at or before t yet.
			continue
		}
		out = append(out, stepseries.Point[V]{Time: t, Value: s[src-1].Value})
	}
	return out, nil
}

// Pair is one aligned sample: the values two series hold at Time.
type Pair[A, B any] struct {
	Time float64
	A    A
	B    B
}

// Align reindexes two series onto the union of their time indexes and pairs
// the times where both hold a value. Inputs follow the Reindex contract.
func Align[A, B any](a stepseries.Series[A], b stepseries.Series[B]) ([]Pair[A, B], error) {
	union := UnionTimes(a.Times(), b.Times())

	ra, err := Reindex(a, union)
	if err != nil {
		return nil, err
	}
	rb, err := Reindex(b, union)
	if err != nil {
		return nil, err
	}

	// Each reindexed series covers a suffix of the union, starting at its
	// own first event. The shorter suffix is where both hold values.
	if len(ra) > len(rb) {
		ra = ra[len(ra)-len(rb):]
	} else if len(rb) > len(ra) {
		rb = rb[len(rb)-len(ra):]
	}

	pairs := make([]Pair[A, B], len(ra))
	for i := range ra {
		pairs[i] = Pair[A, B]{Time: ra[i].Time, A: ra[i].Value, B: rb[i].Value}
	}
	return pairs, nil
}
