package stepseries

import (
	"fmt"
	"sort"
)

// Squash crops s to the window [w.Start, w.End) while preserving held-value
// semantics at the edges. The last point before w.Start, when present, is
// carried in at w.Start; the last remaining point at or before w.End is
// carried out at w.End. An empty result is valid: no point holds a value
// anywhere in the window.
//
// Duplicate timestamps are tolerated. Returns ErrInvalidInput if
// w.Start > w.End or s is not sorted by time.
func Squash[V any](s Series[V], w Window) (Series[V], error) {
	if w.Start > w.End {
		return nil, fmt.Errorf("%w: window start %v is after end %v", ErrInvalidInput, w.Start, w.End)
	}
	if !s.IsSortedByTime() {
		return nil, fmt.Errorf("%w: series is not sorted by time", ErrInvalidInput)
	}

	first := sort.Search(len(s), func(i int) bool { return s[i].Time >= w.Start })
	stop := sort.Search(len(s), func(i int) bool { return s[i].Time >= w.End })

	out := make(Series[V], 0, stop-first+2)

	// Carry the value holding just before the window in at w.Start.
	if first > 0 {
		out = append(out, Point[V]{Time: w.Start, Value: s[first-1].Value})
	}

	out = append(out, s[first:stop]...)

	// Carry the last value at or before w.End out at w.End.
	for i := len(out) - 1; i >= 0; i-- {
		if out[i].Time <= w.End {
			out = append(out, Point[V]{Time: w.End, Value: out[i].Value})
			break
		}
	}

	return out, nil
}
