package stepseries

import "fmt"

// DefaultMaxDelta is the default clamp for duplicate timestamp adjustments.
const DefaultMaxDelta = 1e-6

// ResolveDuplicates returns a copy of s in which duplicate timestamps have
// been nudged forward so that the time index is strictly increasing. Values
// keep their original order; timestamps outside duplicate runs are
// untouched.
//
// Within a run of n entries sharing timestamp d, the first entry stays at d
// and each following entry is offset from d by a delta that doubles after
// every assignment. The base delta is (next distinct timestamp - d) / n,
// clamped to maxDelta; a run at the end of the series uses maxDelta
// directly.
//
// Returns ErrInvalidInput if s is not sorted by time or maxDelta <= 0.
func ResolveDuplicates[V any](s Series[V], maxDelta float64) (Series[V], error) {
	if maxDelta <= 0 {
		return nil, fmt.Errorf("%w: max delta must be positive, got %v", ErrInvalidInput, maxDelta)
	}
	if !s.IsSortedByTime() {
		return nil, fmt.Errorf("%w: series is not sorted by time", ErrInvalidInput)
	}

	out := s.Copy()
	for i := 0; i < len(s); {
		// Advance j past the run of entries sharing s[i].Time.
		j := i + 1
		for j < len(s) && s[j].Time == s[i].Time {
			j++
		}

		if n := j - i; n > 1 {
			d := s[i].Time

			delta := maxDelta
			if j < len(s) {
				delta = (s[j].Time - d) / float64(n)
				if delta > maxDelta {
					delta = maxDelta
				}
			}

			// First entry of the run keeps d. The rest move by delta,
			// which doubles each step: offsets delta, 2*delta, 4*delta, ...
			for k := i + 1; k < j; k++ {
				out[k].Time = d + delta
				delta += delta
			}
		}

		i = j
	}

	return out, nil
}
