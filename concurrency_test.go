package stepseries

import (
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"
)

// The shaping operations never mutate their input, so a single series can be
// shaped from many goroutines at once.
func TestConcurrentUse_SharedInput(t *testing.T) {
	s := Series[float64]{
		{Time: 0, Value: 1},
		{Time: 1, Value: 2},
		{Time: 1, Value: 3},
		{Time: 1, Value: 4},
		{Time: 6, Value: 5},
		{Time: 6, Value: 6},
	}
	w := Window{Start: 0.5, End: 7}

	var g errgroup.Group
	for n := 0; n < 16; n++ {
		g.Go(func() error {
			resolved, err := ResolveDuplicates(s, 0.001)
			if err != nil {
				return err
			}
			if len(resolved) != len(s) {
				return fmt.Errorf("expected %d resolved points, got %d", len(s), len(resolved))
			}
			for i := 1; i < len(resolved); i++ {
				if resolved[i].Time <= resolved[i-1].Time {
					return fmt.Errorf("resolved timestamps not strictly increasing at %d", i)
				}
			}

			squashed, err := Squash(resolved, w)
			if err != nil {
				return err
			}
			if len(squashed) == 0 {
				return fmt.Errorf("expected a non-empty squashed series")
			}
			if last := squashed[len(squashed)-1]; last.Time != w.End {
				return fmt.Errorf("expected end boundary at %v, got %v", w.End, last.Time)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	// The shared input still carries its duplicate timestamps.
	want := []float64{0, 1, 1, 1, 6, 6}
	for i, p := range s {
		if p.Time != want[i] {
			t.Errorf("input timestamp %d changed: expected %v, got %v", i, want[i], p.Time)
		}
	}
}
