package fingerprint

import (
	"testing"

	"github.com/serieslab/stepseries"
)

func TestCompute_Deterministic(t *testing.T) {
	s := stepseries.Series[float64]{
		{Time: 1, Value: 2.5},
		{Time: 2, Value: 3.5},
	}

	results := make([]string, 10)
	for i := range results {
		results[i] = Compute(s)
	}
	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			t.Fatalf("fingerprint not deterministic: %s != %s", results[i], results[0])
		}
	}
}

func TestCompute_SensitiveToContent(t *testing.T) {
	base := Compute(stepseries.Series[int]{{Time: 1, Value: 1}})

	diffTime := Compute(stepseries.Series[int]{{Time: 2, Value: 1}})
	if base == diffTime {
		t.Error("different timestamp should change the fingerprint")
	}

	diffValue := Compute(stepseries.Series[int]{{Time: 1, Value: 2}})
	if base == diffValue {
		t.Error("different value should change the fingerprint")
	}

	longer := Compute(stepseries.Series[int]{{Time: 1, Value: 1}, {Time: 2, Value: 1}})
	if base == longer {
		t.Error("extra point should change the fingerprint")
	}
}

func TestCompute_NearbyTimestampsDiffer(t *testing.T) {
	a := Compute(stepseries.Series[int]{{Time: 1, Value: 0}})
	b := Compute(stepseries.Series[int]{{Time: 1 + 1e-9, Value: 0}})
	if a == b {
		t.Error("timestamps a nanounit apart should fingerprint differently")
	}
}

func TestCompute_CopyIndependent(t *testing.T) {
	s := stepseries.Series[string]{{Time: 1, Value: "a"}, {Time: 2, Value: "b"}}
	if Compute(s) != Compute(s.Copy()) {
		t.Error("a copy should fingerprint identically to its source")
	}
}

func TestCompute_EmptySeries(t *testing.T) {
	if Compute(stepseries.Series[int]{}) == "" {
		t.Error("empty series should still produce a fingerprint")
	}
}

func TestTimes_OrderSensitive(t *testing.T) {
	a := Times([]float64{1, 2, 3})
	b := Times([]float64{1, 2, 3})
	if a != b {
		t.Errorf("same index should fingerprint identically: %s != %s", a, b)
	}

	c := Times([]float64{3, 2, 1})
	if a == c {
		t.Error("index order should change the fingerprint")
	}
}
