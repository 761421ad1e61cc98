package stepseries

import "testing"

func TestListify_Scalar(t *testing.T) {
	out := Listify[int](5)
	if len(out) != 1 || out[0] != 5 {
		t.Errorf("expected [5], got %v", out)
	}
}

func TestListify_Slice(t *testing.T) {
	out := Listify[int]([]int{1, 2, 3})
	if len(out) != 3 || out[0] != 1 || out[2] != 3 {
		t.Errorf("expected [1 2 3], got %v", out)
	}
}

func TestListify_EmptySlice(t *testing.T) {
	out := Listify[int]([]int{})
	if out == nil || len(out) != 0 {
		t.Errorf("expected empty slice to pass through, got %v", out)
	}
}

func TestListify_String(t *testing.T) {
	out := Listify[string]("cpu")
	if len(out) != 1 || out[0] != "cpu" {
		t.Errorf("expected [cpu], got %v", out)
	}
}

func TestListify_Nil(t *testing.T) {
	if out := Listify[int](nil); out != nil {
		t.Errorf("expected nil, got %v", out)
	}
}
