package floatutils

import (
	"reflect"
	"testing"
)

func TestMaxSlice(t *testing.T) {
	tests := []struct {
		values  []float64
		max     float64
		indices []int
	}{
		{[]float64{1}, 1, []int{0}},
		{[]float64{3, 1, 2}, 3, []int{0}},
		{[]float64{3, 1, 3}, 3, []int{0, 2}},
		{[]float64{-1, 0, 0, -2}, 0, []int{1, 2}},
		{[]float64{0, 0, 0}, 0, []int{0, 1, 2}},
		{[]float64{1, 2, 5, 5}, 5, []int{2, 3}},
	}

	for _, test := range tests {
		max, indices := MaxSlice(test.values)
		if max != test.max {
			t.Errorf("%v: max = %v, want %v", test.values, max, test.max)
		}
		if !reflect.DeepEqual(indices, test.indices) {
			t.Errorf("%v: indices = %v, want %v", test.values, indices,
				test.indices)
		}
	}
}

func TestClip(t *testing.T) {
	if v := Clip(5, 0, 1); v != 1 {
		t.Errorf("Clip(5, 0, 1) = %v", v)
	}
	if v := Clip(-5, 0, 1); v != 0 {
		t.Errorf("Clip(-5, 0, 1) = %v", v)
	}
	if v := Clip(0.3, 0, 1); v != 0.3 {
		t.Errorf("Clip(0.3, 0, 1) = %v", v)
	}
}
