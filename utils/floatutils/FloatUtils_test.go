package floatutils

import (
	"math"
	"testing"
)

func TestProd(t *testing.T) {
	tests := []struct {
		ints []int
		want int
	}{
		{nil, 1},
		{[]int{5}, 5},
		{[]int{3, 3, 16}, 144},
		{[]int{2, 0, 4}, 0},
	}

	for _, test := range tests {
		if prod := Prod(test.ints); prod != test.want {
			t.Errorf("Prod(%v) == %v, want %v", test.ints, prod, test.want)
		}
	}
}

func TestVariance(t *testing.T) {
	const tolerance = 1e-12

	// Population variance divides by n, not n-1
	values := []float64{1, 2, 3, 4}
	if v := Variance(values); math.Abs(v-1.25) > tolerance {
		t.Errorf("Variance(%v) == %v, want 1.25", values, v)
	}

	constant := []float64{2, 2, 2}
	if v := Variance(constant); v != 0 {
		t.Errorf("Variance(%v) == %v, want 0", constant, v)
	}
}
