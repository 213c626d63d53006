package initializer

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"
)

// isOrthonormal checks that the columns (rows <= cols) or rows
// (rows > cols) of a flattened matrix are mutually orthonormal.
func isOrthonormal(t *testing.T, data []float64, rows, cols int) bool {
	t.Helper()

	q := mat.NewDense(rows, cols, data)
	var product mat.Dense
	size := cols
	if rows >= cols {
		product.Mul(q.T(), q)
	} else {
		product.Mul(q, q.T())
		size = rows
	}

	const tolerance = 1e-10
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if diff := product.At(i, j) - want; diff > tolerance ||
				diff < -tolerance {
				return false
			}
		}
	}
	return true
}

func TestOrthogonal(t *testing.T) {
	shapes := []tensor.Shape{{4, 4}, {6, 3}, {3, 6}, {2, 2, 4}}
	seeds := []uint64{NoSeed, 1, 42, 1337}

	for _, shape := range shapes {
		for _, seed := range seeds {
			init, err := NewOrthogonal(1, seed)
			if err != nil {
				t.Fatalf("could not construct initializer: %v", err)
			}

			out, err := init.Init(shape, tensor.Float64)
			if err != nil {
				t.Fatalf("could not generate shape %v: %v", shape, err)
			}
			if !out.Shape().Eq(shape) {
				t.Fatalf("generated shape %v, want %v", out.Shape(), shape)
			}

			rows := 1
			for _, dim := range shape[:len(shape)-1] {
				rows *= dim
			}
			cols := shape[len(shape)-1]
			if !isOrthonormal(t, out.Data().([]float64), rows, cols) {
				t.Errorf("shape %v seed %v: not orthonormal", shape, seed)
			}
		}
	}
}

func TestOrthogonalGain(t *testing.T) {
	gain := 2.5
	init, err := NewOrthogonal(gain, 99)
	if err != nil {
		t.Fatalf("could not construct initializer: %v", err)
	}

	out, err := init.Init(tensor.Shape{5, 5}, tensor.Float64)
	if err != nil {
		t.Fatalf("could not generate: %v", err)
	}

	// Dividing out the gain recovers an orthonormal matrix
	data := out.Data().([]float64)
	scaled := make([]float64, len(data))
	for i, value := range data {
		scaled[i] = value / gain
	}
	if !isOrthonormal(t, scaled, 5, 5) {
		t.Error("gain-scaled output is not gain times an orthonormal matrix")
	}
}

func TestOrthogonalInvalidShape(t *testing.T) {
	init, err := NewOrthogonal(1, NoSeed)
	if err != nil {
		t.Fatalf("could not construct initializer: %v", err)
	}

	if _, err := init.Init(tensor.Shape{16}, tensor.Float64); !errors.Is(err,
		ErrInvalidArgument) {
		t.Errorf("rank 1 shape: expected ErrInvalidArgument, got %v", err)
	}
}
