// Package backend provides the numeric primitives that weight
// initializers are built on: constant tensor fills, distribution
// sampling, singular value decomposition, and inverse real Fourier
// transforms. All generation functions return freshly allocated
// tensors and never share state between calls.
package backend

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gorgonia.org/tensor"
)

// NoSeed indicates that a random source should be seeded from the
// global entropy source rather than reproducibly.
const NoSeed uint64 = 0

// NewSource returns a pseudo-random source for a single generation
// call. A seed of NoSeed produces an unrelated stream on every call;
// any other seed produces the identical stream across repeated calls.
func NewSource(seed uint64) rand.Source {
	if seed == NoSeed {
		return rand.NewSource(rand.Uint64())
	}
	return rand.NewSource(seed)
}

// Constant returns a tensor of the given shape and element type with
// every element set to value.
func Constant(value float64, shape tensor.Shape, dtype tensor.Dtype) (*tensor.Dense,
	error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}

	data := make([]float64, shape.TotalSize())
	for i := range data {
		data[i] = value
	}
	return Dense(data, shape, dtype)
}

// Dense constructs a tensor of the given shape and element type from
// row-major float64 data. Float32 tensors are narrowed element-wise.
func Dense(data []float64, shape tensor.Shape, dtype tensor.Dtype) (*tensor.Dense,
	error) {
	switch dtype {
	case tensor.Float64:
		return tensor.New(
			tensor.WithShape(shape...),
			tensor.WithBacking(data),
		), nil

	case tensor.Float32:
		backing := make([]float32, len(data))
		for i, value := range data {
			backing[i] = float32(value)
		}
		return tensor.New(
			tensor.WithShape(shape...),
			tensor.WithBacking(backing),
		), nil

	default:
		return nil, fmt.Errorf("dense: unsupported element type %v", dtype)
	}
}

// checkShape ensures a generation target shape is well formed
func checkShape(shape tensor.Shape) error {
	if len(shape) < 1 {
		return fmt.Errorf("checkShape: shape must have at least 1 dimension")
	}
	for _, dim := range shape {
		if dim < 1 {
			return fmt.Errorf("checkShape: shape dimensions must be "+
				"positive \n\thave: %v", shape)
		}
	}
	return nil
}
