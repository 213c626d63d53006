package backend

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"
)

// RandomNormal returns a tensor of the given shape and element type
// with elements sampled i.i.d. from N(mean, stddev²).
func RandomNormal(shape tensor.Shape, mean, stddev float64, dtype tensor.Dtype,
	seed uint64) (*tensor.Dense, error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}

	dist := distuv.Normal{Mu: mean, Sigma: stddev, Src: NewSource(seed)}
	data := make([]float64, shape.TotalSize())
	for i := range data {
		data[i] = dist.Rand()
	}
	return Dense(data, shape, dtype)
}

// RandomUniform returns a tensor of the given shape and element type
// with elements sampled i.i.d. uniformly from [min, max).
func RandomUniform(shape tensor.Shape, min, max float64, dtype tensor.Dtype,
	seed uint64) (*tensor.Dense, error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}

	dist := distuv.Uniform{Min: min, Max: max, Src: NewSource(seed)}
	data := make([]float64, shape.TotalSize())
	for i := range data {
		data[i] = dist.Rand()
	}
	return Dense(data, shape, dtype)
}

// TruncatedNormal returns a tensor of the given shape and element type
// with elements sampled from N(mean, stddev²), redrawing any sample
// that falls more than two standard deviations from the mean.
func TruncatedNormal(shape tensor.Shape, mean, stddev float64, dtype tensor.Dtype,
	seed uint64) (*tensor.Dense, error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}

	dist := distuv.Normal{Mu: mean, Sigma: stddev, Src: NewSource(seed)}
	cutoff := math.Abs(2 * stddev)
	data := make([]float64, shape.TotalSize())
	for i := range data {
		sample := dist.Rand()
		for math.Abs(sample-mean) > cutoff {
			sample = dist.Rand()
		}
		data[i] = sample
	}
	return Dense(data, shape, dtype)
}
