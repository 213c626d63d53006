package initializer

import (
	"gorgonia.org/tensor"

	"sfneuman.com/goinit/backend"
)

// RandomNormalConfig implements a configuration of an initializer that
// samples tensors from a normal distribution.
type RandomNormalConfig struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Seed   uint64  `json:"seed"`
}

// NewRandomNormal returns a new normal-distribution weight initializer
func NewRandomNormal(mean, stddev float64, seed uint64) (*Initializer, error) {
	return newInitializer(RandomNormalConfig{
		Mean:   mean,
		StdDev: stddev,
		Seed:   seed,
	})
}

// Type returns the type of the weight initializer created using this
// config
func (r RandomNormalConfig) Type() Type {
	return RandomNormal
}

func (r RandomNormalConfig) validate() error { return nil }

// Init generates a tensor of the given shape and element type with
// elements sampled i.i.d. from N(mean, stddev²)
func (r RandomNormalConfig) Init(shape tensor.Shape, dtype tensor.Dtype) (*tensor.Dense,
	error) {
	return backend.RandomNormal(shape, r.Mean, r.StdDev, dtype, r.Seed)
}

// TruncatedNormalConfig implements a configuration of an initializer
// that samples tensors from a normal distribution truncated at two
// standard deviations from the mean. This is the recommended
// initializer for neural network weights and filters.
type TruncatedNormalConfig struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Seed   uint64  `json:"seed"`
}

// NewTruncatedNormal returns a new truncated-normal weight initializer
func NewTruncatedNormal(mean, stddev float64, seed uint64) (*Initializer, error) {
	return newInitializer(TruncatedNormalConfig{
		Mean:   mean,
		StdDev: stddev,
		Seed:   seed,
	})
}

// Type returns the type of the weight initializer created using this
// config
func (t TruncatedNormalConfig) Type() Type {
	return TruncatedNormal
}

func (t TruncatedNormalConfig) validate() error { return nil }

// Init generates a tensor of the given shape and element type with
// elements sampled from N(mean, stddev²), redrawing any sample beyond
// two standard deviations from the mean
func (t TruncatedNormalConfig) Init(shape tensor.Shape, dtype tensor.Dtype) (*tensor.Dense,
	error) {
	return backend.TruncatedNormal(shape, t.Mean, t.StdDev, dtype, t.Seed)
}
