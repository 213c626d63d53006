package initializer

import (
	"gorgonia.org/tensor"

	"sfneuman.com/goinit/backend"
)

// RandomUniformConfig implements a configuration of an initializer
// that samples tensors uniformly from [Min, Max).
type RandomUniformConfig struct {
	Min  float64 `json:"minval"`
	Max  float64 `json:"maxval"`
	Seed uint64  `json:"seed"`
}

// NewRandomUniform returns a new uniform-distribution weight
// initializer
func NewRandomUniform(min, max float64, seed uint64) (*Initializer, error) {
	return newInitializer(RandomUniformConfig{
		Min:  min,
		Max:  max,
		Seed: seed,
	})
}

// Type returns the type of the weight initializer created using this
// config
func (r RandomUniformConfig) Type() Type {
	return RandomUniform
}

func (r RandomUniformConfig) validate() error { return nil }

// Init generates a tensor of the given shape and element type with
// elements sampled i.i.d. uniformly from [Min, Max)
func (r RandomUniformConfig) Init(shape tensor.Shape, dtype tensor.Dtype) (*tensor.Dense,
	error) {
	return backend.RandomUniform(shape, r.Min, r.Max, dtype, r.Seed)
}
