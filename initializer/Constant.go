package initializer

import (
	"gorgonia.org/tensor"

	"sfneuman.com/goinit/backend"
)

// ZerosConfig implements a configuration of an initializer that
// generates tensors initialized to 0.
type ZerosConfig struct{}

// NewZeros returns a new zeros weight initializer
func NewZeros() (*Initializer, error) {
	return newInitializer(ZerosConfig{})
}

// Type returns the type of the weight initializer created using this
// config
func (z ZerosConfig) Type() Type {
	return Zeros
}

func (z ZerosConfig) validate() error { return nil }

// Init generates an all-zero tensor of the given shape and element
// type
func (z ZerosConfig) Init(shape tensor.Shape, dtype tensor.Dtype) (*tensor.Dense,
	error) {
	return backend.Constant(0, shape, dtype)
}

// OnesConfig implements a configuration of an initializer that
// generates tensors initialized to 1.
type OnesConfig struct{}

// NewOnes returns a new ones weight initializer
func NewOnes() (*Initializer, error) {
	return newInitializer(OnesConfig{})
}

// Type returns the type of the weight initializer created using this
// config
func (o OnesConfig) Type() Type {
	return Ones
}

func (o OnesConfig) validate() error { return nil }

// Init generates an all-one tensor of the given shape and element type
func (o OnesConfig) Init(shape tensor.Shape, dtype tensor.Dtype) (*tensor.Dense,
	error) {
	return backend.Constant(1, shape, dtype)
}

// ConstantConfig implements a configuration of an initializer that
// generates tensors initialized to a constant value.
type ConstantConfig struct {
	Value float64 `json:"value"`
}

// NewConstant returns a new constant weight initializer
func NewConstant(value float64) (*Initializer, error) {
	return newInitializer(ConstantConfig{Value: value})
}

// Type returns the type of the weight initializer created using this
// config
func (c ConstantConfig) Type() Type {
	return Constant
}

func (c ConstantConfig) validate() error { return nil }

// Init generates a constant-filled tensor of the given shape and
// element type
func (c ConstantConfig) Init(shape tensor.Shape, dtype tensor.Dtype) (*tensor.Dense,
	error) {
	return backend.Constant(c.Value, shape, dtype)
}
