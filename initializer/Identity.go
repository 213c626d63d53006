package initializer

import (
	"fmt"

	"gorgonia.org/tensor"

	"sfneuman.com/goinit/backend"
)

// IdentityConfig implements a configuration of an initializer that
// generates a gain-scaled identity matrix. It can only be used for
// square 2D shapes.
type IdentityConfig struct {
	Gain float64 `json:"gain"`
}

// NewIdentity returns a new identity weight initializer
func NewIdentity(gain float64) (*Initializer, error) {
	return newInitializer(IdentityConfig{Gain: gain})
}

// Type returns the type of the weight initializer created using this
// config
func (id IdentityConfig) Type() Type {
	return Identity
}

func (id IdentityConfig) validate() error { return nil }

// Init generates a gain-scaled identity matrix of the given shape and
// element type
func (id IdentityConfig) Init(shape tensor.Shape, dtype tensor.Dtype) (*tensor.Dense,
	error) {
	if len(shape) != 2 || shape[0] != shape[1] {
		return nil, fmt.Errorf("identity: requires a square 2D shape "+
			"\n\thave: %v: %w", shape, ErrInvalidArgument)
	}

	n := shape[0]
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = id.Gain
	}
	return backend.Dense(data, shape, dtype)
}
