// Package initializer computes initial numeric values for the weight
// tensors of neural network layers. Each initializer variant holds its
// own immutable parameters, is validated eagerly at construction, and
// can be invoked any number of times; every invocation generates an
// independent tensor of the requested shape and element type.
package initializer

import (
	"fmt"

	"gorgonia.org/tensor"

	"sfneuman.com/goinit/backend"
)

// Type describes the different types of initializers that are
// available. Type is used to implement a basic type system of
// initializers.
type Type string

// Available initializer types
const (
	Zeros            Type = "Zeros"
	Ones             Type = "Ones"
	Constant         Type = "Constant"
	RandomNormal     Type = "RandomNormal"
	RandomUniform    Type = "RandomUniform"
	TruncatedNormal  Type = "TruncatedNormal"
	VarianceScaling  Type = "VarianceScaling"
	Orthogonal       Type = "Orthogonal"
	ConvolutionAware Type = "ConvolutionAware"
	Identity         Type = "Identity"
)

// NoSeed indicates that an initializer should draw fresh entropy on
// every invocation instead of producing reproducible output.
const NoSeed = backend.NoSeed

// Initializer wraps an initializer Config so that initializers can be
// JSON serialized into configuration files and reconstructed by name.
type Initializer struct {
	Type
	Config
}

// newInitializer validates c and returns the Initializer it describes
func newInitializer(c Config) (*Initializer, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &Initializer{Type: c.Type(), Config: c}, nil
}

// String implements the fmt.Stringer interface
func (i *Initializer) String() string {
	return fmt.Sprintf("{%v Initializer: %+v}", i.Type, i.Config)
}

// ConfigMap returns the flat configuration record of the wrapped
// initializer, sufficient to reconstruct an identical instance.
func (i *Initializer) ConfigMap() (map[string]interface{}, error) {
	serialized, err := Serialize(i)
	if err != nil {
		return nil, err
	}
	return serialized.Config, nil
}

// Config implements an initializer configuration: the immutable
// parameter record of one initializer variant together with the
// generation algorithm those parameters drive.
type Config interface {
	// Type returns the type of initializer that the Config describes
	Type() Type

	// Init generates a tensor of the given shape and element type
	Init(shape tensor.Shape, dtype tensor.Dtype) (*tensor.Dense, error)

	// validate eagerly checks the constructor parameters
	validate() error
}
