package initializer

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"

	"sfneuman.com/goinit/backend"
)

// OrthogonalConfig implements a configuration of an initializer that
// generates a random orthogonal matrix, scaled by a gain factor.
//
// The target shape is flattened to a matrix with the last dimension as
// its columns, a standard-normal matrix of that size is factored by
// singular value decomposition, and whichever orthogonal factor has
// the flattened shape becomes the generated weights.
type OrthogonalConfig struct {
	Gain float64 `json:"gain"`
	Seed uint64  `json:"seed"`
}

// NewOrthogonal returns a new orthogonal weight initializer
func NewOrthogonal(gain float64, seed uint64) (*Initializer, error) {
	return newInitializer(OrthogonalConfig{Gain: gain, Seed: seed})
}

// Type returns the type of the weight initializer created using this
// config
func (o OrthogonalConfig) Type() Type {
	return Orthogonal
}

func (o OrthogonalConfig) validate() error { return nil }

// Init generates a gain-scaled orthogonal tensor of the given shape
// and element type
func (o OrthogonalConfig) Init(shape tensor.Shape, dtype tensor.Dtype) (*tensor.Dense,
	error) {
	if len(shape) < 2 {
		return nil, fmt.Errorf("orthogonal: shape must have at least 2 "+
			"dimensions \n\thave: %v: %w", shape, ErrInvalidArgument)
	}

	numRows := 1
	for _, dim := range shape[:len(shape)-1] {
		numRows *= dim
	}
	numCols := shape[len(shape)-1]

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: backend.NewSource(o.Seed)}
	a := mat.NewDense(numRows, numCols, nil)
	for i := 0; i < numRows; i++ {
		for j := 0; j < numCols; j++ {
			a.Set(i, j, normal.Rand())
		}
	}

	u, _, vt, err := backend.SVD(a)
	if err != nil {
		return nil, fmt.Errorf("orthogonal: %v", err)
	}

	// Pick the factor with the flattened shape
	q := u
	if r, c := u.Dims(); r != numRows || c != numCols {
		q = vt
	}

	// The flattened factor reshapes exactly to the target shape; the
	// row and column bounds below guard the corner extraction when it
	// does not.
	rows, cols := q.Dims()
	if rows > numRows {
		rows = numRows
	}
	if cols > numCols {
		cols = numCols
	}
	data := make([]float64, numRows*numCols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*numCols+j] = o.Gain * q.At(i, j)
		}
	}
	return backend.Dense(data, shape, dtype)
}
