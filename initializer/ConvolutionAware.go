package initializer

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"

	"sfneuman.com/goinit/backend"
	"sfneuman.com/goinit/utils/floatutils"
)

// ConvolutionAwareConfig implements a configuration of an initializer
// that generates convolution filters which are mutually orthogonal in
// Fourier space, empirically improving gradient flow over orthogonal
// initialization in the spatial domain.
//
// For each output filter, an orthogonal basis is constructed over the
// flattened inverse-Fourier domain of the spatial kernel, transformed
// back to the spatial domain, and perturbed with Gaussian noise of
// standard deviation EpsStd to break symmetry. The stacked filters are
// then rescaled so their empirical variance matches 2 / fan_in. Shapes
// that are not 1D or 2D convolution kernels (rank 3 or 4) delegate to
// an Orthogonal initializer with default gain.
type ConvolutionAwareConfig struct {
	EpsStd float64 `json:"eps_std"`
	Seed   uint64  `json:"seed"`
}

// NewConvolutionAware returns a new convolution-aware weight
// initializer
func NewConvolutionAware(epsStd float64, seed uint64) (*Initializer, error) {
	return newInitializer(ConvolutionAwareConfig{EpsStd: epsStd, Seed: seed})
}

// Type returns the type of the weight initializer created using this
// config
func (c ConvolutionAwareConfig) Type() Type {
	return ConvolutionAware
}

func (c ConvolutionAwareConfig) validate() error { return nil }

// Init generates a tensor of the given shape and element type whose
// filters are orthogonal in Fourier space
func (c ConvolutionAwareConfig) Init(shape tensor.Shape, dtype tensor.Dtype) (*tensor.Dense,
	error) {
	rank := len(shape)
	if rank != 3 && rank != 4 {
		orthogonal, err := NewOrthogonal(1, c.Seed)
		if err != nil {
			return nil, err
		}
		return orthogonal.Init(shape, dtype)
	}

	fanIn, _, err := ComputeFans(shape, ChannelsLast)
	if err != nil {
		return nil, err
	}
	variance := 2 / fanIn

	// Shapes decompose as (spatial..., stack, filters) under the
	// channels-last convention
	kernelShape := tensor.Shape(shape[:rank-2])
	stackSize := shape[rank-2]
	filtersSize := shape[rank-1]

	fourierShape, err := backend.FourierShape(kernelShape)
	if err != nil {
		return nil, fmt.Errorf("convolutionAware: %v", err)
	}
	basisSize := fourierShape.TotalSize()
	if basisSize < 1 {
		return nil, fmt.Errorf("convolutionAware: kernel %v has an empty "+
			"Fourier domain: %w", kernelShape, ErrInvalidArgument)
	}

	source := backend.NewSource(c.Seed)
	unit := distuv.Normal{Mu: 0, Sigma: 1, Src: source}
	noise := distuv.Normal{Mu: 0, Sigma: c.EpsStd, Src: source}

	// Filters are generated as (filters, stack, spatial...) and
	// transposed into the kernel layout once rescaled
	kernelSize := kernelShape.TotalSize()
	data := make([]float64, 0, filtersSize*stackSize*kernelSize)
	for f := 0; f < filtersSize; f++ {
		basis, err := createBasis(unit, noise, stackSize, basisSize)
		if err != nil {
			return nil, fmt.Errorf("convolutionAware: %v", err)
		}

		for s := 0; s < stackSize; s++ {
			row := basis.RawRowView(s)
			if rank == 3 {
				kernel := backend.IRFFT(row, kernelShape[0])
				for _, value := range kernel {
					data = append(data, value+noise.Rand())
				}
			} else {
				spectrum := mat.NewDense(fourierShape[0], fourierShape[1], row)
				kernel := backend.IRFFT2(spectrum, kernelShape[0], kernelShape[1])
				for i := 0; i < kernelShape[0]; i++ {
					for j := 0; j < kernelShape[1]; j++ {
						data = append(data, kernel.At(i, j)+noise.Rand())
					}
				}
			}
		}
	}

	// Rescale so the empirical variance matches the target variance
	scale := math.Sqrt(variance / floatutils.Variance(data))
	for i := range data {
		data[i] *= scale
	}

	return backend.Dense(transposeToKernel(data, kernelShape, stackSize,
		filtersSize), shape, dtype)
}

// createBasis builds an orthogonal basis of rows rows over a flattened
// Fourier domain of the given size. Symmetric random matrices are
// singular-value-decomposed and their orthogonal vectors concatenated
// until at least rows of them are collected; the excess is truncated.
func createBasis(unit, noise distuv.Normal, rows, size int) (*mat.Dense, error) {
	if size == 1 {
		data := make([]float64, rows)
		for i := range data {
			data[i] = noise.Rand()
		}
		return mat.NewDense(rows, size, data), nil
	}

	numBatches := rows/size + 1
	vectors := make([][]float64, 0, numBatches*size)
	for b := 0; b < numBatches; b++ {
		u, _, _, err := backend.SVD(randomSymmetric(unit, size))
		if err != nil {
			return nil, err
		}

		// The rows of uᵗ are the orthogonal vectors
		for j := 0; j < size; j++ {
			vector := make([]float64, size)
			for i := 0; i < size; i++ {
				vector[i] = u.At(i, j)
			}
			vectors = append(vectors, vector)
		}
	}

	basis := mat.NewDense(rows, size, nil)
	for i := 0; i < rows; i++ {
		basis.SetRow(i, vectors[i])
	}
	return basis, nil
}

// randomSymmetric draws a standard-normal matrix a and symmetrizes it
// as a + aᵗ - diag(a)
func randomSymmetric(unit distuv.Normal, size int) *mat.Dense {
	a := mat.NewDense(size, size, nil)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			a.Set(i, j, unit.Rand())
		}
	}

	sym := mat.NewDense(size, size, nil)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			if i == j {
				sym.Set(i, j, a.At(i, i))
			} else {
				sym.Set(i, j, a.At(i, j)+a.At(j, i))
			}
		}
	}
	return sym
}

// transposeToKernel re-orders filters from (filters, stack, spatial...)
// to the (spatial..., stack, filters) kernel layout
func transposeToKernel(data []float64, kernelShape tensor.Shape, stackSize,
	filtersSize int) []float64 {
	out := make([]float64, len(data))

	if len(kernelShape) == 1 {
		width := kernelShape[0]
		for f := 0; f < filtersSize; f++ {
			for s := 0; s < stackSize; s++ {
				for i := 0; i < width; i++ {
					out[(i*stackSize+s)*filtersSize+f] =
						data[(f*stackSize+s)*width+i]
				}
			}
		}
		return out
	}

	rows, cols := kernelShape[0], kernelShape[1]
	for f := 0; f < filtersSize; f++ {
		for s := 0; s < stackSize; s++ {
			for i := 0; i < rows; i++ {
				for j := 0; j < cols; j++ {
					out[((i*cols+j)*stackSize+s)*filtersSize+f] =
						data[((f*stackSize+s)*rows+i)*cols+j]
				}
			}
		}
	}
	return out
}
