package backend

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"
)

// FourierShape returns the shape of the inverse real Fourier transform
// of a kernel-shaped array: the transform-domain sizing that orthogonal
// filter bases are constructed over. Only 1D and 2D spatial kernels
// have a Fourier path.
//
// The inverse real transform of a length-n half spectrum has length
// 2(n-1), and the 2D inverse transforms only its last axis to the real
// domain.
func FourierShape(kernel tensor.Shape) (tensor.Shape, error) {
	switch len(kernel) {
	case 1:
		return tensor.Shape{2 * (kernel[0] - 1)}, nil
	case 2:
		return tensor.Shape{kernel[0], 2 * (kernel[1] - 1)}, nil
	default:
		return nil, fmt.Errorf("fourierShape: kernel must be 1D or 2D, "+
			"got %v", kernel)
	}
}

// IRFFT computes the length-n inverse real Fourier transform of a
// half spectrum with zero imaginary parts. The spectrum is cropped or
// zero-padded to the n/2+1 coefficients the transform consumes, and
// the result is normalized by n.
func IRFFT(spectrum []float64, n int) []float64 {
	coeff := make([]complex128, n/2+1)
	for i := range coeff {
		if i < len(spectrum) {
			coeff[i] = complex(spectrum[i], 0)
		}
	}

	seq := fourier.NewFFT(n).Sequence(nil, coeff)
	scale := 1 / float64(n)
	for i := range seq {
		seq[i] *= scale
	}
	return seq
}

// IRFFT2 computes the (rows × cols) 2D inverse real Fourier transform
// of a real-valued spectrum: an inverse complex transform down each
// column followed by an inverse real transform along each row, each
// normalized by its output length.
func IRFFT2(spectrum *mat.Dense, rows, cols int) *mat.Dense {
	m, n := spectrum.Dims()

	// Inverse complex transform along the first axis.
	cfft := fourier.NewCmplxFFT(rows)
	interim := make([]complex128, rows*n)
	column := make([]complex128, rows)
	for j := 0; j < n; j++ {
		for i := range column {
			if i < m {
				column[i] = complex(spectrum.At(i, j), 0)
			} else {
				column[i] = 0
			}
		}
		seq := cfft.Sequence(nil, column)
		for i := 0; i < rows; i++ {
			interim[i*n+j] = seq[i] / complex(float64(rows), 0)
		}
	}

	// Inverse real transform along the second axis.
	rfft := fourier.NewFFT(cols)
	coeff := make([]complex128, cols/2+1)
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for k := range coeff {
			if k < n {
				coeff[k] = interim[i*n+k]
			} else {
				coeff[k] = 0
			}
		}
		seq := rfft.Sequence(nil, coeff)
		for j := 0; j < cols; j++ {
			out.Set(i, j, seq[j]/float64(cols))
		}
	}
	return out
}
