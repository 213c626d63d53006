package initializer

import (
	"fmt"
	"math"

	"gorgonia.org/tensor"

	"sfneuman.com/goinit/utils/floatutils"
)

// DataFormat describes the data layout convention of convolution
// kernels: whether the channel axes lead or trail the spatial axes.
type DataFormat string

// Available data layout conventions
const (
	ChannelsFirst DataFormat = "channels_first"
	ChannelsLast  DataFormat = "channels_last"
)

// ComputeFans computes the number of input and output units implied by
// a weight tensor's shape. Dense layer shapes (rank 2) read the fans
// off directly; convolution kernel shapes (rank 3, 4, or 5) scale the
// channel axes by the receptive field size under the given layout; any
// other rank treats both fans as the square root of the total number
// of elements. ComputeFans is deterministic and has no side effects.
func ComputeFans(shape tensor.Shape, format DataFormat) (fanIn, fanOut float64,
	err error) {
	switch len(shape) {
	case 2:
		return float64(shape[0]), float64(shape[1]), nil

	case 3, 4, 5:
		switch format {
		case ChannelsFirst:
			receptiveField := floatutils.Prod(shape[2:])
			fanIn = float64(shape[1] * receptiveField)
			fanOut = float64(shape[0] * receptiveField)
			return fanIn, fanOut, nil

		case ChannelsLast:
			receptiveField := floatutils.Prod(shape[:len(shape)-2])
			fanIn = float64(shape[len(shape)-2] * receptiveField)
			fanOut = float64(shape[len(shape)-1] * receptiveField)
			return fanIn, fanOut, nil

		default:
			return 0, 0, fmt.Errorf("computeFans: invalid data format "+
				"%q: %w", format, ErrInvalidArgument)
		}

	default:
		size := math.Sqrt(float64(floatutils.Prod(shape)))
		return size, size, nil
	}
}
