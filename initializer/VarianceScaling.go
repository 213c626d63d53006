package initializer

import (
	"fmt"
	"math"
	"strings"

	"gorgonia.org/tensor"

	"sfneuman.com/goinit/backend"
)

// Fan modes selecting which fan statistic scales the variance
const (
	ModeFanIn  = "fan_in"
	ModeFanOut = "fan_out"
	ModeFanAvg = "fan_avg"
)

// Distributions that a VarianceScaling initializer can sample from
const (
	DistributionNormal  = "normal"
	DistributionUniform = "uniform"
)

// VarianceScalingConfig implements a configuration of an initializer
// that adapts its sampling scale to the shape of the weight tensor.
//
// With a normal distribution, samples are drawn from a truncated
// normal centered on zero with stddev = sqrt(scale / n), where n is
// the fan statistic selected by Mode. With a uniform distribution,
// samples are drawn from [-limit, limit] with limit = sqrt(3·scale/n).
type VarianceScalingConfig struct {
	Scale        float64 `json:"scale"`
	Mode         string  `json:"mode"`
	Distribution string  `json:"distribution"`
	Seed         uint64  `json:"seed"`
}

// NewVarianceScaling returns a new variance-scaling weight
// initializer. Mode must be one of fan_in, fan_out, or fan_avg, and
// distribution one of normal or uniform, both case-insensitive; scale
// must be positive.
func NewVarianceScaling(scale float64, mode, distribution string,
	seed uint64) (*Initializer, error) {
	return newInitializer(VarianceScalingConfig{
		Scale:        scale,
		Mode:         strings.ToLower(mode),
		Distribution: strings.ToLower(distribution),
		Seed:         seed,
	})
}

// Type returns the type of the weight initializer created using this
// config
func (v VarianceScalingConfig) Type() Type {
	return VarianceScaling
}

func (v VarianceScalingConfig) validate() error {
	if v.Scale <= 0 {
		return fmt.Errorf("varianceScaling: scale must be a positive "+
			"float \n\thave: %v: %w", v.Scale, ErrInvalidArgument)
	}

	switch strings.ToLower(v.Mode) {
	case ModeFanIn, ModeFanOut, ModeFanAvg:
	default:
		return fmt.Errorf("varianceScaling: invalid mode %q: %w", v.Mode,
			ErrInvalidArgument)
	}

	switch strings.ToLower(v.Distribution) {
	case DistributionNormal, DistributionUniform:
	default:
		return fmt.Errorf("varianceScaling: invalid distribution %q: %w",
			v.Distribution, ErrInvalidArgument)
	}
	return nil
}

// Init generates a tensor of the given shape and element type, scaled
// by the fan statistics of the shape
func (v VarianceScalingConfig) Init(shape tensor.Shape, dtype tensor.Dtype) (*tensor.Dense,
	error) {
	fanIn, fanOut, err := ComputeFans(shape, ChannelsLast)
	if err != nil {
		return nil, err
	}

	scale := v.Scale
	switch strings.ToLower(v.Mode) {
	case ModeFanIn:
		scale /= math.Max(1, fanIn)
	case ModeFanOut:
		scale /= math.Max(1, fanOut)
	default:
		scale /= math.Max(1, (fanIn+fanOut)/2)
	}

	if strings.ToLower(v.Distribution) == DistributionNormal {
		stddev := math.Sqrt(scale)
		return backend.TruncatedNormal(shape, 0, stddev, dtype, v.Seed)
	}

	limit := math.Sqrt(3 * scale)
	return backend.RandomUniform(shape, -limit, limit, dtype, v.Seed)
}
