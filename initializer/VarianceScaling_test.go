package initializer

import (
	"errors"
	"math"
	"testing"

	"gorgonia.org/tensor"
)

func TestVarianceScalingValidation(t *testing.T) {
	if _, err := NewVarianceScaling(-1, ModeFanIn, DistributionNormal,
		NoSeed); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative scale: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := NewVarianceScaling(0, ModeFanIn, DistributionNormal,
		NoSeed); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("zero scale: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := NewVarianceScaling(1, "fan_middle", DistributionNormal,
		NoSeed); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("bad mode: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := NewVarianceScaling(1, ModeFanIn, "poisson",
		NoSeed); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("bad distribution: expected ErrInvalidArgument, got %v", err)
	}

	// Mode and distribution are case-insensitive
	if _, err := NewVarianceScaling(1, "Fan_Avg", "UNIFORM", NoSeed); err != nil {
		t.Errorf("mixed case mode/distribution rejected: %v", err)
	}
}

// TestVarianceScalingUniformBounds checks the closed-form uniform
// limit sqrt(3 * scale / fan).
func TestVarianceScalingUniformBounds(t *testing.T) {
	shape := tensor.Shape{64, 32}
	init, err := NewVarianceScaling(1, ModeFanIn, DistributionUniform, 3)
	if err != nil {
		t.Fatalf("could not construct initializer: %v", err)
	}

	out, err := init.Init(shape, tensor.Float64)
	if err != nil {
		t.Fatalf("could not generate: %v", err)
	}

	limit := math.Sqrt(3.0 / 64.0)
	for _, value := range out.Data().([]float64) {
		if math.Abs(value) > limit {
			t.Fatalf("sample %v outside ± %v", value, limit)
		}
	}
}

// TestVarianceScalingNormalBounds checks that normal-distribution
// draws are truncated at two standard deviations of the fan-scaled
// stddev.
func TestVarianceScalingNormalBounds(t *testing.T) {
	shape := tensor.Shape{128, 16}
	init, err := NewVarianceScaling(2, ModeFanOut, DistributionNormal, 3)
	if err != nil {
		t.Fatalf("could not construct initializer: %v", err)
	}

	out, err := init.Init(shape, tensor.Float64)
	if err != nil {
		t.Fatalf("could not generate: %v", err)
	}

	stddev := math.Sqrt(2.0 / 16.0)
	for _, value := range out.Data().([]float64) {
		if math.Abs(value) > 2*stddev {
			t.Fatalf("sample %v outside ± 2 stddev %v", value, stddev)
		}
	}
}

func TestPresetParameters(t *testing.T) {
	tests := []struct {
		name         string
		init         func(seed uint64) (*Initializer, error)
		scale        float64
		mode         string
		distribution string
	}{
		{"lecunUniform", NewLecunUniform, 1, ModeFanIn, DistributionUniform},
		{"glorotNormal", NewGlorotNormal, 1, ModeFanAvg, DistributionNormal},
		{"glorotUniform", NewGlorotUniform, 1, ModeFanAvg, DistributionUniform},
		{"heNormal", NewHeNormal, 2, ModeFanIn, DistributionNormal},
		{"heUniform", NewHeUniform, 2, ModeFanIn, DistributionUniform},
	}

	for _, test := range tests {
		init, err := test.init(7)
		if err != nil {
			t.Fatalf("could not construct %v initializer: %v", test.name, err)
		}
		if init.Type != VarianceScaling {
			t.Errorf("%v: type %v, want %v", test.name, init.Type,
				VarianceScaling)
		}

		config, ok := init.Config.(VarianceScalingConfig)
		if !ok {
			t.Fatalf("%v: config is not a VarianceScalingConfig", test.name)
		}
		if config.Scale != test.scale || config.Mode != test.mode ||
			config.Distribution != test.distribution {
			t.Errorf("%v: config (%v, %v, %v), want (%v, %v, %v)", test.name,
				config.Scale, config.Mode, config.Distribution, test.scale,
				test.mode, test.distribution)
		}
		if config.Seed != 7 {
			t.Errorf("%v: seed %v, want 7", test.name, config.Seed)
		}
	}
}
