package initializer

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Serialized is the portable representation of an Initializer: the
// class name of its variant together with the flat configuration
// record its constructor needs.
type Serialized struct {
	ClassName string                 `json:"class_name"`
	Config    map[string]interface{} `json:"config"`
}

// configDefaults maps each canonical class name to a pointer to its
// Config, pre-filled with that variant's default parameters so that
// missing configuration keys fall back to them.
var configDefaults = map[string]func() interface{}{
	string(Zeros):    func() interface{} { return &ZerosConfig{} },
	string(Ones):     func() interface{} { return &OnesConfig{} },
	string(Constant): func() interface{} { return &ConstantConfig{} },
	string(RandomNormal): func() interface{} {
		return &RandomNormalConfig{StdDev: 0.05}
	},
	string(RandomUniform): func() interface{} {
		return &RandomUniformConfig{Min: -0.05, Max: 0.05}
	},
	string(TruncatedNormal): func() interface{} {
		return &TruncatedNormalConfig{StdDev: 0.05}
	},
	string(VarianceScaling): func() interface{} {
		return &VarianceScalingConfig{
			Scale:        1,
			Mode:         ModeFanIn,
			Distribution: DistributionNormal,
		}
	},
	string(Orthogonal): func() interface{} {
		return &OrthogonalConfig{Gain: 1}
	},
	string(ConvolutionAware): func() interface{} {
		return &ConvolutionAwareConfig{EpsStd: 0.05}
	},
	string(Identity): func() interface{} {
		return &IdentityConfig{Gain: 1}
	},
}

// aliases maps compatibility names onto canonical class names
var aliases = map[string]string{
	"zero":              string(Zeros),
	"zeros":             string(Zeros),
	"one":               string(Ones),
	"ones":              string(Ones),
	"constant":          string(Constant),
	"uniform":           string(RandomUniform),
	"random_uniform":    string(RandomUniform),
	"normal":            string(RandomNormal),
	"random_normal":     string(RandomNormal),
	"truncated_normal":  string(TruncatedNormal),
	"variance_scaling":  string(VarianceScaling),
	"identity":          string(Identity),
	"orthogonal":        string(Orthogonal),
	"cai":               string(ConvolutionAware),
	"CAI":               string(ConvolutionAware),
	"convolution_aware": string(ConvolutionAware),
}

// presets maps the named variance-scaling presets onto their
// constructors, which are parameterized only by seed
var presets = map[string]func(seed uint64) (*Initializer, error){
	"lecun_uniform":  NewLecunUniform,
	"glorot_normal":  NewGlorotNormal,
	"glorot_uniform": NewGlorotUniform,
	"he_normal":      NewHeNormal,
	"he_uniform":     NewHeUniform,
}

// Serialize returns the portable representation of an initializer
func Serialize(init *Initializer) (*Serialized, error) {
	raw, err := json.Marshal(init.Config)
	if err != nil {
		return nil, fmt.Errorf("serialize: %v", err)
	}

	config := map[string]interface{}{}
	if err := json.Unmarshal(raw, &config); err != nil {
		return nil, fmt.Errorf("serialize: %v", err)
	}
	return &Serialized{ClassName: string(init.Type), Config: config}, nil
}

// Deserialize reconstructs an initializer from its portable
// representation. Class names are resolved against the canonical
// variant names, their compatibility aliases, and the named
// variance-scaling presets; anything else fails with
// ErrUnresolvedIdentifier.
func Deserialize(serialized *Serialized) (*Initializer, error) {
	name := serialized.ClassName
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}

	if factory, ok := configDefaults[name]; ok {
		value := factory()
		raw, err := json.Marshal(serialized.Config)
		if err != nil {
			return nil, fmt.Errorf("deserialize: %v", err)
		}
		if err := json.Unmarshal(raw, value); err != nil {
			return nil, fmt.Errorf("deserialize: %v", err)
		}

		config := reflect.ValueOf(value).Elem().Interface().(Config)
		return newInitializer(config)
	}

	if preset, ok := presets[serialized.ClassName]; ok {
		return preset(configSeed(serialized.Config))
	}

	return nil, fmt.Errorf("deserialize: cannot resolve class name %q: %w",
		serialized.ClassName, ErrUnresolvedIdentifier)
}

// Get resolves an identifier to an initializer. The identifier may be
// a name string (resolved with an empty configuration), a Serialized
// value or equivalent map, or an already-constructed Initializer,
// which is returned unchanged. Any other identifier fails with
// ErrInvalidArgument.
func Get(identifier interface{}) (*Initializer, error) {
	switch id := identifier.(type) {
	case *Initializer:
		return id, nil

	case string:
		return Deserialize(&Serialized{
			ClassName: id,
			Config:    map[string]interface{}{},
		})

	case *Serialized:
		return Deserialize(id)

	case Serialized:
		return Deserialize(&id)

	case map[string]interface{}:
		serialized, err := serializedFromMap(id)
		if err != nil {
			return nil, err
		}
		return Deserialize(serialized)

	default:
		return nil, fmt.Errorf("get: could not interpret initializer "+
			"identifier %v: %w", identifier, ErrInvalidArgument)
	}
}

// MarshalJSON implements the json.Marshaler interface
func (i *Initializer) MarshalJSON() ([]byte, error) {
	serialized, err := Serialize(i)
	if err != nil {
		return nil, err
	}
	return json.Marshal(serialized)
}

// UnmarshalJSON implements the json.Unmarshaller interface
func (i *Initializer) UnmarshalJSON(data []byte) error {
	var serialized Serialized
	if err := json.Unmarshal(data, &serialized); err != nil {
		return err
	}

	init, err := Deserialize(&serialized)
	if err != nil {
		return err
	}
	i.Type = init.Type
	i.Config = init.Config
	return nil
}

// serializedFromMap interprets a generic configuration mapping as a
// Serialized record
func serializedFromMap(m map[string]interface{}) (*Serialized, error) {
	className, ok := m["class_name"].(string)
	if !ok {
		return nil, fmt.Errorf("get: configuration mapping has no "+
			"class_name: %w", ErrInvalidArgument)
	}

	config, _ := m["config"].(map[string]interface{})
	if config == nil {
		config = map[string]interface{}{}
	}
	return &Serialized{ClassName: className, Config: config}, nil
}

// configSeed extracts an optional seed from a preset's configuration
func configSeed(config map[string]interface{}) uint64 {
	switch seed := config["seed"].(type) {
	case float64:
		return uint64(seed)
	case int:
		return uint64(seed)
	case uint64:
		return seed
	default:
		return NoSeed
	}
}
