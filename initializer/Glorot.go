package initializer

// NewGlorotNormal returns a new Glorot (Xavier) normal weight
// initializer: a VarianceScaling initializer drawing from a truncated
// normal with stddev = sqrt(2 / (fan_in + fan_out)).
func NewGlorotNormal(seed uint64) (*Initializer, error) {
	return NewVarianceScaling(1, ModeFanAvg, DistributionNormal, seed)
}

// NewGlorotUniform returns a new Glorot (Xavier) uniform weight
// initializer: a VarianceScaling initializer drawing uniformly from
// [-limit, limit] with limit = sqrt(6 / (fan_in + fan_out)).
func NewGlorotUniform(seed uint64) (*Initializer, error) {
	return NewVarianceScaling(1, ModeFanAvg, DistributionUniform, seed)
}
