package initializer

// NewHeNormal returns a new He normal weight initializer: a
// VarianceScaling initializer drawing from a truncated normal with
// stddev = sqrt(2 / fan_in).
func NewHeNormal(seed uint64) (*Initializer, error) {
	return NewVarianceScaling(2, ModeFanIn, DistributionNormal, seed)
}

// NewHeUniform returns a new He uniform weight initializer: a
// VarianceScaling initializer drawing uniformly from [-limit, limit]
// with limit = sqrt(6 / fan_in).
func NewHeUniform(seed uint64) (*Initializer, error) {
	return NewVarianceScaling(2, ModeFanIn, DistributionUniform, seed)
}
