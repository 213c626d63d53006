package initializer

// NewLecunUniform returns a new LeCun uniform weight initializer: a
// VarianceScaling initializer drawing uniformly from [-limit, limit]
// with limit = sqrt(3 / fan_in).
func NewLecunUniform(seed uint64) (*Initializer, error) {
	return NewVarianceScaling(1, ModeFanIn, DistributionUniform, seed)
}
