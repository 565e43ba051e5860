package builder

import "math/rand"

// builderConfig is the resolved option set handed to every Constructor.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand // nil unless WithSeed/WithRand
	weightFn WeightFn
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight, or 0 for unweighted graphs.
func (c builderConfig) weight(weighted bool) float64 {
	if !weighted {
		return 0
	}

	return c.weightFn(c.rng)
}
