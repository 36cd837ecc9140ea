package sensor

// DefaultSeed is the base seed used when [WithSeed] is not given.
const DefaultSeed int64 = 42

type generatorConfig struct {
	seed int64
}

// Option configures [Generate].
type Option func(*generatorConfig)

// WithSeed sets the base PRNG seed. Sensor s uses seed+s.
func WithSeed(seed int64) Option {
	return func(cfg *generatorConfig) {
		cfg.seed = seed
	}
}

func applyOptions(opts []Option) generatorConfig {
	cfg := generatorConfig{seed: DefaultSeed}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
