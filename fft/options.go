package fft

import "go.uber.org/zap"

type config struct {
	directDFT bool
	logger    *zap.Logger
}

// Option configures a [Processor].
type Option func(*config)

// WithDirectDFT skips the FFT planner and always uses the direct DFT.
func WithDirectDFT() Option {
	return func(cfg *config) {
		cfg.directDFT = true
	}
}

// WithLogger sets the logger for progress and timing records.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	cfg.logger = cfg.logger.Named(Tag)
	return cfg
}
