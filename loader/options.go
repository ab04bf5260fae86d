package loader

import (
	"fmt"

	"github.com/erraggy/oaskit"
	"github.com/erraggy/oaskit/codec"
)

// Option configures a Loader.
type Option func(*config) error

type config struct {
	maxSize     int64
	accept      func(locator string) bool
	logger      oaskit.Logger
	reader      *codec.Reader
	concurrency int
}

func applyOptions(opts ...Option) (*config, error) {
	cfg := &config{
		maxSize:     codec.DefaultMaxSize,
		logger:      oaskit.NopLogger{},
		concurrency: 4,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithMaxSize caps the size of every source in bytes. It is ignored when
// WithReader supplies a reader. Default: codec.DefaultMaxSize.
func WithMaxSize(n int64) Option {
	return func(cfg *config) error {
		if n <= 0 {
			return fmt.Errorf("loader: max size must be positive, got %d", n)
		}
		cfg.maxSize = n
		return nil
	}
}

// WithLocatorFilter skips every source for which accept returns false.
func WithLocatorFilter(accept func(locator string) bool) Option {
	return func(cfg *config) error {
		cfg.accept = accept
		return nil
	}
}

// WithLogger sets the logger. Default: oaskit.NopLogger.
func WithLogger(logger oaskit.Logger) Option {
	return func(cfg *config) error {
		if logger != nil {
			cfg.logger = logger
		}
		return nil
	}
}

// WithReader sets the codec reader used to decode sources.
func WithReader(r *codec.Reader) Option {
	return func(cfg *config) error {
		if r == nil {
			return fmt.Errorf("loader: reader must not be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithConcurrency sets how many sources are decoded at once. Default: 4.
func WithConcurrency(n int) Option {
	return func(cfg *config) error {
		if n < 1 {
			return fmt.Errorf("loader: concurrency must be at least 1, got %d", n)
		}
		cfg.concurrency = n
		return nil
	}
}
