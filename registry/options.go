package registry

import (
	"github.com/erraggy/oaskit"
	"github.com/erraggy/oaskit/oaserrors"
)

// Option configures a Registry.
type Option func(*config) error

type config struct {
	references  bool
	namer       NamingFunc
	customNamer NamingFunc
	deduplicate bool
	logger      oaskit.Logger
}

func applyOptions(opts ...Option) (*config, error) {
	cfg := &config{
		references: true,
		namer:      NamingSimple.namer(),
		logger:     oaskit.NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.customNamer != nil {
		cfg.namer = cfg.customNamer
	}
	return cfg, nil
}

// WithReferencesEnabled controls reference generation. When disabled,
// Register returns every schema inline and registers nothing.
// Default: true.
func WithReferencesEnabled(enabled bool) Option {
	return func(cfg *config) error {
		cfg.references = enabled
		return nil
	}
}

// WithNaming selects a built-in naming strategy. Default: NamingSimple.
func WithNaming(strategy NamingStrategy) Option {
	return func(cfg *config) error {
		switch strategy {
		case NamingSimple, NamingPascalPackage:
			cfg.namer = strategy.namer()
			return nil
		default:
			return &oaserrors.ConfigError{Option: "registry naming", Value: int(strategy), Message: "unknown naming strategy"}
		}
	}
}

// WithNamingFunc sets a custom naming function. It takes precedence over
// WithNaming regardless of option order.
func WithNamingFunc(fn NamingFunc) Option {
	return func(cfg *config) error {
		if fn == nil {
			return &oaserrors.ConfigError{Option: "registry naming func", Message: "must not be nil"}
		}
		cfg.customNamer = fn
		return nil
	}
}

// WithDeduplicate makes a type whose schema is structurally equivalent to
// the component already holding its name reuse that component instead of
// taking a suffixed name. Default: false.
func WithDeduplicate(enabled bool) Option {
	return func(cfg *config) error {
		cfg.deduplicate = enabled
		return nil
	}
}

// WithLogger sets the logger. Default: oaskit.NopLogger.
func WithLogger(logger oaskit.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			logger = oaskit.NopLogger{}
		}
		cfg.logger = logger
		return nil
	}
}
