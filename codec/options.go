package codec

import (
	"fmt"

	"github.com/erraggy/oaskit"
)

// DefaultMaxSize is the default maximum input size: 3 MiB.
const DefaultMaxSize int64 = 3 << 20

// DefaultMaxAliasExpansion is the default limit on the number of YAML nodes
// a document may expand to once every alias is followed.
const DefaultMaxAliasExpansion int64 = 1 << 22

// Option configures a Reader or a Writer. Options that do not apply to the
// configured type are ignored.
type Option func(*config) error

type config struct {
	maxSize           int64
	maxAliasExpansion int64
	identicalAliases  bool
	dialect           Dialect
	version           string
	indent            int
	strict            bool
	logger            oaskit.Logger
}

func applyOptions(opts ...Option) (*config, error) {
	cfg := &config{
		maxSize:           DefaultMaxSize,
		maxAliasExpansion: DefaultMaxAliasExpansion,
		indent:            2,
		logger:            oaskit.NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithMaxSize sets the maximum input size in bytes. Inputs larger than n
// fail with a parse error. Default: 3 MiB.
func WithMaxSize(n int64) Option {
	return func(cfg *config) error {
		if n <= 0 {
			return fmt.Errorf("codec: max size must be positive, got %d", n)
		}
		cfg.maxSize = n
		return nil
	}
}

// WithMaxAliasExpansion sets the maximum number of nodes a YAML document
// may expand to through aliases. Zero disables the limit.
func WithMaxAliasExpansion(n int64) Option {
	return func(cfg *config) error {
		if n < 0 {
			return fmt.Errorf("codec: max alias expansion must not be negative, got %d", n)
		}
		cfg.maxAliasExpansion = n
		return nil
	}
}

// WithIdenticalAliases makes every alias of one YAML anchor decode to the
// same raw value (examples, extensions, defaults) instead of equal copies.
// Default: false.
func WithIdenticalAliases(enabled bool) Option {
	return func(cfg *config) error {
		cfg.identicalAliases = enabled
		return nil
	}
}

// WithDialect forces the output dialect of a Writer. The openapi field is
// rewritten to the dialect's default version unless it already belongs to
// the dialect. Default: the dialect of the document's openapi field.
func WithDialect(d Dialect) Option {
	return func(cfg *config) error {
		cfg.dialect = d
		return nil
	}
}

// WithVersion forces the openapi field written by a Writer, e.g. "3.0.3".
// It also selects the matching dialect.
func WithVersion(version string) Option {
	return func(cfg *config) error {
		d, ok := ParseDialect(version)
		if !ok {
			return fmt.Errorf("codec: unsupported OpenAPI version %q", version)
		}
		cfg.version = version
		cfg.dialect = d
		return nil
	}
}

// WithIndent sets the indentation width of written text. Zero writes
// compact JSON. Default: 2.
func WithIndent(spaces int) Option {
	return func(cfg *config) error {
		if spaces < 0 {
			return fmt.Errorf("codec: indent must not be negative, got %d", spaces)
		}
		cfg.indent = spaces
		return nil
	}
}

// WithStrict makes a Writer fail with *oaserrors.ConversionError when
// writing drops or rewrites anything in the target dialect. Default: false.
func WithStrict(enabled bool) Option {
	return func(cfg *config) error {
		cfg.strict = enabled
		return nil
	}
}

// WithLogger sets the logger for debug output. Default: oaskit.NopLogger.
func WithLogger(l oaskit.Logger) Option {
	return func(cfg *config) error {
		if l != nil {
			cfg.logger = l
		}
		return nil
	}
}
