package assembly

import (
	"github.com/erraggy/oaskit"
	"github.com/erraggy/oaskit/filter"
	"github.com/erraggy/oaskit/model"
)

// Validator checks an assembled document.
type Validator interface {
	Validate(doc *model.OpenAPI) error
}

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the logger. Every entry carries the assembly id.
// Default: oaskit.NopLogger.
func WithLogger(logger oaskit.Logger) Option {
	return func(c *Context) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFilters adds filters, in order, ahead of any added later.
func WithFilters(filters ...filter.Filter) Option {
	return func(c *Context) {
		c.filters = append(c.filters, filters...)
	}
}

// WithValidator sets the validator run after assembly. It replaces the
// default structural validator selected by Config.ValidateStructure.
func WithValidator(v Validator) Option {
	return func(c *Context) {
		c.validator = v
	}
}
