package assembly

import (
	"github.com/erraggy/oaskit/filter"
	"github.com/erraggy/oaskit/model"
)

// Inputs are the partial models of one assembly. Any of them may be nil.
type Inputs struct {
	Reader     *model.OpenAPI
	Static     *model.OpenAPI
	Annotation *model.OpenAPI
}

// Run assembles in into a new document in one call. It is equivalent to
// creating a Context, setting each model, adding filters and calling
// Assemble.
func Run(cfg *Config, in Inputs, filters ...filter.Filter) (*model.OpenAPI, error) {
	return RunWithOptions(cfg, in, WithFilters(filters...))
}

// RunWithOptions is Run with Context options.
func RunWithOptions(cfg *Config, in Inputs, opts ...Option) (*model.OpenAPI, error) {
	c, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	c.reader = in.Reader
	c.static = in.Static
	c.annotation = in.Annotation
	return c.Assemble()
}
