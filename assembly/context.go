package assembly

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/erraggy/oaskit"
	"github.com/erraggy/oaskit/filter"
	"github.com/erraggy/oaskit/loader"
	"github.com/erraggy/oaskit/merge"
	"github.com/erraggy/oaskit/model"
	"github.com/erraggy/oaskit/oaserrors"
	"github.com/erraggy/oaskit/registry"
	"github.com/erraggy/oaskit/validator"
)

// Context holds the state of one assembly: the partial models collected
// from each source, the filter chain, and the schema registry used while
// building the annotation model.
//
// Contexts are independent of each other and may be used from different
// goroutines at the same time. A single Context is not safe for concurrent
// use.
type Context struct {
	id        string
	cfg       *Config
	logger    oaskit.Logger
	filters   []filter.Filter
	validator Validator

	reader     *model.OpenAPI
	static     *model.OpenAPI
	annotation *model.OpenAPI
	registry   *registry.Registry

	assembled bool
	document  *model.OpenAPI
}

// New creates an assembly context. cfg is required and is not copied;
// it must not be modified while the context is in use.
func New(cfg *Config, opts ...Option) (*Context, error) {
	if cfg == nil {
		return nil, &oaserrors.ConfigError{Option: "config", Message: "an assembly requires a configuration"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Context{
		id:     uuid.NewString(),
		cfg:    cfg,
		logger: oaskit.NopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("assembly", c.id)
	if c.validator == nil && cfg.ValidateStructure {
		c.validator = validator.New()
	}
	return c, nil
}

// ID returns the unique id of this assembly. It is attached to every log
// entry the context writes.
func (c *Context) ID() string { return c.id }

// Config returns the configuration the context was created with.
func (c *Context) Config() *Config { return c.cfg }

// SetReaderModel sets the model built programmatically by the application.
// It has the lowest precedence.
func (c *Context) SetReaderModel(doc *model.OpenAPI) error {
	return c.set(&c.reader, doc, "SetReaderModel")
}

// SetStaticModel sets the model read from static files. It wins conflicts
// with the reader model.
func (c *Context) SetStaticModel(doc *model.OpenAPI) error {
	return c.set(&c.static, doc, "SetStaticModel")
}

// SetAnnotationModel sets the model produced by scanning annotated code.
// It wins conflicts with every other model.
func (c *Context) SetAnnotationModel(doc *model.OpenAPI) error {
	return c.set(&c.annotation, doc, "SetAnnotationModel")
}

func (c *Context) set(slot **model.OpenAPI, doc *model.OpenAPI, op string) error {
	if err := c.checkOpen(op); err != nil {
		return err
	}
	*slot = doc
	return nil
}

// LoadStatic reads the static files with a loader capped at
// Config.StaticFileMaxSize and sets the result as the static model.
// primary wins conflicts with the standard sources.
func (c *Context) LoadStatic(ctx context.Context, primary *loader.Source, standard ...loader.Source) error {
	if err := c.checkOpen("LoadStatic"); err != nil {
		return err
	}
	l, err := loader.New(
		loader.WithMaxSize(c.cfg.staticFileMaxSize()),
		loader.WithLogger(c.logger),
	)
	if err != nil {
		return err
	}
	doc, err := l.Load(ctx, primary, standard...)
	if err != nil {
		return err
	}
	c.static = doc
	return nil
}

// AddFilter appends a filter to the chain. Filters run in the order they
// were added, after those given with WithFilters.
func (c *Context) AddFilter(f filter.Filter) error {
	if err := c.checkOpen("AddFilter"); err != nil {
		return err
	}
	c.filters = append(c.filters, f)
	return nil
}

// Registry returns the schema registry of this context, creating it on
// first use. Schemas registered with it become components of the
// annotation model.
func (c *Context) Registry() *registry.Registry {
	if c.registry == nil {
		// The options below are always valid.
		c.registry, _ = registry.New(nil,
			registry.WithReferencesEnabled(c.cfg.SchemaReferencesEnabled),
			registry.WithLogger(c.logger),
		)
	}
	return c.registry
}

// Document returns the assembled document.
func (c *Context) Document() (*model.OpenAPI, error) {
	if !c.assembled {
		return nil, &oaserrors.StateError{
			Operation: "Document",
			State:     "open",
			Message:   "the document has not been assembled yet",
		}
	}
	return c.document, nil
}

func (c *Context) checkOpen(op string) error {
	if c.assembled {
		return &oaserrors.StateError{
			Operation: op,
			State:     "assembled",
			Message:   "the assembly context has already been finalized",
		}
	}
	return nil
}

// Assemble merges the partial models, runs the filter chain, fills in
// required fields and injects configured servers. The context is final
// afterwards: a second call returns a state error.
//
// Models are merged with the annotation model over the static model over
// the reader model. None of them is modified.
func (c *Context) Assemble() (doc *model.OpenAPI, err error) {
	if err := c.checkOpen("Assemble"); err != nil {
		return nil, err
	}
	c.logger.Debug("assembly started")

	doc, err = c.merged()
	if err != nil {
		return nil, err
	}

	filters := c.filterChain()
	filter.Apply(doc, filters...)
	c.logger.Debug("filters applied", "count", len(filters))

	applyDefaults(doc, c.cfg)
	injectServers(doc, c.cfg)

	if err := checkOperationIDs(doc, c.cfg.DuplicateOperationIDBehavior, c.logger); err != nil {
		return nil, err
	}
	if c.validator != nil {
		if err := c.validator.Validate(doc); err != nil {
			c.logger.Error("assembled document is invalid", "error", err)
			return nil, err
		}
	}

	c.assembled = true
	c.document = doc
	c.logger.Info("assembly completed",
		"openapi", doc.OpenAPI,
		"paths", doc.Paths.Items.Len(),
	)
	return doc, nil
}

// merged folds the partial models. A structural mismatch between them
// surfaces as *oaserrors.MergeError.
func (c *Context) merged() (doc *model.OpenAPI, err error) {
	defer func() {
		if r := recover(); r != nil {
			var merr *oaserrors.MergeError
			if e, ok := r.(error); ok && errors.As(e, &merr) {
				err = fmt.Errorf("assembly: %w", merr)
				return
			}
			panic(r)
		}
	}()

	annotation := c.annotation
	if c.registry != nil && c.registry.Len() > 0 {
		annotation = merge.Merge(annotation, &model.OpenAPI{Components: c.registry.Components()})
	}
	doc = merge.Documents(annotation, c.static, c.reader)
	if doc == nil {
		doc = &model.OpenAPI{}
	}
	c.logger.Debug("models merged",
		"reader", c.reader != nil,
		"static", c.static != nil,
		"annotation", annotation != nil,
	)
	return doc, nil
}

func (c *Context) filterChain() []filter.Filter {
	filters := c.filters
	if c.cfg.RemoveUnusedComponents && !filter.HasID(filters, filter.UnusedComponentsID) {
		filters = append(filters[:len(filters):len(filters)],
			filter.NewUnusedComponents(filter.WithLogger(c.logger)))
	}
	return filters
}
