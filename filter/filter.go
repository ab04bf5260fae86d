package filter

import "github.com/erraggy/oaskit/model"

// Filter is any value implementing at least one of the capability
// interfaces below. Apply calls only the callbacks a filter implements.
type Filter any

// SchemaFilter rewrites schemas, including every nested sub-schema.
type SchemaFilter interface {
	FilterSchema(*model.Schema) *model.Schema
}

// ParameterFilter rewrites parameters.
type ParameterFilter interface {
	FilterParameter(*model.Parameter) *model.Parameter
}

// HeaderFilter rewrites headers.
type HeaderFilter interface {
	FilterHeader(*model.Header) *model.Header
}

// ExampleFilter rewrites examples.
type ExampleFilter interface {
	FilterExample(*model.Example) *model.Example
}

// RequestBodyFilter rewrites request bodies.
type RequestBodyFilter interface {
	FilterRequestBody(*model.RequestBody) *model.RequestBody
}

// APIResponseFilter rewrites responses.
type APIResponseFilter interface {
	FilterAPIResponse(*model.APIResponse) *model.APIResponse
}

// LinkFilter rewrites links.
type LinkFilter interface {
	FilterLink(*model.Link) *model.Link
}

// CallbackFilter rewrites callbacks.
type CallbackFilter interface {
	FilterCallback(*model.Callback) *model.Callback
}

// SecuritySchemeFilter rewrites security schemes.
type SecuritySchemeFilter interface {
	FilterSecurityScheme(*model.SecurityScheme) *model.SecurityScheme
}

// ServerFilter rewrites servers.
type ServerFilter interface {
	FilterServer(*model.Server) *model.Server
}

// TagFilter rewrites tags.
type TagFilter interface {
	FilterTag(*model.Tag) *model.Tag
}

// OperationFilter rewrites operations.
type OperationFilter interface {
	FilterOperation(*model.Operation) *model.Operation
}

// PathItemFilter rewrites path items.
type PathItemFilter interface {
	FilterPathItem(*model.PathItem) *model.PathItem
}

// DocumentFilter sees the whole document after every per-node callback of
// the same filter has run.
type DocumentFilter interface {
	FilterOpenAPI(*model.OpenAPI)
}

// Identity is implemented by filters that must not be registered twice.
type Identity interface {
	FilterID() string
}

// HasID reports whether filters contains a filter with the given identity.
func HasID(filters []Filter, id string) bool {
	for _, f := range filters {
		if ident, ok := f.(Identity); ok && ident.FilterID() == id {
			return true
		}
	}
	return false
}

// Funcs adapts plain functions to the capability interfaces. Nil fields
// leave their nodes unchanged.
type Funcs struct {
	Schema         func(*model.Schema) *model.Schema
	Parameter      func(*model.Parameter) *model.Parameter
	Header         func(*model.Header) *model.Header
	Example        func(*model.Example) *model.Example
	RequestBody    func(*model.RequestBody) *model.RequestBody
	APIResponse    func(*model.APIResponse) *model.APIResponse
	Link           func(*model.Link) *model.Link
	Callback       func(*model.Callback) *model.Callback
	SecurityScheme func(*model.SecurityScheme) *model.SecurityScheme
	Server         func(*model.Server) *model.Server
	Tag            func(*model.Tag) *model.Tag
	Operation      func(*model.Operation) *model.Operation
	PathItem       func(*model.PathItem) *model.PathItem
	OpenAPI        func(*model.OpenAPI)
}

// call applies fn when it is set.
func call[T any](fn func(T) T, v T) T {
	if fn == nil {
		return v
	}
	return fn(v)
}

// FilterSchema implements SchemaFilter.
func (f Funcs) FilterSchema(s *model.Schema) *model.Schema { return call(f.Schema, s) }

// FilterParameter implements ParameterFilter.
func (f Funcs) FilterParameter(p *model.Parameter) *model.Parameter { return call(f.Parameter, p) }

// FilterHeader implements HeaderFilter.
func (f Funcs) FilterHeader(h *model.Header) *model.Header { return call(f.Header, h) }

// FilterExample implements ExampleFilter.
func (f Funcs) FilterExample(e *model.Example) *model.Example { return call(f.Example, e) }

// FilterRequestBody implements RequestBodyFilter.
func (f Funcs) FilterRequestBody(b *model.RequestBody) *model.RequestBody {
	return call(f.RequestBody, b)
}

// FilterAPIResponse implements APIResponseFilter.
func (f Funcs) FilterAPIResponse(r *model.APIResponse) *model.APIResponse {
	return call(f.APIResponse, r)
}

// FilterLink implements LinkFilter.
func (f Funcs) FilterLink(l *model.Link) *model.Link { return call(f.Link, l) }

// FilterCallback implements CallbackFilter.
func (f Funcs) FilterCallback(c *model.Callback) *model.Callback { return call(f.Callback, c) }

// FilterSecurityScheme implements SecuritySchemeFilter.
func (f Funcs) FilterSecurityScheme(s *model.SecurityScheme) *model.SecurityScheme {
	return call(f.SecurityScheme, s)
}

// FilterServer implements ServerFilter.
func (f Funcs) FilterServer(s *model.Server) *model.Server { return call(f.Server, s) }

// FilterTag implements TagFilter.
func (f Funcs) FilterTag(t *model.Tag) *model.Tag { return call(f.Tag, t) }

// FilterOperation implements OperationFilter.
func (f Funcs) FilterOperation(op *model.Operation) *model.Operation { return call(f.Operation, op) }

// FilterPathItem implements PathItemFilter.
func (f Funcs) FilterPathItem(p *model.PathItem) *model.PathItem { return call(f.PathItem, p) }

// FilterOpenAPI implements DocumentFilter.
func (f Funcs) FilterOpenAPI(doc *model.OpenAPI) {
	if f.OpenAPI != nil {
		f.OpenAPI(doc)
	}
}
