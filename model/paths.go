package model

import "strings"

// Paths holds the relative paths to the individual endpoints. Items with
// the same path are merged recursively so that two sources can contribute
// different operations on one path.
type Paths struct {
	Items      *Map[*PathItem]
	Extensions *Map[any]
}

var pathsDescriptor = describe("Paths", func() *Paths { return &Paths{} },
	inline(mergeEntries(mapProp("paths", func(n *Paths) **Map[*PathItem] { return &n.Items }))),
	extensionsProp(func(n *Paths) **Map[any] { return &n.Extensions }),
)

// Descriptor implements Node.
func (*Paths) Descriptor() *Descriptor { return pathsDescriptor }

// ExtensionMap implements Extensible.
func (n *Paths) ExtensionMap() *Map[any] { return n.Extensions }

// SetExtensionMap implements Extensible.
func (n *Paths) SetExtensionMap(m *Map[any]) { n.Extensions = m }

// Get returns the item registered for path, or nil.
func (n *Paths) Get(path string) *PathItem {
	if n == nil {
		return nil
	}
	return n.Items.Value(path)
}

// Set registers item under path.
func (n *Paths) Set(path string, item *PathItem) {
	if n.Items == nil {
		n.Items = NewMap[*PathItem]()
	}
	n.Items.Set(path, item)
}

// HTTP methods in the order they are declared on a PathItem.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// Methods lists the HTTP methods a PathItem can hold.
var Methods = []string{MethodGet, MethodPut, MethodPost, MethodDelete, MethodOptions, MethodHead, MethodPatch, MethodTrace}

// PathItem describes the operations available on a single path.
type PathItem struct {
	Ref         string
	Summary     string
	Description string
	Get         *Operation
	Put         *Operation
	Post        *Operation
	Delete      *Operation
	Options     *Operation
	Head        *Operation
	Patch       *Operation
	Trace       *Operation
	Servers     []*Server
	Parameters  []*Parameter
	Extensions  *Map[any]
}

var pathItemDescriptor = describe("PathItem", func() *PathItem { return &PathItem{} },
	stringProp("$ref", func(n *PathItem) *string { return &n.Ref }),
	stringProp("summary", func(n *PathItem) *string { return &n.Summary }),
	stringProp("description", func(n *PathItem) *string { return &n.Description }),
	objectProp(MethodGet, func(n *PathItem) **Operation { return &n.Get }),
	objectProp(MethodPut, func(n *PathItem) **Operation { return &n.Put }),
	objectProp(MethodPost, func(n *PathItem) **Operation { return &n.Post }),
	objectProp(MethodDelete, func(n *PathItem) **Operation { return &n.Delete }),
	objectProp(MethodOptions, func(n *PathItem) **Operation { return &n.Options }),
	objectProp(MethodHead, func(n *PathItem) **Operation { return &n.Head }),
	objectProp(MethodPatch, func(n *PathItem) **Operation { return &n.Patch }),
	objectProp(MethodTrace, func(n *PathItem) **Operation { return &n.Trace }),
	listProp("servers", func(n *PathItem) *[]*Server { return &n.Servers }),
	listProp("parameters", func(n *PathItem) *[]*Parameter { return &n.Parameters }),
	extensionsProp(func(n *PathItem) **Map[any] { return &n.Extensions }),
)

// Descriptor implements Node.
func (*PathItem) Descriptor() *Descriptor { return pathItemDescriptor }

// ExtensionMap implements Extensible.
func (n *PathItem) ExtensionMap() *Map[any] { return n.Extensions }

// SetExtensionMap implements Extensible.
func (n *PathItem) SetExtensionMap(m *Map[any]) { n.Extensions = m }

// Reference implements Referenceable.
func (n *PathItem) Reference() string { return n.Ref }

// SetReference implements Referenceable.
func (n *PathItem) SetReference(ref string) { n.Ref = ref }

// Operation returns the operation for an HTTP method (case-insensitive).
func (n *PathItem) Operation(method string) *Operation {
	if n == nil {
		return nil
	}
	if p := pathItemDescriptor.Property(strings.ToLower(method)); p != nil && p.Kind == KindObject {
		op, _ := p.Get(n).(*Operation)
		return op
	}
	return nil
}

// SetOperation replaces the operation for an HTTP method. A nil op removes it.
func (n *PathItem) SetOperation(method string, op *Operation) {
	if p := pathItemDescriptor.Property(strings.ToLower(method)); p != nil && p.Kind == KindObject {
		p.Set(n, op)
	}
}

// Operations iterates the non-nil operations in method order.
func (n *PathItem) Operations(fn func(method string, op *Operation)) {
	if n == nil {
		return
	}
	for _, m := range Methods {
		if op := n.Operation(m); op != nil {
			fn(m, op)
		}
	}
}

// Operation describes a single API operation on a path.
type Operation struct {
	Tags         []string
	Summary      string
	Description  string
	ExternalDocs *ExternalDocumentation
	OperationID  string
	Parameters   []*Parameter
	RequestBody  *RequestBody
	Responses    *Responses
	Callbacks    *Map[*Callback]
	Deprecated   *bool
	Security     []*SecurityRequirement
	Servers      []*Server
	Extensions   *Map[any]
}

var operationDescriptor = describe("Operation", func() *Operation { return &Operation{} },
	listProp("tags", func(n *Operation) *[]string { return &n.Tags }),
	stringProp("summary", func(n *Operation) *string { return &n.Summary }),
	stringProp("description", func(n *Operation) *string { return &n.Description }),
	objectProp("externalDocs", func(n *Operation) **ExternalDocumentation { return &n.ExternalDocs }),
	stringProp("operationId", func(n *Operation) *string { return &n.OperationID }),
	listProp("parameters", func(n *Operation) *[]*Parameter { return &n.Parameters }),
	objectProp("requestBody", func(n *Operation) **RequestBody { return &n.RequestBody }),
	objectProp("responses", func(n *Operation) **Responses { return &n.Responses }),
	mapProp("callbacks", func(n *Operation) **Map[*Callback] { return &n.Callbacks }),
	boolProp("deprecated", func(n *Operation) **bool { return &n.Deprecated }),
	listProp("security", func(n *Operation) *[]*SecurityRequirement { return &n.Security }),
	listProp("servers", func(n *Operation) *[]*Server { return &n.Servers }),
	extensionsProp(func(n *Operation) **Map[any] { return &n.Extensions }),
)

// Descriptor implements Node.
func (*Operation) Descriptor() *Descriptor { return operationDescriptor }

// ExtensionMap implements Extensible.
func (n *Operation) ExtensionMap() *Map[any] { return n.Extensions }

// SetExtensionMap implements Extensible.
func (n *Operation) SetExtensionMap(m *Map[any]) { n.Extensions = m }

// Parameter describes a single operation parameter.
type Parameter struct {
	Ref             string
	Name            string
	In              string
	Description     string
	Required        *bool
	Deprecated      *bool
	AllowEmptyValue *bool
	Style           string
	Explode         *bool
	AllowReserved   *bool
	Schema          *Schema
	Example         any
	Examples        *Map[*Example]
	Content         *Map[*MediaType]
	Extensions      *Map[any]
}

var parameterDescriptor = describe("Parameter", func() *Parameter { return &Parameter{} },
	stringProp("$ref", func(n *Parameter) *string { return &n.Ref }),
	stringProp("name", func(n *Parameter) *string { return &n.Name }),
	stringProp("in", func(n *Parameter) *string { return &n.In }),
	stringProp("description", func(n *Parameter) *string { return &n.Description }),
	boolProp("required", func(n *Parameter) **bool { return &n.Required }),
	boolProp("deprecated", func(n *Parameter) **bool { return &n.Deprecated }),
	boolProp("allowEmptyValue", func(n *Parameter) **bool { return &n.AllowEmptyValue }),
	stringProp("style", func(n *Parameter) *string { return &n.Style }),
	boolProp("explode", func(n *Parameter) **bool { return &n.Explode }),
	boolProp("allowReserved", func(n *Parameter) **bool { return &n.AllowReserved }),
	objectProp("schema", func(n *Parameter) **Schema { return &n.Schema }),
	rawProp("example", func(n *Parameter) *any { return &n.Example }),
	mapProp("examples", func(n *Parameter) **Map[*Example] { return &n.Examples }),
	mapProp("content", func(n *Parameter) **Map[*MediaType] { return &n.Content }),
	extensionsProp(func(n *Parameter) **Map[any] { return &n.Extensions }),
)

// Descriptor implements Node.
func (*Parameter) Descriptor() *Descriptor { return parameterDescriptor }

// ExtensionMap implements Extensible.
func (n *Parameter) ExtensionMap() *Map[any] { return n.Extensions }

// SetExtensionMap implements Extensible.
func (n *Parameter) SetExtensionMap(m *Map[any]) { n.Extensions = m }

// Reference implements Referenceable.
func (n *Parameter) Reference() string { return n.Ref }

// SetReference implements Referenceable.
func (n *Parameter) SetReference(ref string) { n.Ref = ref }

// Header follows the structure of Parameter without name and in.
type Header struct {
	Ref             string
	Description     string
	Required        *bool
	Deprecated      *bool
	AllowEmptyValue *bool
	Style           string
	Explode         *bool
	AllowReserved   *bool
	Schema          *Schema
	Example         any
	Examples        *Map[*Example]
	Content         *Map[*MediaType]
	Extensions      *Map[any]
}

var headerDescriptor = describe("Header", func() *Header { return &Header{} },
	stringProp("$ref", func(n *Header) *string { return &n.Ref }),
	stringProp("description", func(n *Header) *string { return &n.Description }),
	boolProp("required", func(n *Header) **bool { return &n.Required }),
	boolProp("deprecated", func(n *Header) **bool { return &n.Deprecated }),
	boolProp("allowEmptyValue", func(n *Header) **bool { return &n.AllowEmptyValue }),
	stringProp("style", func(n *Header) *string { return &n.Style }),
	boolProp("explode", func(n *Header) **bool { return &n.Explode }),
	boolProp("allowReserved", func(n *Header) **bool { return &n.AllowReserved }),
	objectProp("schema", func(n *Header) **Schema { return &n.Schema }),
	rawProp("example", func(n *Header) *any { return &n.Example }),
	mapProp("examples", func(n *Header) **Map[*Example] { return &n.Examples }),
	mapProp("content", func(n *Header) **Map[*MediaType] { return &n.Content }),
	extensionsProp(func(n *Header) **Map[any] { return &n.Extensions }),
)

// Descriptor implements Node.
func (*Header) Descriptor() *Descriptor { return headerDescriptor }

// ExtensionMap implements Extensible.
func (n *Header) ExtensionMap() *Map[any] { return n.Extensions }

// SetExtensionMap implements Extensible.
func (n *Header) SetExtensionMap(m *Map[any]) { n.Extensions = m }

// Reference implements Referenceable.
func (n *Header) Reference() string { return n.Ref }

// SetReference implements Referenceable.
func (n *Header) SetReference(ref string) { n.Ref = ref }

// RequestBody describes a single request body.
type RequestBody struct {
	Ref         string
	Description string
	Content     *Map[*MediaType]
	Required    *bool
	Extensions  *Map[any]
}

var requestBodyDescriptor = describe("RequestBody", func() *RequestBody { return &RequestBody{} },
	stringProp("$ref", func(n *RequestBody) *string { return &n.Ref }),
	stringProp("description", func(n *RequestBody) *string { return &n.Description }),
	mapProp("content", func(n *RequestBody) **Map[*MediaType] { return &n.Content }),
	boolProp("required", func(n *RequestBody) **bool { return &n.Required }),
	extensionsProp(func(n *RequestBody) **Map[any] { return &n.Extensions }),
)

// Descriptor implements Node.
func (*RequestBody) Descriptor() *Descriptor { return requestBodyDescriptor }

// ExtensionMap implements Extensible.
func (n *RequestBody) ExtensionMap() *Map[any] { return n.Extensions }

// SetExtensionMap implements Extensible.
func (n *RequestBody) SetExtensionMap(m *Map[any]) { n.Extensions = m }

// Reference implements Referenceable.
func (n *RequestBody) Reference() string { return n.Ref }

// SetReference implements Referenceable.
func (n *RequestBody) SetReference(ref string) { n.Ref = ref }

// MediaType provides schema and examples for one media type.
type MediaType struct {
	Schema     *Schema
	Example    any
	Examples   *Map[*Example]
	Encoding   *Map[*Encoding]
	Extensions *Map[any]
}

var mediaTypeDescriptor = describe("MediaType", func() *MediaType { return &MediaType{} },
	objectProp("schema", func(n *MediaType) **Schema { return &n.Schema }),
	rawProp("example", func(n *MediaType) *any { return &n.Example }),
	mapProp("examples", func(n *MediaType) **Map[*Example] { return &n.Examples }),
	mapProp("encoding", func(n *MediaType) **Map[*Encoding] { return &n.Encoding }),
	extensionsProp(func(n *MediaType) **Map[any] { return &n.Extensions }),
)

// Descriptor implements Node.
func (*MediaType) Descriptor() *Descriptor { return mediaTypeDescriptor }

// ExtensionMap implements Extensible.
func (n *MediaType) ExtensionMap() *Map[any] { return n.Extensions }

// SetExtensionMap implements Extensible.
func (n *MediaType) SetExtensionMap(m *Map[any]) { n.Extensions = m }

// Encoding is the encoding of a single schema property.
type Encoding struct {
	ContentType   string
	Headers       *Map[*Header]
	Style         string
	Explode       *bool
	AllowReserved *bool
	Extensions    *Map[any]
}

var encodingDescriptor = describe("Encoding", func() *Encoding { return &Encoding{} },
	stringProp("contentType", func(n *Encoding) *string { return &n.ContentType }),
	mapProp("headers", func(n *Encoding) **Map[*Header] { return &n.Headers }),
	stringProp("style", func(n *Encoding) *string { return &n.Style }),
	boolProp("explode", func(n *Encoding) **bool { return &n.Explode }),
	boolProp("allowReserved", func(n *Encoding) **bool { return &n.AllowReserved }),
	extensionsProp(func(n *Encoding) **Map[any] { return &n.Extensions }),
)

// Descriptor implements Node.
func (*Encoding) Descriptor() *Descriptor { return encodingDescriptor }

// ExtensionMap implements Extensible.
func (n *Encoding) ExtensionMap() *Map[any] { return n.Extensions }

// SetExtensionMap implements Extensible.
func (n *Encoding) SetExtensionMap(m *Map[any]) { n.Extensions = m }

// Responses is the container of expected responses of an operation.
type Responses struct {
	Default    *APIResponse
	Codes      *Map[*APIResponse]
	Extensions *Map[any]
}

var responsesDescriptor = describe("Responses", func() *Responses { return &Responses{} },
	objectProp("default", func(n *Responses) **APIResponse { return &n.Default }),
	inline(mapProp("codes", func(n *Responses) **Map[*APIResponse] { return &n.Codes })),
	extensionsProp(func(n *Responses) **Map[any] { return &n.Extensions }),
)

// Descriptor implements Node.
func (*Responses) Descriptor() *Descriptor { return responsesDescriptor }

// ExtensionMap implements Extensible.
func (n *Responses) ExtensionMap() *Map[any] { return n.Extensions }

// SetExtensionMap implements Extensible.
func (n *Responses) SetExtensionMap(m *Map[any]) { n.Extensions = m }

// Set registers a response for a status code, or as the default response
// when code is "default".
func (n *Responses) Set(code string, r *APIResponse) {
	if code == "default" {
		n.Default = r
		return
	}
	if n.Codes == nil {
		n.Codes = NewMap[*APIResponse]()
	}
	n.Codes.Set(code, r)
}

// APIResponse describes a single response from an operation.
type APIResponse struct {
	Ref         string
	Description string
	Headers     *Map[*Header]
	Content     *Map[*MediaType]
	Links       *Map[*Link]
	Extensions  *Map[any]
}

var apiResponseDescriptor = describe("APIResponse", func() *APIResponse { return &APIResponse{} },
	stringProp("$ref", func(n *APIResponse) *string { return &n.Ref }),
	stringProp("description", func(n *APIResponse) *string { return &n.Description }),
	mapProp("headers", func(n *APIResponse) **Map[*Header] { return &n.Headers }),
	mapProp("content", func(n *APIResponse) **Map[*MediaType] { return &n.Content }),
	mapProp("links", func(n *APIResponse) **Map[*Link] { return &n.Links }),
	extensionsProp(func(n *APIResponse) **Map[any] { return &n.Extensions }),
)

// Descriptor implements Node.
func (*APIResponse) Descriptor() *Descriptor { return apiResponseDescriptor }

// ExtensionMap implements Extensible.
func (n *APIResponse) ExtensionMap() *Map[any] { return n.Extensions }

// SetExtensionMap implements Extensible.
func (n *APIResponse) SetExtensionMap(m *Map[any]) { n.Extensions = m }

// Reference implements Referenceable.
func (n *APIResponse) Reference() string { return n.Ref }

// SetReference implements Referenceable.
func (n *APIResponse) SetReference(ref string) { n.Ref = ref }

// Example is a named example value.
type Example struct {
	Ref           string
	Summary       string
	Description   string
	Value         any
	ExternalValue string
	Extensions    *Map[any]
}

var exampleDescriptor = describe("Example", func() *Example { return &Example{} },
	stringProp("$ref", func(n *Example) *string { return &n.Ref }),
	stringProp("summary", func(n *Example) *string { return &n.Summary }),
	stringProp("description", func(n *Example) *string { return &n.Description }),
	rawProp("value", func(n *Example) *any { return &n.Value }),
	stringProp("externalValue", func(n *Example) *string { return &n.ExternalValue }),
	extensionsProp(func(n *Example) **Map[any] { return &n.Extensions }),
)

// Descriptor implements Node.
func (*Example) Descriptor() *Descriptor { return exampleDescriptor }

// ExtensionMap implements Extensible.
func (n *Example) ExtensionMap() *Map[any] { return n.Extensions }

// SetExtensionMap implements Extensible.
func (n *Example) SetExtensionMap(m *Map[any]) { n.Extensions = m }

// Reference implements Referenceable.
func (n *Example) Reference() string { return n.Ref }

// SetReference implements Referenceable.
func (n *Example) SetReference(ref string) { n.Ref = ref }

// Link represents a possible design-time link for a response.
type Link struct {
	Ref          string
	OperationRef string
	OperationID  string
	Parameters   *Map[any]
	RequestBody  any
	Description  string
	Server       *Server
	Extensions   *Map[any]
}

var linkDescriptor = describe("Link", func() *Link { return &Link{} },
	stringProp("$ref", func(n *Link) *string { return &n.Ref }),
	stringProp("operationRef", func(n *Link) *string { return &n.OperationRef }),
	stringProp("operationId", func(n *Link) *string { return &n.OperationID }),
	mapProp("parameters", func(n *Link) **Map[any] { return &n.Parameters }),
	rawProp("requestBody", func(n *Link) *any { return &n.RequestBody }),
	stringProp("description", func(n *Link) *string { return &n.Description }),
	objectProp("server", func(n *Link) **Server { return &n.Server }),
	extensionsProp(func(n *Link) **Map[any] { return &n.Extensions }),
)

// Descriptor implements Node.
func (*Link) Descriptor() *Descriptor { return linkDescriptor }

// ExtensionMap implements Extensible.
func (n *Link) ExtensionMap() *Map[any] { return n.Extensions }

// SetExtensionMap implements Extensible.
func (n *Link) SetExtensionMap(m *Map[any]) { n.Extensions = m }

// Reference implements Referenceable.
func (n *Link) Reference() string { return n.Ref }

// SetReference implements Referenceable.
func (n *Link) SetReference(ref string) { n.Ref = ref }

// Callback maps runtime expressions to the path items describing the
// out-of-band requests. Like Paths, colliding expressions merge.
type Callback struct {
	Ref         string
	Expressions *Map[*PathItem]
	Extensions  *Map[any]
}

var callbackDescriptor = describe("Callback", func() *Callback { return &Callback{} },
	stringProp("$ref", func(n *Callback) *string { return &n.Ref }),
	inline(mergeEntries(mapProp("expressions", func(n *Callback) **Map[*PathItem] { return &n.Expressions }))),
	extensionsProp(func(n *Callback) **Map[any] { return &n.Extensions }),
)

// Descriptor implements Node.
func (*Callback) Descriptor() *Descriptor { return callbackDescriptor }

// ExtensionMap implements Extensible.
func (n *Callback) ExtensionMap() *Map[any] { return n.Extensions }

// SetExtensionMap implements Extensible.
func (n *Callback) SetExtensionMap(m *Map[any]) { n.Extensions = m }

// Reference implements Referenceable.
func (n *Callback) Reference() string { return n.Ref }

// SetReference implements Referenceable.
func (n *Callback) SetReference(ref string) { n.Ref = ref }
