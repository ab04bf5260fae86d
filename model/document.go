package model

// OpenAPI is the root of a document. It is dialect agnostic: the same tree
// is written as 3.0.x or 3.1.x by the codec.
type OpenAPI struct {
	OpenAPI           string
	Info              *Info
	JSONSchemaDialect string // 3.1
	Servers           []*Server
	Paths             *Paths
	Webhooks          *Map[*PathItem] // 3.1
	Components        *Components
	Security          []*SecurityRequirement
	Tags              []*Tag
	ExternalDocs      *ExternalDocumentation
	Extensions        *Map[any]
}

var openAPIDescriptor = describe("OpenAPI", func() *OpenAPI { return &OpenAPI{} },
	stringProp("openapi", func(n *OpenAPI) *string { return &n.OpenAPI }),
	objectProp("info", func(n *OpenAPI) **Info { return &n.Info }),
	stringProp("jsonSchemaDialect", func(n *OpenAPI) *string { return &n.JSONSchemaDialect }),
	listProp("servers", func(n *OpenAPI) *[]*Server { return &n.Servers }),
	objectProp("paths", func(n *OpenAPI) **Paths { return &n.Paths }),
	mapProp("webhooks", func(n *OpenAPI) **Map[*PathItem] { return &n.Webhooks }),
	objectProp("components", func(n *OpenAPI) **Components { return &n.Components }),
	listProp("security", func(n *OpenAPI) *[]*SecurityRequirement { return &n.Security }),
	listProp("tags", func(n *OpenAPI) *[]*Tag { return &n.Tags }),
	objectProp("externalDocs", func(n *OpenAPI) **ExternalDocumentation { return &n.ExternalDocs }),
	extensionsProp(func(n *OpenAPI) **Map[any] { return &n.Extensions }),
)

// Descriptor implements Node.
func (*OpenAPI) Descriptor() *Descriptor { return openAPIDescriptor }

// ExtensionMap implements Extensible.
func (n *OpenAPI) ExtensionMap() *Map[any] { return n.Extensions }

// SetExtensionMap implements Extensible.
func (n *OpenAPI) SetExtensionMap(m *Map[any]) { n.Extensions = m }

// Info is the API metadata object.
type Info struct {
	Title          string
	Summary        string // 3.1
	Description    string
	TermsOfService string
	Contact        *Contact
	License        *License
	Version        string
	Extensions     *Map[any]
}

var infoDescriptor = describe("Info", func() *Info { return &Info{} },
	stringProp("title", func(n *Info) *string { return &n.Title }),
	stringProp("summary", func(n *Info) *string { return &n.Summary }),
	stringProp("description", func(n *Info) *string { return &n.Description }),
	stringProp("termsOfService", func(n *Info) *string { return &n.TermsOfService }),
	objectProp("contact", func(n *Info) **Contact { return &n.Contact }),
	objectProp("license", func(n *Info) **License { return &n.License }),
	stringProp("version", func(n *Info) *string { return &n.Version }),
	extensionsProp(func(n *Info) **Map[any] { return &n.Extensions }),
)

// Descriptor implements Node.
func (*Info) Descriptor() *Descriptor { return infoDescriptor }

// ExtensionMap implements Extensible.
func (n *Info) ExtensionMap() *Map[any] { return n.Extensions }

// SetExtensionMap implements Extensible.
func (n *Info) SetExtensionMap(m *Map[any]) { n.Extensions = m }

// Contact is the contact information of the exposed API.
type Contact struct {
	Name       string
	URL        string
	Email      string
	Extensions *Map[any]
}

var contactDescriptor = describe("Contact", func() *Contact { return &Contact{} },
	stringProp("name", func(n *Contact) *string { return &n.Name }),
	stringProp("url", func(n *Contact) *string { return &n.URL }),
	stringProp("email", func(n *Contact) *string { return &n.Email }),
	extensionsProp(func(n *Contact) **Map[any] { return &n.Extensions }),
)

// Descriptor implements Node.
func (*Contact) Descriptor() *Descriptor { return contactDescriptor }

// ExtensionMap implements Extensible.
func (n *Contact) ExtensionMap() *Map[any] { return n.Extensions }

// SetExtensionMap implements Extensible.
func (n *Contact) SetExtensionMap(m *Map[any]) { n.Extensions = m }

// License is the license information of the exposed API.
type License struct {
	Name       string
	Identifier string // 3.1
	URL        string
	Extensions *Map[any]
}

var licenseDescriptor = describe("License", func() *License { return &License{} },
	stringProp("name", func(n *License) *string { return &n.Name }),
	stringProp("identifier", func(n *License) *string { return &n.Identifier }),
	stringProp("url", func(n *License) *string { return &n.URL }),
	extensionsProp(func(n *License) **Map[any] { return &n.Extensions }),
)

// Descriptor implements Node.
func (*License) Descriptor() *Descriptor { return licenseDescriptor }

// ExtensionMap implements Extensible.
func (n *License) ExtensionMap() *Map[any] { return n.Extensions }

// SetExtensionMap implements Extensible.
func (n *License) SetExtensionMap(m *Map[any]) { n.Extensions = m }

// Server describes a target host.
type Server struct {
	URL         string
	Description string
	Variables   *Map[*ServerVariable]
	Extensions  *Map[any]
}

var serverDescriptor = describe("Server", func() *Server { return &Server{} },
	stringProp("url", func(n *Server) *string { return &n.URL }),
	stringProp("description", func(n *Server) *string { return &n.Description }),
	mapProp("variables", func(n *Server) **Map[*ServerVariable] { return &n.Variables }),
	extensionsProp(func(n *Server) **Map[any] { return &n.Extensions }),
)

// Descriptor implements Node.
func (*Server) Descriptor() *Descriptor { return serverDescriptor }

// ExtensionMap implements Extensible.
func (n *Server) ExtensionMap() *Map[any] { return n.Extensions }

// SetExtensionMap implements Extensible.
func (n *Server) SetExtensionMap(m *Map[any]) { n.Extensions = m }

// ServerVariable is a variable for server URL template substitution.
type ServerVariable struct {
	Enum        []string
	Default     string
	Description string
	Extensions  *Map[any]
}

var serverVariableDescriptor = describe("ServerVariable", func() *ServerVariable { return &ServerVariable{} },
	listProp("enum", func(n *ServerVariable) *[]string { return &n.Enum }),
	stringProp("default", func(n *ServerVariable) *string { return &n.Default }),
	stringProp("description", func(n *ServerVariable) *string { return &n.Description }),
	extensionsProp(func(n *ServerVariable) **Map[any] { return &n.Extensions }),
)

// Descriptor implements Node.
func (*ServerVariable) Descriptor() *Descriptor { return serverVariableDescriptor }

// ExtensionMap implements Extensible.
func (n *ServerVariable) ExtensionMap() *Map[any] { return n.Extensions }

// SetExtensionMap implements Extensible.
func (n *ServerVariable) SetExtensionMap(m *Map[any]) { n.Extensions = m }

// ExternalDocumentation references external documentation.
type ExternalDocumentation struct {
	Description string
	URL         string
	Extensions  *Map[any]
}

var externalDocsDescriptor = describe("ExternalDocumentation", func() *ExternalDocumentation { return &ExternalDocumentation{} },
	stringProp("description", func(n *ExternalDocumentation) *string { return &n.Description }),
	stringProp("url", func(n *ExternalDocumentation) *string { return &n.URL }),
	extensionsProp(func(n *ExternalDocumentation) **Map[any] { return &n.Extensions }),
)

// Descriptor implements Node.
func (*ExternalDocumentation) Descriptor() *Descriptor { return externalDocsDescriptor }

// ExtensionMap implements Extensible.
func (n *ExternalDocumentation) ExtensionMap() *Map[any] { return n.Extensions }

// SetExtensionMap implements Extensible.
func (n *ExternalDocumentation) SetExtensionMap(m *Map[any]) { n.Extensions = m }

// Tag adds metadata to a tag used by operations.
type Tag struct {
	Name         string
	Description  string
	ExternalDocs *ExternalDocumentation
	Extensions   *Map[any]
}

var tagDescriptor = describe("Tag", func() *Tag { return &Tag{} },
	stringProp("name", func(n *Tag) *string { return &n.Name }),
	stringProp("description", func(n *Tag) *string { return &n.Description }),
	objectProp("externalDocs", func(n *Tag) **ExternalDocumentation { return &n.ExternalDocs }),
	extensionsProp(func(n *Tag) **Map[any] { return &n.Extensions }),
)

// Descriptor implements Node.
func (*Tag) Descriptor() *Descriptor { return tagDescriptor }

// ExtensionMap implements Extensible.
func (n *Tag) ExtensionMap() *Map[any] { return n.Extensions }

// SetExtensionMap implements Extensible.
func (n *Tag) SetExtensionMap(m *Map[any]) { n.Extensions = m }

// SecurityRequirement maps security scheme names to required scopes.
// Scheme names must match a key of Components.SecuritySchemes.
type SecurityRequirement struct {
	Schemes *Map[[]string]
}

var securityRequirementDescriptor = describe("SecurityRequirement", func() *SecurityRequirement { return &SecurityRequirement{} },
	inline(mapProp("schemes", func(n *SecurityRequirement) **Map[[]string] { return &n.Schemes })),
)

// Descriptor implements Node.
func (*SecurityRequirement) Descriptor() *Descriptor { return securityRequirementDescriptor }

// NewSecurityRequirement returns a requirement for one scheme.
func NewSecurityRequirement(scheme string, scopes ...string) *SecurityRequirement {
	req := &SecurityRequirement{Schemes: NewMap[[]string]()}
	if scopes == nil {
		scopes = []string{}
	}
	req.Schemes.Set(scheme, scopes)
	return req
}

// Components holds reusable objects, keyed by name within each category.
type Components struct {
	Schemas         *Map[*Schema]
	Responses       *Map[*APIResponse]
	Parameters      *Map[*Parameter]
	Examples        *Map[*Example]
	RequestBodies   *Map[*RequestBody]
	Headers         *Map[*Header]
	SecuritySchemes *Map[*SecurityScheme]
	Links           *Map[*Link]
	Callbacks       *Map[*Callback]
	PathItems       *Map[*PathItem] // 3.1
	Extensions      *Map[any]
}

var componentsDescriptor = describe("Components", func() *Components { return &Components{} },
	mapProp("schemas", func(n *Components) **Map[*Schema] { return &n.Schemas }),
	mapProp("responses", func(n *Components) **Map[*APIResponse] { return &n.Responses }),
	mapProp("parameters", func(n *Components) **Map[*Parameter] { return &n.Parameters }),
	mapProp("examples", func(n *Components) **Map[*Example] { return &n.Examples }),
	mapProp("requestBodies", func(n *Components) **Map[*RequestBody] { return &n.RequestBodies }),
	mapProp("headers", func(n *Components) **Map[*Header] { return &n.Headers }),
	mapProp("securitySchemes", func(n *Components) **Map[*SecurityScheme] { return &n.SecuritySchemes }),
	mapProp("links", func(n *Components) **Map[*Link] { return &n.Links }),
	mapProp("callbacks", func(n *Components) **Map[*Callback] { return &n.Callbacks }),
	mapProp("pathItems", func(n *Components) **Map[*PathItem] { return &n.PathItems }),
	extensionsProp(func(n *Components) **Map[any] { return &n.Extensions }),
)

// Descriptor implements Node.
func (*Components) Descriptor() *Descriptor { return componentsDescriptor }

// ExtensionMap implements Extensible.
func (n *Components) ExtensionMap() *Map[any] { return n.Extensions }

// SetExtensionMap implements Extensible.
func (n *Components) SetExtensionMap(m *Map[any]) { n.Extensions = m }

// Names returns the component names of a category in insertion order.
func (n *Components) Names(c Category) []string {
	if n == nil {
		return nil
	}
	p := n.categoryProperty(c)
	return entries(p.Entries(p.Get(n))).keys()
}

// Lookup returns the named component of a category.
func (n *Components) Lookup(c Category, name string) (Node, bool) {
	if n == nil {
		return nil, false
	}
	p := n.categoryProperty(c)
	for _, e := range p.Entries(p.Get(n)) {
		if e.Key == name {
			node, ok := e.Value.(Node)
			return node, ok && !isNil(node)
		}
	}
	return nil, false
}

// Remove deletes a named component and reports whether it existed.
func (n *Components) Remove(c Category, name string) bool {
	if n == nil {
		return false
	}
	switch c {
	case CategorySchemas:
		return n.Schemas.Delete(name)
	case CategoryResponses:
		return n.Responses.Delete(name)
	case CategoryParameters:
		return n.Parameters.Delete(name)
	case CategoryExamples:
		return n.Examples.Delete(name)
	case CategoryRequestBodies:
		return n.RequestBodies.Delete(name)
	case CategoryHeaders:
		return n.Headers.Delete(name)
	case CategorySecuritySchemes:
		return n.SecuritySchemes.Delete(name)
	case CategoryLinks:
		return n.Links.Delete(name)
	case CategoryCallbacks:
		return n.Callbacks.Delete(name)
	case CategoryPathItems:
		return n.PathItems.Delete(name)
	}
	return false
}

// IsEmpty reports whether no category holds any component and there are
// no extensions.
func (n *Components) IsEmpty() bool {
	if n == nil {
		return true
	}
	for _, p := range componentsDescriptor.Properties {
		if p.Get(n) != nil {
			return false
		}
	}
	return true
}

func (n *Components) categoryProperty(c Category) *Property {
	return componentsDescriptor.Property(c.String())
}

type entries []Entry

func (es entries) keys() []string {
	if len(es) == 0 {
		return nil
	}
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.Key
	}
	return out
}
