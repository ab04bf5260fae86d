package model

// SecurityScheme defines a security scheme usable by operations.
type SecurityScheme struct {
	Ref              string
	Type             string
	Description      string
	Name             string
	In               string
	Scheme           string
	BearerFormat     string
	Flows            *OAuthFlows
	OpenIDConnectURL string
	Extensions       *Map[any]
}

var securitySchemeDescriptor = describe("SecurityScheme", func() *SecurityScheme { return &SecurityScheme{} },
	stringProp("$ref", func(n *SecurityScheme) *string { return &n.Ref }),
	stringProp("type", func(n *SecurityScheme) *string { return &n.Type }),
	stringProp("description", func(n *SecurityScheme) *string { return &n.Description }),
	stringProp("name", func(n *SecurityScheme) *string { return &n.Name }),
	stringProp("in", func(n *SecurityScheme) *string { return &n.In }),
	stringProp("scheme", func(n *SecurityScheme) *string { return &n.Scheme }),
	stringProp("bearerFormat", func(n *SecurityScheme) *string { return &n.BearerFormat }),
	objectProp("flows", func(n *SecurityScheme) **OAuthFlows { return &n.Flows }),
	stringProp("openIdConnectUrl", func(n *SecurityScheme) *string { return &n.OpenIDConnectURL }),
	extensionsProp(func(n *SecurityScheme) **Map[any] { return &n.Extensions }),
)

// Descriptor implements Node.
func (*SecurityScheme) Descriptor() *Descriptor { return securitySchemeDescriptor }

// ExtensionMap implements Extensible.
func (n *SecurityScheme) ExtensionMap() *Map[any] { return n.Extensions }

// SetExtensionMap implements Extensible.
func (n *SecurityScheme) SetExtensionMap(m *Map[any]) { n.Extensions = m }

// Reference implements Referenceable.
func (n *SecurityScheme) Reference() string { return n.Ref }

// SetReference implements Referenceable.
func (n *SecurityScheme) SetReference(ref string) { n.Ref = ref }

// OAuthFlows configures the supported OAuth flows.
type OAuthFlows struct {
	Implicit          *OAuthFlow
	Password          *OAuthFlow
	ClientCredentials *OAuthFlow
	AuthorizationCode *OAuthFlow
	Extensions        *Map[any]
}

var oauthFlowsDescriptor = describe("OAuthFlows", func() *OAuthFlows { return &OAuthFlows{} },
	objectProp("implicit", func(n *OAuthFlows) **OAuthFlow { return &n.Implicit }),
	objectProp("password", func(n *OAuthFlows) **OAuthFlow { return &n.Password }),
	objectProp("clientCredentials", func(n *OAuthFlows) **OAuthFlow { return &n.ClientCredentials }),
	objectProp("authorizationCode", func(n *OAuthFlows) **OAuthFlow { return &n.AuthorizationCode }),
	extensionsProp(func(n *OAuthFlows) **Map[any] { return &n.Extensions }),
)

// Descriptor implements Node.
func (*OAuthFlows) Descriptor() *Descriptor { return oauthFlowsDescriptor }

// ExtensionMap implements Extensible.
func (n *OAuthFlows) ExtensionMap() *Map[any] { return n.Extensions }

// SetExtensionMap implements Extensible.
func (n *OAuthFlows) SetExtensionMap(m *Map[any]) { n.Extensions = m }

// OAuthFlow is the configuration of one OAuth flow.
type OAuthFlow struct {
	AuthorizationURL string
	TokenURL         string
	RefreshURL       string
	Scopes           *Map[string]
	Extensions       *Map[any]
}

var oauthFlowDescriptor = describe("OAuthFlow", func() *OAuthFlow { return &OAuthFlow{} },
	stringProp("authorizationUrl", func(n *OAuthFlow) *string { return &n.AuthorizationURL }),
	stringProp("tokenUrl", func(n *OAuthFlow) *string { return &n.TokenURL }),
	stringProp("refreshUrl", func(n *OAuthFlow) *string { return &n.RefreshURL }),
	mapProp("scopes", func(n *OAuthFlow) **Map[string] { return &n.Scopes }),
	extensionsProp(func(n *OAuthFlow) **Map[any] { return &n.Extensions }),
)

// Descriptor implements Node.
func (*OAuthFlow) Descriptor() *Descriptor { return oauthFlowDescriptor }

// ExtensionMap implements Extensible.
func (n *OAuthFlow) ExtensionMap() *Map[any] { return n.Extensions }

// SetExtensionMap implements Extensible.
func (n *OAuthFlow) SetExtensionMap(m *Map[any]) { n.Extensions = m }

// Discriminator aids serialization of polymorphic schemas.
type Discriminator struct {
	PropertyName string
	Mapping      *Map[string]
	Extensions   *Map[any]
}

var discriminatorDescriptor = describe("Discriminator", func() *Discriminator { return &Discriminator{} },
	stringProp("propertyName", func(n *Discriminator) *string { return &n.PropertyName }),
	mapProp("mapping", func(n *Discriminator) **Map[string] { return &n.Mapping }),
	extensionsProp(func(n *Discriminator) **Map[any] { return &n.Extensions }),
)

// Descriptor implements Node.
func (*Discriminator) Descriptor() *Descriptor { return discriminatorDescriptor }

// ExtensionMap implements Extensible.
func (n *Discriminator) ExtensionMap() *Map[any] { return n.Extensions }

// SetExtensionMap implements Extensible.
func (n *Discriminator) SetExtensionMap(m *Map[any]) { n.Extensions = m }

// XML is the XML representation metadata of a schema.
type XML struct {
	Name       string
	Namespace  string
	Prefix     string
	Attribute  *bool
	Wrapped    *bool
	Extensions *Map[any]
}

var xmlDescriptor = describe("XML", func() *XML { return &XML{} },
	stringProp("name", func(n *XML) *string { return &n.Name }),
	stringProp("namespace", func(n *XML) *string { return &n.Namespace }),
	stringProp("prefix", func(n *XML) *string { return &n.Prefix }),
	boolProp("attribute", func(n *XML) **bool { return &n.Attribute }),
	boolProp("wrapped", func(n *XML) **bool { return &n.Wrapped }),
	extensionsProp(func(n *XML) **Map[any] { return &n.Extensions }),
)

// Descriptor implements Node.
func (*XML) Descriptor() *Descriptor { return xmlDescriptor }

// ExtensionMap implements Extensible.
func (n *XML) ExtensionMap() *Map[any] { return n.Extensions }

// SetExtensionMap implements Extensible.
func (n *XML) SetExtensionMap(m *Map[any]) { n.Extensions = m }
