package assembly

import (
	"github.com/erraggy/oaskit/codec"
	"github.com/erraggy/oaskit/internal/stringutil"
	"github.com/erraggy/oaskit/oaserrors"
)

// DefaultOpenAPIVersion is written when neither the inputs nor the
// configuration set the openapi field.
const DefaultOpenAPIVersion = "3.1.0"

// DuplicateOperationIDBehavior selects what happens when two operations
// share an operationId.
type DuplicateOperationIDBehavior string

const (
	// DuplicateOperationIDWarn logs a warning and keeps the document.
	DuplicateOperationIDWarn DuplicateOperationIDBehavior = "warn"
	// DuplicateOperationIDFail fails the assembly with a validation error.
	DuplicateOperationIDFail DuplicateOperationIDBehavior = "fail"
)

// InfoConfig overrides individual Info fields of the assembled document.
// Empty fields leave the document's value alone.
type InfoConfig struct {
	Title          string `yaml:"title"`
	Version        string `yaml:"version"`
	Description    string `yaml:"description"`
	TermsOfService string `yaml:"termsOfService"`
	ContactName    string `yaml:"contactName"`
	ContactEmail   string `yaml:"contactEmail"`
	ContactURL     string `yaml:"contactUrl"`
	LicenseName    string `yaml:"licenseName"`
	LicenseURL     string `yaml:"licenseUrl"`
}

// Config configures one assembly.
type Config struct {
	// OpenAPIVersion, when set, is written to the openapi field of the
	// result, e.g. "3.0.3". Default: the merged input's version, else
	// DefaultOpenAPIVersion.
	OpenAPIVersion string `yaml:"openapiVersion"`

	// ArchiveName is used for the default title "<ArchiveName> API".
	// Without it the default title is "Generated API".
	ArchiveName string `yaml:"archiveName"`

	// Info overrides individual info fields.
	Info InfoConfig `yaml:"info"`

	// Servers replaces the top-level server list when non-empty.
	Servers []string `yaml:"servers"`
	// PathServers replaces the server list of the path items they name.
	PathServers map[string][]string `yaml:"pathServers"`
	// OperationServers replaces the server list of the operations whose
	// operationId they name.
	OperationServers map[string][]string `yaml:"operationServers"`

	// SchemaReferencesEnabled lets the schema registry turn registered
	// types into component references. When false every schema is inlined.
	SchemaReferencesEnabled bool `yaml:"schemaReferencesEnabled"`

	// RemoveUnusedComponents appends the unused-component filter after the
	// user filters.
	RemoveUnusedComponents bool `yaml:"removeUnusedComponents"`

	// DuplicateOperationIDBehavior is "warn" (default) or "fail".
	DuplicateOperationIDBehavior DuplicateOperationIDBehavior `yaml:"duplicateOperationIdBehavior"`

	// StaticFileMaxSize caps the size of each static file in bytes.
	// Zero means codec.DefaultMaxSize.
	StaticFileMaxSize int64 `yaml:"staticFileMaxSize"`

	// RequiredPropertiesDefault tells annotation scanners whether
	// properties are required unless annotated otherwise. The assembly
	// itself does not read it.
	RequiredPropertiesDefault bool `yaml:"requiredPropertiesDefault"`

	// ValidateStructure validates the assembled document against the
	// OpenAPI schema of its dialect.
	ValidateStructure bool `yaml:"validateStructure"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() *Config {
	return &Config{
		SchemaReferencesEnabled:      true,
		DuplicateOperationIDBehavior: DuplicateOperationIDWarn,
		StaticFileMaxSize:            codec.DefaultMaxSize,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.OpenAPIVersion != "" {
		if _, ok := codec.ParseDialect(c.OpenAPIVersion); !ok {
			return &oaserrors.ConfigError{
				Option:  "openapiVersion",
				Value:   c.OpenAPIVersion,
				Message: "unsupported OpenAPI version",
			}
		}
	}
	switch c.DuplicateOperationIDBehavior {
	case "", DuplicateOperationIDWarn, DuplicateOperationIDFail:
	default:
		return &oaserrors.ConfigError{
			Option:  "duplicateOperationIdBehavior",
			Value:   c.DuplicateOperationIDBehavior,
			Message: `must be "warn" or "fail"`,
		}
	}
	if c.StaticFileMaxSize < 0 {
		return &oaserrors.ConfigError{
			Option:  "staticFileMaxSize",
			Value:   c.StaticFileMaxSize,
			Message: "must not be negative",
		}
	}
	return c.Info.validate()
}

func (i *InfoConfig) validate() error {
	if i.ContactEmail != "" && !stringutil.IsEmail(i.ContactEmail) {
		return &oaserrors.ConfigError{
			Option:  "info.contactEmail",
			Value:   i.ContactEmail,
			Message: "not a valid email address",
		}
	}
	urls := []struct {
		option, value string
	}{
		{"info.termsOfService", i.TermsOfService},
		{"info.contactUrl", i.ContactURL},
		{"info.licenseUrl", i.LicenseURL},
	}
	for _, u := range urls {
		if u.value != "" && !stringutil.IsAbsoluteURL(u.value) {
			return &oaserrors.ConfigError{
				Option:  u.option,
				Value:   u.value,
				Message: "must be an absolute URL",
			}
		}
	}
	return nil
}

func (c *Config) staticFileMaxSize() int64 {
	if c.StaticFileMaxSize == 0 {
		return codec.DefaultMaxSize
	}
	return c.StaticFileMaxSize
}
