package codec

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format is a wire text format.
type Format int

const (
	// FormatUnknown means the format has not been determined.
	FormatUnknown Format = iota
	// FormatJSON is JSON text.
	FormatJSON
	// FormatYAML is YAML text.
	FormatYAML
)

// String returns "json", "yaml" or "unknown".
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name such as "json", "yaml" or "yml".
func ParseFormat(name string) Format {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "json":
		return FormatJSON
	case "yaml", "yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// DetectFormat detects the format from a file extension, falling back to
// the content. JSON starts with '{' or '['; anything else is YAML.
func DetectFormat(path string, data []byte) Format {
	if f := ParseFormat(filepath.Ext(path)); f != FormatUnknown {
		return f
	}
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return FormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return FormatJSON
	}
	return FormatYAML
}

// Dialect is the OpenAPI version family governing the schema vocabulary.
type Dialect int

const (
	// DialectAuto follows the openapi field of the document.
	DialectAuto Dialect = iota
	// Dialect30 is OpenAPI 3.0.x with its JSON Schema subset.
	Dialect30
	// Dialect31 is OpenAPI 3.1.x with JSON Schema 2020-12.
	Dialect31
)

// Default versions written for each dialect.
const (
	Version30 = "3.0.3"
	Version31 = "3.1.0"
)

// String returns "3.0", "3.1" or "auto".
func (d Dialect) String() string {
	switch d {
	case Dialect30:
		return "3.0"
	case Dialect31:
		return "3.1"
	default:
		return "auto"
	}
}

// DefaultVersion returns the version string written for the dialect.
func (d Dialect) DefaultVersion() string {
	if d == Dialect30 {
		return Version30
	}
	return Version31
}

// DialectFor returns the dialect of an openapi version string. Unknown or
// empty versions map to Dialect31.
func DialectFor(version string) Dialect {
	if version == "3.0" || strings.HasPrefix(version, "3.0.") {
		return Dialect30
	}
	return Dialect31
}

// ParseDialect parses "3.0", "3.1" or a full version string such as "3.0.3".
func ParseDialect(s string) (Dialect, bool) {
	switch {
	case s == "3.0" || strings.HasPrefix(s, "3.0."):
		return Dialect30, true
	case s == "3.1" || strings.HasPrefix(s, "3.1."):
		return Dialect31, true
	}
	return DialectAuto, false
}
