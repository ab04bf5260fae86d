package registry

import (
	"path"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/oaskit/internal/naming"
)

// NamingStrategy selects how a TypeID becomes a component name.
type NamingStrategy int

const (
	// NamingSimple uses the type name alone (default).
	// Example: models.User -> User
	NamingSimple NamingStrategy = iota

	// NamingPascalPackage prefixes the PascalCase package base name.
	// Example: models.User -> ModelsUser
	NamingPascalPackage
)

// String returns the strategy name.
func (s NamingStrategy) String() string {
	switch s {
	case NamingSimple:
		return "simple"
	case NamingPascalPackage:
		return "pascal-package"
	default:
		return "unknown"
	}
}

// NamingFunc derives the base component name for a type. The registry
// sanitizes the result and appends a numeric suffix on collision.
type NamingFunc func(id TypeID) string

func (s NamingStrategy) namer() NamingFunc {
	switch s {
	case NamingPascalPackage:
		return pascalPackageName
	default:
		return TypeID.SimpleName
	}
}

func pascalPackageName(id TypeID) string {
	pkg := path.Base(id.Package)
	if id.Package == "" || pkg == "." || pkg == "/" {
		return id.SimpleName()
	}
	caser := cases.Title(language.English, cases.NoLower)
	return caser.String(naming.ToPascalCase(pkg)) + caser.String(id.SimpleName())
}
