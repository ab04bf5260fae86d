package registry

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/oaskit/internal/naming"
)

// TypeID identifies a type an annotation scanner produced a schema for.
// Two TypeIDs identify the same type when their String forms match.
type TypeID struct {
	// Package is the full package path, e.g. "github.com/acme/shop/models".
	Package string
	// Name is the type name without package or type arguments.
	Name string
	// Args are the type arguments of a generic instantiation.
	Args []TypeID
	// Anonymous marks synthetic types that must never become components.
	Anonymous bool
}

// String returns the qualified identity, e.g.
// "github.com/acme/shop/models.Page[github.com/acme/shop/models.User]".
func (t TypeID) String() string {
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t TypeID) write(b *strings.Builder) {
	if t.Package != "" {
		b.WriteString(t.Package)
		b.WriteByte('.')
	}
	b.WriteString(t.Name)
	if len(t.Args) == 0 {
		return
	}
	b.WriteByte('[')
	for i, arg := range t.Args {
		if i > 0 {
			b.WriteByte(',')
		}
		arg.write(b)
	}
	b.WriteByte(']')
}

// SimpleName returns the component name derived from the type name alone.
// Type arguments are flattened and title-cased: Page[User] is "PageUser"
// and Map[string,int] is "MapStringInt".
func (t TypeID) SimpleName() string {
	caser := cases.Title(language.English, cases.NoLower)
	var b strings.Builder
	t.simple(&b, caser, false)
	return naming.SanitizeComponentName(b.String())
}

func (t TypeID) simple(b *strings.Builder, caser cases.Caser, title bool) {
	name := t.Name
	if title {
		name = caser.String(name)
	}
	b.WriteString(name)
	for _, arg := range t.Args {
		arg.simple(b, caser, true)
	}
}

// IsZero reports whether t names no type.
func (t TypeID) IsZero() bool {
	return t.Name == "" && t.Package == "" && len(t.Args) == 0
}
