package model

import (
	"net/url"
	"strings"

	"github.com/erraggy/oaskit/internal/pathutil"
)

// Category is a named component map of Components.
type Category int

// Component categories in Components declaration order.
const (
	CategorySchemas Category = iota
	CategoryResponses
	CategoryParameters
	CategoryExamples
	CategoryRequestBodies
	CategoryHeaders
	CategorySecuritySchemes
	CategoryLinks
	CategoryCallbacks
	CategoryPathItems
)

// Categories lists every category in declaration order.
var Categories = []Category{
	CategorySchemas,
	CategoryResponses,
	CategoryParameters,
	CategoryExamples,
	CategoryRequestBodies,
	CategoryHeaders,
	CategorySecuritySchemes,
	CategoryLinks,
	CategoryCallbacks,
	CategoryPathItems,
}

var categoryNames = [...]string{
	CategorySchemas:         "schemas",
	CategoryResponses:       "responses",
	CategoryParameters:      "parameters",
	CategoryExamples:        "examples",
	CategoryRequestBodies:   "requestBodies",
	CategoryHeaders:         "headers",
	CategorySecuritySchemes: "securitySchemes",
	CategoryLinks:           "links",
	CategoryCallbacks:       "callbacks",
	CategoryPathItems:       "pathItems",
}

// String returns the wire name of the category, e.g. "requestBodies".
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// ParseCategory returns the category with the given wire name.
func ParseCategory(name string) (Category, bool) {
	for c, n := range categoryNames {
		if n == name {
			return Category(c), true
		}
	}
	return 0, false
}

// ComponentsPrefix is the JSON pointer prefix of every component reference.
const ComponentsPrefix = "#/components/"

// RefPrefix returns the reference prefix of the category, e.g.
// "#/components/schemas/".
func (c Category) RefPrefix() string {
	return ComponentsPrefix + c.String() + "/"
}

// ComponentRef returns the reference to a named component.
func ComponentRef(c Category, name string) string {
	return c.RefPrefix() + pathutil.Escape(name)
}

// ParseComponentRef splits a local component reference into its category
// and component name. A pointer reaching into a component (for example
// "#/components/schemas/Pet/properties/id") yields the owning component.
// External, absolute and malformed references report ok == false.
func ParseComponentRef(ref string) (c Category, name string, ok bool) {
	rest, found := strings.CutPrefix(ref, ComponentsPrefix)
	if !found {
		return 0, "", false
	}
	cat, rest, found := strings.Cut(rest, "/")
	if !found {
		return 0, "", false
	}
	if c, ok = ParseCategory(cat); !ok {
		return 0, "", false
	}
	name, _, _ = strings.Cut(rest, "/")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	name = pathutil.Unescape(name)
	if name == "" {
		return 0, "", false
	}
	return c, name, true
}

// CategoryOf returns the component category a node type belongs to.
func CategoryOf(n Node) (Category, bool) {
	switch n.(type) {
	case *Schema:
		return CategorySchemas, true
	case *APIResponse:
		return CategoryResponses, true
	case *Parameter:
		return CategoryParameters, true
	case *Example:
		return CategoryExamples, true
	case *RequestBody:
		return CategoryRequestBodies, true
	case *Header:
		return CategoryHeaders, true
	case *SecurityScheme:
		return CategorySecuritySchemes, true
	case *Link:
		return CategoryLinks, true
	case *Callback:
		return CategoryCallbacks, true
	case *PathItem:
		return CategoryPathItems, true
	}
	return 0, false
}
