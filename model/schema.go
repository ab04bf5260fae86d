package model

import (
	"encoding/json"
	"slices"
)

// Schema is a JSON Schema as used by OpenAPI. It is either a boolean schema
// (true or false) or an object-shaped schema whose keywords live in an
// ordered data map. Typed accessors cover the common keywords; Get and Set
// reach every other keyword, including extensions.
//
// The type keyword is always held as a []string.
type Schema struct {
	boolean *bool
	data    *Map[any]
}

var schemaDescriptor = &Descriptor{
	Name:    "Schema",
	Bag:     true,
	newNode: func() Node { return NewSchema() },
}

// NewSchema returns an empty object-shaped schema.
func NewSchema() *Schema {
	return &Schema{}
}

// NewBoolSchema returns the boolean schema b.
func NewBoolSchema(b bool) *Schema {
	return &Schema{boolean: &b}
}

// RefSchema returns a schema holding only a $ref.
func RefSchema(ref string) *Schema {
	s := NewSchema()
	s.Set(KeywordRef, ref)
	return s
}

// TypedSchema returns a schema with the given type tokens.
func TypedSchema(types ...string) *Schema {
	s := NewSchema()
	s.SetType(types...)
	return s
}

// Descriptor implements Node.
func (*Schema) Descriptor() *Descriptor { return schemaDescriptor }

// Bool returns the value of a boolean schema; ok is false for
// object-shaped schemas.
func (s *Schema) Bool() (value, ok bool) {
	if s == nil || s.boolean == nil {
		return false, false
	}
	return *s.boolean, true
}

// IsBool reports whether s is a boolean schema.
func (s *Schema) IsBool() bool {
	_, ok := s.Bool()
	return ok
}

// Len returns the number of keywords.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return s.data.Len()
}

// IsEmpty reports whether s is an object-shaped schema with no keywords.
func (s *Schema) IsEmpty() bool {
	return !s.IsBool() && s.Len() == 0
}

// Keywords returns the keywords in insertion order.
func (s *Schema) Keywords() []string {
	if s == nil {
		return nil
	}
	return s.data.Keys()
}

// Get returns the value of keyword.
func (s *Schema) Get(keyword string) (any, bool) {
	if s == nil {
		return nil, false
	}
	return s.data.Get(keyword)
}

// Has reports whether keyword is set.
func (s *Schema) Has(keyword string) bool {
	_, ok := s.Get(keyword)
	return ok
}

// Set stores value under keyword. A nil value is the JSON null, as in
// "default: null"; use Delete to remove a keyword. Setting a keyword on a
// boolean schema turns it into an object-shaped schema.
func (s *Schema) Set(keyword string, value any) {
	s.boolean = nil
	if s.data == nil {
		s.data = NewMap[any]()
	}
	s.data.Set(keyword, value)
}

// Delete removes keyword and reports whether it was set.
func (s *Schema) Delete(keyword string) bool {
	if s == nil {
		return false
	}
	return s.data.Delete(keyword)
}

// All iterates keywords and values in order.
func (s *Schema) All(fn func(keyword string, value any)) {
	if s == nil {
		return
	}
	for k, v := range s.data.All() {
		fn(k, v)
	}
}

// Reference implements Referenceable.
func (s *Schema) Reference() string {
	return s.GetString(KeywordRef)
}

// SetReference implements Referenceable.
func (s *Schema) SetReference(ref string) {
	if ref == "" {
		s.Delete(KeywordRef)
		return
	}
	s.Set(KeywordRef, ref)
}

// ExtensionMap implements Extensible. The result is a snapshot of the x-*
// keywords; use SetExtensionMap or Set to change them.
func (s *Schema) ExtensionMap() *Map[any] {
	var out *Map[any]
	s.All(func(k string, v any) {
		if IsExtensionKey(k) {
			if out == nil {
				out = NewMap[any]()
			}
			out.Set(k, v)
		}
	})
	return out
}

// SetExtensionMap implements Extensible by replacing every x-* keyword.
func (s *Schema) SetExtensionMap(m *Map[any]) {
	for _, k := range s.Keywords() {
		if IsExtensionKey(k) {
			s.Delete(k)
		}
	}
	for k, v := range m.All() {
		s.Set(k, v)
	}
}

// GetString returns a string keyword, or "".
func (s *Schema) GetString(keyword string) string {
	v, _ := s.Get(keyword)
	str, _ := v.(string)
	return str
}

// GetBool returns a boolean keyword; ok is false when it is unset.
func (s *Schema) GetBool(keyword string) (value, ok bool) {
	v, _ := s.Get(keyword)
	value, ok = v.(bool)
	return value, ok
}

// GetNumber returns a numeric keyword; ok is false when it is unset.
func (s *Schema) GetNumber(keyword string) (json.Number, bool) {
	v, _ := s.Get(keyword)
	n, ok := v.(json.Number)
	return n, ok
}

// GetInt returns an integer keyword; ok is false when it is unset.
func (s *Schema) GetInt(keyword string) (int, bool) {
	v, _ := s.Get(keyword)
	n, ok := v.(int)
	return n, ok
}

// GetSchema returns a sub-schema keyword, or nil.
func (s *Schema) GetSchema(keyword string) *Schema {
	v, _ := s.Get(keyword)
	sub, _ := v.(*Schema)
	return sub
}

// GetSchemaList returns a schema list keyword.
func (s *Schema) GetSchemaList(keyword string) []*Schema {
	v, _ := s.Get(keyword)
	l, _ := v.([]*Schema)
	return l
}

// GetSchemaMap returns a schema map keyword, or nil.
func (s *Schema) GetSchemaMap(keyword string) *Map[*Schema] {
	v, _ := s.Get(keyword)
	m, _ := v.(*Map[*Schema])
	return m
}

// Type returns the type tokens. It is never a bare string.
func (s *Schema) Type() []string {
	v, _ := s.Get(KeywordType)
	switch t := v.(type) {
	case []string:
		return t
	case string:
		return []string{t}
	}
	return nil
}

// SetType replaces the type tokens. No tokens deletes the keyword.
func (s *Schema) SetType(types ...string) {
	if len(types) == 0 {
		s.Delete(KeywordType)
		return
	}
	s.Set(KeywordType, slices.Clone(types))
}

// HasType reports whether t is one of the type tokens.
func (s *Schema) HasType(t string) bool {
	return slices.Contains(s.Type(), t)
}

// Ref returns the $ref keyword.
func (s *Schema) Ref() string { return s.Reference() }

// Title returns the title keyword.
func (s *Schema) Title() string { return s.GetString(KeywordTitle) }

// Description returns the description keyword.
func (s *Schema) Description() string { return s.GetString(KeywordDescription) }

// Properties returns the properties keyword, or nil.
func (s *Schema) Properties() *Map[*Schema] { return s.GetSchemaMap(KeywordProperties) }

// SetProperty adds or replaces a property schema.
func (s *Schema) SetProperty(name string, prop *Schema) {
	props := s.Properties()
	if props == nil {
		props = NewMap[*Schema]()
		s.Set(KeywordProperties, props)
	}
	props.Set(name, prop)
}

// Items returns the items keyword, or nil.
func (s *Schema) Items() *Schema { return s.GetSchema(KeywordItems) }

// AdditionalProperties returns the additionalProperties keyword, or nil.
func (s *Schema) AdditionalProperties() *Schema { return s.GetSchema(KeywordAdditionalProperties) }

// AllOf returns the allOf keyword.
func (s *Schema) AllOf() []*Schema { return s.GetSchemaList(KeywordAllOf) }

// AnyOf returns the anyOf keyword.
func (s *Schema) AnyOf() []*Schema { return s.GetSchemaList(KeywordAnyOf) }

// OneOf returns the oneOf keyword.
func (s *Schema) OneOf() []*Schema { return s.GetSchemaList(KeywordOneOf) }

// Not returns the not keyword, or nil.
func (s *Schema) Not() *Schema { return s.GetSchema(KeywordNot) }

// Required returns the required property names.
func (s *Schema) Required() []string {
	v, _ := s.Get(KeywordRequired)
	l, _ := v.([]string)
	return l
}

// Enum returns the enum values.
func (s *Schema) Enum() []any {
	v, _ := s.Get(KeywordEnum)
	l, _ := v.([]any)
	return l
}

// Minimum returns the inclusive lower bound.
func (s *Schema) Minimum() (json.Number, bool) { return s.GetNumber(KeywordMinimum) }

// Maximum returns the inclusive upper bound.
func (s *Schema) Maximum() (json.Number, bool) { return s.GetNumber(KeywordMaximum) }

// ExclusiveMinimum returns the numeric exclusive lower bound.
func (s *Schema) ExclusiveMinimum() (json.Number, bool) { return s.GetNumber(KeywordExclusiveMinimum) }

// ExclusiveMaximum returns the numeric exclusive upper bound.
func (s *Schema) ExclusiveMaximum() (json.Number, bool) { return s.GetNumber(KeywordExclusiveMaximum) }

// Nullable reports whether null is an accepted type, either through the
// type list or a bare nullable keyword.
func (s *Schema) Nullable() bool {
	if s.HasType("null") {
		return true
	}
	b, _ := s.GetBool(KeywordNullable)
	return b
}

// Discriminator returns the discriminator keyword, or nil.
func (s *Schema) Discriminator() *Discriminator {
	v, _ := s.Get(KeywordDiscriminator)
	d, _ := v.(*Discriminator)
	return d
}

// XML returns the xml keyword, or nil.
func (s *Schema) XML() *XML {
	v, _ := s.Get(KeywordXML)
	x, _ := v.(*XML)
	return x
}

// ExternalDocs returns the externalDocs keyword, or nil.
func (s *Schema) ExternalDocs() *ExternalDocumentation {
	v, _ := s.Get(KeywordExternalDocs)
	d, _ := v.(*ExternalDocumentation)
	return d
}

func (s *Schema) clone() *Schema {
	out := &Schema{}
	if s.boolean != nil {
		b := *s.boolean
		out.boolean = &b
	}
	out.data = s.data.Clone()
	return out
}

func (s *Schema) equal(o *Schema) bool {
	ab, aok := s.Bool()
	bb, bok := o.Bool()
	if aok || bok {
		return aok == bok && ab == bb
	}
	return EqualValue(s.data, o.data)
}

// children visits the sub-schemas and nested nodes held by keywords.
func (s *Schema) children(fn func(Node)) {
	s.All(func(_ string, v any) {
		switch val := v.(type) {
		case *Schema:
			if val != nil {
				fn(val)
			}
		case []*Schema:
			for _, sub := range val {
				if sub != nil {
					fn(sub)
				}
			}
		case *Map[*Schema]:
			for _, sub := range val.All() {
				if sub != nil {
					fn(sub)
				}
			}
		case Node:
			if !isNil(val) {
				fn(val)
			}
		}
	})
}
