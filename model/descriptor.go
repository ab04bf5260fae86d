package model

// Kind classifies a property for structural operations such as merging.
type Kind int

const (
	// KindScalar is a single value: string, optional bool, or raw JSON value.
	KindScalar Kind = iota
	// KindList is an ordered list of values or nodes.
	KindList
	// KindMap is an ordered string-keyed map of values or nodes.
	KindMap
	// KindObject is a nested node.
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Property describes one field of a node type. The getter and setter are
// type-erased so generic engines (merge, copy, equality, filtering) can work
// over every node type from the same table.
type Property struct {
	// Name is the wire name of the field.
	Name string
	// Kind drives structural operations.
	Kind Kind
	// MergeEntries marks a map whose colliding node entries are merged
	// recursively instead of the primary entry winning (Paths, Callback).
	MergeEntries bool
	// Inline marks a map whose entries are the object's own fields on the
	// wire instead of a nested object (path templates, status codes,
	// callback expressions, security scheme names).
	Inline bool
	// Elem is the type of the value, or of each list item or map value.
	Elem Elem

	newElem  func() Node
	get      func(Node) any
	set      func(Node, any)
	elements func(any) []any
	makeList func([]any) any
	makeMap  func([]Entry) any
}

// Get returns the property value of n, or nil when it is unset.
func (p *Property) Get(n Node) any {
	return p.get(n)
}

// Set assigns v to the property of n. A nil v clears the property.
func (p *Property) Set(n Node, v any) {
	p.set(n, v)
}

// Elements returns the items of a list value.
func (p *Property) Elements(v any) []any {
	if v == nil || p.elements == nil {
		return nil
	}
	return p.elements(v)
}

// MakeList builds a typed list value from items. A nil items yields nil;
// an empty non-nil items yields an empty list, which is kept because an
// explicit empty list can be meaningful (security: []).
func (p *Property) MakeList(items []any) any {
	if items == nil {
		return nil
	}
	return p.makeList(items)
}

// Entries returns the entries of a map value.
func (p *Property) Entries(v any) []Entry {
	if m, ok := v.(entryMap); ok {
		return m.Entries()
	}
	return nil
}

// MakeMap builds a typed map value from entries.
func (p *Property) MakeMap(entries []Entry) any {
	if len(entries) == 0 {
		return nil
	}
	return p.makeMap(entries)
}

// NewElem returns a fresh node for an ElemNode property, or nil.
func (p *Property) NewElem() Node {
	if p.newElem == nil {
		return nil
	}
	return p.newElem()
}

// Elem is the value type of a property, or of its list items or map values.
type Elem int

const (
	// ElemRaw is an untyped JSON value.
	ElemRaw Elem = iota
	// ElemString is a string.
	ElemString
	// ElemBool is a bool.
	ElemBool
	// ElemStringList is a []string, used as a map value.
	ElemStringList
	// ElemNode is a nested node.
	ElemNode
)

func elemOf[E any]() (Elem, func() Node) {
	var zero E
	switch z := any(zero).(type) {
	case string:
		return ElemString, nil
	case bool:
		return ElemBool, nil
	case []string:
		return ElemStringList, nil
	case Node:
		// Resolved lazily: descriptors reference each other during init.
		return ElemNode, func() Node { return z.Descriptor().New() }
	}
	return ElemRaw, nil
}

// Descriptor is the static metadata of one node type.
type Descriptor struct {
	// Name is the node type name, e.g. "Operation".
	Name string
	// Properties lists the fields in wire order.
	Properties []*Property
	// Bag marks property-bag nodes (Schema) whose content lives in a keyword
	// map instead of fixed properties.
	Bag bool

	newNode func() Node
}

// New returns a fresh, empty node of this type.
func (d *Descriptor) New() Node {
	return d.newNode()
}

// Property returns the named property, or nil.
func (d *Descriptor) Property(name string) *Property {
	for _, p := range d.Properties {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func describe[T Node](name string, newNode func() T, props ...*Property) *Descriptor {
	return &Descriptor{
		Name:       name,
		Properties: props,
		newNode:    func() Node { return newNode() },
	}
}

// stringProp describes a string field; the empty string is "absent".
func stringProp[T Node](name string, field func(T) *string) *Property {
	return &Property{
		Name: name,
		Kind: KindScalar,
		Elem: ElemString,
		get: func(n Node) any {
			if s := *field(n.(T)); s != "" {
				return s
			}
			return nil
		},
		set: func(n Node, v any) {
			s, _ := v.(string)
			*field(n.(T)) = s
		},
	}
}

// boolProp describes an optional boolean field.
func boolProp[T Node](name string, field func(T) **bool) *Property {
	return &Property{
		Name: name,
		Kind: KindScalar,
		Elem: ElemBool,
		get: func(n Node) any {
			if b := *field(n.(T)); b != nil {
				return *b
			}
			return nil
		},
		set: func(n Node, v any) {
			if b, ok := v.(bool); ok {
				*field(n.(T)) = &b
				return
			}
			*field(n.(T)) = nil
		},
	}
}

// rawProp describes a field holding an arbitrary JSON value.
func rawProp[T Node](name string, field func(T) *any) *Property {
	return &Property{
		Name: name,
		Kind: KindScalar,
		get:  func(n Node) any { return *field(n.(T)) },
		set:  func(n Node, v any) { *field(n.(T)) = v },
	}
}

// objectProp describes a nested node field.
func objectProp[T Node, C Node](name string, field func(T) *C) *Property {
	elem, newElem := elemOf[C]()
	return &Property{
		Name:    name,
		Kind:    KindObject,
		Elem:    elem,
		newElem: newElem,
		get: func(n Node) any {
			c := *field(n.(T))
			var zero C
			if any(c) == any(zero) {
				return nil
			}
			return c
		},
		set: func(n Node, v any) {
			c, _ := v.(C)
			*field(n.(T)) = c
		},
	}
}

// listProp describes a slice field.
func listProp[T Node, E any](name string, field func(T) *[]E) *Property {
	elem, newElem := elemOf[E]()
	return &Property{
		Name:    name,
		Kind:    KindList,
		Elem:    elem,
		newElem: newElem,
		get: func(n Node) any {
			if l := *field(n.(T)); l != nil {
				return l
			}
			return nil
		},
		set: func(n Node, v any) {
			l, _ := v.([]E)
			*field(n.(T)) = l
		},
		elements: func(v any) []any {
			l, _ := v.([]E)
			out := make([]any, len(l))
			for i := range l {
				out[i] = l[i]
			}
			return out
		},
		makeList: func(items []any) any {
			out := make([]E, len(items))
			for i, it := range items {
				out[i], _ = it.(E)
			}
			return out
		},
	}
}

// mapProp describes an ordered map field.
func mapProp[T Node, V any](name string, field func(T) **Map[V]) *Property {
	elem, newElem := elemOf[V]()
	return &Property{
		Name:    name,
		Kind:    KindMap,
		Elem:    elem,
		newElem: newElem,
		get: func(n Node) any {
			if m := *field(n.(T)); m.Len() > 0 {
				return m
			}
			return nil
		},
		set: func(n Node, v any) {
			m, _ := v.(*Map[V])
			*field(n.(T)) = m
		},
		makeMap: func(entries []Entry) any {
			return fromEntries[V](entries)
		},
	}
}

// extensionsProp describes the x-* extension map every Extensible node has.
func extensionsProp[T Node](field func(T) **Map[any]) *Property {
	return mapProp(ExtensionsProperty, field)
}

// ExtensionsProperty is the pseudo property name of extension maps.
const ExtensionsProperty = "x-*"

// inline marks a map property whose entries sit directly in the object.
func inline(p *Property) *Property {
	p.Inline = true
	return p
}

// mergeEntries marks a map property whose colliding entries merge recursively.
func mergeEntries(p *Property) *Property {
	p.MergeEntries = true
	return p
}
