package model

import (
	"encoding/json"
	"reflect"
	"slices"
)

// Node is any OpenAPI object.
type Node interface {
	// Descriptor returns the static metadata of the node's type.
	Descriptor() *Descriptor
}

// Extensible nodes carry specification extensions (x-* fields).
type Extensible interface {
	Node
	// ExtensionMap returns the extensions, possibly nil.
	ExtensionMap() *Map[any]
	// SetExtensionMap replaces the extensions.
	SetExtensionMap(*Map[any])
}

// Referenceable nodes may be a $ref pointer instead of inline content.
// Both the reference and inline fields may be populated while documents are
// being merged; writers emit the reference when it is set.
type Referenceable interface {
	Node
	// Reference returns the $ref value, or "".
	Reference() string
	// SetReference sets the $ref value.
	SetReference(ref string)
}

// IsExtensionKey reports whether key names a specification extension.
func IsExtensionKey(key string) bool {
	return len(key) >= 2 && key[0] == 'x' && key[1] == '-'
}

// isNil reports whether n is nil or a typed nil pointer.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// IsNil reports whether n is nil, including a typed nil pointer.
func IsNil(n Node) bool {
	return isNil(n)
}

// Copy returns a deep copy of n. The result shares no mutable state with n.
func Copy[T Node](n T) T {
	if isNil(n) {
		var zero T
		return zero
	}
	c, _ := copyNode(n).(T)
	return c
}

func copyNode(n Node) Node {
	if s, ok := n.(*Schema); ok {
		return s.clone()
	}
	d := n.Descriptor()
	out := d.New()
	for _, p := range d.Properties {
		if v := p.Get(n); v != nil {
			p.Set(out, CopyValue(v))
		}
	}
	return out
}

// CopyValue deep-copies a property value: nodes, maps, lists and raw JSON
// values. Immutable scalars are returned as is.
func CopyValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case Node:
		if isNil(val) {
			return val
		}
		return copyNode(val)
	case entryMap:
		return val.cloneAny()
	case []any:
		out := make([]any, len(val))
		for i, it := range val {
			out[i] = CopyValue(it)
		}
		return out
	case []string:
		return slices.Clone(val)
	case []*Schema:
		out := make([]*Schema, len(val))
		for i, s := range val {
			out[i] = Copy(s)
		}
		return out
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.IsNil() {
		return v
	}
	out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	for i := range rv.Len() {
		if c := CopyValue(rv.Index(i).Interface()); c != nil {
			out.Index(i).Set(reflect.ValueOf(c))
		}
	}
	return out.Interface()
}

// Equal reports whether a and b are structurally equal. Map key order is
// not significant.
func Equal(a, b Node) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if a.Descriptor() != b.Descriptor() {
		return false
	}
	if sa, ok := a.(*Schema); ok {
		return sa.equal(b.(*Schema))
	}
	for _, p := range a.Descriptor().Properties {
		if !EqualValue(p.Get(a), p.Get(b)) {
			return false
		}
	}
	return true
}

// EqualValue compares two property values with the semantics of Equal.
func EqualValue(a, b any) bool {
	if a == nil || b == nil {
		return isEmptyValue(a) && isEmptyValue(b)
	}
	switch av := a.(type) {
	case Node:
		bv, ok := b.(Node)
		return ok && Equal(av, bv)
	case entryMap:
		bv, ok := b.(entryMap)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		index := make(map[string]any, bv.Len())
		for _, e := range bv.Entries() {
			index[e.Key] = e.Value
		}
		for _, e := range av.Entries() {
			other, ok := index[e.Key]
			if !ok || !EqualValue(e.Value, other) {
				return false
			}
		}
		return true
	case json.Number:
		switch bv := b.(type) {
		case json.Number:
			if av == bv {
				return true
			}
			af, aerr := av.Float64()
			bf, berr := bv.Float64()
			return aerr == nil && berr == nil && af == bf
		default:
			return false
		}
	}
	if as, bs, ok := sliceItems(a, b); ok {
		if len(as) != len(bs) {
			return false
		}
		for i := range as {
			if !EqualValue(as[i], bs[i]) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}

func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case Node:
		return isNil(val)
	case entryMap:
		return val.Len() == 0
	}
	return false
}

// sliceItems boxes the items of two slices of the same element type.
func sliceItems(a, b any) ([]any, []any, bool) {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Kind() != reflect.Slice || bv.Kind() != reflect.Slice || av.Type() != bv.Type() {
		return nil, nil, false
	}
	box := func(v reflect.Value) []any {
		out := make([]any, v.Len())
		for i := range out {
			out[i] = v.Index(i).Interface()
		}
		return out
	}
	return box(av), box(bv), true
}

// Children calls fn for every direct child node of n, including nodes held
// in lists and maps, and every sub-schema of a Schema.
func Children(n Node, fn func(Node)) {
	if isNil(n) {
		return
	}
	if s, ok := n.(*Schema); ok {
		s.children(fn)
		return
	}
	for _, p := range n.Descriptor().Properties {
		visitValue(p, p.Get(n), fn)
	}
}

func visitValue(p *Property, v any, fn func(Node)) {
	if v == nil {
		return
	}
	switch p.Kind {
	case KindObject:
		if c, ok := v.(Node); ok && !isNil(c) {
			fn(c)
		}
	case KindList:
		for _, it := range p.Elements(v) {
			if c, ok := it.(Node); ok && !isNil(c) {
				fn(c)
			}
		}
	case KindMap:
		for _, e := range p.Entries(v) {
			if c, ok := e.Value.(Node); ok && !isNil(c) {
				fn(c)
			}
		}
	}
}
