package codec

import (
	"encoding/json"

	"github.com/erraggy/oaskit/model"
)

// ValueKind is the JSON type of an abstract value.
type ValueKind int

const (
	// KindNull is JSON null, and also an absent value.
	KindNull ValueKind = iota
	// KindBool is a boolean.
	KindBool
	// KindNumber is a number.
	KindNumber
	// KindString is a string.
	KindString
	// KindArray is an array.
	KindArray
	// KindObject is an object.
	KindObject
)

// String returns the JSON type name.
func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "null"
	}
}

// Pair is one member of an object value.
type Pair[V any] struct {
	Key   string
	Value V
}

// Adapter gives the model readers and writers uniform access to an
// abstract JSON value type V. Accessors are only called on values of the
// matching kind.
type Adapter[V any] interface {
	// Kind reports the JSON type of v.
	Kind(v V) ValueKind
	// String returns the value of a string.
	String(v V) string
	// Bool returns the value of a boolean.
	Bool(v V) bool
	// Number returns the literal of a number.
	Number(v V) json.Number
	// Properties returns the members of an object in document order.
	Properties(v V) []Pair[V]
	// Elements returns the items of an array.
	Elements(v V) []V

	// Object builds an object from members in order.
	Object(pairs []Pair[V]) V
	// Array builds an array.
	Array(items []V) V
	// FromString builds a string.
	FromString(s string) V
	// FromBool builds a boolean.
	FromBool(b bool) V
	// FromNumber builds a number.
	FromNumber(n json.Number) V
	// Null builds null.
	Null() V
}

// rawCache is implemented by adapters able to share decoded raw values
// between occurrences of the same underlying value (YAML aliases).
type rawCache[V any] interface {
	cachedRaw(v V) (any, bool)
	storeRaw(v V, raw any)
}

// Lookup returns the member of object v named key.
func Lookup[V any](a Adapter[V], v V, key string) (V, bool) {
	if a.Kind(v) == KindObject {
		for _, p := range a.Properties(v) {
			if p.Key == key {
				return p.Value, true
			}
		}
	}
	var zero V
	return zero, false
}

// ToRaw converts v to a raw model value: nil, bool, string, json.Number,
// []any or *model.Map[any].
func ToRaw[V any](a Adapter[V], v V) any {
	cache, caching := a.(rawCache[V])
	if caching {
		if raw, ok := cache.cachedRaw(v); ok {
			return raw
		}
	}
	var raw any
	switch a.Kind(v) {
	case KindBool:
		raw = a.Bool(v)
	case KindNumber:
		raw = a.Number(v)
	case KindString:
		raw = a.String(v)
	case KindArray:
		elems := a.Elements(v)
		items := make([]any, len(elems))
		for i, e := range elems {
			items[i] = ToRaw(a, e)
		}
		raw = items
	case KindObject:
		m := model.NewMap[any]()
		for _, p := range a.Properties(v) {
			m.Set(p.Key, ToRaw(a, p.Value))
		}
		raw = m
	}
	if caching {
		cache.storeRaw(v, raw)
	}
	return raw
}

// FromRaw converts a raw model value to V. Unsupported Go types become
// null.
func FromRaw[V any](a Adapter[V], raw any) V {
	switch r := raw.(type) {
	case bool:
		return a.FromBool(r)
	case string:
		return a.FromString(r)
	case json.Number:
		return a.FromNumber(r)
	case int:
		return a.FromNumber(intNumber(r))
	case float64:
		return a.FromNumber(floatNumber(r))
	case []any:
		items := make([]V, len(r))
		for i, it := range r {
			items[i] = FromRaw(a, it)
		}
		return a.Array(items)
	case []string:
		items := make([]V, len(r))
		for i, it := range r {
			items[i] = a.FromString(it)
		}
		return a.Array(items)
	case *model.Map[any]:
		pairs := make([]Pair[V], 0, r.Len())
		for k, v := range r.All() {
			pairs = append(pairs, Pair[V]{Key: k, Value: FromRaw(a, v)})
		}
		return a.Object(pairs)
	}
	return a.Null()
}
