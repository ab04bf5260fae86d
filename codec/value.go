package codec

import (
	"encoding/json"

	"github.com/erraggy/oaskit/model"
)

// ValueAdapter implements Adapter over raw model values: nil, bool,
// string, json.Number, []any and *model.Map[any]. It is the value type of
// decoded JSON and the input of the JSON encoder.
type ValueAdapter struct{}

var _ Adapter[any] = ValueAdapter{}

// Kind implements Adapter.
func (ValueAdapter) Kind(v any) ValueKind {
	switch v.(type) {
	case bool:
		return KindBool
	case json.Number, int, float64:
		return KindNumber
	case string:
		return KindString
	case []any:
		return KindArray
	case *model.Map[any]:
		return KindObject
	}
	return KindNull
}

// String implements Adapter.
func (ValueAdapter) String(v any) string {
	s, _ := v.(string)
	return s
}

// Bool implements Adapter.
func (ValueAdapter) Bool(v any) bool {
	b, _ := v.(bool)
	return b
}

// Number implements Adapter.
func (ValueAdapter) Number(v any) json.Number {
	switch n := v.(type) {
	case json.Number:
		return n
	case int:
		return intNumber(n)
	case float64:
		return floatNumber(n)
	}
	return "0"
}

// Properties implements Adapter.
func (ValueAdapter) Properties(v any) []Pair[any] {
	m, _ := v.(*model.Map[any])
	out := make([]Pair[any], 0, m.Len())
	for k, val := range m.All() {
		out = append(out, Pair[any]{Key: k, Value: val})
	}
	return out
}

// Elements implements Adapter.
func (ValueAdapter) Elements(v any) []any {
	l, _ := v.([]any)
	return l
}

// Object implements Adapter.
func (ValueAdapter) Object(pairs []Pair[any]) any {
	m := model.NewMap[any]()
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// Array implements Adapter.
func (ValueAdapter) Array(items []any) any {
	if items == nil {
		items = []any{}
	}
	return items
}

// FromString implements Adapter.
func (ValueAdapter) FromString(s string) any { return s }

// FromBool implements Adapter.
func (ValueAdapter) FromBool(b bool) any { return b }

// FromNumber implements Adapter.
func (ValueAdapter) FromNumber(n json.Number) any { return n }

// Null implements Adapter.
func (ValueAdapter) Null() any { return nil }
