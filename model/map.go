package model

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map is an insertion-ordered map keyed by string. Components, paths,
// content maps and the Schema keyword bag all use it so serialization is
// deterministic.
//
// A nil *Map is a valid, empty, read-only map.
type Map[V any] struct {
	om *orderedmap.OrderedMap[string, V]
}

// Entry is one key/value pair of a Map with the value type erased.
type Entry struct {
	Key   string
	Value any
}

// NewMap returns an empty Map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{om: orderedmap.New[string, V]()}
}

// MapOf builds a Map from pairs, usually built with P, in argument order.
func MapOf[V any](pairs ...Pair[V]) *Map[V] {
	m := NewMap[V]()
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// Pair is a typed key/value pair used by MapOf.
type Pair[V any] struct {
	Key   string
	Value V
}

// P is shorthand for constructing a Pair.
func P[V any](key string, value V) Pair[V] {
	return Pair[V]{Key: key, Value: value}
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	if m == nil || m.om == nil {
		return 0
	}
	return m.om.Len()
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key string) (V, bool) {
	if m == nil || m.om == nil {
		var zero V
		return zero, false
	}
	return m.om.Get(key)
}

// Value returns the value stored under key, or the zero value.
func (m *Map[V]) Value(key string) V {
	v, _ := m.Get(key)
	return v
}

// Has reports whether key is present.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set stores value under key. A new key is appended at the end; an
// existing key keeps its position.
func (m *Map[V]) Set(key string, value V) {
	if m.om == nil {
		m.om = orderedmap.New[string, V]()
	}
	m.om.Set(key, value)
}

// Delete removes key and reports whether it was present.
func (m *Map[V]) Delete(key string) bool {
	if m == nil || m.om == nil {
		return false
	}
	_, ok := m.om.Delete(key)
	return ok
}

// Keys returns the keys in insertion order.
func (m *Map[V]) Keys() []string {
	if m.Len() == 0 {
		return nil
	}
	keys := make([]string, 0, m.om.Len())
	for pair := m.om.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// All iterates entries in insertion order.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if m.Len() == 0 {
			return
		}
		for pair := m.om.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Entries returns the entries in order with values boxed as any.
func (m *Map[V]) Entries() []Entry {
	if m.Len() == 0 {
		return nil
	}
	out := make([]Entry, 0, m.Len())
	for k, v := range m.All() {
		out = append(out, Entry{Key: k, Value: v})
	}
	return out
}

// Clone returns a deep copy of the map, copying each value with CopyValue.
func (m *Map[V]) Clone() *Map[V] {
	if m == nil {
		return nil
	}
	out := NewMap[V]()
	for k, v := range m.All() {
		cv, _ := CopyValue(v).(V)
		out.Set(k, cv)
	}
	return out
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (m *Map[V]) MarshalJSON() ([]byte, error) {
	if m.Len() == 0 {
		return []byte("{}"), nil
	}
	return m.om.MarshalJSON()
}

// entryMap lets value-level helpers treat every Map[V] alike.
type entryMap interface {
	Len() int
	Entries() []Entry
	cloneAny() any
}

func (m *Map[V]) cloneAny() any { return m.Clone() }

// fromEntries builds a typed Map from erased entries.
func fromEntries[V any](entries []Entry) *Map[V] {
	out := NewMap[V]()
	for _, e := range entries {
		v, _ := e.Value.(V)
		out.Set(e.Key, v)
	}
	return out
}
