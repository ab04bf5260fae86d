package codec

import (
	"fmt"
	"strconv"

	"github.com/erraggy/oaskit/internal/issues"
	"github.com/erraggy/oaskit/internal/pathutil"
	"github.com/erraggy/oaskit/model"
)

// Warning is a lossy or tolerated step recorded while reading or writing.
// This is an alias to issues.Issue for consistency with other oaskit
// packages.
type Warning = issues.Issue

// only31 lists node properties that exist only in OpenAPI 3.1.
var only31 = map[string]bool{
	"OpenAPI.jsonSchemaDialect": true,
	"OpenAPI.webhooks":          true,
	"Components.pathItems":      true,
	"License.identifier":        true,
	"Info.summary":              true,
}

// requiredObjects are written even when empty.
var requiredObjects = map[string]bool{
	"OpenAPI.paths": true,
}

// required30 are written as empty objects when absent, since OpenAPI 3.0
// requires them and 3.1 does not.
var required30 = map[string]bool{
	"OpenAPI.paths": true,
}

// modelIO reads and writes model nodes through an Adapter. One generic
// unit serves every node type: the per-type work is driven by the node
// descriptors, and Schema has its own dialect-aware pair.
type modelIO[V any] struct {
	a        Adapter[V]
	dialect  Dialect
	warnings []Warning
}

func newModelIO[V any](a Adapter[V], dialect Dialect) *modelIO[V] {
	return &modelIO[V]{a: a, dialect: dialect}
}

func (m *modelIO[V]) warn(path, keyword, format string, args ...any) {
	m.warnings = append(m.warnings, Warning{
		Path:     path,
		Keyword:  keyword,
		Message:  fmt.Sprintf(format, args...),
		Severity: issues.SeverityWarning,
	})
}

func (m *modelIO[V]) info(path, keyword, format string, args ...any) {
	m.warnings = append(m.warnings, Warning{
		Path:     path,
		Keyword:  keyword,
		Message:  fmt.Sprintf(format, args...),
		Severity: issues.SeverityInfo,
	})
}

var openAPIDescriptor = new(model.OpenAPI).Descriptor()

func (m *modelIO[V]) readDocument(v V) (*model.OpenAPI, bool) {
	n, ok := m.readNode(openAPIDescriptor, v, "")
	if !ok {
		return nil, false
	}
	doc, ok := n.(*model.OpenAPI)
	return doc, ok
}

// readNode reads one node of type d. Unknown fields are skipped with a
// warning; extension fields go to the extension map; on maps marked
// Inline every other field is an entry.
func (m *modelIO[V]) readNode(d *model.Descriptor, v V, path string) (model.Node, bool) {
	if d.Bag {
		s, ok := m.readSchema(v, path)
		if !ok {
			return nil, false
		}
		return s, true
	}
	if k := m.a.Kind(v); k != KindObject {
		m.warn(path, "", "expected %s object, found %s", d.Name, k)
		return nil, false
	}

	out := d.New()
	var inline, ext *model.Property
	for _, p := range d.Properties {
		switch {
		case p.Inline:
			inline = p
		case p.Name == model.ExtensionsProperty:
			ext = p
		}
	}
	var inlineEntries, extEntries []model.Entry
	for _, kv := range m.a.Properties(v) {
		at := pathutil.Append(path, kv.Key)
		if p := d.Property(kv.Key); p != nil && p != inline && p != ext {
			if val, ok := m.readValue(p, kv.Value, at); ok {
				p.Set(out, val)
			}
			continue
		}
		switch {
		case ext != nil && model.IsExtensionKey(kv.Key):
			extEntries = append(extEntries, model.Entry{Key: kv.Key, Value: ToRaw(m.a, kv.Value)})
		case inline != nil:
			if val, ok := m.readElem(inline, kv.Value, at); ok {
				inlineEntries = append(inlineEntries, model.Entry{Key: kv.Key, Value: val})
			}
		default:
			m.warn(at, kv.Key, "unknown %s field ignored", d.Name)
		}
	}
	if inline != nil {
		inline.Set(out, inline.MakeMap(inlineEntries))
	}
	if ext != nil {
		ext.Set(out, ext.MakeMap(extEntries))
	}
	return out, true
}

func (m *modelIO[V]) readValue(p *model.Property, v V, path string) (any, bool) {
	switch p.Kind {
	case model.KindList:
		if k := m.a.Kind(v); k != KindArray {
			m.warn(path, p.Name, "expected array, found %s", k)
			return nil, false
		}
		items := []any{}
		for i, e := range m.a.Elements(v) {
			if val, ok := m.readElem(p, e, pathutil.Append(path, strconv.Itoa(i))); ok {
				items = append(items, val)
			}
		}
		return p.MakeList(items), true
	case model.KindMap:
		if k := m.a.Kind(v); k != KindObject {
			m.warn(path, p.Name, "expected object, found %s", k)
			return nil, false
		}
		var entries []model.Entry
		for _, kv := range m.a.Properties(v) {
			if val, ok := m.readElem(p, kv.Value, pathutil.Append(path, kv.Key)); ok {
				entries = append(entries, model.Entry{Key: kv.Key, Value: val})
			}
		}
		return p.MakeMap(entries), len(entries) > 0
	}
	return m.readElem(p, v, path)
}

// readElem reads a single value, list item or map value of p.
func (m *modelIO[V]) readElem(p *model.Property, v V, path string) (any, bool) {
	switch p.Elem {
	case model.ElemNode:
		return m.readNode(p.NewElem().Descriptor(), v, path)
	case model.ElemString:
		switch k := m.a.Kind(v); k {
		case KindString:
			return m.a.String(v), true
		case KindNumber:
			lit := m.a.Number(v).String()
			m.info(path, p.Name, "number %s read as a string", lit)
			return lit, true
		case KindBool:
			lit := strconv.FormatBool(m.a.Bool(v))
			m.info(path, p.Name, "boolean %s read as a string", lit)
			return lit, true
		default:
			m.warn(path, p.Name, "expected string, found %s", k)
			return nil, false
		}
	case model.ElemBool:
		if k := m.a.Kind(v); k != KindBool {
			m.warn(path, p.Name, "expected boolean, found %s", k)
			return nil, false
		}
		return m.a.Bool(v), true
	case model.ElemStringList:
		l, ok := m.stringList(v)
		if !ok {
			m.warn(path, p.Name, "expected array of strings")
		}
		return l, ok
	}
	return ToRaw(m.a, v), true
}

func (m *modelIO[V]) stringList(v V) ([]string, bool) {
	if m.a.Kind(v) != KindArray {
		return nil, false
	}
	elems := m.a.Elements(v)
	out := make([]string, 0, len(elems))
	for _, e := range elems {
		if m.a.Kind(e) != KindString {
			return nil, false
		}
		out = append(out, m.a.String(e))
	}
	return out, true
}

func (m *modelIO[V]) writeDocument(doc *model.OpenAPI) V {
	v, _ := m.writeNode(doc, "")
	return v
}

// writeNode writes n; the result is always a value, and nonEmpty reports
// whether it has any member.
func (m *modelIO[V]) writeNode(n model.Node, path string) (v V, nonEmpty bool) {
	if s, ok := n.(*model.Schema); ok {
		return m.writeSchema(s, path, false), true
	}
	d := n.Descriptor()
	if r, ok := n.(model.Referenceable); ok && r.Reference() != "" && d.Name != "PathItem" {
		return m.writeReference(n, r.Reference(), path), true
	}
	var pairs []Pair[V]
	for _, p := range d.Properties {
		val := p.Get(n)
		if val == nil {
			if m.dialect == Dialect30 && required30[d.Name+"."+p.Name] {
				pairs = append(pairs, Pair[V]{Key: p.Name, Value: m.a.Object(nil)})
			}
			continue
		}
		at := pathutil.Append(path, p.Name)
		if m.dialect == Dialect30 && only31[d.Name+"."+p.Name] {
			m.warn(at, p.Name, "%s.%s does not exist in OpenAPI 3.0 and was dropped", d.Name, p.Name)
			continue
		}
		if p.Inline || p.Name == model.ExtensionsProperty {
			for _, e := range p.Entries(val) {
				ev, _ := m.writeElem(p, e.Value, pathutil.Append(path, e.Key))
				pairs = append(pairs, Pair[V]{Key: e.Key, Value: ev})
			}
			continue
		}
		pv, ok := m.writeValue(p, val, at)
		if ok || requiredObjects[d.Name+"."+p.Name] {
			pairs = append(pairs, Pair[V]{Key: p.Name, Value: pv})
		}
	}
	return m.a.Object(pairs), len(pairs) > 0
}

// writeReference writes a reference object. 3.1 allows summary and
// description next to $ref; 3.0 ignores every sibling.
func (m *modelIO[V]) writeReference(n model.Node, ref string, path string) V {
	pairs := []Pair[V]{{Key: model.KeywordRef, Value: m.a.FromString(ref)}}
	d := n.Descriptor()
	for _, name := range []string{"summary", "description"} {
		p := d.Property(name)
		if p == nil {
			continue
		}
		val, ok := p.Get(n).(string)
		if !ok {
			continue
		}
		if m.dialect == Dialect30 {
			m.warn(pathutil.Append(path, name), name, "sibling of $ref dropped for OpenAPI 3.0")
			continue
		}
		pairs = append(pairs, Pair[V]{Key: name, Value: m.a.FromString(val)})
	}
	return m.a.Object(pairs)
}

func (m *modelIO[V]) writeValue(p *model.Property, val any, path string) (V, bool) {
	switch p.Kind {
	case model.KindList:
		elems := p.Elements(val)
		items := make([]V, 0, len(elems))
		for i, e := range elems {
			ev, _ := m.writeElem(p, e, pathutil.Append(path, strconv.Itoa(i)))
			items = append(items, ev)
		}
		return m.a.Array(items), true
	case model.KindMap:
		entries := p.Entries(val)
		pairs := make([]Pair[V], 0, len(entries))
		for _, e := range entries {
			ev, _ := m.writeElem(p, e.Value, pathutil.Append(path, e.Key))
			pairs = append(pairs, Pair[V]{Key: e.Key, Value: ev})
		}
		return m.a.Object(pairs), true
	}
	return m.writeElem(p, val, path)
}

// writeElem writes a single value, list item or map value of p. For nodes
// the flag reports whether the written object has members.
func (m *modelIO[V]) writeElem(p *model.Property, val any, path string) (V, bool) {
	switch p.Elem {
	case model.ElemNode:
		n, ok := val.(model.Node)
		if !ok || model.IsNil(n) {
			return m.a.Null(), false
		}
		return m.writeNode(n, path)
	case model.ElemString:
		s, _ := val.(string)
		return m.a.FromString(s), true
	case model.ElemBool:
		b, _ := val.(bool)
		return m.a.FromBool(b), true
	}
	return FromRaw(m.a, val), true
}
