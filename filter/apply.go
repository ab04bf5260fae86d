package filter

import (
	"github.com/erraggy/oaskit/model"
)

// Apply runs filters over doc in order. Each filter completes before the
// next one starts. Within one filter, children are filtered before their
// parents, so a parent callback sees already-filtered children, and
// FilterOpenAPI runs last. A per-node callback returning nil removes the
// node from its parent.
//
// A node reachable from several places is filtered once and its result is
// reused at every place; a node that contains itself is not descended into
// again.
func Apply(doc *model.OpenAPI, filters ...Filter) {
	if doc == nil {
		return
	}
	for _, f := range filters {
		if f == nil {
			continue
		}
		a := &applier{f: f, memo: make(map[model.Node]model.Node)}
		a.children(doc)
		if df, ok := f.(DocumentFilter); ok {
			df.FilterOpenAPI(doc)
		}
	}
}

type applier struct {
	f    Filter
	memo map[model.Node]model.Node
}

// node filters n bottom-up and returns its replacement, possibly nil.
func (a *applier) node(n model.Node) model.Node {
	if out, ok := a.memo[n]; ok {
		return out
	}
	a.memo[n] = n
	a.children(n)
	out := a.callback(n)
	a.memo[n] = out
	return out
}

func (a *applier) children(n model.Node) {
	if s, ok := n.(*model.Schema); ok {
		a.schemaChildren(s)
		return
	}
	for _, p := range n.Descriptor().Properties {
		v := p.Get(n)
		if v == nil || p.Elem != model.ElemNode {
			continue
		}
		switch p.Kind {
		case model.KindObject:
			child, _ := v.(model.Node)
			if model.IsNil(child) {
				continue
			}
			if out := a.node(child); out != child {
				p.Set(n, nodeValue(out))
			}
		case model.KindList:
			items := p.Elements(v)
			if out, changed := a.list(items); changed {
				if len(out) == 0 {
					out = nil
				}
				p.Set(n, p.MakeList(out))
			}
		case model.KindMap:
			entries := p.Entries(v)
			if out, changed := a.entries(entries); changed {
				p.Set(n, p.MakeMap(out))
			}
		}
	}
}

func (a *applier) schemaChildren(s *model.Schema) {
	for _, kw := range s.Keywords() {
		v, _ := s.Get(kw)
		switch val := v.(type) {
		case *model.Schema:
			if val == nil {
				continue
			}
			out := a.node(val)
			if model.IsNil(out) {
				s.Delete(kw)
			} else if out != model.Node(val) {
				s.Set(kw, out)
			}
		case []*model.Schema:
			items := make([]any, len(val))
			for i, sub := range val {
				items[i] = sub
			}
			out, changed := a.list(items)
			if !changed {
				continue
			}
			if len(out) == 0 {
				s.Delete(kw)
				continue
			}
			list := make([]*model.Schema, len(out))
			for i, it := range out {
				list[i] = it.(*model.Schema)
			}
			s.Set(kw, list)
		case *model.Map[*model.Schema]:
			out, changed := a.entries(val.Entries())
			if !changed {
				continue
			}
			if len(out) == 0 {
				s.Delete(kw)
				continue
			}
			m := model.NewMap[*model.Schema]()
			for _, e := range out {
				m.Set(e.Key, e.Value.(*model.Schema))
			}
			s.Set(kw, m)
		}
	}
}

// list filters node items and drops removed ones.
func (a *applier) list(items []any) ([]any, bool) {
	out := make([]any, 0, len(items))
	changed := false
	for _, it := range items {
		child, ok := it.(model.Node)
		if !ok || model.IsNil(child) {
			out = append(out, it)
			continue
		}
		res := a.node(child)
		if model.IsNil(res) {
			changed = true
			continue
		}
		if res != child {
			changed = true
		}
		out = append(out, res)
	}
	return out, changed
}

// entries filters node map values and drops removed entries.
func (a *applier) entries(entries []model.Entry) ([]model.Entry, bool) {
	out := make([]model.Entry, 0, len(entries))
	changed := false
	for _, e := range entries {
		child, ok := e.Value.(model.Node)
		if !ok || model.IsNil(child) {
			out = append(out, e)
			continue
		}
		res := a.node(child)
		if model.IsNil(res) {
			changed = true
			continue
		}
		if res != child {
			changed = true
		}
		out = append(out, model.Entry{Key: e.Key, Value: res})
	}
	return out, changed
}

// callback invokes the filter's callback for the node's type, if any.
func (a *applier) callback(n model.Node) model.Node {
	switch v := n.(type) {
	case *model.Schema:
		if f, ok := a.f.(SchemaFilter); ok {
			return nodeOrNil(f.FilterSchema(v))
		}
	case *model.Parameter:
		if f, ok := a.f.(ParameterFilter); ok {
			return nodeOrNil(f.FilterParameter(v))
		}
	case *model.Header:
		if f, ok := a.f.(HeaderFilter); ok {
			return nodeOrNil(f.FilterHeader(v))
		}
	case *model.Example:
		if f, ok := a.f.(ExampleFilter); ok {
			return nodeOrNil(f.FilterExample(v))
		}
	case *model.RequestBody:
		if f, ok := a.f.(RequestBodyFilter); ok {
			return nodeOrNil(f.FilterRequestBody(v))
		}
	case *model.APIResponse:
		if f, ok := a.f.(APIResponseFilter); ok {
			return nodeOrNil(f.FilterAPIResponse(v))
		}
	case *model.Link:
		if f, ok := a.f.(LinkFilter); ok {
			return nodeOrNil(f.FilterLink(v))
		}
	case *model.Callback:
		if f, ok := a.f.(CallbackFilter); ok {
			return nodeOrNil(f.FilterCallback(v))
		}
	case *model.SecurityScheme:
		if f, ok := a.f.(SecuritySchemeFilter); ok {
			return nodeOrNil(f.FilterSecurityScheme(v))
		}
	case *model.Server:
		if f, ok := a.f.(ServerFilter); ok {
			return nodeOrNil(f.FilterServer(v))
		}
	case *model.Tag:
		if f, ok := a.f.(TagFilter); ok {
			return nodeOrNil(f.FilterTag(v))
		}
	case *model.Operation:
		if f, ok := a.f.(OperationFilter); ok {
			return nodeOrNil(f.FilterOperation(v))
		}
	case *model.PathItem:
		if f, ok := a.f.(PathItemFilter); ok {
			return nodeOrNil(f.FilterPathItem(v))
		}
	}
	return n
}

// nodeOrNil turns a typed nil pointer into an untyped nil Node.
func nodeOrNil[T model.Node](n T) model.Node {
	if model.IsNil(n) {
		return nil
	}
	return n
}

// nodeValue converts a filter result into a value for Property.Set.
func nodeValue(n model.Node) any {
	if model.IsNil(n) {
		return nil
	}
	return n
}
