package merge

import (
	"slices"

	"github.com/erraggy/oaskit/model"
	"github.com/erraggy/oaskit/oaserrors"
)

// Merge deep-merges secondary into primary and returns a new node. Neither
// argument is modified and the result shares no state with them.
//
// If one argument is nil the result is a copy of the other. Otherwise, for
// every property:
//   - scalars take the primary value when set, else the secondary value
//   - lists are primary followed by secondary
//   - maps are a union where the primary entry wins on a key conflict,
//     except the path and callback maps which merge colliding entries
//   - nested nodes merge recursively
//
// Merging two nodes of different types panics with *oaserrors.MergeError.
func Merge[T model.Node](primary, secondary T) T {
	pNil, sNil := model.IsNil(primary), model.IsNil(secondary)
	switch {
	case pNil && sNil:
		var zero T
		return zero
	case pNil:
		return model.Copy(secondary)
	case sNil:
		return model.Copy(primary)
	}
	out, _ := nodes(primary, secondary, primary.Descriptor().Name).(T)
	return out
}

// Documents folds docs left to right; earlier documents win conflicts.
// Nil documents are skipped. It returns nil when every document is nil.
func Documents(docs ...*model.OpenAPI) *model.OpenAPI {
	var out *model.OpenAPI
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		out = Merge(out, doc)
	}
	return out
}

func nodes(primary, secondary model.Node, path string) model.Node {
	d := primary.Descriptor()
	if d != secondary.Descriptor() {
		panic(&oaserrors.MergeError{
			Primary:   d.Name,
			Secondary: secondary.Descriptor().Name,
			Path:      path,
		})
	}
	if d.Bag {
		return schemas(primary.(*model.Schema), secondary.(*model.Schema), path)
	}

	out := d.New()
	for _, p := range d.Properties {
		pv, sv := p.Get(primary), p.Get(secondary)
		if pv == nil && sv == nil {
			continue
		}
		at := path + "." + p.Name
		switch p.Kind {
		case model.KindObject:
			p.Set(out, objects(pv, sv, at))
		case model.KindList:
			p.Set(out, p.MakeList(lists(p.Elements(pv), p.Elements(sv))))
		case model.KindMap:
			p.Set(out, p.MakeMap(maps(p.Entries(pv), p.Entries(sv), p.MergeEntries, at)))
		default:
			p.Set(out, model.CopyValue(first(pv, sv)))
		}
	}
	return out
}

func first(primary, secondary any) any {
	if primary != nil {
		return primary
	}
	return secondary
}

func objects(pv, sv any, path string) any {
	pn, _ := pv.(model.Node)
	sn, _ := sv.(model.Node)
	switch {
	case model.IsNil(pn):
		return model.CopyValue(sv)
	case model.IsNil(sn):
		return model.CopyValue(pv)
	}
	return nodes(pn, sn, path)
}

// lists concatenates primary and secondary. The result is nil only when
// both are absent; an explicit empty list such as security: [] survives.
func lists(primary, secondary []any) []any {
	if primary == nil && secondary == nil {
		return nil
	}
	out := make([]any, 0, len(primary)+len(secondary))
	for _, it := range primary {
		out = append(out, model.CopyValue(it))
	}
	for _, it := range secondary {
		out = append(out, model.CopyValue(it))
	}
	return out
}

// maps unions two entry lists in primary-then-secondary order.
func maps(primary, secondary []model.Entry, mergeEntries bool, path string) []model.Entry {
	if len(primary)+len(secondary) == 0 {
		return nil
	}
	out := make([]model.Entry, 0, len(primary)+len(secondary))
	index := make(map[string]int, len(primary))
	for _, e := range primary {
		index[e.Key] = len(out)
		out = append(out, model.Entry{Key: e.Key, Value: model.CopyValue(e.Value)})
	}
	for _, e := range secondary {
		i, ok := index[e.Key]
		if !ok {
			index[e.Key] = len(out)
			out = append(out, model.Entry{Key: e.Key, Value: model.CopyValue(e.Value)})
			continue
		}
		if !mergeEntries {
			continue
		}
		pn, pok := primaryEntry(primary, e.Key)
		sn, sok := e.Value.(model.Node)
		if pok && sok {
			out[i].Value = objects(pn, sn, path+"["+e.Key+"]")
		}
	}
	return out
}

func primaryEntry(entries []model.Entry, key string) (model.Node, bool) {
	for _, e := range entries {
		if e.Key == key {
			n, ok := e.Value.(model.Node)
			return n, ok
		}
	}
	return nil, false
}

// schemas merges keyword by keyword. A boolean schema on either side makes
// the primary win outright.
func schemas(primary, secondary *model.Schema, path string) *model.Schema {
	if primary.IsBool() || secondary.IsBool() {
		return model.Copy(primary)
	}
	out := model.NewSchema()
	primary.All(func(kw string, pv any) {
		sv, ok := secondary.Get(kw)
		if !ok {
			out.Set(kw, model.CopyValue(pv))
			return
		}
		out.Set(kw, keyword(kw, pv, sv, path+"."+kw))
	})
	secondary.All(func(kw string, sv any) {
		if !primary.Has(kw) {
			out.Set(kw, model.CopyValue(sv))
		}
	})
	return out
}

func keyword(kw string, pv, sv any, path string) any {
	switch model.KeywordValueType(kw) {
	case model.ValueSchema, model.ValueDiscriminator, model.ValueXML, model.ValueExternalDocs:
		pn, pok := pv.(model.Node)
		sn, sok := sv.(model.Node)
		if pok && sok && pn.Descriptor() == sn.Descriptor() {
			return objects(pn, sn, path)
		}
	case model.ValueSchemaList:
		ps, pok := pv.([]*model.Schema)
		ss, sok := sv.([]*model.Schema)
		if pok && sok {
			out := make([]*model.Schema, 0, len(ps)+len(ss))
			for _, s := range slices.Concat(ps, ss) {
				out = append(out, model.Copy(s))
			}
			return out
		}
	case model.ValueRawList:
		ps, pok := pv.([]any)
		ss, sok := sv.([]any)
		if pok && sok {
			return lists(ps, ss)
		}
	case model.ValueStringList, model.ValueTypeList:
		ps, pok := pv.([]string)
		ss, sok := sv.([]string)
		if pok && sok {
			return union(ps, ss)
		}
	case model.ValueSchemaMap:
		if pm, ok := pv.(*model.Map[*model.Schema]); ok {
			if sm, ok := sv.(*model.Map[*model.Schema]); ok {
				return mapUnion(pm, sm)
			}
		}
	case model.ValueStringListMap:
		if pm, ok := pv.(*model.Map[[]string]); ok {
			if sm, ok := sv.(*model.Map[[]string]); ok {
				return mapUnion(pm, sm)
			}
		}
	}
	return model.CopyValue(pv)
}

// union concatenates string lists, dropping repeated tokens.
func union(primary, secondary []string) []string {
	out := make([]string, 0, len(primary)+len(secondary))
	for _, s := range slices.Concat(primary, secondary) {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

func mapUnion[V any](primary, secondary *model.Map[V]) *model.Map[V] {
	out := primary.Clone()
	if out == nil {
		out = model.NewMap[V]()
	}
	for k, v := range secondary.All() {
		if !out.Has(k) {
			cv, _ := model.CopyValue(v).(V)
			out.Set(k, cv)
		}
	}
	return out
}
