package codec

import (
	"slices"
	"strconv"

	"github.com/erraggy/oaskit/internal/pathutil"
	"github.com/erraggy/oaskit/model"
)

// readSchema reads a boolean or object schema. Known keywords are coerced
// to their model.KeywordValueType; a value of the wrong shape is kept raw with a
// warning so that writing it back loses nothing.
func (m *modelIO[V]) readSchema(v V, path string) (*model.Schema, bool) {
	switch k := m.a.Kind(v); k {
	case KindBool:
		return model.NewBoolSchema(m.a.Bool(v)), true
	case KindObject:
	default:
		m.warn(path, "", "expected schema, found %s", k)
		return nil, false
	}

	s := model.NewSchema()
	for _, kv := range m.a.Properties(v) {
		at := pathutil.Append(path, kv.Key)
		val, ok := m.readKeyword(kv.Key, kv.Value, at)
		if !ok {
			if !m.legacyExclusive(kv.Key, kv.Value) {
				m.warn(at, kv.Key, "unexpected %s value kept as is", m.a.Kind(kv.Value))
			}
			val = ToRaw(m.a, kv.Value)
		}
		s.Set(kv.Key, val)
	}
	if m.dialect == Dialect30 {
		m.upgrade30(s, path)
	}
	return s, true
}

// legacyExclusive reports the 3.0 boolean form of exclusiveMinimum and
// exclusiveMaximum, which upgrade30 rewrites.
func (m *modelIO[V]) legacyExclusive(keyword string, v V) bool {
	return m.dialect == Dialect30 &&
		(keyword == model.KeywordExclusiveMinimum || keyword == model.KeywordExclusiveMaximum) &&
		m.a.Kind(v) == KindBool
}

func (m *modelIO[V]) readKeyword(keyword string, v V, path string) (any, bool) {
	k := m.a.Kind(v)
	switch model.KeywordValueType(keyword) {
	case model.ValueString:
		return m.a.String(v), k == KindString
	case model.ValueBoolean:
		return m.a.Bool(v), k == KindBool
	case model.ValueInteger:
		if k != KindNumber {
			return nil, false
		}
		return numberInt(m.a.Number(v))
	case model.ValueNumber:
		return m.a.Number(v), k == KindNumber
	case model.ValueStringList:
		return m.stringList(v)
	case model.ValueTypeList:
		if k == KindString {
			return []string{m.a.String(v)}, true
		}
		return m.stringList(v)
	case model.ValueRawList:
		if k != KindArray {
			return nil, false
		}
		raw, _ := ToRaw(m.a, v).([]any)
		return raw, true
	case model.ValueSchema:
		return m.readSchema(v, path)
	case model.ValueSchemaList:
		if k != KindArray {
			return nil, false
		}
		var out []*model.Schema
		for i, e := range m.a.Elements(v) {
			if sub, ok := m.readSchema(e, pathutil.Append(path, strconv.Itoa(i))); ok {
				out = append(out, sub)
			}
		}
		return out, true
	case model.ValueSchemaMap:
		if k != KindObject {
			return nil, false
		}
		out := model.NewMap[*model.Schema]()
		for _, kv := range m.a.Properties(v) {
			if sub, ok := m.readSchema(kv.Value, pathutil.Append(path, kv.Key)); ok {
				out.Set(kv.Key, sub)
			}
		}
		return out, true
	case model.ValueStringListMap:
		if k != KindObject {
			return nil, false
		}
		out := model.NewMap[[]string]()
		for _, kv := range m.a.Properties(v) {
			l, ok := m.stringList(kv.Value)
			if !ok {
				return nil, false
			}
			out.Set(kv.Key, l)
		}
		return out, true
	case model.ValueDiscriminator:
		return m.readNode(new(model.Discriminator).Descriptor(), v, path)
	case model.ValueXML:
		return m.readNode(new(model.XML).Descriptor(), v, path)
	case model.ValueExternalDocs:
		return m.readNode(new(model.ExternalDocumentation).Descriptor(), v, path)
	}
	return ToRaw(m.a, v), true
}

// upgrade30 rewrites the 3.0 forms that have a different 3.1 shape into the
// dialect-agnostic form: "$ref" siblings are ignored, nullable folds into
// the type list, and boolean exclusive bounds become numeric ones.
func (m *modelIO[V]) upgrade30(s *model.Schema, path string) {
	if s.Ref() != "" && s.Len() > 1 {
		for _, kw := range s.Keywords() {
			if kw != model.KeywordRef {
				s.Delete(kw)
				m.warn(pathutil.Append(path, kw), kw, "sibling of $ref ignored in OpenAPI 3.0")
			}
		}
		return
	}

	if nullable, ok := s.GetBool(model.KeywordNullable); ok {
		switch {
		case !nullable:
			s.Delete(model.KeywordNullable)
		case s.Has(model.KeywordType):
			if !s.HasType("null") {
				s.SetType(append(slices.Clone(s.Type()), "null")...)
			}
			s.Delete(model.KeywordNullable)
		}
	}

	upgradeExclusive(s, model.KeywordExclusiveMinimum, model.KeywordMinimum)
	upgradeExclusive(s, model.KeywordExclusiveMaximum, model.KeywordMaximum)
}

// upgradeExclusive turns "minimum: 5, exclusiveMinimum: true" into
// "exclusiveMinimum: 5". A false flag, or a flag without a bound, is
// dropped.
func upgradeExclusive(s *model.Schema, exclusive, inclusive string) {
	flag, ok := s.GetBool(exclusive)
	if !ok {
		return
	}
	bound, hasBound := s.GetNumber(inclusive)
	if !flag || !hasBound {
		s.Delete(exclusive)
		return
	}
	s.Set(exclusive, bound)
	s.Delete(inclusive)
}
