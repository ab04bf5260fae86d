package codec

import (
	"slices"
	"strconv"

	"github.com/erraggy/oaskit/internal/pathutil"
	"github.com/erraggy/oaskit/model"
)

// writeSchema writes s in the target dialect. boolAllowed reports whether
// the position accepts a boolean schema in 3.0, which is only true for
// additionalProperties. The source schema is never modified.
func (m *modelIO[V]) writeSchema(s *model.Schema, path string, boolAllowed bool) V {
	if b, ok := s.Bool(); ok {
		if m.dialect != Dialect30 || boolAllowed {
			return m.a.FromBool(b)
		}
		if b {
			return m.a.Object(nil)
		}
		return m.a.Object([]Pair[V]{{Key: model.KeywordNot, Value: m.a.Object(nil)}})
	}

	var out *model.Schema
	if m.dialect == Dialect30 {
		out = m.downgrade30(s, path)
	} else {
		out = normalize31(s)
	}
	pairs := make([]Pair[V], 0, out.Len())
	out.All(func(kw string, val any) {
		pairs = append(pairs, Pair[V]{Key: kw, Value: m.writeKeyword(kw, val, pathutil.Append(path, kw))})
	})
	return m.a.Object(pairs)
}

func (m *modelIO[V]) writeKeyword(keyword string, val any, path string) V {
	switch v := val.(type) {
	case *model.Schema:
		if v == nil {
			return m.a.Null()
		}
		return m.writeSchema(v, path, keyword == model.KeywordAdditionalProperties)
	case []*model.Schema:
		items := make([]V, 0, len(v))
		for i, sub := range v {
			items = append(items, m.writeSchema(sub, pathutil.Append(path, strconv.Itoa(i)), false))
		}
		return m.a.Array(items)
	case *model.Map[*model.Schema]:
		pairs := make([]Pair[V], 0, v.Len())
		for k, sub := range v.All() {
			pairs = append(pairs, Pair[V]{Key: k, Value: m.writeSchema(sub, pathutil.Append(path, k), false)})
		}
		return m.a.Object(pairs)
	case *model.Map[[]string]:
		pairs := make([]Pair[V], 0, v.Len())
		for k, l := range v.All() {
			pairs = append(pairs, Pair[V]{Key: k, Value: FromRaw(m.a, l)})
		}
		return m.a.Object(pairs)
	case []string:
		if keyword == model.KeywordType && len(v) == 1 {
			return m.a.FromString(v[0])
		}
		return FromRaw(m.a, v)
	case model.Node:
		w, _ := m.writeNode(v, path)
		return w
	}
	return FromRaw(m.a, val)
}

// shallow copies the keyword map of s; values are shared.
func shallow(s *model.Schema) *model.Schema {
	out := model.NewSchema()
	s.All(out.Set)
	return out
}

// normalize31 rewrites a bare nullable keyword, which 3.1 removed, into a
// null type or a null alternative.
func normalize31(s *model.Schema) *model.Schema {
	nullable, ok := s.GetBool(model.KeywordNullable)
	if !ok {
		return s
	}
	out := shallow(s)
	out.Delete(model.KeywordNullable)
	switch {
	case !nullable || out.IsEmpty():
		return out
	case out.Has(model.KeywordType):
		if !out.HasType("null") {
			out.SetType(append(slices.Clone(out.Type()), "null")...)
		}
		return out
	}
	wrapped := model.NewSchema()
	wrapped.Set(model.KeywordAnyOf, []*model.Schema{out, model.TypedSchema("null")})
	return wrapped
}

// downgrade30 converts one schema level to the 3.0 vocabulary. Each lossy
// step records a warning.
func (m *modelIO[V]) downgrade30(s *model.Schema, path string) *model.Schema {
	out := shallow(s)

	m.foldNullAlternative(out, model.KeywordAnyOf)
	m.foldNullAlternative(out, model.KeywordOneOf)

	for _, kw := range out.Keywords() {
		if model.Is31Keyword(kw) {
			out.Delete(kw)
			m.warn(pathutil.Append(path, kw), kw, "keyword does not exist in OpenAPI 3.0 and was dropped")
		}
	}

	if c, ok := out.Get(model.KeywordConst); ok {
		out.Delete(model.KeywordConst)
		if out.Has(model.KeywordEnum) {
			m.warn(pathutil.Append(path, model.KeywordConst), model.KeywordConst, "const dropped next to enum")
		} else {
			out.Set(model.KeywordEnum, []any{c})
		}
	}

	if ex, ok := out.Get(model.KeywordExamples); ok {
		out.Delete(model.KeywordExamples)
		list, _ := ex.([]any)
		switch {
		case out.Has(model.KeywordExample):
			m.warn(pathutil.Append(path, model.KeywordExamples), model.KeywordExamples, "examples dropped next to example")
		case len(list) > 0:
			out.Set(model.KeywordExample, list[0])
			if len(list) > 1 {
				m.warn(pathutil.Append(path, model.KeywordExamples), model.KeywordExamples,
					"only the first of %d examples kept", len(list))
			}
		}
	}

	m.downgradeType(out, path)
	m.downgradeExclusive(out, model.KeywordExclusiveMinimum, model.KeywordMinimum, 1, path)
	m.downgradeExclusive(out, model.KeywordExclusiveMaximum, model.KeywordMaximum, -1, path)

	if ref := out.Ref(); ref != "" && out.Len() > 1 {
		wrapped := model.NewSchema()
		wrapped.Set(model.KeywordAllOf, append([]*model.Schema{model.RefSchema(ref)}, out.AllOf()...))
		out.All(func(kw string, val any) {
			if kw != model.KeywordRef && kw != model.KeywordAllOf {
				wrapped.Set(kw, val)
			}
		})
		out = wrapped
	}
	return out
}

func isNullSchema(s *model.Schema) bool {
	t := s.Type()
	return !s.IsBool() && s.Len() == 1 && len(t) == 1 && t[0] == "null"
}

// foldNullAlternative rewrites "anyOf: [X, {type: null}]" as X with
// nullable: true. A reference X is kept behind allOf because 3.0 ignores
// the siblings of $ref.
func (m *modelIO[V]) foldNullAlternative(out *model.Schema, keyword string) {
	list := out.GetSchemaList(keyword)
	if len(list) != 2 {
		return
	}
	i := slices.IndexFunc(list, isNullSchema)
	if i < 0 {
		return
	}
	x := list[1-i]
	if x == nil || x.IsBool() {
		return
	}
	out.Delete(keyword)
	if x.Ref() != "" {
		out.Set(model.KeywordAllOf, append(slices.Clone(out.AllOf()), x))
	} else {
		x.All(func(kw string, val any) {
			if !out.Has(kw) {
				out.Set(kw, val)
			}
		})
	}
	out.Set(model.KeywordNullable, true)
}

// downgradeType writes the type list as a single string plus nullable.
// Several non-null types become an anyOf of single-type schemas.
func (m *modelIO[V]) downgradeType(out *model.Schema, path string) {
	types := out.Type()
	if len(types) == 0 {
		return
	}
	nonNull := slices.DeleteFunc(slices.Clone(types), func(t string) bool { return t == "null" })
	at := pathutil.Append(path, model.KeywordType)
	switch len(nonNull) {
	case 0:
		out.Delete(model.KeywordType)
		m.warn(at, model.KeywordType, "type null has no OpenAPI 3.0 form and was written as nullable")
	case 1:
		out.SetType(nonNull[0])
	default:
		out.Delete(model.KeywordType)
		alts := make([]*model.Schema, len(nonNull))
		for i, t := range nonNull {
			alts[i] = model.TypedSchema(t)
		}
		if out.Has(model.KeywordAnyOf) {
			group := model.NewSchema()
			group.Set(model.KeywordAnyOf, alts)
			out.Set(model.KeywordAllOf, append(slices.Clone(out.AllOf()), group))
		} else {
			out.Set(model.KeywordAnyOf, alts)
		}
		m.info(at, model.KeywordType, "%d types written as anyOf", len(nonNull))
	}
	if len(nonNull) != len(types) {
		out.Set(model.KeywordNullable, true)
	}
}

// downgradeExclusive turns a numeric exclusive bound into the inclusive
// keyword plus a boolean flag. When an inclusive bound is also set, the
// stricter one is kept. sign is 1 for lower bounds and -1 for upper.
func (m *modelIO[V]) downgradeExclusive(out *model.Schema, exclusive, inclusive string, sign int, path string) {
	ex, ok := out.GetNumber(exclusive)
	if !ok {
		if out.Has(exclusive) {
			out.Delete(exclusive)
			m.warn(pathutil.Append(path, exclusive), exclusive, "non-numeric bound dropped")
		}
		return
	}
	out.Delete(exclusive)
	if in, ok := out.GetNumber(inclusive); ok {
		m.warn(pathutil.Append(path, exclusive), exclusive, "both %s and %s set; only the stricter bound kept", inclusive, exclusive)
		if compareNumbers(ex, in)*sign < 0 {
			return
		}
	}
	out.Set(inclusive, ex)
	out.Set(exclusive, true)
}
