package schemautil

import (
	"slices"

	"github.com/erraggy/oaskit/model"
)

// Equivalent reports whether a and b are structurally the same schema,
// ignoring metadata keywords and the order of required and type names.
// Neither argument is modified.
func Equivalent(a, b *model.Schema) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return model.Equal(Normalize(a), Normalize(b))
}

// Normalize returns a copy of s without metadata keywords, with required
// and type names sorted, at every level.
func Normalize(s *model.Schema) *model.Schema {
	out := model.Copy(s)
	normalize(out, map[*model.Schema]bool{})
	return out
}

func normalize(n model.Node, seen map[*model.Schema]bool) {
	if s, ok := n.(*model.Schema); ok {
		if seen[s] {
			return
		}
		seen[s] = true
		for _, kw := range s.Keywords() {
			if IsMetadata(kw) {
				s.Delete(kw)
			}
		}
		for _, kw := range []string{model.KeywordRequired, model.KeywordType} {
			if v, ok := s.Get(kw); ok {
				if names, ok := v.([]string); ok {
					sorted := slices.Clone(names)
					slices.Sort(sorted)
					s.Set(kw, sorted)
				}
			}
		}
	}
	model.Children(n, func(c model.Node) { normalize(c, seen) })
}
