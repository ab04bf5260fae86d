package schemautil

import (
	"encoding/json"
	"fmt"
	"hash"
	"hash/fnv"
	"reflect"
	"slices"
	"sort"

	"github.com/erraggy/oaskit/model"
)

// metadataKeywords do not affect what a schema accepts and are ignored by
// structural hashing and equivalence.
var metadataKeywords = map[string]bool{
	model.KeywordTitle:       true,
	model.KeywordDescription: true,
	model.KeywordExample:     true,
	model.KeywordExamples:    true,
	model.KeywordComment:     true,
	"deprecated":             true,
}

// IsMetadata reports whether keyword is documentation only.
func IsMetadata(keyword string) bool {
	return metadataKeywords[keyword] || model.IsExtensionKey(keyword)
}

// SchemaHasher computes structural hashes for schemas.
// Structural hashes ignore metadata keywords (title, description, examples,
// deprecated, extensions) and the order of properties and required names.
type SchemaHasher struct {
	visited map[*model.Schema]bool
}

// NewSchemaHasher creates a new SchemaHasher.
func NewSchemaHasher() *SchemaHasher {
	return &SchemaHasher{
		visited: make(map[*model.Schema]bool),
	}
}

// Hash computes a structural hash for a schema.
// Schemas with identical structural keywords will have the same hash.
// Note: Hash collisions are possible; use Equivalent to verify.
func (h *SchemaHasher) Hash(schema *model.Schema) uint64 {
	clear(h.visited)
	hasher := fnv.New64a()
	h.hashSchema(hasher, schema)
	return hasher.Sum64()
}

// GroupByHash groups the named schemas by structural hash. Names within a
// group keep the map's order.
func (h *SchemaHasher) GroupByHash(schemas *model.Map[*model.Schema]) map[uint64][]string {
	groups := make(map[uint64][]string)
	for name, schema := range schemas.All() {
		sum := h.Hash(schema)
		groups[sum] = append(groups[sum], name)
	}
	return groups
}

func (h *SchemaHasher) hashSchema(hasher hash.Hash64, schema *model.Schema) {
	if schema == nil {
		h.writeString(hasher, "nil")
		return
	}
	if b, ok := schema.Bool(); ok {
		h.writeString(hasher, fmt.Sprintf("bool:%t", b))
		return
	}

	if h.visited[schema] {
		h.writeString(hasher, "circular")
		return
	}
	h.visited[schema] = true
	defer delete(h.visited, schema)

	keywords := schema.Keywords()
	sort.Strings(keywords)
	h.writeString(hasher, "{")
	for _, kw := range keywords {
		if IsMetadata(kw) {
			continue
		}
		v, _ := schema.Get(kw)
		h.writeString(hasher, kw+":")
		switch kw {
		case model.KeywordRequired, model.KeywordType:
			if names, ok := v.([]string); ok {
				sorted := slices.Clone(names)
				sort.Strings(sorted)
				v = sorted
			}
		}
		h.hashValue(hasher, v)
	}
	h.writeString(hasher, "}")
}

func (h *SchemaHasher) hashValue(hasher hash.Hash64, v any) {
	switch val := v.(type) {
	case nil:
		h.writeString(hasher, "null")
	case *model.Schema:
		h.hashSchema(hasher, val)
	case []*model.Schema:
		h.writeString(hasher, "[")
		for _, s := range val {
			h.hashSchema(hasher, s)
		}
		h.writeString(hasher, "]")
	case *model.Map[*model.Schema]:
		h.hashEntries(hasher, val.Entries())
	case *model.Map[[]string]:
		h.hashEntries(hasher, val.Entries())
	case *model.Map[any]:
		h.hashEntries(hasher, val.Entries())
	case *model.Map[string]:
		h.hashEntries(hasher, val.Entries())
	case model.Node:
		if model.IsNil(val) {
			h.writeString(hasher, "nil")
			return
		}
		h.writeString(hasher, val.Descriptor().Name+"{")
		for _, p := range val.Descriptor().Properties {
			pv := p.Get(val)
			if pv == nil || reflect.ValueOf(pv).IsZero() {
				continue
			}
			h.writeString(hasher, p.Name+":")
			h.hashValue(hasher, pv)
		}
		h.writeString(hasher, "}")
	case []any:
		h.writeString(hasher, "[")
		for _, it := range val {
			h.hashValue(hasher, it)
		}
		h.writeString(hasher, "]")
	case []string:
		h.writeString(hasher, "[")
		for _, it := range val {
			h.writeString(hasher, it)
		}
		h.writeString(hasher, "]")
	case json.Number:
		// 1 and 1.0 hash alike, matching model.EqualValue.
		if f, err := val.Float64(); err == nil {
			h.writeString(hasher, fmt.Sprintf("n:%g", f))
			return
		}
		h.writeString(hasher, "n:"+val.String())
	default:
		h.writeString(hasher, fmt.Sprintf("%T:%v", v, v))
	}
}

// hashEntries hashes map entries sorted by key.
func (h *SchemaHasher) hashEntries(hasher hash.Hash64, entries []model.Entry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	h.writeString(hasher, "{")
	for _, e := range entries {
		h.writeString(hasher, e.Key+":")
		h.hashValue(hasher, e.Value)
	}
	h.writeString(hasher, "}")
}

// writeString writes a length-prefixed string so adjacent values cannot
// run together.
func (h *SchemaHasher) writeString(hasher hash.Hash64, s string) {
	_, _ = fmt.Fprintf(hasher, "%d:%s", len(s), s)
}
