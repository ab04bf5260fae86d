// Package merge deep-merges partial OpenAPI documents.
//
// The engine is generic: it walks the property descriptors published by the
// model package instead of carrying per-type code, so every node type merges
// the same way.
//
//	merged := merge.Merge(annotations, merge.Merge(static, reader))
//
// The first argument is primary. Scalars set on the primary win, lists are
// concatenated primary first, maps are unioned with the primary entry
// winning, and nested objects merge recursively. Path items that appear in
// both documents under the same path are merged as well, so two sources can
// each contribute different operations on one path.
//
// Schemas merge keyword by keyword: sub-schemas recurse, schema lists and
// raw lists concatenate, schema maps union, and type and required lists
// concatenate without repeated entries.
package merge
