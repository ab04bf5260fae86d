// Package model provides the dialect-agnostic OpenAPI document model.
//
// Every OpenAPI object is a [Node]. Each node type publishes a static
// [Descriptor] listing its properties in wire order together with their
// [Kind] (scalar, list, map or nested object) and type-erased accessors.
// Generic engines such as merging, copying, equality and traversal work
// over every node type from these tables instead of per-type code.
//
// # Schemas
//
// [Schema] is a property bag rather than a fixed struct: keywords live in an
// insertion-ordered data map and [KeywordValueType] tells readers and writers how
// to coerce each known keyword. Unknown keywords pass through unchanged.
// The type keyword is always a list internally, whichever dialect it was
// read from. A boolean schema (true or false) is its own variant:
//
//	s := model.TypedSchema("string", "null")
//	s.Set(model.KeywordFormat, "uuid")
//	s.Nullable() // true
//
//	deny := model.NewBoolSchema(false)
//
// # Ordered maps
//
// Components, paths, content maps and schema properties use [Map], an
// insertion-ordered map, so documents serialize deterministically. A nil
// *Map is readable and empty.
//
// # References
//
// Referenceable nodes (Schema, Parameter, Header, Example, RequestBody,
// APIResponse, Link, Callback, SecurityScheme and PathItem) may carry a
// $ref. [ComponentRef] and [ParseComponentRef] build and split local
// references of the form "#/components/<category>/<name>".
package model
