// Package filter rewrites assembled documents.
//
// A filter is any value implementing one or more capability interfaces,
// one per node kind ([SchemaFilter], [OperationFilter], [PathItemFilter],
// and so on), plus the terminal [DocumentFilter]. [Apply] runs filters in
// order. Each filter sees children before parents and the whole document
// last. Returning nil from a per-node callback removes that node. [Funcs]
// turns plain functions into a filter.
//
// # Unused components
//
// [UnusedComponents] removes components nothing live refers to. It marks
// everything reachable from the document roots, sweeps the rest, and
// repeats until a pass removes nothing. Components that only refer to each
// other are removed together.
//
// [RefCollector] is the reference counter behind it and can be used on its
// own to list what a document or node refers to.
package filter
