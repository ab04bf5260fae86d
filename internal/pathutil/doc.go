// Package pathutil builds the locations oaskit reports.
//
// JSON pointers (RFC 6901) locate issues inside a document:
//
//	loc := pathutil.Append("/paths", "/pets/{id}") // "/paths/~1pets~1{id}"
//	loc = pathutil.Pointer("paths", "/pets", "get") // "/paths/~1pets/get"
//
// [SanitizeOutputPath] checks a file path before the CLI writes to it.
package pathutil
