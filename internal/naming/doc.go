// Package naming derives component names from Go type identities.
//
// [ToPascalCase] turns a package path segment into a name prefix and
// [SanitizeComponentName] restricts the result to the characters a
// component name may contain.
package naming
