// Package oaserrors provides structured error types for oaskit.
//
// Import path: github.com/erraggy/oaskit/oaserrors
//
// Every failure produced by the merge, codec, registry, filter, loader and
// assembly packages is one of the types below, so callers can branch with
// [errors.Is] and [errors.As] instead of matching strings.
//
// # Error Types
//
//   - [ParseError]: malformed JSON/YAML, or an input source that could not be decoded
//   - [ResourceLimitError]: an input exceeded a configured limit (e.g. static file size)
//   - [ConfigError]: required configuration missing or invalid
//   - [StateError]: an assembly context used out of order
//   - [MergeError]: two incompatible node types met during a merge
//   - [ConversionError]: a dialect conversion that cannot be expressed
//   - [ValidationError]: structural shape violations and duplicate operation ids
//
// # Sentinel Errors
//
// Each type matches its sentinel with errors.Is:
//
//	doc, err := reader.Read(data, codec.FormatYAML)
//	if errors.Is(err, oaserrors.ErrResourceLimit) {
//	    // input larger than the configured maximum
//	}
//
// A [ParseError] caused by a [ResourceLimitError] matches both [ErrParse]
// and [ErrResourceLimit].
package oaserrors
