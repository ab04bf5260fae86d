// Package issues provides the issue type shared by dialect conversion,
// structural validation and assembly checks.
package issues

import "fmt"

// Severity orders issues from informational to fatal.
type Severity int

const (
	// SeverityError marks a structural violation.
	SeverityError Severity = iota
	// SeverityWarning marks a lossy conversion or a suspicious document.
	SeverityWarning
	// SeverityInfo marks a processing note.
	SeverityInfo
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Issue is a single problem found while converting, validating or
// assembling a document.
type Issue struct {
	// Path is the JSON pointer of the node, e.g. "/components/schemas/Pet"
	Path string
	// Keyword is the field or schema keyword involved, if any
	Keyword string
	// Message is a human-readable description
	Message string
	// Severity is the severity level
	Severity Severity
	// Value is the problematic value (optional)
	Value any
}

// String formats the issue with a severity symbol.
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case SeverityError:
		symbol = "✗"
	case SeverityWarning:
		symbol = "⚠"
	case SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}
	loc := i.Path
	if loc == "" {
		loc = "/"
	}
	if i.Keyword != "" {
		return fmt.Sprintf("%s %s (%s): %s", symbol, loc, i.Keyword, i.Message)
	}
	return fmt.Sprintf("%s %s: %s", symbol, loc, i.Message)
}

// Count returns how many issues have the given severity.
func Count(list []Issue, s Severity) int {
	n := 0
	for _, i := range list {
		if i.Severity == s {
			n++
		}
	}
	return n
}
