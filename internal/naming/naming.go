package naming

import (
	"strings"
	"unicode"
)

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == '/'
}

// ToPascalCase drops separators ('_', '-', '.', '/') and upper-cases the
// letter that follows each one.
// Example: "billing/v2.invoice" -> "BillingV2Invoice"
func ToPascalCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	upper := true
	for _, r := range s {
		if isSeparator(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SanitizeComponentName maps s onto the characters a component name may
// hold (ASCII letters and digits plus '.', '-', '_'). Everything else
// becomes '_' and leading or trailing underscores are trimmed.
// Example: "Page[github.com/acme/api.User]" -> "Page_github.com_acme_api.User"
func SanitizeComponentName(s string) string {
	b := []byte(s)
	out := b[:0]
	for _, r := range s {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)),
			r == '.', r == '-', r == '_':
			out = append(out, byte(r))
		default:
			out = append(out, '_')
		}
	}
	return strings.Trim(string(out), "_")
}
