package pathutil

import "strings"

var (
	escaper   = strings.NewReplacer("~", "~0", "/", "~1")
	unescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

// Escape encodes s as a single JSON pointer reference token.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Unescape decodes a JSON pointer reference token.
func Unescape(s string) string {
	return unescaper.Replace(s)
}

// Append adds one reference token to pointer.
func Append(pointer, token string) string {
	return pointer + "/" + escaper.Replace(token)
}

// Pointer joins tokens into a JSON pointer. No tokens yields "", the
// pointer to the whole document.
func Pointer(tokens ...string) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteByte('/')
		b.WriteString(escaper.Replace(tok))
	}
	return b.String()
}
