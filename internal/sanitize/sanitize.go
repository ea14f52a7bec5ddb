// Package sanitize is the single escaping boundary for user-supplied
// display strings. Every string that ends up rendered by a client goes
// through here once, before storage.
package sanitize

import (
	"html"
	"strings"
)

// String trims surrounding whitespace and HTML-escapes the value.
func String(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
