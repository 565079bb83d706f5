package cmark

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
)

// escapeHTML escapes the four characters CommonMark's HTML renderer escapes
// in both text content and attribute values: &, <, >, and ". Single quotes
// are deliberately left alone.
func escapeHTML(s string) string {
	if !strings.ContainsAny(s, "&<>\"") {
		return s
	}
	return htmlEscaper.Replace(s)
}
