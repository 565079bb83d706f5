package cmark

import (
	"strings"

	"golang.org/x/text/cases"
)

// foldCaser performs the Unicode case fold normalizeLabel needs. cases.Fold
// is only invoked for labels carrying non-ASCII bytes: ASCII-only labels are
// far more common and the byte-level loop below handles them without an
// allocation-heavy transform pass.
var foldCaser = cases.Fold()

// normalizeLabel normalizes a reference label per CommonMark §6.2: strip
// leading/trailing whitespace, collapse internal whitespace runs to a
// single space, and case-fold the result so that "[Foo]" and "[FOO]" and
// "[foo]" resolve to the same reference map entry.
func normalizeLabel(s string) string {
	s = strings.Trim(s, " \t\n\r")
	var b strings.Builder
	b.Grow(len(s))
	space := false
	hasHigh := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case ' ', '\t', '\n', '\r':
			space = true
			continue
		default:
			if space {
				b.WriteByte(' ')
				space = false
			}
			if c >= 'A' && c <= 'Z' {
				c += 'a' - 'A'
			}
			if c >= 0x80 {
				hasHigh = true
			}
			b.WriteByte(c)
		}
	}
	out := b.String()
	if hasHigh {
		out = foldCaser.String(out)
	}
	return out
}
