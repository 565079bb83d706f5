package cmark

import "strings"

// parseLinkLabel parses a "[...]" link label starting at s[i] (s[i] == '[').
// It returns the label's inner text (unescaped is left to the caller), the
// index just past the closing bracket, and whether a label was found. Per
// CommonMark, a label must contain at least one non-whitespace character,
// must not itself contain an unescaped '[' or ']', and is capped at 999
// characters between the brackets.
func parseLinkLabel(s string, i int) (label string, end int, ok bool) {
	if i >= len(s) || s[i] != '[' {
		return "", i, false
	}
	j := i + 1
	for j < len(s) {
		switch s[j] {
		case ']':
			if j-(i+1) > 999 {
				return "", i, false
			}
			inner := strings.Trim(s[i+1:j], " \t\n")
			if inner == "" {
				return "", i, false
			}
			return s[i+1 : j], j + 1, true
		case '[':
			return "", i, false
		case '\\':
			j += 2
			continue
		}
		j++
	}
	return "", i, false
}

// parseLinkDestination parses a link destination at s[i]: either a
// "<...>" bracketed form (no raw line endings or unescaped '<'/'>') or a
// bare form (no ASCII control characters or spaces, parentheses only when
// balanced or escaped). The returned destination is unescaped.
func parseLinkDestination(s string, i int) (dest string, end int, ok bool) {
	if i >= len(s) {
		return "", i, false
	}
	if s[i] == '<' {
		j := i + 1
		for {
			if j >= len(s) || s[j] == '\n' {
				return "", i, false
			}
			if s[j] == '>' {
				return unescapeMarkdown(s[i+1 : j]), j + 1, true
			}
			if s[j] == '<' {
				return "", i, false
			}
			if s[j] == '\\' && j+1 < len(s) {
				j += 2
				continue
			}
			j++
		}
	}

	depth := 0
	j := i
	for j < len(s) {
		c := s[j]
		switch {
		case c == '(':
			depth++
		case c == ')':
			if depth == 0 {
				goto done
			}
			depth--
		case c == '\\' && j+1 < len(s):
			j += 2
			continue
		case c <= ' ' || isControlByteStrict(c):
			goto done
		}
		j++
	}
done:
	if j == i || depth != 0 {
		return "", i, false
	}
	return unescapeMarkdown(s[i:j]), j, true
}

func isControlByteStrict(c byte) bool {
	return c < 0x20 || c == 0x7F
}

// parseLinkTitle parses a link title at s[i], delimited by '"', '\'', or a
// balanced '(' ')' pair. Escaped delimiters inside do not end the title.
func parseLinkTitle(s string, i int) (title string, end int, ok bool) {
	if i >= len(s) {
		return "", i, false
	}
	open := s[i]
	if open != '"' && open != '\'' && open != '(' {
		return "", i, false
	}
	want := open
	if open == '(' {
		want = ')'
	}
	j := i + 1
	for j < len(s) {
		if s[j] == want {
			return unescapeMarkdown(s[i+1 : j]), j + 1, true
		}
		if s[j] == '(' && want == ')' {
			return "", i, false
		}
		if s[j] == '\\' && j+1 < len(s) {
			j += 2
			continue
		}
		j++
	}
	return "", i, false
}

// skipLinkSpace skips spaces, tabs, and at most one line ending, as the
// CommonMark grammar allows between the parts of a link/reference.
func skipLinkSpace(s string, i int) int {
	sawNL := false
	for i < len(s) {
		switch s[i] {
		case ' ', '\t':
			i++
		case '\n':
			if sawNL {
				return i
			}
			sawNL = true
			i++
		default:
			return i
		}
	}
	return i
}

var mdEscapable = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

func isMarkdownEscapable(c byte) bool {
	return strings.IndexByte(mdEscapable, c) >= 0
}

// unescapeMarkdown resolves backslash escapes of ASCII punctuation and
// decodes entities, as required of link destinations, titles, and code
// info strings once lifted out of the inline scanner's normal escape path.
func unescapeMarkdown(s string) string {
	if !strings.ContainsAny(s, "\\&") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		switch s[i] {
		case '\\':
			if i+1 < len(s) && isMarkdownEscapable(s[i+1]) {
				b.WriteByte(s[i+1])
				i += 2
				continue
			}
			b.WriteByte(s[i])
			i++
		case '&':
			if text, end, ok := decodeEntity(s, i); ok {
				b.WriteString(text)
				i = end
				continue
			}
			b.WriteByte(s[i])
			i++
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}
