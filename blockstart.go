package cmark

import "strings"

// detectATXHeading recognizes an ATX heading line: 1-6 '#' characters
// followed by a space, a tab, or end of line, with an optional closing
// run of '#' characters (preceded by a space) stripped from the content.
func detectATXHeading(s string) (level int, content string, ok bool) {
	i := 0
	for i < len(s) && s[i] == '#' {
		i++
	}
	if i == 0 || i > 6 {
		return 0, "", false
	}
	if i < len(s) && s[i] != ' ' && s[i] != '\t' {
		return 0, "", false
	}
	rest := strings.Trim(s[i:], " \t")
	rest = strings.TrimRight(rest, " \t")
	trimmed := strings.TrimRight(rest, "#")
	if trimmed != rest && (trimmed == "" || strings.HasSuffix(trimmed, " ") || strings.HasSuffix(trimmed, "\t")) {
		rest = strings.TrimRight(trimmed, " \t")
	} else if trimmed == "" {
		rest = ""
	}
	return i, rest, true
}

// detectThematicBreak recognizes a line made up of three or more of the
// same character among '-', '_', and '*', optionally interspersed with
// spaces or tabs and nothing else.
func detectThematicBreak(s string) bool {
	if s == "" {
		return false
	}
	var marker byte
	count := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case ' ', '\t':
			continue
		case '-', '_', '*':
			if marker == 0 {
				marker = c
			} else if c != marker {
				return false
			}
			count++
		default:
			return false
		}
	}
	return count >= 3
}

// detectSetextUnderline recognizes a setext heading underline: a run of
// one or more '=' (level 1) or '-' (level 2), optionally followed by
// trailing spaces or tabs.
func detectSetextUnderline(s string) (level int, ok bool) {
	if s == "" {
		return 0, false
	}
	var marker byte
	i := 0
	for i < len(s) && (s[i] == '=' || s[i] == '-') {
		if marker == 0 {
			marker = s[i]
		} else if s[i] != marker {
			return 0, false
		}
		i++
	}
	if i == 0 {
		return 0, false
	}
	if !isBlankLine(s[i:]) {
		return 0, false
	}
	if marker == '=' {
		return 1, true
	}
	return 2, true
}

// detectBlockQuote recognizes a blockquote marker: '>' optionally followed
// by a single space or tab, which is consumed as part of the marker.
func detectBlockQuote(s string) (rest string, ok bool) {
	if s == "" || s[0] != '>' {
		return "", false
	}
	i := 1
	if i < len(s) && s[i] == ' ' {
		i++
	} else if i < len(s) && s[i] == '\t' {
		r, _ := cutIndent(s[i:], 4)
		return r, true
	}
	return s[i:], true
}
