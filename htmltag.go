package cmark

import "strings"

// matchOpenOrCloseTag matches a complete HTML open tag (with optional
// attributes) or closing tag per CommonMark §6.11, starting at s[0] ==
// '<'. It returns the tag name and the index just past the closing '>'.
func matchOpenOrCloseTag(s string) (name string, end int, ok bool) {
	if len(s) < 3 || s[0] != '<' {
		return "", 0, false
	}
	i := 1
	closing := false
	if s[i] == '/' {
		closing = true
		i++
	}
	if i >= len(s) || !isASCIILetter(s[i]) {
		return "", 0, false
	}
	start := i
	for i < len(s) && isHTMLTagNameByte(s[i]) {
		i++
	}
	name = strings.ToLower(s[start:i])

	if closing {
		i = skipHTMLSpace(s, i)
		if i < len(s) && s[i] == '>' {
			return name, i + 1, true
		}
		return "", 0, false
	}

	for {
		save := i
		j := skipHTMLSpace(s, i)
		if j == i {
			break
		}
		i = j
		if i >= len(s) || !isAttrNameStart(s[i]) {
			i = save
			break
		}
		k := i
		for k < len(s) && isAttrNameByte(s[k]) {
			k++
		}
		i = k
		j = skipHTMLSpace(s, i)
		if j < len(s) && s[j] == '=' {
			i = skipHTMLSpace(s, j+1)
			if i >= len(s) {
				return "", 0, false
			}
			switch s[i] {
			case '"':
				end := strings.IndexByte(s[i+1:], '"')
				if end < 0 {
					return "", 0, false
				}
				i = i + 1 + end + 1
			case '\'':
				end := strings.IndexByte(s[i+1:], '\'')
				if end < 0 {
					return "", 0, false
				}
				i = i + 1 + end + 1
			default:
				k := i
				for k < len(s) && !isHTMLSpaceByte(s[k]) && s[k] != '>' && s[k] != '<' &&
					s[k] != '"' && s[k] != '\'' && s[k] != '=' && s[k] != '`' {
					k++
				}
				if k == i {
					return "", 0, false
				}
				i = k
			}
		}
	}
	i = skipHTMLSpace(s, i)
	if i < len(s) && s[i] == '/' {
		i++
	}
	if i < len(s) && s[i] == '>' {
		return name, i + 1, true
	}
	return "", 0, false
}

func skipHTMLSpace(s string, i int) int {
	for i < len(s) && isHTMLSpaceByte(s[i]) {
		i++
	}
	return i
}

func isHTMLSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isAttrNameStart(c byte) bool {
	return isASCIILetter(c) || c == '_' || c == ':'
}

func isAttrNameByte(c byte) bool {
	return isASCIIAlnum(c) || c == '_' || c == '.' || c == ':' || c == '-'
}

// matchHTMLComment matches "<!--" starting at s[0] through the first "-->"
// found after it. The content between is not inspected; the short forms
// "<!-->" and "<!--->" are not matched.
func matchHTMLComment(s string) (end int, ok bool) {
	if !strings.HasPrefix(s, "<!--") {
		return 0, false
	}
	rest := s[4:]
	idx := strings.Index(rest, "-->")
	if idx < 0 {
		return 0, false
	}
	return 4 + idx + 3, true
}

func matchProcessingInstruction(s string) (end int, ok bool) {
	if !strings.HasPrefix(s, "<?") {
		return 0, false
	}
	idx := strings.Index(s[2:], "?>")
	if idx < 0 {
		return 0, false
	}
	return 2 + idx + 2, true
}

func matchDeclaration(s string) (end int, ok bool) {
	if len(s) < 3 || s[0] != '<' || s[1] != '!' || !isASCIILetter(s[2]) {
		return 0, false
	}
	idx := strings.IndexByte(s[2:], '>')
	if idx < 0 {
		return 0, false
	}
	return 2 + idx + 1, true
}

func matchCDATA(s string) (end int, ok bool) {
	if !strings.HasPrefix(s, "<![CDATA[") {
		return 0, false
	}
	idx := strings.Index(s[9:], "]]>")
	if idx < 0 {
		return 0, false
	}
	return 9 + idx + 3, true
}
