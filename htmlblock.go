package cmark

import "strings"

// htmlBlockType6Tags is the fixed set of block-level tag names that, per
// CommonMark §4.6 condition 6, open an HTML block ending at the next
// blank line regardless of what content follows the tag on its own line.
var htmlBlockType6Tags = map[string]bool{
	"address": true, "article": true, "aside": true, "base": true,
	"basefont": true, "blockquote": true, "body": true, "caption": true,
	"center": true, "col": true, "colgroup": true, "dd": true,
	"details": true, "dialog": true, "dir": true, "div": true, "dl": true,
	"dt": true, "fieldset": true, "figcaption": true, "figure": true,
	"footer": true, "form": true, "frame": true, "frameset": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"head": true, "header": true, "hr": true, "html": true, "iframe": true,
	"legend": true, "li": true, "link": true, "main": true, "menu": true,
	"menuitem": true, "nav": true, "noframes": true, "ol": true,
	"optgroup": true, "option": true, "p": true, "param": true,
	"search": true, "section": true, "summary": true, "table": true, "tbody": true,
	"td": true, "tfoot": true, "th": true, "thead": true, "title": true,
	"tr": true, "track": true, "ul": true,
}

var htmlBlockType1Tags = []string{"script", "pre", "style", "textarea"}

// detectHTMLBlockStart checks whether s opens an HTML block, returning
// which of CommonMark's seven start conditions matched. interrupting is
// true when s would otherwise be interpreted as continuing an open
// paragraph; condition 7 may never interrupt a paragraph.
func detectHTMLBlockStart(s string, interrupting bool) (endType int, ok bool) {
	if len(s) == 0 || s[0] != '<' {
		return 0, false
	}
	lower := strings.ToLower(s)

	for _, tag := range htmlBlockType1Tags {
		if strings.HasPrefix(lower[1:], tag) {
			after := s[1+len(tag):]
			if after == "" || after[0] == ' ' || after[0] == '\t' || after[0] == '>' || (after[0] == '\n') {
				return 1, true
			}
		}
	}
	if strings.HasPrefix(s, "<!--") {
		return 2, true
	}
	if strings.HasPrefix(s, "<?") {
		return 3, true
	}
	if len(s) >= 3 && s[1] == '!' && isASCIILetter(s[2]) {
		return 4, true
	}
	if strings.HasPrefix(s, "<![CDATA[") {
		return 5, true
	}

	closing := false
	i := 1
	if i < len(s) && s[i] == '/' {
		closing = true
		i++
	}
	start := i
	for i < len(s) && isHTMLTagNameByte(s[i]) {
		i++
	}
	if i > start {
		name := strings.ToLower(s[start:i])
		if htmlBlockType6Tags[name] {
			rest := s[i:]
			if rest == "" || rest[0] == ' ' || rest[0] == '\t' || rest[0] == '\n' ||
				(!closing && strings.HasPrefix(rest, ">")) ||
				(!closing && strings.HasPrefix(rest, "/>")) ||
				(closing && strings.HasPrefix(rest, ">")) {
				return 6, true
			}
		}
	}

	if interrupting {
		return 0, false
	}
	if tag, end, matched := matchOpenOrCloseTag(s); matched {
		_ = tag
		rest := strings.TrimRight(s[end:], " \t")
		if rest == "" {
			return 7, true
		}
	}
	return 0, false
}

func isASCIILetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isHTMLTagNameByte(c byte) bool {
	return isASCIIAlnum(c) || c == '-'
}

// htmlBlockEnds reports whether line satisfies the end condition for an
// HTML block opened under endType. Types 6 and 7 end at the first blank
// line, checked by the caller rather than here.
func htmlBlockEnds(endType int, line string) bool {
	lower := strings.ToLower(line)
	switch endType {
	case 1:
		return strings.Contains(lower, "</script>") || strings.Contains(lower, "</pre>") ||
			strings.Contains(lower, "</style>") || strings.Contains(lower, "</textarea>")
	case 2:
		return strings.Contains(line, "-->")
	case 3:
		return strings.Contains(line, "?>")
	case 4:
		return strings.Contains(line, ">")
	case 5:
		return strings.Contains(line, "]]>")
	}
	return false
}
