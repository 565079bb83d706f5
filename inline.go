package cmark

import (
	"strings"
	"unicode/utf8"
)

// bracketRec tracks one open '[' or '![' seen during inline scanning,
// used to resolve link and image syntax once a matching ']' is found.
type bracketRec struct {
	node          *Node // the marker Text node, Literal "[" or "!["
	isImage       bool
	active        bool
	delimStackLen int // length of the delimiter stack when this bracket opened
	srcStart      int // byte offset into the scanned text just after the marker
}

// parseInline runs CommonMark's single left-to-right inline scan over
// text (https://spec.commonmark.org/0.31.2/#phase-2-inline-structure),
// producing the children of whatever block or emphasis/link node text
// belongs to. refs is consulted for reference-style links and images;
// it must already be fully populated, since a reference may be defined
// anywhere in the document.
func parseInline(text string, refs refMap) []*Node {
	var children []*Node
	var delims []*delimRun
	var brackets []*bracketRec
	var buf strings.Builder

	i := 0
	for i < len(text) {
		c := text[i]
		switch {
		case c == '\\':
			if i+1 < len(text) && text[i+1] == '\n' {
				flushText(&buf, &children)
				children = append(children, newNode(nodeHardBreak))
				i += 2
				continue
			}
			if i+1 < len(text) && isMarkdownEscapable(text[i+1]) {
				buf.WriteByte(text[i+1])
				i += 2
				continue
			}
			buf.WriteByte('\\')
			i++

		case c == '\n':
			s := buf.String()
			trimmed := strings.TrimRight(s, " ")
			hard := len(s)-len(trimmed) >= 2
			buf.Reset()
			buf.WriteString(trimmed)
			flushText(&buf, &children)
			if hard {
				children = append(children, newNode(nodeHardBreak))
			} else {
				children = append(children, newNode(nodeSoftBreak))
			}
			i++

		case c == '&':
			if txt, end, ok := decodeEntity(text, i); ok {
				buf.WriteString(txt)
				i = end
				continue
			}
			buf.WriteByte('&')
			i++

		case c == '`':
			if content, end, ok := matchCodeSpan(text, i); ok {
				flushText(&buf, &children)
				children = append(children, &Node{Kind: nodeCode, Literal: content})
				i = end
				continue
			}
			buf.WriteByte('`')
			i++

		case c == '<':
			if uri, end, ok := matchAutolinkURI(text, i); ok {
				flushText(&buf, &children)
				children = append(children, autolinkNode(uri, uri))
				i = end
				continue
			}
			if email, end, ok := matchAutolinkEmail(text, i); ok {
				flushText(&buf, &children)
				children = append(children, autolinkNode(email, "mailto:"+email))
				i = end
				continue
			}
			if relEnd, ok := matchHTMLComment(text[i:]); ok {
				flushText(&buf, &children)
				children = append(children, rawHTML(text[i:i+relEnd]))
				i += relEnd
				continue
			}
			if relEnd, ok := matchProcessingInstruction(text[i:]); ok {
				flushText(&buf, &children)
				children = append(children, rawHTML(text[i:i+relEnd]))
				i += relEnd
				continue
			}
			if relEnd, ok := matchCDATA(text[i:]); ok {
				flushText(&buf, &children)
				children = append(children, rawHTML(text[i:i+relEnd]))
				i += relEnd
				continue
			}
			if relEnd, ok := matchDeclaration(text[i:]); ok {
				flushText(&buf, &children)
				children = append(children, rawHTML(text[i:i+relEnd]))
				i += relEnd
				continue
			}
			if _, relEnd, ok := matchOpenOrCloseTag(text[i:]); ok {
				flushText(&buf, &children)
				children = append(children, rawHTML(text[i:i+relEnd]))
				i += relEnd
				continue
			}
			buf.WriteByte('<')
			i++

		case c == '[' || (c == '!' && i+1 < len(text) && text[i+1] == '['):
			isImage := c == '!'
			flushText(&buf, &children)
			marker := &Node{Kind: nodeText, Literal: "["}
			width := 1
			if isImage {
				marker.Literal = "!["
				width = 2
			}
			children = append(children, marker)
			brackets = append(brackets, &bracketRec{
				node: marker, isImage: isImage, active: true,
				delimStackLen: len(delims), srcStart: i + width,
			})
			i += width

		case c == ']':
			i = closeBracket(text, i, &buf, &children, &delims, &brackets, refs)

		case c == '*' || c == '_':
			before := lastRune(&buf, children)
			j := i
			for j < len(text) && text[j] == c {
				j++
			}
			run := text[i:j]
			after := runeAt(text, j)
			canOpen, canClose := computeFlanking(before, after, c)
			flushText(&buf, &children)
			node := &Node{Kind: nodeText, Literal: run}
			children = append(children, node)
			if canOpen || canClose {
				delims = append(delims, &delimRun{node: node, char: c, count: len(run), canOpen: canOpen, canClose: canClose})
			}
			i = j

		default:
			buf.WriteByte(c)
			i++
		}
	}
	flushText(&buf, &children)
	processEmphasis(&children, &delims, 0)
	return children
}

func flushText(buf *strings.Builder, children *[]*Node) {
	if buf.Len() == 0 {
		return
	}
	*children = append(*children, &Node{Kind: nodeText, Literal: buf.String()})
	buf.Reset()
}

func lastRune(buf *strings.Builder, children []*Node) rune {
	if buf.Len() > 0 {
		r, _ := utf8.DecodeLastRuneInString(buf.String())
		return r
	}
	if len(children) > 0 {
		last := children[len(children)-1]
		if last.Kind == nodeText && last.Literal != "" {
			r, _ := utf8.DecodeLastRuneInString(last.Literal)
			return r
		}
	}
	return ' '
}

func runeAt(s string, i int) rune {
	if i >= len(s) {
		return ' '
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return r
}

func autolinkNode(label, dest string) *Node {
	link := newNode(nodeLink)
	link.Destination = dest
	link.appendChild(&Node{Kind: nodeText, Literal: label})
	return link
}

func rawHTML(s string) *Node {
	return &Node{Kind: nodeHTMLInline, Literal: s}
}

// closeBracket resolves a ']' at text[i] against the innermost open
// bracket, trying in turn: an inline "(...)" destination/title, a full or
// collapsed reference "[...]"/"[]" , and finally a shortcut reference
// using the bracketed text itself as the label. It returns the index to
// resume scanning from.
func closeBracket(text string, i int, buf *strings.Builder, children *[]*Node, delims *[]*delimRun, brackets *[]*bracketRec, refs refMap) int {
	flushText(buf, children)
	bs := *brackets
	if len(bs) == 0 {
		*children = append(*children, &Node{Kind: nodeText, Literal: "]"})
		return i + 1
	}
	b := bs[len(bs)-1]
	if !b.active {
		*brackets = bs[:len(bs)-1]
		*children = append(*children, &Node{Kind: nodeText, Literal: "]"})
		return i + 1
	}

	rest := text[i+1:]
	dest, title, consumed, matched := parseInlineLinkTail(rest)
	if !matched {
		shortcut := normalizeLabel(text[b.srcStart:i])
		norm := shortcut
		hasBracket := false
		if strings.HasPrefix(rest, "[]") {
			hasBracket = true
			consumed = 2
		} else if lbl, lend, lok := parseLinkLabel(rest, 0); lok {
			norm = normalizeLabel(lbl)
			hasBracket = true
			consumed = lend
		}
		if ref, ok := refs[norm]; ok {
			dest, title, matched = ref.destination, ref.title, true
			if !hasBracket {
				consumed = 0
			}
		}
	}
	if !matched {
		*brackets = bs[:len(bs)-1]
		*children = append(*children, &Node{Kind: nodeText, Literal: "]"})
		return i + 1
	}

	kind := nodeLink
	if b.isImage {
		kind = nodeImage
	}
	wrap := newNode(kind)
	wrap.Destination = dest
	wrap.Title = title

	cs := *children
	iOpener := indexOfNode(cs, b.node)
	wrap.Children = append([]*Node{}, cs[iOpener+1:]...)
	*children = append(cs[:iOpener], wrap)

	processEmphasis(&wrap.Children, delims, b.delimStackLen)
	*delims = (*delims)[:b.delimStackLen]

	*brackets = bs[:len(bs)-1]
	if !b.isImage {
		for _, ob := range *brackets {
			if !ob.isImage {
				ob.active = false
			}
		}
	}
	return i + 1 + consumed
}

// parseInlineLinkTail parses the "(" destination title ")" tail of an
// inline link or image immediately following its closing ']'.
func parseInlineLinkTail(rest string) (dest, title string, consumed int, ok bool) {
	if rest == "" || rest[0] != '(' {
		return "", "", 0, false
	}
	j := skipLinkSpace(rest, 1)
	if j < len(rest) && rest[j] != ')' {
		d, k, dok := parseLinkDestination(rest, j)
		if !dok {
			return "", "", 0, false
		}
		dest = d
		j = k
		save := j
		if sp := skipLinkSpace(rest, j); sp > j {
			if t, k2, tok := parseLinkTitle(rest, sp); tok {
				title = t
				j = skipLinkSpace(rest, k2)
			} else {
				j = save
			}
		}
	}
	j = skipLinkSpace(rest, j)
	if j >= len(rest) || rest[j] != ')' {
		return "", "", 0, false
	}
	return dest, title, j + 1, true
}
