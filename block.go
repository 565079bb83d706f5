package cmark

import "strings"

type containerKind int

const (
	containerDocument containerKind = iota
	containerBlockQuote
	containerListItem
)

// container is one frame of the open-block stack maintained while walking
// the input line by line. The document sits at index 0 and always
// matches; every other frame must re-match its prefix on each line or be
// closed.
type container struct {
	kind       containerKind
	node       *Node
	contentCol int   // containerListItem: column where item content begins
	list       *Node // containerListItem: the owning List, for loose tracking
}

// blockParser walks normalized input one line at a time, maintaining the
// stack of open containers and at most one open leaf block (a paragraph
// accumulating text, or a fenced/indented code block or HTML block
// accumulating raw lines verbatim) per CommonMark's block structure
// algorithm (https://spec.commonmark.org/0.31.2/#phase-1-block-structure).
type blockParser struct {
	stack []*container

	openParagraph *Node

	openCode    *Node
	fenceChar   byte // 0 when openCode is an indented code block
	fenceLen    int
	fenceIndent int

	openHTML    *Node
	htmlEndType int

	blanksPending []string // trailing blank lines inside an indented code block, not yet committed
	pendingBlank  bool     // a blank line was just seen; consumed by the next block opened
}

// parseBlocks builds the block-structure tree for normalized source text.
// Inline content and link reference definitions are resolved afterward by
// collectReferences and resolveInlines, which must see the complete tree before
// any inline parsing begins so that references may be defined anywhere
// in the document, including after their first use.
func parseBlocks(src string) *Node {
	doc := newNode(nodeDocument)
	p := &blockParser{stack: []*container{{kind: containerDocument, node: doc}}}
	for _, line := range splitLines(src) {
		p.addLine(line)
	}
	p.closeParagraph()
	p.finalizeOpenCodeOrHTML()
	return doc
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func (p *blockParser) container() *Node {
	return p.stack[len(p.stack)-1].node
}

func (p *blockParser) addLine(line string) {
	rest := line
	matched := 1
	var failedItem *container
	for matched < len(p.stack) {
		c := p.stack[matched]
		var newRest string
		ok := false
		switch c.kind {
		case containerBlockQuote:
			if indent := indentWidth(rest); indent <= 3 {
				trimmed, _ := cutIndent(rest, indent)
				if r, bqok := detectBlockQuote(trimmed); bqok {
					newRest, ok = r, true
				}
			}
		case containerListItem:
			if isBlankLine(rest) {
				newRest, ok = "", true
			} else if nr, removed := cutIndent(rest, c.contentCol); removed == c.contentCol {
				newRest, ok = nr, true
			}
		}
		if !ok {
			if c.kind == containerListItem {
				failedItem = c
			}
			break
		}
		rest = newRest
		matched++
	}

	if matched == len(p.stack) {
		switch {
		case p.openCode != nil && p.fenceChar != 0:
			p.continueFence(rest)
			return
		case p.openHTML != nil:
			p.continueHTML(rest)
			return
		case p.openCode != nil:
			if p.continueIndentedCode(rest) {
				return
			}
		}
		p.dispatch(rest)
		return
	}

	// A marker that resumes the list whose item just failed to match its
	// own indentation isn't interrupting a paragraph at all, even though
	// that item's paragraph is still open: it is the next item of a list
	// already in progress, so the ordered-start-must-be-1 and
	// empty-first-line restrictions (which guard a genuinely new list
	// from swallowing a plain paragraph) don't apply to it.
	if failedItem != nil && !isBlankLine(rest) {
		if indent := indentWidth(rest); indent <= 3 {
			trimmed, _ := cutIndent(rest, indent)
			if m, _, ok := parseListMarker(trimmed); ok && sameMarkerType(failedItem.list, m) {
				p.closeContainers(matched)
				p.dispatch(rest)
				return
			}
		}
	}

	if p.openParagraph != nil && !isBlankLine(rest) && !looksLikeNewBlockStart(rest) {
		p.openParagraph.addRawLine(strings.TrimLeft(rest, " \t"))
		return
	}
	p.closeContainers(matched)
	p.dispatch(rest)
}

// dispatch opens as many new containers as the line's remaining prefix
// supports, then applies CommonMark's new-block precedence to whatever is
// left: ATX heading, setext underline (only directly under an open
// paragraph), thematic break, fenced code, HTML block, indented code
// (only when not interrupting a paragraph), and finally paragraph text.
func (p *blockParser) dispatch(rest string) {
	for len(p.stack) < 1000 {
		indent := indentWidth(rest)
		if indent > 3 {
			break
		}
		trimmed, _ := cutIndent(rest, indent)
		if r, ok := detectBlockQuote(trimmed); ok {
			p.closeParagraph()
			p.pushBlockQuote()
			rest = r
			continue
		}
		if detectThematicBreak(trimmed) {
			break
		}
		if m, w, ok := parseListMarker(trimmed); ok {
			interrupting := p.openParagraph != nil
			if interrupting && m.ordered && m.start != 1 {
				break
			}
			contentCol, blank, mok := listMarkerContentCol(trimmed, w)
			if !mok || (interrupting && blank) {
				break
			}
			p.closeParagraph()
			p.pushListItem(m, indent+contentCol)
			rest, _ = cutIndent(trimmed[w:], contentCol-w)
			continue
		}
		break
	}

	if isBlankLine(rest) {
		p.closeParagraph()
		p.finalizeOpenCodeOrHTML()
		p.pendingBlank = true
		return
	}

	interrupting := p.openParagraph != nil
	indent := indentWidth(rest)
	if indent <= 3 {
		trimmed, _ := cutIndent(rest, indent)

		if level, content, ok := detectATXHeading(trimmed); ok {
			p.closeParagraph()
			h := newNode(nodeHeading)
			h.Level = level
			h.addRawLine(content)
			p.appendLeaf(h)
			return
		}
		if interrupting {
			if level, ok := detectSetextUnderline(trimmed); ok {
				p.promoteParagraphToSetext(level)
				return
			}
		}
		if detectThematicBreak(trimmed) {
			p.closeParagraph()
			p.appendLeaf(newNode(nodeThematicBreak))
			return
		}
		if ch, flen, info, ok := parseFence(trimmed); ok {
			p.closeParagraph()
			cb := newNode(nodeCodeBlock)
			cb.Info = info
			p.appendLeaf(cb)
			p.openCode, p.fenceChar, p.fenceLen, p.fenceIndent = cb, ch, flen, indent
			return
		}
		if endType, ok := detectHTMLBlockStart(trimmed, interrupting); ok {
			p.closeParagraph()
			hb := newNode(nodeHTMLBlock)
			p.appendLeaf(hb)
			p.openHTML, p.htmlEndType = hb, endType
			hb.addRawLine(trimmed)
			if endType <= 5 && htmlBlockEnds(endType, trimmed) {
				p.finalizeOpenCodeOrHTML()
			}
			return
		}
	} else if !interrupting {
		cb := newNode(nodeCodeBlock)
		p.appendLeaf(cb)
		p.openCode, p.fenceChar = cb, 0
		content, _ := cutIndent(rest, 4)
		cb.addRawLine(content)
		return
	}

	p.appendToParagraph(rest)
}

// looksLikeNewBlockStart reports whether rest would open a block capable
// of interrupting an open paragraph, used by the lazy-continuation check
// in addLine.
func looksLikeNewBlockStart(rest string) bool {
	if isBlankLine(rest) {
		return true
	}
	indent := indentWidth(rest)
	if indent > 3 {
		return false
	}
	trimmed, _ := cutIndent(rest, indent)
	if _, _, ok := detectATXHeading(trimmed); ok {
		return true
	}
	if detectThematicBreak(trimmed) {
		return true
	}
	if _, ok := detectBlockQuote(trimmed); ok {
		return true
	}
	if _, _, _, ok := parseFence(trimmed); ok {
		return true
	}
	if _, ok := detectHTMLBlockStart(trimmed, true); ok {
		return true
	}
	if m, w, ok := parseListMarker(trimmed); ok {
		if m.ordered && m.start != 1 {
			return false
		}
		_, blank, mok := listMarkerContentCol(trimmed, w)
		return mok && !blank
	}
	return false
}

func (p *blockParser) closeParagraph() {
	p.openParagraph = nil
}

func (p *blockParser) closeContainers(matched int) {
	// A pending blank line must mark any open list loose before the
	// frames that observed it are dropped from the stack: once truncated,
	// markLooseIfPending has nothing left to walk.
	p.markLooseIfPending()
	p.closeParagraph()
	p.finalizeOpenCodeOrHTML()
	p.stack = p.stack[:matched]
}

func (p *blockParser) markLooseIfPending() {
	if !p.pendingBlank {
		return
	}
	p.pendingBlank = false
	for _, c := range p.stack {
		if c.kind == containerListItem {
			c.list.Tight = false
		}
	}
}

func (p *blockParser) appendLeaf(n *Node) {
	p.markLooseIfPending()
	p.container().appendChild(n)
}

func (p *blockParser) appendToParagraph(rest string) {
	text := strings.TrimLeft(rest, " \t")
	if p.openParagraph == nil {
		p.markLooseIfPending()
		para := newNode(nodeParagraph)
		p.container().appendChild(para)
		p.openParagraph = para
	}
	p.openParagraph.addRawLine(text)
}

func (p *blockParser) promoteParagraphToSetext(level int) {
	para := p.openParagraph
	para.Kind = nodeHeading
	para.Level = level
	p.openParagraph = nil
}

func (p *blockParser) pushBlockQuote() {
	p.markLooseIfPending()
	bq := newNode(nodeBlockQuote)
	p.container().appendChild(bq)
	p.stack = append(p.stack, &container{kind: containerBlockQuote, node: bq})
}

func (p *blockParser) pushListItem(m listMarker, contentCol int) {
	p.markLooseIfPending()
	var list *Node
	if last := p.container().lastChild(); last != nil && last.Kind == nodeList && sameMarkerType(last, m) {
		list = last
	} else {
		list = newNode(nodeList)
		list.Ordered = m.ordered
		list.Delimiter = m.delim
		list.Start = m.start
		list.Tight = true
		p.container().appendChild(list)
	}
	item := newNode(nodeListItem)
	list.appendChild(item)
	p.stack = append(p.stack, &container{kind: containerListItem, node: item, contentCol: contentCol, list: list})
}

func sameMarkerType(list *Node, m listMarker) bool {
	if list.Ordered != m.ordered {
		return false
	}
	return list.Delimiter == m.delim
}

func (p *blockParser) continueFence(rest string) {
	if closesFence(rest, p.fenceChar, p.fenceLen) {
		p.finalizeOpenCodeOrHTML()
		return
	}
	content, _ := cutIndent(rest, p.fenceIndent)
	p.openCode.addRawLine(content)
}

func (p *blockParser) continueHTML(rest string) {
	if p.htmlEndType >= 6 {
		if isBlankLine(rest) {
			p.finalizeOpenCodeOrHTML()
			p.dispatch(rest)
			return
		}
		p.openHTML.addRawLine(rest)
		return
	}
	p.openHTML.addRawLine(rest)
	if htmlBlockEnds(p.htmlEndType, rest) {
		p.finalizeOpenCodeOrHTML()
	}
}

// continueIndentedCode returns true if rest was consumed as part of the
// open indented code block. Blank lines are buffered rather than
// committed immediately, since trailing blank lines at the end of the
// block belong to whatever follows it, not to the code literal.
func (p *blockParser) continueIndentedCode(rest string) bool {
	if isBlankLine(rest) {
		p.blanksPending = append(p.blanksPending, "")
		return true
	}
	if indentWidth(rest) >= 4 {
		p.openCode.raw = append(p.openCode.raw, p.blanksPending...)
		p.blanksPending = nil
		content, _ := cutIndent(rest, 4)
		p.openCode.addRawLine(content)
		return true
	}
	p.blanksPending = nil
	p.finalizeOpenCodeOrHTML()
	return false
}

func (p *blockParser) finalizeOpenCodeOrHTML() {
	if p.openCode != nil {
		p.openCode.Literal = joinRawLiteral(p.openCode.raw)
		p.openCode.raw = nil
		p.openCode, p.fenceChar, p.fenceLen, p.fenceIndent = nil, 0, 0, 0
		p.blanksPending = nil
	}
	if p.openHTML != nil {
		p.openHTML.Literal = joinRawLiteral(p.openHTML.raw)
		p.openHTML.raw = nil
		p.openHTML, p.htmlEndType = nil, 0
	}
}

func joinRawLiteral(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
