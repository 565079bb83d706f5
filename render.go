package cmark

import (
	"strconv"
	"strings"
)

// render walks the finished, fully inline-resolved tree and produces the
// exact HTML CommonMark's reference renderer would produce: every block
// element terminates its own trailing newline, raw HTML passes through
// untouched, text and code content are escaped only for the four
// characters escapeHTML handles, and tight list items carry their
// paragraphs' inline content bare, with neither the <p> wrapper their loose
// counterparts carry nor a newline before </li>.
func render(doc *Node) string {
	var b strings.Builder
	renderBlocks(&b, doc.Children, false)
	return b.String()
}

func renderBlocks(b *strings.Builder, nodes []*Node, tight bool) {
	for _, n := range nodes {
		renderBlock(b, n, tight)
	}
}

func renderBlock(b *strings.Builder, n *Node, tight bool) {
	switch n.Kind {
	case nodeParagraph:
		if tight {
			renderInlines(b, n.Children)
			return
		}
		b.WriteString("<p>")
		renderInlines(b, n.Children)
		b.WriteString("</p>\n")

	case nodeHeading:
		tag := "h" + strconv.Itoa(n.Level)
		b.WriteByte('<')
		b.WriteString(tag)
		b.WriteByte('>')
		renderInlines(b, n.Children)
		b.WriteString("</")
		b.WriteString(tag)
		b.WriteString(">\n")

	case nodeBlockQuote:
		b.WriteString("<blockquote>\n")
		renderBlocks(b, n.Children, false)
		b.WriteString("</blockquote>\n")

	case nodeList:
		renderList(b, n)

	case nodeThematicBreak:
		b.WriteString("<hr />\n")

	case nodeCodeBlock:
		b.WriteString("<pre><code")
		if lang := fenceInfoLanguage(n.Info); lang != "" {
			b.WriteString(" class=\"language-")
			b.WriteString(escapeHTML(lang))
			b.WriteByte('"')
		}
		b.WriteByte('>')
		b.WriteString(escapeHTML(n.Literal))
		b.WriteString("</code></pre>\n")

	case nodeHTMLBlock:
		b.WriteString(n.Literal)
	}
}

func renderList(b *strings.Builder, n *Node) {
	if n.Ordered {
		b.WriteString("<ol")
		if n.Start != 1 {
			b.WriteString(" start=\"")
			b.WriteString(strconv.Itoa(n.Start))
			b.WriteByte('"')
		}
		b.WriteString(">\n")
	} else {
		b.WriteString("<ul>\n")
	}
	for _, item := range n.Children {
		renderListItem(b, item, n.Tight)
	}
	if n.Ordered {
		b.WriteString("</ol>\n")
	} else {
		b.WriteString("</ul>\n")
	}
}

func renderListItem(b *strings.Builder, item *Node, tight bool) {
	b.WriteString("<li>")
	if tight {
		// A bare paragraph stays on the <li> line; any other block starts
		// on a line of its own.
		nl := true
		for _, c := range item.Children {
			if c.Kind != nodeParagraph && nl {
				b.WriteByte('\n')
			}
			renderBlock(b, c, true)
			nl = c.Kind == nodeParagraph
		}
		b.WriteString("</li>\n")
		return
	}
	if len(item.Children) == 0 {
		b.WriteString("</li>\n")
		return
	}
	b.WriteByte('\n')
	renderBlocks(b, item.Children, false)
	b.WriteString("</li>\n")
}

func renderInlines(b *strings.Builder, nodes []*Node) {
	for _, n := range nodes {
		renderInline(b, n)
	}
}

func renderInline(b *strings.Builder, n *Node) {
	switch n.Kind {
	case nodeText:
		b.WriteString(escapeHTML(n.Literal))
	case nodeCode:
		b.WriteString("<code>")
		b.WriteString(escapeHTML(n.Literal))
		b.WriteString("</code>")
	case nodeEmphasis:
		b.WriteString("<em>")
		renderInlines(b, n.Children)
		b.WriteString("</em>")
	case nodeStrong:
		b.WriteString("<strong>")
		renderInlines(b, n.Children)
		b.WriteString("</strong>")
	case nodeLink:
		b.WriteString(`<a href="`)
		b.WriteString(escapeHTML(escapeURI(n.Destination)))
		b.WriteByte('"')
		if n.Title != "" {
			b.WriteString(` title="`)
			b.WriteString(escapeHTML(n.Title))
			b.WriteByte('"')
		}
		b.WriteByte('>')
		renderInlines(b, n.Children)
		b.WriteString("</a>")
	case nodeImage:
		b.WriteString(`<img src="`)
		b.WriteString(escapeHTML(escapeURI(n.Destination)))
		b.WriteString(`" alt="`)
		b.WriteString(escapeHTML(altText(n)))
		b.WriteByte('"')
		if n.Title != "" {
			b.WriteString(` title="`)
			b.WriteString(escapeHTML(n.Title))
			b.WriteByte('"')
		}
		b.WriteString(" />")
	case nodeSoftBreak:
		b.WriteByte('\n')
	case nodeHardBreak:
		b.WriteString("<br />\n")
	case nodeHTMLInline:
		b.WriteString(n.Literal)
	}
}

// altText collects the flattened plain-text content of an image's
// children for its alt attribute: nested emphasis, links, and the like
// contribute only their text, per CommonMark §6.4.
func altText(n *Node) string {
	var b strings.Builder
	var walk func(*Node)
	walk = func(x *Node) {
		switch x.Kind {
		case nodeText, nodeCode, nodeHTMLInline:
			b.WriteString(x.Literal)
		case nodeSoftBreak, nodeHardBreak:
			b.WriteByte('\n')
		default:
			for _, c := range x.Children {
				walk(c)
			}
		}
	}
	for _, c := range n.Children {
		walk(c)
	}
	return b.String()
}
