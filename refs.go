package cmark

import "strings"

// reference is a resolved link reference definition's destination and
// title, keyed in refMap by its normalized label.
type reference struct {
	destination string
	title       string
}

type refMap map[string]reference

// collectReferences walks the finished block tree and strips leading link
// reference definitions from every paragraph's raw text, the way
// CommonMark actually recognizes them: not as a block type in their own
// right, but as an optional prefix consumed off the front of what would
// otherwise become a paragraph (mirrors the paragraph builder pattern
// grounded on rsc-markdown's parseLinkRefDef/paraBuilder.Build). Because
// this runs once over the complete tree before any inline parsing
// happens, a reference is resolved correctly no matter where in the
// document it is defined relative to its first use.
//
// A paragraph's raw text is left untouched once it stops being a string
// of consecutive reference definitions; if nothing of the paragraph
// remains, the paragraph node itself is marked empty and dropped by its
// parent.
func collectReferences(doc *Node) refMap {
	refs := refMap{}
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Kind == nodeParagraph {
			stripReferenceDefinitions(n, refs)
		}
		if len(n.Children) == 0 {
			return
		}
		kept := n.Children[:0]
		for _, c := range n.Children {
			walk(c)
			if c.Kind == nodeParagraph && len(c.raw) == 0 {
				continue // fully consumed by reference definitions
			}
			kept = append(kept, c)
		}
		n.Children = kept
	}
	walk(doc)
	return refs
}

func stripReferenceDefinitions(para *Node, refs refMap) {
	s := para.rawText()
	for s != "" {
		rest, label, dest, title, ok := parseLinkRefDef(s)
		if !ok {
			break
		}
		norm := normalizeLabel(label)
		if _, exists := refs[norm]; !exists {
			refs[norm] = reference{destination: dest, title: title}
		}
		s = rest
	}
	if s == "" {
		para.raw = nil
		return
	}
	para.raw = strings.Split(s, "\n")
}

// parseLinkRefDef parses one "[label]: destination "title"" definition
// from the start of s, which may span up to three lines. It returns the
// remainder of s after the definition (with its own leading blank lines,
// if any, preserved for the next attempt) and false if s does not begin
// with a well-formed definition.
func parseLinkRefDef(s string) (rest, label, dest, title string, ok bool) {
	i := indentWidth(s)
	if i > 3 {
		return "", "", "", "", false
	}
	body, _ := cutIndent(s, i)
	if body == "" || body[0] != '[' {
		return "", "", "", "", false
	}
	lbl, j, lok := parseLinkLabel(body, 0)
	if !lok || j >= len(body) || body[j] != ':' {
		return "", "", "", "", false
	}
	j++
	j = skipLinkSpace(body, j)
	destination, j, dok := parseLinkDestination(body, j)
	if !dok {
		return "", "", "", "", false
	}

	titleEnd := j
	titleVal := ""
	save := j
	afterSpace := skipLinkSpace(body, j)
	if afterSpace > j {
		if t, k, tok := parseLinkTitle(body, afterSpace); tok {
			lineEnd := k
			for lineEnd < len(body) && (body[lineEnd] == ' ' || body[lineEnd] == '\t') {
				lineEnd++
			}
			if lineEnd >= len(body) || body[lineEnd] == '\n' {
				titleVal = t
				titleEnd = lineEnd
			}
		}
	}
	if titleEnd == save {
		k := save
		for k < len(body) && (body[k] == ' ' || body[k] == '\t') {
			k++
		}
		if k < len(body) && body[k] != '\n' {
			return "", "", "", "", false
		}
		titleEnd = k
	}
	if titleEnd < len(body) && body[titleEnd] == '\n' {
		titleEnd++
	}
	return body[titleEnd:], lbl, destination, titleVal, true
}
