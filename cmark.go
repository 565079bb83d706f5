package cmark

// ToHTML converts src to HTML following CommonMark 0.31.2. Conversion
// runs in three passes over the normalized source: parseBlocks builds
// the block-structure tree, collectReferences walks that tree once to
// resolve every link reference definition (wherever in the document it
// appears) into a label map, and resolveInlines then parses the inline
// content of every paragraph and heading against that map. Running
// reference collection to completion before any inline parsing begins is
// what lets a reference be used before it is defined.
func ToHTML(src string) string {
	doc := parseBlocks(normalizeInput(src))
	refs := collectReferences(doc)
	resolveInlines(doc, refs)
	return render(doc)
}

// resolveInlines runs the inline scanner over every paragraph and
// heading's accumulated raw text, now that refs is complete.
func resolveInlines(n *Node, refs refMap) {
	switch n.Kind {
	case nodeParagraph, nodeHeading:
		n.Children = parseInline(n.rawText(), refs)
		n.raw = nil
		return
	case nodeCodeBlock, nodeHTMLBlock:
		return
	}
	for _, c := range n.Children {
		resolveInlines(c, refs)
	}
}
