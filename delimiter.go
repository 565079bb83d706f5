package cmark

import "unicode"

// delimRun is one run of consecutive '*' or '_' characters recognized
// during inline scanning, tracked on the delimiter stack until it is
// consumed by emphasis resolution or left as literal text.
type delimRun struct {
	node     *Node // the Text node holding the run; trimmed in place as it is consumed
	char     byte
	count    int
	canOpen  bool
	canClose bool
}

func isUnicodeWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

func isUnicodePunct(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// computeFlanking determines whether a delimiter run bounded by before and
// after (the runes immediately outside the run, or a space standing in
// for start/end of input) can open and/or close emphasis, per CommonMark
// §6.2. '_' additionally requires the asymmetric rule that keeps
// "foo_bar_baz" from producing emphasis around "bar".
func computeFlanking(before, after rune, char byte) (canOpen, canClose bool) {
	beforeWS, afterWS := isUnicodeWhitespace(before), isUnicodeWhitespace(after)
	beforePunct, afterPunct := isUnicodePunct(before), isUnicodePunct(after)

	leftFlank := !afterWS && (!afterPunct || beforeWS || beforePunct)
	rightFlank := !beforeWS && (!beforePunct || afterWS || afterPunct)

	if char == '*' {
		return leftFlank, rightFlank
	}
	canOpen = leftFlank && (!rightFlank || beforePunct)
	canClose = rightFlank && (!leftFlank || afterPunct)
	return
}

// emphasisRuleBlocks implements the CommonMark "rule of three": if either
// delimiter in a candidate pair can both open and close, the pairing is
// rejected when the sum of the two runs' remaining lengths is a multiple
// of three, unless both lengths individually are.
func emphasisRuleBlocks(opener, closer *delimRun) bool {
	bothFlank := (opener.canOpen && opener.canClose) || (closer.canOpen && closer.canClose)
	if !bothFlank {
		return false
	}
	sum := opener.count + closer.count
	return sum%3 == 0 && !(opener.count%3 == 0 && closer.count%3 == 0)
}

// processEmphasis resolves the delimiter stack entries at index
// stackBottom and above into Emphasis/Strong nodes, splicing the result
// into children in place. It implements CommonMark's emphasis/strong
// algorithm (https://spec.commonmark.org/0.31.2/#emphasis-and-strong-emphasis).
func processEmphasis(children *[]*Node, stack *[]*delimRun, stackBottom int) {
	items := *stack
	i := stackBottom
	for i < len(items) {
		closer := items[i]
		if !closer.canClose || closer.count == 0 {
			i++
			continue
		}
		openerIdx := -1
		for j := i - 1; j >= stackBottom; j-- {
			cand := items[j]
			if cand.char == closer.char && cand.canOpen && cand.count > 0 && !emphasisRuleBlocks(cand, closer) {
				openerIdx = j
				break
			}
		}
		if openerIdx < 0 {
			i++
			continue
		}
		opener := items[openerIdx]

		use := 1
		if opener.count >= 2 && closer.count >= 2 {
			use = 2
		}
		wrapKind := nodeEmphasis
		if use == 2 {
			wrapKind = nodeStrong
		}
		opener.node.Literal = opener.node.Literal[:len(opener.node.Literal)-use]
		closer.node.Literal = closer.node.Literal[use:]
		spliceEmphasis(children, opener.node, closer.node, wrapKind)

		opener.count -= use
		closer.count -= use

		items = append(items[:openerIdx+1], items[i:]...)
		i = openerIdx + 1
		if opener.count == 0 {
			items = append(items[:openerIdx], items[openerIdx+1:]...)
			i--
		}
		if closer.count == 0 && i < len(items) {
			items = append(items[:i], items[i+1:]...)
		}
	}
	*stack = items[:stackBottom]
}

// spliceEmphasis wraps every child strictly between openerNode and
// closerNode (both identified by pointer) into a new node of kind,
// replacing that span in children. openerNode and closerNode themselves
// are kept only if their Literal is still non-empty after trimming.
func spliceEmphasis(children *[]*Node, openerNode, closerNode *Node, kind NodeKind) {
	cs := *children
	iOpener, iCloser := indexOfNode(cs, openerNode), indexOfNode(cs, closerNode)
	if iOpener < 0 || iCloser < 0 || iCloser <= iOpener {
		return
	}
	wrap := newNode(kind)
	wrap.Children = append([]*Node{}, cs[iOpener+1:iCloser]...)

	result := make([]*Node, 0, len(cs))
	result = append(result, cs[:iOpener]...)
	if openerNode.Literal != "" {
		result = append(result, openerNode)
	}
	result = append(result, wrap)
	if closerNode.Literal != "" {
		result = append(result, closerNode)
	}
	result = append(result, cs[iCloser+1:]...)
	*children = result
}

func indexOfNode(s []*Node, n *Node) int {
	for i, c := range s {
		if c == n {
			return i
		}
	}
	return -1
}
