package cmark

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/k0kubun/pp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlocksParagraphAndHeading(t *testing.T) {
	doc := parseBlocks(normalizeInput("# Title\n\nSome text.\n"))
	require.Len(t, doc.Children, 2)
	assert.Equal(t, nodeHeading, doc.Children[0].Kind)
	assert.Equal(t, 1, doc.Children[0].Level)
	assert.Equal(t, nodeParagraph, doc.Children[1].Kind)
}

func TestParseBlocksNestedListShape(t *testing.T) {
	doc := parseBlocks(normalizeInput("- a\n  - b\n"))
	want := &Node{Kind: nodeDocument, Children: []*Node{
		{Kind: nodeList, Tight: true, Delimiter: '-', Children: []*Node{
			{Kind: nodeListItem, Children: []*Node{
				{Kind: nodeParagraph},
				{Kind: nodeList, Tight: true, Delimiter: '-', Children: []*Node{
					{Kind: nodeListItem, Children: []*Node{
						{Kind: nodeParagraph},
					}},
				}},
			}},
		}},
	}}
	if diff := cmp.Diff(want, doc, cmpopts.IgnoreUnexported(Node{})); diff != "" {
		t.Errorf("unexpected block tree shape (-want +got):\n%s", diff)
	}
}

func TestParseBlocksSetextPromotion(t *testing.T) {
	doc := parseBlocks(normalizeInput("Title\n=====\n\nSubtitle\n--------\n"))
	require.Len(t, doc.Children, 2)
	if doc.Children[0].Kind != nodeHeading || doc.Children[0].Level != 1 {
		pp.Println(doc)
		t.Fatalf("expected level-1 heading from '=' underline, got %+v", doc.Children[0])
	}
	if doc.Children[1].Kind != nodeHeading || doc.Children[1].Level != 2 {
		pp.Println(doc)
		t.Fatalf("expected level-2 heading from '-' underline, got %+v", doc.Children[1])
	}
}

func TestParseBlocksThematicBreakBeatsSetext(t *testing.T) {
	// A line of "---" right after a paragraph is a setext underline, but
	// "***" never is (it's not a valid setext marker), so it must close the
	// paragraph and stand alone as a thematic break.
	doc := parseBlocks(normalizeInput("para\n***\n"))
	require.Len(t, doc.Children, 2)
	assert.Equal(t, nodeParagraph, doc.Children[0].Kind)
	assert.Equal(t, nodeThematicBreak, doc.Children[1].Kind)
}

func TestParseBlocksBlockQuoteNesting(t *testing.T) {
	doc := parseBlocks(normalizeInput("> > nested\n"))
	require.Len(t, doc.Children, 1)
	outer := doc.Children[0]
	assert.Equal(t, nodeBlockQuote, outer.Kind)
	require.Len(t, outer.Children, 1)
	inner := outer.Children[0]
	assert.Equal(t, nodeBlockQuote, inner.Kind)
	require.Len(t, inner.Children, 1)
	assert.Equal(t, nodeParagraph, inner.Children[0].Kind)
}

func TestParseBlocksTightVsLooseList(t *testing.T) {
	tight := parseBlocks(normalizeInput("- a\n- b\n"))
	require.Len(t, tight.Children, 1)
	assert.True(t, tight.Children[0].Tight, "list with no internal blank line should be tight")

	loose := parseBlocks(normalizeInput("- a\n\n- b\n"))
	require.Len(t, loose.Children, 1)
	assert.False(t, loose.Children[0].Tight, "list with an internal blank line should be loose")
}

func TestParseBlocksListMarkerTypesDoNotMerge(t *testing.T) {
	doc := parseBlocks(normalizeInput("- a\n* b\n"))
	// a '-' item followed by a '*' item starts a second list, per §5.2.
	require.Len(t, doc.Children, 2)
	assert.Equal(t, nodeList, doc.Children[0].Kind)
	assert.Equal(t, nodeList, doc.Children[1].Kind)
}

func TestParseBlocksOrderedListStart(t *testing.T) {
	doc := parseBlocks(normalizeInput("7. seven\n8. eight\n"))
	require.Len(t, doc.Children, 1)
	list := doc.Children[0]
	assert.True(t, list.Ordered)
	assert.Equal(t, 7, list.Start)
	require.Len(t, list.Children, 2, "a non-1 start number must not stop the second item from joining the list")
}

func TestParseBlocksOrderedListSecondItemDoesNotInterruptParagraph(t *testing.T) {
	doc := parseBlocks(normalizeInput("Foo\n2. bar\n"))
	require.Len(t, doc.Children, 1, "an ordered marker with start != 1 cannot interrupt a plain paragraph")
	assert.Equal(t, nodeParagraph, doc.Children[0].Kind)
}

func TestParseBlocksFencedCodeBlock(t *testing.T) {
	doc := parseBlocks(normalizeInput("```go\nfmt.Println(1)\n```\n"))
	require.Len(t, doc.Children, 1)
	cb := doc.Children[0]
	assert.Equal(t, nodeCodeBlock, cb.Kind)
	assert.Equal(t, "go", cb.Info)
	assert.Equal(t, "fmt.Println(1)\n", cb.Literal)
}

func TestParseBlocksIndentedCodeBlock(t *testing.T) {
	doc := parseBlocks(normalizeInput("    code here\n"))
	require.Len(t, doc.Children, 1)
	assert.Equal(t, nodeCodeBlock, doc.Children[0].Kind)
	assert.Equal(t, "code here\n", doc.Children[0].Literal)
}

func TestParseBlocksIndentedCodeDoesNotInterruptParagraph(t *testing.T) {
	doc := parseBlocks(normalizeInput("para\n    not code\n"))
	require.Len(t, doc.Children, 1)
	assert.Equal(t, nodeParagraph, doc.Children[0].Kind)
}

func TestParseBlocksLazyContinuation(t *testing.T) {
	doc := parseBlocks(normalizeInput("> line one\nline two\n"))
	require.Len(t, doc.Children, 1)
	bq := doc.Children[0]
	require.Len(t, bq.Children, 1)
	para := bq.Children[0]
	assert.Equal(t, "line one\nline two", para.rawText())
}

func TestParseBlocksHTMLBlockType6EndsAtBlankLine(t *testing.T) {
	doc := parseBlocks(normalizeInput("<div>\nhello\n</div>\n\npara\n"))
	require.Len(t, doc.Children, 2)
	assert.Equal(t, nodeHTMLBlock, doc.Children[0].Kind)
	assert.Equal(t, nodeParagraph, doc.Children[1].Kind)
}

func TestParseBlocksDeepNestingCapDoesNotPanic(t *testing.T) {
	src := ""
	for i := 0; i < 2000; i++ {
		src += "> "
	}
	src += "x\n"
	assert.NotPanics(t, func() {
		parseBlocks(normalizeInput(src))
	})
}

func TestDetectATXHeadingStripsTrailingHashes(t *testing.T) {
	level, content, ok := detectATXHeading("## Title ##")
	require.True(t, ok)
	assert.Equal(t, 2, level)
	assert.Equal(t, "Title", content)
}

func TestDetectThematicBreak(t *testing.T) {
	cases := map[string]bool{
		"***":     true,
		"- - -":   true,
		"___":     true,
		"--":      false,
		"- - a":   false,
		"****x":   false,
		"* * * *": true,
	}
	for in, want := range cases {
		assert.Equal(t, want, detectThematicBreak(in), "input %q", in)
	}
}

func TestParseListMarker(t *testing.T) {
	m, w, ok := parseListMarker("12. item")
	require.True(t, ok)
	assert.Equal(t, 3, w)
	assert.True(t, m.ordered)
	assert.Equal(t, 12, m.start)
	assert.Equal(t, byte('.'), m.delim)

	_, _, ok = parseListMarker("not a marker")
	assert.False(t, ok)
}
