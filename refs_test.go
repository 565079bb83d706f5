package cmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLinkRefDefBasic(t *testing.T) {
	rest, label, dest, title, ok := parseLinkRefDef(`[foo]: /url "title"` + "\n")
	require.True(t, ok)
	assert.Equal(t, "foo", label)
	assert.Equal(t, "/url", dest)
	assert.Equal(t, "title", title)
	assert.Equal(t, "", rest)
}

func TestParseLinkRefDefNoTitle(t *testing.T) {
	_, label, dest, title, ok := parseLinkRefDef("[bar]: /path\n")
	require.True(t, ok)
	assert.Equal(t, "bar", label)
	assert.Equal(t, "/path", dest)
	assert.Equal(t, "", title)
}

func TestParseLinkRefDefAngleDestination(t *testing.T) {
	_, _, dest, _, ok := parseLinkRefDef("[x]: <my dest>\n")
	require.True(t, ok)
	assert.Equal(t, "my dest", dest)
}

func TestParseLinkRefDefRejectsMissingDestination(t *testing.T) {
	_, _, _, _, ok := parseLinkRefDef("[x]:\n")
	assert.False(t, ok)
}

func TestCollectReferencesForwardUse(t *testing.T) {
	doc := parseBlocks(normalizeInput("[foo]\n\n[foo]: /url\n"))
	refs := collectReferences(doc)
	ref, ok := refs["foo"]
	require.True(t, ok)
	assert.Equal(t, "/url", ref.destination)
}

func TestCollectReferencesFirstDefinitionWins(t *testing.T) {
	doc := parseBlocks(normalizeInput("[foo]: /first\n[foo]: /second\n"))
	refs := collectReferences(doc)
	assert.Equal(t, "/first", refs["foo"].destination)
}

func TestCollectReferencesConsumesWholeParagraph(t *testing.T) {
	doc := parseBlocks(normalizeInput("[foo]: /url\n[bar]: /other\n"))
	collectReferences(doc)
	assert.Empty(t, doc.Children, "a paragraph consisting only of reference definitions leaves no block")
}

func TestCollectReferencesPreservesTrailingParagraphText(t *testing.T) {
	doc := parseBlocks(normalizeInput("[foo]: /url\nactual text\n"))
	collectReferences(doc)
	require.Len(t, doc.Children, 1)
	assert.Equal(t, nodeParagraph, doc.Children[0].Kind)
	assert.Equal(t, "actual text", doc.Children[0].rawText())
}
