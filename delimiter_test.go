package cmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeFlankingAsterisk(t *testing.T) {
	// "*foo*": opening '*' preceded by space, followed by 'f' -> left-flanking.
	canOpen, canClose := computeFlanking(' ', 'f', '*')
	assert.True(t, canOpen)
	assert.False(t, canClose)
}

func TestComputeFlankingUnderscoreAsymmetry(t *testing.T) {
	// "foo_bar_baz": the underscore run is both left- and right-flanking
	// (surrounded by non-space, non-punctuation on both sides), but '_'
	// additionally requires it not be both unless adjacent to punctuation,
	// so it can neither open nor close here.
	canOpen, canClose := computeFlanking('o', 'b', '_')
	assert.False(t, canOpen)
	assert.False(t, canClose)

	// "*" has no such restriction for the same surrounding runes.
	canOpenStar, canCloseStar := computeFlanking('o', 'b', '*')
	assert.True(t, canOpenStar)
	assert.True(t, canCloseStar)
}

func TestIsUnicodePunct(t *testing.T) {
	assert.True(t, isUnicodePunct('.'))
	assert.True(t, isUnicodePunct('$')) // unicode.IsSymbol
	assert.False(t, isUnicodePunct('a'))
	assert.False(t, isUnicodePunct(' '))
}

func TestProcessEmphasisUnmatchedDelimiterStaysLiteral(t *testing.T) {
	got := ToHTML("*foo\n")
	assert.Equal(t, "<p>*foo</p>\n", got)
}
