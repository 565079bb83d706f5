package cmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeInputLineEndings(t *testing.T) {
	assert.Equal(t, "a\nb\nc\n", normalizeInput("a\r\nb\rc\n"))
}

func TestNormalizeInputNulToReplacementChar(t *testing.T) {
	got := normalizeInput("a\x00b")
	assert.Equal(t, "a�b", got)
}

func TestNormalizeInputInvalidUTF8ToReplacementChar(t *testing.T) {
	got := normalizeInput(string([]byte{'a', 0xff, 'b'}))
	assert.Equal(t, "a�b", got)
}

func TestNormalizeInputFastPathNoCopyNeeded(t *testing.T) {
	src := "already clean\nno issues here\n"
	assert.Equal(t, src, normalizeInput(src))
}

func TestNormalizeLabelCaseFoldAndCollapseWhitespace(t *testing.T) {
	assert.Equal(t, normalizeLabel("Foo"), normalizeLabel("FOO"))
	assert.Equal(t, normalizeLabel("foo bar"), normalizeLabel("foo   bar"))
	assert.Equal(t, "foo bar", normalizeLabel("  foo\nbar  "))
}

func TestNormalizeLabelUnicodeFold(t *testing.T) {
	assert.Equal(t, normalizeLabel("STRASSE"), normalizeLabel("Straße"))
}
