package cmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeEntityNamed(t *testing.T) {
	text, end, ok := decodeEntity("&copy;rest", 0)
	assert.True(t, ok)
	assert.Equal(t, "©", text)
	assert.Equal(t, 6, end)
}

func TestDecodeEntityUnknownNameFallsThrough(t *testing.T) {
	_, _, ok := decodeEntity("&notarealentity;", 0)
	assert.False(t, ok)
}

func TestDecodeEntityDecimalNumericRef(t *testing.T) {
	text, _, ok := decodeEntity("&#35;", 0)
	assert.True(t, ok)
	assert.Equal(t, "#", text)
}

func TestDecodeEntityHexNumericRef(t *testing.T) {
	text, _, ok := decodeEntity("&#x26;", 0)
	assert.True(t, ok)
	assert.Equal(t, "&", text)
}

func TestDecodeEntityOutOfRangeBecomesReplacementChar(t *testing.T) {
	text, _, ok := decodeEntity("&#0;", 0)
	assert.True(t, ok)
	assert.Equal(t, "�", text)

	text, _, ok = decodeEntity("&#xD800;", 0)
	assert.True(t, ok)
	assert.Equal(t, "�", text)
}

func TestHTMLEntitiesEndToEnd(t *testing.T) {
	got := ToHTML("&nbsp; &amp; &copy;\n")
	assert.Contains(t, got, "&amp;")
	assert.Contains(t, got, "©")
}
