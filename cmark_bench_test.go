package cmark

import (
	"strings"
	"testing"
)

func BenchmarkToHTMLMixedDocument(b *testing.B) {
	src := strings.Repeat("# Heading\n\nSome *emphasis* and **strong** text with a [link](/url \"t\").\n\n- one\n- two\n  - nested\n\n> quoted\n> text\n\n```go\nfmt.Println(1)\n```\n\n", 50)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ToHTML(src)
	}
}

func BenchmarkToHTMLNestedBrackets(b *testing.B) {
	src := strings.Repeat("[", 10000) + "x" + strings.Repeat("]", 10000) + "\n"
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ToHTML(src)
	}
}

func BenchmarkToHTMLEmphasisRun(b *testing.B) {
	src := strings.Repeat("*", 10000) + "\n"
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ToHTML(src)
	}
}

func BenchmarkToHTMLBlockQuoteNesting(b *testing.B) {
	src := strings.Repeat("> ", 2000) + "x\n"
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ToHTML(src)
	}
}

// TestToHTMLAllocationsBounded guards against an accidental quadratic
// blowup in the block or inline passes the way the teacher's
// TestRenderWrappedAllocations guarded its Render function: a regression
// that makes ToHTML re-copy or re-scan its input per line/delimiter would
// show up here as allocation count growing much faster than input size.
func TestToHTMLAllocationsBounded(t *testing.T) {
	src := strings.Repeat("# Heading\n\nSome *emphasis* and **strong** text with a [link](/url \"t\").\n\n- one\n- two\n\n", 50)
	allocs := testing.AllocsPerRun(50, func() {
		ToHTML(src)
	})
	if allocs > 20000 {
		t.Fatalf("too many allocations per ToHTML: got %.2f", allocs)
	}
}
