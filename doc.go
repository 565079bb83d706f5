// Package cmark converts CommonMark Markdown source to HTML.
//
// Parsing runs in three fixed passes: a block-structure analyzer that builds
// a tree of container and leaf blocks from the input, a reference-definition
// collector that walks that tree and records every link reference
// definition, and an inline analyzer that turns each leaf's raw text into
// inline nodes (running the delimiter-stack algorithm for emphasis and the
// bracket-matching algorithm for links and images). A final pass renders the
// resulting tree to HTML.
//
// ToHTML is a pure function of its input: no I/O, no shared mutable state,
// safe to call from multiple goroutines at once.
//
// Example:
//
//	html := cmark.ToHTML("# Hello\n\nMarkdown in, *HTML* out.\n")
//	fmt.Print(html)
package cmark
