package cmark

import "strings"

// matchCodeSpan recognizes a code span starting at s[i], which must be a
// backtick. The opening run of backticks must be matched by a closing run
// of exactly the same length; if none exists, the opening run is not a
// code span at all. Line endings inside the span become spaces, and a
// single leading and trailing space are stripped if the content is not
// entirely whitespace.
func matchCodeSpan(s string, i int) (content string, end int, ok bool) {
	n := 0
	for i+n < len(s) && s[i+n] == '`' {
		n++
	}
	j := i + n
	for j < len(s) {
		if s[j] != '`' {
			j++
			continue
		}
		k := j
		cnt := 0
		for k < len(s) && s[k] == '`' {
			cnt++
			k++
		}
		if cnt != n {
			j = k
			continue
		}
		raw := strings.ReplaceAll(s[i+n:j], "\n", " ")
		if len(raw) >= 2 && raw[0] == ' ' && raw[len(raw)-1] == ' ' && strings.Trim(raw, " ") != "" {
			raw = raw[1 : len(raw)-1]
		}
		return raw, k, true
	}
	return "", i, false
}
