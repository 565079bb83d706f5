package cmark

import "strings"

// indentWidth returns the column width (tab stop 4) of the leading run of
// spaces and tabs in s.
func indentWidth(s string) int {
	col := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ':
			col++
		case '\t':
			col += 4 - col%4
		default:
			return col
		}
	}
	return col
}

// cutIndent removes up to n columns of leading indentation (spaces and
// tabs, tab stop 4) from s. If a tab would be only partially consumed, the
// unconsumed columns are materialized as literal spaces, matching
// CommonMark's treatment of partially-consumed tabs. It returns the
// remainder of s and the number of columns actually removed, which is
// less than n only when s runs out of indentation first.
func cutIndent(s string, n int) (rest string, removed int) {
	col := 0
	i := 0
	for i < len(s) && col < n {
		switch s[i] {
		case ' ':
			col++
			i++
		case '\t':
			step := 4 - col%4
			if col+step > n {
				leftover := col + step - n
				return strings.Repeat(" ", leftover) + s[i+1:], n
			}
			col += step
			i++
		default:
			return s[i:], col
		}
	}
	return s[i:], col
}

func isBlankLine(s string) bool {
	return strings.TrimLeft(s, " \t") == ""
}
