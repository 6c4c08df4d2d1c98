// File: trim.go
// Title: Whitespace Trimming
// Description: Implements trimming of the fixed whitespace set space, tab, CR
//              and LF from both ends of a string.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package stringx

// TrimSet lists the bytes removed by Trim. Other whitespace such as vertical
// tab, form feed or NBSP is kept.
const TrimSet = " \t\r\n"

func isTrimByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// Trim removes leading and trailing bytes in TrimSet
func Trim(s string) string {
	start := 0
	for start < len(s) && isTrimByte(s[start]) {
		start++
	}
	end := len(s)
	for end > start && isTrimByte(s[end-1]) {
		end--
	}
	return s[start:end]
}

// TrimInPlace trims *s
func TrimInPlace(s *string) {
	*s = Trim(*s)
}
