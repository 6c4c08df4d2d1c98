// File: case.go
// Title: ASCII Case Conversion
// Description: Implements ASCII-only lower and upper case conversion, returning
//              and in place. Bytes outside A-Z / a-z are never touched, so
//              multibyte sequences pass through unchanged.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package stringx

// Lowercase returns s with A-Z mapped to a-z
func Lowercase(s string) string {
	if !hasByteIn(s, 'A', 'Z') {
		return s
	}
	b := []byte(s)
	LowercaseBytes(b)
	return string(b)
}

// Uppercase returns s with a-z mapped to A-Z
func Uppercase(s string) string {
	if !hasByteIn(s, 'a', 'z') {
		return s
	}
	b := []byte(s)
	UppercaseBytes(b)
	return string(b)
}

// LowercaseInPlace lowercases *s
func LowercaseInPlace(s *string) {
	*s = Lowercase(*s)
}

// UppercaseInPlace uppercases *s
func UppercaseInPlace(s *string) {
	*s = Uppercase(*s)
}

// LowercaseBytes lowercases b in place
func LowercaseBytes(b []byte) {
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
}

// UppercaseBytes uppercases b in place
func UppercaseBytes(b []byte) {
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
}

func hasByteIn(s string, lo, hi byte) bool {
	for i := 0; i < len(s); i++ {
		if lo <= s[i] && s[i] <= hi {
			return true
		}
	}
	return false
}
