// File: urlencode.go
// Title: URL Percent-Encoding
// Description: Implements percent-encoding with a fixed safe set. Space becomes
//              '+', other unsafe bytes become '%' plus lowercase hex. The
//              default encoder writes no leading zero ('%5' for 0x05); the
//              strict encoder always writes two digits.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package stringx

import "strings"

const hexDigits = "0123456789abcdef"

// URLSafe lists the punctuation copied verbatim besides 0-9, A-Z and a-z
const URLSafe = "-_.!~*'()"

func isURLSafe(c byte) bool {
	switch {
	case '0' <= c && c <= '9', 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z':
		return true
	}
	return strings.IndexByte(URLSafe, c) >= 0
}

// URLEncoder percent-encodes byte strings
type URLEncoder struct {
	// StrictHex pads escapes to two hex digits ("%05" instead of "%5")
	StrictHex bool
}

// Encode encodes s
func (e URLEncoder) Encode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isURLSafe(c):
			b.WriteByte(c)
		case c == ' ':
			b.WriteByte('+')
		default:
			b.WriteByte('%')
			if c >= 0x10 || e.StrictHex {
				b.WriteByte(hexDigits[c>>4])
			}
			b.WriteByte(hexDigits[c&0x0f])
		}
	}
	return b.String()
}

// URLEncode encodes s, writing escapes below 0x10 with a single hex digit
func URLEncode(s string) string {
	return URLEncoder{}.Encode(s)
}

// URLEncodeStrict encodes s with two-digit escapes
func URLEncodeStrict(s string) string {
	return URLEncoder{StrictHex: true}.Encode(s)
}
