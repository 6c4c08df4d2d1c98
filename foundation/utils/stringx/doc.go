// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides small, stateless byte-string utilities:
//              ASCII case conversion, trimming, replacement, line-ending
//              normalisation, URL encoding, tokenising, wide/narrow conversion
//              and numeric conversion.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

// Package stringx provides byte-oriented string utilities.
//
// Package: stringx
// Title: Byte String Operations
// Description: Pure functions over Go strings treated as byte sequences in the
//              narrow locale encoding. Every returning function leaves its
//              input untouched; the InPlace variants rewrite exactly the
//              string they are handed.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// # Overview
//
// The functions fall into groups, one file each:
//
//   - Case conversion, ASCII only (case.go)
//   - Trimming of space, tab, CR and LF (trim.go)
//   - Replace with resume-after-replacement, Dos2Unix (replace.go)
//   - URL percent-encoding (urlencode.go)
//   - Tokenize by a literal delimiter (tokenize.go)
//   - Wide/narrow conversion through the locale (wide.go)
//   - Numeric to string and back (numeric.go)
//
// # Usage Examples
//
//	stringx.Lowercase("MiXeD")          // "mixed"
//	stringx.Trim(" \tvalue\r\n")        // "value"
//	stringx.Replace("aaaa", "aa", "b")  // "bb"
//	stringx.Dos2Unix("a\r\nb")          // "a\nb"
//	stringx.URLEncode("a b/c")          // "a+b%2fc"
//	stringx.Tokenize("a,,b,", ",")      // ["a" "" "b"]
//	stringx.ToString(3.5)               // "3.5"
//	stringx.ToNumeric[int]("  42abc")   // 42
//
// # Error Handling
//
// Calls that break a precondition (an empty needle or delimiter) panic with a
// *error.Error coded PRECONDITION_VIOLATION; these are bugs in the caller.
// Conversions that depend on input data return errors:
//
//	narrow, err := stringx.WideCharToUTF8(wide)
//	if errors.Is(err, locale.ErrInvalidSequence) {
//	    ...
//	}
//
// # Thread Safety
//
// All functions are safe for concurrent use. InPlace variants need exclusive
// access to the string they rewrite. The wide/narrow pair reads the ambient
// locale once per call.
package stringx
