// File: doc.go
// Title: Package Documentation for formatx
// Description: Package formatx provides C-style formatting with the template
//              checked against the kinds of its arguments before rendering.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

// Package formatx provides type-checked printf-style formatting.
//
// Package: formatx
// Title: Type-Checked Formatting
// Description: Renders templates using the bare C conversions d, c, p, f, g and
//              s. Every argument is first normalised to one of four kinds and
//              each conversion is checked against the kind of its argument, so
//              a mismatched template fails loudly instead of printing garbage.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// # Template Syntax
//
//	%d  integer, decimal
//	%c  integer, low eight bits as one byte
//	%p  pointer, 0x-prefixed lowercase hex or (nil)
//	%f  float, fixed with six decimals
//	%g  float, shortest of %e and %f with six significant digits
//	%s  string, bytes verbatim
//	%%  a literal percent sign, consumes no argument
//
// Flags, width and precision are not supported: the byte after '%' must be
// one of the letters above.
//
// # Argument Kinds
//
// Normalize maps Go values onto kinds:
//
//	integers of any width, bool, named integer types  -> KindInt (int64)
//	float32, float64                                  -> KindFloat (float64)
//	pointers, unsafe.Pointer, nil                     -> KindPointer
//	string, named string types, []byte                -> KindString
//	anything else                                     -> KindInvalid
//
// # Usage
//
//	s, err := formatx.Format("%s is %d years old", "Ada", 36)
//	// s == "Ada is 36 years old"
//
//	_, err = formatx.Format("%d", "not a number")
//	// errors.Is(err, formatx.ErrWrongArgumentKind)
//
//	formatx.PrintLine("%s: %g", "ratio", 0.5)
//
// A Printer writes to any io.Writer and can skip validation; mismatches are
// then rendered as markers such as %!d(string=x) and missing arguments as
// %!d(MISSING).
//
// # Error Handling
//
// Validation failures are programmer errors. They are returned as
// *error.Error values wrapping one of the sentinel errors and carrying the
// template, the specifier, its byte position and the argument index.
// MustFormat panics with the same error.
package formatx
