// File: doc.go
// Title: Locale Package Documentation
// Description: Package locale models the process character-type locale: POSIX
//              locale names, environment precedence and the codeset codec used
//              for wide/narrow string conversion.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

/*
Package locale provides the ambient character-type locale for stringops.

Package: locale
Title: Ambient Locale and Codeset Conversion
Description: Parses POSIX locale names, resolves the effective locale from the
             environment like the C library does and maps its codeset to a
             codec converting between wide strings ([]rune) and narrow byte
             strings.
Author: msto63
Version: v0.1.0
Created: 2026-10-15
Modified: 2026-10-15

Change History:
- 2026-10-15 v0.1.0: Initial implementation

Key Features:
  • POSIX locale names: language[_territory][.codeset][@modifier], C and POSIX
  • Environment precedence LC_ALL > LC_CTYPE > LANG
  • Process-wide ambient locale, swappable atomically
  • Strict ASCII for the C locale, native UTF-8, IANA charsets via golang.org/x/text
  • Conversion failures report the offending offset as structured errors

Usage:

	loc, err := locale.Parse("de_DE.ISO-8859-1")
	if err != nil {
		return err
	}
	codec, err := loc.Codec()
	if err != nil {
		return err
	}
	narrow, err := codec.Encode([]rune("Grüße"))

The ambient locale is read from the environment on first use:

	codec, err := locale.Ambient().Codec()

Offsets in conversion errors are rune indices for Encode and byte offsets for
Decode.
*/
package locale
