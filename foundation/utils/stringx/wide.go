// File: wide.go
// Title: Wide/Narrow String Conversion
// Description: Converts between wide strings ([]rune) and narrow byte strings
//              in the codeset of a locale. The ambient variants read the
//              process locale once per call.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package stringx

import (
	"github.com/msto63/stringops/foundation/core/locale"
)

// WideCharToUTF8 converts w to the narrow encoding of the ambient locale.
// Despite the name the output is UTF-8 only when the locale codeset is; under
// the C locale any code point above 0x7f fails.
//
// Errors wrap locale.ErrInvalidSequence and carry the offending rune index.
func WideCharToUTF8(w []rune) (string, error) {
	return WideToNarrow(locale.Ambient(), w)
}

// UTF8ToWideChar converts s from the narrow encoding of the ambient locale.
//
// Errors wrap locale.ErrInvalidSequence and carry the offending byte offset.
func UTF8ToWideChar(s string) ([]rune, error) {
	return NarrowToWide(locale.Ambient(), s)
}

// WideToNarrow converts w to the narrow encoding of loc
func WideToNarrow(loc locale.Locale, w []rune) (string, error) {
	codec, err := loc.Codec()
	if err != nil {
		return "", err
	}
	return codec.Encode(w)
}

// NarrowToWide converts s from the narrow encoding of loc
func NarrowToWide(loc locale.Locale, s string) ([]rune, error) {
	codec, err := loc.Codec()
	if err != nil {
		return nil, err
	}
	return codec.Decode(s)
}
