// File: codec.go
// Title: Codeset Codecs
// Description: Maps a locale codeset to a Codec converting between wide strings
//              ([]rune) and narrow byte strings. ASCII and UTF-8 are native,
//              every other codeset is resolved through the IANA registry of
//              golang.org/x/text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package locale

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	mdwerror "github.com/msto63/stringops/foundation/core/error"
	mdwerrors "github.com/msto63/stringops/foundation/core/errors"
)

var (
	// ErrInvalidSequence is returned when input cannot be represented in, or
	// decoded from, the locale codeset
	ErrInvalidSequence = errors.New("invalid or incomplete multibyte or wide character")

	// ErrUnknownCodeset is returned for codesets with no available codec
	ErrUnknownCodeset = errors.New("unknown codeset")
)

const (
	codesetASCII = "ANSI_X3.4-1968"
	codesetUTF8  = "UTF-8"
)

// Codec converts between wide and narrow strings in one codeset
type Codec interface {
	// Name returns the canonical codeset name
	Name() string
	// Encode converts a wide string to narrow bytes
	Encode(w []rune) (string, error)
	// Decode converts narrow bytes to a wide string
	Decode(s string) ([]rune, error)
}

// glibc spells codesets loosely: "utf8", "iso88591", "eucJP". These map the
// normalised spelling (lower case, no punctuation) to an IANA name.
var codesetAliases = map[string]string{
	"c":           codesetASCII,
	"posix":       codesetASCII,
	"ansix341968": codesetASCII,
	"ascii":       codesetASCII,
	"usascii":     codesetASCII,
	"utf8":        codesetUTF8,
	"iso88591":    "ISO-8859-1",
	"iso88592":    "ISO-8859-2",
	"iso88595":    "ISO-8859-5",
	"iso88597":    "ISO-8859-7",
	"iso88599":    "ISO-8859-9",
	"iso885915":   "ISO-8859-15",
	"koi8r":       "KOI8-R",
	"koi8u":       "KOI8-U",
	"cp1251":      "windows-1251",
	"cp1252":      "windows-1252",
	"eucjp":       "EUC-JP",
	"euckr":       "EUC-KR",
	"sjis":        "Shift_JIS",
	"shiftjis":    "Shift_JIS",
	"gbk":         "GBK",
	"gb2312":      "GB2312",
	"gb18030":     "GB18030",
	"big5":        "Big5",
}

func squash(codeset string) string {
	var b strings.Builder
	for i := 0; i < len(codeset); i++ {
		c := codeset[i]
		switch {
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + 'a' - 'A')
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteByte(c)
		}
	}
	return b.String()
}

// canonicalCodeset maps a glibc codeset spelling to its canonical name.
// Unknown spellings are returned unchanged.
func canonicalCodeset(codeset string) string {
	if name, ok := codesetAliases[squash(codeset)]; ok {
		return name
	}
	return codeset
}

// Codec returns the codec for the locale's effective codeset
func (l Locale) Codec() (Codec, error) {
	return CodecFor(l.EffectiveCodeset())
}

// CodecFor returns the codec for a codeset name
func CodecFor(codeset string) (Codec, error) {
	name := canonicalCodeset(codeset)
	switch name {
	case codesetASCII:
		return asciiCodec{}, nil
	case codesetUTF8:
		return utf8Codec{}, nil
	}

	if codec, ok := codecs.get(name); ok {
		return codec, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleLocale).
			Operation("CodecFor").
			Messagef("no codec for codeset %q", codeset).
			Cause(ErrUnknownCodeset).
			Code(mdwerror.CodeUnknownCodeset).
			Detail("codeset", codeset).
			Build()
	}

	canonical, err := ianaindex.MIME.Name(enc)
	if err != nil || canonical == "" {
		canonical = name
	}
	return codecs.put(name, &charsetCodec{name: canonical, enc: enc}), nil
}

func conversionError(operation, codeset string, offset int) error {
	return mdwerrors.EncodingFailed(mdwerrors.ModuleLocale, operation, ErrInvalidSequence, codeset, offset)
}

// asciiCodec is the 7-bit codeset of the C locale
type asciiCodec struct{}

func (asciiCodec) Name() string { return codesetASCII }

func (asciiCodec) Encode(w []rune) (string, error) {
	buf := make([]byte, len(w))
	for i, r := range w {
		if r < 0 || r > 0x7f {
			return "", conversionError("Encode", codesetASCII, i)
		}
		buf[i] = byte(r)
	}
	return string(buf), nil
}

func (asciiCodec) Decode(s string) ([]rune, error) {
	w := make([]rune, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return nil, conversionError("Decode", codesetASCII, i)
		}
		w[i] = rune(s[i])
	}
	return w, nil
}

type utf8Codec struct{}

func (utf8Codec) Name() string { return codesetUTF8 }

func (utf8Codec) Encode(w []rune) (string, error) {
	buf := make([]byte, 0, len(w))
	for i, r := range w {
		if !utf8.ValidRune(r) {
			return "", conversionError("Encode", codesetUTF8, i)
		}
		buf = utf8.AppendRune(buf, r)
	}
	return string(buf), nil
}

func (utf8Codec) Decode(s string) ([]rune, error) {
	w := make([]rune, 0, utf8.RuneCountInString(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, conversionError("Decode", codesetUTF8, i)
		}
		w = append(w, r)
		i += size
	}
	return w, nil
}

// charsetCodec wraps an x/text encoding
type charsetCodec struct {
	name string
	enc  encoding.Encoding
}

func (c *charsetCodec) Name() string { return c.name }

// Encode converts rune by rune so a failure can name its index
func (c *charsetCodec) Encode(w []rune) (string, error) {
	encoder := c.enc.NewEncoder()
	var b strings.Builder
	var scratch [utf8.UTFMax]byte
	for i, r := range w {
		if !utf8.ValidRune(r) {
			return "", conversionError("Encode", c.name, i)
		}
		n := utf8.EncodeRune(scratch[:], r)
		out, err := encoder.Bytes(scratch[:n])
		if err != nil {
			return "", conversionError("Encode", c.name, i)
		}
		b.Write(out)
	}
	return b.String(), nil
}

// Decode relies on x/text replacing undecodable input with U+FFFD. Only when
// a replacement character shows up is the prefix re-encoded to locate it.
func (c *charsetCodec) Decode(s string) ([]rune, error) {
	decoded, err := c.enc.NewDecoder().String(s)
	if err != nil {
		return nil, conversionError("Decode", c.name, 0)
	}
	if i := strings.IndexRune(decoded, utf8.RuneError); i >= 0 {
		offset := 0
		if prefix, err := c.enc.NewEncoder().String(decoded[:i]); err == nil {
			offset = len(prefix)
		}
		return nil, conversionError("Decode", c.name, offset)
	}
	return []rune(decoded), nil
}
