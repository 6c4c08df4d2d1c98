// File: locale.go
// Title: Locale Names and Ambient Locale
// Description: Implements POSIX locale name parsing and normalisation, the
//              environment lookup order of the C library and the process-wide
//              ambient locale.
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
	"os"
	"strings"
	"sync/atomic"

	"golang.org/x/text/language"

	mdwerror "github.com/msto63/stringops/foundation/core/error"
	mdwerrors "github.com/msto63/stringops/foundation/core/errors"
)

// ErrInvalidName is returned for locale names that are not POSIX shaped
var ErrInvalidName = errors.New("invalid locale name")

// Locale is a parsed POSIX locale name
type Locale struct {
	Language  string // "de", or "C"/"POSIX" for the portable locale
	Territory string // "DE"
	Codeset   string // "UTF-8", as written or normalised
	Modifier  string // "euro"
}

// C is the portable locale every process starts in
var C = Locale{Language: "C"}

// Parse parses a locale name of the form language[_territory][.codeset][@modifier].
// The empty name yields the C locale.
func Parse(name string) (Locale, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return C, nil
	}

	var loc Locale
	rest := name
	if i := strings.LastIndexByte(rest, '@'); i >= 0 {
		loc.Modifier = rest[i+1:]
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '.'); i >= 0 {
		loc.Codeset = rest[i+1:]
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '_'); i >= 0 {
		loc.Territory = rest[i+1:]
		rest = rest[:i]
	}
	loc.Language = rest

	if !isAlpha(loc.Language) || (loc.Territory != "" && !isAlpha(loc.Territory)) ||
		(loc.Codeset != "" && !isCodeset(loc.Codeset)) {
		return Locale{}, mdwerrors.NewErrorBuilder(mdwerrors.ModuleLocale).
			Operation("Parse").
			Messagef("invalid locale name %q", name).
			Cause(ErrInvalidName).
			Code(mdwerror.CodeInvalidInput).
			Detail("input", name).
			Build()
	}

	return loc, nil
}

// MustParse is like Parse but panics on error
func MustParse(name string) Locale {
	loc, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// IsPortable reports whether l is the C or POSIX locale
func (l Locale) IsPortable() bool {
	return l.Language == "C" || l.Language == "POSIX"
}

// String returns the locale name as the C library would accept it
func (l Locale) String() string {
	var b strings.Builder
	b.WriteString(l.Language)
	if l.Territory != "" {
		b.WriteByte('_')
		b.WriteString(l.Territory)
	}
	if l.Codeset != "" {
		b.WriteByte('.')
		b.WriteString(l.Codeset)
	}
	if l.Modifier != "" {
		b.WriteByte('@')
		b.WriteString(l.Modifier)
	}
	return b.String()
}

// Normalize returns l with a lower-case language, an upper-case territory and
// a canonical codeset name
func (l Locale) Normalize() Locale {
	if !l.IsPortable() {
		l.Language = strings.ToLower(l.Language)
		l.Territory = strings.ToUpper(l.Territory)
	}
	if l.Codeset != "" {
		l.Codeset = canonicalCodeset(l.Codeset)
	}
	return l
}

// EffectiveCodeset returns the codeset used for conversions. A locale without
// an explicit codeset uses ASCII when portable and ISO-8859-1 otherwise, as
// glibc does.
func (l Locale) EffectiveCodeset() string {
	if l.Codeset != "" {
		return canonicalCodeset(l.Codeset)
	}
	if l.IsPortable() {
		return codesetASCII
	}
	return "ISO-8859-1"
}

// Tag returns the BCP 47 language tag of l. Portable locales map to und.
func (l Locale) Tag() (language.Tag, error) {
	if l.IsPortable() {
		return language.Und, nil
	}
	name := l.Language
	if l.Territory != "" {
		name += "-" + l.Territory
	}
	return language.Parse(name)
}

// NormalizeName parses and normalises a locale name. Names that cannot be
// parsed are returned trimmed.
func NormalizeName(name string) string {
	loc, err := Parse(name)
	if err != nil {
		return strings.TrimSpace(name)
	}
	return loc.Normalize().String()
}

// envLookup is replaced in tests
var envLookup = os.Getenv

// FromEnv resolves the character-type locale from the environment using the
// C library order LC_ALL, LC_CTYPE, LANG. Unset or unparsable values yield C.
func FromEnv() Locale {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		value := envLookup(key)
		if value == "" {
			continue
		}
		loc, err := Parse(value)
		if err != nil {
			return C
		}
		return loc
	}
	return C
}

var ambient atomic.Pointer[Locale]

// Ambient returns the process-wide locale, initialised from the environment
// on first use
func Ambient() Locale {
	if loc := ambient.Load(); loc != nil {
		return *loc
	}
	loc := FromEnv()
	ambient.CompareAndSwap(nil, &loc)
	return *ambient.Load()
}

// SetAmbient replaces the process-wide locale and returns the previous one.
// Conversions already running keep the locale they started with.
func SetAmbient(loc Locale) Locale {
	prev := ambient.Swap(&loc)
	if prev == nil {
		return FromEnv()
	}
	return *prev
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

func isCodeset(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-' || c == '_' || c == ':' || c == '.':
		default:
			return false
		}
	}
	return true
}
