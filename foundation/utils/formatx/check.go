// File: check.go
// Title: Template Validation
// Description: Implements the validator that walks a template, pairs every
//              conversion with its argument and rejects unknown conversions,
//              kind mismatches and count mismatches.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package formatx

import (
	"errors"

	mdwerror "github.com/msto63/stringops/foundation/core/error"
	mdwerrors "github.com/msto63/stringops/foundation/core/errors"
)

var (
	// ErrTooFewSpecifiers means the template has more conversions than
	// arguments, so too few values were supplied for its specifiers
	ErrTooFewSpecifiers = errors.New("too few format specifiers")

	// ErrTooManySpecifiers means arguments are left over after the last
	// conversion
	ErrTooManySpecifiers = errors.New("too many format specifiers")

	// ErrInvalidFormatChar means a '%' is followed by something other than
	// d, c, p, f, g, s or '%'
	ErrInvalidFormatChar = errors.New("invalid format char")

	// ErrWrongArgumentKind means an argument does not match its conversion
	ErrWrongArgumentKind = errors.New("wrong argument kind for specifier")

	// ErrUnsupportedArgument means an argument has no formatting kind
	ErrUnsupportedArgument = errors.New("unsupported argument type")
)

// expectedKind returns the argument kind a conversion consumes. ok is false
// for letters that are not conversions.
func expectedKind(verb byte) (kind Kind, ok bool) {
	switch verb {
	case 'd', 'c':
		return KindInt, true
	case 'p':
		return KindPointer, true
	case 'f', 'g':
		return KindFloat, true
	case 's':
		return KindString, true
	}
	return KindInvalid, false
}

// Check validates template against args. Arguments of KindInvalid are
// reported first; the template is then walked left to right and the first
// problem found is returned:
//
//   - a conversion with no argument left: ErrTooFewSpecifiers
//   - an unknown conversion letter or a trailing '%': ErrInvalidFormatChar
//   - an argument of the wrong kind: ErrWrongArgumentKind
//   - arguments left after the last conversion: ErrTooManySpecifiers
func Check(template string, args ...Arg) error {
	for i, a := range args {
		if a.kind == KindInvalid {
			return checkError(ErrUnsupportedArgument, mdwerror.CodeFormatUnsupportedArg, template, -1, 0, i).
				WithDetail("type", a.typ)
		}
	}

	next := 0
	for pos := 0; pos < len(template); pos++ {
		if template[pos] != '%' {
			continue
		}
		if pos+1 < len(template) && template[pos+1] == '%' {
			pos++
			continue
		}

		var verb byte
		if pos+1 < len(template) {
			verb = template[pos+1]
		}

		if next >= len(args) {
			return checkError(ErrTooFewSpecifiers, mdwerror.CodeFormatTooFewSpecifiers, template, pos, verb, next)
		}

		want, ok := expectedKind(verb)
		if !ok {
			return checkError(ErrInvalidFormatChar, mdwerror.CodeFormatInvalidChar, template, pos, verb, next)
		}
		if args[next].kind != want {
			return checkError(ErrWrongArgumentKind, mdwerror.CodeFormatArgumentKind, template, pos, verb, next).
				WithDetail("expected", want.String()).
				WithDetail("actual", args[next].kind.String())
		}

		next++
		pos++
	}

	if next < len(args) {
		return checkError(ErrTooManySpecifiers, mdwerror.CodeFormatTooManySpecifiers, template, -1, 0, next)
	}
	return nil
}

// CheckValues normalises args and validates template against them
func CheckValues(template string, args ...any) error {
	return Check(template, NormalizeAll(args)...)
}

func checkError(cause error, code mdwerror.Code, template string, pos int, verb byte, index int) *mdwerror.Error {
	b := mdwerrors.NewErrorBuilder(mdwerrors.ModuleFormatx).
		Operation("Check").
		Cause(cause).
		Code(code).
		Detail("template", template).
		Detail("argument", index)

	if pos >= 0 {
		b.Messagef("format check failed at byte %d", pos).Detail("position", pos)
		if verb != 0 {
			b.Detail("specifier", string(verb))
		}
	} else {
		b.Message("format check failed")
	}
	return b.Build()
}
