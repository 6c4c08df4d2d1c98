// File: numeric.go
// Title: Numeric to String Conversion
// Description: Implements generic conversion between numbers and their decimal
//              text form. ToNumeric parses leniently like a C++ input stream;
//              ParseNumeric is the strict counterpart returning errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package stringx

import (
	"errors"
	"math"
	"reflect"
	"strconv"

	mdwerrors "github.com/msto63/stringops/foundation/core/errors"
)

var (
	// ErrInvalidNumber is the cause of ParseNumeric syntax errors
	ErrInvalidNumber = errors.New("invalid number")

	// ErrNumberOutOfRange is the cause of ParseNumeric range errors
	ErrNumberOutOfRange = errors.New("number out of range")
)

// Integer is satisfied by every integer type, named types included
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is satisfied by every floating-point type
type Float interface {
	~float32 | ~float64
}

// Number is satisfied by every integer and floating-point type
type Number interface {
	Integer | Float
}

// ToString renders v in decimal. Integers are exact; floats use the shortest
// of fixed and exponent notation with six significant digits, the way a
// default-configured output stream prints them. int8 and uint8 print as
// numbers, not characters.
func ToString[T Number](v T) string {
	rv := reflect.ValueOf(v)
	switch {
	case isSigned(rv.Kind()):
		return strconv.FormatInt(rv.Int(), 10)
	case isUnsigned(rv.Kind()):
		return strconv.FormatUint(rv.Uint(), 10)
	default:
		return FormatFloat(rv.Float())
	}
}

// ToWString is ToString returning a wide string
func ToWString[T Number](v T) []rune {
	return []rune(ToString(v))
}

// FormatFloat renders f like C's "%g": six significant digits, trailing zeros
// dropped, exponent with at least two digits. Non-finite values render as
// inf, -inf and nan.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'g', 6, 64)
}

// ToNumeric parses the leading number of s. Leading C whitespace is skipped
// and parsing stops at the first byte that cannot extend the number; the rest
// is ignored. Input without digits yields zero. Out of range values clamp to
// the limits of T, and a negative value for an unsigned T yields zero.
//
//	ToNumeric[int]("  42abc")  // 42
//	ToNumeric[uint8]("300")    // 255
//	ToNumeric[float64]("1e5x") // 100000
func ToNumeric[T Number](s string) T {
	var out T
	rv := reflect.ValueOf(&out).Elem()
	kind := rv.Kind()
	bits := rv.Type().Bits()

	s = skipSpace(s)

	if kind == reflect.Float32 || kind == reflect.Float64 {
		prefix := floatPrefix(s)
		if prefix == "" {
			return out
		}
		f, err := strconv.ParseFloat(prefix, bits)
		if err != nil && math.IsInf(f, 0) {
			f = math.Copysign(maxFloat(bits), f)
		}
		rv.SetFloat(f)
		return out
	}

	prefix := integerPrefix(s)
	if prefix == "" {
		return out
	}
	if isSigned(kind) {
		// ParseInt already clamps on ErrRange
		n, _ := strconv.ParseInt(prefix, 10, bits)
		rv.SetInt(n)
		return out
	}
	switch prefix[0] {
	case '-':
		return out
	case '+':
		prefix = prefix[1:]
	}
	n, _ := strconv.ParseUint(prefix, 10, bits)
	rv.SetUint(n)
	return out
}

// ParseNumeric parses the whole of s as a T. Floats accept the same decimal
// grammar as ToNumeric. Errors are structured, coded
// INVALID_FORMAT (wrapping ErrInvalidNumber) or VALUE_OUT_OF_RANGE (wrapping
// ErrNumberOutOfRange).
func ParseNumeric[T Number](s string) (T, error) {
	var out T
	rv := reflect.ValueOf(&out).Elem()
	kind := rv.Kind()
	bits := rv.Type().Bits()

	var err error
	switch {
	case isSigned(kind):
		var n int64
		n, err = strconv.ParseInt(s, 10, bits)
		if err == nil {
			rv.SetInt(n)
		}
	case isUnsigned(kind):
		var n uint64
		n, err = strconv.ParseUint(s, 10, bits)
		if err == nil {
			rv.SetUint(n)
		}
	case floatPrefix(s) != s:
		// decimal only: no hex floats, inf, nan or digit separators
		err = strconv.ErrSyntax
	default:
		var f float64
		f, err = strconv.ParseFloat(s, bits)
		if err == nil {
			rv.SetFloat(f)
		}
	}
	if err == nil {
		return out, nil
	}

	if errors.Is(err, strconv.ErrRange) {
		lo, hi := limits(kind, bits)
		return out, mdwerrors.OutOfRange(mdwerrors.ModuleStringx, "ParseNumeric", ErrNumberOutOfRange, s, lo, hi).
			WithDetail("type", rv.Type().String())
	}
	return out, mdwerrors.InvalidFormat(mdwerrors.ModuleStringx, "ParseNumeric", ErrInvalidNumber, s, rv.Type().String())
}

func isSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func maxFloat(bits int) float64 {
	if bits == 32 {
		return math.MaxFloat32
	}
	return math.MaxFloat64
}

func limits(kind reflect.Kind, bits int) (lo, hi interface{}) {
	switch {
	case isSigned(kind):
		return int64(math.MinInt64) >> (64 - bits), int64(math.MaxInt64) >> (64 - bits)
	case isUnsigned(kind):
		return uint64(0), uint64(math.MaxUint64) >> (64 - bits)
	default:
		return -maxFloat(bits), maxFloat(bits)
	}
}

// skipSpace drops the bytes C's isspace accepts in the C locale
func skipSpace(s string) string {
	i := 0
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			i++
			continue
		}
		break
	}
	return s[i:]
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// integerPrefix returns the longest [+-]digits prefix of s, or "" when it has
// no digits
func integerPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return ""
	}
	return s[:i]
}

// floatPrefix returns the longest decimal floating-point prefix of s:
// [+-] digits [. digits] [(e|E) [+-] digits], with at least one mantissa digit
func floatPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return ""
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return s[:i]
}
