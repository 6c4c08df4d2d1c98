// File: numeric_test.go
// Title: Unit Tests for Numeric Conversion
// Description: Tests for ToString, ToWString, the lenient ToNumeric and the
//              strict ParseNumeric across integer and float types.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial test implementation

package stringx

import (
	"errors"
	"math"
	"testing"

	mdwerror "github.com/msto63/stringops/foundation/core/error"
)

type weekday int

func TestToString(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"int", ToString(42), "42"},
		{"negative int64", ToString(int64(math.MinInt64)), "-9223372036854775808"},
		{"uint64 max", ToString(uint64(math.MaxUint64)), "18446744073709551615"},
		{"int8 is a number", ToString(int8(-5)), "-5"},
		{"uint8 is a number", ToString(uint8('A')), "65"},
		{"named integer", ToString(weekday(3)), "3"},
		{"float fraction", ToString(3.5), "3.5"},
		{"float whole", ToString(2.0), "2"},
		{"six significant digits", ToString(3.14159265), "3.14159"},
		{"large float", ToString(1e6), "1e+06"},
		{"below exponent switch", ToString(123456.0), "123456"},
		{"small float", ToString(0.0001), "0.0001"},
		{"tiny float", ToString(0.00001), "1e-05"},
		{"float32", ToString(float32(0.1)), "0.1"},
		{"positive infinity", ToString(math.Inf(1)), "inf"},
		{"negative infinity", ToString(math.Inf(-1)), "-inf"},
		{"nan", ToString(math.NaN()), "nan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("ToString() = %q, want %q", tt.got, tt.expected)
			}
		})
	}
}

func TestToWString(t *testing.T) {
	if got := string(ToWString(-12)); got != "-12" {
		t.Errorf("ToWString(-12) = %q", got)
	}
	if got := ToWString(1.5); len(got) != 3 || got[1] != '.' {
		t.Errorf("ToWString(1.5) = %q", string(got))
	}
}

func TestToNumericInt(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"42", 42},
		{"  \t\n42", 42},
		{"42abc", 42},
		{"-17", -17},
		{"+8", 8},
		{"abc", 0},
		{"", 0},
		{"-", 0},
		{"3.9", 3},
		{"99999999999999999999", math.MaxInt},
		{"-99999999999999999999", math.MinInt},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ToNumeric[int](tt.input); got != tt.expected {
				t.Errorf("ToNumeric[int](%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestToNumericNarrowTypes(t *testing.T) {
	if got := ToNumeric[int8]("200"); got != math.MaxInt8 {
		t.Errorf("ToNumeric[int8](200) = %d", got)
	}
	if got := ToNumeric[int16]("-40000"); got != math.MinInt16 {
		t.Errorf("ToNumeric[int16](-40000) = %d", got)
	}
	if got := ToNumeric[uint8]("300"); got != math.MaxUint8 {
		t.Errorf("ToNumeric[uint8](300) = %d", got)
	}
	if got := ToNumeric[uint]("-5"); got != 0 {
		t.Errorf("ToNumeric[uint](-5) = %d", got)
	}
	if got := ToNumeric[uint32]("+7x"); got != 7 {
		t.Errorf("ToNumeric[uint32](+7x) = %d", got)
	}
	if got := ToNumeric[weekday]("5"); got != weekday(5) {
		t.Errorf("ToNumeric[weekday](5) = %d", got)
	}
}

func TestToNumericFloat(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"3.5", 3.5},
		{" -2.25rest", -2.25},
		{".5", 0.5},
		{"5.", 5},
		{"1e3", 1000},
		{"1E-2", 0.01},
		{"1e", 1},
		{"1e+", 1},
		{"2.5e3x", 2500},
		{".", 0},
		{"e5", 0},
		{"inf", 0},
		{"1e999", math.MaxFloat64},
		{"-1e999", -math.MaxFloat64},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ToNumeric[float64](tt.input); got != tt.expected {
				t.Errorf("ToNumeric[float64](%q) = %g, want %g", tt.input, got, tt.expected)
			}
		})
	}

	if got := ToNumeric[float32]("1e50"); got != math.MaxFloat32 {
		t.Errorf("ToNumeric[float32](1e50) = %g", got)
	}
}

func TestNumericRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 123456789, math.MaxInt64, math.MinInt64} {
		if got := ToNumeric[int64](ToString(v)); got != v {
			t.Errorf("round trip of %d = %d", v, got)
		}
	}
	for _, v := range []float64{0, 0.5, -1.25, 1e+06, 3.14159} {
		if got := ToNumeric[float64](ToString(v)); got != v {
			t.Errorf("round trip of %g = %g", v, got)
		}
	}
}

func TestParseNumeric(t *testing.T) {
	if v, err := ParseNumeric[int]("-42"); err != nil || v != -42 {
		t.Errorf("ParseNumeric[int](-42) = %d, %v", v, err)
	}
	if v, err := ParseNumeric[uint16]("65535"); err != nil || v != 65535 {
		t.Errorf("ParseNumeric[uint16](65535) = %d, %v", v, err)
	}
	if v, err := ParseNumeric[float64]("2.5e-1"); err != nil || v != 0.25 {
		t.Errorf("ParseNumeric[float64](2.5e-1) = %g, %v", v, err)
	}

	for _, in := range []string{"-.5", "+1e3", "7.", "0.25E+1"} {
		want := ToNumeric[float64](in)
		if v, err := ParseNumeric[float64](in); err != nil || v != want {
			t.Errorf("ParseNumeric[float64](%q) = %g, %v; want %g", in, v, err, want)
		}
	}

	tests := []struct {
		name  string
		parse func() error
		cause error
		code  mdwerror.Code
	}{
		{"trailing garbage", func() error { _, err := ParseNumeric[int]("42abc"); return err }, ErrInvalidNumber, mdwerror.CodeInvalidFormat},
		{"leading space", func() error { _, err := ParseNumeric[int](" 42"); return err }, ErrInvalidNumber, mdwerror.CodeInvalidFormat},
		{"empty", func() error { _, err := ParseNumeric[float64](""); return err }, ErrInvalidNumber, mdwerror.CodeInvalidFormat},
		{"int8 overflow", func() error { _, err := ParseNumeric[int8]("128"); return err }, ErrNumberOutOfRange, mdwerror.CodeValueOutOfRange},
		{"negative unsigned", func() error { _, err := ParseNumeric[uint]("-1"); return err }, ErrInvalidNumber, mdwerror.CodeInvalidFormat},
		{"float32 overflow", func() error { _, err := ParseNumeric[float32]("1e39"); return err }, ErrNumberOutOfRange, mdwerror.CodeValueOutOfRange},
		{"nan", func() error { _, err := ParseNumeric[float64]("nan"); return err }, ErrInvalidNumber, mdwerror.CodeInvalidFormat},
		{"infinity", func() error { _, err := ParseNumeric[float64]("-Inf"); return err }, ErrInvalidNumber, mdwerror.CodeInvalidFormat},
		{"hex float", func() error { _, err := ParseNumeric[float64]("0x1p4"); return err }, ErrInvalidNumber, mdwerror.CodeInvalidFormat},
		{"dangling exponent", func() error { _, err := ParseNumeric[float64]("1e"); return err }, ErrInvalidNumber, mdwerror.CodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse()
			if !errors.Is(err, tt.cause) {
				t.Fatalf("error = %v, want cause %v", err, tt.cause)
			}
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("code = %v, want %v", mdwerror.GetCode(err), tt.code)
			}
		})
	}
}

func TestParseNumericRangeDetails(t *testing.T) {
	_, err := ParseNumeric[int8]("-129")

	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		t.Fatalf("error %v is not structured", err)
	}
	if lo, _ := mdwErr.Detail("min"); lo != int64(math.MinInt8) {
		t.Errorf("min = %v", lo)
	}
	if hi, _ := mdwErr.Detail("max"); hi != int64(math.MaxInt8) {
		t.Errorf("max = %v", hi)
	}
	if typ, _ := mdwErr.Detail("type"); typ != "int8" {
		t.Errorf("type = %v", typ)
	}
}
