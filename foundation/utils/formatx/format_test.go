// File: format_test.go
// Title: Formatting Tests
// Description: Tests for argument normalisation, template validation,
//              rendering of every conversion and the unchecked printer mode.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial test implementation

package formatx

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"unsafe"

	mdwerror "github.com/msto63/stringops/foundation/core/error"
)

type color int

type label string

func TestNormalize(t *testing.T) {
	x := 7
	var nilPtr *int

	tests := []struct {
		name  string
		input any
		kind  Kind
	}{
		{"int", 42, KindInt},
		{"int8", int8(-1), KindInt},
		{"uint64", uint64(1), KindInt},
		{"uintptr", uintptr(9), KindInt},
		{"rune", 'x', KindInt},
		{"byte", byte('x'), KindInt},
		{"bool", true, KindInt},
		{"named int", color(2), KindInt},
		{"float32", float32(1.5), KindFloat},
		{"float64", 2.5, KindFloat},
		{"pointer", &x, KindPointer},
		{"nil pointer", nilPtr, KindPointer},
		{"unsafe pointer", unsafe.Pointer(&x), KindPointer},
		{"untyped nil", nil, KindPointer},
		{"string", "s", KindString},
		{"named string", label("l"), KindString},
		{"byte slice", []byte("b"), KindString},
		{"Arg passes through", Float(1), KindFloat},
		{"struct", struct{}{}, KindInvalid},
		{"int slice", []int{1}, KindInvalid},
		{"map", map[string]int{}, KindInvalid},
		{"error", errors.New("e"), KindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input).Kind(); got != tt.kind {
				t.Errorf("Normalize(%T).Kind() = %v, want %v", tt.input, got, tt.kind)
			}
		})
	}
}

func TestNormalizeValues(t *testing.T) {
	if got := Normalize(true).Int64(); got != 1 {
		t.Errorf("Normalize(true) = %d", got)
	}
	if got := Normalize(uint64(math.MaxUint64)).Int64(); got != -1 {
		t.Errorf("Normalize(MaxUint64) = %d, want -1", got)
	}
	if got := Normalize(float32(0.5)).Float64(); got != 0.5 {
		t.Errorf("Normalize(float32) = %g", got)
	}
	if got := Normalize([]byte("abc")).Text(); got != "abc" {
		t.Errorf("Normalize([]byte) = %q", got)
	}
	if got := Normalize(nil).Addr(); got != 0 {
		t.Errorf("Normalize(nil) = %#x", got)
	}
}

func TestFormatScenarios(t *testing.T) {
	got, err := Format("%s is %d years old", "Ada", 36)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got != "Ada is 36 years old" {
		t.Errorf("Format() = %q", got)
	}

	_, err = Format("%d", "not a number")
	if !errors.Is(err, ErrWrongArgumentKind) {
		t.Errorf("Format(%%d, string) error = %v, want ErrWrongArgumentKind", err)
	}
}

func TestRendering(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		expected string
	}{
		{"no conversions", "plain text", nil, "plain text"},
		{"escape only", "100%%", nil, "100%"},
		{"escape between", "%d%%%d", []any{1, 2}, "1%2"},
		{"negative int", "%d", []any{-42}, "-42"},
		{"bool", "%d", []any{false}, "0"},
		{"named int", "%d", []any{color(3)}, "3"},
		{"char", "%c%c", []any{'o', byte('k')}, "ok"},
		{"char truncates to a byte", "%c", []any{0x141}, "A"},
		{"nil pointer", "%p", []any{nil}, "(nil)"},
		{"fixed", "%f", []any{3.14159265}, "3.141593"},
		{"fixed float32", "%f", []any{float32(0.5)}, "0.500000"},
		{"fixed infinity", "%f", []any{math.Inf(-1)}, "-inf"},
		{"general", "%g", []any{0.0001}, "0.0001"},
		{"general exponent", "%g", []any{1e20}, "1e+20"},
		{"general trims zeros", "%g", []any{2.5}, "2.5"},
		{"general nan", "%g", []any{math.NaN()}, "nan"},
		{"string", "[%s]", []any{"x y"}, "[x y]"},
		{"byte slice", "%s", []any{[]byte("raw")}, "raw"},
		{"named string", "%s", []any{label("lbl")}, "lbl"},
		{"non-utf8 bytes verbatim", "%s", []any{"\xff\x00"}, "\xff\x00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.template, tt.args...)
			if err != nil {
				t.Fatalf("Format(%q) error = %v", tt.template, err)
			}
			if got != tt.expected {
				t.Errorf("Format(%q) = %q, want %q", tt.template, got, tt.expected)
			}
		})
	}
}

func TestRenderPointer(t *testing.T) {
	x := 1
	got, err := Format("%p", &x)
	if err != nil {
		t.Fatalf("Format(%%p) error = %v", err)
	}
	if !strings.HasPrefix(got, "0x") || len(got) < 3 {
		t.Errorf("Format(%%p) = %q, want 0x followed by the address", got)
	}
	if strings.Trim(got[2:], "0123456789abcdef") != "" {
		t.Errorf("Format(%%p) = %q, want lower case hex digits", got)
	}

	if got := MustFormat("%p", Pointer(0xbeef)); got != "0xbeef" {
		t.Errorf("Format(%%p, 0xbeef) = %q", got)
	}
}

func TestCheckFailures(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		cause    error
		code     mdwerror.Code
	}{
		{"more specifiers than args", "%d %d", []any{1}, ErrTooFewSpecifiers, mdwerror.CodeFormatTooFewSpecifiers},
		{"specifier without args", "%s", nil, ErrTooFewSpecifiers, mdwerror.CodeFormatTooFewSpecifiers},
		{"more args than specifiers", "%d", []any{1, 2}, ErrTooManySpecifiers, mdwerror.CodeFormatTooManySpecifiers},
		{"args without specifiers", "100%%", []any{1}, ErrTooManySpecifiers, mdwerror.CodeFormatTooManySpecifiers},
		{"unknown letter", "%x", []any{1}, ErrInvalidFormatChar, mdwerror.CodeFormatInvalidChar},
		{"width is not supported", "%5d", []any{1}, ErrInvalidFormatChar, mdwerror.CodeFormatInvalidChar},
		{"trailing percent with args", "%d%", []any{1, 2}, ErrInvalidFormatChar, mdwerror.CodeFormatInvalidChar},
		{"trailing percent without args", "50%", nil, ErrTooFewSpecifiers, mdwerror.CodeFormatTooFewSpecifiers},
		{"string for int", "%d", []any{"1"}, ErrWrongArgumentKind, mdwerror.CodeFormatArgumentKind},
		{"int for float", "%f", []any{1}, ErrWrongArgumentKind, mdwerror.CodeFormatArgumentKind},
		{"float for int", "%c", []any{1.0}, ErrWrongArgumentKind, mdwerror.CodeFormatArgumentKind},
		{"string for pointer", "%p", []any{"p"}, ErrWrongArgumentKind, mdwerror.CodeFormatArgumentKind},
		{"pointer for string", "%s", []any{nil}, ErrWrongArgumentKind, mdwerror.CodeFormatArgumentKind},
		{"unsupported type", "%s", []any{struct{}{}}, ErrUnsupportedArgument, mdwerror.CodeFormatUnsupportedArg},
		{"unsupported beats count", "", []any{[]int{1}}, ErrUnsupportedArgument, mdwerror.CodeFormatUnsupportedArg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Format(tt.template, tt.args...)
			if !errors.Is(err, tt.cause) {
				t.Fatalf("Format(%q) error = %v, want %v", tt.template, err, tt.cause)
			}
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("code = %v, want %v", mdwerror.GetCode(err), tt.code)
			}
			if !tt.code.IsProgrammerError() || mdwerror.GetSeverity(err) != mdwerror.SeverityHigh {
				t.Errorf("validation failures must be high severity programmer errors")
			}
			if checkErr := CheckValues(tt.template, tt.args...); !errors.Is(checkErr, tt.cause) {
				t.Errorf("CheckValues() = %v, want %v", checkErr, tt.cause)
			}
		})
	}
}

func TestCheckErrorDetails(t *testing.T) {
	err := Check("ok %s then %f", String("a"), Int(1))

	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		t.Fatalf("Check() error %v is not structured", err)
	}

	want := map[string]any{
		"template":  "ok %s then %f",
		"specifier": "f",
		"position":  11,
		"argument":  1,
		"expected":  "float",
		"actual":    "int",
	}
	for key, value := range want {
		if got, _ := mdwErr.Detail(key); got != value {
			t.Errorf("Detail(%q) = %v, want %v", key, got, value)
		}
	}
	if mdwErr.Operation() != "formatx.Check" {
		t.Errorf("Operation() = %q", mdwErr.Operation())
	}
}

func TestCheckArgs(t *testing.T) {
	if err := Check("%d %c %p %f %g %s %%", Int(1), Int('c'), Pointer(0), Float(1), Float(2), String("s")); err != nil {
		t.Errorf("Check() error = %v", err)
	}
	if err := Check(""); err != nil {
		t.Errorf("Check(empty) error = %v", err)
	}
}

func TestMustFormat(t *testing.T) {
	if got := MustFormat("%d", 5); got != "5" {
		t.Errorf("MustFormat() = %q", got)
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrTooFewSpecifiers) {
			t.Errorf("MustFormat() panic = %v", r)
		}
	}()
	MustFormat("%d")
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, Options{})

	n, err := p.Print("%s=%d", "x", 1)
	if err != nil || n != 3 {
		t.Fatalf("Print() = %d, %v", n, err)
	}
	n, err = p.PrintLine("!")
	if err != nil || n != 2 {
		t.Fatalf("PrintLine() = %d, %v", n, err)
	}
	if buf.String() != "x=1!\n" {
		t.Errorf("output = %q", buf.String())
	}

	buf.Reset()
	if _, err := p.PrintLine("%d", "bad"); !errors.Is(err, ErrWrongArgumentKind) {
		t.Errorf("PrintLine() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("failed validation wrote %q", buf.String())
	}
}

func TestFprintMatchesFormat(t *testing.T) {
	cases := []struct {
		template string
		args     []any
	}{
		{"%s is %d years old", []any{"Ada", 36}},
		{"%g%%", []any{12.5}},
		{"", nil},
	}

	for _, c := range cases {
		formatted, err := Format(c.template, c.args...)
		if err != nil {
			t.Fatalf("Format() error = %v", err)
		}
		var buf bytes.Buffer
		if _, err := Fprintln(&buf, c.template, c.args...); err != nil {
			t.Fatalf("Fprintln() error = %v", err)
		}
		if buf.String() != formatted+"\n" {
			t.Errorf("Fprintln() = %q, want %q", buf.String(), formatted+"\n")
		}
		buf.Reset()
		if _, err := Fprint(&buf, c.template, c.args...); err != nil || buf.String() != formatted {
			t.Errorf("Fprint() = %q, %v", buf.String(), err)
		}
	}
}

func TestSkipValidation(t *testing.T) {
	p := NewPrinter(nil, Options{SkipValidation: true})

	tests := []struct {
		name     string
		template string
		args     []any
		expected string
	}{
		{"wrong kind", "%d", []any{"x"}, "%!d(string=x)"},
		{"missing", "%d %d", []any{1}, "1 %!d(MISSING)"},
		{"extra", "%d", []any{1, 2.5}, "1%!(EXTRA float=2.5)"},
		{"unknown verb", "%q", []any{1}, "%!q(int=1)"},
		{"no verb", "50%", nil, "50%!(NOVERB)"},
		{"unsupported", "%s", []any{struct{}{}}, "%!s(invalid=struct {})"},
		{"valid still renders", "%s=%g", []any{"k", 0.5}, "k=0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Format(tt.template, tt.args...)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("Format(%q) = %q, want %q", tt.template, got, tt.expected)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if KindPointer.String() != "pointer" || Kind(99).String() != "Kind(99)" {
		t.Errorf("unexpected kind names %q %q", KindPointer, Kind(99))
	}
}
