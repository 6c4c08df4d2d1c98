// File: stringx_test.go
// Title: Unit Tests for Byte String Operations
// Description: Table-driven tests for case conversion, trimming, replacement,
//              dos2unix, URL encoding and tokenizing, including their in-place
//              variants and precondition panics.
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
	"reflect"
	"strings"
	"testing"

	mdwerror "github.com/msto63/stringops/foundation/core/error"
)

func TestCaseConversion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lower string
		upper string
	}{
		{"empty string", "", "", ""},
		{"mixed", "Hello World", "hello world", "HELLO WORLD"},
		{"digits and punctuation", "A1-b2_C3!", "a1-b2_c3!", "A1-B2_C3!"},
		{"non-ascii untouched", "ÄÖÜ straße", "ÄÖÜ straße", "ÄÖÜ STRAßE"},
		{"high bytes untouched", "\xc4\xe4Ab", "\xc4\xe4ab", "\xc4\xe4AB"},
		{"boundaries", "@AZ[`az{", "@az[`az{", "@AZ[`AZ{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lowercase(tt.input); got != tt.lower {
				t.Errorf("Lowercase(%q) = %q, want %q", tt.input, got, tt.lower)
			}
			if got := Uppercase(tt.input); got != tt.upper {
				t.Errorf("Uppercase(%q) = %q, want %q", tt.input, got, tt.upper)
			}

			s := tt.input
			LowercaseInPlace(&s)
			if s != tt.lower {
				t.Errorf("LowercaseInPlace(%q) = %q, want %q", tt.input, s, tt.lower)
			}
			s = tt.input
			UppercaseInPlace(&s)
			if s != tt.upper {
				t.Errorf("UppercaseInPlace(%q) = %q, want %q", tt.input, s, tt.upper)
			}

			b := []byte(tt.input)
			LowercaseBytes(b)
			if string(b) != tt.lower {
				t.Errorf("LowercaseBytes(%q) = %q, want %q", tt.input, b, tt.lower)
			}
			b = []byte(tt.input)
			UppercaseBytes(b)
			if string(b) != tt.upper {
				t.Errorf("UppercaseBytes(%q) = %q, want %q", tt.input, b, tt.upper)
			}
		})
	}
}

func TestCaseLengthPreserved(t *testing.T) {
	inputs := []string{"", "abc", "ÄBC", "\x00\xff", strings.Repeat("Zz", 100)}
	for _, s := range inputs {
		if len(Lowercase(s)) != len(s) || len(Uppercase(s)) != len(s) {
			t.Errorf("case conversion changed the length of %q", s)
		}
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"only trim set", " \t\r\n ", ""},
		{"both ends", "  \thello world\r\n", "hello world"},
		{"inner whitespace kept", "a \t b", "a \t b"},
		{"vertical tab kept", "\vx\v", "\vx\v"},
		{"form feed kept", "\fx", "\fx"},
		{"nbsp kept", "\u00a0x\u00a0", "\u00a0x\u00a0"},
		{"nothing to trim", "x", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Trim(tt.input); got != tt.expected {
				t.Errorf("Trim(%q) = %q, want %q", tt.input, got, tt.expected)
			}
			s := tt.input
			TrimInPlace(&s)
			if s != tt.expected {
				t.Errorf("TrimInPlace(%q) = %q, want %q", tt.input, s, tt.expected)
			}
			if again := Trim(tt.expected); again != tt.expected {
				t.Errorf("Trim is not idempotent on %q", tt.input)
			}
		})
	}
}

func TestReplace(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		needle      string
		replacement string
		expected    string
	}{
		{"non-overlapping", "aaaa", "aa", "b", "bb"},
		{"odd count", "aaa", "aa", "b", "ba"},
		{"replacement contains needle", "aa", "a", "aa", "aaaa"},
		{"no occurrence", "hello", "x", "y", "hello"},
		{"delete", "a-b-c", "-", "", "abc"},
		{"empty input", "", "a", "b", ""},
		{"whole string", "abc", "abc", "xyz", "xyz"},
		{"longer replacement", "1.2.3", ".", "::", "1::2::3"},
		{"needle at both ends", "xax", "x", "yy", "yyayy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Replace(tt.input, tt.needle, tt.replacement); got != tt.expected {
				t.Errorf("Replace(%q, %q, %q) = %q, want %q", tt.input, tt.needle, tt.replacement, got, tt.expected)
			}
			s := tt.input
			ReplaceInPlace(&s, tt.needle, tt.replacement)
			if s != tt.expected {
				t.Errorf("ReplaceInPlace() = %q, want %q", s, tt.expected)
			}
		})
	}
}

func TestReplaceEqualNeedleIsIdentity(t *testing.T) {
	for _, s := range []string{"", "abc", "aaaa", "ab ab ab"} {
		if got := Replace(s, "ab", "ab"); got != s {
			t.Errorf("Replace(%q, ab, ab) = %q", s, got)
		}
	}
}

func TestDos2Unix(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"mixed endings", "a\r\nb\rc\r\n", "a\nb\rc\n"},
		{"lone CR kept", "a\rb", "a\rb"},
		{"LF kept", "a\nb", "a\nb"},
		{"CR CR LF", "a\r\r\nb", "a\r\nb"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dos2Unix(tt.input); got != tt.expected {
				t.Errorf("Dos2Unix(%q) = %q, want %q", tt.input, got, tt.expected)
			}
			s := tt.input
			Dos2UnixInPlace(&s)
			if s != tt.expected {
				t.Errorf("Dos2UnixInPlace(%q) = %q, want %q", tt.input, s, tt.expected)
			}
		})
	}
}

func TestURLEncode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		strict   string
	}{
		{"space and slash", "a b/c", "a+b%2fc", "a+b%2fc"},
		{"safe set", "AZaz09-_.!~*'()", "AZaz09-_.!~*'()", "AZaz09-_.!~*'()"},
		{"low byte without leading zero", "\x05", "%5", "%05"},
		{"NUL", "\x00", "%0", "%00"},
		{"boundary 0x0f", "\x0f", "%f", "%0f"},
		{"boundary 0x10", "\x10", "%10", "%10"},
		{"lowercase hex", "\xff?", "%ff%3f", "%ff%3f"},
		{"utf-8 bytes", "é", "%c3%a9", "%c3%a9"},
		{"reserved characters", "&=+#", "%26%3d%2b%23", "%26%3d%2b%23"},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := URLEncode(tt.input); got != tt.expected {
				t.Errorf("URLEncode(%q) = %q, want %q", tt.input, got, tt.expected)
			}
			if got := URLEncodeStrict(tt.input); got != tt.strict {
				t.Errorf("URLEncodeStrict(%q) = %q, want %q", tt.input, got, tt.strict)
			}
		})
	}
}

func TestURLEncodeSafeSetOnly(t *testing.T) {
	for c := 0; c < 256; c++ {
		out := URLEncode(string([]byte{byte(c)}))
		for i := 0; i < len(out); i++ {
			b := out[i]
			if !isURLSafe(b) && b != '+' && b != '%' {
				t.Fatalf("URLEncode(%#x) = %q contains unsafe byte %q", c, out, b)
			}
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		delim    string
		expected []string
	}{
		{"empty fields kept", "a,,b,", ",", []string{"a", "", "b"}},
		{"no delimiter", "abc", ",", []string{"abc"}},
		{"empty input", "", ",", []string{}},
		{"only delimiter", ",", ",", []string{""}},
		{"leading delimiter", ",a", ",", []string{"", "a"}},
		{"multi-byte delimiter", "a::b::::c", "::", []string{"a", "b", "", "c"}},
		{"delimiter longer than input", "a", "abc", []string{"a"}},
		{"two trailing delimiters", "a,,", ",", []string{"a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input, tt.delim)
			if got == nil {
				t.Fatal("Tokenize() must not return nil")
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tokenize(%q, %q) = %q, want %q", tt.input, tt.delim, got, tt.expected)
			}
		})
	}
}

func TestTokenizeRejoin(t *testing.T) {
	inputs := []string{"a,b,c", "a,,b", ",x", "no-delim"}
	for _, s := range inputs {
		if got := strings.Join(Tokenize(s, ","), ","); got != s {
			t.Errorf("Join(Tokenize(%q)) = %q", s, got)
		}
	}
}

func TestPreconditionPanics(t *testing.T) {
	tests := []struct {
		name  string
		call  func()
		cause error
	}{
		{"replace with empty needle", func() { Replace("abc", "", "x") }, ErrEmptyNeedle},
		{"replace in place with empty needle", func() { s := "abc"; ReplaceInPlace(&s, "", "x") }, ErrEmptyNeedle},
		{"tokenize with empty delimiter", func() { Tokenize("abc", "") }, ErrEmptyDelimiter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}
				err, ok := r.(error)
				if !ok {
					t.Fatalf("panic value %T is not an error", r)
				}
				if !errors.Is(err, tt.cause) {
					t.Errorf("panic error = %v, want cause %v", err, tt.cause)
				}
				if !mdwerror.HasCode(err, mdwerror.CodePreconditionViolation) {
					t.Errorf("panic error code = %v", mdwerror.GetCode(err))
				}
			}()
			tt.call()
		})
	}
}
