// File: arg.go
// Title: Normalised Format Arguments
// Description: Implements Arg, the tagged value every format argument is
//              normalised to before checking and rendering.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package formatx

import (
	"reflect"
	"strconv"
)

// Kind classifies a normalised argument
type Kind uint8

const (
	// KindInvalid marks a value with no formatting kind
	KindInvalid Kind = iota
	// KindInt is a widened signed integer
	KindInt
	// KindFloat is a float64
	KindFloat
	// KindPointer is a machine address
	KindPointer
	// KindString is a byte string
	KindString
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindInt:     "int",
	KindFloat:   "float",
	KindPointer: "pointer",
	KindString:  "string",
}

// String returns the kind name
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Arg is a normalised format argument
type Arg struct {
	kind Kind
	i    int64
	f    float64
	p    uintptr
	s    string
	typ  string // Go type of an invalid argument
}

// Int returns an integer argument
func Int(v int64) Arg { return Arg{kind: KindInt, i: v} }

// Float returns a float argument
func Float(v float64) Arg { return Arg{kind: KindFloat, f: v} }

// Pointer returns a pointer argument for the address addr
func Pointer(addr uintptr) Arg { return Arg{kind: KindPointer, p: addr} }

// String returns a string argument
func String(v string) Arg { return Arg{kind: KindString, s: v} }

// Kind returns the argument kind
func (a Arg) Kind() Kind { return a.kind }

// Int64 returns the integer value
func (a Arg) Int64() int64 { return a.i }

// Float64 returns the float value
func (a Arg) Float64() float64 { return a.f }

// Addr returns the pointer address
func (a Arg) Addr() uintptr { return a.p }

// Text returns the string value
func (a Arg) Text() string { return a.s }

// String describes the argument as kind=value
func (a Arg) String() string {
	switch a.kind {
	case KindInt:
		return "int=" + strconv.FormatInt(a.i, 10)
	case KindFloat:
		return "float=" + strconv.FormatFloat(a.f, 'g', -1, 64)
	case KindPointer:
		return "pointer=0x" + strconv.FormatUint(uint64(a.p), 16)
	case KindString:
		return "string=" + a.s
	default:
		return "invalid=" + a.typ
	}
}

// Normalize maps v onto an Arg. Integers, bools and named integer types
// widen to int64 (unsigned values above MaxInt64 wrap, like a C long).
// Pointers and unsafe.Pointer keep their address; nil is the null pointer.
// Strings and byte slices become strings. An Arg is returned unchanged and
// every other value is KindInvalid.
func Normalize(v any) Arg {
	switch v := v.(type) {
	case nil:
		return Pointer(0)
	case Arg:
		return v
	case string:
		return String(v)
	case int:
		return Int(int64(v))
	case float64:
		return Float(v)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return Int(1)
		}
		return Int(0)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Int(int64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.Pointer, reflect.UnsafePointer:
		return Pointer(rv.Pointer())
	case reflect.String:
		return String(rv.String())
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return String(string(rv.Bytes()))
		}
	}
	return Arg{kind: KindInvalid, typ: rv.Type().String()}
}

// NormalizeAll normalises every value in args
func NormalizeAll(args []any) []Arg {
	out := make([]Arg, len(args))
	for i, v := range args {
		out[i] = Normalize(v)
	}
	return out
}
