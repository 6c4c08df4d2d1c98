// File: render.go
// Title: Template Rendering
// Description: Implements the renderer producing C printf output for the
//              supported conversions. Unchecked templates render mismatches as
//              %!verb(...) markers instead of failing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package formatx

import (
	"math"
	"strconv"

	"github.com/msto63/stringops/foundation/utils/stringx"
)

// render appends the rendering of template to buf. It never fails: problems
// a Check would report become inline markers.
func render(buf []byte, template string, args []Arg) []byte {
	next := 0
	for pos := 0; pos < len(template); pos++ {
		c := template[pos]
		if c != '%' {
			buf = append(buf, c)
			continue
		}

		if pos+1 >= len(template) {
			buf = append(buf, "%!(NOVERB)"...)
			break
		}
		pos++
		verb := template[pos]
		if verb == '%' {
			buf = append(buf, '%')
			continue
		}

		if next >= len(args) {
			buf = append(buf, '%', '!', verb)
			buf = append(buf, "(MISSING)"...)
			continue
		}
		arg := args[next]
		next++

		want, ok := expectedKind(verb)
		if !ok || arg.kind != want {
			buf = append(buf, '%', '!', verb, '(')
			buf = append(buf, arg.String()...)
			buf = append(buf, ')')
			continue
		}
		buf = appendArg(buf, verb, arg)
	}

	if next < len(args) {
		buf = append(buf, "%!(EXTRA "...)
		for i, arg := range args[next:] {
			if i > 0 {
				buf = append(buf, ", "...)
			}
			buf = append(buf, arg.String()...)
		}
		buf = append(buf, ')')
	}
	return buf
}

func appendArg(buf []byte, verb byte, arg Arg) []byte {
	switch verb {
	case 'd':
		return strconv.AppendInt(buf, arg.i, 10)
	case 'c':
		return append(buf, byte(arg.i))
	case 'p':
		if arg.p == 0 {
			return append(buf, "(nil)"...)
		}
		buf = append(buf, '0', 'x')
		return strconv.AppendUint(buf, uint64(arg.p), 16)
	case 'f':
		if math.IsNaN(arg.f) || math.IsInf(arg.f, 0) {
			return append(buf, stringx.FormatFloat(arg.f)...)
		}
		return strconv.AppendFloat(buf, arg.f, 'f', 6, 64)
	case 'g':
		return append(buf, stringx.FormatFloat(arg.f)...)
	default:
		return append(buf, arg.s...)
	}
}
