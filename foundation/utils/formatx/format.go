// File: format.go
// Title: Formatting Entry Points
// Description: Implements Printer and the package-level Format, Print and
//              PrintLine functions. Output of a single call is written with
//              one Write.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package formatx

import (
	"io"
	"os"
)

// Options controls a Printer
type Options struct {
	// SkipValidation renders without checking the template first.
	// Mismatches then show up as %!verb(...) markers in the output.
	SkipValidation bool
}

// Printer renders templates to a sink
type Printer struct {
	w    io.Writer
	opts Options
}

// NewPrinter returns a Printer writing to w
func NewPrinter(w io.Writer, opts Options) *Printer {
	return &Printer{w: w, opts: opts}
}

// Options returns the printer options
func (p *Printer) Options() Options {
	return p.opts
}

func (p *Printer) render(buf []byte, template string, args []any) ([]byte, error) {
	normalized := NormalizeAll(args)
	if !p.opts.SkipValidation {
		if err := Check(template, normalized...); err != nil {
			return buf, err
		}
	}
	return render(buf, template, normalized), nil
}

// Format renders template into a new string
func (p *Printer) Format(template string, args ...any) (string, error) {
	buf, err := p.render(make([]byte, 0, len(template)+16*len(args)), template, args)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// Print renders template to the sink. Nothing is written when validation fails.
func (p *Printer) Print(template string, args ...any) (int, error) {
	buf, err := p.render(nil, template, args)
	if err != nil {
		return 0, err
	}
	return p.w.Write(buf)
}

// PrintLine is Print followed by a single '\n'
func (p *Printer) PrintLine(template string, args ...any) (int, error) {
	buf, err := p.render(nil, template, args)
	if err != nil {
		return 0, err
	}
	return p.w.Write(append(buf, '\n'))
}

var checked = Options{}

// Format renders template into a new string after validating it
func Format(template string, args ...any) (string, error) {
	return NewPrinter(nil, checked).Format(template, args...)
}

// MustFormat is like Format but panics if the template does not match args
func MustFormat(template string, args ...any) string {
	s, err := Format(template, args...)
	if err != nil {
		panic(err)
	}
	return s
}

// Print renders template to standard output
func Print(template string, args ...any) (int, error) {
	return Fprint(os.Stdout, template, args...)
}

// PrintLine renders template and a newline to standard output
func PrintLine(template string, args ...any) (int, error) {
	return Fprintln(os.Stdout, template, args...)
}

// Fprint renders template to w
func Fprint(w io.Writer, template string, args ...any) (int, error) {
	return NewPrinter(w, checked).Print(template, args...)
}

// Fprintln renders template and a newline to w
func Fprintln(w io.Writer, template string, args ...any) (int, error) {
	return NewPrinter(w, checked).PrintLine(template, args...)
}
