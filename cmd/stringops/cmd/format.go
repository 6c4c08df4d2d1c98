package cmd

import (
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/stringops/foundation/core/errors"
	"github.com/msto63/stringops/foundation/utils/formatx"
)

const argHelp = `Arguments are typed by prefix:
  i:42      integer (decimal, 0x hex or 0 octal)
  f:1.5     floating point
  c:x       single byte, for %c
  p:0x1f00  pointer address in hex, p:0 is nil
  s:text    string (also the default without a prefix)`

func newFormatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "format TEMPLATE [ARG...]",
		Short: "Render a checked printf template",
		Long: `Render TEMPLATE with the conversions %d %c %p %f %g %s and the %% escape.
The template is checked against the arguments before anything is printed.

` + argHelp,
		Example: `  stringops format '%s is %d years old' Ada i:36`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseArgs(args[1:])
			if err != nil {
				return err
			}
			s, err := a.printer(nil).Format(args[0], values...)
			if err != nil {
				return err
			}
			return a.emitLine(cmd, s)
		},
	}
}

func newPrintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "print TEMPLATE [ARG...]",
		Short: "Print a checked printf template without a trailing newline",
		Long:  "Print TEMPLATE to standard output exactly as rendered.\n\n" + argHelp,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPrint(cmd, args, false)
		},
	}
}

func newPrintlnCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "println TEMPLATE [ARG...]",
		Short: "Print a checked printf template followed by a newline",
		Long:  "Print TEMPLATE and one newline to standard output.\n\n" + argHelp,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPrint(cmd, args, true)
		},
	}
}

func (a *app) runPrint(cmd *cobra.Command, args []string, line bool) error {
	values, err := parseArgs(args[1:])
	if err != nil {
		return err
	}

	w, done := a.output(cmd)
	p := a.printer(w)
	if line {
		_, err = p.PrintLine(args[0], values...)
	} else {
		_, err = p.Print(args[0], values...)
	}
	if err != nil {
		return err
	}
	return done()
}

func (a *app) printer(w io.Writer) *formatx.Printer {
	opts := formatx.Options{}
	if a.cfg != nil {
		opts.SkipValidation = a.cfg.Format.SkipValidation
	}
	return formatx.NewPrinter(w, opts)
}

func parseArgs(raw []string) ([]any, error) {
	values := make([]any, 0, len(raw))
	for i, s := range raw {
		v, err := parseArg(s)
		if err != nil {
			return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleCLI).
				Operation("parseArgs").
				Messagef("argument %d: %q", i+1, s).
				Cause(err).
				Detail("position", i+1).
				Build()
		}
		values = append(values, v)
	}
	return values, nil
}

func parseArg(s string) (any, error) {
	prefix, value, ok := strings.Cut(s, ":")
	if !ok || len(prefix) != 1 {
		return s, nil
	}

	switch prefix {
	case "i":
		return strconv.ParseInt(value, 0, 64)
	case "f":
		return strconv.ParseFloat(value, 64)
	case "c":
		if len(value) != 1 {
			return nil, mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "parseArg", s, "exactly one byte after c:")
		}
		return formatx.Int(int64(value[0])), nil
	case "p":
		addr, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(value), "0x"), 16, 64)
		if err != nil {
			return nil, err
		}
		return formatx.Pointer(uintptr(addr)), nil
	case "s":
		return value, nil
	default:
		return s, nil
	}
}
