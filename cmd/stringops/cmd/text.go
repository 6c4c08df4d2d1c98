package cmd

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/stringops/foundation/core/errors"
	"github.com/msto63/stringops/foundation/utils/stringx"
)

func newCaseCmd(a *app, name, short string) *cobra.Command {
	convert := stringx.Lowercase
	if name == "upper" {
		convert = stringx.Uppercase
	}

	return &cobra.Command{
		Use:   name + " [TEXT]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readInput(cmd, args, 0, false)
			if err != nil {
				return err
			}
			return a.emitLine(cmd, convert(s))
		},
	}
}

func newTrimCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trim [TEXT]",
		Short: "Strip spaces, tabs, CR and LF from both ends",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readInput(cmd, args, 0, false)
			if err != nil {
				return err
			}
			return a.emitLine(cmd, stringx.Trim(s))
		},
	}
}

func newDos2UnixCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dos2unix [TEXT]",
		Short: "Convert CR LF line endings to LF",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readInput(cmd, args, 0, false)
			if err != nil {
				return err
			}
			return a.emitLine(cmd, stringx.Dos2Unix(s))
		},
	}
}

func newReplaceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "replace NEEDLE REPLACEMENT [TEXT]",
		Short: "Replace every occurrence of NEEDLE, scanning left to right",
		Long: `Replace every occurrence of NEEDLE with REPLACEMENT. Scanning resumes after
the inserted text, so a replacement containing NEEDLE is never replaced again.`,
		Example: `  stringops replace aa b aaaa     # prints bb`,
		Args:    cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return mdwerrors.PreconditionViolation(mdwerrors.ModuleCLI, "replace", stringx.ErrEmptyNeedle, "non-empty needle")
			}
			s, err := readInput(cmd, args, 2, true)
			if err != nil {
				return err
			}
			return a.emitLine(cmd, stringx.Replace(s, args[0], args[1]))
		},
	}
}

func newURLEncodeCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "urlencode [TEXT]",
		Short: "Percent-encode text for use in a URL",
		Long: `Percent-encode TEXT. Space becomes '+', the bytes 0-9 A-Z a-z - _ . ! ~ * ' ( )
are kept and everything else is written as '%' and lower case hex without a
leading zero. --strict (or url.strict_hex) always writes two hex digits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readInput(cmd, args, 0, true)
			if err != nil {
				return err
			}
			enc := stringx.URLEncoder{StrictHex: strict || (a.cfg != nil && a.cfg.URL.StrictHex)}
			return a.emitLine(cmd, enc.Encode(s))
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "always write two hex digits")
	return cmd
}

func newTokenizeCmd(a *app) *cobra.Command {
	var (
		delim  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "tokenize [TEXT]",
		Short: "Split text on a delimiter, keeping empty fields",
		Long: `Split TEXT on every occurrence of the delimiter. Empty fields are kept,
except that a trailing delimiter does not produce an empty last field.
Tokens are printed one per line, or as a JSON array with --json.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if delim == "" {
				return mdwerrors.PreconditionViolation(mdwerrors.ModuleCLI, "tokenize", stringx.ErrEmptyDelimiter, "non-empty delimiter")
			}
			s, err := readInput(cmd, args, 0, true)
			if err != nil {
				return err
			}

			tokens := stringx.Tokenize(s, delim)
			if asJSON {
				data, err := json.Marshal(tokens)
				if err != nil {
					return err
				}
				return a.emitLine(cmd, string(data))
			}

			// one line per token, empty tokens included
			w, done := a.output(cmd)
			for _, tok := range tokens {
				if _, err := io.WriteString(w, tok+"\n"); err != nil {
					return err
				}
			}
			return done()
		},
	}

	cmd.Flags().StringVarP(&delim, "delim", "d", ",", "delimiter")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print tokens as a JSON array")
	return cmd
}
