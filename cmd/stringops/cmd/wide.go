package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/stringops/foundation/core/log"
	"github.com/msto63/stringops/foundation/utils/stringx"
)

func newWideCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "wide [TEXT]",
		Short: "Decode text in the locale encoding and print its code points",
		Long: `Decode TEXT from the narrow encoding of the locale (--locale, locale.name or
LC_ALL/LC_CTYPE/LANG) into wide characters, print them as U+XXXX and check
that they encode back to the same bytes.`,
		Example: `  stringops wide --locale en_US.UTF-8 "über"   # U+00FC U+0062 U+0065 U+0072`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readInput(cmd, args, 0, true)
			if err != nil {
				return err
			}

			w, err := stringx.NarrowToWide(a.loc, s)
			if err != nil {
				return err
			}
			back, err := stringx.WideToNarrow(a.loc, w)
			if err != nil {
				return err
			}
			if back != s {
				return fmt.Errorf("round trip through %s changed the text", a.loc.EffectiveCodeset())
			}

			a.logger.Debug("decoded narrow text", mdwlog.Fields{
				"codeset": a.loc.EffectiveCodeset(),
				"bytes":   len(s),
				"runes":   len(w),
			})
			return a.emitLine(cmd, codePoints(w))
		},
	}
}

func codePoints(w []rune) string {
	parts := make([]string, len(w))
	for i, r := range w {
		parts[i] = fmt.Sprintf("U+%04X", r)
	}
	return strings.Join(parts, " ")
}
