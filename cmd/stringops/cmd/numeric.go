package cmd

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/stringops/foundation/core/errors"
	"github.com/msto63/stringops/foundation/utils/stringx"
)

type converter func(s string, strict bool) (string, error)

func convertAs[T stringx.Number](s string, strict bool) (string, error) {
	if !strict {
		return stringx.ToString(stringx.ToNumeric[T](s)), nil
	}
	v, err := stringx.ParseNumeric[T](s)
	if err != nil {
		return "", err
	}
	return stringx.ToString(v), nil
}

var converters = map[string]converter{
	"int":     convertAs[int],
	"int8":    convertAs[int8],
	"int16":   convertAs[int16],
	"int32":   convertAs[int32],
	"int64":   convertAs[int64],
	"uint":    convertAs[uint],
	"uint8":   convertAs[uint8],
	"uint16":  convertAs[uint16],
	"uint32":  convertAs[uint32],
	"uint64":  convertAs[uint64],
	"float32": convertAs[float32],
	"float64": convertAs[float64],
}

func typeNames() []string {
	names := make([]string, 0, len(converters))
	for name := range converters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newNumericCmd(a *app) *cobra.Command {
	var (
		typeName string
		strict   bool
	)

	cmd := &cobra.Command{
		Use:   "numeric VALUE",
		Short: "Parse VALUE as a number of the given type and print it back",
		Long: `Parse VALUE as the numeric --type and print the result.

The default parse is lenient: leading whitespace is skipped, the longest
numeric prefix is used, no digits give 0 and out of range values are
clamped. --strict requires the whole value to be a number in range.

Types: ` + strings.Join(typeNames(), ", "),
		Example: `  stringops numeric --type int8 300      # 127
  stringops numeric --type float64 1e-7   # 1e-07`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			convert, ok := converters[typeName]
			if !ok {
				return mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "numeric", typeName, strings.Join(typeNames(), "|"))
			}
			s, err := convert(args[0], strict)
			if err != nil {
				return err
			}
			return a.emitLine(cmd, s)
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "int64", "numeric type")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject trailing garbage and out of range values")
	_ = cmd.RegisterFlagCompletionFunc("type", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return typeNames(), cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}
