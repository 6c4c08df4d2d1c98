package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/msto63/stringops/pkg/core/version"
)

func newVersionCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			if !asJSON {
				return a.emitLine(cmd, info.String())
			}
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return err
			}
			return a.emitLine(cmd, string(data))
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}
