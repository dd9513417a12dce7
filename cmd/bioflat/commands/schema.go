package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/bioflat/pkg/formats"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema [format]",
		Short: "Print the field documentation of a format as markdown",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, n := range formats.Names() {
					fmt.Fprintln(out, n)
				}
				return nil
			}
			f, ok := formats.Lookup(args[0])
			if !ok {
				return usageErrorf("unknown format %q, try one of %v", args[0], formats.Names())
			}
			fmt.Fprint(out, f.Schema.Markdown())
			return nil
		},
	}
}
