package commands

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/andrew-torda/bioflat/pkg/datasource"
)

func newDatasourceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datasource [name]",
		Short: "Look up a data source, or list the catalog",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			subset, _ := cmd.Flags().GetString("subset")
			list := datasource.All()
			if subset != "" {
				sub, ok := datasource.ParseSubset(subset)
				if !ok {
					return usageErrorf("unknown subset %q", subset)
				}
				list = datasource.Members(sub)
			}
			if len(args) == 1 {
				ds, ok := datasource.Parse(args[0])
				if !ok {
					return errors.WithHint(errors.Newf("%q is not a known data source", args[0]),
						"run 'bioflat datasource' for the list")
				}
				list = []datasource.DataSource{ds}
			}
			for _, ds := range list {
				fmt.Fprintf(out, "%s\t%s\t%s\n", ds, ds.Display(), ds.Subsets())
			}
			return nil
		},
	}
	cmd.Flags().String("subset", "", "only list members of a subset: "+
		strings.Join([]string{datasource.GeneOrGeneProduct.String(), datasource.Ontology.String()}, ", "))
	return cmd
}
