package commands

import (
	"bufio"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/bioflat/pkg/diag"
	"github.com/andrew-torda/bioflat/pkg/formats"
	"github.com/andrew-torda/bioflat/pkg/logger"
	"github.com/andrew-torda/bioflat/pkg/xref"
)

func newXrefCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xref <builder> <file>...",
		Short: "Build a cross reference and print it as key<TAB>value",
		Long:  "Build a cross reference from one or more files. Where a key turns up twice,\nthe first value wins. Builders:\n" + builderHelp(),
		Args:  usageArgs(cobra.MinimumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, ok := formats.LookupBuilder(args[0])
			if !ok {
				return usageErrorf("unknown builder %q", args[0])
			}
			invert, _ := cmd.Flags().GetBool("invert")
			m, stats, err := b.Build(cmd.Context(), args[1:], st.cfg.LineOptions(), diag.ZapSink{}, st.cfg.Xref.Workers)
			if err != nil {
				return err
			}
			logger.Logger.Infow("cross reference built", logger.FieldCount, stats.Pairs,
				"records", stats.Records, "duplicates", stats.Duplicates)
			if invert {
				m = m.Invert()
			}
			return writeMap(cmd, m)
		},
	}
	cmd.Flags().Bool("invert", false, "print value<TAB>key instead")
	return cmd
}

func builderHelp() string {
	s := ""
	for _, b := range formats.Builders() {
		s += fmt.Sprintf("  %-22s %s\n", b.Name, b.Help)
	}
	return s
}

// writeMap prints in key order, so output can be diffed.
func writeMap(cmd *cobra.Command, m xref.Map) error {
	type kv struct{ k, v string }
	rows := make([]kv, 0, len(m))
	for k, v := range m {
		rows = append(rows, kv{k.String(), v.String()})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].k < rows[j].k })
	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\n", r.k, r.v)
	}
	return w.Flush()
}
