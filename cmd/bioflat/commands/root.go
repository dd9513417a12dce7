// Package commands holds the bioflat subcommands.
package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andrew-torda/bioflat/pkg/config"
	"github.com/andrew-torda/bioflat/pkg/logger"
)

// ErrUsage marks errors caused by a bad command line.
var ErrUsage = errors.New("usage error")

// state is shared by the subcommands of one root command.
type state struct {
	v   *viper.Viper
	cfg *config.Config
}

// usageArgs marks argument count errors so main can pick the exit code.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return errors.Mark(err, ErrUsage)
		}
		return nil
	}
}

func usageErrorf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrUsage)
}

// NewRootCmd builds the whole command tree.
func NewRootCmd() *cobra.Command {
	st := &state{}
	root := &cobra.Command{
		Use:   "bioflat",
		Short: "Read flat file dumps of biological databases",
		Long: `bioflat reads line oriented dumps such as NCBI gene2refseq and TRANSFAC
gene.dat, reports what it could and could not parse, and builds cross
references between identifier schemes.

Settings come from bioflat.toml (searched for upwards from the working
directory), then BIOFLAT_ environment variables such as
BIOFLAT_INPUT_ENCODING, then the flags below.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.load(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.String("encoding", "", "character encoding of the input, an IANA name")
	pf.Bool("mmap", false, "memory map uncompressed input")
	pf.String("log-level", "", "debug, info, warn or error")
	pf.Bool("log-json", false, "log as JSON")
	pf.Int("workers", 0, "files read at the same time by xref")

	root.AddCommand(newIngestCmd(st))
	root.AddCommand(newXrefCmd(st))
	root.AddCommand(newDatasourceCmd())
	root.AddCommand(newSchemaCmd())
	return root
}

// flagKeys maps flags to the config keys they override.
var flagKeys = map[string]string{
	"encoding":  "input.encoding",
	"mmap":      "input.mmap",
	"log-level": "log.level",
	"log-json":  "log.json",
	"workers":   "xref.workers",
}

func (st *state) load(cmd *cobra.Command) error {
	v, err := config.New("")
	if err != nil {
		return err
	}
	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return errors.Wrapf(err, "binding --%s", flag)
			}
		}
	}
	cfg, err := config.Load(v)
	if err != nil {
		return errors.Mark(err, ErrUsage)
	}
	if err := logger.Initialize(cfg.Log); err != nil {
		return errors.Mark(err, ErrUsage)
	}
	st.v, st.cfg = v, cfg
	return nil
}
