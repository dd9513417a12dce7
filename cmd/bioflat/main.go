package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/andrew-torda/bioflat/cmd/bioflat/commands"
	"github.com/andrew-torda/bioflat/pkg/common"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bioflat:", err)
		for _, h := range errors.GetAllHints(err) {
			fmt.Fprintln(os.Stderr, "hint:", h)
		}
		if errors.Is(err, commands.ErrUsage) {
			os.Exit(common.ExitUsageError)
		}
		os.Exit(common.ExitFailure)
	}
	os.Exit(common.ExitSuccess)
}
