package cmd

import (
	"context"
	"flag"
	"path/filepath"

	"github.com/etnz/perfsplit"
	"github.com/etnz/perfsplit/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	splitFlags
}

func (*summaryCmd) Name() string { return "summary" }
func (*summaryCmd) Synopsis() string {
	return "display the per-period summary of a split without writing it"
}
func (*summaryCmd) Usage() string {
	return `psp summary -i <inception> -s <source-folder> [-f <frequency>] [-base-dir <dir>]

  Loads the source tables, computes the period sequence, and displays the
  row counts and totals each period folder would hold. Nothing is written:
  this is the dry run of 'psp split'.

`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.splitFlags.SetFlags(f)
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	splitter, err := c.splitter()
	if err != nil {
		errorf("%v", err)
		return subcommands.ExitUsageError
	}

	res, err := splitter.Plan()
	if err != nil {
		errorf("%v", err)
		return subcommands.ExitFailure
	}

	metaDir := filepath.Join(*baseDir, c.source, perfsplit.PortfolioDir)
	summary, err := perfsplit.Summarize(metaDir, c.source, res)
	if err != nil {
		errorf("%v", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SplitMarkdown(summary))
	return subcommands.ExitSuccess
}
