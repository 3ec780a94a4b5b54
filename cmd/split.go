package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/perfsplit"
	"github.com/etnz/perfsplit/renderer"
	"github.com/google/subcommands"
)

// splitCmd holds the flags for the 'split' subcommand.
type splitCmd struct {
	splitFlags
	noSummary bool
}

func (*splitCmd) Name() string     { return "split" }
func (*splitCmd) Synopsis() string { return "partition a dataset folder into period folders" }
func (*splitCmd) Usage() string {
	return `psp split -i <inception> -s <source-folder> [-f <frequency>] [-base-dir <dir>]

  Partitions the source folder's holdings and transactions into one folder per
  period between the inception date and the end date taken from the source
  folder name. Each period folder holds the cumulative inception-to-date slice
  of both tables under perf/, plus a verbatim copy of the context_data and
  portfolio folders.

Usage Examples:
# Split a quarterly history into 2023-03-31, 2023-06-30, 2023-07-10.
$ psp split -i 2023-01-01 -s 2023-07-10-extract -f quarterly

`
}

func (c *splitCmd) SetFlags(f *flag.FlagSet) {
	c.splitFlags.SetFlags(f)
	f.BoolVar(&c.noSummary, "no-summary", false, "Do not print the per-period summary after the split")
}

func (c *splitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	splitter, err := c.splitter()
	if err != nil {
		errorf("%v", err)
		return subcommands.ExitUsageError
	}

	res, err := splitter.Run()
	if err != nil {
		errorf("%v", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Wrote %d period folders under %q.\n", len(res.Periods), *baseDir)

	if c.noSummary {
		return subcommands.ExitSuccess
	}

	metaDir := filepath.Join(*baseDir, c.source, perfsplit.PortfolioDir)
	summary, err := perfsplit.Summarize(metaDir, c.source, res)
	if err != nil {
		errorf("split succeeded but summary failed: %v", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SplitMarkdown(summary))
	return subcommands.ExitSuccess
}
