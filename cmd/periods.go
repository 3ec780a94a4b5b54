package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/perfsplit"
	"github.com/etnz/perfsplit/date"
	"github.com/etnz/perfsplit/renderer"
	"github.com/google/subcommands"
)

// periodsCmd holds the flags for the 'periods' subcommand.
type periodsCmd struct {
	inception string
	end       string
	source    string
	frequency string
}

func (*periodsCmd) Name() string     { return "periods" }
func (*periodsCmd) Synopsis() string { return "preview the period folders a split would generate" }
func (*periodsCmd) Usage() string {
	return `psp periods -i <inception> (-e <end> | -s <source-folder>) [-f <frequency>]

  Prints the sequence of period end dates between the inception date and the
  end date, without touching the filesystem. The end date is given directly
  with -e, or taken from a source folder name with -s.

Usage Examples:
# The folders of a daily split.
$ psp periods -i 2023-01-15 -e 2023-01-20 -f daily

`
}

func (c *periodsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inception, "i", "", "Inception date (YYYY-MM-DD)")
	f.StringVar(&c.end, "e", "", "End date (YYYY-MM-DD)")
	f.StringVar(&c.source, "s", "", "Source folder name; its YYYY-MM-DD prefix is the end date")
	f.StringVar(&c.frequency, "f", "monthly", "Split frequency (daily, monthly, quarterly, annually)")
}

func (c *periodsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inception, err := date.Parse(c.inception)
	if err != nil {
		errorf("invalid -i inception date: %v", err)
		return subcommands.ExitUsageError
	}
	end, err := c.endDate()
	if err != nil {
		errorf("%v", err)
		return subcommands.ExitUsageError
	}
	frequency, err := date.ParsePeriod(c.frequency)
	if err != nil {
		errorf("invalid -f frequency: %v", err)
		return subcommands.ExitUsageError
	}

	seq, err := date.Sequence(inception, end, frequency)
	if err != nil {
		errorf("%v", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.PeriodsMarkdown(inception, end, frequency, seq))
	return subcommands.ExitSuccess
}

// endDate resolves the end date from -e, or from the -s folder name.
func (c *periodsCmd) endDate() (date.Date, error) {
	switch {
	case c.end != "" && c.source != "":
		return date.Date{}, fmt.Errorf("-e and -s are mutually exclusive")
	case c.end != "":
		return date.Parse(c.end)
	case c.source != "":
		return perfsplit.ParseFolderDate(c.source)
	default:
		return date.Date{}, fmt.Errorf("missing end date: give -e or -s")
	}
}
