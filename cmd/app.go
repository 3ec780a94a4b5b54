// Package cmd implements the CLI application to partition performance datasets.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/perfsplit"
	"github.com/etnz/perfsplit/date"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&splitCmd{}, "partitioning")
	c.Register(&periodsCmd{}, "partitioning")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var baseDir = flag.String("base-dir", ".", "Path to the datasets folder containing the source folder")

// splitFlags are the flags shared by the commands that resolve a full split
// configuration. Validation is pure: each bad value is reported once to the
// caller, which owns the retry policy (there is none, the run just fails).
type splitFlags struct {
	inception string
	source    string
	frequency string
}

func (s *splitFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.inception, "i", "", "Inception date (YYYY-MM-DD)")
	f.StringVar(&s.source, "s", "", "Source folder name under -base-dir; its YYYY-MM-DD prefix is the end date")
	f.StringVar(&s.frequency, "f", "monthly", "Split frequency (daily, monthly, quarterly, annually)")
}

// splitter validates the flags and builds the configured Splitter.
func (s *splitFlags) splitter() (*perfsplit.Splitter, error) {
	if s.source == "" {
		return nil, fmt.Errorf("missing -s source folder name")
	}
	if _, err := perfsplit.ParseFolderDate(s.source); err != nil {
		return nil, err
	}
	inception, err := date.Parse(s.inception)
	if err != nil {
		return nil, fmt.Errorf("invalid -i inception date: %w", err)
	}
	frequency, err := date.ParsePeriod(s.frequency)
	if err != nil {
		return nil, fmt.Errorf("invalid -f frequency: %w", err)
	}
	return &perfsplit.Splitter{
		BaseDir:   *baseDir,
		Source:    s.source,
		Inception: inception,
		Period:    frequency,
	}, nil
}

// errorf reports a command error on stderr.
func errorf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
