package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/perfsplit/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: this exits early when invoked by the shell.
	completer().Complete("psp")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)
	commander.Register(commander.HelpCommand(), "documentation")
	commander.Register(commander.FlagsCommand(), "documentation")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completer() *complete.Command {
	frequencies := predict.Set{"daily", "monthly", "quarterly", "annually"}
	splitFlags := map[string]complete.Predictor{
		"i":        nil,
		"s":        predict.Dirs("*"),
		"f":        frequencies,
		"base-dir": predict.Dirs("*"),
	}
	splitOnly := map[string]complete.Predictor{"no-summary": nil}
	for k, v := range splitFlags {
		splitOnly[k] = v
	}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"split":   {Flags: splitOnly},
			"summary": {Flags: splitFlags},
			"periods": {Flags: map[string]complete.Predictor{
				"i": nil,
				"e": nil,
				"s": predict.Dirs("*"),
				"f": frequencies,
			}},
			"topic": {Args: predict.Set{"readme", "split", "periods", "summary"}},
		},
	}
}
