package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/zkcross/launchpad/cmd"
)

func main() {
	// Shell completion runs first: when invoked by the completion hook
	// it prints candidates and exits, otherwise it is a no-op.
	completion().Complete("lp")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	sub := map[string]*complete.Command{
		"offerings":        {},
		"offering":         {Flags: map[string]complete.Predictor{"i": predict.Something}},
		"watch":            {Flags: map[string]complete.Predictor{"n": predict.Something}},
		"portfolio":        {},
		"invest":           {Flags: map[string]complete.Predictor{"o": predict.Something, "a": predict.Something}},
		"withdraw":         {Flags: map[string]complete.Predictor{"o": predict.Something}},
		"withdraw-balance": {Flags: map[string]complete.Predictor{"a": predict.Something, "to": predict.Something}},
		"create":           {},
		"update":           {},
		"topic":            {Args: predict.Set{"allocation", "sessions", "ticks", "readme"}},
		"assist":           {},
	}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"server-url":  predict.Something,
			"session-key": predict.Something,
		},
	}
}
