package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/subcommands"
	"github.com/zkcross/launchpad"
	"github.com/zkcross/launchpad/renderer"
)

// watchCmd holds the flags for the 'watch' subcommand.
type watchCmd struct {
	interval time.Duration
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "follow the offerings board live" }
func (*watchCmd) Usage() string {
	return `lp watch [-n <interval>]

  Re-renders the offerings board on every synchronization cycle until
  interrupted. The default cadence is one rollup tick (5s).
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.interval, "n", launchpad.RefreshInterval, "Refresh cadence.")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	render := func(s launchpad.Snapshot) {
		// ANSI clear, then the fresh board.
		fmt.Print("\033[2J\033[H")
		printMarkdown(renderer.BoardMarkdown(&s))
	}

	ctrl := launchpad.NewController(NewLedger(),
		launchpad.WithInterval(c.interval),
		launchpad.WithOnRefresh(render),
	)
	if err := ctrl.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting watch: %v\n", err)
		return subcommands.ExitFailure
	}
	defer ctrl.Close()

	render(ctrl.Snapshot())
	<-ctx.Done()
	return subcommands.ExitSuccess
}
