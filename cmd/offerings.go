package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/zkcross/launchpad/renderer"
)

// offeringsCmd holds the flags for the 'offerings' subcommand.
type offeringsCmd struct{}

func (*offeringsCmd) Name() string     { return "offerings" }
func (*offeringsCmd) Synopsis() string { return "display the offerings board" }
func (*offeringsCmd) Usage() string {
	return `lp offerings

  Displays every offering on the launchpad with its status, raise
  progress and investor count.
`
}

func (c *offeringsCmd) SetFlags(f *flag.FlagSet) {}

func (c *offeringsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, err := loadSnapshot(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading offerings: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.BoardMarkdown(&snap))
	return subcommands.ExitSuccess
}
