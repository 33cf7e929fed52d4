package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/zkcross/launchpad/renderer"
)

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct{}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "display the participant's positions and history" }
func (*portfolioCmd) Usage() string {
	return `lp portfolio

  Displays the connected participant's balance, positions with their
  projected allocations, and the merged transaction history.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {}

func (c *portfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctrl, err := connect(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting: %v\n", err)
		return subcommands.ExitFailure
	}
	defer ctrl.Close()

	snap := ctrl.Snapshot()
	printMarkdown(renderer.PortfolioMarkdown(&snap))
	return subcommands.ExitSuccess
}
