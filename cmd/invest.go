package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/zkcross/launchpad"
	"github.com/zkcross/launchpad/renderer"
)

// investCmd holds the flags for the 'invest' subcommand.
type investCmd struct {
	offeringID string
	amount     string
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "invest into an active offering" }
func (*investCmd) Usage() string {
	return `lp invest -o <id> -a <amount>

  Commits the amount into the offering. The investment is validated
  locally against the offering window and the individual cap before the
  command is sent, then the local view is refreshed.
`
}

func (c *investCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.offeringID, "o", "", "Offering id to invest into.")
	f.StringVar(&c.amount, "a", "", "Amount in USDT units.")
}

func (c *investCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.offeringID == "" || c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -o and -a are required")
		return subcommands.ExitUsageError
	}
	amount, err := launchpad.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	ctrl, err := connect(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting: %v\n", err)
		return subcommands.ExitFailure
	}
	defer ctrl.Close()

	orch := launchpad.NewOrchestrator(ctrl)
	if err := orch.Invest(ctx, c.offeringID, amount); err != nil {
		fmt.Fprintf(os.Stderr, "Error investing: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Invested %s into offering %s\n", amount.USDT(), c.offeringID)

	snap := ctrl.Snapshot()
	printMarkdown(renderer.PortfolioMarkdown(&snap))
	return subcommands.ExitSuccess
}
