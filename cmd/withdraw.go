package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/zkcross/launchpad"
)

// withdrawCmd holds the flags for the 'withdraw' subcommand.
type withdrawCmd struct {
	offeringID string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "claim tokens and refund from an ended offering" }
func (*withdrawCmd) Usage() string {
	return `lp withdraw -o <id>

  Claims the allocated tokens and any refund from an ended offering the
  participant invested in.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.offeringID, "o", "", "Offering id to withdraw from.")
}

func (c *withdrawCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.offeringID == "" {
		fmt.Fprintln(os.Stderr, "Error: -o is required")
		return subcommands.ExitUsageError
	}

	ctrl, err := connect(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting: %v\n", err)
		return subcommands.ExitFailure
	}
	defer ctrl.Close()

	orch := launchpad.NewOrchestrator(ctrl)
	if err := orch.WithdrawTokens(ctx, c.offeringID); err != nil {
		fmt.Fprintf(os.Stderr, "Error withdrawing: %v\n", err)
		return subcommands.ExitFailure
	}

	if p, ok := ctrl.Snapshot().Position(c.offeringID); ok {
		fmt.Printf("Withdrew %s %s and %s refund from offering %s\n",
			p.Allocation.Tokens, p.Symbol, p.Allocation.Refund.USDT(), c.offeringID)
	} else {
		fmt.Printf("Withdrew from offering %s\n", c.offeringID)
	}
	return subcommands.ExitSuccess
}
