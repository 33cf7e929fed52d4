package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/zkcross/launchpad"
)

// updateCmd holds the flags for the 'update' subcommand.
type updateCmd struct {
	offeringID string
	cap        string
	end        string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "update an offering's cap or end time (admin)" }
func (*updateCmd) Usage() string {
	return `lp update -o <id> [-cap <amount>] [-end <tick>]

  Updates one mutable term of an offering. Exactly one of -cap or -end
  must be given. The session key must be the launchpad admin's.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.offeringID, "o", "", "Offering id to update.")
	f.StringVar(&c.cap, "cap", "", "New individual cap in USDT units.")
	f.StringVar(&c.end, "end", "", "New end tick.")
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.offeringID == "" || (c.cap == "") == (c.end == "") {
		fmt.Fprintln(os.Stderr, "Error: -o and exactly one of -cap or -end are required")
		return subcommands.ExitUsageError
	}
	id, err := strconv.ParseUint(c.offeringID, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing offering id: %v\n", err)
		return subcommands.ExitUsageError
	}

	session, err := Session()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if session.IsAnonymous() {
		fmt.Fprintln(os.Stderr, "Error: this command requires -session-key")
		return subcommands.ExitFailure
	}
	ledger := NewLedger()

	if c.cap != "" {
		amount, err := launchpad.ParseAmount(c.cap)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing cap: %v\n", err)
			return subcommands.ExitUsageError
		}
		if err := ledger.UpdateOfferingCap(ctx, session.Key(), id, amount); err != nil {
			fmt.Fprintf(os.Stderr, "Error updating cap: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Updated offering %s cap to %s\n", c.offeringID, amount.USDT())
		return subcommands.ExitSuccess
	}

	end, err := launchpad.ParseTick(c.end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end tick: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := ledger.UpdateOfferingEndTime(ctx, session.Key(), id, end); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating end time: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated offering %s end to tick %s\n", c.offeringID, end)
	return subcommands.ExitSuccess
}
