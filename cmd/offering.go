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

// offeringCmd holds the flags for the 'offering' subcommand.
type offeringCmd struct {
	investment string
}

func (*offeringCmd) Name() string     { return "offering" }
func (*offeringCmd) Synopsis() string { return "display one offering's terms" }
func (*offeringCmd) Usage() string {
	return `lp offering [-i <amount>] <id>

  Displays one offering's full terms. With -i, adds an allocation
  preview for that investment amount at the current raise totals.
`
}

func (c *offeringCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.investment, "i", "", "Investment amount in USDT units to preview an allocation for.")
}

func (c *offeringCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one offering id is expected")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	var investment launchpad.Amount
	if c.investment != "" {
		var err error
		if investment, err = launchpad.ParseAmount(c.investment); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing investment: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	snap, err := loadSnapshot(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading offerings: %v\n", err)
		return subcommands.ExitFailure
	}
	off, ok := snap.Offering(id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no offering %q on the board\n", id)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderOffering(renderer.NewOfferingView(off, investment)))
	return subcommands.ExitSuccess
}
