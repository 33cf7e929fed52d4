package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/zkcross/launchpad"
	"github.com/zkcross/launchpad/chain"
)

// createCmd holds the flags for the 'create' subcommand.
type createCmd struct {
	symbol string
	target string
	supply string
	cap    string
	start  string
	end    string
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create a new offering (admin)" }
func (*createCmd) Usage() string {
	return `lp create -symbol <ticker> -target <amount> -supply <tokens> [-cap <amount>] -start <tick> -end <tick>

  Creates a new offering with the given terms. The session key must be
  the launchpad admin's. The symbol is at most 8 ASCII characters.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Token ticker, at most 8 characters.")
	f.StringVar(&c.target, "target", "", "Target raise in USDT units.")
	f.StringVar(&c.supply, "supply", "", "Total token supply.")
	f.StringVar(&c.cap, "cap", "0", "Individual investment cap in USDT units. 0 means none.")
	f.StringVar(&c.start, "start", "", "Start tick.")
	f.StringVar(&c.end, "end", "", "End tick.")
}

func (c *createCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	terms, err := c.terms()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
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

	if err := NewLedger().CreateOffering(ctx, session.Key(), terms); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating offering: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created offering %s\n", terms.Symbol)
	return subcommands.ExitSuccess
}

func (c *createCmd) terms() (chain.OfferingTerms, error) {
	var t chain.OfferingTerms
	if c.symbol == "" || c.target == "" || c.supply == "" || c.start == "" || c.end == "" {
		return t, fmt.Errorf("-symbol, -target, -supply, -start and -end are required")
	}
	t.Symbol = launchpad.Symbol(c.symbol)
	if _, err := launchpad.PackSymbol(c.symbol); err != nil {
		return t, err
	}

	var err error
	if t.Target, err = launchpad.ParseAmount(c.target); err != nil {
		return t, fmt.Errorf("target: %w", err)
	}
	if t.Supply, err = launchpad.ParseQuantity(c.supply); err != nil {
		return t, fmt.Errorf("supply: %w", err)
	}
	if t.Cap, err = launchpad.ParseAmount(c.cap); err != nil {
		return t, fmt.Errorf("cap: %w", err)
	}
	if t.Start, err = launchpad.ParseTick(c.start); err != nil {
		return t, fmt.Errorf("start: %w", err)
	}
	if t.End, err = launchpad.ParseTick(c.end); err != nil {
		return t, fmt.Errorf("end: %w", err)
	}
	if t.End <= t.Start {
		return t, fmt.Errorf("end tick %s is not after start tick %s", t.End, t.Start)
	}
	return t, nil
}
