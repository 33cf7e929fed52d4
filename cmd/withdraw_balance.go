package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/zkcross/launchpad"
)

// withdrawBalanceCmd holds the flags for the 'withdraw-balance' subcommand.
type withdrawBalanceCmd struct {
	amount  string
	address string
}

func (*withdrawBalanceCmd) Name() string     { return "withdraw-balance" }
func (*withdrawBalanceCmd) Synopsis() string { return "move spendable balance to a settlement address" }
func (*withdrawBalanceCmd) Usage() string {
	return `lp withdraw-balance -a <amount> -to <address>

  Moves spendable USDT balance out of the rollup to a settlement
  address (0x-prefixed hex or decimal, up to 128 bits).
`
}

func (c *withdrawBalanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Amount in USDT units.")
	f.StringVar(&c.address, "to", "", "Settlement address.")
}

func (c *withdrawBalanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" || c.address == "" {
		fmt.Fprintln(os.Stderr, "Error: -a and -to are required")
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
	if err := orch.WithdrawBalance(ctx, amount, c.address); err != nil {
		fmt.Fprintf(os.Stderr, "Error withdrawing balance: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Withdrew %s to %s\n", amount.USDT(), c.address)
	return subcommands.ExitSuccess
}
