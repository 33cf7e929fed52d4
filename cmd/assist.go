package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/zkcross/launchpad"
	"github.com/zkcross/launchpad/agent"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `lp assist [initial question]

  Starts an interactive session with the AI assistant. The assistant
  reads the launchpad state through read-only tools; it never sends
  transactions.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	ctrl := launchpad.NewController(NewLedger())
	session, err := Session()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := ctrl.Start(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error loading launchpad state:", err)
		return subcommands.ExitFailure
	}
	defer ctrl.Close()
	if !session.IsAnonymous() {
		if err := ctrl.Connect(ctx, session); err != nil {
			fmt.Fprintln(os.Stderr, "Error connecting:", err)
			return subcommands.ExitFailure
		}
	}

	analyst := agent.NewAnalyst(ctrl.Snapshot)
	researcher := agent.NewResearcher()
	a := agent.New(os.Stdout, os.Stdin, analyst, researcher)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
