// Package cmd implements the CLI application to browse and invest on
// the launchpad.
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

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&offeringsCmd{}, "browse")
	c.Register(&offeringCmd{}, "browse")
	c.Register(&watchCmd{}, "browse")

	c.Register(&portfolioCmd{}, "portfolio")
	c.Register(&investCmd{}, "portfolio")
	c.Register(&withdrawCmd{}, "portfolio")
	c.Register(&withdrawBalanceCmd{}, "portfolio")

	c.Register(&createCmd{}, "admin")
	c.Register(&updateCmd{}, "admin")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var serverURL = flag.String("server-url", envOr("LAUNCHPAD_SERVER_URL", "http://localhost:3000"), "Base URL of the rollup server")
var sessionKey = flag.String("session-key", os.Getenv("LAUNCHPAD_SESSION_KEY"), "Processing key of the wallet session. Anonymous browsing if empty.")

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// NewLedger creates the chain client for the app server URL.
func NewLedger() *chain.Client {
	return chain.NewClient(*serverURL)
}

// Session builds the wallet session from the app flags.
func Session() (launchpad.Session, error) {
	if *sessionKey == "" {
		return launchpad.AnonymousSession(), nil
	}
	return launchpad.NewSession(*sessionKey)
}

// loadSnapshot performs one synchronization cycle and returns the
// resulting snapshot. When the app has a session key, the controller
// connects first so the snapshot carries the participant collections.
func loadSnapshot(ctx context.Context) (launchpad.Snapshot, error) {
	ctrl := launchpad.NewController(NewLedger())

	session, err := Session()
	if err != nil {
		return launchpad.Snapshot{}, err
	}
	if err := ctrl.Start(ctx); err != nil {
		return launchpad.Snapshot{}, err
	}
	defer ctrl.Close()

	if !session.IsAnonymous() {
		if err := ctrl.Connect(ctx, session); err != nil {
			return launchpad.Snapshot{}, err
		}
	}
	return ctrl.Snapshot(), nil
}

// connect builds a started, authenticated controller for commands that
// send transactions. The caller owns the Close.
func connect(ctx context.Context) (*launchpad.Controller, error) {
	session, err := Session()
	if err != nil {
		return nil, err
	}
	if session.IsAnonymous() {
		return nil, fmt.Errorf("this command requires -session-key (or LAUNCHPAD_SESSION_KEY)")
	}
	ctrl := launchpad.NewController(NewLedger())
	if err := ctrl.Start(ctx); err != nil {
		return nil, err
	}
	if err := ctrl.Connect(ctx, session); err != nil {
		ctrl.Close()
		return nil, err
	}
	return ctrl, nil
}
