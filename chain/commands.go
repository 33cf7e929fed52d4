package chain

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/zkcross/launchpad"
)

// Rollup command opcodes. The set is fixed by the sequencer.
const (
	opInstall         = 1
	opWithdrawBalance = 2
	opDeposit         = 3
	opInvest          = 4
	opWithdrawTokens  = 5
	opCreateOffering  = 6
	opUpdateOffering  = 7
)

// commandWord packs the leading word of a command: the caller's nonce in
// the high bits, then the total word count, then the opcode.
func commandWord(nonce uint64, opcode uint64, params int) uint64 {
	return nonce<<16 | uint64(params+1)<<8 | opcode
}

// send signs and submits one command under the given key. The sequencer
// arbitrates; a rejection surfaces as an error carrying its reason.
func (c *Client) send(ctx context.Context, key string, opcode uint64, params ...uint64) error {
	// Each command carries the account nonce at submission time, so a
	// fresh state read precedes every send.
	st, err := c.QueryState(ctx, key)
	if err != nil {
		return fmt.Errorf("cannot read nonce: %w", err)
	}

	words := make([]string, 0, len(params)+1)
	words = append(words, strconv.FormatUint(commandWord(st.Nonce, opcode, len(params)), 10))
	for _, p := range params {
		words = append(words, strconv.FormatUint(p, 10))
	}

	env, err := c.post(ctx, "/send", map[string]any{
		"key":     key,
		"command": words,
	})
	if err != nil {
		return err
	}
	if !env.Success {
		if env.Message != "" {
			return fmt.Errorf("command rejected: %s", env.Message)
		}
		return fmt.Errorf("command rejected")
	}
	return nil
}

// Install registers the key's identity on the rollup. The sequencer's
// duplicate-registration rejection is normalized to ErrAlreadyRegistered
// so callers can treat installs as idempotent.
func (c *Client) Install(ctx context.Context, key string) error {
	err := c.send(ctx, key, opInstall)
	if err != nil && strings.Contains(err.Error(), "PlayerAlreadyExist") {
		return launchpad.ErrAlreadyRegistered
	}
	return err
}

// Invest commits amount into the given offering.
func (c *Client) Invest(ctx context.Context, key string, offeringID uint64, amount launchpad.Amount) error {
	return c.send(ctx, key, opInvest, offeringID, amount.Uint64())
}

// WithdrawTokens claims tokens and refund for an ended offering.
func (c *Client) WithdrawTokens(ctx context.Context, key string, offeringID uint64) error {
	return c.send(ctx, key, opWithdrawTokens, offeringID)
}

// WithdrawBalance moves spendable balance out to a settlement address.
// The sequencer expects a token index word first (0, the reference
// currency), then the amount, then the address as two 64-bit halves.
func (c *Client) WithdrawBalance(ctx context.Context, key string, amount launchpad.Amount, to launchpad.WideAddress) error {
	return c.send(ctx, key, opWithdrawBalance, 0, amount.Uint64(), to.Hi, to.Lo)
}

// Deposit credits a participant's balance. Admin only.
func (c *Client) Deposit(ctx context.Context, key string, id launchpad.Identity, amount launchpad.Amount) error {
	return c.send(ctx, key, opDeposit, id[0], id[1], amount.Uint64())
}

// OfferingTerms is everything the create command needs.
type OfferingTerms struct {
	Symbol launchpad.Symbol
	Target launchpad.Amount
	Supply launchpad.Quantity
	Cap    launchpad.Amount
	Start  launchpad.Tick
	End    launchpad.Tick
}

// CreateOffering opens a new offering with the given terms. Admin only.
func (c *Client) CreateOffering(ctx context.Context, key string, t OfferingTerms) error {
	sym, err := launchpad.PackSymbol(string(t.Symbol))
	if err != nil {
		return err
	}
	return c.send(ctx, key, opCreateOffering,
		sym, t.Target.Uint64(), t.Supply.Uint64(), t.Cap.Uint64(),
		uint64(t.Start), uint64(t.End))
}

// Update selectors for UpdateOffering.
const (
	updateCap     = 1
	updateEndTime = 2
)

// UpdateOfferingCap raises or lowers the per-participant cap. Admin only.
func (c *Client) UpdateOfferingCap(ctx context.Context, key string, offeringID uint64, cap launchpad.Amount) error {
	return c.send(ctx, key, opUpdateOffering, offeringID, updateCap, cap.Uint64())
}

// UpdateOfferingEndTime moves the offering's close. Admin only.
func (c *Client) UpdateOfferingEndTime(ctx context.Context, key string, offeringID uint64, end launchpad.Tick) error {
	return c.send(ctx, key, opUpdateOffering, offeringID, updateEndTime, uint64(end))
}
