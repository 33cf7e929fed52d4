package launchpad

import (
	"context"
	"fmt"
	"sync"
)

// TxStatus is the lifecycle state of the tracked write operation.
type TxStatus int

const (
	TxIdle TxStatus = iota
	TxPending
	TxSuccess
	TxError
)

func (s TxStatus) String() string {
	switch s {
	case TxIdle:
		return "IDLE"
	case TxPending:
		return "PENDING"
	case TxSuccess:
		return "SUCCESS"
	case TxError:
		return "ERROR"
	default:
		return "unknown"
	}
}

// TxKind identifies which write operation is being tracked.
type TxKind string

const (
	TxInvest          TxKind = "INVEST"
	TxWithdrawTokens  TxKind = "WITHDRAW_TOKENS"
	TxWithdrawBalance TxKind = "WITHDRAW_POINTS"
)

// TxState is the observable state of the single in-flight write. It is
// overwritten, not queued, on each new action: the orchestrator tracks
// one logical write at a time.
type TxState struct {
	Status TxStatus
	Kind   TxKind
	Err    string
}

// Orchestrator sequences user-initiated writes against the rollup.
//
// Each submission validates locally first (no network round trip for a
// doomed command), moves the state to PENDING, and settles to SUCCESS or
// ERROR. On success the controller is refreshed before the result is
// considered authoritative; local state is never optimistically updated.
//
// The orchestrator does not guard against concurrent submissions;
// callers disable their submit paths while a write is PENDING.
type Orchestrator struct {
	ctrl *Controller

	mu    sync.Mutex
	state TxState
}

// NewOrchestrator creates an orchestrator bound to a controller. Writes
// use the controller's current session and its ledger.
func NewOrchestrator(ctrl *Controller) *Orchestrator {
	return &Orchestrator{ctrl: ctrl}
}

// State returns the current transaction state.
func (o *Orchestrator) State() TxState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Reset returns the orchestrator to IDLE explicitly.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = TxState{}
}

func (o *Orchestrator) set(s TxState) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}

// Invest submits an invest command for the offering. Validation runs
// against the controller's current snapshot: window open, positive
// amount, per-participant cap.
func (o *Orchestrator) Invest(ctx context.Context, offeringID string, amount Amount) error {
	session := o.ctrl.Session()
	if session.IsAnonymous() {
		return o.fail(TxInvest, fmt.Errorf("wallet not connected"))
	}

	snap := o.ctrl.Snapshot()
	off, ok := snap.Offering(offeringID)
	if !ok {
		return o.fail(TxInvest, fmt.Errorf("unknown offering %q", offeringID))
	}
	var current Amount
	if pos, ok := snap.Position(offeringID); ok {
		current = pos.Invested
	}
	if err := ValidateInvestment(amount, current, off, snap.Clock.Tick); err != nil {
		return o.fail(TxInvest, err)
	}

	id, err := offeringNumber(offeringID)
	if err != nil {
		return o.fail(TxInvest, err)
	}

	o.set(TxState{Status: TxPending, Kind: TxInvest})
	if err := o.ctrl.ledger.Invest(ctx, session.Key(), id, amount); err != nil {
		return o.fail(TxInvest, err)
	}
	return o.settle(ctx, TxInvest)
}

// WithdrawTokens claims the allocated tokens (and any refund) of an
// ended offering.
func (o *Orchestrator) WithdrawTokens(ctx context.Context, offeringID string) error {
	session := o.ctrl.Session()
	if session.IsAnonymous() {
		return o.fail(TxWithdrawTokens, fmt.Errorf("wallet not connected"))
	}

	id, err := offeringNumber(offeringID)
	if err != nil {
		return o.fail(TxWithdrawTokens, err)
	}

	o.set(TxState{Status: TxPending, Kind: TxWithdrawTokens})
	if err := o.ctrl.ledger.WithdrawTokens(ctx, session.Key(), id); err != nil {
		return o.fail(TxWithdrawTokens, err)
	}
	return o.settle(ctx, TxWithdrawTokens)
}

// WithdrawBalance sends balance units to an external address.
func (o *Orchestrator) WithdrawBalance(ctx context.Context, amount Amount, address string) error {
	session := o.ctrl.Session()
	if session.IsAnonymous() {
		return o.fail(TxWithdrawBalance, fmt.Errorf("wallet not connected"))
	}
	if !amount.IsPositive() {
		return o.fail(TxWithdrawBalance, ErrNonPositiveAmount)
	}
	to, err := ParseWideAddress(address)
	if err != nil {
		return o.fail(TxWithdrawBalance, err)
	}

	o.set(TxState{Status: TxPending, Kind: TxWithdrawBalance})
	if err := o.ctrl.ledger.WithdrawBalance(ctx, session.Key(), amount, to); err != nil {
		return o.fail(TxWithdrawBalance, err)
	}
	return o.settle(ctx, TxWithdrawBalance)
}

// settle marks the write successful and refreshes the controller so the
// confirmed effect round-trips into the local view.
func (o *Orchestrator) settle(ctx context.Context, kind TxKind) error {
	o.set(TxState{Status: TxSuccess, Kind: kind})
	if err := o.ctrl.RefreshNow(ctx); err != nil {
		return fmt.Errorf("refresh after %s: %w", kind, err)
	}
	return nil
}

// fail records the extracted failure reason and returns it. The state
// stays ERROR until the next submission attempt.
func (o *Orchestrator) fail(kind TxKind, err error) error {
	o.set(TxState{Status: TxError, Kind: kind, Err: err.Error()})
	return err
}

func offeringNumber(id string) (uint64, error) {
	var n uint64
	if _, err := fmt.Sscanf(id, "%d", &n); err != nil {
		return 0, fmt.Errorf("offering id %q is not numeric: %w", id, err)
	}
	return n, nil
}
