package launchpad

import (
	"context"
	"errors"
)

// ErrNoData marks a participant read for which the rollup holds nothing
// yet (a 404 on the query surface). Callers treat it as an empty result,
// not a failure.
var ErrNoData = errors.New("no data recorded for participant")

// ErrAlreadyRegistered marks an install command for an identity the
// rollup already knows. Registration is idempotent, so this is
// normalized to success by every caller.
var ErrAlreadyRegistered = errors.New("participant already registered")

// State is the single-round-trip ledger state query: the caller's
// account view plus the global counters.
type State struct {
	Balance           Amount
	Nonce             uint64
	Registered        bool
	Counter           Tick
	TotalParticipants int64
	TotalOfferings    int64
}

// OfferingRecord is the raw offering row as the rollup query surface
// returns it. All numeric fields travel as decimal strings.
type OfferingRecord struct {
	OfferingID  string `json:"projectId"`
	TokenSymbol Symbol `json:"tokenSymbol"`
	Name        string `json:"projectName,omitempty"`
	Description string `json:"description,omitempty"`
	Target      string `json:"targetAmount"`
	Supply      string `json:"tokenSupply"`
	Cap         string `json:"maxIndividualCap"`
	Start       string `json:"startTime"`
	End         string `json:"endTime"`
	Raised      string `json:"totalRaised"`
	Investors   string `json:"investorCount"`
	Created     string `json:"createdTime"`
}

// PositionRecord is a participant's raw stake row in one offering.
type PositionRecord struct {
	Pid             []string `json:"pid"`
	OfferingID      string   `json:"projectId"`
	Invested        string   `json:"investedAmount"`
	TokensWithdrawn bool     `json:"tokensWithdrawn"`
	RefundWithdrawn bool     `json:"refundWithdrawn"`
	InvestedAt      string   `json:"investmentTime"`
	TokenSymbol     Symbol   `json:"tokenSymbol"`
}

// InvestmentRecord is one raw invest event from a participant's history.
type InvestmentRecord struct {
	Index      string   `json:"index"`
	Pid        []string `json:"pid"`
	OfferingID string   `json:"projectId"`
	Amount     string   `json:"amount"`
	Timestamp  string   `json:"timestamp"`
	TxHash     string   `json:"txHash,omitempty"`
}

// WithdrawalRecord is one raw withdrawal event from a participant's
// history.
type WithdrawalRecord struct {
	Index        string   `json:"index"`
	Pid          []string `json:"pid"`
	OfferingID   string   `json:"projectId"`
	TokenAmount  string   `json:"tokenAmount"`
	RefundAmount string   `json:"refundAmount"`
	Timestamp    string   `json:"timestamp"`
	TxHash       string   `json:"txHash,omitempty"`
}

// Ledger is the remote rollup as this package needs to see it: a handful
// of snapshot reads and the sequenced write commands. The chain package
// provides the HTTP implementation; tests substitute fakes.
//
// Reads keyed by Identity return ErrNoData when the rollup holds nothing
// for that participant. All writes are arbitrated remotely; a rejection
// surfaces as an error carrying the rollup's reason string.
type Ledger interface {
	// QueryState returns the caller's balance and nonce together with
	// the global clock and aggregate counters, in one round trip.
	QueryState(ctx context.Context, key string) (State, error)

	Offerings(ctx context.Context) ([]OfferingRecord, error)
	Offering(ctx context.Context, id string) (OfferingRecord, error)
	Positions(ctx context.Context, id Identity) ([]PositionRecord, error)
	Investments(ctx context.Context, id Identity) ([]InvestmentRecord, error)
	Withdrawals(ctx context.Context, id Identity) ([]WithdrawalRecord, error)

	// Install registers the caller's identity. Installing an identity
	// that already exists returns ErrAlreadyRegistered.
	Install(ctx context.Context, key string) error
	Invest(ctx context.Context, key string, offeringID uint64, amount Amount) error
	WithdrawTokens(ctx context.Context, key string, offeringID uint64) error
	WithdrawBalance(ctx context.Context, key string, amount Amount, to WideAddress) error
}
