package launchpad

import (
	"fmt"
	"sort"
	"strconv"
)

// Position is a participant's stake in one offering, with the allocation
// the current snapshot implies for it.
//
// A position appears once the participant's investment is observed in a
// snapshot. TokensWithdrawn flips true only after a confirmed withdrawal
// has round-tripped through a refresh; nothing here is set
// optimistically.
type Position struct {
	Pid             Identity
	OfferingID      string
	Symbol          Symbol
	Invested        Amount
	TokensWithdrawn bool
	RefundWithdrawn bool
	InvestedAt      Tick

	// Derived from the matching offering at snapshot time.
	Status      Status
	Allocation  Allocation
	CanWithdraw bool
}

// NewPosition shapes a raw stake record against its offering. The
// offering carries the clock-derived status and the raise totals the
// allocation needs.
func NewPosition(rec PositionRecord, off Offering) (Position, error) {
	p := Position{
		OfferingID:      rec.OfferingID,
		Symbol:          rec.TokenSymbol,
		TokensWithdrawn: rec.TokensWithdrawn,
		RefundWithdrawn: rec.RefundWithdrawn,
	}
	if p.Symbol == "" {
		p.Symbol = off.Symbol
	}
	if len(rec.Pid) == 2 {
		hi, err1 := strconv.ParseUint(rec.Pid[0], 10, 64)
		lo, err2 := strconv.ParseUint(rec.Pid[1], 10, 64)
		if err1 != nil || err2 != nil {
			return Position{}, fmt.Errorf("position %s: bad pid %v", rec.OfferingID, rec.Pid)
		}
		p.Pid = Identity{hi, lo}
	}

	var err error
	if p.Invested, err = ParseAmount(rec.Invested); err != nil {
		return Position{}, fmt.Errorf("position %s: invested: %w", rec.OfferingID, err)
	}
	if p.InvestedAt, err = ParseTick(rec.InvestedAt); err != nil {
		return Position{}, fmt.Errorf("position %s: investment time: %w", rec.OfferingID, err)
	}

	p.Status = off.Status
	p.Allocation = off.Allocation(p.Invested)
	p.CanWithdraw = p.Status == StatusEnded && !p.TokensWithdrawn
	return p, nil
}

// Stats is the at-a-glance participant overview derived client-side from
// investments and positions.
type Stats struct {
	Balance         Amount
	TotalInvested   Amount
	TotalTokens     Quantity
	OfferingCount   int
	PortfolioValue  Amount
	UnrealizedGains Amount
}

// NewStats aggregates a participant's investments and positions. Balance
// comes from the same state query as the clock, so the caller passes it
// in.
func NewStats(balance Amount, investments []InvestmentRecord, positions []Position) (Stats, error) {
	s := Stats{Balance: balance, OfferingCount: len(positions)}
	for _, inv := range investments {
		a, err := ParseAmount(inv.Amount)
		if err != nil {
			return Stats{}, fmt.Errorf("investment %s: %w", inv.Index, err)
		}
		s.TotalInvested = s.TotalInvested.Add(a)
	}
	for _, p := range positions {
		s.TotalTokens = s.TotalTokens.Add(p.Allocation.Tokens)
		// Until tokens list on a market there is no better mark than the
		// allocated investment plus the pending refund.
		s.PortfolioValue = s.PortfolioValue.Add(p.Allocation.AllocatedInvestment).Add(p.Allocation.Refund)
	}
	s.UnrealizedGains = s.PortfolioValue.Sub(s.TotalInvested)
	return s, nil
}

// HistoryKind distinguishes the merged history entries.
type HistoryKind string

const (
	HistoryInvest   HistoryKind = "INVEST"
	HistoryWithdraw HistoryKind = "WITHDRAW"
)

// HistoryEntry is one row of a participant's merged transaction history.
type HistoryEntry struct {
	ID         string
	Kind       HistoryKind
	OfferingID string
	Amount     Amount
	Timestamp  Tick
	TxHash     string
}

// NewHistory merges invest and withdrawal events into a single feed,
// newest first. Events without a hash get a synthetic one from their
// ledger index.
func NewHistory(investments []InvestmentRecord, withdrawals []WithdrawalRecord) ([]HistoryEntry, error) {
	entries := make([]HistoryEntry, 0, len(investments)+len(withdrawals))
	for i, inv := range investments {
		a, err := ParseAmount(inv.Amount)
		if err != nil {
			return nil, fmt.Errorf("investment %s: %w", inv.Index, err)
		}
		t, err := ParseTick(inv.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("investment %s: %w", inv.Index, err)
		}
		entries = append(entries, HistoryEntry{
			ID:         fmt.Sprintf("inv_%d", i),
			Kind:       HistoryInvest,
			OfferingID: inv.OfferingID,
			Amount:     a,
			Timestamp:  t,
			TxHash:     orSyntheticHash(inv.TxHash, inv.Index),
		})
	}
	for i, wdr := range withdrawals {
		a, err := ParseAmount(wdr.TokenAmount)
		if err != nil {
			return nil, fmt.Errorf("withdrawal %s: %w", wdr.Index, err)
		}
		t, err := ParseTick(wdr.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("withdrawal %s: %w", wdr.Index, err)
		}
		entries = append(entries, HistoryEntry{
			ID:         fmt.Sprintf("wdr_%d", i),
			Kind:       HistoryWithdraw,
			OfferingID: wdr.OfferingID,
			Amount:     a,
			Timestamp:  t,
			TxHash:     orSyntheticHash(wdr.TxHash, wdr.Index),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp > entries[j].Timestamp
	})
	return entries, nil
}

func orSyntheticHash(hash, index string) string {
	if hash != "" {
		return hash
	}
	return "0x" + index
}
