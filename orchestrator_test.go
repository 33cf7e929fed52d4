package launchpad

import (
	"context"
	"testing"
)

func connectedOrchestrator(t *testing.T, ledger *fakeLedger) *Orchestrator {
	t.Helper()
	c := startedController(t, ledger)
	session, _ := NewSession("alice-session-key")
	if err := c.Connect(context.Background(), session); err != nil {
		t.Fatal(err)
	}
	return NewOrchestrator(c)
}

func TestOrchestratorInvest(t *testing.T) {
	ledger := newFakeLedger()
	o := connectedOrchestrator(t, ledger)

	// Offering 2 is active at tick 2500 and has no cap.
	if err := o.Invest(context.Background(), "2", A(50_000)); err != nil {
		t.Fatalf("Invest() failed: %v", err)
	}

	if len(ledger.invested) != 1 || !ledger.invested[0].Equal(A(50_000)) {
		t.Errorf("ledger saw %v", ledger.invested)
	}
	if got := o.State(); got.Status != TxSuccess || got.Kind != TxInvest {
		t.Errorf("State() = %+v", got)
	}
}

func TestOrchestratorInvestValidation(t *testing.T) {
	testCases := []struct {
		name       string
		offeringID string
		amount     Amount
	}{
		{name: "unknown offering", offeringID: "99", amount: A(50_000)},
		{name: "window closed", offeringID: "1", amount: A(50_000)},
		{name: "zero amount", offeringID: "2", amount: A(0)},
		{name: "non-numeric id", offeringID: "two", amount: A(50_000)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ledger := newFakeLedger()
			o := connectedOrchestrator(t, ledger)

			if err := o.Invest(context.Background(), tc.offeringID, tc.amount); err == nil {
				t.Fatal("Invest() succeeded, want validation error")
			}
			// Doomed submissions never reach the rollup.
			if len(ledger.invested) != 0 {
				t.Error("rejected invest was sent anyway")
			}
			if got := o.State(); got.Status != TxError || got.Err == "" {
				t.Errorf("State() = %+v, want ERROR with reason", got)
			}
		})
	}
}

func TestOrchestratorInvestCap(t *testing.T) {
	// Offering 1 is still active at tick 1500 and caps individuals at
	// 500000; the existing 100000 stake counts against it.
	ledger := newFakeLedger()
	ledger.state.Counter = 1500
	o := connectedOrchestrator(t, ledger)

	if err := o.Invest(context.Background(), "1", A(450_000)); err == nil {
		t.Fatal("Invest() above cap succeeded")
	}
	if err := o.Invest(context.Background(), "1", A(400_000)); err != nil {
		t.Fatalf("Invest() at cap failed: %v", err)
	}
}

func TestOrchestratorRequiresWallet(t *testing.T) {
	c := startedController(t, newFakeLedger())
	o := NewOrchestrator(c)

	if err := o.Invest(context.Background(), "2", A(50_000)); err == nil {
		t.Error("anonymous Invest() succeeded")
	}
	if err := o.WithdrawTokens(context.Background(), "1"); err == nil {
		t.Error("anonymous WithdrawTokens() succeeded")
	}
	if err := o.WithdrawBalance(context.Background(), A(1), "0x2a"); err == nil {
		t.Error("anonymous WithdrawBalance() succeeded")
	}
}

func TestOrchestratorWithdrawTokens(t *testing.T) {
	ledger := newFakeLedger()
	o := connectedOrchestrator(t, ledger)

	if err := o.WithdrawTokens(context.Background(), "1"); err != nil {
		t.Fatalf("WithdrawTokens() failed: %v", err)
	}
	if len(ledger.withdraws) != 1 || ledger.withdraws[0] != 1 {
		t.Errorf("ledger saw %v", ledger.withdraws)
	}
}

func TestOrchestratorWithdrawBalance(t *testing.T) {
	ledger := newFakeLedger()
	o := connectedOrchestrator(t, ledger)

	if err := o.WithdrawBalance(context.Background(), A(100_000), "0xdeadbeef"); err != nil {
		t.Fatalf("WithdrawBalance() failed: %v", err)
	}

	if err := o.WithdrawBalance(context.Background(), A(100_000), "not-an-address"); err == nil {
		t.Error("bad address accepted")
	}
	if err := o.WithdrawBalance(context.Background(), A(0), "0x2a"); err == nil {
		t.Error("zero amount accepted")
	}
}

func TestOrchestratorReset(t *testing.T) {
	o := connectedOrchestrator(t, newFakeLedger())
	if err := o.Invest(context.Background(), "2", A(50_000)); err != nil {
		t.Fatal(err)
	}
	o.Reset()
	if got := o.State(); got.Status != TxIdle {
		t.Errorf("State() after Reset = %+v", got)
	}
}
