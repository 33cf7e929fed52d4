package launchpad

import (
	"testing"
)

func TestAllocateOversubscribed(t *testing.T) {
	// Target 1M units, supply 10M tokens, raised 1.2M units: every
	// investment is rationed by 833333/1000000.
	target := A(1_000_000)
	supply := Q(10_000_000)
	raised := A(1_200_000)

	got := Allocate(A(100_000), raised, supply, target, true)

	if !got.AllocatedInvestment.Equal(A(83_333)) {
		t.Errorf("AllocatedInvestment = %s, want 83333", got.AllocatedInvestment)
	}
	if !got.Refund.Equal(A(16_667)) {
		t.Errorf("Refund = %s, want 16667", got.Refund)
	}
	if !got.Tokens.Equal(Q(666_664)) {
		t.Errorf("Tokens = %s, want 666664", got.Tokens)
	}
}

func TestAllocateNotOversubscribed(t *testing.T) {
	target := A(1_000_000)
	supply := Q(10_000_000)

	got := Allocate(A(250_000), A(800_000), supply, target, false)

	if !got.AllocatedInvestment.Equal(A(250_000)) {
		t.Errorf("AllocatedInvestment = %s, want the full investment", got.AllocatedInvestment)
	}
	if !got.Refund.IsZero() {
		t.Errorf("Refund = %s, want 0", got.Refund)
	}
	// 8M distributable * 250000 / 1M
	if !got.Tokens.Equal(Q(2_000_000)) {
		t.Errorf("Tokens = %s, want 2000000", got.Tokens)
	}
}

func TestAllocateZeroRaise(t *testing.T) {
	got := Allocate(A(0), A(0), Q(10_000_000), A(1_000_000), false)
	if !got.Tokens.IsZero() || !got.AllocatedInvestment.IsZero() || !got.Refund.IsZero() {
		t.Errorf("zero raise allocation = %+v, want empty", got)
	}
}

func TestAllocateZeroTarget(t *testing.T) {
	// A zero-target row can reach the engine flagged oversubscribed as
	// soon as anything is raised. There is no conversion rate to apply;
	// the stake must come back whole instead of dividing by zero.
	for _, over := range []bool{false, true} {
		got := Allocate(A(100), A(100), Q(1_000), A(0), over)
		if !got.Tokens.IsZero() {
			t.Errorf("oversubscribed=%v: Tokens = %s, want 0", over, got.Tokens)
		}
		if !got.AllocatedInvestment.IsZero() {
			t.Errorf("oversubscribed=%v: AllocatedInvestment = %s, want 0", over, got.AllocatedInvestment)
		}
		if !got.Refund.Equal(A(100)) {
			t.Errorf("oversubscribed=%v: Refund = %s, want the full stake", over, got.Refund)
		}
	}
}

func TestAllocateConservesInvestment(t *testing.T) {
	// allocated + refund must equal the investment exactly, for every
	// stake size, including the ones where the ratio truncates.
	target := A(1_000_000)
	supply := Q(10_000_000)
	raised := A(1_700_001)

	for _, investment := range []int64{1, 2, 999, 83_333, 100_000, 333_334, 1_700_001} {
		al := Allocate(A(investment), raised, supply, target, true)
		sum := al.AllocatedInvestment.Add(al.Refund)
		if !sum.Equal(A(investment)) {
			t.Errorf("investment %d: allocated %s + refund %s = %s",
				investment, al.AllocatedInvestment, al.Refund, sum)
		}
		if al.Refund.IsNegative() || al.AllocatedInvestment.IsNegative() {
			t.Errorf("investment %d: negative component %+v", investment, al)
		}
	}
}

func TestAllocateRationingLossBounded(t *testing.T) {
	// Summing every participant's allocated investment must come out at
	// or just under the target, never above. The truncated fixed-point
	// ratio loses at most one unit per participant.
	target := A(1_000_000)
	supply := Q(10_000_000)

	stakes := []int64{400_000, 350_000, 300_000, 150_000, 1}
	var raised Amount
	for _, s := range stakes {
		raised = raised.Add(A(s))
	}

	var total Amount
	for _, s := range stakes {
		total = total.Add(Allocate(A(s), raised, supply, target, true).AllocatedInvestment)
	}
	if total.GreaterThan(target) {
		t.Fatalf("allocated total %s exceeds target %s", total, target)
	}
	slack := target.Sub(total)
	if slack.GreaterThan(A(len(stakes))) {
		t.Errorf("rationing loss %s exceeds one unit per participant", slack)
	}
}

func TestDistributableSupply(t *testing.T) {
	if got := DistributableSupply(Q(10_000_000)); !got.Equal(Q(8_000_000)) {
		t.Errorf("DistributableSupply = %s, want 8000000", got)
	}
}

func TestTokenPrice(t *testing.T) {
	testCases := []struct {
		name   string
		target Amount
		supply Quantity
		want   string
	}{
		// 10 USDT / 8M tokens: full precision survives.
		{name: "cheap token", target: A(1_000_000), supply: Q(10_000_000), want: "0.00000125"},
		// 1000 USDT / 800 tokens.
		{name: "expensive token", target: A(100_000_000), supply: Q(1_000), want: "1.25"},
		// Sub-millionth prices switch to exponential notation.
		{name: "dust token", target: A(1_000_000), supply: Q(80_000_000_000), want: "1.56e-10"},
		{name: "zero supply", target: A(1_000_000), supply: Q(0), want: "0"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TokenPrice(tc.target, tc.supply).String(); got != tc.want {
				t.Errorf("TokenPrice(%s, %s) = %q, want %q", tc.target, tc.supply, got, tc.want)
			}
		})
	}
}
