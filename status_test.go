package launchpad

import "testing"

func TestResolveStatus(t *testing.T) {
	const (
		start = Tick(1000)
		end   = Tick(2000)
	)
	target := A(1_000_000)

	testCases := []struct {
		name   string
		now    Tick
		raised Amount
		want   Status
	}{
		{name: "before window", now: 999, raised: A(0), want: StatusPending},
		{name: "at start", now: 1000, raised: A(0), want: StatusActive},
		{name: "inside window", now: 1500, raised: A(500_000), want: StatusActive},
		{name: "last active tick", now: 1999, raised: A(2_000_000), want: StatusActive},
		{name: "past end, target met", now: 2000, raised: A(1_000_000), want: StatusEnded},
		{name: "past end, oversubscribed", now: 2500, raised: A(1_200_000), want: StatusEnded},
		// The asymmetric rule: an undersubscribed offering is never
		// forcibly closed, it keeps accepting investment.
		{name: "past end, undersubscribed", now: 2500, raised: A(999_999), want: StatusActive},
		{name: "long past end, undersubscribed", now: 100_000, raised: A(1), want: StatusActive},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveStatus(tc.now, start, end, tc.raised, target)
			if got != tc.want {
				t.Errorf("ResolveStatus(now=%d, raised=%s) = %s, want %s", tc.now, tc.raised, got, tc.want)
			}
		})
	}
}

func TestResolveStatusZeroTarget(t *testing.T) {
	// A zero-target offering has zero progress and so can never end.
	got := ResolveStatus(5000, 0, 100, A(1_000_000), A(0))
	if got != StatusActive {
		t.Errorf("zero target past end = %s, want ACTIVE", got)
	}
}

func TestResolveProgress(t *testing.T) {
	target := A(1_000_000)
	testCases := []struct {
		name   string
		raised Amount
		target Amount
		want   Percent
	}{
		{name: "zero raised", raised: A(0), target: target, want: 0},
		{name: "partial", raised: A(250_000), target: target, want: 25},
		{name: "integer floor", raised: A(999_999), target: target, want: 99},
		{name: "exactly at target", raised: A(1_000_000), target: target, want: 100},
		{name: "clamped above target", raised: A(3_000_000), target: target, want: 100},
		{name: "zero target", raised: A(500), target: A(0), want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveProgress(tc.raised, tc.target)
			if !got.Equal(tc.want) {
				t.Errorf("ResolveProgress(%s, %s) = %v, want %v", tc.raised, tc.target, got, tc.want)
			}
		})
	}
}

func TestRawProgressMonotonic(t *testing.T) {
	target := A(1_000_000)
	prev := int64(-1)
	for raised := int64(0); raised <= 2_000_000; raised += 50_000 {
		p := RawProgress(A(raised), target)
		if p < prev {
			t.Fatalf("progress decreased at raised=%d: %d < %d", raised, p, prev)
		}
		prev = p
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusActive, StatusEnded} {
		got, err := ParseStatus(s.String())
		if err != nil {
			t.Fatalf("ParseStatus(%s) failed: %v", s, err)
		}
		if got != s {
			t.Errorf("ParseStatus(%s) = %s", s, got)
		}
	}
	if _, err := ParseStatus("CLOSED"); err == nil {
		t.Error("ParseStatus(CLOSED) succeeded, want error")
	}
}
