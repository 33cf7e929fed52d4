package launchpad

import (
	"testing"
	"time"
)

func TestParseTick(t *testing.T) {
	testCases := []struct {
		input   string
		want    Tick
		wantErr bool
	}{
		{input: "17280", want: 17280},
		{input: "0", want: 0},
		{input: "", want: 0},
		{input: "12.5", wantErr: true},
		{input: "soon", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseTick(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseTick(%q) succeeded, want error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTick(%q) failed: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseTick(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestTickDurationConversion(t *testing.T) {
	if got := TicksPerDay.Duration(); got != 24*time.Hour {
		t.Errorf("TicksPerDay.Duration() = %s, want 24h", got)
	}
	if got := Tick(12).Duration(); got != time.Minute {
		t.Errorf("Tick(12).Duration() = %s, want 1m", got)
	}
}

func TestTickAgo(t *testing.T) {
	now := Tick(200_000)
	testCases := []struct {
		earlier Tick
		want    string
	}{
		{now, "just now"},
		{now - 5, "just now"},
		{now - TicksPerMinute, "1m ago"},
		{now - 30*TicksPerMinute, "30m ago"},
		{now - 3*TicksPerHour, "3h ago"},
		{now - 2*TicksPerDay, "2d ago"},
		{now + 10, "in the future"},
	}
	for _, tc := range testCases {
		if got := now.Ago(tc.earlier); got != tc.want {
			t.Errorf("Ago(%d) = %q, want %q", tc.earlier, got, tc.want)
		}
	}
}

func TestEstimateClock(t *testing.T) {
	at := time.Unix(1_000_000, 0)
	c := EstimateClock(at)
	if c.Authoritative {
		t.Error("estimated clock must not be authoritative")
	}
	if c.Tick != 200_000 {
		t.Errorf("EstimateClock = %d, want 200000", c.Tick)
	}

	if !ReadClock(42).Authoritative {
		t.Error("state-query clock must be authoritative")
	}
}
