package launchpad

import "fmt"

// Status is the lifecycle phase of an offering, derived from the global
// tick counter and the raise progress. It is never stored on the rollup;
// clients recompute it on every refresh.
type Status int

const (
	// StatusPending means the offering window has not opened yet.
	StatusPending Status = iota
	// StatusActive means the window is open, or the window has elapsed
	// without the raise reaching its target.
	StatusActive
	// StatusEnded means the window has elapsed and the target was met.
	StatusEnded
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "PENDING"
	case StatusActive:
		return "ACTIVE"
	case StatusEnded:
		return "ENDED"
	default:
		return "unknown"
	}
}

// ParseStatus parses a string into a Status.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "PENDING":
		return StatusPending, nil
	case "ACTIVE":
		return StatusActive, nil
	case "ENDED":
		return StatusEnded, nil
	default:
		return 0, fmt.Errorf("unknown status: %q", s)
	}
}

// ResolveStatus derives the lifecycle phase of an offering at the given
// tick.
//
// An offering whose window has elapsed is ENDED only if the raise reached
// its target; otherwise it stays ACTIVE rather than being forcibly
// closed. Product has confirmed this asymmetry as an anti-premature-
// closure policy: an undersubscribed raise keeps accepting investment
// past its nominal end tick.
func ResolveStatus(now, start, end Tick, raised, target Amount) Status {
	switch {
	case now < start:
		return StatusPending
	case now < end:
		return StatusActive
	case RawProgress(raised, target) >= 100:
		return StatusEnded
	default:
		return StatusActive
	}
}

// RawProgress returns raised*100/target in integer arithmetic, unclamped.
// A zero target yields 0.
func RawProgress(raised, target Amount) int64 {
	if target.IsZero() {
		return 0
	}
	return raised.Mul(A(100)).Quo(target).value.IntPart()
}

// ResolveProgress returns the raise progress percentage, clamped at 100.
// It is non-decreasing in raised and reaches exactly 100 at the target.
func ResolveProgress(raised, target Amount) Percent {
	p := RawProgress(raised, target)
	if p > 100 {
		p = 100
	}
	return Percent(p)
}
