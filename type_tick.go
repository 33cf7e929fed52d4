package launchpad

import (
	"fmt"
	"strconv"
	"time"
)

// TickDuration is the fixed real-world length of one rollup tick. Every
// duration in the system (offering windows, "time ago" displays, the
// refresh cadence) is expressed in ticks of this length; scheduling math
// uses tick arithmetic, never wall-clock arithmetic.
const TickDuration = 5 * time.Second

// Tick counts in the rollup's scheduling grid.
const (
	TicksPerMinute Tick = 12
	TicksPerHour   Tick = 720
	TicksPerDay    Tick = 17280
	TicksPerWeek   Tick = 120960
)

// Tick is one unit of the global rollup clock. The counter is advanced
// only by the rollup itself and is monotonically increasing.
type Tick int64

// ParseTick parses a tick value from its decimal string representation.
func ParseTick(s string) (Tick, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid tick %q: %w", s, err)
	}
	return Tick(v), nil
}

// Sub returns the number of ticks between t and u.
func (t Tick) Sub(u Tick) Tick { return t - u }

// Duration converts a tick count into the wall-clock duration it spans.
func (t Tick) Duration() time.Duration { return time.Duration(t) * TickDuration }

func (t Tick) String() string { return strconv.FormatInt(int64(t), 10) }

// Ago renders the distance from t back to an earlier tick in coarse
// human units ("3d ago", "just now").
func (t Tick) Ago(earlier Tick) string {
	d := t - earlier
	switch {
	case d < 0:
		return "in the future"
	case d < TicksPerMinute:
		return "just now"
	case d < TicksPerHour:
		return fmt.Sprintf("%dm ago", d/TicksPerMinute)
	case d < TicksPerDay:
		return fmt.Sprintf("%dh ago", d/TicksPerHour)
	default:
		return fmt.Sprintf("%dd ago", d/TicksPerDay)
	}
}

// Clock is a reading of the global tick counter.
//
// An authoritative reading comes from a rollup state query. When no
// snapshot has been observed yet, EstimateClock derives a degraded
// reading from wall-clock time; it carries Authoritative=false and must
// never be persisted as the real counter.
type Clock struct {
	Tick          Tick
	Authoritative bool
}

// ReadClock wraps an authoritative counter value from a state snapshot.
func ReadClock(t Tick) Clock { return Clock{Tick: t, Authoritative: true} }

// EstimateClock derives a low-confidence clock from wall-clock time,
// dividing Unix seconds by the fixed tick duration. It is the fallback
// used before the first snapshot arrives.
func EstimateClock(now time.Time) Clock {
	return Clock{Tick: Tick(now.Unix() / int64(TickDuration/time.Second))}
}

func (c Clock) String() string {
	if c.Authoritative {
		return c.Tick.String()
	}
	return c.Tick.String() + " (estimated)"
}
