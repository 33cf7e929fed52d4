package launchpad

import "fmt"

// Investment validation failures, surfaced before any network call.
var (
	ErrNotOpen           = fmt.Errorf("investment period has not started yet")
	ErrClosed            = fmt.Errorf("investment period has ended")
	ErrNonPositiveAmount = fmt.Errorf("investment amount must be greater than 0")
)

// ValidateInvestment checks an invest command locally so obviously
// doomed submissions never reach the rollup. current is the
// participant's existing stake in the offering.
func ValidateInvestment(amount, current Amount, off Offering, now Tick) error {
	if now < off.Start {
		return ErrNotOpen
	}
	if now >= off.End {
		return ErrClosed
	}
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	// A zero cap means the offering has no individual limit.
	if total := current.Add(amount); off.Cap.IsPositive() && total.GreaterThan(off.Cap) {
		return fmt.Errorf("investment would exceed individual cap of %s", off.Cap)
	}
	return nil
}
