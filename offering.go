package launchpad

import (
	"fmt"
)

// Offering is one token sale with its accounting fields and the values
// derived from them for the current clock reading.
//
// Offerings are built from rollup snapshots and never mutated in place;
// a refresh replaces the whole collection.
type Offering struct {
	ID          string
	Symbol      Symbol
	Name        string
	Description string

	Target    Amount
	Supply    Quantity
	Cap       Amount
	Start     Tick
	End       Tick
	Raised    Amount
	Investors int64
	Created   Tick

	// Derived at snapshot time.
	OverSubscribed bool
	Status         Status
	Progress       Percent
	Price          Price
}

// NewOffering shapes a raw snapshot record into a display-ready
// offering, classifying its status against the given clock.
func NewOffering(rec OfferingRecord, clock Clock) (Offering, error) {
	o := Offering{
		ID:          rec.OfferingID,
		Symbol:      rec.TokenSymbol,
		Name:        rec.Name,
		Description: rec.Description,
	}
	if o.Name == "" {
		o.Name = fmt.Sprintf("%s Project", rec.TokenSymbol)
	}

	var err error
	if o.Target, err = ParseAmount(rec.Target); err != nil {
		return Offering{}, fmt.Errorf("offering %s: target: %w", rec.OfferingID, err)
	}
	if o.Supply, err = ParseQuantity(rec.Supply); err != nil {
		return Offering{}, fmt.Errorf("offering %s: supply: %w", rec.OfferingID, err)
	}
	if o.Cap, err = ParseAmount(rec.Cap); err != nil {
		return Offering{}, fmt.Errorf("offering %s: cap: %w", rec.OfferingID, err)
	}
	if o.Raised, err = ParseAmount(rec.Raised); err != nil {
		return Offering{}, fmt.Errorf("offering %s: raised: %w", rec.OfferingID, err)
	}
	if o.Start, err = ParseTick(rec.Start); err != nil {
		return Offering{}, fmt.Errorf("offering %s: start: %w", rec.OfferingID, err)
	}
	if o.End, err = ParseTick(rec.End); err != nil {
		return Offering{}, fmt.Errorf("offering %s: end: %w", rec.OfferingID, err)
	}
	if o.Created, err = ParseTick(rec.Created); err != nil {
		return Offering{}, fmt.Errorf("offering %s: created: %w", rec.OfferingID, err)
	}
	if rec.Investors != "" {
		if _, err := fmt.Sscanf(rec.Investors, "%d", &o.Investors); err != nil {
			return Offering{}, fmt.Errorf("offering %s: investors %q: %w", rec.OfferingID, rec.Investors, err)
		}
	}

	o.OverSubscribed = o.Raised.GreaterThan(o.Target)
	o.Status = ResolveStatus(clock.Tick, o.Start, o.End, o.Raised, o.Target)
	o.Progress = ResolveProgress(o.Raised, o.Target)
	o.Price = TokenPrice(o.Target, o.Supply)
	return o, nil
}

// Allocation previews the settlement for a given stake in this offering.
func (o Offering) Allocation(investment Amount) Allocation {
	return Allocate(investment, o.Raised, o.Supply, o.Target, o.OverSubscribed)
}
