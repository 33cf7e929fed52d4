package launchpad

import "github.com/shopspring/decimal"

// RatioPrecision is the fixed-point scale used when computing the
// proportional allocation ratio of an oversubscribed offering. Scaling
// by 1e6 before the integer division keeps the rationing loss bounded to
// one unit per participant.
const RatioPrecision = 1_000_000

// Distributable supply: 20% of every offering's token supply is
// permanently reserved and never allocated to participants.
const (
	distributableNum = 80
	distributableDen = 100
)

// UnitsPerUSDT is the fixed conversion rate between raw raise units and
// the reference currency: 100,000 units buy exactly one USDT.
const UnitsPerUSDT = 100_000

// Allocation is the settlement of one participant's stake in an
// offering: how many tokens they receive and how much of their
// investment comes back as a refund.
//
// The engine guarantees AllocatedInvestment + Refund == investment
// exactly; rounding loss only appears between AllocatedInvestment and
// Tokens, where the rollup's own truncation applies.
type Allocation struct {
	Tokens              Quantity
	AllocatedInvestment Amount
	Refund              Amount
}

// DistributableSupply returns the 80% share of a token supply that is
// eligible for participant allocation.
func DistributableSupply(supply Quantity) Quantity {
	return supply.Scale(distributableNum, distributableDen)
}

// Allocate computes a participant's token allocation and refund.
//
// Before any raise is recorded the allocation is empty. When the
// offering is not oversubscribed the whole investment converts at the
// target rate and nothing is refunded. When it is oversubscribed, the
// investment is rationed by target/totalRaised in 1e6 fixed point, the
// rationed part converts at the target rate, and the remainder is
// refunded.
func Allocate(investment, totalRaised Amount, supply Quantity, target Amount, overSubscribed bool) Allocation {
	if totalRaised.IsZero() {
		return Allocation{}
	}
	// A zero target has no conversion rate; nothing can ever convert, so
	// the whole stake comes back. Guarding here keeps a malformed ledger
	// row from taking down the refresh cycle that renders it.
	if target.IsZero() {
		return Allocation{Refund: investment}
	}

	distributable := DistributableSupply(supply)

	if !overSubscribed {
		return Allocation{
			Tokens:              distributable.MulQuo(investment, target),
			AllocatedInvestment: investment,
		}
	}

	precision := A(RatioPrecision)
	ratio := target.Mul(precision).Quo(totalRaised)
	allocated := investment.Mul(ratio).Quo(precision)
	return Allocation{
		Tokens:              distributable.MulQuo(allocated, target),
		AllocatedInvestment: allocated,
		Refund:              investment.Sub(allocated),
	}
}

// Price is a token price in USDT, kept in full precision. Truncation
// happens only in String, never in the value itself.
type Price struct {
	value decimal.Decimal
}

// TokenPrice computes the USDT price of one token: the target raise
// converted to USDT, divided by the distributable supply. A zero supply
// prices at zero.
func TokenPrice(target Amount, supply Quantity) Price {
	distributable := DistributableSupply(supply)
	if distributable.IsZero() {
		return Price{}
	}
	usdt := target.Decimal().Div(decimal.NewFromInt(UnitsPerUSDT))
	// DivisionPrecision defaults to 16 digits, which loses the tail of
	// very cheap tokens. 28 covers the full u64 range of both operands.
	return Price{value: usdt.DivRound(distributable.Decimal(), 28)}
}

// Decimal exposes the exact price value.
func (p Price) Decimal() decimal.Decimal { return p.value }

func (p Price) IsZero() bool { return p.value.IsZero() }

// String formats the price with adaptive precision: the smaller the
// price, the more decimal places, switching to exponential notation
// below one millionth of a USDT.
func (p Price) String() string {
	return formatAdaptive(p.value)
}
