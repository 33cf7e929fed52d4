package launchpad

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Amount represents an exact number of raise units ("points"). The
// rollup denominates every raise, cap, balance and refund in these
// units; 100,000 of them are worth one USDT.
//
// Amount arithmetic is integer arithmetic: Quo truncates toward zero the
// way the rollup does, and no operation ever goes through floating
// point.
type Amount struct {
	value decimal.Decimal
}

// A builds an Amount from any integer value.
func A[T int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

// ParseAmount parses an amount from its decimal string representation,
// the form the rollup query endpoints use for all numeric fields.
func ParseAmount(s string) (Amount, error) {
	if s == "" {
		return Amount{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if !d.IsInteger() {
		return Amount{}, fmt.Errorf("invalid amount %q: not a whole number of units", s)
	}
	return Amount{value: d}, nil
}

// MustAmount is like ParseAmount but panics on error. For tests and literals.
func MustAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err.Error())
	}
	return a
}

func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Mul(b Amount) Amount { return Amount{value: a.value.Mul(b.value)} }

// Quo performs the truncating integer division used throughout the
// allocation math. Division by zero panics, so callers guard the
// zero-target and zero-raise cases explicitly.
func (a Amount) Quo(b Amount) Amount {
	q, _ := a.value.QuoRem(b.value, 0)
	return Amount{value: q}
}

func (a Amount) Equal(b Amount) bool              { return a.value.Equal(b.value) }
func (a Amount) LessThan(b Amount) bool           { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool        { return a.value.GreaterThan(b.value) }
func (a Amount) GreaterThanOrEqual(b Amount) bool { return a.value.GreaterThanOrEqual(b.value) }
func (a Amount) IsZero() bool                     { return a.value.IsZero() }
func (a Amount) IsPositive() bool                 { return a.value.IsPositive() }
func (a Amount) IsNegative() bool                 { return a.value.IsNegative() }

// Decimal exposes the underlying exact value, for price math that must
// not truncate.
func (a Amount) Decimal() decimal.Decimal { return a.value }

// Uint64 returns the amount as a uint64 for command encoding. Negative
// amounts never reach the wire; validation rejects them first.
func (a Amount) Uint64() uint64 {
	return uint64(a.value.IntPart())
}

// String returns the plain unit count, without grouping.
func (a Amount) String() string { return a.value.String() }

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.value.String() + `"`), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Quantity represents an exact count of offering tokens. It is kept as a
// distinct type from Amount so that raise units and token counts cannot
// be mixed up in the allocation math.
type Quantity struct {
	value decimal.Decimal
}

// Q builds a Quantity from any integer value.
func Q[T int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

// ParseQuantity parses a token count from its decimal string representation.
func ParseQuantity(s string) (Quantity, error) {
	a, err := ParseAmount(s)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: a.value}, nil
}

func (q Quantity) Add(p Quantity) Quantity { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) Equal(p Quantity) bool   { return q.value.Equal(p.value) }
func (q Quantity) IsZero() bool            { return q.value.IsZero() }

// MulQuo computes q*a/b in one exact step, truncating only once at the
// end. This is the shape every allocation formula takes.
func (q Quantity) MulQuo(a, b Amount) Quantity {
	r, _ := q.value.Mul(a.value).QuoRem(b.value, 0)
	return Quantity{value: r}
}

// Scale returns q*num/den with integer truncation, used to carve the
// distributable share out of a total supply.
func (q Quantity) Scale(num, den int64) Quantity {
	r, _ := q.value.Mul(decimal.NewFromInt(num)).QuoRem(decimal.NewFromInt(den), 0)
	return Quantity{value: r}
}

// Decimal exposes the underlying exact value.
func (q Quantity) Decimal() decimal.Decimal { return q.value }

// Uint64 returns the count as a uint64 for command encoding.
func (q Quantity) Uint64() uint64 { return uint64(q.value.IntPart()) }

func (q Quantity) String() string { return q.value.String() }

func (q Quantity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + q.value.String() + `"`), nil
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	var a Amount
	if err := a.UnmarshalJSON(data); err != nil {
		return err
	}
	*q = Quantity{value: a.value}
	return nil
}
