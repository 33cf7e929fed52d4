package launchpad

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Symbol is an offering's token ticker. On the wire it travels either as
// a plain string or as the rollup's packed little-endian u64 form, eight
// ASCII bytes at most.
type Symbol string

// PackSymbol encodes a ticker into the rollup's u64 form.
func PackSymbol(s string) (uint64, error) {
	if len(s) > 8 {
		return 0, fmt.Errorf("symbol %q longer than 8 characters", s)
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		v |= uint64(s[i]) << (8 * i)
	}
	return v, nil
}

// UnpackSymbol decodes the rollup's packed u64 ticker, stopping at the
// first zero byte.
func UnpackSymbol(v uint64) Symbol {
	var b []byte
	for v > 0 {
		c := byte(v & 0xFF)
		if c == 0 {
			break
		}
		b = append(b, c)
		v >>= 8
	}
	return Symbol(b)
}

func (s Symbol) String() string { return string(s) }

// UnmarshalJSON accepts both wire forms: a JSON string ticker or a
// packed numeric value (possibly quoted).
func (s *Symbol) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			*s = UnpackSymbol(n)
		} else {
			*s = Symbol(v)
		}
	case float64:
		*s = UnpackSymbol(uint64(v))
	default:
		return fmt.Errorf("unexpected symbol form %T", raw)
	}
	return nil
}
