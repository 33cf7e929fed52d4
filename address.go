package launchpad

import (
	"fmt"
	"math/big"
	"strings"
)

// WideAddress is a destination address split into two 64-bit halves for
// the rollup's wide-address command encoding.
type WideAddress struct {
	Hi uint64
	Lo uint64
}

var maxWideAddress = new(big.Int).Lsh(big.NewInt(1), 128)

// ParseWideAddress splits an address, given as a 0x-prefixed hex or
// plain decimal string, into its two command-parameter halves.
func ParseWideAddress(s string) (WideAddress, error) {
	v := new(big.Int)
	var ok bool
	if h, found := strings.CutPrefix(s, "0x"); found {
		_, ok = v.SetString(h, 16)
	} else {
		_, ok = v.SetString(s, 10)
	}
	if !ok {
		return WideAddress{}, fmt.Errorf("invalid address %q", s)
	}
	if v.Sign() < 0 || v.Cmp(maxWideAddress) >= 0 {
		return WideAddress{}, fmt.Errorf("address %q out of 128-bit range", s)
	}
	lo := new(big.Int).And(v, new(big.Int).SetUint64(^uint64(0)))
	hi := new(big.Int).Rsh(v, 64)
	return WideAddress{Hi: hi.Uint64(), Lo: lo.Uint64()}, nil
}

func (a WideAddress) String() string {
	v := new(big.Int).Lsh(new(big.Int).SetUint64(a.Hi), 64)
	v.Or(v, new(big.Int).SetUint64(a.Lo))
	return "0x" + v.Text(16)
}
