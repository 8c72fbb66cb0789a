package bairiak

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Uint128 is an unsigned 128-bit integer. Lo holds bits 0-63 and Hi holds
// bits 64-127. The zero value is 0.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Uint128From64 widens v.
func Uint128From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// LowBits returns a value with bits 0 through n-1 set.
func LowBits(n int) Uint128 {
	switch {
	case n <= 0:
		return Uint128{}
	case n <= 64:
		return Uint128{Lo: lowMask64(n)}
	default:
		return Uint128{Hi: lowMask64(n - 64), Lo: ^uint64(0)}
	}
}

// Bit reports whether bit i is set. Bits past 127 are never set.
func (u Uint128) Bit(i uint8) bool {
	switch {
	case i < 64:
		return u.Lo&(1<<i) != 0
	case i < 128:
		return u.Hi&(1<<(i-64)) != 0
	}
	return false
}

// SetBit returns u with bit i set. Bits past 127 are ignored.
func (u Uint128) SetBit(i uint8) Uint128 {
	switch {
	case i < 64:
		u.Lo |= 1 << i
	case i < 128:
		u.Hi |= 1 << (i - 64)
	}
	return u
}

// ClearBit returns u with bit i cleared.
func (u Uint128) ClearBit(i uint8) Uint128 {
	switch {
	case i < 64:
		u.Lo &^= 1 << i
	case i < 128:
		u.Hi &^= 1 << (i - 64)
	}
	return u
}

// Or returns u | v.
func (u Uint128) Or(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi | v.Hi, Lo: u.Lo | v.Lo}
}

// And returns u & v.
func (u Uint128) And(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi & v.Hi, Lo: u.Lo & v.Lo}
}

// AndNot returns u &^ v.
func (u Uint128) AndNot(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi &^ v.Hi, Lo: u.Lo &^ v.Lo}
}

// IsZero reports whether no bit is set.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// OnesCount returns the number of set bits.
func (u Uint128) OnesCount() int {
	return bits.OnesCount64(u.Hi) + bits.OnesCount64(u.Lo)
}

// TrailingZeros returns the index of the lowest set bit, or 128 for zero.
func (u Uint128) TrailingZeros() int {
	if u.Lo != 0 {
		return bits.TrailingZeros64(u.Lo)
	}
	return 64 + bits.TrailingZeros64(u.Hi)
}

// BitLen returns the minimum number of bits needed to represent u.
func (u Uint128) BitLen() int {
	if u.Hi != 0 {
		return 64 + bits.Len64(u.Hi)
	}
	return bits.Len64(u.Lo)
}

// Big returns u as a big.Int.
func (u Uint128) Big() *big.Int {
	n := new(big.Int).SetUint64(u.Hi)
	n.Lsh(n, 64)
	return n.Or(n, new(big.Int).SetUint64(u.Lo))
}

// String formats u in decimal.
func (u Uint128) String() string {
	if u.Hi == 0 {
		return fmt.Sprint(u.Lo)
	}
	return u.Big().String()
}

// ParseUint128 parses a decimal, or 0x/0b/0o prefixed, unsigned integer.
func ParseUint128(s string) (Uint128, error) {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok || n.Sign() < 0 {
		return Uint128{}, fmt.Errorf("bairiak: invalid unsigned integer %q", s)
	}
	if n.BitLen() > 128 {
		return Uint128{}, fmt.Errorf("bairiak: %s overflows 128 bits", s)
	}
	lo := new(big.Int).And(n, new(big.Int).SetUint64(^uint64(0)))
	hi := new(big.Int).Rsh(n, 64)
	return Uint128{Hi: hi.Uint64(), Lo: lo.Uint64()}, nil
}
