package internal

import "math/bits"

// Magnitude/sign arithmetic for the exact integer path. A difference of two
// int64 values needs 65 bits as a signed number, but its magnitude always
// fits in a uint64. Carrying the sign separately lets every product of two
// differences fit in 128 unsigned bits.

// Returns |a-b| and whether a < b. The subtraction happens in uint64, where
// wrapping is well defined: subtracting the smaller value from the larger
// one always yields the true distance modulo 2^64, and the distance is below
// 2^64.
func magSub(a, b int64) (mag uint64, neg bool) {
	if a < b {
		return uint64(b) - uint64(a), true
	}
	return uint64(a) - uint64(b), false
}

type uint128 struct {
	hi, lo uint64
}

func mulMag(a, b uint64) uint128 {
	hi, lo := bits.Mul64(a, b)
	return uint128{hi: hi, lo: lo}
}

// Cmp returns -1, 0 or 1 as u is less than, equal to, or greater than v.
func (u uint128) Cmp(v uint128) int {
	switch {
	case u.hi < v.hi:
		return -1
	case u.hi > v.hi:
		return 1
	case u.lo < v.lo:
		return -1
	case u.lo > v.lo:
		return 1
	}
	return 0
}
