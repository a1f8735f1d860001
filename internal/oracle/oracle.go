// Package oracle is a reference implementation of the orientation
// predicate in arbitrary precision rational arithmetic. It is slow and it
// is only used to check the real predicates in tests and benchmarks.
//
// Results are plain ints (-1, 0, 1) so that this package does not import
// the package it checks.
package oracle

import "math/big"

// Sign of (q-p) x (r-p) for finite float64 coordinates. Every finite
// float64 is a rational number, and big.Rat represents it exactly.
func Orient(p, q, r [2]float64) int {
	rat := func(x float64) *big.Rat {
		v := new(big.Rat)
		if v.SetFloat64(x) == nil {
			panic("oracle: non-finite coordinate")
		}
		return v
	}
	px, py := rat(p[0]), rat(p[1])
	ux := new(big.Rat).Sub(rat(q[0]), px)
	uy := new(big.Rat).Sub(rat(q[1]), py)
	vx := new(big.Rat).Sub(rat(r[0]), px)
	vy := new(big.Rat).Sub(rat(r[1]), py)
	return new(big.Rat).Mul(ux, vy).Cmp(new(big.Rat).Mul(uy, vx))
}

// Sign of (q-p) x (r-p) for int64 coordinates.
func OrientInt(p, q, r [2]int64) int {
	px, py := big.NewInt(p[0]), big.NewInt(p[1])
	ux := new(big.Int).Sub(big.NewInt(q[0]), px)
	uy := new(big.Int).Sub(big.NewInt(q[1]), py)
	vx := new(big.Int).Sub(big.NewInt(r[0]), px)
	vy := new(big.Int).Sub(big.NewInt(r[1]), py)
	return new(big.Int).Mul(ux, vy).Cmp(new(big.Int).Mul(uy, vx))
}
