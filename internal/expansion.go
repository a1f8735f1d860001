package internal

import "math"

// Exact floating point expansion arithmetic.
//
// An expansion is a slice of float64 components whose exact sum is the
// represented value. Components are nonoverlapping and ordered by
// increasing magnitude, so the last nonzero component carries the sign of
// the whole value. Every operation below captures its rounding error as an
// extra component instead of discarding it.
//
// All functions write into caller supplied buffers; the predicates back
// them with fixed size arrays so nothing escapes to the heap. Inputs must
// not overflow, and products must stay clear of the subnormal range so
// that their error terms are representable.

// a+b = x+y exactly, provided |a| >= |b| (or a == 0).
func fastTwoSum(a, b float64) (x, y float64) {
	x = a + b
	bVirtual := x - a
	y = b - bVirtual
	return
}

// a+b = x+y exactly, for any a and b.
func twoSum(a, b float64) (x, y float64) {
	x = a + b
	bVirtual := x - a
	aVirtual := x - bVirtual
	bRound := b - bVirtual
	aRound := a - aVirtual
	y = aRound + bRound
	return
}

// a-b = x+y exactly.
func twoDiff(a, b float64) (x, y float64) {
	x = a - b
	bVirtual := a - x
	aVirtual := x + bVirtual
	bRound := bVirtual - b
	aRound := a - aVirtual
	y = aRound + bRound
	return
}

// a*b = x+y exactly. The fused multiply-add computes the rounding error of
// the product without the usual Dekker splitting.
func twoProduct(a, b float64) (x, y float64) {
	x = float64(a * b)
	y = math.FMA(a, b, -x)
	return
}

// (a1+a0) - b = x2+x1+x0.
func twoOneDiff(a1, a0, b float64) (x2, x1, x0 float64) {
	i, x0 := twoDiff(a0, b)
	x2, x1 = twoSum(a1, i)
	return
}

// (a1+a0) - (b1+b0) as a four component expansion, least significant
// first.
func twoTwoDiff(a1, a0, b1, b0 float64) [4]float64 {
	j1, j0, x0 := twoOneDiff(a1, a0, b0)
	x3, x2, x1 := twoOneDiff(j1, j0, b1)
	return [4]float64{x0, x1, x2, x3}
}

// Reports whether the next component to merge should come from e rather
// than f, i.e. whether |e| is the smaller magnitude.
func takeFirst(e, f float64) bool {
	return (f > e) == (f > -e)
}

// Sets h to e+f and returns it, dropping zero components. h must have room
// for len(e)+len(f) components and must not share storage with e or f.
//
// This is Shewchuk's FAST-EXPANSION-SUM: merge the components by magnitude
// and accumulate them with an exact running sum. The rounding error of
// every accumulation step is emitted as a component, which is what keeps
// cancellation between similar, opposite components exact.
func sumZeroElim(e, f, h []float64) []float64 {
	h = h[:0]
	if len(e) == 0 {
		return appendNonZero(h, f)
	}
	if len(f) == 0 {
		return appendNonZero(h, e)
	}

	ei, fi := 0, 0
	var q float64
	if takeFirst(e[0], f[0]) {
		q = e[0]
		ei++
	} else {
		q = f[0]
		fi++
	}

	var hh float64
	first := true
	for ei < len(e) && fi < len(f) {
		var next float64
		if takeFirst(e[ei], f[fi]) {
			next = e[ei]
			ei++
		} else {
			next = f[fi]
			fi++
		}
		if first {
			// q is the smallest component of either input, so next is at
			// least as large and the cheaper sum is exact.
			q, hh = fastTwoSum(next, q)
			first = false
		} else {
			q, hh = twoSum(q, next)
		}
		if hh != 0 {
			h = append(h, hh)
		}
	}
	for ; ei < len(e); ei++ {
		q, hh = twoSum(q, e[ei])
		if hh != 0 {
			h = append(h, hh)
		}
	}
	for ; fi < len(f); fi++ {
		q, hh = twoSum(q, f[fi])
		if hh != 0 {
			h = append(h, hh)
		}
	}
	if q != 0 || len(h) == 0 {
		h = append(h, q)
	}
	return h
}

func appendNonZero(h, e []float64) []float64 {
	for _, c := range e {
		if c != 0 {
			h = append(h, c)
		}
	}
	if len(h) == 0 {
		h = append(h, 0)
	}
	return h
}

// Sets h to e*b and returns it, dropping zero components. h must have room
// for 2*len(e) components.
func scaleZeroElim(e []float64, b float64, h []float64) []float64 {
	h = h[:0]
	if len(e) == 0 {
		return append(h, 0)
	}
	q, hh := twoProduct(e[0], b)
	if hh != 0 {
		h = append(h, hh)
	}
	for _, c := range e[1:] {
		product1, product0 := twoProduct(c, b)
		var sum float64
		sum, hh = twoSum(q, product0)
		if hh != 0 {
			h = append(h, hh)
		}
		q, hh = fastTwoSum(product1, sum)
		if hh != 0 {
			h = append(h, hh)
		}
	}
	if q != 0 || len(h) == 0 {
		h = append(h, q)
	}
	return h
}

// Negates every component of e in place.
func negate(e []float64) []float64 {
	for i := range e {
		e[i] = -e[i]
	}
	return e
}

// The sign of the value an expansion represents, read from its most
// significant nonzero component.
func expansionSign(e []float64) Orientation {
	for i := len(e) - 1; i >= 0; i-- {
		if e[i] != 0 {
			return signOf(e[i])
		}
	}
	return Zero
}
