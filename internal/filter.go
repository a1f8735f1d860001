package internal

import "math"

// Floating point filter.
//
// The determinant is computed relative to P:
//
//	det = (q.x-p.x)(r.y-p.y) - (q.y-p.y)(r.x-p.x) = detLeft - detRight
//
// Forward error analysis of the four rounded differences, the two rounded
// products and the final rounded subtraction bounds the absolute error of
// det by ccwErrBoundA * (|detLeft| + |detRight|) (Shewchuk, "Adaptive
// Precision Floating-Point Arithmetic and Fast Robust Geometric
// Predicates", 1997).

const (
	// Half an ulp of 1, the unit roundoff for round-to-nearest float64.
	epsilon = 0x1p-53

	ccwErrBoundA = (3 + 16*epsilon) * epsilon
)

// Naive floating point orientation. Correct except in a thin band around
// collinear inputs, where rounding can produce the wrong sign, including a
// wrong Zero.
func Fast(p, q, r Point) Orientation {
	detLeft := float64((q.X - p.X) * (r.Y - p.Y))
	detRight := float64((q.Y - p.Y) * (r.X - p.X))
	return signOf(detLeft - detRight)
}

// Returns the sign and true when the floating point determinant provably
// has the correct sign. Never answers Zero: a zero determinant, even an
// exact one, is reported as inconclusive.
func filter(p, q, r Point) (Orientation, bool) {
	// The explicit conversions force rounding of each product. Without them
	// the compiler may fuse a product and the subtraction into an FMA, which
	// the error bound was not derived for.
	detLeft := float64((q.X - p.X) * (r.Y - p.Y))
	detRight := float64((q.Y - p.Y) * (r.X - p.X))
	det := detLeft - detRight

	// Rounding never changes the sign of a product (absent underflow), so if
	// the two terms have different signs the sign of det is already exact.
	var detSum float64
	switch {
	case detLeft > 0:
		if detRight <= 0 {
			return Positive, true
		}
		detSum = detLeft + detRight
	case detLeft < 0:
		if detRight >= 0 {
			return Negative, true
		}
		detSum = -detLeft - detRight
	default:
		if detRight == 0 {
			return Zero, false
		}
		return signOf(-detRight), true
	}

	errBound := ccwErrBoundA * detSum
	if math.Abs(det) > errBound {
		return signOf(det), true
	}
	return Zero, false
}

// The error bound the filter compares |det| against.
func errorBound(p, q, r Point) float64 {
	detLeft := float64((q.X - p.X) * (r.Y - p.Y))
	detRight := float64((q.Y - p.Y) * (r.X - p.X))
	return ccwErrBoundA * (math.Abs(detLeft) + math.Abs(detRight))
}
