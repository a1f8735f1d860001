package internal

import "golang.org/x/exp/constraints"

// Exact orientation for integer coordinates.
//
// Every int64 coordinate is supported. The differences u = q-p and v = r-p
// are decomposed into (magnitude, sign) pairs, so each cross product term
// ux*vy and uy*vx is a 128-bit magnitude plus a sign, and nothing can
// overflow.
func OrientInt(p, q, r IntPoint) Orientation {
	ux, uxNeg := magSub(q.X, p.X)
	vy, vyNeg := magSub(r.Y, p.Y)
	// A zero operand makes the product zero, which counts as non-negative.
	leftNeg := uxNeg != vyNeg && ux != 0 && vy != 0

	uy, uyNeg := magSub(q.Y, p.Y)
	vx, vxNeg := magSub(r.X, p.X)
	rightNeg := uyNeg != vxNeg && uy != 0 && vx != 0

	// det = ux*vy - uy*vx
	switch {
	case leftNeg && !rightNeg:
		return Negative
	case !leftNeg && rightNeg:
		return Positive
	case leftNeg && rightNeg:
		// det = |uy*vx| - |ux*vy|
		return Orientation(mulMag(uy, vx).Cmp(mulMag(ux, vy)))
	default:
		return Orientation(mulMag(ux, vy).Cmp(mulMag(uy, vx)))
	}
}

// OrientInteger widens any signed integer type to int64 and calls
// OrientInt.
func OrientInteger[T constraints.Signed](px, py, qx, qy, rx, ry T) Orientation {
	return OrientInt(
		IntPoint{int64(px), int64(py)},
		IntPoint{int64(qx), int64(qy)},
		IntPoint{int64(rx), int64(ry)},
	)
}
