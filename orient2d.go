// Robust orientation predicates for points in the plane.
//
// An orientation predicate answers whether three points p, q, r make a left
// turn, a right turn, or lie on a line. It is the sign of the determinant
//
//	(q.x-p.x)(r.y-p.y) - (q.y-p.y)(r.x-p.x)
//
// and it sits underneath triangulation, convex hulls and point in polygon
// tests. Evaluated naively in floating point, it returns the wrong sign for
// nearly collinear points. Orient returns the exact sign for every input in
// its domain while costing about the same as the naive formula on typical
// input.
//
// The functions differ only in speed and domain; on the same input they
// return the same Orientation:
//
//	Orient     adaptive: floating point filter, exact fallback
//	Exact      always exact, no filter
//	Slow       always exact, computed from exact differences
//	Fast       naive floating point; may be wrong near collinear input
//	OrientInt  exact for every int64 coordinate
//
// The float domain is finite coordinates, each zero or with magnitude in
// [2^-450, 2^450]. It is not checked; use OrientChecked or Validate when the
// input is untrusted. All functions are pure and safe for concurrent use.
package orient2d

import (
	"github.com/osuushi/orient2d/internal"
	"golang.org/x/exp/constraints"
)

type Point = internal.Point
type IntPoint = internal.IntPoint
type Triple = internal.Triple
type Orientation = internal.Orientation
type DomainError = internal.DomainError

const (
	Negative = internal.Negative
	Zero     = internal.Zero
	Positive = internal.Positive

	Clockwise        = Negative
	Collinear        = Zero
	CounterClockwise = Positive
)

const (
	MaxMagnitude = internal.MaxMagnitude
	MinMagnitude = internal.MinMagnitude
)

// Orient returns the exact orientation of p, q, r. The fast filter decides
// most inputs; the rest escalate to Exact.
func Orient(p, q, r Point) Orientation {
	return internal.Orient(p, q, r)
}

// Exact always evaluates the determinant with exact expansion arithmetic.
func Exact(p, q, r Point) Orientation {
	return internal.Exact(p, q, r)
}

// Slow is a second exact evaluation that forms the coordinate differences
// exactly before multiplying. Mostly useful for cross-checking.
func Slow(p, q, r Point) Orientation {
	return internal.Slow(p, q, r)
}

// Fast evaluates the determinant in plain floating point. Its sign is
// correct except in a thin band around collinear input, where it may be
// wrong in either direction.
func Fast(p, q, r Point) Orientation {
	return internal.Fast(p, q, r)
}

// OrientInt returns the exact orientation of integer points. Every int64
// coordinate is supported; nothing overflows.
func OrientInt(p, q, r IntPoint) Orientation {
	return internal.OrientInt(p, q, r)
}

// OrientInteger is OrientInt for any signed integer type.
func OrientInteger[T constraints.Signed](px, py, qx, qy, rx, ry T) Orientation {
	return internal.OrientInteger(px, py, qx, qy, rx, ry)
}

// Validate reports whether p, q and r are in the float domain. The returned
// error's cause is a *DomainError.
func Validate(p, q, r Point) error {
	return internal.Validate(p, q, r)
}

// OrientChecked validates its input, then calls Orient.
func OrientChecked(p, q, r Point) (Orientation, error) {
	return internal.OrientChecked(p, q, r)
}
