package orient2d

import (
	"github.com/quasilyte/gmath"
	"github.com/twpayne/go-geom"
)

// Conversions from the vector types of other geometry packages. Values are
// copied unchanged, so the predicates see exactly the caller's coordinates.

func FromVec(v gmath.Vec) Point {
	return Point{X: v.X, Y: v.Y}
}

// FromCoord uses the first two ordinates of c, whatever its layout. It
// panics if c has fewer than two.
func FromCoord(c geom.Coord) Point {
	return Point{X: c[0], Y: c[1]}
}

func OrientVec(p, q, r gmath.Vec) Orientation {
	return Orient(FromVec(p), FromVec(q), FromVec(r))
}

func OrientCoords(p, q, r geom.Coord) Orientation {
	return Orient(FromCoord(p), FromCoord(q), FromCoord(r))
}
