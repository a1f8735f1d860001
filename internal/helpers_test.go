package internal

import (
	"math"

	"github.com/osuushi/orient2d/internal/oracle"
)

// Ground truth from the rational oracle.
func reference(p, q, r Point) Orientation {
	return Orientation(oracle.Orient(
		[2]float64{p.X, p.Y},
		[2]float64{q.X, q.Y},
		[2]float64{r.X, r.Y},
	))
}

func referenceInt(p, q, r IntPoint) Orientation {
	return Orientation(oracle.OrientInt(
		[2]int64{p.X, p.Y},
		[2]int64{q.X, q.Y},
		[2]int64{r.X, r.Y},
	))
}

// Step x by n ulps (negative n steps down).
func nudge(x float64, n int) float64 {
	for ; n > 0; n-- {
		x = math.Nextafter(x, math.Inf(1))
	}
	for ; n < 0; n++ {
		x = math.Nextafter(x, math.Inf(-1))
	}
	return x
}

// A point close to the line through p and q, computed in floating point
// and then moved by a few ulps, so that it is within rounding distance of
// collinear.
func nearLine(p, q Point, t float64, dx, dy int) Point {
	return Point{
		X: nudge(p.X+t*(q.X-p.X), dx),
		Y: nudge(p.Y+t*(q.Y-p.Y), dy),
	}
}

// The predicates that must always agree with the oracle.
var exactVariants = []struct {
	name string
	fn   func(p, q, r Point) Orientation
}{
	{"Orient", Orient},
	{"Exact", Exact},
	{"Slow", Slow},
}
