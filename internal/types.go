package internal

import "fmt"

// Points are plain values. Nothing in this package ever modifies a
// coordinate; every predicate reads its three inputs and returns.
type Point struct {
	X float64
	Y float64
}

type IntPoint struct {
	X int64
	Y int64
}

// An ordered triple. P->Q is the directed edge and R is the query point.
// Swapping any two points negates the orientation.
type Triple struct {
	P, Q, R Point
}

type Orientation int8

const (
	Negative Orientation = -1 // clockwise, R is right of P->Q
	Zero     Orientation = 0  // collinear
	Positive Orientation = 1  // counterclockwise, R is left of P->Q
)

func (o Orientation) String() string {
	switch o {
	case Negative:
		return "Negative"
	case Zero:
		return "Zero"
	case Positive:
		return "Positive"
	}
	return fmt.Sprintf("Orientation(%d)", int8(o))
}

// The orientation of the same triple with two points swapped.
func (o Orientation) Reverse() Orientation {
	return -o
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

func (t Triple) String() string {
	return fmt.Sprintf("[%s %s %s]", t.P, t.Q, t.R)
}

func (t Triple) Orient() Orientation {
	return Orient(t.P, t.Q, t.R)
}

// Sign of a float as an orientation. NaN maps to Zero, but NaN is outside
// the domain of every predicate anyway.
func signOf(x float64) Orientation {
	if x > 0 {
		return Positive
	}
	if x < 0 {
		return Negative
	}
	return Zero
}
