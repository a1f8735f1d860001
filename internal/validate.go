package internal

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Bounds of the float domain. Inside them no coordinate product overflows
// and no product error term falls into the subnormal range, which is what
// the exact paths need to stay exact. Zero is always allowed.
const (
	MaxMagnitude = 0x1p450
	MinMagnitude = 0x1p-450
)

// Which coordinate of which point broke the domain.
type DomainError struct {
	Point string // "p", "q" or "r"
	Axis  string // "x" or "y"
	Value float64
}

func (e *DomainError) Error() string {
	var why string
	switch {
	case math.IsNaN(e.Value):
		why = "is NaN"
	case math.IsInf(e.Value, 0):
		why = "is infinite"
	case math.Abs(e.Value) > MaxMagnitude:
		why = "exceeds 2^450 in magnitude"
	default:
		why = "is nonzero and below 2^-450 in magnitude"
	}
	return fmt.Sprintf("%s.%s = %v %s", e.Point, e.Axis, e.Value, why)
}

func inDomain(x float64) bool {
	if x == 0 {
		return true
	}
	a := math.Abs(x)
	// NaN fails both comparisons.
	return a >= MinMagnitude && a <= MaxMagnitude
}

// Checks the float domain precondition shared by Fast, Exact, Slow and
// Orient. The predicates themselves never call this.
func Validate(p, q, r Point) error {
	for _, named := range [...]struct {
		name  string
		point Point
	}{{"p", p}, {"q", q}, {"r", r}} {
		if !inDomain(named.point.X) {
			return errors.WithStack(&DomainError{named.name, "x", named.point.X})
		}
		if !inDomain(named.point.Y) {
			return errors.WithStack(&DomainError{named.name, "y", named.point.Y})
		}
	}
	return nil
}

// Validates, then orients adaptively.
func OrientChecked(p, q, r Point) (Orientation, error) {
	if err := Validate(p, q, r); err != nil {
		return Zero, errors.Wrapf(err, "orienting %s", Triple{p, q, r})
	}
	return Orient(p, q, r), nil
}
