// Package fixture reads point sequences out of SVG documents and turns them
// into orientation triples.
//
// This is not a full (or even correct) SVG reader. Every <polygon> and
// <polyline> element becomes a Shape. A polygon is closed, so its triples
// wrap around; a polyline is open. Coordinates are taken verbatim, with no
// transforms applied, and y is not flipped.
//
// Fixtures may carry a data-expect attribute listing the orientation of
// each consecutive triple ("Positive", "Negative", "Zero", or the aliases
// "+", "-", "0"). A single value applies to every triple.
package fixture

import (
	"embed"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/orient2d/internal"
	"github.com/pkg/errors"
)

//go:embed fixtures
var fixtures embed.FS

type Shape struct {
	ID     string
	Points []internal.Point
	Closed bool
	Expect []internal.Orientation
}

// Parse every polygon and polyline in an SVG document, in that order.
func Parse(r io.Reader) (shapes []*Shape, err error) {
	defer func() {
		if recoveredErr := handleParsePanicRecover(recover()); recoveredErr != nil {
			shapes = nil
			err = recoveredErr
		}
	}()

	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}
	for _, el := range root.FindAll("polygon") {
		shapes = append(shapes, parseShape(el, true))
	}
	for _, el := range root.FindAll("polyline") {
		shapes = append(shapes, parseShape(el, false))
	}
	if len(shapes) == 0 {
		return nil, errors.New("no polygon or polyline elements found")
	}
	return shapes, nil
}

// Load an embedded fixture by name, sans extension.
func Load(name string) ([]*Shape, error) {
	f, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		return nil, errors.Wrapf(err, "could not load fixture %q", name)
	}
	defer f.Close()
	shapes, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "fixture %q", name)
	}
	return shapes, nil
}

func parseShape(el *svgparser.Element, closed bool) *Shape {
	shape := &Shape{
		ID:     el.Attributes["id"],
		Points: parsePoints(el.Attributes["points"]),
		Closed: closed,
	}
	if len(shape.Points) < 3 {
		fatalf("%s %q has %d points, need at least 3", el.Name, shape.ID, len(shape.Points))
	}
	if expect, ok := el.Attributes["data-expect"]; ok {
		shape.Expect = parseExpect(expect, len(shape.Triples()))
	}
	return shape
}

// Points are separated by whitespace, with a comma or whitespace between
// the coordinates of a point.
func parsePoints(s string) []internal.Point {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields)%2 != 0 {
		fatalf("odd number of coordinates in %q", s)
	}
	points := make([]internal.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		points = append(points, internal.Point{
			X: parseCoordinate(fields[i]),
			Y: parseCoordinate(fields[i+1]),
		})
	}
	return points
}

func parseCoordinate(s string) float64 {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fatalf("invalid coordinate %q: %v", s, err)
	}
	return x
}

func parseExpect(s string, n int) []internal.Orientation {
	fields := strings.Fields(s)
	if len(fields) != 1 && len(fields) != n {
		fatalf("data-expect has %d values for %d triples", len(fields), n)
	}
	expect := make([]internal.Orientation, n)
	for i := range expect {
		field := fields[0]
		if len(fields) > 1 {
			field = fields[i]
		}
		o, err := ParseOrientation(field)
		if err != nil {
			panic(parseError{err})
		}
		expect[i] = o
	}
	return expect
}

func ParseOrientation(s string) (internal.Orientation, error) {
	switch strings.ToLower(s) {
	case "positive", "+", "ccw", "counterclockwise":
		return internal.Positive, nil
	case "negative", "-", "cw", "clockwise":
		return internal.Negative, nil
	case "zero", "0", "collinear":
		return internal.Zero, nil
	}
	return internal.Zero, errors.Errorf("unknown orientation %q", s)
}

// Consecutive triples of the shape. A closed shape wraps around, giving one
// triple per vertex.
func (s *Shape) Triples() []internal.Triple {
	n := len(s.Points)
	if n < 3 {
		return nil
	}
	count := n - 2
	if s.Closed {
		count = n
	}
	triples := make([]internal.Triple, count)
	for i := range triples {
		triples[i] = internal.Triple{
			P: s.Points[i],
			Q: s.Points[CircularIndex(i+1, n)],
			R: s.Points[CircularIndex(i+2, n)],
		}
	}
	return triples
}

// Often we want to treat a slice as a circular buffer. This gives the
// modular index given length n, but unlike the raw modulo operator, it only
// gives non-negative values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
