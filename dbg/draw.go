// Package dbg draws orientation triples for debugging. The edge p->q is
// drawn as an arrow and r as a dot colored by its orientation: green for
// Positive, red for Negative, yellow for Zero.
package dbg

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/orient2d/internal"
	"github.com/pkg/errors"
)

// Padding around the triple so points on the bounding box stay visible
const dbgDrawPadding = 40

// Render a triple to a PNG file at the given scale (pixels per unit).
func DrawTriple(path string, t internal.Triple, scale float64) error {
	c := drawContext(t, scale)
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return nil
}

// Draw a triple and print it to the terminal (iTerm only).
func Show(t internal.Triple, scale float64) error {
	const path = "/tmp/orient2d_triple.png"
	if err := DrawTriple(path, t, scale); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}

func drawContext(t internal.Triple, scale float64) *gg.Context {
	minX := math.Min(t.P.X, math.Min(t.Q.X, t.R.X))
	minY := math.Min(t.P.Y, math.Min(t.Q.Y, t.R.Y))
	maxX := math.Max(t.P.X, math.Max(t.Q.X, t.R.X))
	maxY := math.Max(t.P.Y, math.Max(t.Q.Y, t.R.Y))

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	dx, dy := t.Q.X-t.P.X, t.Q.Y-t.P.Y
	if length := math.Hypot(dx, dy); length > 0 {
		ux, uy := dx/length, dy/length

		// The line through p and q, extended across the whole canvas
		extent := maxX - minX + maxY - minY + 2*dbgDrawPadding/scale
		c.SetRGBA(1, 1, 1, 0.3)
		c.SetLineWidth(1)
		c.DrawLine(t.P.X-extent*ux, t.P.Y-extent*uy, t.P.X+extent*ux, t.P.Y+extent*uy)
		c.Stroke()

		// The edge p->q with an arrow head at q
		c.SetRGB(0, 1, 1)
		c.SetLineWidth(3)
		c.DrawLine(t.P.X, t.P.Y, t.Q.X, t.Q.Y)
		c.Stroke()
		head := 12 / scale
		c.MoveTo(t.Q.X, t.Q.Y)
		c.LineTo(t.Q.X-head*ux-head/2*uy, t.Q.Y-head*uy+head/2*ux)
		c.LineTo(t.Q.X-head*ux+head/2*uy, t.Q.Y-head*uy-head/2*ux)
		c.ClosePath()
		c.Fill()
	}

	switch t.Orient() {
	case internal.Positive:
		c.SetRGB(0, 1, 0)
	case internal.Negative:
		c.SetRGB(1, 0, 0)
	default:
		c.SetRGB(1, 1, 0)
	}
	c.DrawCircle(t.R.X, t.R.Y, 6/scale)
	c.Fill()
	return c
}
