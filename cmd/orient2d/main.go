// Command orient2d prints the orientation of point triples.
//
// Input on stdin (or FILE) is one triple per line, "px py qx qy rx ry",
// with blank lines and lines starting with # ignored. With --svg, the
// triples are the consecutive vertices of every polygon and polyline in an
// SVG file instead.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/orient2d"
	"github.com/osuushi/orient2d/dbg"
	"github.com/osuushi/orient2d/internal/fixture"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"gopkg.in/alecthomas/kingpin.v2"
)

type options struct {
	mode  string
	svg   string
	check bool
	color bool
	draw  bool
	scale float64
}

var predicates = map[string]func(p, q, r orient2d.Point) orient2d.Orientation{
	"fast":     orient2d.Fast,
	"exact":    orient2d.Exact,
	"slow":     orient2d.Slow,
	"adaptive": orient2d.Orient,
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("orient2d: ")

	app := kingpin.New("orient2d", "Print the exact orientation of point triples.")
	mode := app.Flag("mode", "Predicate to use.").Short('m').Default("adaptive").Enum("fast", "exact", "slow", "adaptive", "int")
	svg := app.Flag("svg", "Read triples from the polygons and polylines of an SVG file.").ExistingFile()
	check := app.Flag("check", "Reject coordinates outside the exact float domain.").Bool()
	color := app.Flag("color", "Colorize the output.").Default("true").Bool()
	draw := app.Flag("draw", "Draw each triple in the terminal (iTerm only).").Bool()
	scale := app.Flag("scale", "Pixels per unit for --draw.").Default("50").Float64()
	cpuProfile := app.Flag("cpuprofile", "Write a CPU profile to the current directory.").Bool()
	input := app.Arg("file", "Triples to read instead of stdin.").File()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	in := io.Reader(os.Stdin)
	if *input != nil {
		defer (*input).Close()
		in = *input
	}

	opts := options{mode: *mode, svg: *svg, check: *check, color: *color, draw: *draw, scale: *scale}
	if err := run(opts, in, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(opts options, in io.Reader, out, errOut io.Writer) error {
	au := aurora.NewAurora(opts.color)
	var total, failed int

	report := func(label string, o orient2d.Orientation) {
		var colored aurora.Value
		switch o {
		case orient2d.Positive:
			colored = au.Green(o)
		case orient2d.Negative:
			colored = au.Red(o)
		default:
			colored = au.Yellow(o)
		}
		fmt.Fprintf(out, "%s: %s\n", label, colored)
	}
	fail := func(label string, err error) {
		failed++
		fmt.Fprintf(errOut, "%s: %s\n", label, au.Red(err.Error()))
	}
	orient := func(label string, t orient2d.Triple) {
		total++
		if opts.check {
			if err := orient2d.Validate(t.P, t.Q, t.R); err != nil {
				fail(label, err)
				return
			}
		}
		report(label, predicates[opts.mode](t.P, t.Q, t.R))
		if opts.draw {
			if err := dbg.Show(t, opts.scale); err != nil {
				fail(label, err)
			}
		}
	}

	if opts.svg != "" {
		if opts.mode == "int" {
			return errors.New("--svg coordinates are floats; choose a float mode")
		}
		shapes, err := readSVG(opts.svg)
		if err != nil {
			return err
		}
		for i, shape := range shapes {
			name := shape.ID
			if name == "" {
				name = "shape" + strconv.Itoa(i)
			}
			for j, t := range shape.Triples() {
				orient(fmt.Sprintf("%s[%d]", name, j), t)
			}
		}
	} else {
		// Scan lines
		scanner := bufio.NewScanner(in)
		lineNumber := 0
		for scanner.Scan() {
			lineNumber++
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			label := strconv.Itoa(lineNumber)

			if opts.mode == "int" {
				p, q, r, err := parseIntTriple(line)
				if err != nil {
					total++
					fail(label, err)
					continue
				}
				total++
				report(label, orient2d.OrientInt(p, q, r))
				continue
			}

			t, err := parseTriple(line)
			if err != nil {
				total++
				fail(label, err)
				continue
			}
			orient(label, t)
		}
		if err := scanner.Err(); err != nil {
			return errors.Wrap(err, "reading input")
		}
	}

	if failed > 0 {
		return errors.Errorf("%d of %d triples failed", failed, total)
	}
	return nil
}

func readSVG(path string) ([]*fixture.Shape, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()
	shapes, err := fixture.Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return shapes, nil
}

func splitSix(line string) ([]string, error) {
	fields := strings.Fields(line)
	if len(fields) != 6 {
		return nil, errors.Errorf("expected 6 coordinates, got %d", len(fields))
	}
	return fields, nil
}

func parseTriple(line string) (orient2d.Triple, error) {
	fields, err := splitSix(line)
	if err != nil {
		return orient2d.Triple{}, err
	}
	var c [6]float64
	for i, field := range fields {
		if c[i], err = strconv.ParseFloat(field, 64); err != nil {
			return orient2d.Triple{}, errors.Wrapf(err, "coordinate %d", i+1)
		}
	}
	return orient2d.Triple{
		P: orient2d.Point{X: c[0], Y: c[1]},
		Q: orient2d.Point{X: c[2], Y: c[3]},
		R: orient2d.Point{X: c[4], Y: c[5]},
	}, nil
}

func parseIntTriple(line string) (p, q, r orient2d.IntPoint, err error) {
	fields, err := splitSix(line)
	if err != nil {
		return
	}
	var c [6]int64
	for i, field := range fields {
		if c[i], err = strconv.ParseInt(field, 10, 64); err != nil {
			err = errors.Wrapf(err, "coordinate %d", i+1)
			return
		}
	}
	return orient2d.IntPoint{X: c[0], Y: c[1]}, orient2d.IntPoint{X: c[2], Y: c[3]}, orient2d.IntPoint{X: c[4], Y: c[5]}, nil
}
