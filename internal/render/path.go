package render

import (
	"math"
	"strconv"

	"github.com/couchcryptid/volcano-map-service/internal/domain"
	"github.com/couchcryptid/volcano-map-service/internal/glyph"
)

// appendNum writes v rounded to 1/100 px without trailing zeros.
func appendNum(b []byte, v float64) []byte {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.AppendFloat(b, v, 'f', -1, 64)
}

func appendPoint(b []byte, p domain.Point) []byte {
	b = appendNum(b, p.X)
	b = append(b, ' ')
	return appendNum(b, p.Y)
}

// circlePath is a closed circle built from two half arcs.
func circlePath(c domain.Point, diameter float64) string {
	r := diameter / 2
	var b []byte
	b = append(b, 'M')
	b = appendPoint(b, domain.Point{X: c.X - r, Y: c.Y})
	for _, x := range []float64{c.X + r, c.X - r} {
		b = append(b, 'A')
		b = appendNum(b, r)
		b = append(b, ' ')
		b = appendNum(b, r)
		b = append(b, " 0 1 0 "...)
		b = appendPoint(b, domain.Point{X: x, Y: c.Y})
	}
	b = append(b, 'Z')
	return string(b)
}

// primitivePath converts a glyph primitive into SVG path data.
func primitivePath(p glyph.Primitive) string {
	switch p := p.(type) {
	case glyph.Polyline:
		return polylinePath(p)
	case glyph.Arc:
		return arcPath(p)
	default:
		return polylinePath(p.Flatten())
	}
}

func polylinePath(p glyph.Polyline) string {
	if len(p.Points) == 0 {
		return ""
	}
	var b []byte
	for i, pt := range p.Points {
		if i == 0 {
			b = append(b, 'M')
		} else {
			b = append(b, 'L')
		}
		b = appendPoint(b, pt)
	}
	if p.Closed {
		b = append(b, 'Z')
	}
	return string(b)
}

// arcPath emits elliptical arc commands. Full turns are split in two halves
// because a single SVG arc cannot start and end on the same point.
func arcPath(a glyph.Arc) string {
	var b []byte
	b = append(b, 'M')
	b = appendPoint(b, a.PointAt(a.Start))

	arcTo := func(end float64, large bool) {
		b = append(b, 'A')
		b = appendNum(b, a.RX)
		b = append(b, ' ')
		b = appendNum(b, a.RY)
		if large {
			b = append(b, " 0 1 1 "...)
		} else {
			b = append(b, " 0 0 1 "...)
		}
		b = appendPoint(b, a.PointAt(end))
	}

	if a.IsFullTurn() {
		mid := a.Start + math.Pi
		arcTo(mid, false)
		arcTo(a.Start+2*math.Pi, false)
		b = append(b, 'Z')
		return string(b)
	}
	arcTo(a.End, a.End-a.Start > math.Pi)
	return string(b)
}
