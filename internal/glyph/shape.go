package glyph

import (
	"math"

	"github.com/couchcryptid/volcano-map-service/internal/domain"
)

// Primitive is one stroked element of a glyph.
type Primitive interface {
	// Bounds returns the axis-aligned box of the centerline.
	Bounds() domain.Rect
	// Flatten approximates the primitive as a polyline.
	Flatten() Polyline
}

// Shape is the ordered list of primitives making up a glyph.
type Shape []Primitive

// Polyline is a connected run of straight segments.
type Polyline struct {
	Points []domain.Point
	Closed bool
}

// Arc is an elliptical arc. Angles are in radians in screen space (y grows
// downward), so the arc from π to 2π is the upper half. The arc runs from
// Start to End with End > Start.
type Arc struct {
	Center     domain.Point
	RX, RY     float64
	Start, End float64
}

// arcSegments is the number of straight segments per full turn when flattening.
const arcSegments = 64

func (p Polyline) Bounds() domain.Rect {
	return boundsOf(p.Points)
}

func (p Polyline) Flatten() Polyline { return p }

// PointAt returns the point on the arc at angle a.
func (a Arc) PointAt(angle float64) domain.Point {
	return domain.Point{
		X: a.Center.X + math.Cos(angle)*a.RX,
		Y: a.Center.Y + math.Sin(angle)*a.RY,
	}
}

// IsFullTurn reports whether the arc closes on itself.
func (a Arc) IsFullTurn() bool {
	return a.End-a.Start >= 2*math.Pi-1e-9
}

func (a Arc) Bounds() domain.Rect {
	return boundsOf(a.Flatten().Points)
}

func (a Arc) Flatten() Polyline {
	sweep := a.End - a.Start
	n := int(math.Ceil(sweep / (2 * math.Pi) * arcSegments))
	if n < 1 {
		n = 1
	}
	pts := make([]domain.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		pts = append(pts, a.PointAt(a.Start+sweep*float64(i)/float64(n)))
	}
	if a.IsFullTurn() {
		return Polyline{Points: pts[:n], Closed: true}
	}
	return Polyline{Points: pts}
}

// Bounds returns the union of all primitive bounds.
func (s Shape) Bounds() domain.Rect {
	var out domain.Rect
	for i, p := range s {
		b := p.Bounds()
		if i == 0 {
			out = b
			continue
		}
		out.Left = math.Min(out.Left, b.Left)
		out.Top = math.Min(out.Top, b.Top)
		out.Right = math.Max(out.Right, b.Right)
		out.Bottom = math.Max(out.Bottom, b.Bottom)
	}
	return out
}

func boundsOf(pts []domain.Point) domain.Rect {
	if len(pts) == 0 {
		return domain.Rect{}
	}
	r := domain.Rect{Left: pts[0].X, Right: pts[0].X, Top: pts[0].Y, Bottom: pts[0].Y}
	for _, p := range pts[1:] {
		r.Left = math.Min(r.Left, p.X)
		r.Right = math.Max(r.Right, p.X)
		r.Top = math.Min(r.Top, p.Y)
		r.Bottom = math.Max(r.Bottom, p.Y)
	}
	return r
}
