package glyph

import (
	"math"

	"github.com/couchcryptid/volcano-map-service/internal/domain"
)

// Geometry returns the shape for kind centered on (cx, cy). All dimensions
// scale with size. Unknown kinds render as the generic glyph.
func Geometry(kind domain.GlyphKind, cx, cy, size float64) Shape {
	switch kind {
	case domain.GlyphStrato:
		return strato(cx, cy, size)
	case domain.GlyphShield:
		return shield(cx, cy, size)
	case domain.GlyphCaldera:
		return caldera(cx, cy, size)
	case domain.GlyphCone:
		return cone(cx, cy, size)
	case domain.GlyphMaarTuff:
		return maarTuff(cx, cy, size)
	case domain.GlyphCraterSystem:
		return craterSystem(cx, cy, size)
	case domain.GlyphSubmarine:
		return submarine(cx, cy, size)
	case domain.GlyphSubglacial:
		return subglacial(cx, cy, size)
	case domain.GlyphField:
		return field(cx, cy, size)
	case domain.GlyphOther:
		return other(cx, cy, size)
	case domain.GlyphLavaDome:
		return lavaDome(cx, cy, size)
	case domain.GlyphLavaCone:
		return lavaCone(cx, cy, size)
	case domain.GlyphFissureVent:
		return fissureVent(cx, cy, size)
	case domain.GlyphExplosionCrater:
		return explosionCrater(cx, cy, size)
	case domain.GlyphComplex:
		return complexGlyph(cx, cy, size)
	default:
		return generic(cx, cy, size)
	}
}

func pt(x, y float64) domain.Point { return domain.Point{X: x, Y: y} }

func line(x1, y1, x2, y2 float64) Polyline {
	return Polyline{Points: []domain.Point{pt(x1, y1), pt(x2, y2)}}
}

// trapezoid is an open silhouette: base corners at yBottom, flat top at yTop.
func trapezoid(cx, baseW, topW, yBottom, yTop float64) Polyline {
	return Polyline{Points: []domain.Point{
		pt(cx-baseW/2, yBottom),
		pt(cx-topW/2, yTop),
		pt(cx+topW/2, yTop),
		pt(cx+baseW/2, yBottom),
	}}
}

func upperHalf(cx, cy, rx, ry float64) Arc {
	return Arc{Center: pt(cx, cy), RX: rx, RY: ry, Start: math.Pi, End: 2 * math.Pi}
}

func strato(cx, cy, size float64) Shape {
	h := size
	return Shape{trapezoid(cx, size*0.9, size*0.35, cy+h*0.4, cy-h*0.4)}
}

func shield(cx, cy, size float64) Shape {
	h := size * 0.45
	return Shape{trapezoid(cx, size*1.1, size*0.7, cy+h*0.3, cy-h*0.3)}
}

func cone(cx, cy, size float64) Shape {
	h := size
	return Shape{trapezoid(cx, size*0.7, size*0.25, cy+h*0.4, cy-h*0.35)}
}

func generic(cx, cy, size float64) Shape {
	h := size
	return Shape{trapezoid(cx, size*0.8, size*0.4, cy+h*0.35, cy-h*0.35)}
}

func lavaCone(cx, cy, size float64) Shape {
	h := size
	baseW := size * 0.8
	return Shape{Polyline{Points: []domain.Point{
		pt(cx-baseW/2, cy+h*0.35),
		pt(cx, cy-h*0.35),
		pt(cx+baseW/2, cy+h*0.35),
	}}}
}

func lavaDome(cx, cy, size float64) Shape {
	w := size * 0.9
	h := size * 0.9
	return Shape{upperHalf(cx, cy+h*0.1, w/2, h/2)}
}

func caldera(cx, cy, size float64) Shape {
	w := size * 0.8
	return Shape{line(cx-w/2, cy, cx+w/2, cy)}
}

func fissureVent(cx, cy, size float64) Shape {
	w := size * 0.9
	y := cy + size*0.15
	return Shape{line(cx-w/2, y, cx+w/2, y)}
}

// explosionCrater is a baseline with a shallow notch raised in the middle.
func explosionCrater(cx, cy, size float64) Shape {
	w := size * 0.8
	notch := size * 0.2
	y := cy + size*0.1
	return Shape{Polyline{Points: []domain.Point{
		pt(cx-w/2, y),
		pt(cx-notch/2, y),
		pt(cx, y-notch*0.35),
		pt(cx+notch/2, y),
		pt(cx+w/2, y),
	}}}
}

// complexGlyph layers a smaller cone, offset right, over a reduced strato.
func complexGlyph(cx, cy, size float64) Shape {
	s := strato(cx, cy, size*0.85)

	h := size * 0.45
	yBottom := cy + h*0.7
	yTop := cy + h*0.05
	baseW := size * 0.35
	topW := size * 0.2
	ox := cx + size*0.12

	return append(s, Polyline{Points: []domain.Point{
		pt(ox, yBottom),
		pt(ox-baseW/2, yBottom),
		pt(ox-topW/2, yTop),
		pt(ox+topW/2, yTop),
		pt(ox+baseW/2, yBottom),
	}})
}

// maarTuff is two concentric rims open at the bottom.
func maarTuff(cx, cy, size float64) Shape {
	outer := size * 0.55
	inner := size * 0.3
	return Shape{
		upperHalf(cx, cy, outer, outer),
		upperHalf(cx, cy, inner, inner),
	}
}

// craterSystem is three small overlapping craters in a row.
func craterSystem(cx, cy, size float64) Shape {
	r := size * 0.22
	gap := size * 0.18
	y := cy + size*0.05
	out := make(Shape, 0, 3)
	for _, x := range []float64{cx - gap, cx, cx + gap} {
		out = append(out, Arc{Center: pt(x, y), RX: r, RY: r, Start: 0, End: 2 * math.Pi})
	}
	return out
}

// submarine raises a reduced shield above one period of a sine wave.
func submarine(cx, cy, size float64) Shape {
	s := shield(cx, cy-size*0.12, size*0.85)

	w := size * 0.9
	y := cy + size*0.35
	amp := size * 0.05
	const steps = 12
	wave := make([]domain.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / steps
		wave = append(wave, pt(cx-w/2+w*t, y+math.Sin(t*2*math.Pi)*amp))
	}
	return append(s, Polyline{Points: wave})
}

// subglacial caps a reduced strato with an ice bar.
func subglacial(cx, cy, size float64) Shape {
	s := strato(cx, cy+size*0.05, size*0.85)
	w := size * 0.6
	y := cy - size*0.45
	return append(s, line(cx-w/2, y, cx+w/2, y))
}

// field is a row of six ticks rising left to right from a shared baseline.
func field(cx, cy, size float64) Shape {
	w := size * 0.9
	baseY := cy + size*0.2
	const count = 6
	step := w / (count - 1)
	h := size * 0.18

	out := make(Shape, 0, count)
	for i := 0; i < count; i++ {
		x := cx - w/2 + step*float64(i)
		y1 := baseY - (0.3+0.7*(float64(i)/(count-1)))*h
		out = append(out, line(x, baseY, x, y1))
	}
	return out
}

func other(cx, cy, size float64) Shape {
	w := size * 0.6
	h := size * 0.35
	left, right := cx-w/2, cx+w/2
	top, bottom := cy-h/2, cy+h/2
	return Shape{Polyline{
		Points: []domain.Point{
			pt(left, bottom),
			pt(left, top),
			pt(right, top),
			pt(right, bottom),
		},
		Closed: true,
	}}
}
