package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/couchcryptid/volcano-map-service/internal/domain"
	"github.com/couchcryptid/volcano-map-service/internal/glyph"
)

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

// RasterMap paints the scene into a new RGBA image. background, when non-nil,
// is stretched over the whole canvas.
func RasterMap(sc Scene, background image.Image) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, px(sc.Size.Width), px(sc.Size.Height)))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(sc.Background.RGBA()), image.Point{}, draw.Src)
	if background != nil {
		draw.BiLinear.Scale(dst, dst.Bounds(), background, background.Bounds(), draw.Over, nil)
	}

	outline := image.NewUniform(color.NRGBA{A: uint8(math.Round(markerStrokeOpacity * 255))})
	for _, m := range sc.Markers {
		fillCircle(dst, m.Center, m.Diameter/2+markerStrokeWidth/2, outline)
		fillCircle(dst, m.Center, m.Diameter/2-markerStrokeWidth/2, image.NewUniform(m.Fill.RGBA()))
	}
	if h := sc.Highlight; h != nil {
		halo := color.NRGBA{R: HaloColor.R, G: HaloColor.G, B: HaloColor.B, A: uint8(math.Round(HaloOpacity * 255))}
		fillCircle(dst, h.Center, h.Diameter*HaloScale/2, image.NewUniform(halo))
	}
	return dst
}

// RasterGlyph strokes a glyph onto a canvas filled with bg.
func RasterGlyph(shape glyph.Shape, stroke glyph.Stroke, size domain.Size, bg domain.RGB) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, px(size.Width), px(size.Height)))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg.RGBA()), image.Point{}, draw.Src)

	pen := image.NewUniform(stroke.Color.RGBA())
	half := stroke.Width / 2
	for _, p := range shape {
		pl := p.Flatten()
		pts := pl.Points
		if pl.Closed && len(pts) > 1 {
			pts = append(append([]domain.Point(nil), pts...), pts[0])
		}
		for i := 1; i < len(pts); i++ {
			fillPolygon(dst, segmentQuad(pts[i-1], pts[i], half), pen)
		}
		// Round caps and joins.
		for _, pt := range pts {
			fillCircle(dst, pt, half, pen)
		}
	}
	return dst
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// segmentQuad is the rectangle covering a stroke of half-width half along a→b.
func segmentQuad(a, b domain.Point, half float64) []domain.Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return nil
	}
	nx, ny := -dy/l*half, dx/l*half
	return []domain.Point{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	}
}

// rasterizer returns a rasterizer covering the pixel box around r clipped to
// dst, plus that box. ok is false when nothing is visible.
func rasterizer(dst *image.RGBA, r domain.Rect) (*vector.Rasterizer, image.Rectangle, bool) {
	box := image.Rect(
		int(math.Floor(r.Left)), int(math.Floor(r.Top)),
		int(math.Ceil(r.Right)), int(math.Ceil(r.Bottom)),
	).Intersect(dst.Bounds())
	if box.Empty() {
		return nil, box, false
	}
	z := vector.NewRasterizer(box.Dx(), box.Dy())
	z.DrawOp = draw.Over
	return z, box, true
}

func fillPolygon(dst *image.RGBA, pts []domain.Point, src image.Image) {
	if len(pts) < 3 {
		return
	}
	r := domain.Rect{Left: pts[0].X, Right: pts[0].X, Top: pts[0].Y, Bottom: pts[0].Y}
	for _, p := range pts[1:] {
		r.Left, r.Right = math.Min(r.Left, p.X), math.Max(r.Right, p.X)
		r.Top, r.Bottom = math.Min(r.Top, p.Y), math.Max(r.Bottom, p.Y)
	}
	z, box, ok := rasterizer(dst, r)
	if !ok {
		return
	}
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	z.MoveTo(float32(pts[0].X-ox), float32(pts[0].Y-oy))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X-ox), float32(p.Y-oy))
	}
	z.ClosePath()
	z.Draw(dst, box, src, image.Point{})
}

func fillCircle(dst *image.RGBA, c domain.Point, radius float64, src image.Image) {
	if radius <= 0 {
		return
	}
	z, box, ok := rasterizer(dst, domain.Rect{
		Left: c.X - radius, Top: c.Y - radius,
		Right: c.X + radius, Bottom: c.Y + radius,
	})
	if !ok {
		return
	}
	x, y := float32(c.X-float64(box.Min.X)), float32(c.Y-float64(box.Min.Y))
	r := float32(radius)
	k := float32(kappa) * r
	z.MoveTo(x+r, y)
	z.CubeTo(x+r, y+k, x+k, y+r, x, y+r)
	z.CubeTo(x-k, y+r, x-r, y+k, x-r, y)
	z.CubeTo(x-r, y-k, x-k, y-r, x, y-r)
	z.CubeTo(x+k, y-r, x+r, y-k, x+r, y)
	z.ClosePath()
	z.Draw(dst, box, src, image.Point{})
}
