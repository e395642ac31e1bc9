package render

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/couchcryptid/volcano-map-service/internal/domain"
	"github.com/couchcryptid/volcano-map-service/internal/glyph"
)

const (
	fontFamily = `font-family="Roboto,&quot;Helvetica Neue&quot;,Helvetica,Arial,sans-serif"`

	// markerShadow approximates the soft drop shadow under each map marker.
	markerShadow = `  <filter id="markerShadow" x="-100%" y="-100%" width="300%" height="300%">
    <feGaussianBlur in="SourceAlpha" stdDeviation="3"/>
    <feComponentTransfer><feFuncA type="linear" slope="0.35"/></feComponentTransfer>
    <feMerge><feMergeNode/><feMergeNode in="SourceGraphic"/></feMerge>
  </filter>
  <filter id="haloGlow" x="-100%" y="-100%" width="300%" height="300%">
    <feGaussianBlur in="SourceGraphic" stdDeviation="4"/>
    <feMerge><feMergeNode/><feMergeNode in="SourceGraphic"/></feMerge>
  </filter>
`
)

// WriteMapSVG paints the map scene.
func WriteMapSVG(w io.Writer, sc Scene) error {
	b := &bytes.Buffer{}
	width, height := px(sc.Size.Width), px(sc.Size.Height)
	canvas := svg.New(b)
	canvas.Start(width, height, fontFamily)
	canvas.Def()
	_, _ = io.WriteString(canvas.Writer, markerShadow)
	canvas.DefEnd()

	canvas.Rect(0, 0, width, height, fill(sc.Background))
	if sc.BackgroundHref != "" {
		canvas.Image(0, 0, width, height, sc.BackgroundHref, `preserveAspectRatio="none"`)
	}

	canvas.Group(`id="markers"`, `filter="url(#markerShadow)"`,
		`stroke="#000"`, fmt.Sprintf(`stroke-opacity="%.3f"`, markerStrokeOpacity),
		fmt.Sprintf(`stroke-width="%g"`, markerStrokeWidth))
	for _, m := range sc.Markers {
		canvas.Path(circlePath(m.Center, m.Diameter), fill(m.Fill), dataID(m.ID))
	}
	canvas.Gend()

	if h := sc.Highlight; h != nil {
		canvas.Group(`id="highlight"`, `filter="url(#haloGlow)"`, `stroke="none"`)
		canvas.Path(circlePath(h.Center, h.Diameter*HaloScale), fill(HaloColor),
			fmt.Sprintf(`fill-opacity="%.3f"`, HaloOpacity), dataID(h.ID))
		canvas.Gend()
	}

	canvas.End()
	_, err := w.Write(b.Bytes())
	return err
}

// WriteGlyphSVG draws a single glyph on a transparent canvas.
func WriteGlyphSVG(w io.Writer, shape glyph.Shape, stroke glyph.Stroke, size domain.Size) error {
	b := &bytes.Buffer{}
	canvas := svg.New(b)
	canvas.Start(px(size.Width), px(size.Height))
	writeShape(canvas, shape, stroke)
	canvas.End()
	_, err := w.Write(b.Bytes())
	return err
}

// WriteDetailSVG draws the detail card. A nil detail renders the fixed
// not-found message and no glyph.
func WriteDetailSVG(w io.Writer, d *domain.Detail, layout DetailLayout, stroke glyph.Stroke) error {
	b := &bytes.Buffer{}
	side := px(layout.Side)
	canvas := svg.New(b)
	canvas.Start(side, side, fontFamily)
	canvas.Rect(0, 0, side, side, fill(DetailBackground))

	if d == nil {
		lines := strings.Split(domain.NotFoundMessage, "\n")
		y := layout.Side/2 - float64(len(lines)-1)*10
		for _, line := range lines {
			canvas.Text(px(layout.Side/2), px(y), line,
				`fill="#fff"`, `font-size="16"`, `text-anchor="middle"`, `dominant-baseline="middle"`)
			y += 20
		}
		canvas.End()
		_, err := w.Write(b.Bytes())
		return err
	}

	writeShape(canvas, glyph.Geometry(d.Glyph, layout.GlyphX, layout.GlyphY, layout.GlyphSize), stroke)

	canvas.Group(`fill="#fff"`, `stroke="none"`, `text-anchor="middle"`, `dominant-baseline="hanging"`)
	canvas.Text(px(layout.Side/2), px(layout.TitleY), d.Title, `font-size="22"`)
	y := layout.LinesY
	for _, line := range d.Lines {
		canvas.Text(px(layout.Side/2), px(y), line, `font-size="14"`)
		y += layout.LineStep
	}
	canvas.Gend()

	canvas.End()
	_, err := w.Write(b.Bytes())
	return err
}

// WriteLegendSVG draws every glyph kind in a grid with its name underneath.
func WriteLegendSVG(w io.Writer, cell float64, columns int, stroke glyph.Stroke) error {
	kinds := domain.AllGlyphKinds()
	if columns <= 0 {
		columns = 4
	}
	rows := (len(kinds) + columns - 1) / columns

	b := &bytes.Buffer{}
	canvas := svg.New(b)
	canvas.Start(px(cell*float64(columns)), px(cell*float64(rows)), fontFamily)
	canvas.Rect(0, 0, px(cell*float64(columns)), px(cell*float64(rows)), fill(DetailBackground))
	for i, kind := range kinds {
		cx := cell*float64(i%columns) + cell/2
		cy := cell*float64(i/columns) + cell*0.4
		canvas.Gid("glyph-" + string(kind))
		writeShape(canvas, glyph.Geometry(kind, cx, cy, cell*0.45), stroke)
		canvas.Text(px(cx), px(cy+cell*0.45), string(kind),
			`fill="#fff"`, `font-size="12"`, `text-anchor="middle"`)
		canvas.Gend()
	}
	canvas.End()
	_, err := w.Write(b.Bytes())
	return err
}

func writeShape(canvas *svg.SVG, shape glyph.Shape, stroke glyph.Stroke) {
	canvas.Group(`fill="none"`,
		fmt.Sprintf(`stroke="%s"`, stroke.Color.Hex()),
		fmt.Sprintf(`stroke-width="%g"`, stroke.Width),
		fmt.Sprintf(`stroke-linecap="%s"`, stroke.Cap),
		fmt.Sprintf(`stroke-linejoin="%s"`, stroke.Join))
	for _, p := range shape {
		canvas.Path(primitivePath(p))
	}
	canvas.Gend()
}

func fill(c domain.RGB) string {
	return fmt.Sprintf(`fill="%s"`, c.Hex())
}

func dataID(id int) string {
	return `data-id="` + strconv.Itoa(id) + `"`
}

func px(v float64) int {
	return int(math.Round(v))
}
