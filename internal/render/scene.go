package render

import (
	"github.com/couchcryptid/volcano-map-service/internal/domain"
)

// Map scene colors.
var (
	MapBackground = domain.RGB{R: 14, G: 15, B: 18}
	HaloColor     = domain.RGB{R: 255, G: 255, B: 255}
)

const (
	// HaloOpacity is the alpha of the hover halo, 36/255.
	HaloOpacity = 36.0 / 255.0
	// HaloScale is the halo diameter relative to the marker diameter.
	HaloScale = 1.8
	// markerStrokeOpacity is the alpha of the thin dark marker outline, 40/255.
	markerStrokeOpacity = 40.0 / 255.0
	markerStrokeWidth   = 0.6
)

// Marker is one plotted volcano.
type Marker struct {
	ID       int
	Name     string
	Center   domain.Point
	Diameter float64
	Fill     domain.RGB
}

// Scene is everything needed to paint the map once. Painting a scene has no
// side effects, so it can be repeated at will.
type Scene struct {
	Size       domain.Size
	Background domain.RGB
	// BackgroundHref is the image reference used by vector output. Empty means no image.
	BackgroundHref string
	Markers        []Marker
	// Highlight is the hovered marker, drawn again with a halo on top.
	Highlight *Marker
}

// BuildScene projects every record onto a canvas of the given size, in record
// order. hover, when non-nil, is highlighted.
func BuildScene(volcanoes []domain.Volcano, size domain.Size, hover *domain.Volcano) Scene {
	sc := Scene{
		Size:       size,
		Background: MapBackground,
		Markers:    make([]Marker, 0, len(volcanoes)),
	}
	for _, v := range volcanoes {
		sc.Markers = append(sc.Markers, markerFor(v, size))
	}
	if hover != nil {
		m := markerFor(*hover, size)
		sc.Highlight = &m
	}
	return sc
}

func markerFor(v domain.Volcano, size domain.Size) Marker {
	return Marker{
		ID:       v.ID,
		Name:     v.Name,
		Center:   domain.ProjectVolcano(v, size),
		Diameter: v.DisplayRadius,
		Fill:     domain.ElevationColor(v.EffectiveElevation()),
	}
}

// DetailLayout positions the glyph and text of the detail card on a square canvas.
type DetailLayout struct {
	Side      float64
	GlyphX    float64
	GlyphY    float64
	GlyphSize float64
	TitleY    float64
	LinesY    float64
	LineStep  float64
}

// DetailBackground is the detail card fill.
var DetailBackground = domain.RGB{R: 0x25, G: 0x31, B: 0x30}

// NewDetailLayout lays out a detail card of the given side length.
func NewDetailLayout(side float64) DetailLayout {
	return DetailLayout{
		Side:      side,
		GlyphX:    side / 2,
		GlyphY:    side * 0.30,
		GlyphSize: side * 0.32,
		TitleY:    side * 0.55,
		LinesY:    side * 0.60,
		LineStep:  20,
	}
}
