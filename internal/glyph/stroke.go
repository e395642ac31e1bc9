package glyph

import "github.com/couchcryptid/volcano-map-service/internal/domain"

// Line cap and join styles understood by the renderers.
const (
	CapRound  = "round"
	JoinRound = "round"
)

// Stroke is the pen used for every primitive of a glyph.
type Stroke struct {
	Color domain.RGB
	Width float64
	Cap   string
	Join  string
}

// DefaultStroke is the orange pen of the detail page.
var DefaultStroke = Stroke{
	Color: domain.RGB{R: 255, G: 140, B: 0},
	Width: 7,
	Cap:   CapRound,
	Join:  JoinRound,
}
