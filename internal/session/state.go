// Package session holds the interactive map state and its transitions.
//
// Every transition is a pure function from one State to the next, so the same
// logic serves the HTTP handlers, the export command, and tests.
package session

import (
	"math"
	"strconv"

	"github.com/couchcryptid/volcano-map-service/internal/domain"
)

// Canvas minimums in pixels.
const (
	MinMapWidth      = 200.0
	MinDetailWidth   = 260.0
	defaultMapAspect = 2.0
)

// HoverState is either no hover or a hover over exactly one record.
type HoverState struct {
	active  bool
	volcano domain.Volcano
}

// NoHover is the idle hover state.
func NoHover() HoverState { return HoverState{} }

// Hover is the state of hovering over v.
func Hover(v domain.Volcano) HoverState { return HoverState{active: true, volcano: v} }

// Volcano returns the hovered record.
func (h HoverState) Volcano() (domain.Volcano, bool) {
	return h.volcano, h.active
}

// Active reports whether a record is hovered.
func (h HoverState) Active() bool { return h.active }

// State is the map view: the dataset being shown, the canvas size, and the
// current hover.
type State struct {
	Dataset *domain.Dataset
	Canvas  domain.Size
	Hover   HoverState
}

// Navigation asks the client to open the detail view of one record.
type Navigation struct {
	ID int `json:"id"`
}

// URL is the detail page address for the record.
func (n Navigation) URL() string {
	return "/detail?id=" + strconv.Itoa(n.ID)
}

// New starts a session on ds with the given canvas and no hover.
func New(ds *domain.Dataset, canvas domain.Size) State {
	return State{Dataset: ds, Canvas: canvas, Hover: NoHover()}
}

// Resize recomputes the canvas for a container of the given width and a
// background image of the given size. The hover is kept.
func (s State) Resize(containerWidth float64, image domain.Size) State {
	s.Canvas = CanvasSize(containerWidth, image)
	return s
}

// PointerMove hit-tests the pointer against the plotted records and updates the hover.
func (s State) PointerMove(p domain.Point) State {
	var records []domain.Volcano
	if s.Dataset != nil {
		records = s.Dataset.Volcanoes
	}
	if v, ok := domain.FindHit(p, records, s.Canvas); ok {
		s.Hover = Hover(v)
	} else {
		s.Hover = NoHover()
	}
	return s
}

// PointerLeave clears the hover.
func (s State) PointerLeave() State {
	s.Hover = NoHover()
	return s
}

// Click emits a navigation to the hovered record. It reports false and does
// nothing while no record is hovered.
func (s State) Click() (State, Navigation, bool) {
	v, ok := s.Hover.Volcano()
	if !ok {
		return s, Navigation{}, false
	}
	return s, Navigation{ID: v.ID}, true
}

// TooltipView is a tooltip ready to show: content plus its top-left corner.
type TooltipView struct {
	domain.Tooltip
	Position domain.Point `json:"position"`
}

// Tooltip returns the hovered record's tooltip placed next to pointer inside
// container. It reports false while no record is hovered.
func (s State) Tooltip(pointer domain.Point, size domain.Size, container domain.Rect) (TooltipView, bool) {
	v, ok := s.Hover.Volcano()
	if !ok {
		return TooltipView{}, false
	}
	return TooltipView{
		Tooltip:  domain.NewTooltip(v),
		Position: domain.PlaceTooltip(pointer, size, container),
	}, true
}

// CanvasSize is the map canvas for a container: at least MinMapWidth wide,
// with the height following the image aspect ratio. A degenerate image is
// treated as 2:1.
func CanvasSize(containerWidth float64, image domain.Size) domain.Size {
	w := math.Max(MinMapWidth, containerWidth)
	if math.IsNaN(w) || math.IsInf(w, 0) {
		w = MinMapWidth
	}
	aspect := defaultMapAspect
	if image.Width > 0 && image.Height > 0 {
		aspect = image.Width / image.Height
	}
	return domain.Size{Width: w, Height: math.Round(w / aspect)}
}

// DetailCanvasSize is the square detail canvas for a container, at least
// MinDetailWidth on a side.
func DetailCanvasSize(containerWidth float64) domain.Size {
	side := math.Max(MinDetailWidth, containerWidth)
	if math.IsNaN(side) || math.IsInf(side, 0) {
		side = MinDetailWidth
	}
	return domain.Size{Width: side, Height: side}
}
