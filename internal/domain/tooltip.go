package domain

import (
	"fmt"
	"math"
	"strconv"
)

// Placeholder shown for absent text fields.
const Placeholder = "N/A"

// Tooltip offsets relative to the pointer, in pixels.
const (
	tooltipOffsetX   = 12.0
	tooltipOffsetY   = 8.0
	tooltipFlipGap   = 18.0
	tooltipTopMargin = 6.0
)

// Tooltip is the hover card content: a title region and body lines.
type Tooltip struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

// NewTooltip builds the hover card for a record.
func NewTooltip(v Volcano) Tooltip {
	place := v.Country
	if place == "" {
		place = v.Location
	}
	return Tooltip{
		Title: fmt.Sprintf("%s (%s)", v.Name, place),
		Lines: []string{
			"Type: " + orPlaceholder(v.Type),
			"Category: " + orPlaceholder(v.Category),
			fmt.Sprintf("Lat / Lon: %s°, %s°", formatCoord(v.Lat), formatCoord(v.Lon)),
			"Elevation: " + FormatElevation(v),
			"Status: " + orPlaceholder(v.Status),
			"Last Known Eruption: " + orPlaceholder(v.LastEruption),
		},
	}
}

// PlaceTooltip positions a tooltip of the given size next to the pointer so it
// stays inside container. It sits below-right of the pointer by default, flips
// left when it would overflow the right edge, flips up when it would overflow
// the bottom, and never rises above the container's top margin.
func PlaceTooltip(pointer Point, tooltip Size, container Rect) Point {
	left := pointer.X + tooltipOffsetX
	top := pointer.Y + tooltipOffsetY

	if left+tooltip.Width > container.Right {
		left = pointer.X - tooltip.Width - tooltipFlipGap
	}
	if top+tooltip.Height > container.Bottom {
		top = pointer.Y - tooltip.Height - tooltipFlipGap
	}
	if top < container.Top+tooltipTopMargin {
		top = container.Top + tooltipTopMargin
	}
	return Point{X: left, Y: top}
}

// FormatElevation renders "<meters> m", or the placeholder when unknown.
func FormatElevation(v Volcano) string {
	if !v.HasElevation {
		return Placeholder
	}
	return strconv.FormatFloat(v.Elevation, 'f', -1, 64) + " m"
}

func formatCoord(c float64) string {
	return strconv.FormatFloat(math.Round(c*100)/100, 'f', 2, 64)
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
