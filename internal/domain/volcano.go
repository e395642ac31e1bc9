package domain

import (
	"strings"
	"time"
)

// Column names recognized in the dataset header. Fields with more than one
// spelling list every accepted variant in lookup order.
var (
	ColumnName         = []string{"Volcano Name", "Volcano_Name"}
	ColumnCountry      = []string{"Country"}
	ColumnLocation     = []string{"Location"}
	ColumnLatitude     = []string{"Latitude"}
	ColumnLongitude    = []string{"Longitude"}
	ColumnElevation    = []string{"Elevation (m)"}
	ColumnType         = []string{"Type"}
	ColumnCategory     = []string{"TypeCategory", "Type Category"}
	ColumnStatus       = []string{"Status"}
	ColumnLastEruption = []string{"Last Known Eruption"}
)

// RawRow is one data row of the source CSV keyed by header name.
type RawRow map[string]string

// Get returns the first non-empty value among the given column spellings.
func (r RawRow) Get(columns ...string) string {
	for _, c := range columns {
		if v := strings.TrimSpace(r[c]); v != "" {
			return v
		}
	}
	return ""
}

// Volcano is a plotted record. Values are immutable once built by ParseRow.
type Volcano struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Country      string  `json:"country,omitempty"`
	Location     string  `json:"location,omitempty"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	Elevation    float64 `json:"elevation,omitempty"`
	HasElevation bool    `json:"has_elevation"`
	Type         string  `json:"type,omitempty"`
	Category     string  `json:"category,omitempty"`
	Status       string  `json:"status,omitempty"`
	LastEruption string  `json:"last_eruption,omitempty"`

	// DisplayRadius is the marker diameter in pixels, derived from elevation.
	DisplayRadius float64 `json:"display_radius"`
}

// EffectiveElevation is the elevation used for color and size: unknown counts as 0.
func (v Volcano) EffectiveElevation() float64 {
	if !v.HasElevation {
		return 0
	}
	return v.Elevation
}

// Dataset is the record set for one load of the source file.
// A reload builds a new Dataset; an existing one is never patched.
type Dataset struct {
	// Volcanoes are the plotted records in source order.
	Volcanoes []Volcano
	RowCount  int
	Skipped   int
	LoadedAt  time.Time

	// records holds one entry per source row, indexed by ID.
	records []Volcano
	byID    map[int]int
}

func newDataset(records, plotted []Volcano) *Dataset {
	byID := make(map[int]int, len(plotted))
	for i, v := range plotted {
		byID[v.ID] = i
	}
	return &Dataset{
		Volcanoes: plotted,
		RowCount:  len(records),
		Skipped:   len(records) - len(plotted),
		LoadedAt:  clock.Now(),
		records:   records,
		byID:      byID,
	}
}

// ByID returns the plotted record with the given row index.
func (d *Dataset) ByID(id int) (Volcano, bool) {
	if d == nil {
		return Volcano{}, false
	}
	i, ok := d.byID[id]
	if !ok {
		return Volcano{}, false
	}
	return d.Volcanoes[i], true
}

// Record returns the record for any source row, plotted or not. Skipped rows
// carry zero coordinates.
func (d *Dataset) Record(id int) (Volcano, bool) {
	if d == nil || id < 0 || id >= len(d.records) {
		return Volcano{}, false
	}
	return d.records[id], true
}

// Len returns the number of plotted records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Volcanoes)
}

// Point is a pixel position on a drawing surface.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is the pixel size of a drawing surface or overlay.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}
