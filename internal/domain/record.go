package domain

import (
	"math"
	"strconv"
	"strings"
)

// Elevation range used for both the color ramp and the marker radius.
const (
	MinElevation = -6000.0
	MaxElevation = 7000.0
)

// Marker radius bounds in pixels. The elevation map only reaches
// radiusMapMax; MaxRadius is the hard clamp applied afterwards.
const (
	MinRadius    = 3.0
	radiusMapMax = 20.0
	MaxRadius    = 26.0
)

// UnknownName replaces an empty volcano name.
const UnknownName = "Unknown"

// ParseRow builds a Volcano from one data row. It reports false when latitude
// or longitude is not a finite number; such rows are excluded from the plotted
// set and never surface as errors. The returned record is complete either way
// so the detail view can still show it.
func ParseRow(id int, row RawRow) (Volcano, bool) {
	name := row.Get(ColumnName...)
	if name == "" {
		name = UnknownName
	}

	elev, hasElev := parseFinite(row.Get(ColumnElevation...))

	v := Volcano{
		ID:           id,
		Name:         name,
		Country:      row.Get(ColumnCountry...),
		Location:     row.Get(ColumnLocation...),
		Elevation:    elev,
		HasElevation: hasElev,
		Type:         row.Get(ColumnType...),
		Category:     row.Get(ColumnCategory...),
		Status:       row.Get(ColumnStatus...),
		LastEruption: row.Get(ColumnLastEruption...),
	}
	v.DisplayRadius = DisplayRadius(v.EffectiveElevation())

	lat, latOK := parseFinite(row.Get(ColumnLatitude...))
	lon, lonOK := parseFinite(row.Get(ColumnLongitude...))
	if !latOK || !lonOK {
		return v, false
	}
	v.Lat, v.Lon = lat, lon
	return v, true
}

// SkipFunc is told about each row left out of the plotted set.
type SkipFunc func(index int, row RawRow)

// BuildDataset parses every row in order. All rows stay reachable through
// Dataset.Record; only rows with valid coordinates are plotted. onSkip may be nil.
func BuildDataset(rows []RawRow, onSkip SkipFunc) *Dataset {
	records := make([]Volcano, 0, len(rows))
	plotted := make([]Volcano, 0, len(rows))
	for i, row := range rows {
		v, ok := ParseRow(i, row)
		records = append(records, v)
		if !ok {
			if onSkip != nil {
				onSkip(i, row)
			}
			continue
		}
		plotted = append(plotted, v)
	}
	return newDataset(records, plotted)
}

// DisplayRadius maps elevation in meters to a marker diameter in pixels.
// The result is non-decreasing in elevation and always within [MinRadius, MaxRadius].
func DisplayRadius(elevation float64) float64 {
	if math.IsNaN(elevation) {
		elevation = 0
	}
	e := clamp(elevation, MinElevation, MaxElevation)
	r := mapRange(e, MinElevation, MaxElevation, MinRadius, radiusMapMax)
	return clamp(r, MinRadius, MaxRadius)
}

// parseFinite parses a decimal string, rejecting empty input, NaN and infinities.
func parseFinite(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// mapRange linearly maps v from [inMin, inMax] to [outMin, outMax] without clamping.
func mapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
