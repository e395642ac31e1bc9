package domain

import (
	"errors"
	"strconv"
	"strings"
)

// ErrVolcanoNotFound is returned when a detail id is not a number or is
// outside the source row range.
var ErrVolcanoNotFound = errors.New("volcano not found")

// NotFoundMessage is the fixed text shown in place of a detail card.
const NotFoundMessage = "No volcano found for this ID.\nCheck the link or go back to the map."

// Detail is the view model for the single-volcano page.
type Detail struct {
	Volcano Volcano   `json:"volcano"`
	Glyph   GlyphKind `json:"glyph"`
	Title   string    `json:"title"`
	Lines   []string  `json:"lines"`
}

// NewDetail builds the detail card for a record.
func NewDetail(v Volcano) Detail {
	return Detail{
		Volcano: v,
		Glyph:   ClassifyVolcano(v),
		Title:   v.Name,
		Lines: []string{
			"Country: " + orPlaceholder(v.Country),
			"Category: " + orPlaceholder(ClassificationText(v)),
			"Status: " + orPlaceholder(v.Status),
			"Elevation: " + FormatElevation(v),
			"Last eruption: " + orPlaceholder(v.LastEruption),
		},
	}
}

// ParseID reads the leading integer of a detail id query value, so "12",
// " 12" and "12.9" all give 12. Values without leading digits, negative
// values and values that overflow are not found.
func ParseID(s string) (int, error) {
	s = strings.TrimLeft(s, " \t\n\r")
	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, ErrVolcanoNotFound
	}
	id, err := strconv.Atoi(sign + s[:end])
	if err != nil || id < 0 {
		return 0, ErrVolcanoNotFound
	}
	return id, nil
}

// LookupDetail resolves an id query value against every source row of the
// dataset, including rows that were not plotted.
func LookupDetail(ds *Dataset, idParam string) (Detail, error) {
	id, err := ParseID(idParam)
	if err != nil {
		return Detail{}, err
	}
	v, ok := ds.Record(id)
	if !ok {
		return Detail{}, ErrVolcanoNotFound
	}
	return NewDetail(v), nil
}
