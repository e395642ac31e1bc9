// Package geojson exports the plotted volcano set as a GeoJSON FeatureCollection.
package geojson

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/couchcryptid/volcano-map-service/internal/domain"
)

// ContentType is the media type of the export.
const ContentType = "application/geo+json"

// FeatureCollection converts records, in order, into point features with
// their display attributes as properties.
func FeatureCollection(volcanoes []domain.Volcano) *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{
		Features: make([]*geojson.Feature, 0, len(volcanoes)),
	}
	if len(volcanoes) == 0 {
		return fc
	}

	bounds := geom.NewBounds(geom.XY)
	for _, v := range volcanoes {
		pt := geom.NewPointFlat(geom.XY, []float64{domain.NormalizeLongitude(v.Lon), v.Lat})
		bounds.Extend(pt)
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:         strconv.Itoa(v.ID),
			Geometry:   pt,
			Properties: properties(v),
		})
	}
	fc.BBox = bounds
	return fc
}

// Encode writes the records as GeoJSON.
func Encode(w io.Writer, volcanoes []domain.Volcano) error {
	b, err := json.Marshal(FeatureCollection(volcanoes))
	if err != nil {
		return fmt.Errorf("marshal geojson: %w", err)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write geojson: %w", err)
	}
	return nil
}

func properties(v domain.Volcano) map[string]any {
	var elevation any
	if v.HasElevation {
		elevation = v.Elevation
	}
	return map[string]any{
		"name":          v.Name,
		"country":       v.Country,
		"location":      v.Location,
		"elevation":     elevation,
		"type":          v.Type,
		"category":      v.Category,
		"status":        v.Status,
		"last_eruption": v.LastEruption,
		"glyph":         string(domain.ClassifyVolcano(v)),
		"radius":        v.DisplayRadius,
		"color":         domain.ElevationColor(v.EffectiveElevation()).Hex(),
	}
}
