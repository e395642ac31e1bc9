// Package domain models volcano records from the Smithsonian-style volcano
// catalogue CSV and the pure geometry used to plot them.
//
// # Data Source
//
// The dataset is a single CSV file with a header row. Column names vary between
// exports, so each logical field accepts a short list of spellings and the
// first non-empty match wins:
//
//	Name:      "Volcano Name" | "Volcano_Name"
//	Category:  "TypeCategory" | "Type Category"
//	Others:    "Country", "Location", "Latitude", "Longitude",
//	           "Elevation (m)", "Type", "Status", "Last Known Eruption"
//
// Rows whose Latitude or Longitude is not a finite number are left off the map.
// This is not an error: partial or malformed exports must still render. A
// record's ID is its zero-based data row index in the file, so IDs stay stable
// across reloads of the same file even when earlier rows are skipped. Skipped
// rows still resolve through [Dataset.Record] for the detail view.
//
// # Elevation
//
// Elevation is optional. A missing or unparseable value is displayed as
// unknown but counts as 0 m for marker color and size. Elevation drives two
// derived values:
//
//	Radius: clamp(elev, -6000, 7000) mapped linearly onto [3, 20] px,
//	        then clamped to [3, 26]. Computed once when the record is built.
//	Color:  t = clamp((elev + 6000) / 13000, 0, 1), blended through
//	        #df0101 (t=0) → #cd8067 (t=0.5) → #ecdc9c (t=1) per RGB channel.
//
// # Projection
//
// Plate carrée (equirectangular). Longitude wraps into [-180, 180) before
// mapping onto [0, width]; latitude maps 90 → 0 and -90 → height with no
// clipping, so out-of-range latitudes land off-canvas.
//
// # Glyph Classification
//
// The category text (or the type text when the category is empty) is
// lower-cased and matched against an ordered list of substring rules; the first
// rule that matches picks one of sixteen [GlyphKind] values and "generic" is the
// fallback. See [Classify] for the order.
//
// # Hit Testing
//
// A pointer hits a record when its distance to the projected center is at most
// Radius/2 + 4 px. Records are tested in dataset order and the first hit wins,
// even if a later marker is closer. See [FindHit].
package domain
