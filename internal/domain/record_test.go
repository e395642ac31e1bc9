package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testFuji    = "Fuji"
	testJapan   = "Japan"
	testStrato  = "Stratovolcano"
	testUnknown = "unknown type"
)

func fujiRow() RawRow {
	return RawRow{
		"Volcano Name":        testFuji,
		"Country":             testJapan,
		"Location":            "Honshu-Japan",
		"Latitude":            "35.35",
		"Longitude":           "138.73",
		"Elevation (m)":       "3776",
		"Type":                testStrato,
		"TypeCategory":        testStrato,
		"Status":              "Historical",
		"Last Known Eruption": "D3",
	}
}

func TestParseRow(t *testing.T) {
	t.Run("complete row", func(t *testing.T) {
		v, ok := ParseRow(7, fujiRow())
		require.True(t, ok)

		want := Volcano{
			ID:            7,
			Name:          testFuji,
			Country:       testJapan,
			Location:      "Honshu-Japan",
			Lat:           35.35,
			Lon:           138.73,
			Elevation:     3776,
			HasElevation:  true,
			Type:          testStrato,
			Category:      testStrato,
			Status:        "Historical",
			LastEruption:  "D3",
			DisplayRadius: DisplayRadius(3776),
		}
		if diff := cmp.Diff(want, v); diff != "" {
			t.Errorf("ParseRow mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("alternate header spellings", func(t *testing.T) {
		row := RawRow{
			"Volcano_Name":  "Kilauea",
			"Latitude":      "19.425",
			"Longitude":     "-155.292",
			"Type Category": "Shield",
		}
		v, ok := ParseRow(0, row)
		require.True(t, ok)
		assert.Equal(t, "Kilauea", v.Name)
		assert.Equal(t, "Shield", v.Category)
	})

	t.Run("first spelling wins when both present", func(t *testing.T) {
		row := RawRow{
			"Volcano Name": "Primary",
			"Volcano_Name": "Secondary",
			"Latitude":     "0",
			"Longitude":    "0",
		}
		v, ok := ParseRow(0, row)
		require.True(t, ok)
		assert.Equal(t, "Primary", v.Name)
	})

	t.Run("missing name gets placeholder", func(t *testing.T) {
		v, ok := ParseRow(0, RawRow{"Latitude": "1", "Longitude": "2"})
		require.True(t, ok)
		assert.Equal(t, UnknownName, v.Name)
		assert.Empty(t, v.Country)
	})

	t.Run("invalid elevation counts as zero", func(t *testing.T) {
		row := fujiRow()
		row["Elevation (m)"] = "Unknown"
		v, ok := ParseRow(0, row)
		require.True(t, ok)
		assert.False(t, v.HasElevation)
		assert.Equal(t, 0.0, v.EffectiveElevation())
		assert.Equal(t, DisplayRadius(0), v.DisplayRadius)
	})

	rejects := []struct {
		name string
		lat  string
		lon  string
	}{
		{"empty latitude", "", "10"},
		{"empty longitude", "10", ""},
		{"text latitude", "north", "10"},
		{"text longitude", "10", "east"},
		{"NaN latitude", "NaN", "10"},
		{"infinite longitude", "10", "+Inf"},
	}
	for _, tt := range rejects {
		t.Run(tt.name, func(t *testing.T) {
			row := fujiRow()
			row["Latitude"] = tt.lat
			row["Longitude"] = tt.lon
			v, ok := ParseRow(0, row)
			assert.False(t, ok)
			assert.Equal(t, testFuji, v.Name, "non-coordinate fields are still parsed")
		})
	}
}

func TestBuildDataset(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixed))
	defer SetClock(nil)

	bad := fujiRow()
	bad["Latitude"] = "n/a"
	rows := []RawRow{fujiRow(), bad, {"Latitude": "-10", "Longitude": "200"}}

	var skipped []int
	ds := BuildDataset(rows, func(i int, _ RawRow) { skipped = append(skipped, i) })

	assert.Equal(t, 3, ds.RowCount)
	assert.Equal(t, 1, ds.Skipped)
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, fixed, ds.LoadedAt)

	// IDs keep the source row index even after a skipped row.
	assert.Equal(t, 0, ds.Volcanoes[0].ID)
	assert.Equal(t, 2, ds.Volcanoes[1].ID)

	assert.Equal(t, []int{1}, skipped)

	_, ok := ds.ByID(1)
	assert.False(t, ok, "skipped row is not plotted")
	v, ok := ds.ByID(2)
	require.True(t, ok)
	assert.Equal(t, 200.0, v.Lon)

	rec, ok := ds.Record(1)
	require.True(t, ok, "skipped row keeps its record")
	assert.Equal(t, testFuji, rec.Name)
	assert.Equal(t, DisplayRadius(3776), rec.DisplayRadius)
	assert.Zero(t, rec.Lat)

	_, ok = ds.Record(3)
	assert.False(t, ok)
	_, ok = ds.Record(-1)
	assert.False(t, ok)
}

func TestDataset_NilSafe(t *testing.T) {
	var ds *Dataset
	assert.Equal(t, 0, ds.Len())
	_, ok := ds.ByID(0)
	assert.False(t, ok)
	_, ok = ds.Record(0)
	assert.False(t, ok)
}

func TestDisplayRadius(t *testing.T) {
	tests := []struct {
		name     string
		elev     float64
		expected float64
	}{
		{"deep floor clamps low", -11000, MinRadius},
		{"range minimum", MinElevation, MinRadius},
		{"sea level", 500, 11.5},
		{"range maximum", MaxElevation, 20},
		{"above range clamps", 9000, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, DisplayRadius(tt.elev), 1e-9)
		})
	}

	t.Run("monotonic and bounded", func(t *testing.T) {
		prev := DisplayRadius(-20000)
		for e := -20000.0; e <= 20000; e += 37 {
			r := DisplayRadius(e)
			assert.GreaterOrEqual(t, r, prev)
			assert.GreaterOrEqual(t, r, MinRadius)
			assert.LessOrEqual(t, r, MaxRadius)
			prev = r
		}
	})
}
