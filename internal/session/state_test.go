package session

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/volcano-map-service/internal/domain"
)

// testDataset has two overlapping markers near the map center followed by a
// distant one.
func testDataset() *domain.Dataset {
	return domain.BuildDataset([]domain.RawRow{
		{"Volcano Name": "First", "Country": "A", "Latitude": "0", "Longitude": "0", "Elevation (m)": "1000"},
		{"Volcano Name": "Second", "Country": "B", "Latitude": "0", "Longitude": "1"},
		{"Volcano Name": "Far", "Location": "Sea", "Latitude": "45", "Longitude": "90"},
	}, nil)
}

var mapCanvas = domain.Size{Width: 360, Height: 180}

func TestCanvasSize(t *testing.T) {
	img := domain.Size{Width: 2048, Height: 1024}
	tests := []struct {
		name      string
		container float64
		want      domain.Size
	}{
		{"wide container", 1000, domain.Size{Width: 1000, Height: 500}},
		{"narrow container clamps to minimum", 120, domain.Size{Width: 200, Height: 100}},
		{"height rounds", 301, domain.Size{Width: 301, Height: 151}},
		{"NaN falls back to minimum", math.NaN(), domain.Size{Width: 200, Height: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanvasSize(tt.container, img))
		})
	}
}

func TestCanvasSize_DegenerateImage(t *testing.T) {
	assert.Equal(t, domain.Size{Width: 400, Height: 200}, CanvasSize(400, domain.Size{}))
}

func TestDetailCanvasSize(t *testing.T) {
	assert.Equal(t, domain.Size{Width: 260, Height: 260}, DetailCanvasSize(100))
	assert.Equal(t, domain.Size{Width: 640, Height: 640}, DetailCanvasSize(640))
}

func TestPointerMove(t *testing.T) {
	s := New(testDataset(), mapCanvas)
	assert.False(t, s.Hover.Active())

	t.Run("overlap picks the first record", func(t *testing.T) {
		next := s.PointerMove(domain.Point{X: 180.5, Y: 90})
		v, ok := next.Hover.Volcano()
		require.True(t, ok)
		assert.Equal(t, "First", v.Name)
	})

	t.Run("miss clears hover", func(t *testing.T) {
		hovered := s.PointerMove(domain.Point{X: 180, Y: 90})
		require.True(t, hovered.Hover.Active())
		next := hovered.PointerMove(domain.Point{X: 10, Y: 10})
		assert.False(t, next.Hover.Active())
	})

	t.Run("transitions do not mutate the receiver", func(t *testing.T) {
		_ = s.PointerMove(domain.Point{X: 180, Y: 90})
		assert.False(t, s.Hover.Active())
	})
}

func TestPointerMove_NilDataset(t *testing.T) {
	s := New(nil, mapCanvas).PointerMove(domain.Point{X: 1, Y: 1})
	assert.False(t, s.Hover.Active())
}

func TestPointerLeave(t *testing.T) {
	s := New(testDataset(), mapCanvas).PointerMove(domain.Point{X: 270, Y: 45})
	require.True(t, s.Hover.Active())
	assert.False(t, s.PointerLeave().Hover.Active())
}

func TestClick(t *testing.T) {
	s := New(testDataset(), mapCanvas)

	_, _, ok := s.Click()
	assert.False(t, ok, "clicking empty space does nothing")

	s = s.PointerMove(domain.Point{X: 270, Y: 45})
	_, nav, ok := s.Click()
	require.True(t, ok)
	assert.Equal(t, 2, nav.ID)
	assert.Equal(t, "/detail?id=2", nav.URL())
}

func TestResizeKeepsHover(t *testing.T) {
	s := New(testDataset(), mapCanvas).PointerMove(domain.Point{X: 270, Y: 45})
	resized := s.Resize(720, domain.Size{Width: 2, Height: 1})
	assert.Equal(t, domain.Size{Width: 720, Height: 360}, resized.Canvas)
	assert.True(t, resized.Hover.Active())
}

func TestTooltip(t *testing.T) {
	container := domain.Rect{Right: 360, Bottom: 180}
	s := New(testDataset(), mapCanvas)

	_, ok := s.Tooltip(domain.Point{}, domain.Size{}, container)
	assert.False(t, ok)

	s = s.PointerMove(domain.Point{X: 270, Y: 45})
	tip, ok := s.Tooltip(domain.Point{X: 270, Y: 45}, domain.Size{Width: 120, Height: 60}, container)
	require.True(t, ok)
	assert.Equal(t, "Far (Sea)", tip.Title)
	assert.Contains(t, tip.Lines, "Elevation: N/A")
	assert.Equal(t, domain.Point{X: 132, Y: 53}, tip.Position, "flips left at the right edge")
}
