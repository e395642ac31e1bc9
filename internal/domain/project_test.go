package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLongitude(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{179.5, 179.5},
		{180, -180},
		{-180, -180},
		{190, -170},
		{-190, 170},
		{540, -180},
		{725, 5},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, NormalizeLongitude(tt.in), 1e-9, "lon %v", tt.in)
	}
}

func TestProject(t *testing.T) {
	size := Size{Width: 360, Height: 180}

	tests := []struct {
		name     string
		lon, lat float64
		want     Point
	}{
		{"origin", 0, 0, Point{180, 90}},
		{"north pole", 0, 90, Point{180, 0}},
		{"south west corner", -180, -90, Point{0, 180}},
		{"east wraps to west", 180, 0, Point{0, 90}},
		{"latitude extrapolates", 0, 120, Point{180, -30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(tt.lon, tt.lat, size)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestProject_WrapInvariance(t *testing.T) {
	size := Size{Width: 1000, Height: 500}
	for _, lon := range []float64{-179.9, -45.25, 0, 12.5, 138.73, 179.99} {
		base := Project(lon, 10, size)
		for k := -3; k <= 3; k++ {
			got := Project(lon+float64(k)*360, 10, size)
			assert.InDelta(t, base.X, got.X, 1e-6, "lon %v + %d*360", lon, k)
			assert.Equal(t, base.Y, got.Y)
		}
	}
}

func TestProject_ScalesWithCanvas(t *testing.T) {
	small := Project(90, 45, Size{Width: 360, Height: 180})
	large := Project(90, 45, Size{Width: 720, Height: 360})
	assert.InDelta(t, small.X*2, large.X, 1e-9)
	assert.InDelta(t, small.Y*2, large.Y, 1e-9)
}
