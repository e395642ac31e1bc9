package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindHit(t *testing.T) {
	size := Size{Width: 360, Height: 180}
	// Both project to (180, 90); a has hit radius 10/2+4 = 9.
	a := Volcano{ID: 3, Name: "A", Lat: 0, Lon: 0, DisplayRadius: 10}
	b := Volcano{ID: 5, Name: "B", Lat: 0, Lon: 1, DisplayRadius: 20}
	far := Volcano{ID: 9, Name: "Far", Lat: 45, Lon: 90, DisplayRadius: 26}

	t.Run("inside radius", func(t *testing.T) {
		v, ok := FindHit(Point{185, 90}, []Volcano{a, far}, size)
		require.True(t, ok)
		assert.Equal(t, 3, v.ID)
	})

	t.Run("boundary is inclusive", func(t *testing.T) {
		_, ok := FindHit(Point{189, 90}, []Volcano{a}, size)
		assert.True(t, ok)
	})

	t.Run("just outside radius", func(t *testing.T) {
		_, ok := FindHit(Point{189.01, 90}, []Volcano{a}, size)
		assert.False(t, ok)
	})

	t.Run("first in order wins over nearer", func(t *testing.T) {
		// Pointer sits on b's center (181, 90) but is also within a's radius.
		v, ok := FindHit(Point{181, 90}, []Volcano{a, b}, size)
		require.True(t, ok)
		assert.Equal(t, 3, v.ID)

		v, ok = FindHit(Point{181, 90}, []Volcano{b, a}, size)
		require.True(t, ok)
		assert.Equal(t, 5, v.ID)
	})

	t.Run("no records", func(t *testing.T) {
		_, ok := FindHit(Point{0, 0}, nil, size)
		assert.False(t, ok)
	})

	t.Run("miss everything", func(t *testing.T) {
		_, ok := FindHit(Point{10, 170}, []Volcano{a, b, far}, size)
		assert.False(t, ok)
	})

	t.Run("wrapped longitude", func(t *testing.T) {
		wrapped := a
		wrapped.Lon = 360
		_, ok := FindHit(Point{180, 90}, []Volcano{wrapped}, size)
		assert.True(t, ok)
	})
}
