package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedMap(t *testing.T) {
	var hits, misses, renders int
	c := NewCachedMap(4, func(hit bool) {
		if hit {
			hits++
		} else {
			misses++
		}
	})
	key := MapKey{Generation: 1, Format: FormatSVG, Width: 800, Height: 400, HoverID: -1}
	render := func() ([]byte, error) {
		renders++
		return []byte("<svg/>"), nil
	}

	b, err := c.Get(key, render)
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(b))

	_, err = c.Get(key, render)
	require.NoError(t, err)
	assert.Equal(t, 1, renders, "second lookup should be served from cache")

	next := key
	next.Generation = 2
	_, err = c.Get(next, render)
	require.NoError(t, err)
	assert.Equal(t, 2, renders, "a reload invalidates earlier renders")

	assert.Equal(t, 1, hits)
	assert.Equal(t, 2, misses)
}

func TestCachedMap_ErrorsAreNotCached(t *testing.T) {
	c := NewCachedMap(4, nil)
	key := MapKey{Format: FormatPNG, Width: 10, Height: 5, HoverID: -1}
	boom := errors.New("boom")

	_, err := c.Get(key, func() ([]byte, error) { return nil, boom })
	require.ErrorIs(t, err, boom)

	b, err := c.Get(key, func() ([]byte, error) { return []byte("ok"), nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", string(b))
}
