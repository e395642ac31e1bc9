package domain

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
)

// RGB is an opaque 8-bit sRGB color.
type RGB struct {
	R, G, B uint8
}

// Elevation ramp stops: low, mid and high.
var (
	RampLow  = mustParseHex("#df0101")
	RampMid  = mustParseHex("#cd8067")
	RampHigh = mustParseHex("#ecdc9c")
)

// ElevationColor maps elevation in meters onto the three-stop ramp. Elevation
// is normalized over [MinElevation, MaxElevation] and clamped; the lower half
// blends RampLow→RampMid and the upper half RampMid→RampHigh.
func ElevationColor(elevation float64) RGB {
	if math.IsNaN(elevation) {
		elevation = 0
	}
	t := clamp(mapRange(elevation, MinElevation, MaxElevation, 0, 1), 0, 1)
	if t < 0.5 {
		return Lerp(RampLow, RampMid, mapRange(t, 0, 0.5, 0, 1))
	}
	return Lerp(RampMid, RampHigh, mapRange(t, 0.5, 1, 0, 1))
}

// Lerp blends a toward b per channel; t is clamped to [0, 1].
func Lerp(a, b RGB, t float64) RGB {
	t = clamp(t, 0, 1)
	return RGB{
		R: lerp8(a.R, b.R, t),
		G: lerp8(a.G, b.G, t),
		B: lerp8(a.B, b.B, t),
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// Hex renders the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA converts to an opaque image/color value.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// ParseHex parses "#rgb" or "#rrggbb".
func ParseHex(s string) (RGB, error) {
	if len(s) == 0 || s[0] != '#' {
		return RGB{}, fmt.Errorf("color %q: missing leading '#'", s)
	}
	switch len(s) {
	case 4:
		var out [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(s[1+i:2+i], 16, 8)
			if err != nil {
				return RGB{}, fmt.Errorf("color %q: %w", s, err)
			}
			out[i] = uint8(v * 17)
		}
		return RGB{R: out[0], G: out[1], B: out[2]}, nil
	case 7:
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return RGB{}, fmt.Errorf("color %q: %w", s, err)
		}
		return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
	default:
		return RGB{}, fmt.Errorf("color %q not of valid length", s)
	}
}

func mustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
