package render

import (
	"fmt"
	"image"
	"io"
)

// EncodeMap writes the scene in the given format. background is used by the
// raster format only; vector output references sc.BackgroundHref instead.
func EncodeMap(w io.Writer, format string, sc Scene, background image.Image) error {
	switch format {
	case FormatSVG:
		return WriteMapSVG(w, sc)
	case FormatPNG:
		return EncodePNG(w, RasterMap(sc, background))
	default:
		return fmt.Errorf("unsupported map format %q", format)
	}
}

// ContentType is the media type of a map format.
func ContentType(format string) string {
	switch format {
	case FormatPNG:
		return "image/png"
	default:
		return "image/svg+xml"
	}
}
