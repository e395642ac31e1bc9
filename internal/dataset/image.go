package dataset

import (
	"bytes"
	"fmt"
	"image"
	"os"

	// Registered decoders for the background asset.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/couchcryptid/volcano-map-service/internal/domain"
)

// Image is a decoded background asset plus the raw bytes served to browsers.
type Image struct {
	Image       image.Image
	Size        domain.Size
	Format      string
	ContentType string
	Bytes       []byte
}

// LoadImage decodes the map background at path. The image size fixes the
// map canvas height for a given width.
func LoadImage(path string) (*Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map image: %w", err)
	}
	return DecodeImage(b)
}

// DecodeImage decodes an in-memory PNG, JPEG, GIF or WebP image.
func DecodeImage(b []byte) (*Image, error) {
	img, format, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode map image: %w", err)
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("decode map image: empty %s image", format)
	}
	return &Image{
		Image:       img,
		Size:        domain.Size{Width: float64(bounds.Dx()), Height: float64(bounds.Dy())},
		Format:      format,
		ContentType: "image/" + format,
		Bytes:       b,
	}, nil
}
