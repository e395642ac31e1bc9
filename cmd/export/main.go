// Command export renders a volcano dataset to static files: the map as SVG
// and PNG, the plotted records as GeoJSON, the glyph legend sheet, and one
// standalone SVG per glyph kind under glyphs/. It uses
// the same renderers as the server, so the output matches what the map serves.
//
// Usage:
//
//	go run ./cmd/export \
//	  -csv data/volcano.csv \
//	  -image data/world.png \
//	  -out dist \
//	  -width 1600
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/couchcryptid/volcano-map-service/internal/adapter/geojson"
	"github.com/couchcryptid/volcano-map-service/internal/dataset"
	"github.com/couchcryptid/volcano-map-service/internal/domain"
	"github.com/couchcryptid/volcano-map-service/internal/glyph"
	"github.com/couchcryptid/volcano-map-service/internal/pipeline"
	"github.com/couchcryptid/volcano-map-service/internal/render"
	"github.com/couchcryptid/volcano-map-service/internal/session"
)

type options struct {
	csvPath   string
	imagePath string
	outDir    string
	width     float64
}

func main() {
	var opts options
	flag.StringVar(&opts.csvPath, "csv", "", "path to the volcano CSV file")
	flag.StringVar(&opts.imagePath, "image", "", "optional world background image (PNG, JPEG, GIF or WebP)")
	flag.StringVar(&opts.outDir, "out", "dist", "output directory")
	flag.Float64Var(&opts.width, "width", 1200, "map width in pixels")
	flag.Parse()

	if opts.csvPath == "" {
		flag.Usage()
		log.Fatal("missing required flag: -csv")
	}
	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

func run(opts options) error {
	rows, err := dataset.CSVSource{Path: opts.csvPath}.ReadRows(context.Background())
	if err != nil {
		return err
	}
	ds := pipeline.Transform(rows, slog.Default())

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	var bg *dataset.Image
	var bgImage image.Image
	var imageSize domain.Size
	if opts.imagePath != "" {
		bg, err = dataset.LoadImage(opts.imagePath)
		if err != nil {
			return err
		}
		bgImage, imageSize = bg.Image, bg.Size
	}

	sc := render.BuildScene(ds.Volcanoes, session.CanvasSize(opts.width, imageSize), nil)

	if bg != nil {
		name := "background." + bg.Format
		if err := writeFile(opts.outDir, name, bg.Bytes); err != nil {
			return err
		}
		sc.BackgroundHref = name
	}

	for _, format := range []string{render.FormatSVG, render.FormatPNG} {
		var buf bytes.Buffer
		if err := render.EncodeMap(&buf, format, sc, bgImage); err != nil {
			return fmt.Errorf("render map %s: %w", format, err)
		}
		if err := writeFile(opts.outDir, "map."+format, buf.Bytes()); err != nil {
			return err
		}
	}

	var gj bytes.Buffer
	if err := geojson.Encode(&gj, ds.Volcanoes); err != nil {
		return err
	}
	if err := writeFile(opts.outDir, "volcanoes.geojson", gj.Bytes()); err != nil {
		return err
	}

	var legend bytes.Buffer
	if err := render.WriteLegendSVG(&legend, 120, 4, glyph.DefaultStroke); err != nil {
		return fmt.Errorf("render legend: %w", err)
	}
	if err := writeFile(opts.outDir, "glyphs.svg", legend.Bytes()); err != nil {
		return err
	}

	if err := writeGlyphs(filepath.Join(opts.outDir, "glyphs")); err != nil {
		return err
	}

	fmt.Printf("Exported %d of %d rows (%d skipped) to %s\n", ds.Len(), ds.RowCount, ds.Skipped, opts.outDir)
	return nil
}

// Standalone glyph icon size in pixels.
const glyphIconSize = 96

func writeGlyphs(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create glyph dir: %w", err)
	}
	size := domain.Size{Width: glyphIconSize, Height: glyphIconSize}
	for _, kind := range domain.AllGlyphKinds() {
		shape := glyph.Geometry(kind, glyphIconSize/2, glyphIconSize/2, glyphIconSize*0.6)
		var buf bytes.Buffer
		if err := render.WriteGlyphSVG(&buf, shape, glyph.DefaultStroke, size); err != nil {
			return fmt.Errorf("render glyph %s: %w", kind, err)
		}
		if err := writeFile(dir, string(kind)+".svg", buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(dir, name string, b []byte) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, b, 0o644); err != nil { //nolint:gosec // public artifacts
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
