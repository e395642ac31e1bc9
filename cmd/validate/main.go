// Command validate checks a volcano CSV against the invariants the map relies
// on: row parsing, marker radius and color bounds, glyph classification, and
// detail lookups for every row. It prints a per-phase report and exits
// non-zero when any phase fails.
//
// Usage:
//
//	go run ./cmd/validate -csv data/volcano.csv
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"

	"github.com/couchcryptid/volcano-map-service/internal/dataset"
	"github.com/couchcryptid/volcano-map-service/internal/domain"
	"github.com/couchcryptid/volcano-map-service/internal/pipeline"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

// checkCanvas is the canvas used for projection checks.
var checkCanvas = domain.Size{Width: 360, Height: 180}

func main() {
	csvPath := flag.String("csv", "", "path to the volcano CSV file")
	flag.Parse()

	if *csvPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(os.Stdout, *csvPath); code != 0 {
		os.Exit(code)
	}
}

func run(out io.Writer, csvPath string) int {
	rows, err := dataset.CSVSource{Path: csvPath}.ReadRows(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}
	ds := pipeline.Transform(rows, slog.New(slog.DiscardHandler))

	fmt.Fprintln(out, "=== Volcano Dataset Validation ===")
	fmt.Fprintln(out)

	phases := []*phase{
		validateLoad(ds),
		validateMarkers(ds),
		validateGlyphs(ds, out),
		validateDetails(ds),
	}
	return report(out, ds, phases)
}

func report(out io.Writer, ds *domain.Dataset, phases []*phase) int {
	fmt.Fprintln(out)
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(out, "  %-42s %s\n", p.name, status)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Rows: %d read, %d plotted, %d skipped\n", ds.RowCount, ds.Len(), ds.Skipped)

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Fprintf(out, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(out, "  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Fprintln(out, "\nAll validations passed.")
		return 0
	}
	fmt.Fprintln(out, "\nValidation FAILED.")
	return 1
}

// ── Phases ──

func validateLoad(ds *domain.Dataset) *phase {
	p := &phase{name: "Dataset load"}
	if ds.RowCount == 0 {
		p.errorf("no data rows")
	}
	if ds.RowCount > 0 && ds.Len() == 0 {
		p.errorf("all %d rows were skipped; check the Latitude/Longitude columns", ds.RowCount)
	}
	prev := -1
	for _, v := range ds.Volcanoes {
		if v.ID <= prev {
			p.errorf("row %d: id not increasing (previous %d)", v.ID, prev)
		}
		prev = v.ID
		if v.Name == "" {
			p.errorf("row %d: empty name", v.ID)
		}
	}
	return p
}

func validateMarkers(ds *domain.Dataset) *phase {
	p := &phase{name: "Marker radius, color and projection"}
	for _, v := range ds.Volcanoes {
		if v.DisplayRadius < domain.MinRadius || v.DisplayRadius > domain.MaxRadius {
			p.errorf("row %d (%s): radius %.2f outside [%g, %g]", v.ID, v.Name, v.DisplayRadius, domain.MinRadius, domain.MaxRadius)
		}
		if v.DisplayRadius != domain.DisplayRadius(v.EffectiveElevation()) {
			p.errorf("row %d (%s): stored radius does not match elevation", v.ID, v.Name)
		}
		pt := domain.ProjectVolcano(v, checkCanvas)
		if pt.X < 0 || pt.X > checkCanvas.Width {
			p.errorf("row %d (%s): projected x %.2f off canvas", v.ID, v.Name, pt.X)
		}
		if v.Lat >= -90 && v.Lat <= 90 && (pt.Y < 0 || pt.Y > checkCanvas.Height) {
			p.errorf("row %d (%s): projected y %.2f off canvas", v.ID, v.Name, pt.Y)
		}
	}

	// Radius must not decrease as elevation rises.
	sorted := append([]domain.Volcano(nil), ds.Volcanoes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EffectiveElevation() < sorted[j].EffectiveElevation()
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].DisplayRadius < sorted[i-1].DisplayRadius {
			p.errorf("radius decreases between rows %d and %d", sorted[i-1].ID, sorted[i].ID)
		}
	}
	return p
}

func validateGlyphs(ds *domain.Dataset, out io.Writer) *phase {
	p := &phase{name: "Glyph classification"}
	counts := make(map[domain.GlyphKind]int)
	for _, v := range ds.Volcanoes {
		kind := domain.ClassifyVolcano(v)
		if !kind.Valid() {
			p.errorf("row %d (%s): invalid glyph kind %q", v.ID, v.Name, kind)
			continue
		}
		counts[kind]++
	}

	fmt.Fprintln(out, "Glyph distribution:")
	for _, kind := range domain.AllGlyphKinds() {
		if n := counts[kind]; n > 0 {
			fmt.Fprintf(out, "  %-18s %d\n", kind, n)
		}
	}
	return p
}

func validateDetails(ds *domain.Dataset) *phase {
	p := &phase{name: "Detail lookup"}
	for id := 0; id < ds.RowCount; id++ {
		d, err := domain.LookupDetail(ds, strconv.Itoa(id))
		switch {
		case err != nil:
			p.errorf("row %d: detail lookup failed: %v", id, err)
		case d.Volcano.ID != id:
			p.errorf("row %d: detail resolved to row %d", id, d.Volcano.ID)
		}
	}
	if _, err := domain.LookupDetail(ds, strconv.Itoa(ds.RowCount)); !errors.Is(err, domain.ErrVolcanoNotFound) {
		p.errorf("id %d past the last row: expected not found, got %v", ds.RowCount, err)
	}
	return p
}
