package http

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"

	"github.com/couchcryptid/volcano-map-service/internal/domain"
	"github.com/couchcryptid/volcano-map-service/internal/glyph"
	"github.com/couchcryptid/volcano-map-service/internal/render"
	"github.com/couchcryptid/volcano-map-service/internal/session"
)

// Legend sheet layout.
const (
	legendCell    = 120
	legendColumns = 4
)

// lookupDetail resolves the id query value and the card layout. The card is
// nil with status 404 when the id does not resolve.
func (s *Server) lookupDetail(r *http.Request) (*domain.Detail, render.DetailLayout, int, error) {
	ds := s.deps.Store.Current().Dataset
	if ds == nil {
		return nil, render.DetailLayout{}, http.StatusServiceUnavailable, errNoDataset
	}
	width, err := widthParam(r, defaultDetailWidth)
	if err != nil {
		return nil, render.DetailLayout{}, http.StatusBadRequest, err
	}
	layout := render.NewDetailLayout(session.DetailCanvasSize(width).Width)

	d, err := domain.LookupDetail(ds, r.URL.Query().Get("id"))
	switch {
	case errors.Is(err, domain.ErrVolcanoNotFound):
		s.deps.Metrics.DetailLookups.WithLabelValues("not_found").Inc()
		return nil, layout, http.StatusNotFound, nil
	case err != nil:
		return nil, layout, http.StatusInternalServerError, err
	}
	s.deps.Metrics.DetailLookups.WithLabelValues("found").Inc()
	return &d, layout, http.StatusOK, nil
}

// detailCard renders the detail card for the id query value as SVG.
func (s *Server) detailCard(r *http.Request) ([]byte, *domain.Detail, int, error) {
	card, layout, status, err := s.lookupDetail(r)
	if err != nil {
		return nil, nil, status, err
	}
	var buf bytes.Buffer
	if err := render.WriteDetailSVG(&buf, card, layout, glyph.DefaultStroke); err != nil {
		return nil, nil, http.StatusInternalServerError, err
	}
	return buf.Bytes(), card, status, nil
}

func (s *Server) handleDetailPage(w http.ResponseWriter, r *http.Request) {
	svg, card, status, err := s.detailCard(r)
	if err != nil {
		s.detailError(w, status, err)
		return
	}
	page := detailPage{Card: template.HTML(svg)} //nolint:gosec // generated by the SVG renderer, text is escaped
	if card != nil {
		page.Found = true
		page.Title = card.Title
	}
	s.renderPage(w, status, "detail.html", page)
}

func (s *Server) handleDetailSVG(w http.ResponseWriter, r *http.Request) {
	svg, _, status, err := s.detailCard(r)
	if err != nil {
		s.detailError(w, status, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(status)
	_, _ = w.Write(svg)
}

// handleDetailPNG rasterizes the glyph of the detail card without its text.
// An unknown id yields an empty card with status 404.
func (s *Server) handleDetailPNG(w http.ResponseWriter, r *http.Request) {
	card, layout, status, err := s.lookupDetail(r)
	if err != nil {
		s.detailError(w, status, err)
		return
	}
	var shape glyph.Shape
	if card != nil {
		shape = glyph.Geometry(card.Glyph, layout.GlyphX, layout.GlyphY, layout.GlyphSize)
	}
	side := domain.Size{Width: layout.Side, Height: layout.Side}

	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, render.RasterGlyph(shape, glyph.DefaultStroke, side, render.DetailBackground)); err != nil {
		s.detailError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) detailError(w http.ResponseWriter, status int, err error) {
	switch status {
	case http.StatusBadRequest:
		badRequest(w, err)
		return
	case http.StatusServiceUnavailable:
		unavailable(w)
		return
	}
	s.logger.Error("render detail failed", "error", err)
	http.Error(w, "render failed", http.StatusInternalServerError)
}

func (s *Server) handleLegend(w http.ResponseWriter, _ *http.Request) {
	var buf bytes.Buffer
	if err := render.WriteLegendSVG(&buf, legendCell, legendColumns, glyph.DefaultStroke); err != nil {
		s.logger.Error("render legend failed", "error", err)
		sharedobs.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "render failed"})
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(buf.Bytes())
}
