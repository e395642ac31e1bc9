package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/volcano-map-service/internal/dataset"
	"github.com/couchcryptid/volcano-map-service/internal/observability"
	"github.com/couchcryptid/volcano-map-service/internal/pipeline"
	"github.com/couchcryptid/volcano-map-service/internal/render"
)

// DatasetStore publishes the current dataset and reloads it on demand.
type DatasetStore interface {
	sharedobs.ReadinessChecker
	Current() pipeline.Snapshot
	Load(ctx context.Context) (pipeline.Snapshot, error)
}

// Deps are the collaborators the HTTP surface serves from.
type Deps struct {
	Store DatasetStore
	// Background is the world image; nil renders markers on a plain canvas.
	Background   *dataset.Image
	Cache        *render.CachedMap
	Metrics      *observability.Metrics
	DefaultWidth int
}

// Server exposes the map, detail and data endpoints plus health, readiness
// and metrics.
type Server struct {
	httpServer *http.Server
	deps       Deps
	logger     *slog.Logger
}

// NewServer creates an HTTP server with every route mounted.
func NewServer(addr string, deps Deps, logger *slog.Logger) *Server {
	s := &Server{
		deps:   deps,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		s.requestLogger,
		middleware.Recoverer,
		middleware.Compress(5, "text/html", "image/svg+xml", "application/json", "application/geo+json"),
	)

	r.Get("/", s.handleIndex)
	r.Get("/map.svg", s.handleMap(render.FormatSVG))
	r.Get("/map.png", s.handleMap(render.FormatPNG))
	r.Get("/background", s.handleBackground)

	r.Get("/detail", s.handleDetailPage)
	r.Get("/detail/glyph.svg", s.handleDetailSVG)
	r.Get("/detail/glyph.png", s.handleDetailPNG)

	r.Route("/api", func(r chi.Router) {
		r.Get("/hover", s.handleHover)
		r.Get("/click", s.handleClick)
		r.Get("/glyphs.svg", s.handleLegend)
		r.Get("/volcanoes.geojson", s.handleGeoJSON)
	})
	r.Post("/admin/reload", s.handleReload)

	r.Get("/healthz", sharedobs.LivenessHandler())
	r.Get("/readyz", sharedobs.ReadinessHandler(deps.Store))
	r.Handle("/metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
