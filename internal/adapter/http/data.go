package http

import (
	"bytes"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"

	"github.com/couchcryptid/volcano-map-service/internal/adapter/geojson"
)

type reloadResponse struct {
	Generation uint64    `json:"generation"`
	Rows       int       `json:"rows"`
	Plotted    int       `json:"plotted"`
	Skipped    int       `json:"skipped"`
	LoadedAt   time.Time `json:"loaded_at"`
}

func (s *Server) handleGeoJSON(w http.ResponseWriter, _ *http.Request) {
	snap := s.deps.Store.Current()
	if snap.Dataset == nil {
		unavailable(w)
		return
	}
	var buf bytes.Buffer
	if err := geojson.Encode(&buf, snap.Dataset.Volcanoes); err != nil {
		s.logger.Error("encode geojson failed", "error", err)
		sharedobs.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "encode failed"})
		return
	}
	w.Header().Set("Content-Type", geojson.ContentType)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	snap, err := s.deps.Store.Load(r.Context())
	if err != nil {
		s.logger.Error("dataset reload failed", "error", err)
		sharedobs.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	s.deps.Cache.Purge()
	sharedobs.WriteJSON(w, http.StatusOK, reloadResponse{
		Generation: snap.Generation,
		Rows:       snap.Dataset.RowCount,
		Plotted:    snap.Dataset.Len(),
		Skipped:    snap.Dataset.Skipped,
		LoadedAt:   snap.Dataset.LoadedAt,
	})
}
