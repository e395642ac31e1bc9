package http

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"

	"github.com/couchcryptid/volcano-map-service/internal/config"
)

// Default detail card side when the client does not send a width.
const defaultDetailWidth = 520

var errNoDataset = errors.New("dataset has not been loaded yet")

// floatParam parses a finite float query value. Missing values yield fallback.
func floatParam(r *http.Request, name string, fallback float64) (float64, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid %s: must be a finite number", name)
	}
	return v, nil
}

// requiredFloat parses a finite float query value that must be present.
func requiredFloat(r *http.Request, name string) (float64, error) {
	if r.URL.Query().Get(name) == "" {
		return 0, fmt.Errorf("missing %s", name)
	}
	return floatParam(r, name, 0)
}

// widthParam parses the canvas width. Values below the renderer minimum are
// raised later; values above config.MaxCanvasWidth are rejected.
func widthParam(r *http.Request, fallback int) (float64, error) {
	w, err := floatParam(r, "width", float64(fallback))
	if err != nil {
		return 0, err
	}
	if w > config.MaxCanvasWidth {
		return 0, fmt.Errorf("invalid width: must be at most %d", config.MaxCanvasWidth)
	}
	return w, nil
}

// hoverParam parses the optional highlighted record id; -1 means none.
func hoverParam(r *http.Request) (int, error) {
	s := r.URL.Query().Get("hover")
	if s == "" {
		return -1, nil
	}
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, errors.New("invalid hover: must be a non-negative integer")
	}
	return id, nil
}

func badRequest(w http.ResponseWriter, err error) {
	sharedobs.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
}

func unavailable(w http.ResponseWriter) {
	sharedobs.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"error": errNoDataset.Error()})
}
