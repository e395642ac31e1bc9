package http

import (
	"bytes"
	"image"
	"math"
	"net/http"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/couchcryptid/volcano-map-service/internal/domain"
	"github.com/couchcryptid/volcano-map-service/internal/render"
	"github.com/couchcryptid/volcano-map-service/internal/session"
)

type hoverResponse struct {
	Hit   bool     `json:"hit"`
	ID    *int     `json:"id,omitempty"`
	Title string   `json:"title,omitempty"`
	Lines []string `json:"lines,omitempty"`
	Left  float64  `json:"left"`
	Top   float64  `json:"top"`
}

type clickResponse struct {
	Navigate bool   `json:"navigate"`
	ID       *int   `json:"id,omitempty"`
	URL      string `json:"url,omitempty"`
}

func (s *Server) backgroundSize() domain.Size {
	if s.deps.Background == nil {
		return domain.Size{}
	}
	return s.deps.Background.Size
}

func (s *Server) canvas(width float64) domain.Size {
	return session.CanvasSize(math.Round(width), s.backgroundSize())
}

func (s *Server) handleMap(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := s.deps.Store.Current()
		if snap.Dataset == nil {
			unavailable(w)
			return
		}
		width, err := widthParam(r, s.deps.DefaultWidth)
		if err != nil {
			badRequest(w, err)
			return
		}
		hoverID, err := hoverParam(r)
		if err != nil {
			badRequest(w, err)
			return
		}

		canvas := s.canvas(width)
		var hover *domain.Volcano
		if v, ok := snap.Dataset.ByID(hoverID); ok {
			hover = &v
		} else {
			hoverID = -1
		}

		key := render.MapKey{
			Generation: snap.Generation,
			Format:     format,
			Width:      int(canvas.Width),
			Height:     int(canvas.Height),
			HoverID:    hoverID,
		}
		body, err := s.deps.Cache.Get(key, func() ([]byte, error) {
			return s.renderMap(format, snap.Dataset, canvas, hover)
		})
		if err != nil {
			s.logger.Error("render map failed", "error", err, "format", format)
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", render.ContentType(format))
		w.Header().Set("Cache-Control", "no-cache")
		_, _ = w.Write(body)
	}
}

func (s *Server) renderMap(format string, ds *domain.Dataset, canvas domain.Size, hover *domain.Volcano) ([]byte, error) {
	timer := prometheus.NewTimer(s.deps.Metrics.RenderDuration.WithLabelValues(format))
	defer timer.ObserveDuration()

	sc := render.BuildScene(ds.Volcanoes, canvas, hover)
	var bg image.Image
	if s.deps.Background != nil {
		bg = s.deps.Background.Image
		sc.BackgroundHref = "/background"
	}
	var buf bytes.Buffer
	if err := render.EncodeMap(&buf, format, sc, bg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Server) handleBackground(w http.ResponseWriter, r *http.Request) {
	bg := s.deps.Background
	if bg == nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", bg.ContentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(bg.Bytes)
}

// pointerState replays a pointer event against the current dataset. With
// leave=1 the event is the pointer leaving the canvas and x, y may be omitted.
func (s *Server) pointerState(r *http.Request) (session.State, domain.Point, bool, error) {
	leave := r.URL.Query().Get("leave") == "1"
	coord := requiredFloat
	if leave {
		coord = func(r *http.Request, name string) (float64, error) { return floatParam(r, name, 0) }
	}
	x, err := coord(r, "x")
	if err != nil {
		return session.State{}, domain.Point{}, false, err
	}
	y, err := coord(r, "y")
	if err != nil {
		return session.State{}, domain.Point{}, false, err
	}
	width, err := widthParam(r, s.deps.DefaultWidth)
	if err != nil {
		return session.State{}, domain.Point{}, false, err
	}

	snap := s.deps.Store.Current()
	if snap.Dataset == nil {
		return session.State{}, domain.Point{}, false, nil
	}
	pointer := domain.Point{X: x, Y: y}
	st := session.New(snap.Dataset, domain.Size{}).Resize(math.Round(width), s.backgroundSize())
	if leave {
		return st.PointerLeave(), pointer, true, nil
	}
	return st.PointerMove(pointer), pointer, true, nil
}

func (s *Server) handleHover(w http.ResponseWriter, r *http.Request) {
	st, pointer, ok, err := s.pointerState(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	if !ok {
		unavailable(w)
		return
	}
	tw, err := floatParam(r, "tw", 0)
	if err != nil {
		badRequest(w, err)
		return
	}
	th, err := floatParam(r, "th", 0)
	if err != nil {
		badRequest(w, err)
		return
	}

	container := domain.Rect{Right: st.Canvas.Width, Bottom: st.Canvas.Height}
	view, hit := st.Tooltip(pointer, domain.Size{Width: tw, Height: th}, container)
	if !hit {
		s.deps.Metrics.HitLookups.WithLabelValues("miss").Inc()
		sharedobs.WriteJSON(w, http.StatusOK, hoverResponse{})
		return
	}
	s.deps.Metrics.HitLookups.WithLabelValues("hit").Inc()

	v, _ := st.Hover.Volcano()
	sharedobs.WriteJSON(w, http.StatusOK, hoverResponse{
		Hit:   true,
		ID:    &v.ID,
		Title: view.Title,
		Lines: view.Lines,
		Left:  view.Position.X,
		Top:   view.Position.Y,
	})
}

func (s *Server) handleClick(w http.ResponseWriter, r *http.Request) {
	st, _, ok, err := s.pointerState(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	if !ok {
		unavailable(w)
		return
	}
	_, nav, navigate := st.Click()
	if !navigate {
		sharedobs.WriteJSON(w, http.StatusOK, clickResponse{})
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, clickResponse{
		Navigate: true,
		ID:       &nav.ID,
		URL:      nav.URL(),
	})
}
