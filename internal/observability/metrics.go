package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the map service.
type Metrics struct {
	// Dataset load metrics.
	RowsRead       prometheus.Counter
	RowsSkipped    prometheus.Counter
	RecordsPlotted prometheus.Gauge
	DatasetLoads   *prometheus.CounterVec // labels: outcome={success,error}
	LoadDuration   prometheus.Histogram

	// Interaction metrics.
	HitLookups    *prometheus.CounterVec // labels: outcome={hit,miss}
	DetailLookups *prometheus.CounterVec // labels: outcome={found,not_found}

	// Rendering metrics.
	RenderDuration *prometheus.HistogramVec // labels: format={svg,png}
	RenderCache    *prometheus.CounterVec   // labels: result={hit,miss}
}

// NewMetrics creates and registers all service metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RowsRead,
		m.RowsSkipped,
		m.RecordsPlotted,
		m.DatasetLoads,
		m.LoadDuration,
		m.HitLookups,
		m.DetailLookups,
		m.RenderDuration,
		m.RenderCache,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RowsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "volcano_map",
			Name:      "rows_read_total",
			Help:      "Total data rows read from the dataset file.",
		}),
		RowsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "volcano_map",
			Name:      "rows_skipped_total",
			Help:      "Total data rows dropped for missing or invalid coordinates.",
		}),
		RecordsPlotted: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "volcano_map",
			Name:      "records_plotted",
			Help:      "Number of volcanoes in the current dataset.",
		}),
		DatasetLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "volcano_map",
			Name:      "dataset_loads_total",
			Help:      "Dataset load attempts by outcome.",
		}, []string{"outcome"}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "volcano_map",
			Name:      "dataset_load_duration_seconds",
			Help:      "Duration of a complete dataset extract-transform-load cycle.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		HitLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "volcano_map",
			Name:      "hit_lookups_total",
			Help:      "Pointer hit tests by outcome.",
		}, []string{"outcome"}),
		DetailLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "volcano_map",
			Name:      "detail_lookups_total",
			Help:      "Detail page lookups by outcome.",
		}, []string{"outcome"}),
		RenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "volcano_map",
			Name:      "render_duration_seconds",
			Help:      "Map render duration by output format.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"format"}),
		RenderCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "volcano_map",
			Name:      "render_cache_total",
			Help:      "Render cache lookups by result.",
		}, []string{"result"}),
	}
}

// ObserveCache records a render cache lookup.
func (m *Metrics) ObserveCache(hit bool) {
	if hit {
		m.RenderCache.WithLabelValues("hit").Inc()
		return
	}
	m.RenderCache.WithLabelValues("miss").Inc()
}
