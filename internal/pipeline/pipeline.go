package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/storm-data-shared/retry"

	"github.com/couchcryptid/volcano-map-service/internal/domain"
	"github.com/couchcryptid/volcano-map-service/internal/observability"
)

// RowSource reads every raw row of the dataset.
type RowSource interface {
	ReadRows(ctx context.Context) ([]domain.RawRow, error)
}

// Snapshot is one loaded dataset. Generation increases by one on every
// successful load, starting at 1.
type Snapshot struct {
	Dataset    *domain.Dataset
	Generation uint64
}

// Loader runs the extract-transform-load cycle that turns the source file into
// the current Dataset. Each load builds a fresh Dataset and swaps it in whole;
// readers holding an older snapshot keep a consistent view.
type Loader struct {
	source  RowSource
	logger  *slog.Logger
	metrics *observability.Metrics

	mu      sync.Mutex // serializes loads
	current atomic.Pointer[Snapshot]
}

// New creates a Loader reading from source.
func New(source RowSource, logger *slog.Logger, metrics *observability.Metrics) *Loader {
	return &Loader{
		source:  source,
		logger:  logger,
		metrics: metrics,
	}
}

// CheckReadiness returns nil once a dataset has been loaded.
func (l *Loader) CheckReadiness(_ context.Context) error {
	if l.current.Load() == nil {
		return errors.New("dataset has not been loaded yet")
	}
	return nil
}

// Current returns the latest snapshot. Before the first load the snapshot has
// a nil Dataset and Generation 0.
func (l *Loader) Current() Snapshot {
	if s := l.current.Load(); s != nil {
		return *s
	}
	return Snapshot{}
}

// Load reads, parses and publishes the dataset. On failure the previous
// snapshot stays current.
func (l *Loader) Load(ctx context.Context) (Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	start := time.Now()
	rows, err := l.source.ReadRows(ctx)
	if err != nil {
		l.metrics.DatasetLoads.WithLabelValues("error").Inc()
		return Snapshot{}, fmt.Errorf("extract rows: %w", err)
	}
	l.metrics.RowsRead.Add(float64(len(rows)))

	ds := Transform(rows, l.logger)
	l.metrics.RowsSkipped.Add(float64(ds.Skipped))

	next := &Snapshot{Dataset: ds, Generation: l.Current().Generation + 1}
	l.current.Store(next)

	l.metrics.RecordsPlotted.Set(float64(ds.Len()))
	l.metrics.DatasetLoads.WithLabelValues("success").Inc()
	l.metrics.LoadDuration.Observe(time.Since(start).Seconds())
	l.logger.Info("dataset loaded",
		"rows", ds.RowCount,
		"plotted", ds.Len(),
		"skipped", ds.Skipped,
		"generation", next.Generation,
		"loaded_at", ds.LoadedAt,
	)
	return *next, nil
}

// LoadWithRetry calls Load up to attempts times with exponential backoff
// (200ms doubling, capped at 5s), for sources that appear shortly after startup.
func (l *Loader) LoadWithRetry(ctx context.Context, attempts int) (Snapshot, error) {
	backoff := 200 * time.Millisecond
	maxBackoff := 5 * time.Second

	var err error
	for i := 0; i < attempts; i++ {
		var snap Snapshot
		snap, err = l.Load(ctx)
		if err == nil {
			return snap, nil
		}
		if i == attempts-1 {
			break
		}
		l.logger.Warn("dataset load failed, retrying", "error", err, "attempt", i+1, "backoff", backoff)
		if !retry.SleepWithContext(ctx, backoff) {
			return Snapshot{}, ctx.Err()
		}
		backoff = retry.NextBackoff(backoff, maxBackoff)
	}
	return Snapshot{}, err
}
