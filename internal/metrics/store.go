package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "solsink",
		Subsystem: "store",
		Name:      "operations_total",
		Help:      "Count of store write operations.",
	}, []string{"operation", "backend", "status"})

	storeOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "solsink",
		Subsystem: "store",
		Name:      "operation_duration_seconds",
		Help:      "Duration of store write operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "backend", "status"})

	storeRowsWritten = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "solsink",
		Subsystem: "store",
		Name:      "operation_rows",
		Help:      "Rows written per store operation.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"operation", "backend"})

	storeReconnectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "solsink",
		Subsystem: "store",
		Name:      "reconnects_total",
		Help:      "Count of store reconnect attempts.",
	}, []string{"backend", "status"})
)

// Store tracks metrics for store write operations.
type Store struct {
	backend string
}

// NewStore creates a Store metrics collector for the named backend.
func NewStore(backend string) *Store {
	if backend == "" {
		backend = "unknown"
	}
	return &Store{backend: backend}
}

// Observe records duration, row count and status of a store operation.
func (m Store) Observe(operation string, rows int, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	storeOperationsTotal.WithLabelValues(operation, m.backend, status).Inc()
	storeOperationDuration.WithLabelValues(operation, m.backend, status).
		Observe(time.Since(started).Seconds())
	storeRowsWritten.WithLabelValues(operation, m.backend).Observe(float64(rows))
}

// ObserveReconnect records a reconnect attempt outcome.
func (m Store) ObserveReconnect(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	storeReconnectsTotal.WithLabelValues(m.backend, status).Inc()
	storeOperationDuration.WithLabelValues("reconnect", m.backend, status).
		Observe(time.Since(started).Seconds())
}
