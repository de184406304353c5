// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/geyserwatch/solsink-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pipelineSubmittedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "solsink",
		Subsystem: "pipeline",
		Name:      "submitted_total",
		Help:      "Count of records offered to the pipeline.",
	}, []string{"kind", "status"})

	pipelineQueueDepth = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "solsink",
		Subsystem: "pipeline",
		Name:      "queue_depth",
		Help:      "Records currently buffered per kind queue.",
	}, []string{"kind"})

	pipelineOrderingViolationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "solsink",
		Subsystem: "pipeline",
		Name:      "ordering_violations_total",
		Help:      "Count of stale updates discarded for arriving out of order.",
	}, []string{"kind"})

	pipelineFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "solsink",
		Subsystem: "pipeline",
		Name:      "flush_total",
		Help:      "Count of batch flush attempts.",
	}, []string{"kind", "status"})

	pipelineFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "solsink",
		Subsystem: "pipeline",
		Name:      "flush_duration_seconds",
		Help:      "Duration of batch flush attempts.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind", "status"})

	pipelineFlushBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "solsink",
		Subsystem: "pipeline",
		Name:      "flush_batch_size",
		Help:      "Number of records per flushed batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"kind"})

	pipelineFlushRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "solsink",
		Subsystem: "pipeline",
		Name:      "flush_retries_total",
		Help:      "Count of flush retry attempts after a store error.",
	}, []string{"kind"})

	pipelineDroppedRecordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "solsink",
		Subsystem: "pipeline",
		Name:      "dropped_records_total",
		Help:      "Records dropped after the retry budget was exhausted.",
	}, []string{"kind"})

	pipelineStartupDrainedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "solsink",
		Subsystem: "pipeline",
		Name:      "startup_drained_total",
		Help:      "Records drained synchronously at the end-of-startup barrier.",
	}, []string{"kind"})

	pipelineStartupSlotsRooted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "solsink",
		Subsystem: "pipeline",
		Name:      "startup_slots_rooted_total",
		Help:      "Startup-seen slots marked rooted at the end-of-startup barrier.",
	})
)

// Pipeline tracks metrics for the ingestion pipeline.
type Pipeline struct{}

// NewPipeline creates a Pipeline metrics collector.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// ObserveSubmit records the outcome of offering one record to the queue.
func (m Pipeline) ObserveSubmit(kind model.RecordKind, err error) {
	status := "accepted"
	if err != nil {
		status = "rejected"
	}
	pipelineSubmittedTotal.WithLabelValues(string(kind), status).Inc()
}

// SetQueueDepth reports the current buffered record count of a kind queue.
func (m Pipeline) SetQueueDepth(kind model.RecordKind, depth int) {
	pipelineQueueDepth.WithLabelValues(string(kind)).Set(float64(depth))
}

// ObserveOrderingViolation records a stale update discarded by an accumulator.
func (m Pipeline) ObserveOrderingViolation(kind model.RecordKind) {
	pipelineOrderingViolationsTotal.WithLabelValues(string(kind)).Inc()
}

// ObserveFlush records outcome, size and duration of one flush attempt.
func (m Pipeline) ObserveFlush(kind model.RecordKind, err error, records int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	pipelineFlushTotal.WithLabelValues(string(kind), status).Inc()
	pipelineFlushDuration.WithLabelValues(string(kind), status).
		Observe(time.Since(started).Seconds())
	pipelineFlushBatchSize.WithLabelValues(string(kind)).Observe(float64(records))
}

// ObserveFlushRetry records one retry of a failed flush.
func (m Pipeline) ObserveFlushRetry(kind model.RecordKind) {
	pipelineFlushRetriesTotal.WithLabelValues(string(kind)).Inc()
}

// ObserveDroppedBatch records a batch abandoned after retries were exhausted.
func (m Pipeline) ObserveDroppedBatch(kind model.RecordKind, records int) {
	pipelineDroppedRecordsTotal.WithLabelValues(string(kind)).Add(float64(records))
}

// ObserveStartupDrain records records pulled off a queue during the barrier drain.
func (m Pipeline) ObserveStartupDrain(kind model.RecordKind, records int) {
	pipelineStartupDrainedTotal.WithLabelValues(string(kind)).Add(float64(records))
}

// ObserveStartupSlotsRooted records startup slots bulk-marked rooted.
func (m Pipeline) ObserveStartupSlotsRooted(slots int) {
	pipelineStartupSlotsRooted.Add(float64(slots))
}
