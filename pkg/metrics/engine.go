package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// EngineMetrics provides observability for filesystem engine operations.
//
// Implementations collect metrics about the ten engine operations and the
// node table's occupancy. The interface is optional - engines created with
// nil metrics proceed without collection (zero overhead).
type EngineMetrics interface {
	// RecordOperation records a completed engine operation with its name,
	// duration, and outcome.
	RecordOperation(operation string, duration time.Duration, err error)

	// SetLiveNodes updates the count of currently allocated nodes.
	SetLiveNodes(count int)

	// SetUsedBytes updates the total logical size of all file content.
	SetUsedBytes(bytes uint64)
}

// NewEngineMetrics creates an EngineMetrics backed by the global registry.
//
// Returns a no-op implementation when InitRegistry has not been called.
func NewEngineMetrics() EngineMetrics {
	reg := GetRegistry()
	if reg == nil {
		return noopEngineMetrics{}
	}

	factory := promauto.With(reg)

	return &promEngineMetrics{
		operations: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ramfs",
			Subsystem: "engine",
			Name:      "operation_duration_seconds",
			Help:      "Duration of engine operations by operation name and outcome.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"operation", "status"}),
		liveNodes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "ramfs",
			Subsystem: "engine",
			Name:      "live_nodes",
			Help:      "Number of currently allocated nodes in the node table.",
		}),
		usedBytes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "ramfs",
			Subsystem: "engine",
			Name:      "content_used_bytes",
			Help:      "Total logical size of all regular-file content.",
		}),
	}
}

// promEngineMetrics is the Prometheus-backed EngineMetrics implementation.
type promEngineMetrics struct {
	operations *prometheus.HistogramVec
	liveNodes  prometheus.Gauge
	usedBytes  prometheus.Gauge
}

func (m *promEngineMetrics) RecordOperation(operation string, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.operations.WithLabelValues(operation, status).Observe(duration.Seconds())
}

func (m *promEngineMetrics) SetLiveNodes(count int) {
	m.liveNodes.Set(float64(count))
}

func (m *promEngineMetrics) SetUsedBytes(bytes uint64) {
	m.usedBytes.Set(float64(bytes))
}

// noopEngineMetrics discards all observations.
type noopEngineMetrics struct{}

func (noopEngineMetrics) RecordOperation(string, time.Duration, error) {}
func (noopEngineMetrics) SetLiveNodes(int)                             {}
func (noopEngineMetrics) SetUsedBytes(uint64)                          {}
