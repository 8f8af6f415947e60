// Package metrics exposes Prometheus counters for the driver core. It counts
// conversion outcomes per native buffer type and diagnostic records per
// SQLSTATE, and times conversions.
//
// # Basic Usage
//
//	metrics.RecordOutcome("char", "varlen_truncated")
//	metrics.RecordDiagnostic("01004", "warning")
//
//	timer := metrics.NewTimer("put_value")
//	out, _ := buf.PutValue(v)
//	timer.ObserveDuration()
//
// Collectors are registered with the default registry on package load.
// Recording can be switched off with SetEnabled; the collectors stay
// registered and simply stop moving.
package metrics

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "nebula_odbc"

var enabled atomic.Bool

func init() {
	enabled.Store(true)
}

// SetEnabled turns recording on or off.
func SetEnabled(on bool) {
	enabled.Store(on)
}

// Enabled reports whether recording is on.
func Enabled() bool {
	return enabled.Load()
}

var (
	// ConversionOutcomes counts conversion results.
	// Labels: native_type (buffer layout), outcome
	//
	// Example:
	//	metrics.ConversionOutcomes.WithLabelValues("numeric", "fractional_truncated").Inc()
	ConversionOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversion_outcomes_total",
			Help:      "Total number of buffer conversions by native type and outcome",
		},
		[]string{"native_type", "outcome"},
	)

	// DiagnosticRecords counts status records appended to handles.
	// Labels: sqlstate, severity (warning/no_data/error)
	DiagnosticRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "diagnostic_records_total",
			Help:      "Total number of diagnostic records by SQLSTATE and severity",
		},
		[]string{"sqlstate", "severity"},
	)

	// ConversionLatency tracks conversion latency in nanoseconds.
	// Conversions are in-memory, so the buckets stop at a millisecond.
	ConversionLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "conversion_latency_nanoseconds",
			Help:      "Buffer conversion latency in nanoseconds",
			Buckets: []float64{
				50,   // fixed-width copy
				100,  // integer narrowing
				250,  // text rendering
				500,  // decimal packing
				1000, // 1μs
				1e4,  // 10μs
				1e5,  // 100μs
				1e6,  // 1ms
			},
		},
		[]string{"operation"},
	)
)

// RecordOutcome counts one conversion.
func RecordOutcome(nativeType, outcome string) {
	if !enabled.Load() {
		return
	}
	ConversionOutcomes.WithLabelValues(nativeType, outcome).Inc()
}

// RecordDiagnostic counts one appended status record.
func RecordDiagnostic(sqlState, severity string) {
	if !enabled.Load() {
		return
	}
	DiagnosticRecords.WithLabelValues(sqlState, severity).Inc()
}

// Timer measures one operation and reports it to ConversionLatency.
type Timer struct {
	start     time.Time
	operation string
}

// NewTimer starts timing operation.
func NewTimer(operation string) *Timer {
	return &Timer{start: time.Now(), operation: operation}
}

// Stop returns the time elapsed since the timer started. It can be called
// repeatedly.
func (t *Timer) Stop() time.Duration {
	return time.Since(t.start)
}

// ObserveDuration records the elapsed time and returns it.
func (t *Timer) ObserveDuration() time.Duration {
	d := t.Stop()
	if enabled.Load() {
		ConversionLatency.WithLabelValues(t.operation).Observe(float64(d.Nanoseconds()))
	}
	return d
}
