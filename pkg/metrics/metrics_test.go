package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordOutcome(t *testing.T) {
	c := ConversionOutcomes.WithLabelValues("char", "varlen_truncated")
	before := testutil.ToFloat64(c)

	RecordOutcome("char", "varlen_truncated")
	RecordOutcome("char", "varlen_truncated")

	assert.Equal(t, before+2, testutil.ToFloat64(c))
}

func TestRecordDiagnostic(t *testing.T) {
	c := DiagnosticRecords.WithLabelValues("07006", "error")
	before := testutil.ToFloat64(c)

	RecordDiagnostic("07006", "error")

	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestDisabledRecordingIsIgnored(t *testing.T) {
	SetEnabled(false)
	defer SetEnabled(true)
	assert.False(t, Enabled())

	c := ConversionOutcomes.WithLabelValues("numeric", "success")
	before := testutil.ToFloat64(c)

	RecordOutcome("numeric", "success")

	assert.Equal(t, before, testutil.ToFloat64(c))
}

func TestTimer(t *testing.T) {
	timer := NewTimer("put_value")
	first := timer.Stop()
	second := timer.ObserveDuration()

	assert.GreaterOrEqual(t, second, first)
	assert.Equal(t, 1, testutil.CollectAndCount(ConversionLatency))
}
