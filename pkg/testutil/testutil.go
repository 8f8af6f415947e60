// Package testutil provides testing utilities shared by the driver packages.
package testutil

import (
	"encoding/binary"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ajitpratap0/nebula-odbc/pkg/logger"
)

// TestLogger creates a test logger that writes to the test output.
func TestLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t)
}

// ObserveLogs installs an in-memory global logger at level for the rest of
// the test and returns its entries. The previous logger is restored on
// cleanup.
func ObserveLogs(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(level)
	prev := logger.Replace(zap.New(core))
	t.Cleanup(func() { logger.Replace(prev) })
	return logs
}

// Indicator decodes the indicator slot of row from an indicator array.
func Indicator(ind []byte, row int) int64 {
	return int64(binary.LittleEndian.Uint64(ind[row*8:]))
}

// Indicators allocates an indicator array of rows slots, each set to v.
func Indicators(rows int, v int64) []byte {
	ind := make([]byte, rows*8)
	for i := 0; i < rows; i++ {
		binary.LittleEndian.PutUint64(ind[i*8:], uint64(v))
	}
	return ind
}
