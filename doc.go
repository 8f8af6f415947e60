// Package nebulaodbc is the data-marshalling core of an ODBC driver: typed
// values, the conversion engine that moves them in and out of
// application-bound buffers, and the diagnostic records raised along the way.
//
// # Architecture
//
// The module is split into small packages that build on each other:
//
//   - pkg/value: the TypedValue, a tagged value covering every SQL kind the
//     driver exchanges with a server, with ordering and equality
//   - pkg/calendar, pkg/numeric, pkg/textconv: the calendar arithmetic,
//     SQL_NUMERIC_STRUCT packing and text encodings the engine relies on
//   - pkg/appbuf: application buffers (data area, capacity, indicator slot)
//     and the Put/Get conversion matrix between values and native C types
//   - pkg/diagnostic: the per-handle diagnostic record storage with header
//     and status records, field lookup and the retrieval cursor
//   - pkg/handle: the glue a statement or connection handle uses to turn
//     conversion outcomes into status records and return codes
//
// Ambient packages follow the same shape as the rest of the code base:
// pkg/logger (zap), pkg/metrics (prometheus), pkg/config (yaml and viper),
// pkg/odbcerrors, pkg/pool and pkg/json.
//
// # Quick Start
//
// Write a value into a bound character buffer and report the outcome on a
// statement handle:
//
//	data := make([]byte, 4)
//	ind := make([]byte, appbuf.IndicatorSize)
//	buf := appbuf.New(appbuf.Char, data, len(data), ind)
//
//	stmt := handle.New("stmt-1")
//	rc := stmt.Call(func() diagnostic.Result {
//	    out, _ := buf.PutValue(value.Int32(12345))
//	    return stmt.ReportOutcome(out, 1, 1)
//	})
//	// rc == diagnostic.SuccessWithInfo, data == "123\x00", indicator == 5
//
// Read it back as a different kind:
//
//	v, out := buf.GetValue(value.KindInt64)
//
// # Command line
//
// cmd/odbcconv exposes the engine from the shell:
//
//	odbcconv put --kind decimal --value 123.456 --target numeric
//	odbcconv get --target date --hex e80701000f00 --as string
//	odbcconv matrix --format table
//
// # Configuration
//
// pkg/config loads a YAML file with ${VAR} substitution; the CLI layers
// NEBULA_ODBC_* environment variables and flags over it through viper:
//
//	logging:
//	  level: info
//	  encoding: json
//	conversion:
//	  narrowing: saturate
//	diagnostics:
//	  server_name: warehouse-1
//	metrics:
//	  enabled: true
package nebulaodbc
