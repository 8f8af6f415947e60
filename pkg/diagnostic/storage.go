// Package diagnostic accumulates the status records of one handle and
// serves them back by index or by field.
//
// A Storage moves through three states on every API call: Reset clears the
// header and all records, the call appends records while it runs, and the
// caller reads them afterwards until the next Reset. The header is replaced
// as a whole by SetHeader and never merged.
//
// A Storage belongs to one handle and is not safe for concurrent use.
package diagnostic

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ajitpratap0/nebula-odbc/pkg/appbuf"
	"github.com/ajitpratap0/nebula-odbc/pkg/logger"
	"github.com/ajitpratap0/nebula-odbc/pkg/metrics"
)

// Record is one status event.
type Record struct {
	State          SQLState
	Message        string
	ConnectionName string
	ServerName     string
	RowNumber      int64
	ColumnNumber   int32

	retrieved bool
}

// ClassOrigin names the document that defines the class of the record's
// state.
func (r *Record) ClassOrigin() string { return r.State.ClassOrigin() }

// SubclassOrigin names the document that defines the subclass of the
// record's state.
func (r *Record) SubclassOrigin() string { return r.State.SubclassOrigin() }

// Retrieved reports whether the record was returned by a
// one-record-at-a-time fetch.
func (r *Record) Retrieved() bool { return r.retrieved }

// MarkRetrieved flags the record as returned.
func (r *Record) MarkRetrieved() { r.retrieved = true }

// Header describes the last operation.
type Header struct {
	Result              Result
	RowCount            int64
	RowsAffected        int64
	DynamicFunction     string
	DynamicFunctionCode int32
}

// Storage holds one header and an ordered list of status records. The zero
// value is ready to use and reports Success.
type Storage struct {
	header  Header
	records []Record
}

// NewStorage returns an empty storage.
func NewStorage() *Storage {
	return &Storage{}
}

// Reset clears every record and replaces the header with an Error header,
// ready for the next call.
func (s *Storage) Reset() {
	s.SetHeaderRecord(Error)
	clear(s.records)
	s.records = s.records[:0]
}

// SetHeader replaces the header.
func (s *Storage) SetHeader(h Header) {
	s.header = h
}

// SetHeaderRecord replaces the header with one carrying only result.
func (s *Storage) SetHeaderRecord(result Result) {
	s.header = Header{Result: result}
}

// AddStatusRecord appends a record with state and message.
func (s *Storage) AddStatusRecord(state SQLState, message string) {
	s.AddRecord(Record{State: state, Message: message})
}

// AddRecord appends rec. The retrieved flag is carried over, so a record
// copied from another storage keeps it.
func (s *Storage) AddRecord(rec Record) {
	s.records = append(s.records, rec)
	metrics.RecordDiagnostic(string(rec.State), rec.State.Severity())
	if ce := logger.Get().Check(zapcore.DebugLevel, "diagnostic record added"); ce != nil {
		ce.Write(
			zap.String("sqlstate", string(rec.State)),
			zap.String("message", rec.Message),
			zap.Int64("row", rec.RowNumber),
			zap.Int32("column", rec.ColumnNumber),
			zap.Int("records", len(s.records)),
		)
	}
}

// Header returns a copy of the header.
func (s *Storage) Header() Header { return s.header }

// OperationResult returns the result of the last operation.
func (s *Storage) OperationResult() Result { return s.header.Result }

// ReturnCode returns the host API return code of the last operation.
func (s *Storage) ReturnCode() int16 { return s.header.Result.ReturnCode() }

// RowCount returns the cursor row count.
func (s *Storage) RowCount() int64 { return s.header.RowCount }

// RowsAffected returns the number of rows changed by the last operation.
func (s *Storage) RowsAffected() int64 { return s.header.RowsAffected }

// DynamicFunction returns the name of the last executed statement kind.
func (s *Storage) DynamicFunction() string { return s.header.DynamicFunction }

// DynamicFunctionCode returns the numeric code of DynamicFunction.
func (s *Storage) DynamicFunctionCode() int32 { return s.header.DynamicFunctionCode }

// IsSuccessful reports whether the last operation succeeded, with or without
// warnings.
func (s *Storage) IsSuccessful() bool { return s.header.Result.IsSuccess() }

// StatusRecordsNumber returns the number of records.
func (s *Storage) StatusRecordsNumber() int { return len(s.records) }

// StatusRecord returns the record at the 1-based index idx.
func (s *Storage) StatusRecord(idx int) (*Record, bool) {
	if idx < 1 || idx > len(s.records) {
		return nil, false
	}
	return &s.records[idx-1], true
}

// Records returns a copy of all records in order.
func (s *Storage) Records() []Record {
	return append([]Record(nil), s.records...)
}

// LastNonRetrieved returns the 1-based index of the first record not yet
// retrieved, or 0 when every record was.
func (s *Storage) LastNonRetrieved() int {
	for i := range s.records {
		if !s.records[i].retrieved {
			return i + 1
		}
	}
	return 0
}

// GetField writes one header or record field into buf. Header fields ignore
// recNum. Record fields answer NoData for an index outside the records, and
// unknown fields answer Error. A truncated text field answers
// SuccessWithInfo.
func (s *Storage) GetField(recNum int, field Field, buf *appbuf.Buffer) Result {
	if field.IsHeader() {
		return s.headerField(field, buf)
	}
	rec, ok := s.StatusRecord(recNum)
	if !ok {
		return NoData
	}

	var out appbuf.Outcome
	switch field {
	case StatusClassOrigin:
		out, _ = buf.PutString(rec.ClassOrigin())
	case StatusColumnNumber:
		out = buf.PutInt32(rec.ColumnNumber)
	case StatusConnectionName:
		out, _ = buf.PutString(rec.ConnectionName)
	case StatusMessageText:
		out, _ = buf.PutString(rec.Message)
	case StatusNative:
		out = buf.PutInt32(0)
	case StatusRowNumber:
		out = buf.PutInt64(rec.RowNumber)
	case StatusServerName:
		out, _ = buf.PutString(rec.ServerName)
	case StatusSQLState:
		out, _ = buf.PutString(string(rec.State))
	case StatusSubclassOrigin:
		out, _ = buf.PutString(rec.SubclassOrigin())
	default:
		return Error
	}
	return FromOutcome(out)
}

func (s *Storage) headerField(field Field, buf *appbuf.Buffer) Result {
	var out appbuf.Outcome
	switch field {
	case HeaderCursorRowCount:
		out = buf.PutInt64(s.RowCount())
	case HeaderDynamicFunction:
		out, _ = buf.PutString(s.DynamicFunction())
	case HeaderDynamicFunctionCode:
		out = buf.PutInt32(s.DynamicFunctionCode())
	case HeaderNumber:
		out = buf.PutInt32(int32(s.StatusRecordsNumber()))
	case HeaderReturnCode:
		out = buf.PutInt32(int32(s.ReturnCode()))
	case HeaderRowCount:
		out = buf.PutInt64(s.RowsAffected())
	default:
		return Error
	}
	return FromOutcome(out)
}
