// Package handle is the calling layer between host API entry points and the
// conversion engine. A Diagnosable owns the diagnostic storage of one
// environment, connection or statement, runs each API call against it and
// turns conversion outcomes into status records.
package handle

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ajitpratap0/nebula-odbc/pkg/appbuf"
	"github.com/ajitpratap0/nebula-odbc/pkg/diagnostic"
	"github.com/ajitpratap0/nebula-odbc/pkg/logger"
)

// Messages attached to the records ReportOutcome adds.
const (
	MsgDataTruncated       = "String data, right truncated"
	MsgFractionalTruncated = "Fractional truncation"
	MsgRestrictedDataType  = "Restricted data type attribute violation"
	MsgIndicatorRequired   = "Indicator variable required but not supplied"
)

var serverName atomic.Value

// SetServerName sets the server name stamped on the records of handles
// created afterwards.
func SetServerName(name string) {
	serverName.Store(name)
}

// Diagnosable is a handle with diagnostic records. It is not safe for
// concurrent use; callers serialize access per handle.
type Diagnosable struct {
	name       string
	connection string
	server     string
	diag       diagnostic.Storage
	logCtx     context.Context
}

// New returns a handle named name. The name labels its log entries.
func New(name string) *Diagnosable {
	server, _ := serverName.Load().(string)
	return &Diagnosable{
		name:   name,
		server: server,
		logCtx: context.WithValue(context.Background(), logger.HandleKey, name),
	}
}

// WithConnection sets the connection name carried by records this handle
// reports, and returns d.
func (d *Diagnosable) WithConnection(name string) *Diagnosable {
	d.connection = name
	d.logCtx = context.WithValue(d.logContext(), logger.ConnectionKey, name)
	return d
}

// logContext carries the handle's log fields.
func (d *Diagnosable) logContext() context.Context {
	if d.logCtx == nil {
		return context.WithValue(context.Background(), logger.HandleKey, d.name)
	}
	return d.logCtx
}

// Name returns the handle name.
func (d *Diagnosable) Name() string { return d.name }

// Diagnostics returns the handle's diagnostic storage.
func (d *Diagnosable) Diagnostics() *diagnostic.Storage { return &d.diag }

// Call runs one API call: the storage is reset, fn runs and may add
// records, and its result becomes the new header.
func (d *Diagnosable) Call(fn func() diagnostic.Result) diagnostic.Result {
	d.diag.Reset()
	result := fn()
	d.diag.SetHeaderRecord(result)
	if result == diagnostic.Error {
		logger.WithContext(d.logContext()).Warn("call failed",
			zap.Stringer("result", result),
			zap.Int("records", d.diag.StatusRecordsNumber()))
	}
	return result
}

// AddStatusRecord appends a record to the handle's storage.
func (d *Diagnosable) AddStatusRecord(state diagnostic.SQLState, message string) {
	d.diag.AddStatusRecord(state, message)
}

// ReportOutcome records the status a conversion outcome implies for the
// given row and column and returns the call result it maps to. Success adds
// nothing; NoData adds nothing and answers NoData.
func (d *Diagnosable) ReportOutcome(out appbuf.Outcome, row int64, column int32) diagnostic.Result {
	var state diagnostic.SQLState
	var msg string
	switch out {
	case appbuf.VarlenTruncated:
		state, msg = diagnostic.StateDataTruncated, MsgDataTruncated
	case appbuf.FractionalTruncated:
		state, msg = diagnostic.StateFractionalTruncation, MsgFractionalTruncated
	case appbuf.UnsupportedConversion:
		state, msg = diagnostic.StateRestrictedDataType, MsgRestrictedDataType
	case appbuf.IndicatorRequired:
		state, msg = diagnostic.StateIndicatorRequired, MsgIndicatorRequired
	}
	if state != "" {
		if logger.Enabled(zapcore.DebugLevel) {
			ctx := context.WithValue(d.logContext(), logger.ColumnKey, int(column))
			logger.WithContext(ctx).Debug("conversion status",
				zap.Stringer("outcome", out),
				zap.String("sqlstate", string(state)),
				zap.Int64("row", row))
		}
		d.diag.AddRecord(diagnostic.Record{
			State:          state,
			Message:        msg,
			ConnectionName: d.connection,
			ServerName:     d.server,
			RowNumber:      row,
			ColumnNumber:   column,
		})
	}
	return diagnostic.FromOutcome(out)
}

// DiagRec returns the state and native error of record recNum and writes
// its message into msg. It answers Error for recNum below 1, NoData past
// the last record, and SuccessWithInfo when the message did not fit. A nil
// msg only returns the state.
func (d *Diagnosable) DiagRec(recNum int, msg *appbuf.Buffer) (diagnostic.SQLState, int32, diagnostic.Result) {
	if recNum < 1 {
		return "", 0, diagnostic.Error
	}
	rec, ok := d.diag.StatusRecord(recNum)
	if !ok {
		return "", 0, diagnostic.NoData
	}
	if msg == nil {
		return rec.State, 0, diagnostic.Success
	}

	out, _ := msg.PutString(rec.Message)
	switch {
	case !msg.HasData() && !msg.HasIndicator():
		return rec.State, 0, diagnostic.Error
	case out == appbuf.VarlenTruncated && !msg.HasIndicator():
		return rec.State, 0, diagnostic.Error
	case out == appbuf.VarlenTruncated || !msg.HasData():
		return rec.State, 0, diagnostic.SuccessWithInfo
	}
	return rec.State, 0, diagnostic.Success
}

// NextError returns the first record not yet retrieved, marks it retrieved
// and writes its message into msg. It answers NoData when every record was
// returned.
func (d *Diagnosable) NextError(msg *appbuf.Buffer) (diagnostic.SQLState, int32, diagnostic.Result) {
	idx := d.diag.LastNonRetrieved()
	rec, ok := d.diag.StatusRecord(idx)
	if !ok {
		return "", 0, diagnostic.NoData
	}
	rec.MarkRetrieved()
	if msg != nil {
		msg.PutString(rec.Message)
	}
	return rec.State, 0, diagnostic.Success
}

// DiagField writes the field identified by a SQL_DIAG_* id into buf through
// a default-typed buffer. The byte length lands in indicator when the call
// succeeds.
func (d *Diagnosable) DiagField(recNum int, fieldID int16, buf []byte, indicator []byte) diagnostic.Result {
	out := appbuf.New(appbuf.Default, buf, len(buf), indicator)
	return d.diag.GetField(recNum, diagnostic.FieldFromODBC(fieldID), out)
}

// AbsorbFirst copies the first record of every child that has one into this
// handle. It answers SuccessWithInfo when anything was copied, as a
// transaction fanned out over several connections does.
func (d *Diagnosable) AbsorbFirst(children ...*Diagnosable) diagnostic.Result {
	result := diagnostic.Success
	for _, child := range children {
		rec, ok := child.diag.StatusRecord(1)
		if !ok {
			continue
		}
		d.diag.AddRecord(*rec)
		result = diagnostic.SuccessWithInfo
	}
	return result
}
