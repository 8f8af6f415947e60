package cli

import (
	"encoding/hex"

	"github.com/spf13/cobra"

	"github.com/ajitpratap0/nebula-odbc/pkg/appbuf"
	"github.com/ajitpratap0/nebula-odbc/pkg/diagnostic"
	"github.com/ajitpratap0/nebula-odbc/pkg/handle"
	"github.com/ajitpratap0/nebula-odbc/pkg/json"
	"github.com/ajitpratap0/nebula-odbc/pkg/metrics"
	"github.com/ajitpratap0/nebula-odbc/pkg/odbcerrors"
	stringpool "github.com/ajitpratap0/nebula-odbc/pkg/strings"
	"github.com/ajitpratap0/nebula-odbc/pkg/value"
)

// defaultTextCapacity is the capacity of text and binary targets when
// --capacity is not given.
const defaultTextCapacity = 64

// RecordView is one diagnostic record in command output.
type RecordView struct {
	SQLState string `json:"sqlstate"`
	Message  string `json:"message"`
	Row      int64  `json:"row"`
	Column   int32  `json:"column"`
}

// PutResult is the output of the put command.
type PutResult struct {
	Outcome    string       `json:"outcome"`
	Result     string       `json:"result"`
	ReturnCode int16        `json:"return_code"`
	Written    int          `json:"written"`
	Indicator  *int64       `json:"indicator,omitempty"`
	Hex        string       `json:"hex"`
	Offset     int          `json:"offset"`
	Records    []RecordView `json:"records,omitempty"`
}

// PutOptions describes one put invocation.
type PutOptions struct {
	Kind        string
	Value       string
	Target      string
	Capacity    int
	NoIndicator bool
	Rows        int
	Row         int
}

func newPutCommand() *cobra.Command {
	var opts PutOptions
	cmd := &cobra.Command{
		Use:   "put",
		Short: "Write a typed value into an application buffer",
		Example: `  odbcconv put --kind int32 --value 12345 --target char --capacity 4
  odbcconv put --kind decimal --value 123.456 --target numeric
  odbcconv put --kind null --target slong --no-indicator`,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := Put(opts)
			if err != nil {
				return err
			}
			return json.MarshalToWriter(cmd.OutOrStdout(), res, "  ")
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Kind, "kind", "string", "value kind")
	f.StringVar(&opts.Value, "value", "", "value text")
	f.StringVar(&opts.Target, "target", "char", "native buffer type")
	f.IntVar(&opts.Capacity, "capacity", 0, "buffer capacity in bytes per row (default: fixed width, or 64 for text)")
	f.BoolVar(&opts.NoIndicator, "no-indicator", false, "bind no indicator slot")
	f.IntVar(&opts.Rows, "rows", 1, "rows in the bound array")
	f.IntVar(&opts.Row, "row", 0, "row to write, 0-based")
	return cmd
}

// Put runs one put as a statement call and reports the outcome and the
// records it raised.
func Put(opts PutOptions) (*PutResult, error) {
	kind, ok := value.KindFromName(opts.Kind)
	if !ok {
		return nil, odbcerrors.Newf(odbcerrors.ErrorTypeValidation, "unknown value kind %q", opts.Kind)
	}
	target, ok := appbuf.ParseNativeType(opts.Target)
	if !ok {
		return nil, odbcerrors.Newf(odbcerrors.ErrorTypeValidation, "unknown native type %q", opts.Target)
	}
	if opts.Rows < 1 || opts.Row < 0 || opts.Row >= opts.Rows {
		return nil, odbcerrors.Newf(odbcerrors.ErrorTypeValidation, "row %d is outside %d rows", opts.Row, opts.Rows)
	}
	v, err := ParseValue(kind, opts.Value)
	if err != nil {
		return nil, err
	}

	capacity := opts.Capacity
	if capacity <= 0 {
		capacity = defaultCapacity(target)
	}
	window := capacity
	if w, ok := target.FixedWidth(); ok {
		window = w
	}
	data := make([]byte, max(window, capacity)*opts.Rows)
	var ind []byte
	if !opts.NoIndicator {
		ind = make([]byte, appbuf.IndicatorSize*opts.Rows)
	}
	buf := appbuf.New(target, data, capacity, ind, appbuf.WithElementOffset(opts.Row))

	stmt := handle.New("odbcconv")
	timer := metrics.NewTimer(stringpool.Concat("put_", kind.String()))
	var out appbuf.Outcome
	var written int
	result := stmt.Call(func() diagnostic.Result {
		out, written = buf.PutValue(v)
		return stmt.ReportOutcome(out, int64(opts.Row+1), 1)
	})
	timer.ObserveDuration()

	off := buf.DataOffset()
	res := &PutResult{
		Outcome:    out.String(),
		Result:     result.String(),
		ReturnCode: result.ReturnCode(),
		Written:    written,
		Hex:        hex.EncodeToString(data[off:min(off+window, len(data))]),
		Offset:     off,
		Records:    recordViews(stmt.Diagnostics()),
	}
	if n, ok := buf.Indicator(); ok {
		res.Indicator = &n
	}
	return res, nil
}

func defaultCapacity(t appbuf.NativeType) int {
	if w, ok := t.FixedWidth(); ok {
		return w
	}
	return defaultTextCapacity
}

func recordViews(s *diagnostic.Storage) []RecordView {
	records := s.Records()
	if len(records) == 0 {
		return nil
	}
	views := make([]RecordView, len(records))
	for i, r := range records {
		views[i] = RecordView{
			SQLState: string(r.State),
			Message:  r.Message,
			Row:      r.RowNumber,
			Column:   r.ColumnNumber,
		}
	}
	return views
}
