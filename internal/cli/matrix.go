package cli

import (
	"fmt"
	"io"
	"math/big"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ajitpratap0/nebula-odbc/pkg/appbuf"
	"github.com/ajitpratap0/nebula-odbc/pkg/json"
	"github.com/ajitpratap0/nebula-odbc/pkg/odbcerrors"
	"github.com/ajitpratap0/nebula-odbc/pkg/value"
)

// MatrixCell is the outcome of writing the sample of one kind into one
// native type.
type MatrixCell struct {
	Kind    string `json:"kind"`
	Target  string `json:"target"`
	Outcome string `json:"outcome"`
}

// sampleValues returns one representative value per non-null kind, in kind
// order.
func sampleValues() []value.Value {
	bits := value.NewBitArray(12)
	bits.Set(0, true)
	bits.Set(9, true)
	return []value.Value{
		value.Bool(true),
		value.Int8(-7),
		value.Int16(1234),
		value.Int32(123456),
		value.Int64(1_700_000_000_000),
		value.Float32(2.5),
		value.Float64(-1234.5678),
		value.Decimal(decimal.RequireFromString("123.45")),
		value.DateOf(value.Date{Year: 2024, Month: 1, Day: 15}),
		value.TimeOf(value.Time{Hour: 10, Minute: 30, Second: 15}),
		value.DateTimeOf(value.DateTime{
			Date: value.Date{Year: 2024, Month: 1, Day: 15},
			Time: value.Time{Hour: 10, Minute: 30},
		}),
		value.TimestampOf(value.TimestampFromMillis(1_705_314_600_500)),
		value.UUID(uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")),
		value.Bitmask(bits),
		value.String("42"),
		value.Bytes([]byte{0xde, 0xad, 0xbe, 0xef}),
		value.PeriodOf(value.Period{Years: 1, Months: 2, Days: 3}),
		value.DurationOf(value.Duration{Seconds: 90, Nanos: 500_000_000}),
		value.BigInteger(new(big.Int).Lsh(big.NewInt(1), 70)),
	}
}

// Matrix writes every sample value into every native type and returns the
// outcomes, kind-major.
func Matrix() []MatrixCell {
	samples := sampleValues()
	targets := appbuf.NativeTypes()
	cells := make([]MatrixCell, 0, len(samples)*len(targets))
	for _, v := range samples {
		for _, t := range targets {
			capacity := defaultCapacity(t)
			buf := appbuf.New(t, make([]byte, capacity), capacity, make([]byte, appbuf.IndicatorSize))
			out, _ := buf.PutValue(v)
			cells = append(cells, MatrixCell{
				Kind:    v.Kind().String(),
				Target:  t.String(),
				Outcome: out.String(),
			})
		}
	}
	return cells
}

func newMatrixCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Print the value kind by native type conversion table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cells := Matrix()
			w := cmd.OutOrStdout()
			switch format {
			case "table":
				return writeTable(w, cells)
			case "json", "jsonl":
				se := json.NewStreamingEncoder(w, format == "json")
				for _, c := range cells {
					if err := se.Encode(c); err != nil {
						return err
					}
				}
				return se.Close()
			}
			return odbcerrors.Newf(odbcerrors.ErrorTypeValidation, "unknown format %q", format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "table", "output format (table, json, jsonl)")
	return cmd
}

// outcomeMarks abbreviates outcomes in the table.
var outcomeMarks = map[string]string{
	appbuf.Success.String():               "ok",
	appbuf.VarlenTruncated.String():       "trunc",
	appbuf.FractionalTruncated.String():   "frac",
	appbuf.UnsupportedConversion.String(): "-",
	appbuf.IndicatorRequired.String():     "ind",
	appbuf.NoData.String():                "nodata",
}

func writeTable(w io.Writer, cells []MatrixCell) error {
	targets := appbuf.NativeTypes()
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)

	fmt.Fprint(tw, "kind")
	for _, t := range targets {
		fmt.Fprintf(tw, "\t%s", t)
	}
	fmt.Fprintln(tw)

	for i, c := range cells {
		col := i % len(targets)
		if col == 0 {
			fmt.Fprint(tw, c.Kind)
		}
		fmt.Fprintf(tw, "\t%s", outcomeMarks[c.Outcome])
		if col == len(targets)-1 {
			fmt.Fprintln(tw)
		}
	}
	return tw.Flush()
}
