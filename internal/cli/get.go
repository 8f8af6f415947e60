package cli

import (
	"encoding/hex"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajitpratap0/nebula-odbc/pkg/appbuf"
	"github.com/ajitpratap0/nebula-odbc/pkg/json"
	"github.com/ajitpratap0/nebula-odbc/pkg/metrics"
	"github.com/ajitpratap0/nebula-odbc/pkg/odbcerrors"
	stringpool "github.com/ajitpratap0/nebula-odbc/pkg/strings"
	"github.com/ajitpratap0/nebula-odbc/pkg/value"
)

// GetResult is the output of the get command.
type GetResult struct {
	Outcome string `json:"outcome"`
	Kind    string `json:"kind"`
	Null    bool   `json:"null"`
	Value   string `json:"value"`
}

// GetOptions describes one get invocation. A nil Indicator binds no
// indicator slot.
type GetOptions struct {
	Target    string
	Hex       string
	Indicator *int64
	As        string
}

func newGetCommand() *cobra.Command {
	var opts GetOptions
	var indicator int64
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Read a typed value from an application buffer",
		Example: `  odbcconv get --target slong --hex 39300000 --as int64
  odbcconv get --target date --hex e80701000f00 --as string
  odbcconv get --target char --hex 0000 --indicator -1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("indicator") {
				opts.Indicator = &indicator
			}
			res, err := Get(opts)
			if err != nil {
				return err
			}
			return json.MarshalToWriter(cmd.OutOrStdout(), res, "  ")
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Target, "target", "char", "native buffer type")
	f.StringVar(&opts.Hex, "hex", "", "buffer bytes as hex")
	f.Int64Var(&indicator, "indicator", 0, "indicator value; omit to bind no indicator")
	f.StringVar(&opts.As, "as", "string", "value kind to read")
	return cmd
}

// Get decodes a hex buffer as a value of the requested kind.
func Get(opts GetOptions) (*GetResult, error) {
	target, ok := appbuf.ParseNativeType(opts.Target)
	if !ok {
		return nil, odbcerrors.Newf(odbcerrors.ErrorTypeValidation, "unknown native type %q", opts.Target)
	}
	kind, ok := value.KindFromName(opts.As)
	if !ok {
		return nil, odbcerrors.Newf(odbcerrors.ErrorTypeValidation, "unknown value kind %q", opts.As)
	}
	data, err := hex.DecodeString(strings.TrimSpace(opts.Hex))
	if err != nil {
		return nil, odbcerrors.Wrap(err, odbcerrors.ErrorTypeValidation, "invalid --hex")
	}

	var ind []byte
	if opts.Indicator != nil {
		ind = make([]byte, appbuf.IndicatorSize)
	}
	buf := appbuf.New(target, data, len(data), ind)
	if opts.Indicator != nil {
		buf.SetIndicator(*opts.Indicator)
	}

	timer := metrics.NewTimer(stringpool.Concat("get_", kind.String()))
	v, out := buf.GetValue(kind)
	timer.ObserveDuration()

	return &GetResult{
		Outcome: out.String(),
		Kind:    v.Kind().String(),
		Null:    v.IsNull(),
		Value:   v.String(),
	}, nil
}
