package appbuf

// Outcome is the result of one conversion. Conversions never fail any other
// way.
type Outcome uint8

const (
	// Success means the value was written or read completely.
	Success Outcome = iota
	// VarlenTruncated means string or binary data was cut to fit the buffer.
	VarlenTruncated
	// FractionalTruncated means numeric or temporal precision was lost; the
	// approximate value was still written.
	FractionalTruncated
	// UnsupportedConversion means no conversion path exists; nothing was
	// written.
	UnsupportedConversion
	// IndicatorRequired means a null needed an indicator slot and there was
	// none; nothing was written.
	IndicatorRequired
	// NoData means there was nothing to transfer.
	NoData
)

var outcomeNames = [...]string{
	Success:               "success",
	VarlenTruncated:       "varlen_truncated",
	FractionalTruncated:   "fractional_truncated",
	UnsupportedConversion: "unsupported_conversion",
	IndicatorRequired:     "indicator_required",
	NoData:                "no_data",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Written reports whether data reached the buffer, possibly truncated.
func (o Outcome) Written() bool {
	return o == Success || o == VarlenTruncated || o == FractionalTruncated
}

// IsWarning reports whether o is a truncation that still wrote data.
func (o Outcome) IsWarning() bool {
	return o == VarlenTruncated || o == FractionalTruncated
}

// worse combines two outcomes of one write. Length truncation wins over
// precision loss.
func worse(a, b Outcome) Outcome {
	if a == Success {
		return b
	}
	if a == FractionalTruncated && b == VarlenTruncated {
		return b
	}
	return a
}

// lossy upgrades a successful outcome to FractionalTruncated when lost is
// true.
func lossy(o Outcome, lost bool) Outcome {
	if lost {
		return worse(o, FractionalTruncated)
	}
	return o
}
