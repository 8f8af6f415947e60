package diagnostic

import "github.com/ajitpratap0/nebula-odbc/pkg/appbuf"

// Result is the overall result of an API call.
type Result int8

const (
	Success Result = iota
	SuccessWithInfo
	Error
	NoData
	NeedData
)

var resultNames = [...]string{
	Success:         "success",
	SuccessWithInfo: "success_with_info",
	Error:           "error",
	NoData:          "no_data",
	NeedData:        "need_data",
}

func (r Result) String() string {
	if int(r) < len(resultNames) {
		return resultNames[r]
	}
	return "unknown"
}

// ReturnCode returns the numeric return code the host API reports for r.
func (r Result) ReturnCode() int16 {
	switch r {
	case Success:
		return 0
	case SuccessWithInfo:
		return 1
	case NoData:
		return 100
	case NeedData:
		return 99
	}
	return -1
}

// IsSuccess reports whether r is Success or SuccessWithInfo.
func (r Result) IsSuccess() bool {
	return r == Success || r == SuccessWithInfo
}

// FromOutcome maps a conversion outcome onto a call result. Both kinds of
// truncation are warnings.
func FromOutcome(out appbuf.Outcome) Result {
	switch out {
	case appbuf.Success:
		return Success
	case appbuf.VarlenTruncated, appbuf.FractionalTruncated:
		return SuccessWithInfo
	case appbuf.NoData:
		return NoData
	}
	return Error
}
