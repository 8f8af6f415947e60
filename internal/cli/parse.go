package cli

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ajitpratap0/nebula-odbc/pkg/calendar"
	"github.com/ajitpratap0/nebula-odbc/pkg/numeric"
	"github.com/ajitpratap0/nebula-odbc/pkg/odbcerrors"
	"github.com/ajitpratap0/nebula-odbc/pkg/value"
)

// ParseValue builds a typed value of kind k from its command-line text.
//
//	bool        true, false, 1, 0
//	bytes       hex digits
//	bitmask     a run of 0 and 1, bit 0 first
//	period      PnYnMnD
//	duration    a Go duration such as 1h30m or 90.5s
//	biginteger  decimal digits of any length
func ParseValue(k value.Kind, text string) (value.Value, error) {
	v, err := parseValue(k, text)
	if err != nil {
		return value.Null(), odbcerrors.Wrap(err, odbcerrors.ErrorTypeValidation,
			fmt.Sprintf("cannot read %q as %s", text, k))
	}
	return v, nil
}

func parseValue(k value.Kind, text string) (value.Value, error) {
	s := strings.TrimSpace(text)
	switch k {
	case value.KindNull:
		return value.Null(), nil
	case value.KindBool:
		b, err := strconv.ParseBool(s)
		return value.Bool(b), err
	case value.KindInt8:
		n, err := strconv.ParseInt(s, 10, 8)
		return value.Int8(int8(n)), err
	case value.KindInt16:
		n, err := strconv.ParseInt(s, 10, 16)
		return value.Int16(int16(n)), err
	case value.KindInt32:
		n, err := strconv.ParseInt(s, 10, 32)
		return value.Int32(int32(n)), err
	case value.KindInt64:
		n, err := strconv.ParseInt(s, 10, 64)
		return value.Int64(n), err
	case value.KindFloat32:
		f, err := strconv.ParseFloat(s, 32)
		return value.Float32(float32(f)), err
	case value.KindFloat64:
		f, err := strconv.ParseFloat(s, 64)
		return value.Float64(f), err
	case value.KindDecimal:
		d, err := numeric.Parse(s)
		return value.Decimal(d), err
	case value.KindBigInteger:
		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return value.Null(), fmt.Errorf("not an integer")
		}
		return value.BigInteger(n), nil
	case value.KindDate:
		f, err := calendar.ParseDate(s)
		return value.DateOf(f.Date()), err
	case value.KindTime:
		f, err := calendar.ParseTime(s)
		return value.TimeOf(f.Time()), err
	case value.KindDateTime:
		f, err := calendar.ParseTimestamp(s)
		return value.DateTimeOf(f.DateTime()), err
	case value.KindTimestamp:
		f, err := calendar.ParseTimestamp(s)
		return value.TimestampOf(f.Timestamp()), err
	case value.KindUUID:
		u, err := uuid.Parse(s)
		return value.UUID(u), err
	case value.KindString:
		return value.String(text), nil
	case value.KindBytes:
		b, err := hex.DecodeString(s)
		return value.Bytes(b), err
	case value.KindBitmask:
		return parseBitmask(s)
	case value.KindPeriod:
		var p value.Period
		if _, err := fmt.Sscanf(s, "P%dY%dM%dD", &p.Years, &p.Months, &p.Days); err != nil {
			return value.Null(), err
		}
		return value.PeriodOf(p), nil
	case value.KindDuration:
		d, err := time.ParseDuration(s)
		if err != nil {
			return value.Null(), err
		}
		return value.DurationOf(value.Duration{
			Seconds: int64(d / time.Second),
			Nanos:   int32(d % time.Second),
		}), nil
	}
	return value.Null(), fmt.Errorf("unknown kind %d", k)
}

func parseBitmask(s string) (value.Value, error) {
	bits := value.NewBitArray(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			bits.Set(i, true)
		case '0':
		default:
			return value.Null(), fmt.Errorf("bit %d is %q", i, s[i])
		}
	}
	return value.Bitmask(bits), nil
}
