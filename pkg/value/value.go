// Package value holds the typed value model: a closed tagged union carrying
// one database value of a fixed set of kinds.
//
// A Value is immutable once built. Constructors are the only way to create
// one, so the tag always matches the payload. Variable-length payloads
// (bytes, big integers, bit arrays) are copied on the way in and on the way
// out, so a Value never shares memory with its caller.
//
//	v := value.Int32(12345)
//	n, err := value.Get[int32](v)   // 12345, nil
//	_, err = value.Get[string](v)   // type_mismatch error
package value

import (
	"math"
	"math/big"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ajitpratap0/nebula-odbc/pkg/odbcerrors"
	stringpool "github.com/ajitpratap0/nebula-odbc/pkg/strings"
)

// Value is one database value. The zero Value is Null.
type Value struct {
	kind Kind
	// num holds bool, integer and float payloads as raw bits.
	num uint64
	str string
	ref any
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.num = 1
	}
	return v
}

// Int8 returns an 8-bit integer value.
func Int8(n int8) Value { return Value{kind: KindInt8, num: uint64(int64(n))} }

// Int16 returns a 16-bit integer value.
func Int16(n int16) Value { return Value{kind: KindInt16, num: uint64(int64(n))} }

// Int32 returns a 32-bit integer value.
func Int32(n int32) Value { return Value{kind: KindInt32, num: uint64(int64(n))} }

// Int64 returns a 64-bit integer value.
func Int64(n int64) Value { return Value{kind: KindInt64, num: uint64(n)} }

// Float32 returns a single precision value.
func Float32(f float32) Value {
	return Value{kind: KindFloat32, num: uint64(math.Float32bits(f))}
}

// Float64 returns a double precision value.
func Float64(f float64) Value { return Value{kind: KindFloat64, num: math.Float64bits(f)} }

// String returns a text value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bytes returns a binary value over a copy of b.
func Bytes(b []byte) Value {
	owned := make([]byte, len(b))
	copy(owned, b)
	return Value{kind: KindBytes, ref: owned}
}

// Decimal returns an arbitrary-precision decimal value.
func Decimal(d decimal.Decimal) Value { return Value{kind: KindDecimal, ref: d} }

// BigInteger returns an arbitrary-precision integer value over a copy of n.
// A nil n is treated as zero.
func BigInteger(n *big.Int) Value {
	owned := new(big.Int)
	if n != nil {
		owned.Set(n)
	}
	return Value{kind: KindBigInteger, ref: owned}
}

// DateOf returns a date value.
func DateOf(d Date) Value { return Value{kind: KindDate, ref: d} }

// TimeOf returns a time-of-day value.
func TimeOf(t Time) Value { return Value{kind: KindTime, ref: t} }

// DateTimeOf returns a local date-time value.
func DateTimeOf(dt DateTime) Value { return Value{kind: KindDateTime, ref: dt} }

// TimestampOf returns an instant value.
func TimestampOf(ts Timestamp) Value { return Value{kind: KindTimestamp, ref: ts} }

// FromTime returns the instant t as a timestamp value.
func FromTime(t time.Time) Value {
	return TimestampOf(Timestamp{Seconds: t.Unix(), Nanos: int32(t.Nanosecond())})
}

// PeriodOf returns a calendar period value.
func PeriodOf(p Period) Value { return Value{kind: KindPeriod, ref: p} }

// DurationOf returns an exact duration value.
func DurationOf(d Duration) Value { return Value{kind: KindDuration, ref: d} }

// UUID returns a UUID value.
func UUID(u uuid.UUID) Value { return Value{kind: KindUUID, ref: u} }

// Bitmask returns a bit array value over a copy of b.
func Bitmask(b BitArray) Value { return Value{kind: KindBitmask, ref: b.clone()} }

// Kind returns the active variant.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Get returns the payload of v as T. It fails with a type mismatch error when
// T does not correspond to the active kind. Supported T: bool, int8, int16,
// int32, int64, float32, float64, string, []byte, decimal.Decimal, *big.Int,
// Date, Time, DateTime, Timestamp, Period, Duration, uuid.UUID, BitArray.
func Get[T any](v Value) (T, error) {
	var out T
	var want Kind
	switch p := any(&out).(type) {
	case *bool:
		want = KindBool
		*p = v.num != 0
	case *int8:
		want = KindInt8
		*p = int8(v.num)
	case *int16:
		want = KindInt16
		*p = int16(v.num)
	case *int32:
		want = KindInt32
		*p = int32(v.num)
	case *int64:
		want = KindInt64
		*p = int64(v.num)
	case *float32:
		want = KindFloat32
		*p = math.Float32frombits(uint32(v.num))
	case *float64:
		want = KindFloat64
		*p = math.Float64frombits(v.num)
	case *string:
		want = KindString
		*p = v.str
	case *[]byte:
		want = KindBytes
		if b, ok := v.ref.([]byte); ok {
			*p = append([]byte(nil), b...)
		}
	case *decimal.Decimal:
		want = KindDecimal
		*p, _ = v.ref.(decimal.Decimal)
	case **big.Int:
		want = KindBigInteger
		if n, ok := v.ref.(*big.Int); ok {
			*p = new(big.Int).Set(n)
		}
	case *Date:
		want = KindDate
		*p, _ = v.ref.(Date)
	case *Time:
		want = KindTime
		*p, _ = v.ref.(Time)
	case *DateTime:
		want = KindDateTime
		*p, _ = v.ref.(DateTime)
	case *Timestamp:
		want = KindTimestamp
		*p, _ = v.ref.(Timestamp)
	case *Period:
		want = KindPeriod
		*p, _ = v.ref.(Period)
	case *Duration:
		want = KindDuration
		*p, _ = v.ref.(Duration)
	case *uuid.UUID:
		want = KindUUID
		*p, _ = v.ref.(uuid.UUID)
	case *BitArray:
		want = KindBitmask
		if b, ok := v.ref.(BitArray); ok {
			*p = b.clone()
		}
	default:
		var zero T
		return zero, odbcerrors.Newf(odbcerrors.ErrorTypeCapability, "no value kind holds %T", out)
	}

	if v.kind != want {
		var zero T
		return zero, odbcerrors.Newf(odbcerrors.ErrorTypeTypeMismatch,
			"value of kind %s read as %s", v.kind, want).
			WithDetail("actual", v.kind.String()).
			WithDetail("requested", want.String())
	}
	return out, nil
}

// MustGet is Get for callers that already switched on Kind. It panics on a
// mismatch.
func MustGet[T any](v Value) T {
	out, err := Get[T](v)
	if err != nil {
		panic(err)
	}
	return out
}

// String renders v as locale-independent text. Null renders as the empty
// string and binary payloads as lowercase hex.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindBool:
		return strconv.FormatBool(v.num != 0)
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return strconv.FormatInt(int64(v.num), 10)
	case KindFloat32:
		return strconv.FormatFloat(float64(math.Float32frombits(uint32(v.num))), 'g', -1, 32)
	case KindFloat64:
		return strconv.FormatFloat(math.Float64frombits(v.num), 'g', -1, 64)
	case KindString:
		return v.str
	case KindBytes:
		return stringpool.Hex(v.ref.([]byte))
	case KindDecimal:
		return v.ref.(decimal.Decimal).String()
	case KindBigInteger:
		return v.ref.(*big.Int).String()
	case KindTimestamp:
		ts := v.ref.(Timestamp)
		t := time.Unix(ts.Seconds, int64(ts.Nanos)).UTC()
		s := t.Format("2006-01-02 15:04:05")
		if ts.Nanos != 0 {
			s += "." + fraction(ts.Nanos)
		}
		return s
	case KindUUID:
		return v.ref.(uuid.UUID).String()
	default:
		if s, ok := v.ref.(interface{ String() string }); ok {
			return s.String()
		}
		return ""
	}
}
