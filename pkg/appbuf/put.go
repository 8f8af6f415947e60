package appbuf

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ajitpratap0/nebula-odbc/pkg/calendar"
	"github.com/ajitpratap0/nebula-odbc/pkg/numeric"
	"github.com/ajitpratap0/nebula-odbc/pkg/pool"
	stringpool "github.com/ajitpratap0/nebula-odbc/pkg/strings"
	"github.com/ajitpratap0/nebula-odbc/pkg/textconv"
	"github.com/ajitpratap0/nebula-odbc/pkg/value"
)

// PutBool writes b as the integer 1 or 0.
func (b *Buffer) PutBool(v bool) Outcome {
	var n int64
	if v {
		n = 1
	}
	return b.trace("put_bool", b.putNumber(intNum(n, 1)))
}

// PutInt8 writes an 8-bit integer.
func (b *Buffer) PutInt8(v int8) Outcome {
	return b.trace("put_int8", b.putNumber(intNum(int64(v), 1)))
}

// PutInt16 writes a 16-bit integer.
func (b *Buffer) PutInt16(v int16) Outcome {
	return b.trace("put_int16", b.putNumber(intNum(int64(v), 2)))
}

// PutInt32 writes a 32-bit integer.
func (b *Buffer) PutInt32(v int32) Outcome {
	return b.trace("put_int32", b.putNumber(intNum(int64(v), 4)))
}

// PutInt64 writes a 64-bit integer.
func (b *Buffer) PutInt64(v int64) Outcome {
	return b.trace("put_int64", b.putNumber(intNum(v, 8)))
}

// PutFloat writes a single precision float.
func (b *Buffer) PutFloat(v float32) Outcome {
	return b.trace("put_float", b.putNumber(floatNum(float64(v), 4)))
}

// PutDouble writes a double precision float.
func (b *Buffer) PutDouble(v float64) Outcome {
	return b.trace("put_double", b.putNumber(floatNum(v, 8)))
}

func (b *Buffer) putNumber(n number) Outcome {
	switch b.typ {
	case SignedTinyint, Bit, UnsignedTinyint, SignedShort, UnsignedShort,
		SignedLong, UnsignedLong, SignedBigint, UnsignedBigint, Float, Double:
		t := targetOf(b.typ)
		bits, lost := convert(n, t, b.narrowing)
		var scratch [8]byte
		return lossy(b.putFixed(appendBits(scratch[:0], bits, t.size)), lost)

	case Char, WChar:
		out, _ := b.putText(n.text())
		return out

	case Numeric:
		d, ok := n.decimal()
		if !ok {
			return UnsupportedConversion
		}
		return b.putPacked(d)

	case Binary, Default:
		if n.kind == numDecimal {
			return UnsupportedConversion
		}
		bits, size := n.raw()
		var scratch [8]byte
		out, _ := b.putRaw(appendBits(scratch[:0], bits, size))
		return out

	case TDate, TTime, TTimestamp:
		if n.kind == numFloat && (math.IsNaN(n.f) || math.IsInf(n.f, 0)) {
			return UnsupportedConversion
		}
		ms, _ := convert(n, numTarget{size: 8, signed: true}, NarrowSaturate)
		return b.putFields(calendar.FromMillis(int64(ms)), srcTimestamp)
	}
	return UnsupportedConversion
}

// putFixed writes a fixed-width encoding and sets the indicator to its
// width. A short buffer receives the bytes that fit.
func (b *Buffer) putFixed(enc []byte) Outcome {
	room := b.room()
	copy(room, enc)
	b.SetIndicator(int64(len(enc)))
	if len(room) < len(enc) {
		return VarlenTruncated
	}
	return Success
}

// putText applies the string rule: copy at most capacity/charSize-1
// characters, always terminate, and report the untruncated length in the
// indicator. written is in characters.
func (b *Buffer) putText(s string) (Outcome, int) {
	return b.putChars(s, b.typ == WChar)
}

func (b *Buffer) putChars(s string, wide bool) (Outcome, int) {
	scratch := pool.GetBytes()
	defer pool.PutBytes(scratch)

	units, err := textconv.AppendUnits(*scratch, s, wide)
	*scratch = units
	if err != nil {
		return UnsupportedConversion, 0
	}
	charSize := textconv.CharSize(wide)
	length := len(units) / charSize
	b.SetIndicator(int64(length))

	if !b.HasData() {
		return Success, 0
	}
	room := b.room()
	if len(room) < charSize {
		return VarlenTruncated, 0
	}

	outLen := len(room)/charSize - 1
	n := min(outLen, length)
	copy(room, units[:n*charSize])
	clear(room[n*charSize : (n+1)*charSize])

	if length > outLen {
		return VarlenTruncated, n
	}
	return Success, n
}

// putRaw copies data truncated to capacity and reports the full length in
// the indicator. written is in bytes.
func (b *Buffer) putRaw(data []byte) (Outcome, int) {
	b.SetIndicator(int64(len(data)))
	if !b.HasData() {
		return Success, 0
	}
	n := copy(b.room(), data)
	if n < len(data) {
		return VarlenTruncated, n
	}
	return Success, n
}

func (b *Buffer) putPacked(d decimal.Decimal) Outcome {
	p, truncated := numeric.Pack(d)
	var scratch [numericSize]byte
	return lossy(b.putFixed(appendNumeric(scratch[:0], p)), truncated)
}

// PutString writes text. Numeric, temporal and GUID targets parse it;
// text that does not parse is an unsupported conversion. written counts
// characters stored in a text buffer.
func (b *Buffer) PutString(s string) (Outcome, int) {
	out, written := b.putString(s)
	return b.trace("put_string", out), written
}

func (b *Buffer) putString(s string) (Outcome, int) {
	switch b.typ {
	case Char, WChar:
		return b.putText(s)

	case Binary, Default:
		return b.putChars(s, false)

	case Float, Double:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return UnsupportedConversion, 0
		}
		return b.putNumber(floatNum(f, 8)), 0

	case SignedTinyint, Bit, UnsignedTinyint, SignedShort, UnsignedShort,
		SignedLong, UnsignedLong, SignedBigint, UnsignedBigint:
		n, ok := parseNumber(s)
		if !ok {
			return UnsupportedConversion, 0
		}
		return b.putNumber(n), 0

	case Numeric:
		d, err := numeric.Parse(s)
		if err != nil {
			return UnsupportedConversion, 0
		}
		return b.putPacked(unscaled(d)), 0

	case TDate:
		f, err := calendar.ParseDate(s)
		if err != nil {
			return UnsupportedConversion, 0
		}
		return b.putFields(f, srcDate), 0

	case TTime:
		f, err := calendar.ParseTime(s)
		if err != nil {
			return UnsupportedConversion, 0
		}
		return b.putFields(f, srcTime), 0

	case TTimestamp:
		f, err := calendar.ParseTimestamp(s)
		if err != nil {
			return UnsupportedConversion, 0
		}
		return b.putFields(f, srcTimestamp), 0

	case GUID:
		u, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			return UnsupportedConversion, 0
		}
		return b.putGUID(u), 0
	}
	return UnsupportedConversion, 0
}

// PutGUID writes a UUID as canonical lowercase text or as the GUID struct.
func (b *Buffer) PutGUID(u uuid.UUID) Outcome {
	return b.trace("put_guid", b.putGUID(u))
}

func (b *Buffer) putGUID(u uuid.UUID) Outcome {
	switch b.typ {
	case Char, WChar, Binary, Default:
		out, _ := b.putString(u.String())
		return out
	case GUID:
		var scratch [guidSize]byte
		return b.putFixed(appendGUID(scratch[:0], u))
	}
	return UnsupportedConversion
}

// PutNull stores the null sentinel in the indicator. The data region is
// never touched.
func (b *Buffer) PutNull() Outcome {
	if !b.HasIndicator() {
		return b.trace("put_null", IndicatorRequired)
	}
	b.SetIndicator(NullData)
	return b.trace("put_null", Success)
}

// PutDecimal writes an arbitrary-precision decimal. Integer targets drop
// the fraction, packed numeric targets are rescaled to zero, and text
// targets keep the decimal's scale.
func (b *Buffer) PutDecimal(d decimal.Decimal) Outcome {
	return b.trace("put_decimal", b.putDecimal(d))
}

func (b *Buffer) putDecimal(d decimal.Decimal) Outcome {
	switch b.typ {
	case SignedTinyint, Bit, UnsignedTinyint, SignedShort, UnsignedShort,
		SignedLong, UnsignedLong, SignedBigint, UnsignedBigint, Float, Double:
		return b.putNumber(decNum(d))
	case Char, WChar:
		out, _ := b.putText(decimalText(d))
		return out
	case Numeric:
		return b.putPacked(d)
	}
	return UnsupportedConversion
}

// PutBigInteger writes an arbitrary-precision integer.
func (b *Buffer) PutBigInteger(n *big.Int) Outcome {
	if n == nil {
		n = new(big.Int)
	}
	return b.trace("put_biginteger", b.putDecimal(decimal.NewFromBigInt(n, 0)))
}

// PutBinaryData copies bytes into binary targets and renders them as hex
// pairs into text targets. written counts bytes or characters stored.
func (b *Buffer) PutBinaryData(data []byte) (Outcome, int) {
	var out Outcome
	var written int
	switch b.typ {
	case Binary, Default:
		out, written = b.putRaw(data)
	case Char, WChar:
		hex := pool.GetBytes()
		*hex = stringpool.AppendHex(*hex, data)
		out, written = b.putText(stringpool.BytesToString(*hex))
		pool.PutBytes(hex)
	default:
		out = UnsupportedConversion
	}
	return b.trace("put_binary_data", out), written
}

// PutRawData copies bytes into the buffer whatever its type, truncated to
// capacity. It serves chunked transfers of variable-length data.
func (b *Buffer) PutRawData(data []byte) (Outcome, int) {
	out, written := b.putRaw(data)
	return b.trace("put_raw_data", out), written
}

type temporalSource uint8

const (
	srcDate temporalSource = iota
	srcTime
	srcTimestamp
)

// PutDate writes a calendar date.
func (b *Buffer) PutDate(d value.Date) Outcome {
	return b.trace("put_date", b.putFields(calendar.FromDate(d), srcDate))
}

// PutTime writes a time of day. Sub-second precision that the target
// cannot hold is reported as FractionalTruncated.
func (b *Buffer) PutTime(t value.Time) Outcome {
	return b.trace("put_time", b.putFields(calendar.FromTime(t), srcTime))
}

// PutTimestamp writes an instant in UTC.
func (b *Buffer) PutTimestamp(ts value.Timestamp) Outcome {
	return b.trace("put_timestamp", b.putFields(calendar.FromTimestamp(ts), srcTimestamp))
}

// PutDateTime writes a local date-time.
func (b *Buffer) PutDateTime(dt value.DateTime) Outcome {
	return b.trace("put_datetime", b.putFields(calendar.FromDateTime(dt), srcTimestamp))
}

// putFields writes calendar fields. Text patterns carry no fraction, so a
// nonzero one reports FractionalTruncated to keep put/get round trips exact.
func (b *Buffer) putFields(f calendar.Fields, src temporalSource) Outcome {
	var scratch [timestampSize]byte
	switch b.typ {
	case Char, WChar:
		pattern := calendar.PatternTimestamp
		switch src {
		case srcDate:
			pattern = calendar.PatternDate
		case srcTime:
			pattern = calendar.PatternTime
		}
		out, _ := b.putText(calendar.Format(f, pattern))
		return lossy(out, src != srcDate && f.Nanosecond != 0)

	case TDate:
		if src == srcTime {
			return UnsupportedConversion
		}
		return lossy(b.putFixed(appendDate(scratch[:0], f)), src == srcTimestamp)

	case TTime:
		if src == srcDate {
			f.Hour, f.Minute, f.Second, f.Nanosecond = 0, 0, 0, 0
		}
		out := b.putFixed(appendTime(scratch[:0], f))
		return lossy(out, src == srcTimestamp || f.Nanosecond != 0)

	case TTimestamp:
		return b.putFixed(appendTimestamp(scratch[:0], f))
	}
	return UnsupportedConversion
}
