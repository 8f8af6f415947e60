package appbuf

import (
	"encoding/hex"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ajitpratap0/nebula-odbc/pkg/calendar"
	"github.com/ajitpratap0/nebula-odbc/pkg/numeric"
	"github.com/ajitpratap0/nebula-odbc/pkg/textconv"
	"github.com/ajitpratap0/nebula-odbc/pkg/value"
)

// Number is the set of Go scalar types GetNum can produce.
type Number interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// GetNum reads the buffer as T. Text is parsed, packed numerics are
// unpacked and other numeric layouts are loaded and converted under the
// buffer's narrowing policy. A null indicator yields NoData.
func GetNum[T Number](b *Buffer) (T, Outcome) {
	var zero T
	if out, ok := b.readable(); !ok {
		return zero, b.trace("get_num", out)
	}
	n, out := b.readNumber()
	if out != Success {
		return zero, b.trace("get_num", out)
	}

	t := numTargetFor[T]()
	bits, lost := convert(n, t, b.narrowing)
	var v T
	switch {
	case t.float && t.size == 4:
		v = T(math.Float32frombits(uint32(bits)))
	case t.float:
		v = T(math.Float64frombits(bits))
	case t.signed:
		v = T(signExtend(bits, t.size))
	default:
		v = T(bits)
	}
	return v, b.trace("get_num", lossy(Success, lost))
}

func numTargetFor[T Number]() numTarget {
	var zero T
	switch any(zero).(type) {
	case int8:
		return numTarget{size: 1, signed: true}
	case int16:
		return numTarget{size: 2, signed: true}
	case int32:
		return numTarget{size: 4, signed: true}
	case int64:
		return numTarget{size: 8, signed: true}
	case uint8:
		return numTarget{size: 1}
	case uint16:
		return numTarget{size: 2}
	case uint32:
		return numTarget{size: 4}
	case uint64:
		return numTarget{size: 8}
	case float32:
		return numTarget{size: 4, float: true}
	case float64:
		return numTarget{size: 8, float: true}
	}

	return numTarget{size: 8, float: true}
}

func signExtend(bits uint64, size int) int64 {
	shift := 64 - 8*size
	return int64(bits<<shift) >> shift
}

// GetInt8 reads an 8-bit integer.
func (b *Buffer) GetInt8() (int8, Outcome) { return GetNum[int8](b) }

// GetInt16 reads a 16-bit integer.
func (b *Buffer) GetInt16() (int16, Outcome) { return GetNum[int16](b) }

// GetInt32 reads a 32-bit integer.
func (b *Buffer) GetInt32() (int32, Outcome) { return GetNum[int32](b) }

// GetInt64 reads a 64-bit integer.
func (b *Buffer) GetInt64() (int64, Outcome) { return GetNum[int64](b) }

// GetFloat reads a single precision float.
func (b *Buffer) GetFloat() (float32, Outcome) { return GetNum[float32](b) }

// GetDouble reads a double precision float.
func (b *Buffer) GetDouble() (float64, Outcome) { return GetNum[float64](b) }

// readable reports whether the current element holds a value.
func (b *Buffer) readable() (Outcome, bool) {
	if b.IsNullData() || !b.HasData() {
		return NoData, false
	}
	return Success, true
}

// readNumber loads the current element as a numeric source.
func (b *Buffer) readNumber() (number, Outcome) {
	var scratch [numericSize]byte
	switch b.typ {
	case SignedTinyint, Bit, UnsignedTinyint, SignedShort, UnsignedShort,
		SignedLong, UnsignedLong, SignedBigint, UnsignedBigint:
		t := targetOf(b.typ)
		bits := readBits(b.view(scratch[:], t.size))
		if t.signed {
			return intNum(signExtend(bits, t.size), t.size), Success
		}
		return uintNum(bits, t.size), Success
	case Float:
		bits := readBits(b.view(scratch[:], 4))
		return floatNum(float64(math.Float32frombits(uint32(bits))), 4), Success
	case Double:
		bits := readBits(b.view(scratch[:], 8))
		return floatNum(math.Float64frombits(bits), 8), Success
	case Numeric:
		return decNum(numeric.Unpack(readNumeric(b.view(scratch[:], numericSize)))), Success
	case Char, WChar:
		s, _ := b.readText(-1)
		if n, ok := parseNumber(s); ok {
			return n, Success
		}
	}
	return number{}, UnsupportedConversion
}

// readText decodes the current element of a text buffer. The length comes
// from a non-negative indicator, otherwise from the terminator, bounded by
// capacity. maxLen limits the result in characters when non-negative;
// truncated reports whether it did.
func (b *Buffer) readText(maxLen int) (s string, truncated bool) {
	wide := b.typ == WChar
	charSize := textconv.CharSize(wide)
	room := b.room()

	var raw []byte
	if v, ok := b.Indicator(); ok && v >= 0 && v <= int64(len(room)/charSize) {
		raw = room[:int(v)*charSize]
	} else {
		raw = textconv.Terminated(room, wide)
	}
	if maxLen >= 0 && len(raw) > maxLen*charSize {
		raw = raw[:maxLen*charSize]
		truncated = true
	}
	s, err := textconv.String(raw, wide)
	if err != nil {
		return "", truncated
	}
	return s, truncated
}

// GetString reads the buffer as text. Numeric layouts render as decimal
// text, temporal structs with the fixed patterns and GUID structs in
// canonical form. A non-negative maxLen limits the result in characters and
// reports VarlenTruncated when it cut.
func (b *Buffer) GetString(maxLen int) (string, Outcome) {
	s, out := b.getString(maxLen)
	return s, b.trace("get_string", out)
}

func (b *Buffer) getString(maxLen int) (string, Outcome) {
	if out, ok := b.readable(); !ok {
		return "", out
	}

	var s string
	var scratch [numericSize]byte
	switch b.typ {
	case Char, WChar:
		s, truncated := b.readText(maxLen)
		if truncated {
			return s, VarlenTruncated
		}
		return s, Success
	case SignedTinyint, Bit, UnsignedTinyint, SignedShort, UnsignedShort,
		SignedLong, UnsignedLong, SignedBigint, UnsignedBigint, Float, Double, Numeric:
		n, _ := b.readNumber()
		s = n.text()
	case TDate:
		s = calendar.Format(readDate(b.view(scratch[:], dateSize)), calendar.PatternDate)
	case TTime:
		s = calendar.Format(readTime(b.view(scratch[:], timeSize)), calendar.PatternTime)
	case TTimestamp:
		f := readTimestamp(b.view(scratch[:], timestampSize))
		s = calendar.Format(f, calendar.PatternTimestamp)
	case GUID:
		s = readGUID(b.view(scratch[:], guidSize)).String()
	default:
		return "", UnsupportedConversion
	}

	if maxLen >= 0 && len(s) > maxLen {
		return s[:maxLen], VarlenTruncated
	}
	return s, Success
}

// GetGUID reads a UUID from canonical text or the GUID struct.
func (b *Buffer) GetGUID() (uuid.UUID, Outcome) {
	if out, ok := b.readable(); !ok {
		return uuid.Nil, b.trace("get_guid", out)
	}
	switch b.typ {
	case Char, WChar:
		s, _ := b.readText(-1)
		u, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			return uuid.Nil, b.trace("get_guid", UnsupportedConversion)
		}
		return u, b.trace("get_guid", Success)
	case GUID:
		var scratch [guidSize]byte
		return readGUID(b.view(scratch[:], guidSize)), b.trace("get_guid", Success)
	}
	return uuid.Nil, b.trace("get_guid", UnsupportedConversion)
}

// readFields loads the current element as calendar fields and reports
// which temporal shape the source carried.
func (b *Buffer) readFields() (f calendar.Fields, src temporalSource, out Outcome) {
	var scratch [timestampSize]byte
	switch b.typ {
	case TDate:
		return readDate(b.view(scratch[:], dateSize)), srcDate, Success
	case TTime:
		return readTime(b.view(scratch[:], timeSize)), srcTime, Success
	case TTimestamp:
		return readTimestamp(b.view(scratch[:], timestampSize)), srcTimestamp, Success
	case Char, WChar:
		s, _ := b.readText(-1)
		if f, err := calendar.ParseTimestamp(s); err == nil {
			return f, srcTimestamp, Success
		}
		if f, err := calendar.ParseTime(s); err == nil {
			return f, srcTime, Success
		}
	}
	return calendar.Fields{}, srcDate, UnsupportedConversion
}

// GetDate reads a calendar date. Reading it from a timestamp struct drops
// the time of day and reports FractionalTruncated unless it was midnight.
func (b *Buffer) GetDate() (value.Date, Outcome) {
	if out, ok := b.readable(); !ok {
		return value.Date{}, b.trace("get_date", out)
	}
	f, src, out := b.readFields()
	if out != Success {
		return value.Date{}, b.trace("get_date", out)
	}
	if b.typ == TTimestamp && f.Time() != (value.Time{}) {
		out = FractionalTruncated
	}
	if src == srcTime && b.typ.IsText() {
		return value.Date{}, b.trace("get_date", UnsupportedConversion)
	}
	return f.Date(), b.trace("get_date", out)
}

// GetTime reads a time of day. Reading it from a timestamp struct drops the
// date and reports FractionalTruncated.
func (b *Buffer) GetTime() (value.Time, Outcome) {
	if out, ok := b.readable(); !ok {
		return value.Time{}, b.trace("get_time", out)
	}
	if b.typ == TDate {
		return value.Time{}, b.trace("get_time", UnsupportedConversion)
	}
	f, _, out := b.readFields()
	if out != Success {
		return value.Time{}, b.trace("get_time", out)
	}
	if b.typ == TTimestamp {
		out = FractionalTruncated
	}
	return f.Time(), b.trace("get_time", out)
}

// GetTimestamp reads an instant in UTC. Date structs read as midnight and
// time structs as that time on 1970-01-01.
func (b *Buffer) GetTimestamp() (value.Timestamp, Outcome) {
	if out, ok := b.readable(); !ok {
		return value.Timestamp{}, b.trace("get_timestamp", out)
	}
	f, _, out := b.readFields()
	if out != Success {
		return value.Timestamp{}, b.trace("get_timestamp", out)
	}
	return f.Timestamp(), b.trace("get_timestamp", out)
}

// GetDateTime reads a local date-time.
func (b *Buffer) GetDateTime() (value.DateTime, Outcome) {
	if out, ok := b.readable(); !ok {
		return value.DateTime{}, b.trace("get_datetime", out)
	}
	f, _, out := b.readFields()
	if out != Success {
		return value.DateTime{}, b.trace("get_datetime", out)
	}
	return f.DateTime(), b.trace("get_datetime", out)
}

// GetDecimal reads an arbitrary-precision decimal from text, a packed
// numeric struct or any integer or float layout.
func (b *Buffer) GetDecimal() (decimal.Decimal, Outcome) {
	if out, ok := b.readable(); !ok {
		return decimal.Zero, b.trace("get_decimal", out)
	}
	if b.typ.IsText() {
		s, _ := b.readText(-1)
		d, err := numeric.Parse(s)
		if err != nil {
			return decimal.Zero, b.trace("get_decimal", UnsupportedConversion)
		}
		return d, b.trace("get_decimal", Success)
	}
	n, out := b.readNumber()
	if out != Success {
		return decimal.Zero, b.trace("get_decimal", out)
	}
	d, ok := n.decimal()
	if !ok {
		return decimal.Zero, b.trace("get_decimal", UnsupportedConversion)
	}
	return d, b.trace("get_decimal", Success)
}

// GetBinary reads raw bytes. Binary and default buffers yield the bytes
// named by the indicator, or the whole capacity; text buffers are decoded
// from hex pairs; fixed layouts yield their encoded bytes.
func (b *Buffer) GetBinary() ([]byte, Outcome) {
	if out, ok := b.readable(); !ok {
		return nil, b.trace("get_binary", out)
	}
	switch b.typ {
	case Binary, Default:
		room := b.room()
		if v, ok := b.Indicator(); ok && v >= 0 && !b.IsDataAtExec() {
			room = room[:min(int(v), len(room))]
		}
		return append([]byte(nil), room...), b.trace("get_binary", Success)
	case Char, WChar:
		s, _ := b.readText(-1)
		out, err := hex.DecodeString(strings.TrimSpace(s))
		if err != nil {
			return nil, b.trace("get_binary", UnsupportedConversion)
		}
		return out, b.trace("get_binary", Success)
	}
	if w, ok := b.typ.FixedWidth(); ok {
		return b.view(make([]byte, w), w), b.trace("get_binary", Success)
	}
	return nil, b.trace("get_binary", UnsupportedConversion)
}
