package appbuf

import (
	"math"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/nebula-odbc/pkg/pool"
	"github.com/ajitpratap0/nebula-odbc/pkg/value"
)

func wide(s string) []byte {
	out := make([]byte, 0, 2*len(s))
	for _, c := range []byte(s) {
		out = append(out, c, 0)
	}
	return out
}

func TestPutIntegerIntoCharBuffer(t *testing.T) {
	b, data, ind := newBuffer(Char, 8)

	out := b.PutInt32(12345)

	assert.Equal(t, Success, out)
	assert.Equal(t, []byte("12345\x00"), data[:6])
	assert.Equal(t, int64(5), readIndicator(ind))
}

func TestPutIntegerIntoShortCharBuffer(t *testing.T) {
	b, data, ind := newBuffer(Char, 4)

	out := b.PutInt32(12345)

	assert.Equal(t, VarlenTruncated, out)
	assert.Equal(t, []byte("123\x00"), data)
	assert.Equal(t, int64(5), readIndicator(ind))
}

func TestPutDecimalIntoNumericStruct(t *testing.T) {
	b, data, ind := newBuffer(Numeric, 19)

	out := b.PutDecimal(decimal.RequireFromString("123.456"))

	assert.Equal(t, FractionalTruncated, out)
	assert.Equal(t, byte(3), data[0], "precision")
	assert.Equal(t, byte(0), data[1], "scale")
	assert.Equal(t, byte(1), data[2], "sign")
	want := make([]byte, 16)
	want[0] = 123
	assert.Equal(t, want, data[3:19])
	assert.Equal(t, int64(19), readIndicator(ind))
}

func TestPutDateIntoCharBuffer(t *testing.T) {
	b, data, ind := newBuffer(Char, 11)

	out := b.PutDate(value.Date{Year: 2024, Month: 1, Day: 15})

	assert.Equal(t, Success, out)
	assert.Equal(t, []byte("2024-01-15\x00"), data)
	assert.Equal(t, int64(10), readIndicator(ind))
}

func TestPutNullWithoutIndicator(t *testing.T) {
	data := filled(8, poison)
	b := New(SignedBigint, data, 8, nil)

	assert.Equal(t, IndicatorRequired, b.PutNull())
	assert.Equal(t, filled(8, poison), data)
}

func TestPutNullLeavesDataUntouched(t *testing.T) {
	b, data, ind := newBuffer(Char, 8)

	require.Equal(t, Success, b.PutNull())
	assert.Equal(t, NullData, readIndicator(ind))
	assert.Equal(t, filled(8, poison), data)
	assert.True(t, b.IsNullData())
}

func TestPutNumbers(t *testing.T) {
	tests := []struct {
		name      string
		typ       NativeType
		capacity  int
		narrowing Narrowing
		put       func(*Buffer) Outcome
		want      []byte
		outcome   Outcome
	}{
		{
			name: "widen sign extends", typ: SignedBigint, capacity: 8,
			put:  func(b *Buffer) Outcome { return b.PutInt8(-1) },
			want: []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, outcome: Success,
		},
		{
			name: "wrap keeps low byte", typ: SignedTinyint, capacity: 1,
			put:  func(b *Buffer) Outcome { return b.PutInt64(300) },
			want: []byte{0x2c}, outcome: Success,
		},
		{
			name: "saturate clamps high", typ: SignedTinyint, capacity: 1, narrowing: NarrowSaturate,
			put:  func(b *Buffer) Outcome { return b.PutInt64(300) },
			want: []byte{0x7f}, outcome: FractionalTruncated,
		},
		{
			name: "saturate clamps low", typ: SignedShort, capacity: 2, narrowing: NarrowSaturate,
			put:  func(b *Buffer) Outcome { return b.PutInt64(-40000) },
			want: []byte{0x00, 0x80}, outcome: FractionalTruncated,
		},
		{
			name: "negative into unsigned wraps", typ: UnsignedShort, capacity: 2,
			put:  func(b *Buffer) Outcome { return b.PutInt64(-1) },
			want: []byte{0xff, 0xff}, outcome: Success,
		},
		{
			name: "negative into unsigned saturates", typ: UnsignedShort, capacity: 2, narrowing: NarrowSaturate,
			put:  func(b *Buffer) Outcome { return b.PutInt64(-1) },
			want: []byte{0x00, 0x00}, outcome: FractionalTruncated,
		},
		{
			name: "bool into bit", typ: Bit, capacity: 1,
			put:  func(b *Buffer) Outcome { return b.PutBool(true) },
			want: []byte{0x01}, outcome: Success,
		},
		{
			name: "double drops fraction", typ: SignedLong, capacity: 4,
			put:  func(b *Buffer) Outcome { return b.PutDouble(2.5) },
			want: []byte{0x02, 0, 0, 0}, outcome: FractionalTruncated,
		},
		{
			name: "negative double truncates toward zero", typ: SignedLong, capacity: 4,
			put:  func(b *Buffer) Outcome { return b.PutDouble(-2.5) },
			want: []byte{0xfe, 0xff, 0xff, 0xff}, outcome: FractionalTruncated,
		},
		{
			name: "whole double", typ: SignedLong, capacity: 4,
			put:  func(b *Buffer) Outcome { return b.PutDouble(2) },
			want: []byte{0x02, 0, 0, 0}, outcome: Success,
		},
		{
			name: "nan into integer", typ: SignedLong, capacity: 4,
			put:  func(b *Buffer) Outcome { return b.PutDouble(math.NaN()) },
			want: []byte{0, 0, 0, 0}, outcome: FractionalTruncated,
		},
		{
			name: "short fixed buffer", typ: SignedLong, capacity: 2,
			put:  func(b *Buffer) Outcome { return b.PutInt32(5) },
			want: []byte{0x05, 0x00}, outcome: VarlenTruncated,
		},
		{
			name: "int into binary", typ: Binary, capacity: 8,
			put:  func(b *Buffer) Outcome { return b.PutInt32(7) },
			want: []byte{0x07, 0, 0, 0, poison, poison, poison, poison}, outcome: Success,
		},
		{
			name: "int into short binary", typ: Binary, capacity: 2,
			put:  func(b *Buffer) Outcome { return b.PutInt32(7) },
			want: []byte{0x07, 0}, outcome: VarlenTruncated,
		},
		{
			name: "double into default", typ: Default, capacity: 8,
			put:  func(b *Buffer) Outcome { return b.PutDouble(1) },
			want: []byte{0, 0, 0, 0, 0, 0, 0xf0, 0x3f}, outcome: Success,
		},
		{
			name: "int into guid", typ: GUID, capacity: 16,
			put:  func(b *Buffer) Outcome { return b.PutInt16(1) },
			want: filled(16, poison), outcome: UnsupportedConversion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, data, _ := newBuffer(tt.typ, tt.capacity, WithNarrowing(tt.narrowing))
			assert.Equal(t, tt.outcome, tt.put(b))
			assert.Equal(t, tt.want, data)
		})
	}
}

func TestPutFloats(t *testing.T) {
	b, data, _ := newBuffer(Float, 4)
	require.Equal(t, Success, b.PutDouble(0.5))
	f, out := b.GetFloat()
	require.Equal(t, Success, out)
	assert.Equal(t, float32(0.5), f)
	assert.Len(t, data, 4)

	b, _, _ = newBuffer(Float, 4)
	assert.Equal(t, FractionalTruncated, b.PutInt32(16777217))

	b, _, _ = newBuffer(Double, 8)
	require.Equal(t, Success, b.PutFloat(1.5))
	d, out := b.GetDouble()
	require.Equal(t, Success, out)
	assert.Equal(t, 1.5, d)

	b, _, _ = newBuffer(Double, 8)
	assert.Equal(t, FractionalTruncated, b.PutInt64(math.MaxInt64))
}

func TestPutWholeNumbersIntoNumeric(t *testing.T) {
	tests := []struct {
		name      string
		put       func(*Buffer) Outcome
		precision byte
		magnitude []byte
		outcome   Outcome
	}{
		{"double 100", func(b *Buffer) Outcome { return b.PutDouble(100) }, 3, []byte{100}, Success},
		{"double 1000", func(b *Buffer) Outcome { return b.PutDouble(1000) }, 4, []byte{0xe8, 0x03}, Success},
		{"double 120", func(b *Buffer) Outcome { return b.PutDouble(120) }, 3, []byte{120}, Success},
		{"double 5", func(b *Buffer) Outcome { return b.PutDouble(5) }, 1, []byte{5}, Success},
		{"float 200", func(b *Buffer) Outcome { return b.PutFloat(200) }, 3, []byte{200}, Success},
		{"double 2.5", func(b *Buffer) Outcome { return b.PutDouble(2.5) }, 1, []byte{2}, FractionalTruncated},
		{"exponent text", func(b *Buffer) Outcome { o, _ := b.PutString("1e2"); return o }, 3, []byte{100}, Success},
		{"decimal 1E+2", func(b *Buffer) Outcome { return b.PutDecimal(decimal.New(1, 2)) }, 3, []byte{100}, FractionalTruncated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, data, _ := newBuffer(Numeric, 19)
			assert.Equal(t, tt.outcome, tt.put(b))
			assert.Equal(t, tt.precision, data[0])
			assert.Equal(t, byte(0), data[1])
			assert.Equal(t, byte(1), data[2])
			assert.Equal(t, tt.magnitude, data[3:3+len(tt.magnitude)])
		})
	}
}

func TestPutFloatIntoNumericRejectsNaN(t *testing.T) {
	b, data, ind := newBuffer(Numeric, 19)

	assert.Equal(t, UnsupportedConversion, b.PutDouble(math.NaN()))
	assert.Equal(t, filled(19, poison), data)
	assert.Equal(t, int64(12345678), readIndicator(ind))
}

func TestPutMillisIntoTemporalStructs(t *testing.T) {
	const ms = int64(1705314600123) // 2024-01-15 10:30:00.123 UTC

	b, data, _ := newBuffer(TTimestamp, 16)
	require.Equal(t, Success, b.PutInt64(ms))
	assert.Equal(t, []byte{
		0xe8, 0x07, 0x01, 0x00, 0x0f, 0x00,
		0x0a, 0x00, 0x1e, 0x00, 0x00, 0x00,
		0xc0, 0xd4, 0x54, 0x07,
	}, data)

	b, data, _ = newBuffer(TDate, 6)
	assert.Equal(t, FractionalTruncated, b.PutInt64(ms))
	assert.Equal(t, []byte{0xe8, 0x07, 0x01, 0x00, 0x0f, 0x00}, data)

	b, data, _ = newBuffer(TTime, 6)
	assert.Equal(t, FractionalTruncated, b.PutInt64(ms))
	assert.Equal(t, []byte{0x0a, 0x00, 0x1e, 0x00, 0x00, 0x00}, data)

	b, _, _ = newBuffer(TTimestamp, 16)
	assert.Equal(t, UnsupportedConversion, b.PutDouble(math.Inf(1)))
}

func TestPutStringRule(t *testing.T) {
	tests := []struct {
		name     string
		typ      NativeType
		capacity int
		input    string
		want     []byte
		written  int
		length   int64
		outcome  Outcome
	}{
		{"fits", Char, 8, "hello", []byte("hello\x00" + "\xaa\xaa"), 5, 5, Success},
		{"exact fit", Char, 6, "hello", []byte("hello\x00"), 5, 5, Success},
		{"cut", Char, 5, "hello", []byte("hell\x00"), 4, 5, VarlenTruncated},
		{"terminator only", Char, 1, "hello", []byte{0}, 0, 5, VarlenTruncated},
		{"zero capacity", Char, 0, "hello", []byte{}, 0, 5, VarlenTruncated},
		{"empty", Char, 1, "", []byte{0}, 0, 0, Success},
		{"multibyte counts bytes", Char, 8, "héllo", []byte("héllo\x00\xaa"), 6, 6, Success},
		{"wide fits", WChar, 12, "hello", []byte("h\x00e\x00l\x00l\x00o\x00\x00\x00"), 5, 5, Success},
		{"wide cut", WChar, 8, "hello", []byte("h\x00e\x00l\x00\x00\x00"), 3, 5, VarlenTruncated},
		{"wide odd capacity", WChar, 7, "hello", []byte("h\x00e\x00\x00\x00\xaa"), 2, 5, VarlenTruncated},
		{"wide below one char", WChar, 1, "hello", []byte{poison}, 0, 5, VarlenTruncated},
		{"wide non ascii", WChar, 8, "é", []byte("\xe9\x00\x00\x00\xaa\xaa\xaa\xaa"), 1, 1, Success},
		{"binary uses narrow text", Binary, 4, "hi", []byte("hi\x00\xaa"), 2, 2, Success},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, data, ind := newBuffer(tt.typ, tt.capacity)
			out, written := b.PutString(tt.input)
			assert.Equal(t, tt.outcome, out)
			assert.Equal(t, tt.written, written)
			assert.Equal(t, tt.want, data)
			assert.Equal(t, tt.length, readIndicator(ind))
		})
	}
}

func TestPutStringWithoutDataPointer(t *testing.T) {
	ind := indicatorOf(0)
	b := New(Char, nil, 0, ind)

	out, written := b.PutString("hello")

	assert.Equal(t, Success, out)
	assert.Zero(t, written)
	assert.Equal(t, int64(5), readIndicator(ind))
}

func TestPutStringParsesForTypedTargets(t *testing.T) {
	t.Run("integer", func(t *testing.T) {
		b, _, _ := newBuffer(SignedShort, 2)
		out, _ := b.PutString(" 42 ")
		require.Equal(t, Success, out)
		n, _ := b.GetInt16()
		assert.Equal(t, int16(42), n)
	})

	t.Run("integer from fraction", func(t *testing.T) {
		b, _, _ := newBuffer(SignedLong, 4)
		out, _ := b.PutString("12.5")
		require.Equal(t, FractionalTruncated, out)
		n, _ := b.GetInt32()
		assert.Equal(t, int32(12), n)
	})

	t.Run("unsigned beyond int64", func(t *testing.T) {
		b, _, _ := newBuffer(UnsignedBigint, 8)
		out, _ := b.PutString("18446744073709551615")
		require.Equal(t, Success, out)
		n, _ := GetNum[uint64](b)
		assert.Equal(t, uint64(math.MaxUint64), n)
	})

	t.Run("not a number", func(t *testing.T) {
		b, data, _ := newBuffer(SignedLong, 4)
		out, _ := b.PutString("abc")
		assert.Equal(t, UnsupportedConversion, out)
		assert.Equal(t, filled(4, poison), data)
	})

	t.Run("double", func(t *testing.T) {
		b, _, _ := newBuffer(Double, 8)
		out, _ := b.PutString("0.1")
		require.Equal(t, Success, out)
		f, _ := b.GetDouble()
		assert.Equal(t, 0.1, f)
	})

	t.Run("numeric", func(t *testing.T) {
		b, data, _ := newBuffer(Numeric, 19)
		out, _ := b.PutString("-123.45")
		require.Equal(t, FractionalTruncated, out)
		assert.Equal(t, byte(0), data[2], "negative sign")
		assert.Equal(t, byte(123), data[3])
	})

	t.Run("date", func(t *testing.T) {
		b, _, _ := newBuffer(TDate, 6)
		out, _ := b.PutString("2024-01-15")
		require.Equal(t, Success, out)
		d, _ := b.GetDate()
		assert.Equal(t, value.Date{Year: 2024, Month: 1, Day: 15}, d)
	})

	t.Run("time", func(t *testing.T) {
		b, _, _ := newBuffer(TTime, 6)
		out, _ := b.PutString("10:30:05")
		require.Equal(t, Success, out)
		tm, _ := b.GetTime()
		assert.Equal(t, value.Time{Hour: 10, Minute: 30, Second: 5}, tm)
	})

	t.Run("timestamp with fraction", func(t *testing.T) {
		b, data, _ := newBuffer(TTimestamp, 16)
		out, _ := b.PutString("2024-01-15 10:30:05.5")
		require.Equal(t, Success, out)
		assert.Equal(t, []byte{0x00, 0x65, 0xcd, 0x1d}, data[12:16])
	})

	t.Run("bad date", func(t *testing.T) {
		b, _, _ := newBuffer(TDate, 6)
		out, _ := b.PutString("yesterday")
		assert.Equal(t, UnsupportedConversion, out)
	})

	t.Run("guid", func(t *testing.T) {
		b, _, _ := newBuffer(GUID, 16)
		out, _ := b.PutString("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
		require.Equal(t, Success, out)
		u, _ := b.GetGUID()
		assert.Equal(t, uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"), u)
	})
}

func TestPutGUID(t *testing.T) {
	u := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	b, data, ind := newBuffer(GUID, 16)
	require.Equal(t, Success, b.PutGUID(u))
	assert.Equal(t, []byte{
		0x10, 0xb8, 0xa7, 0x6b,
		0xad, 0x9d,
		0xd1, 0x11,
		0x80, 0xb4, 0x00, 0xc0, 0x4f, 0xd4, 0x30, 0xc8,
	}, data)
	assert.Equal(t, int64(16), readIndicator(ind))

	got, out := b.GetGUID()
	require.Equal(t, Success, out)
	assert.Equal(t, u, got)

	b, data, ind = newBuffer(Char, 37)
	require.Equal(t, Success, b.PutGUID(u))
	assert.Equal(t, u.String()+"\x00", string(data))
	assert.Equal(t, int64(36), readIndicator(ind))

	b, _, _ = newBuffer(Char, 10)
	assert.Equal(t, VarlenTruncated, b.PutGUID(u))

	b, _, _ = newBuffer(SignedBigint, 8)
	assert.Equal(t, UnsupportedConversion, b.PutGUID(u))
}

func TestPutDecimal(t *testing.T) {
	tests := []struct {
		name    string
		typ     NativeType
		input   string
		check   func(t *testing.T, b *Buffer)
		outcome Outcome
	}{
		{
			name: "fraction into integer", typ: SignedLong, input: "123.456", outcome: FractionalTruncated,
			check: func(t *testing.T, b *Buffer) {
				n, _ := b.GetInt32()
				assert.Equal(t, int32(123), n)
			},
		},
		{
			name: "whole into integer", typ: SignedLong, input: "123", outcome: Success,
			check: func(t *testing.T, b *Buffer) {
				n, _ := b.GetInt32()
				assert.Equal(t, int32(123), n)
			},
		},
		{
			name: "negative into unsigned", typ: UnsignedLong, input: "-5", outcome: Success,
			check: func(t *testing.T, b *Buffer) {
				n, _ := GetNum[uint32](b)
				assert.Equal(t, uint32(math.MaxUint32-4), n)
			},
		},
		{
			name: "exact double", typ: Double, input: "0.5", outcome: Success,
			check: func(t *testing.T, b *Buffer) {
				f, _ := b.GetDouble()
				assert.Equal(t, 0.5, f)
			},
		},
		{
			name: "inexact double", typ: Double, input: "0.1", outcome: FractionalTruncated,
			check: func(t *testing.T, b *Buffer) {
				f, _ := b.GetDouble()
				assert.Equal(t, 0.1, f)
			},
		},
		{
			name: "text keeps scale", typ: Char, input: "123.450", outcome: Success,
			check: func(t *testing.T, b *Buffer) {
				s, _ := b.GetString(-1)
				assert.Equal(t, "123.450", s)
			},
		},
		{
			name: "binary", typ: Binary, input: "1", outcome: UnsupportedConversion,
			check: func(t *testing.T, b *Buffer) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _, _ := newBuffer(tt.typ, 32)
			assert.Equal(t, tt.outcome, b.PutDecimal(decimal.RequireFromString(tt.input)))
			tt.check(t, b)
		})
	}
}

func TestPutDecimalOverflowingMagnitude(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 130)
	b, data, _ := newBuffer(Numeric, 19)

	assert.Equal(t, FractionalTruncated, b.PutBigInteger(huge))
	assert.Equal(t, make([]byte, 16), data[3:19], "high bytes dropped")
}

func TestPutBigInteger(t *testing.T) {
	n := new(big.Int).Lsh(big.NewInt(1), 70)
	b, data, _ := newBuffer(Numeric, 19)

	require.Equal(t, Success, b.PutBigInteger(n))
	assert.Equal(t, byte(22), data[0], "precision")
	assert.Equal(t, byte(1), data[2])
	want := make([]byte, 16)
	want[8] = 0x40
	assert.Equal(t, want, data[3:19])

	b, _, _ = newBuffer(Char, 8)
	assert.Equal(t, Success, b.PutBigInteger(nil))
	s, _ := b.GetString(-1)
	assert.Equal(t, "0", s)
}

func TestPutTemporal(t *testing.T) {
	ts := value.Timestamp{Seconds: 1705314600, Nanos: 500_000_000}
	whole := value.Timestamp{Seconds: 1705314600}

	tests := []struct {
		name     string
		typ      NativeType
		capacity int
		put      func(*Buffer) Outcome
		want     []byte
		outcome  Outcome
	}{
		{
			name: "timestamp into text", typ: Char, capacity: 20,
			put:  func(b *Buffer) Outcome { return b.PutTimestamp(whole) },
			want: []byte("2024-01-15 10:30:00\x00"), outcome: Success,
		},
		{
			name: "timestamp with fraction into text", typ: Char, capacity: 20,
			put:  func(b *Buffer) Outcome { return b.PutTimestamp(ts) },
			want: []byte("2024-01-15 10:30:00\x00"), outcome: FractionalTruncated,
		},
		{
			name: "timestamp into short text", typ: Char, capacity: 11,
			put:  func(b *Buffer) Outcome { return b.PutTimestamp(ts) },
			want: []byte("2024-01-15\x00"), outcome: VarlenTruncated,
		},
		{
			name: "timestamp into date struct", typ: TDate, capacity: 6,
			put:  func(b *Buffer) Outcome { return b.PutTimestamp(whole) },
			want: []byte{0xe8, 0x07, 0x01, 0x00, 0x0f, 0x00}, outcome: FractionalTruncated,
		},
		{
			name: "timestamp into time struct", typ: TTime, capacity: 6,
			put:  func(b *Buffer) Outcome { return b.PutTimestamp(whole) },
			want: []byte{0x0a, 0x00, 0x1e, 0x00, 0x00, 0x00}, outcome: FractionalTruncated,
		},
		{
			name: "timestamp into timestamp struct", typ: TTimestamp, capacity: 16,
			put: func(b *Buffer) Outcome { return b.PutTimestamp(ts) },
			want: []byte{
				0xe8, 0x07, 0x01, 0x00, 0x0f, 0x00,
				0x0a, 0x00, 0x1e, 0x00, 0x00, 0x00,
				0x00, 0x65, 0xcd, 0x1d,
			},
			outcome: Success,
		},
		{
			name: "time into timestamp struct", typ: TTimestamp, capacity: 16,
			put: func(b *Buffer) Outcome { return b.PutTime(value.Time{Hour: 10, Minute: 30, Second: 5}) },
			want: []byte{
				0xb2, 0x07, 0x01, 0x00, 0x01, 0x00,
				0x0a, 0x00, 0x1e, 0x00, 0x05, 0x00,
				0x00, 0x00, 0x00, 0x00,
			},
			outcome: Success,
		},
		{
			name: "time into date struct", typ: TDate, capacity: 6,
			put:  func(b *Buffer) Outcome { return b.PutTime(value.Time{Hour: 10}) },
			want: filled(6, poison), outcome: UnsupportedConversion,
		},
		{
			name: "time with nanos into time struct", typ: TTime, capacity: 6,
			put:  func(b *Buffer) Outcome { return b.PutTime(value.Time{Hour: 1, Nano: 5}) },
			want: []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00}, outcome: FractionalTruncated,
		},
		{
			name: "time with nanos into text", typ: Char, capacity: 9,
			put:  func(b *Buffer) Outcome { return b.PutTime(value.Time{Hour: 1, Nano: 5}) },
			want: []byte("01:00:00\x00"), outcome: FractionalTruncated,
		},
		{
			name: "date into time struct", typ: TTime, capacity: 6,
			put:  func(b *Buffer) Outcome { return b.PutDate(value.Date{Year: 2024, Month: 1, Day: 15}) },
			want: make([]byte, 6), outcome: Success,
		},
		{
			name: "date into timestamp struct", typ: TTimestamp, capacity: 16,
			put: func(b *Buffer) Outcome { return b.PutDate(value.Date{Year: 2024, Month: 1, Day: 15}) },
			want: []byte{
				0xe8, 0x07, 0x01, 0x00, 0x0f, 0x00,
				0, 0, 0, 0, 0, 0,
				0, 0, 0, 0,
			},
			outcome: Success,
		},
		{
			name: "datetime into wide text", typ: WChar, capacity: 42,
			put: func(b *Buffer) Outcome {
				return b.PutDateTime(value.DateTime{
					Date: value.Date{Year: 2024, Month: 1, Day: 15},
					Time: value.Time{Hour: 10, Minute: 30},
				})
			},
			want:    append(wide("2024-01-15 10:30:00\x00"), poison, poison),
			outcome: Success,
		},
		{
			name: "date into integer", typ: SignedLong, capacity: 4,
			put:  func(b *Buffer) Outcome { return b.PutDate(value.Date{Year: 2024, Month: 1, Day: 1}) },
			want: filled(4, poison), outcome: UnsupportedConversion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, data, _ := newBuffer(tt.typ, tt.capacity)
			assert.Equal(t, tt.outcome, tt.put(b))
			assert.Equal(t, tt.want, data)
		})
	}
}

func TestPutBinaryData(t *testing.T) {
	payload := []byte{0xde, 0xad}

	tests := []struct {
		name     string
		typ      NativeType
		capacity int
		want     []byte
		written  int
		length   int64
		outcome  Outcome
	}{
		{"binary", Binary, 4, []byte{0xde, 0xad, poison, poison}, 2, 2, Success},
		{"short binary", Binary, 1, []byte{0xde}, 1, 2, VarlenTruncated},
		{"hex text", Char, 5, []byte("dead\x00"), 4, 4, Success},
		{"short hex text", Char, 4, []byte("dea\x00"), 3, 4, VarlenTruncated},
		{"integer", SignedLong, 4, filled(4, poison), 0, 12345678, UnsupportedConversion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, data, ind := newBuffer(tt.typ, tt.capacity)
			out, written := b.PutBinaryData(payload)
			assert.Equal(t, tt.outcome, out)
			assert.Equal(t, tt.written, written)
			assert.Equal(t, tt.want, data)
			assert.Equal(t, tt.length, readIndicator(ind))
		})
	}
}

func TestPutTextUsesPooledScratch(t *testing.T) {
	before := pool.ByteStats()

	b, data, _ := newBuffer(WChar, 10)
	out, written := b.PutBinaryData([]byte{0xbe, 0xef})
	require.Equal(t, Success, out)
	assert.Equal(t, 4, written)
	assert.Equal(t, []byte{'b', 0, 'e', 0, 'e', 0, 'f', 0, 0, 0}, data)

	after := pool.ByteStats()
	assert.GreaterOrEqual(t, after.Gets-before.Gets, int64(2))
	assert.GreaterOrEqual(t, after.Puts-before.Puts, int64(2))
}

func TestPutRawData(t *testing.T) {
	b, data, ind := newBuffer(SignedLong, 4)

	out, written := b.PutRawData([]byte{1, 2, 3, 4, 5})

	assert.Equal(t, VarlenTruncated, out)
	assert.Equal(t, 4, written)
	assert.Equal(t, []byte{1, 2, 3, 4}, data)
	assert.Equal(t, int64(5), readIndicator(ind))
}
