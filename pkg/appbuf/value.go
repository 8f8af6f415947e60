package appbuf

import (
	"math/big"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ajitpratap0/nebula-odbc/pkg/numeric"
	"github.com/ajitpratap0/nebula-odbc/pkg/value"
)

// PutValue writes any typed value, dispatching on its kind. written counts
// the characters or bytes stored for variable-length payloads.
func (b *Buffer) PutValue(v value.Value) (Outcome, int) {
	switch v.Kind() {
	case value.KindNull:
		return b.PutNull(), 0
	case value.KindBool:
		return b.PutBool(value.MustGet[bool](v)), 0
	case value.KindInt8:
		return b.PutInt8(value.MustGet[int8](v)), 0
	case value.KindInt16:
		return b.PutInt16(value.MustGet[int16](v)), 0
	case value.KindInt32:
		return b.PutInt32(value.MustGet[int32](v)), 0
	case value.KindInt64:
		return b.PutInt64(value.MustGet[int64](v)), 0
	case value.KindFloat32:
		return b.PutFloat(value.MustGet[float32](v)), 0
	case value.KindFloat64:
		return b.PutDouble(value.MustGet[float64](v)), 0
	case value.KindString:
		return b.PutString(value.MustGet[string](v))
	case value.KindBytes:
		return b.PutBinaryData(value.MustGet[[]byte](v))
	case value.KindDecimal:
		return b.PutDecimal(value.MustGet[decimal.Decimal](v)), 0
	case value.KindBigInteger:
		return b.PutBigInteger(value.MustGet[*big.Int](v)), 0
	case value.KindDate:
		return b.PutDate(value.MustGet[value.Date](v)), 0
	case value.KindTime:
		return b.PutTime(value.MustGet[value.Time](v)), 0
	case value.KindDateTime:
		return b.PutDateTime(value.MustGet[value.DateTime](v)), 0
	case value.KindTimestamp:
		return b.PutTimestamp(value.MustGet[value.Timestamp](v)), 0
	case value.KindUUID:
		return b.PutGUID(value.MustGet[uuid.UUID](v)), 0
	case value.KindBitmask:
		return b.PutBinaryData(value.MustGet[value.BitArray](v).Bytes())
	case value.KindPeriod, value.KindDuration:
		if !b.typ.IsText() {
			return b.trace("put_interval", UnsupportedConversion), 0
		}
		out, written := b.putText(v.String())
		return b.trace("put_interval", out), written
	}
	return b.trace("put_value", UnsupportedConversion), 0
}

// GetValue reads the buffer as a value of kind k. A null indicator yields
// the null value with Success; a failed read yields the null value with its
// outcome.
func (b *Buffer) GetValue(k value.Kind) (value.Value, Outcome) {
	if b.IsNullData() {
		return value.Null(), Success
	}
	v, out := b.getValue(k)
	if !out.Written() {
		return value.Null(), out
	}
	return v, out
}

func (b *Buffer) getValue(k value.Kind) (value.Value, Outcome) {
	switch k {
	case value.KindNull:
		return value.Null(), Success
	case value.KindBool:
		n, out := GetNum[int64](b)
		return value.Bool(n != 0), out
	case value.KindInt8:
		n, out := b.GetInt8()
		return value.Int8(n), out
	case value.KindInt16:
		n, out := b.GetInt16()
		return value.Int16(n), out
	case value.KindInt32:
		n, out := b.GetInt32()
		return value.Int32(n), out
	case value.KindInt64:
		n, out := b.GetInt64()
		return value.Int64(n), out
	case value.KindFloat32:
		f, out := b.GetFloat()
		return value.Float32(f), out
	case value.KindFloat64:
		f, out := b.GetDouble()
		return value.Float64(f), out
	case value.KindString:
		s, out := b.GetString(-1)
		return value.String(s), out
	case value.KindBytes:
		data, out := b.GetBinary()
		return value.Bytes(data), out
	case value.KindDecimal:
		d, out := b.GetDecimal()
		return value.Decimal(d), out
	case value.KindBigInteger:
		d, out := b.GetDecimal()
		return value.BigInteger(numeric.Whole(d)), lossy(out, out == Success && numeric.HasFraction(d))
	case value.KindDate:
		d, out := b.GetDate()
		return value.DateOf(d), out
	case value.KindTime:
		t, out := b.GetTime()
		return value.TimeOf(t), out
	case value.KindDateTime:
		dt, out := b.GetDateTime()
		return value.DateTimeOf(dt), out
	case value.KindTimestamp:
		ts, out := b.GetTimestamp()
		return value.TimestampOf(ts), out
	case value.KindUUID:
		u, out := b.GetGUID()
		return value.UUID(u), out
	case value.KindBitmask:
		data, out := b.GetBinary()
		return value.Bitmask(value.BitArrayFromBytes(data, len(data)*8)), out
	}
	return value.Null(), b.trace("get_value", UnsupportedConversion)
}
