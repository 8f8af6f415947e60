package appbuf

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ajitpratap0/nebula-odbc/pkg/numeric"
)

// Narrowing decides what happens when an integer does not fit the target
// width.
type Narrowing uint8

const (
	// NarrowWrap keeps the low-order bytes, two's complement. The outcome is
	// unaffected.
	NarrowWrap Narrowing = iota
	// NarrowSaturate clamps to the target range and reports
	// FractionalTruncated when it had to.
	NarrowSaturate
)

func (p Narrowing) String() string {
	if p == NarrowSaturate {
		return "saturate"
	}
	return "wrap"
}

// ParseNarrowing resolves "wrap" or "saturate".
func ParseNarrowing(s string) (Narrowing, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrap", "":
		return NarrowWrap, true
	case "saturate":
		return NarrowSaturate, true
	}
	return NarrowWrap, false
}

type numKind uint8

const (
	numInt numKind = iota
	numUint
	numFloat
	numDecimal
)

// number is a numeric source value together with its own width.
type number struct {
	kind numKind
	i    int64
	u    uint64
	f    float64
	d    decimal.Decimal
	size int
}

func intNum(v int64, size int) number     { return number{kind: numInt, i: v, size: size} }
func uintNum(v uint64, size int) number   { return number{kind: numUint, u: v, size: size} }
func floatNum(v float64, size int) number { return number{kind: numFloat, f: v, size: size} }
func decNum(d decimal.Decimal) number     { return number{kind: numDecimal, d: d} }

// raw returns the source bytes in their own little-endian layout.
func (n number) raw() (bits uint64, size int) {
	switch n.kind {
	case numInt:
		return uint64(n.i), n.size
	case numUint:
		return n.u, n.size
	case numFloat:
		if n.size == 4 {
			return uint64(math.Float32bits(float32(n.f))), 4
		}
		return math.Float64bits(n.f), 8
	}
	return 0, 0
}

// text renders n in locale-independent decimal form.
func (n number) text() string {
	switch n.kind {
	case numInt:
		return strconv.FormatInt(n.i, 10)
	case numUint:
		return strconv.FormatUint(n.u, 10)
	case numFloat:
		bitSize := 64
		if n.size == 4 {
			bitSize = 32
		}
		return strconv.FormatFloat(n.f, 'g', -1, bitSize)
	}
	return decimalText(n.d)
}

// float64 converts n to a float. lost is true when the float is inexact.
func (n number) float64() (f float64, lost bool) {
	const two63 = 1 << 63
	switch n.kind {
	case numInt:
		f = float64(n.i)
		return f, f >= two63 || int64(f) != n.i
	case numUint:
		f = float64(n.u)
		return f, f >= 2*two63 || uint64(f) != n.u
	case numFloat:
		return n.f, false
	}
	f, exact := numeric.ToFloat64(n.d)
	return f, !exact
}

// decimal converts n to a decimal. ok is false for NaN and infinities.
func (n number) decimal() (d decimal.Decimal, ok bool) {
	switch n.kind {
	case numInt:
		return decimal.NewFromInt(n.i), true
	case numUint:
		return numeric.FromUint64(n.u), true
	case numFloat:
		if math.IsNaN(n.f) || math.IsInf(n.f, 0) {
			return decimal.Zero, false
		}
		if n.size == 4 {
			return unscaled(decimal.NewFromFloat32(float32(n.f))), true
		}
		return unscaled(decimal.NewFromFloat(n.f)), true
	}
	return n.d, true
}

// unscaled moves a positive exponent into the coefficient, so 1E+2 packs
// as 100 at scale zero. Decimal column values keep their own scale.
func unscaled(d decimal.Decimal) decimal.Decimal {
	if d.Exponent() > 0 {
		return decimal.NewFromBigInt(d.BigInt(), 0)
	}
	return d
}

// numTarget is the shape of a numeric destination.
type numTarget struct {
	size   int
	signed bool
	float  bool
}

func targetOf(t NativeType) numTarget {
	switch t {
	case SignedTinyint:
		return numTarget{size: 1, signed: true}
	case Bit, UnsignedTinyint:
		return numTarget{size: 1}
	case SignedShort:
		return numTarget{size: 2, signed: true}
	case UnsignedShort:
		return numTarget{size: 2}
	case SignedLong:
		return numTarget{size: 4, signed: true}
	case UnsignedLong:
		return numTarget{size: 4}
	case SignedBigint:
		return numTarget{size: 8, signed: true}
	case UnsignedBigint:
		return numTarget{size: 8}
	case Float:
		return numTarget{size: 4, float: true}
	default:
		return numTarget{size: 8, float: true}
	}
}

// convert encodes n in the target's representation as little-endian bits.
// lost is true when the stored value differs from n: a dropped fraction, an
// inexact float, or clamping under NarrowSaturate.
func convert(n number, t numTarget, p Narrowing) (bits uint64, lost bool) {
	if t.float {
		f, lost := n.float64()
		if t.size == 4 {
			f32 := float32(f)
			if !math.IsNaN(f) && float64(f32) != f {
				lost = true
			}
			return uint64(math.Float32bits(f32)), lost
		}
		return math.Float64bits(f), lost
	}

	switch n.kind {
	case numInt:
		return fitInt(n.i, t, p)
	case numUint:
		return fitUint(n.u, t, p)
	case numFloat:
		return fitFloat(n.f, t, p)
	}

	if n.d.Sign() < 0 {
		v, frac := numeric.ToInt64(n.d)
		bits, clamped := fitInt(v, t, p)
		return bits, frac || clamped
	}
	v, frac := numeric.ToUint64(n.d)
	bits, clamped := fitUint(v, t, p)
	return bits, frac || clamped
}

func signedRange(size int) (lo, hi int64) {
	hi = int64(uint64(1)<<(8*size-1) - 1)
	return -hi - 1, hi
}

func unsignedMax(size int) uint64 {
	if size >= 8 {
		return math.MaxUint64
	}
	return uint64(1)<<(8*size) - 1
}

func mask(bits uint64, size int) uint64 {
	return bits & unsignedMax(size)
}

func fitInt(v int64, t numTarget, p Narrowing) (uint64, bool) {
	if t.signed {
		lo, hi := signedRange(t.size)
		if p == NarrowSaturate && (v < lo || v > hi) {
			return mask(uint64(min(max(v, lo), hi)), t.size), true
		}
		return mask(uint64(v), t.size), false
	}
	hi := unsignedMax(t.size)
	if p == NarrowSaturate {
		if v < 0 {
			return 0, true
		}
		if uint64(v) > hi {
			return hi, true
		}
	}
	return mask(uint64(v), t.size), false
}

func fitUint(v uint64, t numTarget, p Narrowing) (uint64, bool) {
	hi := unsignedMax(t.size)
	if t.signed {
		_, shi := signedRange(t.size)
		hi = uint64(shi)
	}
	if p == NarrowSaturate && v > hi {
		return hi, true
	}
	return mask(v, t.size), false
}

// fitFloat truncates f toward zero and fits the integer part. Values
// outside the 64-bit range always clamp.
func fitFloat(f float64, t numTarget, p Narrowing) (uint64, bool) {
	const two63 = 1 << 63
	if math.IsNaN(f) {
		return 0, true
	}
	whole := math.Trunc(f)
	frac := whole != f

	switch {
	case whole >= -two63 && whole < two63:
		bits, clamped := fitInt(int64(whole), t, p)
		return bits, frac || clamped
	case whole >= 0 && whole < 2*two63:
		bits, clamped := fitUint(uint64(whole), t, p)
		return bits, frac || clamped
	case whole < 0:
		if !t.signed {
			return 0, true
		}
		lo, _ := signedRange(t.size)
		return mask(uint64(lo), t.size), true
	default:
		if t.signed {
			_, hi := signedRange(t.size)
			return uint64(hi), true
		}
		return unsignedMax(t.size), true
	}
}

// parseNumber reads decimal text as the narrowest fitting kind.
func parseNumber(s string) (number, bool) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return intNum(v, 8), true
	}
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		return uintNum(v, 8), true
	}
	if d, err := numeric.Parse(s); err == nil {
		return decNum(unscaled(d)), true
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return floatNum(v, 8), true
	}
	return number{}, false
}

// decimalText renders d keeping its scale, so 1.50 stays 1.50.
func decimalText(d decimal.Decimal) string {
	if d.Exponent() < 0 {
		return d.StringFixed(-d.Exponent())
	}
	return d.String()
}
