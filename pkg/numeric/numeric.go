// Package numeric wraps shopspring/decimal with the operations the packed
// numeric buffer layout needs: rescale to zero, magnitude bytes, digit
// precision and sign.
package numeric

import (
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// MagnitudeWidth is the byte width of the packed numeric magnitude.
const MagnitudeWidth = 16

// Sign flag values of the packed layout.
const (
	SignNegative uint8 = 0
	SignPositive uint8 = 1
)

// Packed is the packed numeric struct: precision, scale, sign flag and a
// little-endian magnitude.
type Packed struct {
	Precision uint8
	Scale     int8
	Sign      uint8
	Val       [MagnitudeWidth]byte
}

// Scale returns the number of fractional digits carried by d. Negative when
// the coefficient is scaled up by a power of ten.
func Scale(d decimal.Decimal) int32 {
	return -d.Exponent()
}

// Whole returns the integer part of d, truncated toward zero.
func Whole(d decimal.Decimal) *big.Int {
	return d.BigInt()
}

// HasFraction reports whether d has a nonzero fractional part.
func HasFraction(d decimal.Decimal) bool {
	return !d.Equal(d.Truncate(0))
}

// Precision returns the number of decimal digits of |n|. Zero has one digit.
func Precision(n *big.Int) int {
	if n.Sign() == 0 {
		return 1
	}
	return len(new(big.Int).Abs(n).Text(10))
}

// Magnitude returns |n| as big-endian bytes with no leading zeros.
func Magnitude(n *big.Int) []byte {
	return new(big.Int).Abs(n).Bytes()
}

// Sign returns the packed sign flag of d.
func Sign(d decimal.Decimal) uint8 {
	if d.Sign() < 0 {
		return SignNegative
	}
	return SignPositive
}

// Pack rescales d to scale zero and packs it. truncated is true when the
// source scale was nonzero or the magnitude needed more than MagnitudeWidth
// bytes; in the latter case the high-order bytes are dropped.
func Pack(d decimal.Decimal) (p Packed, truncated bool) {
	truncated = Scale(d) != 0

	whole := Whole(d)
	digits := Precision(whole)
	if digits > math.MaxUint8 {
		digits = math.MaxUint8
	}
	p.Precision = uint8(digits)
	p.Scale = 0
	p.Sign = Sign(d)

	mag := Magnitude(whole)
	if len(mag) > MagnitudeWidth {
		truncated = true
		mag = mag[len(mag)-MagnitudeWidth:]
	}
	for i, b := range mag {
		p.Val[len(mag)-1-i] = b
	}
	return p, truncated
}

// PackInt packs an integer at scale zero.
func PackInt(n *big.Int) (Packed, bool) {
	return Pack(decimal.NewFromBigInt(n, 0))
}

// Unpack decodes a packed numeric into a decimal.
func Unpack(p Packed) decimal.Decimal {
	var be [MagnitudeWidth]byte
	for i, b := range p.Val {
		be[MagnitudeWidth-1-i] = b
	}
	mag := new(big.Int).SetBytes(be[:])
	if p.Sign == SignNegative {
		mag.Neg(mag)
	}
	return decimal.NewFromBigInt(mag, -int32(p.Scale))
}

// ToInt64 converts d to an int64, truncating toward zero and saturating at
// the int64 range. lossy is true when either happened.
func ToInt64(d decimal.Decimal) (n int64, lossy bool) {
	whole := Whole(d)
	lossy = HasFraction(d)
	switch {
	case whole.IsInt64():
		return whole.Int64(), lossy
	case whole.Sign() < 0:
		return math.MinInt64, true
	default:
		return math.MaxInt64, true
	}
}

// ToUint64 converts d to a uint64 with the same rules as ToInt64. Negative
// values saturate at zero.
func ToUint64(d decimal.Decimal) (n uint64, lossy bool) {
	whole := Whole(d)
	lossy = HasFraction(d)
	switch {
	case whole.Sign() < 0:
		return 0, true
	case whole.IsUint64():
		return whole.Uint64(), lossy
	default:
		return math.MaxUint64, true
	}
}

// ToFloat64 converts d to the nearest float64. exact is false when the float
// does not represent d exactly.
func ToFloat64(d decimal.Decimal) (f float64, exact bool) {
	return d.Float64()
}

// FromUint64 returns n as a decimal.
func FromUint64(n uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(n), 0)
}

// Parse reads decimal text, ignoring surrounding whitespace.
func Parse(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}
