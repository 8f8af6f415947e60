package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Date is a calendar date without a time zone.
type Date struct {
	Year  int32
	Month uint8
	Day   uint8
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time is a time of day with nanosecond precision.
type Time struct {
	Hour   uint8
	Minute uint8
	Second uint8
	Nano   int32
}

func (t Time) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Nano != 0 {
		s += "." + fraction(t.Nano)
	}
	return s
}

// DateTime is a local date and time without a time zone.
type DateTime struct {
	Date Date
	Time Time
}

func (dt DateTime) String() string {
	return dt.Date.String() + " " + dt.Time.String()
}

// Timestamp is an instant: seconds and nanoseconds since the Unix epoch, UTC.
type Timestamp struct {
	Seconds int64
	Nanos   int32
}

// Millis returns the instant as milliseconds since the epoch.
func (ts Timestamp) Millis() int64 {
	return ts.Seconds*1000 + int64(ts.Nanos)/1_000_000
}

// TimestampFromMillis builds a Timestamp from milliseconds since the epoch.
func TimestampFromMillis(ms int64) Timestamp {
	sec := ms / 1000
	rem := ms % 1000
	if rem < 0 {
		sec--
		rem += 1000
	}
	return Timestamp{Seconds: sec, Nanos: int32(rem) * 1_000_000}
}

// Period is a calendar amount of years, months and days.
type Period struct {
	Years  int32
	Months int32
	Days   int32
}

// String renders the period in ISO-8601 form, e.g. P1Y2M3D.
func (p Period) String() string {
	if p == (Period{}) {
		return "P0D"
	}
	var b strings.Builder
	b.WriteByte('P')
	if p.Years != 0 {
		b.WriteString(strconv.FormatInt(int64(p.Years), 10))
		b.WriteByte('Y')
	}
	if p.Months != 0 {
		b.WriteString(strconv.FormatInt(int64(p.Months), 10))
		b.WriteByte('M')
	}
	if p.Days != 0 {
		b.WriteString(strconv.FormatInt(int64(p.Days), 10))
		b.WriteByte('D')
	}
	return b.String()
}

// Duration is an exact amount of time.
type Duration struct {
	Seconds int64
	Nanos   int32
}

// String renders the duration in ISO-8601 seconds form, e.g. PT90.5S.
func (d Duration) String() string {
	sec, nanos := d.Seconds, d.Nanos
	neg := sec < 0 || (sec == 0 && nanos < 0)
	if neg {
		sec, nanos = -sec, -nanos
		if nanos < 0 {
			sec--
			nanos += 1_000_000_000
		}
	}
	s := strconv.FormatInt(sec, 10)
	if nanos != 0 {
		s += "." + fraction(nanos)
	}
	if neg {
		s = "-" + s
	}
	return "PT" + s + "S"
}

// fraction renders nanoseconds without trailing zeros.
func fraction(nanos int32) string {
	return strings.TrimRight(fmt.Sprintf("%09d", nanos), "0")
}

// BitArray is a fixed-size sequence of bits stored least significant bit
// first within each byte.
type BitArray struct {
	data []byte
	size int
}

// NewBitArray returns a cleared bit array of size bits.
func NewBitArray(size int) BitArray {
	if size < 0 {
		size = 0
	}
	return BitArray{data: make([]byte, (size+7)/8), size: size}
}

// BitArrayFromBytes builds a bit array of size bits over a copy of data.
// Missing bytes read as zero.
func BitArrayFromBytes(data []byte, size int) BitArray {
	b := NewBitArray(size)
	copy(b.data, data)
	if rem := size % 8; rem != 0 && len(b.data) > 0 {
		b.data[len(b.data)-1] &= byte(1<<rem) - 1
	}
	return b
}

// Len returns the number of bits.
func (b BitArray) Len() int { return b.size }

// Test reports whether bit i is set. Out-of-range bits read as unset.
func (b BitArray) Test(i int) bool {
	if i < 0 || i >= b.size {
		return false
	}
	return b.data[i/8]&(1<<(i%8)) != 0
}

// Set sets or clears bit i. Out-of-range indexes are ignored.
func (b BitArray) Set(i int, on bool) {
	if i < 0 || i >= b.size {
		return
	}
	if on {
		b.data[i/8] |= 1 << (i % 8)
	} else {
		b.data[i/8] &^= 1 << (i % 8)
	}
}

// Bytes returns a copy of the packed bits.
func (b BitArray) Bytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

func (b BitArray) clone() BitArray {
	return BitArray{data: b.Bytes(), size: b.size}
}

func (b BitArray) String() string {
	var sb strings.Builder
	sb.Grow(b.size)
	for i := 0; i < b.size; i++ {
		if b.Test(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
