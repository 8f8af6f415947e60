package value

import (
	"bytes"
	"cmp"
	"math"
	"math/big"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Equal reports whether a and b hold the same kind and the same payload.
// Values of different kinds are never equal. Decimals compare numerically,
// so 1.0 equals 1.00.
func Equal(a, b Value) bool {
	return a.kind == b.kind && Compare(a, b) == 0
}

// Compare orders a and b by kind first and payload second. It returns -1, 0
// or +1. Float NaN sorts before every other float.
func Compare(a, b Value) int {
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}

	switch a.kind {
	case KindNull:
		return 0
	case KindBool:
		return cmp.Compare(a.num, b.num)
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return cmp.Compare(int64(a.num), int64(b.num))
	case KindFloat32:
		return cmp.Compare(math.Float32frombits(uint32(a.num)), math.Float32frombits(uint32(b.num)))
	case KindFloat64:
		return cmp.Compare(math.Float64frombits(a.num), math.Float64frombits(b.num))
	case KindString:
		return cmp.Compare(a.str, b.str)
	case KindBytes:
		return bytes.Compare(a.ref.([]byte), b.ref.([]byte))
	case KindDecimal:
		return a.ref.(decimal.Decimal).Cmp(b.ref.(decimal.Decimal))
	case KindBigInteger:
		return a.ref.(*big.Int).Cmp(b.ref.(*big.Int))
	case KindDate:
		return compareDate(a.ref.(Date), b.ref.(Date))
	case KindTime:
		return compareTime(a.ref.(Time), b.ref.(Time))
	case KindDateTime:
		x, y := a.ref.(DateTime), b.ref.(DateTime)
		if c := compareDate(x.Date, y.Date); c != 0 {
			return c
		}
		return compareTime(x.Time, y.Time)
	case KindTimestamp:
		x, y := a.ref.(Timestamp), b.ref.(Timestamp)
		if c := cmp.Compare(x.Seconds, y.Seconds); c != 0 {
			return c
		}
		return cmp.Compare(x.Nanos, y.Nanos)
	case KindPeriod:
		x, y := a.ref.(Period), b.ref.(Period)
		if c := cmp.Compare(x.Years, y.Years); c != 0 {
			return c
		}
		if c := cmp.Compare(x.Months, y.Months); c != 0 {
			return c
		}
		return cmp.Compare(x.Days, y.Days)
	case KindDuration:
		x, y := a.ref.(Duration), b.ref.(Duration)
		if c := cmp.Compare(x.Seconds, y.Seconds); c != 0 {
			return c
		}
		return cmp.Compare(x.Nanos, y.Nanos)
	case KindUUID:
		x, y := a.ref.(uuid.UUID), b.ref.(uuid.UUID)
		return bytes.Compare(x[:], y[:])
	case KindBitmask:
		x, y := a.ref.(BitArray), b.ref.(BitArray)
		if c := cmp.Compare(x.size, y.size); c != 0 {
			return c
		}
		return bytes.Compare(x.data, y.data)
	}
	return 0
}

func compareDate(x, y Date) int {
	if c := cmp.Compare(x.Year, y.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(x.Month, y.Month); c != 0 {
		return c
	}
	return cmp.Compare(x.Day, y.Day)
}

func compareTime(x, y Time) int {
	if c := cmp.Compare(x.Hour, y.Hour); c != 0 {
		return c
	}
	if c := cmp.Compare(x.Minute, y.Minute); c != 0 {
		return c
	}
	if c := cmp.Compare(x.Second, y.Second); c != 0 {
		return c
	}
	return cmp.Compare(x.Nano, y.Nano)
}
