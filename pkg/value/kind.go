package value

import "strings"

// Kind identifies the active variant of a Value.
type Kind uint8

// Kinds in tag order. Ordering between values of different kinds follows
// this order.
const (
	KindNull Kind = iota
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindDecimal
	KindDate
	KindTime
	KindDateTime
	KindTimestamp
	KindUUID
	KindBitmask
	KindString
	KindBytes
	KindPeriod
	KindDuration
	KindBigInteger
)

var kindNames = [...]string{
	KindNull:       "null",
	KindBool:       "bool",
	KindInt8:       "int8",
	KindInt16:      "int16",
	KindInt32:      "int32",
	KindInt64:      "int64",
	KindFloat32:    "float32",
	KindFloat64:    "float64",
	KindDecimal:    "decimal",
	KindDate:       "date",
	KindTime:       "time",
	KindDateTime:   "datetime",
	KindTimestamp:  "timestamp",
	KindUUID:       "uuid",
	KindBitmask:    "bitmask",
	KindString:     "string",
	KindBytes:      "bytes",
	KindPeriod:     "period",
	KindDuration:   "duration",
	KindBigInteger: "biginteger",
}

// Kinds returns every kind in tag order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames))
	for k := range kindNames {
		out = append(out, Kind(k))
	}
	return out
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// KindFromName resolves a kind by its lowercase name.
func KindFromName(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return KindNull, false
}
