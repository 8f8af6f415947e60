package appbuf

// NativeType is the caller-declared layout of an application buffer.
type NativeType uint8

const (
	Unsupported NativeType = iota
	SignedTinyint
	Bit
	UnsignedTinyint
	SignedShort
	UnsignedShort
	SignedLong
	UnsignedLong
	SignedBigint
	UnsignedBigint
	Float
	Double
	Char
	WChar
	Numeric
	Binary
	Default
	TDate
	TTime
	TTimestamp
	GUID
)

// Fixed struct and scalar widths in bytes.
const (
	dateSize      = 6
	timeSize      = 6
	timestampSize = 16
	numericSize   = 19
	guidSize      = 16

	// IndicatorSize is the width of one indicator slot.
	IndicatorSize = 8
)

var nativeTypeNames = [...]string{
	Unsupported:     "unsupported",
	SignedTinyint:   "stinyint",
	Bit:             "bit",
	UnsignedTinyint: "utinyint",
	SignedShort:     "sshort",
	UnsignedShort:   "ushort",
	SignedLong:      "slong",
	UnsignedLong:    "ulong",
	SignedBigint:    "sbigint",
	UnsignedBigint:  "ubigint",
	Float:           "float",
	Double:          "double",
	Char:            "char",
	WChar:           "wchar",
	Numeric:         "numeric",
	Binary:          "binary",
	Default:         "default",
	TDate:           "date",
	TTime:           "time",
	TTimestamp:      "timestamp",
	GUID:            "guid",
}

func (t NativeType) String() string {
	if int(t) < len(nativeTypeNames) {
		return nativeTypeNames[t]
	}
	return nativeTypeNames[Unsupported]
}

// NativeTypes returns every supported tag, excluding Unsupported.
func NativeTypes() []NativeType {
	out := make([]NativeType, 0, len(nativeTypeNames)-1)
	for t := SignedTinyint; t <= GUID; t++ {
		out = append(out, t)
	}
	return out
}

// ParseNativeType resolves a tag by its String name.
func ParseNativeType(name string) (NativeType, bool) {
	for t, n := range nativeTypeNames {
		if n == name && NativeType(t) != Unsupported {
			return NativeType(t), true
		}
	}
	return Unsupported, false
}

// FixedWidth returns the byte width of fixed-size layouts. ok is false for
// variable-length and passthrough layouts.
func (t NativeType) FixedWidth() (width int, ok bool) {
	switch t {
	case SignedTinyint, Bit, UnsignedTinyint:
		return 1, true
	case SignedShort, UnsignedShort:
		return 2, true
	case SignedLong, UnsignedLong, Float:
		return 4, true
	case SignedBigint, UnsignedBigint, Double:
		return 8, true
	case TDate:
		return dateSize, true
	case TTime:
		return timeSize, true
	case TTimestamp:
		return timestampSize, true
	case Numeric:
		return numericSize, true
	case GUID:
		return guidSize, true
	}
	return 0, false
}

// IsText reports whether t is a narrow or wide character layout.
func (t NativeType) IsText() bool {
	return t == Char || t == WChar
}

func (t NativeType) isInteger() bool {
	return t >= SignedTinyint && t <= UnsignedBigint
}

func (t NativeType) isNumber() bool {
	return t >= SignedTinyint && t <= Double
}

// ODBC C data type identifiers.
const (
	cChar          int16 = 1
	cWChar         int16 = -8
	cShort         int16 = 5
	cSShort        int16 = -15
	cUShort        int16 = -17
	cLong          int16 = 4
	cSLong         int16 = -16
	cULong         int16 = -18
	cFloat         int16 = 7
	cDouble        int16 = 8
	cBit           int16 = -7
	cTinyint       int16 = -6
	cSTinyint      int16 = -26
	cUTinyint      int16 = -28
	cSBigint       int16 = -25
	cUBigint       int16 = -27
	cBinary        int16 = -2
	cDate          int16 = 9
	cTime          int16 = 10
	cTimestamp     int16 = 11
	cTypeDate      int16 = 91
	cTypeTime      int16 = 92
	cTypeTimestamp int16 = 93
	cNumeric       int16 = 2
	cGUID          int16 = -11
	cDefault       int16 = 99
)

// NativeTypeFromC maps an ODBC SQL_C_* identifier to a native type tag.
// Unknown identifiers map to Unsupported.
func NativeTypeFromC(id int16) NativeType {
	switch id {
	case cChar:
		return Char
	case cWChar:
		return WChar
	case cSShort, cShort:
		return SignedShort
	case cUShort:
		return UnsignedShort
	case cSLong, cLong:
		return SignedLong
	case cULong:
		return UnsignedLong
	case cFloat:
		return Float
	case cDouble:
		return Double
	case cBit:
		return Bit
	case cSTinyint, cTinyint:
		return SignedTinyint
	case cUTinyint:
		return UnsignedTinyint
	case cSBigint:
		return SignedBigint
	case cUBigint:
		return UnsignedBigint
	case cBinary:
		return Binary
	case cDate, cTypeDate:
		return TDate
	case cTime, cTypeTime:
		return TTime
	case cTimestamp, cTypeTimestamp:
		return TTimestamp
	case cNumeric:
		return Numeric
	case cGUID:
		return GUID
	case cDefault:
		return Default
	}
	return Unsupported
}
