package diagnostic

// SQLState is a five-character status code: a two-character class followed
// by a three-character subclass.
type SQLState string

const (
	StateDataTruncated          SQLState = "01004"
	StateOptionValueChanged     SQLState = "01S02"
	StateFractionalTruncation   SQLState = "01S07"
	StateRestrictedDataType     SQLState = "07006"
	StateInvalidDescriptorIndex SQLState = "07009"
	StateIndicatorRequired      SQLState = "22002"
	StateNumericOutOfRange      SQLState = "22003"
	StateInvalidDatetimeFormat  SQLState = "22007"
	StateInvalidCharacterValue  SQLState = "22018"
	StateInvalidCursorState     SQLState = "24000"
	StateGeneralError           SQLState = "HY000"
	StateMemoryAllocation       SQLState = "HY001"
	StateSequenceError          SQLState = "HY010"
	StateOptionalFeature        SQLState = "HYC00"
	StateFunctionNotSupported   SQLState = "IM001"
)

// Origin strings reported for the class and subclass of a state.
const (
	OriginISO  = "ISO 9075"
	OriginODBC = "ODBC 3.0"
)

// odbcSubclasses are the states whose subclass is defined by ODBC rather
// than by the SQL standard.
var odbcSubclasses = map[SQLState]struct{}{
	"01S00": {}, "01S01": {}, "01S02": {}, "01S06": {}, "01S07": {},
	"07S01": {}, "08S01": {},
	"21S01": {}, "21S02": {},
	"25S01": {}, "25S02": {}, "25S03": {},
	"42S01": {}, "42S02": {}, "42S11": {}, "42S12": {}, "42S21": {}, "42S22": {},
	"HY095": {}, "HY097": {}, "HY098": {}, "HY099": {}, "HY100": {}, "HY101": {},
	"HY105": {}, "HY107": {}, "HY109": {}, "HY110": {}, "HY111": {},
	"HYT00": {}, "HYT01": {},
	"IM001": {}, "IM002": {}, "IM003": {}, "IM004": {}, "IM005": {}, "IM006": {},
	"IM007": {}, "IM008": {}, "IM010": {}, "IM011": {}, "IM012": {},
}

// Class returns the two-character class of s.
func (s SQLState) Class() string {
	if len(s) < 2 {
		return string(s)
	}
	return string(s[:2])
}

// ClassOrigin names the document that defines the class of s.
func (s SQLState) ClassOrigin() string {
	if s.Class() == "IM" {
		return OriginODBC
	}
	return OriginISO
}

// SubclassOrigin names the document that defines the subclass of s.
func (s SQLState) SubclassOrigin() string {
	if _, ok := odbcSubclasses[s]; ok {
		return OriginODBC
	}
	return OriginISO
}

// Severity classifies s as "warning" (class 01), "no_data" (class 02) or
// "error".
func (s SQLState) Severity() string {
	switch s.Class() {
	case "01":
		return "warning"
	case "02":
		return "no_data"
	}
	return "error"
}
