package diagnostic

// Field selects one header or record field for GetField.
type Field uint8

const (
	FieldUndefined Field = iota

	// Header fields.
	HeaderCursorRowCount
	HeaderDynamicFunction
	HeaderDynamicFunctionCode
	HeaderNumber
	HeaderReturnCode
	HeaderRowCount

	// Record fields.
	StatusClassOrigin
	StatusColumnNumber
	StatusConnectionName
	StatusMessageText
	StatusNative
	StatusRowNumber
	StatusServerName
	StatusSQLState
	StatusSubclassOrigin
)

// SQL_DIAG_* identifiers of the host API.
const (
	diagReturnCode          int16 = 1
	diagNumber              int16 = 2
	diagRowCount            int16 = 3
	diagSQLState            int16 = 4
	diagNative              int16 = 5
	diagMessageText         int16 = 6
	diagDynamicFunction     int16 = 7
	diagClassOrigin         int16 = 8
	diagSubclassOrigin      int16 = 9
	diagConnectionName      int16 = 10
	diagServerName          int16 = 11
	diagDynamicFunctionCode int16 = 12
	diagCursorRowCount      int16 = -1249
	diagRowNumber           int16 = -1248
	diagColumnNumber        int16 = -1247
)

var fieldsByID = map[int16]Field{
	diagReturnCode:          HeaderReturnCode,
	diagNumber:              HeaderNumber,
	diagRowCount:            HeaderRowCount,
	diagSQLState:            StatusSQLState,
	diagNative:              StatusNative,
	diagMessageText:         StatusMessageText,
	diagDynamicFunction:     HeaderDynamicFunction,
	diagClassOrigin:         StatusClassOrigin,
	diagSubclassOrigin:      StatusSubclassOrigin,
	diagConnectionName:      StatusConnectionName,
	diagServerName:          StatusServerName,
	diagDynamicFunctionCode: HeaderDynamicFunctionCode,
	diagCursorRowCount:      HeaderCursorRowCount,
	diagRowNumber:           StatusRowNumber,
	diagColumnNumber:        StatusColumnNumber,
}

// FieldFromODBC maps a SQL_DIAG_* identifier to a Field. Unknown
// identifiers map to FieldUndefined.
func FieldFromODBC(id int16) Field {
	return fieldsByID[id]
}

// IsHeader reports whether f is answered by the header and needs no record.
func (f Field) IsHeader() bool {
	return f >= HeaderCursorRowCount && f <= HeaderRowCount
}
