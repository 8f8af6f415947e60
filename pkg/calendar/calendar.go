// Package calendar converts between the temporal value kinds and broken-down
// calendar fields, and renders and parses the three fixed text patterns used
// by string buffers.
//
// All instants are interpreted in UTC.
package calendar

import (
	"time"

	"github.com/ajitpratap0/nebula-odbc/pkg/value"
)

// Fields is a broken-down calendar date and time of day.
type Fields struct {
	Year       int
	Month      int
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// epoch is the date assigned to time-of-day values that need a full instant.
var epoch = Fields{Year: 1970, Month: 1, Day: 1}

// FromDate returns the fields of d with a midnight time of day.
func FromDate(d value.Date) Fields {
	return Fields{Year: int(d.Year), Month: int(d.Month), Day: int(d.Day)}
}

// FromTime returns the fields of t on the epoch date.
func FromTime(t value.Time) Fields {
	f := epoch
	f.Hour, f.Minute, f.Second, f.Nanosecond = int(t.Hour), int(t.Minute), int(t.Second), int(t.Nano)
	return f
}

// FromDateTime returns the fields of dt.
func FromDateTime(dt value.DateTime) Fields {
	f := FromDate(dt.Date)
	t := FromTime(dt.Time)
	f.Hour, f.Minute, f.Second, f.Nanosecond = t.Hour, t.Minute, t.Second, t.Nanosecond
	return f
}

// FromTimestamp returns the UTC fields of ts.
func FromTimestamp(ts value.Timestamp) Fields {
	return fromGoTime(time.Unix(ts.Seconds, int64(ts.Nanos)).UTC())
}

// FromMillis returns the UTC fields of an instant given in milliseconds since
// the Unix epoch.
func FromMillis(ms int64) Fields {
	return fromGoTime(time.UnixMilli(ms).UTC())
}

// FromValue returns the fields of a temporal value. ok is false for other
// kinds.
func FromValue(v value.Value) (f Fields, ok bool) {
	switch v.Kind() {
	case value.KindDate:
		return FromDate(value.MustGet[value.Date](v)), true
	case value.KindTime:
		return FromTime(value.MustGet[value.Time](v)), true
	case value.KindDateTime:
		return FromDateTime(value.MustGet[value.DateTime](v)), true
	case value.KindTimestamp:
		return FromTimestamp(value.MustGet[value.Timestamp](v)), true
	}
	return Fields{}, false
}

func fromGoTime(t time.Time) Fields {
	return Fields{
		Year:       t.Year(),
		Month:      int(t.Month()),
		Day:        t.Day(),
		Hour:       t.Hour(),
		Minute:     t.Minute(),
		Second:     t.Second(),
		Nanosecond: t.Nanosecond(),
	}
}

// GoTime returns f as a UTC time.Time. Out-of-range fields are normalized.
func (f Fields) GoTime() time.Time {
	return time.Date(f.Year, time.Month(f.Month), f.Day, f.Hour, f.Minute, f.Second, f.Nanosecond, time.UTC)
}

// Date returns the date part of f.
func (f Fields) Date() value.Date {
	return value.Date{Year: int32(f.Year), Month: uint8(f.Month), Day: uint8(f.Day)}
}

// Time returns the time-of-day part of f.
func (f Fields) Time() value.Time {
	return value.Time{Hour: uint8(f.Hour), Minute: uint8(f.Minute), Second: uint8(f.Second), Nano: int32(f.Nanosecond)}
}

// DateTime returns f as a local date-time.
func (f Fields) DateTime() value.DateTime {
	return value.DateTime{Date: f.Date(), Time: f.Time()}
}

// Timestamp returns f as a UTC instant.
func (f Fields) Timestamp() value.Timestamp {
	t := f.GoTime()
	return value.Timestamp{Seconds: t.Unix(), Nanos: int32(t.Nanosecond())}
}

// Millis returns f as milliseconds since the Unix epoch.
func (f Fields) Millis() int64 {
	return f.GoTime().UnixMilli()
}

// Valid reports whether every field is inside its calendar range.
func (f Fields) Valid() bool {
	if f.Month < 1 || f.Month > 12 || f.Day < 1 {
		return false
	}
	last := time.Date(f.Year, time.Month(f.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return f.Day <= last &&
		f.Hour >= 0 && f.Hour < 24 &&
		f.Minute >= 0 && f.Minute < 60 &&
		f.Second >= 0 && f.Second < 60 &&
		f.Nanosecond >= 0 && f.Nanosecond < 1_000_000_000
}
