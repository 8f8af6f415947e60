package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/nebula-odbc/pkg/value"
)

func TestFromValue(t *testing.T) {
	tests := []struct {
		name string
		v    value.Value
		want Fields
	}{
		{
			name: "date",
			v:    value.DateOf(value.Date{Year: 2024, Month: 1, Day: 15}),
			want: Fields{Year: 2024, Month: 1, Day: 15},
		},
		{
			name: "time on epoch",
			v:    value.TimeOf(value.Time{Hour: 10, Minute: 30, Second: 5, Nano: 7}),
			want: Fields{Year: 1970, Month: 1, Day: 1, Hour: 10, Minute: 30, Second: 5, Nanosecond: 7},
		},
		{
			name: "datetime",
			v: value.DateTimeOf(value.DateTime{
				Date: value.Date{Year: 1999, Month: 12, Day: 31},
				Time: value.Time{Hour: 23, Minute: 59, Second: 59},
			}),
			want: Fields{Year: 1999, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59},
		},
		{
			name: "timestamp",
			v:    value.TimestampOf(value.Timestamp{Seconds: 1705314600, Nanos: 123}),
			want: Fields{Year: 2024, Month: 1, Day: 15, Hour: 10, Minute: 30, Nanosecond: 123},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromValue(tt.v)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := FromValue(value.Int32(1))
	assert.False(t, ok)
}

func TestMillisRoundTrip(t *testing.T) {
	f := FromMillis(1705314600123)
	assert.Equal(t, Fields{Year: 2024, Month: 1, Day: 15, Hour: 10, Minute: 30, Nanosecond: 123_000_000}, f)
	assert.Equal(t, int64(1705314600123), f.Millis())

	assert.Equal(t, Fields{Year: 1970, Month: 1, Day: 1}, FromMillis(0))
	assert.Equal(t, value.Timestamp{Seconds: 1705314600, Nanos: 123_000_000}, f.Timestamp())
}

func TestFieldConversions(t *testing.T) {
	f := Fields{Year: 2024, Month: 2, Day: 29, Hour: 1, Minute: 2, Second: 3, Nanosecond: 4}
	assert.Equal(t, value.Date{Year: 2024, Month: 2, Day: 29}, f.Date())
	assert.Equal(t, value.Time{Hour: 1, Minute: 2, Second: 3, Nano: 4}, f.Time())
	assert.Equal(t, FromDateTime(f.DateTime()), f)
	assert.True(t, f.Valid())

	f.Year = 2023
	assert.False(t, f.Valid())
}

func TestFormat(t *testing.T) {
	f := Fields{Year: 2024, Month: 1, Day: 15, Hour: 9, Minute: 5, Second: 7, Nanosecond: 999}
	assert.Equal(t, "2024-01-15", Format(f, PatternDate))
	assert.Equal(t, "09:05:07", Format(f, PatternTime))
	assert.Equal(t, "2024-01-15 09:05:07", Format(f, PatternTimestamp))

	early := Fields{Year: 7, Month: 3, Day: 4}
	assert.Equal(t, "0007-03-04", Format(early, PatternDate))

	for _, p := range []Pattern{PatternDate, PatternTime, PatternTimestamp} {
		assert.Len(t, Format(f, p), p.Len())
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		parse   func(string) (Fields, error)
		in      string
		want    Fields
		wantErr bool
	}{
		{"date", ParseDate, "2024-01-15", Fields{Year: 2024, Month: 1, Day: 15}, false},
		{"date from timestamp text", ParseDate, "2024-01-15 10:00:00", Fields{Year: 2024, Month: 1, Day: 15}, false},
		{"date padded", ParseDate, "  2024-1-5 ", Fields{Year: 2024, Month: 1, Day: 5}, false},
		{"date bad month", ParseDate, "2024-13-01", Fields{}, true},
		{"date garbage", ParseDate, "yesterday", Fields{}, true},
		{"time", ParseTime, "10:30:05", Fields{Year: 1970, Month: 1, Day: 1, Hour: 10, Minute: 30, Second: 5}, false},
		{"time fraction", ParseTime, "10:30:05.25", Fields{Year: 1970, Month: 1, Day: 1, Hour: 10, Minute: 30, Second: 5, Nanosecond: 250_000_000}, false},
		{"time from timestamp text", ParseTime, "2024-01-15 10:30:05", Fields{Year: 1970, Month: 1, Day: 1, Hour: 10, Minute: 30, Second: 5}, false},
		{"time out of range", ParseTime, "25:00:00", Fields{}, true},
		{"time trailing junk", ParseTime, "10:30:05pm", Fields{}, true},
		{"timestamp", ParseTimestamp, "2024-01-15 10:30:05", Fields{Year: 2024, Month: 1, Day: 15, Hour: 10, Minute: 30, Second: 5}, false},
		{"timestamp iso", ParseTimestamp, "2024-01-15T10:30:05.123456789", Fields{Year: 2024, Month: 1, Day: 15, Hour: 10, Minute: 30, Second: 5, Nanosecond: 123456789}, false},
		{"timestamp date only", ParseTimestamp, "2024-01-15", Fields{Year: 2024, Month: 1, Day: 15}, false},
		{"timestamp extra fraction digits", ParseTimestamp, "2024-01-15 10:30:05.1234567891", Fields{Year: 2024, Month: 1, Day: 15, Hour: 10, Minute: 30, Second: 5, Nanosecond: 123456789}, false},
		{"timestamp empty fraction", ParseTimestamp, "2024-01-15 10:30:05.", Fields{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.parse(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
