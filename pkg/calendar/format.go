package calendar

import (
	"strings"

	"github.com/ajitpratap0/nebula-odbc/pkg/odbcerrors"
)

// Pattern selects one of the fixed text layouts.
type Pattern uint8

const (
	// PatternDate is YYYY-MM-DD.
	PatternDate Pattern = iota
	// PatternTime is HH:MM:SS.
	PatternTime
	// PatternTimestamp is YYYY-MM-DD HH:MM:SS.
	PatternTimestamp
)

// Len returns the rendered length of p for four-digit years.
func (p Pattern) Len() int {
	switch p {
	case PatternDate:
		return 10
	case PatternTime:
		return 8
	default:
		return 19
	}
}

// Append renders f with pattern p onto dst. Sub-second precision is never
// rendered.
func Append(dst []byte, f Fields, p Pattern) []byte {
	if p != PatternTime {
		year := f.Year
		if year < 0 {
			dst = append(dst, '-')
			year = -year
		}
		dst = appendPadded(dst, year, 4)
		dst = append(dst, '-')
		dst = appendPadded(dst, f.Month, 2)
		dst = append(dst, '-')
		dst = appendPadded(dst, f.Day, 2)
		if p == PatternDate {
			return dst
		}
		dst = append(dst, ' ')
	}
	dst = appendPadded(dst, f.Hour, 2)
	dst = append(dst, ':')
	dst = appendPadded(dst, f.Minute, 2)
	dst = append(dst, ':')
	return appendPadded(dst, f.Second, 2)
}

// Format renders f with pattern p.
func Format(f Fields, p Pattern) string {
	return string(Append(make([]byte, 0, p.Len()+1), f, p))
}

func appendPadded(dst []byte, n, width int) []byte {
	var digits [20]byte
	i := len(digits)
	for n >= 10 {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	i--
	digits[i] = byte('0' + n)
	for pad := width - (len(digits) - i); pad > 0; pad-- {
		dst = append(dst, '0')
	}
	return append(dst, digits[i:]...)
}

// ParseDate reads a YYYY-MM-DD prefix of s. Anything after the day is
// ignored, so timestamp text parses as its date.
func ParseDate(s string) (Fields, error) {
	sc := scanner{s: strings.TrimSpace(s)}
	f, ok := sc.date()
	if !ok || !f.Valid() {
		return Fields{}, parseError("date", s)
	}
	return f, nil
}

// ParseTime reads HH:MM:SS with an optional .fraction. Timestamp text parses
// as its time of day.
func ParseTime(s string) (Fields, error) {
	trimmed := strings.TrimSpace(s)
	if i := strings.LastIndexAny(trimmed, " T"); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	sc := scanner{s: trimmed}
	f := epoch
	if !sc.clock(&f) || !sc.done() || !f.Valid() {
		return Fields{}, parseError("time", s)
	}
	return f, nil
}

// ParseTimestamp reads YYYY-MM-DD with an optional HH:MM:SS[.fraction]
// separated by a space or 'T'.
func ParseTimestamp(s string) (Fields, error) {
	sc := scanner{s: strings.TrimSpace(s)}
	f, ok := sc.date()
	if ok && !sc.done() {
		ok = (sc.lit(' ') || sc.lit('T')) && sc.clock(&f) && sc.done()
	}
	if !ok || !f.Valid() {
		return Fields{}, parseError("timestamp", s)
	}
	return f, nil
}

func parseError(what, s string) error {
	return odbcerrors.Newf(odbcerrors.ErrorTypeValidation, "cannot parse %q as %s", s, what)
}

type scanner struct {
	s string
	i int
}

func (sc *scanner) done() bool { return sc.i == len(sc.s) }

func (sc *scanner) lit(c byte) bool {
	if sc.i < len(sc.s) && sc.s[sc.i] == c {
		sc.i++
		return true
	}
	return false
}

func (sc *scanner) int() (int, bool) {
	neg := sc.lit('-')
	if !neg {
		sc.lit('+')
	}
	start, n := sc.i, 0
	for sc.i < len(sc.s) && sc.s[sc.i] >= '0' && sc.s[sc.i] <= '9' && sc.i-start < 9 {
		n = n*10 + int(sc.s[sc.i]-'0')
		sc.i++
	}
	if sc.i == start {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

func (sc *scanner) date() (Fields, bool) {
	var f Fields
	var ok bool
	if f.Year, ok = sc.int(); !ok || !sc.lit('-') {
		return f, false
	}
	if f.Month, ok = sc.int(); !ok || !sc.lit('-') {
		return f, false
	}
	f.Day, ok = sc.int()
	return f, ok
}

func (sc *scanner) clock(f *Fields) bool {
	var ok bool
	if f.Hour, ok = sc.int(); !ok || !sc.lit(':') {
		return false
	}
	if f.Minute, ok = sc.int(); !ok || !sc.lit(':') {
		return false
	}
	if f.Second, ok = sc.int(); !ok {
		return false
	}
	if sc.lit('.') {
		scale, nanos, digits := 100_000_000, 0, 0
		for sc.i < len(sc.s) && sc.s[sc.i] >= '0' && sc.s[sc.i] <= '9' {
			if digits < 9 {
				nanos += int(sc.s[sc.i]-'0') * scale
				scale /= 10
			}
			digits++
			sc.i++
		}
		if digits == 0 {
			return false
		}
		f.Nanosecond = nanos
	}
	return true
}
