// Package textconv transcodes between Go strings and the narrow and wide
// character buffers of the host API. Narrow text is stored as its bytes;
// wide text is UTF-16 little-endian with two-byte units.
package textconv

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	stringpool "github.com/ajitpratap0/nebula-odbc/pkg/strings"
)

// Unit sizes in bytes.
const (
	NarrowCharSize = 1
	WideCharSize   = 2
)

var wide = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Encoding returns the x/text encoding for wide buffers.
func Encoding() encoding.Encoding {
	return wide
}

// CharSize returns the unit size for a narrow or wide buffer.
func CharSize(isWide bool) int {
	if isWide {
		return WideCharSize
	}
	return NarrowCharSize
}

// Units encodes s into buffer units: its bytes for narrow buffers, UTF-16LE
// for wide ones. The result length is always a multiple of the unit size.
func Units(s string, isWide bool) ([]byte, error) {
	return AppendUnits(nil, s, isWide)
}

// AppendUnits appends the buffer units of s to dst.
func AppendUnits(dst []byte, s string, isWide bool) ([]byte, error) {
	if !isWide {
		return append(dst, s...), nil
	}
	out, _, err := transform.Append(wide.NewEncoder(), dst, stringpool.StringToBytes(s))
	if err != nil {
		return dst, err
	}
	return out, nil
}

// String decodes buffer units into a Go string. A trailing odd byte of a
// wide buffer is ignored.
func String(b []byte, isWide bool) (string, error) {
	if !isWide {
		return string(b), nil
	}
	b = b[:len(b)&^1]
	out, err := wide.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Terminated returns the prefix of b before the first terminator unit. The
// whole slice is returned when no terminator is present.
func Terminated(b []byte, isWide bool) []byte {
	if !isWide {
		if i := bytes.IndexByte(b, 0); i >= 0 {
			return b[:i]
		}
		return b
	}
	for i := 0; i+1 < len(b); i += WideCharSize {
		if b[i] == 0 && b[i+1] == 0 {
			return b[:i]
		}
	}
	return b[:len(b)&^1]
}
