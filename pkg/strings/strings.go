// Package strings provides pooled string building and zero-copy helpers used
// when rendering values as text.
package strings

import (
	"fmt"
	"unsafe"

	"github.com/ajitpratap0/nebula-odbc/pkg/pool"
)

const hexDigits = "0123456789abcdef"

// BytesToString converts byte slice to string without allocation
// WARNING: The returned string shares memory with the byte slice.
// Do not modify the byte slice after calling this function.
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// StringToBytes converts string to byte slice without allocation
// WARNING: The returned byte slice shares memory with the string.
// Do not modify the returned slice.
func StringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Builder accumulates text in a reusable byte slice.
type Builder struct {
	buf []byte
}

// NewBuilder creates a new string builder
func NewBuilder(capacity int) *Builder {
	return &Builder{buf: make([]byte, 0, capacity)}
}

// WriteString appends a string to the builder
func (b *Builder) WriteString(s string) {
	b.buf = append(b.buf, s...)
}

// WriteByte appends a single byte
func (b *Builder) WriteByte(c byte) error {
	b.buf = append(b.buf, c)
	return nil
}

// Write implements io.Writer
func (b *Builder) Write(p []byte) (n int, err error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// WriteHex appends data as lowercase two-digit hexadecimal pairs.
func (b *Builder) WriteHex(data []byte) {
	b.buf = AppendHex(b.buf, data)
}

// String returns the built string using zero-copy conversion. The result is
// only valid until the builder is reset.
func (b *Builder) String() string {
	return BytesToString(b.buf)
}

// Bytes returns the underlying byte slice
func (b *Builder) Bytes() []byte {
	return b.buf
}

// Len returns the length of the built string
func (b *Builder) Len() int {
	return len(b.buf)
}

// Reset resets the builder for reuse
func (b *Builder) Reset() {
	b.buf = b.buf[:0]
}

var builderPool = pool.New(
	func() *Builder { return NewBuilder(64) },
	func(b *Builder) { b.Reset() },
)

// GetBuilder retrieves an empty builder from the global pool.
func GetBuilder() *Builder {
	return builderPool.Get()
}

// PutBuilder returns a builder to the global pool.
func PutBuilder(b *Builder) {
	if b == nil {
		return
	}
	builderPool.Put(b)
}

// Clone creates a copy of a string that owns its memory.
func Clone(s string) string {
	if len(s) == 0 {
		return ""
	}
	b := make([]byte, len(s))
	copy(b, s)
	return BytesToString(b)
}

// Concat concatenates strings using a pooled builder.
func Concat(parts ...string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}

	b := GetBuilder()
	defer PutBuilder(b)
	for _, s := range parts {
		b.WriteString(s)
	}
	return Clone(b.String())
}

// Sprintf is a pooled alternative to fmt.Sprintf.
func Sprintf(format string, args ...interface{}) string {
	if len(args) == 0 {
		return format
	}

	b := GetBuilder()
	defer PutBuilder(b)
	fmt.Fprintf(b, format, args...)
	return Clone(b.String())
}

// AppendHex appends data to dst as lowercase hexadecimal pairs.
func AppendHex(dst, data []byte) []byte {
	for _, c := range data {
		dst = append(dst, hexDigits[c>>4], hexDigits[c&0x0f])
	}
	return dst
}

// Hex renders data as lowercase hexadecimal pairs.
func Hex(data []byte) string {
	b := GetBuilder()
	defer PutBuilder(b)
	b.WriteHex(data)
	return Clone(b.String())
}
