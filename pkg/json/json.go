// Package json wraps goccy/go-json for the CLI and diagnostic dumps.
package json

import (
	"bytes"
	"io"

	gojson "github.com/goccy/go-json"

	"github.com/ajitpratap0/nebula-odbc/pkg/pool"
)

// maxPooledBuffer bounds the buffers kept for reuse.
const maxPooledBuffer = 1024 * 1024

var bufferPool = pool.New(
	func() *bytes.Buffer { return bytes.NewBuffer(make([]byte, 0, 4096)) },
	func(b *bytes.Buffer) { b.Reset() },
)

// GetBuffer gets an empty pooled buffer.
func GetBuffer() *bytes.Buffer {
	return bufferPool.Get()
}

// PutBuffer returns a buffer to the pool. Very large buffers are dropped.
func PutBuffer(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxPooledBuffer {
		return
	}
	bufferPool.Put(buf)
}

// Marshal is a drop-in replacement for encoding/json.Marshal.
func Marshal(v interface{}) ([]byte, error) {
	return gojson.Marshal(v)
}

// Unmarshal is a drop-in replacement for encoding/json.Unmarshal.
func Unmarshal(data []byte, v interface{}) error {
	return gojson.Unmarshal(data, v)
}

// MarshalIndent is a drop-in replacement for encoding/json.MarshalIndent.
func MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	return gojson.MarshalIndent(v, prefix, indent)
}

// NewEncoder returns an encoder that leaves HTML characters unescaped, so
// dumped text values read as they were stored.
func NewEncoder(w io.Writer) *gojson.Encoder {
	enc := gojson.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc
}

// MarshalToWriter encodes v to w through a pooled buffer, so a failed
// encoding writes nothing. indent, when non-empty, pretty-prints.
func MarshalToWriter(w io.Writer, v interface{}, indent string) error {
	buf := GetBuffer()
	defer PutBuffer(buf)

	enc := NewEncoder(buf)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// StreamingEncoder writes a sequence of values either as one JSON array or
// as newline-delimited JSON.
type StreamingEncoder struct {
	writer  io.Writer
	encoder *gojson.Encoder
	first   bool
	isArray bool
	err     error
}

// NewStreamingEncoder starts a stream on w. An array stream writes the
// opening bracket immediately.
func NewStreamingEncoder(w io.Writer, isArray bool) *StreamingEncoder {
	se := &StreamingEncoder{
		writer:  w,
		encoder: NewEncoder(w),
		first:   true,
		isArray: isArray,
	}
	if isArray {
		se.write([]byte{'['})
	}
	return se
}

func (se *StreamingEncoder) write(p []byte) {
	if se.err == nil {
		_, se.err = se.writer.Write(p)
	}
}

// Encode writes one value.
func (se *StreamingEncoder) Encode(v interface{}) error {
	if se.isArray && !se.first {
		se.write([]byte{','})
	}
	se.first = false
	if se.err != nil {
		return se.err
	}
	se.err = se.encoder.Encode(v)
	return se.err
}

// Close ends the stream and returns the first error seen.
func (se *StreamingEncoder) Close() error {
	if se.isArray {
		se.write([]byte{']', '\n'})
	}
	return se.err
}
