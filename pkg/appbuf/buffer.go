// Package appbuf is the conversion engine between typed values and
// application-owned buffers laid out in the host API's native formats.
//
// A Buffer describes borrowed memory: a native type tag, a data region with
// a declared per-element capacity, an optional indicator region of 8-byte
// little-endian slots, and two addressing offsets. The effective addresses
// are
//
//	data:      byteOffset + elementOffset*ElementSize()
//	indicator: byteOffset + elementOffset*IndicatorSize
//
// so one Buffer can walk the rows of a bound array. Every read and write is
// checked against both the declared capacity and the real slice length.
//
// Put methods deliver values into the buffer and Get methods read bound
// parameters out of it. Every call returns an Outcome; nothing panics and
// nothing is retained after the call returns.
package appbuf

import (
	"encoding/binary"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ajitpratap0/nebula-odbc/pkg/logger"
	"github.com/ajitpratap0/nebula-odbc/pkg/metrics"
)

// Indicator sentinels.
const (
	NullData            int64 = -1
	DataAtExec          int64 = -2
	NTS                 int64 = -3
	LenDataAtExecOffset int64 = -100
)

// LenDataAtExec encodes a deferred length of n bytes as an indicator value.
func LenDataAtExec(n int64) int64 {
	return LenDataAtExecOffset - n
}

var defaultNarrowing atomic.Uint32

// SetDefaultNarrowing sets the narrowing policy of buffers created without
// WithNarrowing.
func SetDefaultNarrowing(p Narrowing) {
	defaultNarrowing.Store(uint32(p))
}

// DefaultNarrowing returns the policy used by new buffers.
func DefaultNarrowing() Narrowing {
	return Narrowing(defaultNarrowing.Load())
}

// Buffer is a descriptor over caller-owned memory.
type Buffer struct {
	typ           NativeType
	data          []byte
	capacity      int
	indicator     []byte
	byteOffset    int
	elementOffset int
	narrowing     Narrowing
}

// Option configures a Buffer.
type Option func(*Buffer)

// WithNarrowing selects the integer narrowing policy.
func WithNarrowing(p Narrowing) Option {
	return func(b *Buffer) { b.narrowing = p }
}

// WithByteOffset sets the byte offset applied to both regions.
func WithByteOffset(off int) Option {
	return func(b *Buffer) { b.byteOffset = off }
}

// WithElementOffset sets the element index.
func WithElementOffset(idx int) Option {
	return func(b *Buffer) { b.elementOffset = idx }
}

// New describes data as a buffer of type typ with capacity bytes per
// element. A nil data means no data pointer; a nil indicator means no
// indicator slot.
func New(typ NativeType, data []byte, capacity int, indicator []byte, opts ...Option) *Buffer {
	b := &Buffer{
		typ:       typ,
		data:      data,
		capacity:  capacity,
		indicator: indicator,
		narrowing: DefaultNarrowing(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Type returns the native type tag.
func (b *Buffer) Type() NativeType { return b.typ }

// Capacity returns the declared per-element capacity in bytes.
func (b *Buffer) Capacity() int { return b.capacity }

// Narrowing returns the integer narrowing policy.
func (b *Buffer) Narrowing() Narrowing { return b.narrowing }

// SetByteOffset changes the byte offset.
func (b *Buffer) SetByteOffset(off int) { b.byteOffset = off }

// SetElementOffset changes the element index.
func (b *Buffer) SetElementOffset(idx int) { b.elementOffset = idx }

// ElementSize returns the stride between array elements: the declared
// capacity for variable-length layouts, the fixed width otherwise, and zero
// for passthrough layouts.
func (b *Buffer) ElementSize() int {
	if b.typ == Char || b.typ == WChar || b.typ == Binary {
		return b.capacity
	}
	w, _ := b.typ.FixedWidth()
	return w
}

// DataOffset returns the resolved byte offset of the current element.
func (b *Buffer) DataOffset() int {
	return b.byteOffset + b.elementOffset*b.ElementSize()
}

// IndicatorOffset returns the resolved byte offset of the current
// indicator slot.
func (b *Buffer) IndicatorOffset() int {
	return b.byteOffset + b.elementOffset*IndicatorSize
}

// HasData reports whether the current element has addressable data.
func (b *Buffer) HasData() bool {
	off := b.DataOffset()
	return b.data != nil && off >= 0 && off <= len(b.data)
}

// HasIndicator reports whether the current indicator slot is addressable.
func (b *Buffer) HasIndicator() bool {
	return b.indicatorSlot() != nil
}

// room returns the writable bytes of the current element: the declared
// capacity clamped to the real slice.
func (b *Buffer) room() []byte {
	if !b.HasData() {
		return nil
	}
	off := b.DataOffset()
	n := min(max(b.capacity, 0), len(b.data)-off)
	return b.data[off : off+n]
}

// view returns up to width readable bytes of the current element,
// zero-extended to width.
func (b *Buffer) view(dst []byte, width int) []byte {
	dst = dst[:width]
	clear(dst)
	if b.HasData() {
		copy(dst, b.data[b.DataOffset():])
	}
	return dst
}

func (b *Buffer) indicatorSlot() []byte {
	if b.indicator == nil {
		return nil
	}
	off := b.IndicatorOffset()
	if off < 0 || off > len(b.indicator)-IndicatorSize {
		return nil
	}
	return b.indicator[off : off+IndicatorSize]
}

// Indicator returns the current indicator value. ok is false without an
// indicator slot.
func (b *Buffer) Indicator() (v int64, ok bool) {
	slot := b.indicatorSlot()
	if slot == nil {
		return 0, false
	}
	return int64(binary.LittleEndian.Uint64(slot)), true
}

// SetIndicator stores v in the current indicator slot, if there is one.
func (b *Buffer) SetIndicator(v int64) {
	if slot := b.indicatorSlot(); slot != nil {
		binary.LittleEndian.PutUint64(slot, uint64(v))
	}
}

// IsNullData reports whether the indicator carries the null sentinel.
func (b *Buffer) IsNullData() bool {
	v, ok := b.Indicator()
	return ok && v == NullData
}

// IsDataAtExec reports whether the indicator marks data supplied later.
func (b *Buffer) IsDataAtExec() bool {
	v, ok := b.Indicator()
	return ok && (v == DataAtExec || v <= LenDataAtExecOffset)
}

// DataAtExecSize returns the total byte size expected for deferred data:
// the fixed width for fixed layouts, or the length decoded from the
// indicator for character and binary layouts. Wide lengths are in
// characters and doubled.
func (b *Buffer) DataAtExecSize() int64 {
	switch b.typ {
	case Char, WChar, Binary:
		v, ok := b.Indicator()
		if !ok || v > LenDataAtExecOffset {
			return 0
		}
		n := LenDataAtExecOffset - v
		if b.typ == WChar {
			n *= 2
		}
		return n
	}
	w, _ := b.typ.FixedWidth()
	return int64(w)
}

// InputSize returns the length of bound input: the indicator value, NTS
// without an indicator, or the deferred size for at-execution data.
func (b *Buffer) InputSize() int64 {
	if b.IsDataAtExec() {
		return b.DataAtExecSize()
	}
	if v, ok := b.Indicator(); ok {
		return v
	}
	return NTS
}

// trace counts a finished conversion and logs it at debug level.
func (b *Buffer) trace(op string, out Outcome) Outcome {
	metrics.RecordOutcome(b.typ.String(), out.String())
	if ce := logger.Get().Check(zapcore.DebugLevel, "appbuf conversion"); ce != nil {
		ce.Write(
			zap.String("op", op),
			zap.Stringer("native_type", b.typ),
			zap.Stringer("outcome", out),
			zap.Int("data_offset", b.DataOffset()),
		)
	}
	return out
}
