package appbuf

import (
	"encoding/binary"

	"github.com/google/uuid"

	"github.com/ajitpratap0/nebula-odbc/pkg/calendar"
	"github.com/ajitpratap0/nebula-odbc/pkg/numeric"
)

// Fixed struct layouts, little-endian and unpadded:
//
//	date       year i16 | month u16 | day u16
//	time       hour u16 | minute u16 | second u16
//	timestamp  date | time | fraction u32 (nanoseconds)
//	numeric    precision u8 | scale i8 | sign u8 | val [16]u8
//	guid       data1 u32 | data2 u16 | data3 u16 | data4 [8]u8

func appendDate(buf []byte, f calendar.Fields) []byte {
	buf = binary.LittleEndian.AppendUint16(buf, uint16(int16(f.Year)))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(f.Month))
	return binary.LittleEndian.AppendUint16(buf, uint16(f.Day))
}

func appendTime(buf []byte, f calendar.Fields) []byte {
	buf = binary.LittleEndian.AppendUint16(buf, uint16(f.Hour))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(f.Minute))
	return binary.LittleEndian.AppendUint16(buf, uint16(f.Second))
}

func appendTimestamp(buf []byte, f calendar.Fields) []byte {
	buf = appendDate(buf, f)
	buf = appendTime(buf, f)
	return binary.LittleEndian.AppendUint32(buf, uint32(f.Nanosecond))
}

func appendNumeric(buf []byte, p numeric.Packed) []byte {
	buf = append(buf, p.Precision, byte(p.Scale), p.Sign)
	return append(buf, p.Val[:]...)
}

// appendGUID lays out u in the host struct: the first eight bytes of the
// canonical form become data1..data3 and the last eight become data4.
func appendGUID(buf []byte, u uuid.UUID) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, binary.BigEndian.Uint32(u[0:4]))
	buf = binary.LittleEndian.AppendUint16(buf, binary.BigEndian.Uint16(u[4:6]))
	buf = binary.LittleEndian.AppendUint16(buf, binary.BigEndian.Uint16(u[6:8]))
	return append(buf, u[8:16]...)
}

func readDate(val []byte) calendar.Fields {
	expectSize(val, dateSize)
	return calendar.Fields{
		Year:  int(int16(binary.LittleEndian.Uint16(val[0:2]))),
		Month: int(binary.LittleEndian.Uint16(val[2:4])),
		Day:   int(binary.LittleEndian.Uint16(val[4:6])),
	}
}

func readTime(val []byte) calendar.Fields {
	expectSize(val, timeSize)
	return calendar.Fields{
		Year:   1970,
		Month:  1,
		Day:    1,
		Hour:   int(binary.LittleEndian.Uint16(val[0:2])),
		Minute: int(binary.LittleEndian.Uint16(val[2:4])),
		Second: int(binary.LittleEndian.Uint16(val[4:6])),
	}
}

func readTimestamp(val []byte) calendar.Fields {
	expectSize(val, timestampSize)
	f := readDate(val[0:6])
	t := readTime(val[6:12])
	f.Hour, f.Minute, f.Second = t.Hour, t.Minute, t.Second
	f.Nanosecond = int(binary.LittleEndian.Uint32(val[12:16]))
	return f
}

func readNumeric(val []byte) numeric.Packed {
	expectSize(val, numericSize)
	p := numeric.Packed{
		Precision: val[0],
		Scale:     int8(val[1]),
		Sign:      val[2],
	}
	copy(p.Val[:], val[3:])
	return p
}

func readGUID(val []byte) uuid.UUID {
	expectSize(val, guidSize)
	var u uuid.UUID
	binary.BigEndian.PutUint32(u[0:4], binary.LittleEndian.Uint32(val[0:4]))
	binary.BigEndian.PutUint16(u[4:6], binary.LittleEndian.Uint16(val[4:6]))
	binary.BigEndian.PutUint16(u[6:8], binary.LittleEndian.Uint16(val[6:8]))
	copy(u[8:], val[8:16])
	return u
}

// readBits loads a little-endian integer of len(val) bytes.
func readBits(val []byte) uint64 {
	var buf [8]byte
	copy(buf[:], val)
	return binary.LittleEndian.Uint64(buf[:])
}

func appendBits(buf []byte, bits uint64, size int) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], bits)
	return append(buf, tmp[:size]...)
}

func expectSize(buf []byte, sz int) {
	if len(buf) != sz {
		panic("appbuf: layout size mismatch")
	}
}
