package access

import (
	"encoding/binary"
)

const (
	Width16 = 2
	Width32 = 4
	// StrPrefixSize is the length prefix in front of every counted string.
	StrPrefixSize = Width32
)

// The direct writers do no bounds checking of their own; callers guard
// the range first.

// WriteUint16 writes v big-endian at pos and returns the next position.
func WriteUint16(buffer []byte, pos int, v uint16) int {
	binary.BigEndian.PutUint16(buffer[pos:], v)
	return pos + Width16
}

// WriteUint32 writes v big-endian at pos and returns the next position.
func WriteUint32(buffer []byte, pos int, v uint32) int {
	binary.BigEndian.PutUint32(buffer[pos:], v)
	return pos + Width32
}

// WriteBytes copies b verbatim at pos.
func WriteBytes(buffer []byte, pos int, b []byte) int {
	copy(buffer[pos:], b)
	return pos + len(b)
}

func ReadUint16(buffer []byte, pos int) (uint16, int) {
	return binary.BigEndian.Uint16(buffer[pos:]), pos + Width16
}

func ReadUint32(buffer []byte, pos int) (uint32, int) {
	return binary.BigEndian.Uint32(buffer[pos:]), pos + Width32
}
