package access

import (
	"math"
	"unsafe"
)

// Pack16 writes v as 2 big-endian bytes.
func (c *Cursor) Pack16(v uint16) {
	requireRoom("Pack16", c, Width16)
	c.pos = WriteUint16(c.buf, c.pos, v)
}

// Pack32 writes v as 4 big-endian bytes.
func (c *Cursor) Pack32(v uint32) {
	requireRoom("Pack32", c, Width32)
	c.pos = WriteUint32(c.buf, c.pos, v)
}

// PackStr writes the first size bytes of b as a counted string.
// b may be nil only when size is zero.
func (c *Cursor) PackStr(b []byte, size uint32) {
	requireSource("PackStr", b, size)
	requireRoom("PackStr", c, StrPrefixSize+int(size))
	c.Pack32(size)
	c.pos = WriteBytes(c.buf, c.pos, b[:size])
}

// PackString writes s as a counted string without copying it first.
func (c *Cursor) PackString(s string) {
	if uint64(len(s)) > math.MaxUint32 {
		violate("PackString", "string longer than a 32-bit prefix can count")
	}
	c.PackStr(unsafe.Slice(unsafe.StringData(s), len(s)), uint32(len(s)))
}
