package packable

import (
	"github.com/quickwritereader/netpack/access"
)

// PackUint16 is a 2-byte big-endian field.
type PackUint16 uint16

func (p PackUint16) ValueSize() int { return access.Width16 }
func (p PackUint16) PackInto(c *access.Cursor) {
	c.Pack16(uint16(p))
}

// PackUint32 is a 4-byte big-endian field.
type PackUint32 uint32

func (p PackUint32) ValueSize() int { return access.Width32 }
func (p PackUint32) PackInto(c *access.Cursor) {
	c.Pack32(uint32(p))
}

// PackString is a counted string field.
type PackString string

func (p PackString) ValueSize() int { return access.StrPrefixSize + len(p) }
func (p PackString) PackInto(c *access.Cursor) {
	c.PackString(string(p))
}

// PackByteArrayRef is a counted string field over a byte slice. The slice
// is held by reference so boxing it into Packable does not copy the header
// to the heap.
type PackByteArrayRef struct {
	ref *[]byte
}

func (p PackByteArrayRef) ValueSize() int { return access.StrPrefixSize + len(*p.ref) }
func (p PackByteArrayRef) PackInto(c *access.Cursor) {
	c.PackStr(*p.ref, uint32(len(*p.ref)))
}

func PackByteArray(b []byte) PackByteArrayRef {
	return PackByteArrayRef{ref: &b}
}
