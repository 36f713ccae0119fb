package access

import (
	"github.com/quickwritereader/netpack/utils"
)

// Cursor is a bounds-checked window over a caller-owned buffer. Every
// Pack/Unpack call advances it past the bytes it wrote or read.
//
// A Cursor is not safe for concurrent use.
type Cursor struct {
	buf    []byte // window; Remaining is len(buf)-pos
	pos    int
	pool   *utils.BufferPool
	maxStr uint32 // 0 = no limit
}

// NewCursor views the whole of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// NewCursorN views the first n bytes of buf. n outside [0, len(buf)]
// is a contract violation.
func NewCursorN(buf []byte, n int) *Cursor {
	if buf == nil {
		violate("NewCursorN", "nil buffer")
	}
	if n < 0 || n > len(buf) {
		panic(&ContractError{Op: "NewCursorN", Need: n, Remaining: len(buf)})
	}
	return &Cursor{buf: buf[:n:n]}
}

// WithPool makes UnpackStr take its owned storage from bp.
func (c *Cursor) WithPool(bp *utils.BufferPool) *Cursor {
	c.pool = bp
	return c
}

// SetMaxStrLen caps the length prefix UnpackStr accepts. Zero removes the cap.
func (c *Cursor) SetMaxStrLen(n uint32) *Cursor {
	c.maxStr = n
	return c
}

// Offset is the number of bytes consumed so far.
func (c *Cursor) Offset() int { return c.pos }

// Remaining is the number of bytes left in the window.
func (c *Cursor) Remaining() int { return len(c.buf) - c.pos }

// Bytes returns the prefix written or read so far.
func (c *Cursor) Bytes() []byte { return c.buf[:c.pos] }

// Rest returns the unconsumed tail of the window.
func (c *Cursor) Rest() []byte { return c.buf[c.pos:] }

// Reset rewinds the cursor to the start of its window.
func (c *Cursor) Reset() { c.pos = 0 }

// Release hands storage returned by UnpackStr back to the cursor's pool.
// It is a no-op when the cursor has no pool.
func (c *Cursor) Release(b []byte) {
	if c.pool != nil && b != nil {
		c.pool.Release(b)
	}
}

func (c *Cursor) alloc(n int) []byte {
	if c.pool != nil {
		return c.pool.Acquire(n)
	}
	return make([]byte, n)
}
