package packable

import (
	"github.com/quickwritereader/netpack/access"
	"github.com/quickwritereader/netpack/utils"
)

// Packable is one field of a composite record.
type Packable interface {
	// ValueSize is the number of bytes PackInto will write.
	ValueSize() int
	PackInto(c *access.Cursor)
}

// Size returns the encoded size of args packed in order.
func Size(args ...Packable) int {
	size := 0
	for _, arg := range args {
		size += arg.ValueSize()
	}
	return size
}

// PackCursor packs args into c in order. The whole record must fit:
// the capacity check runs before the first field is written.
func PackCursor(c *access.Cursor, args ...Packable) {
	if c == nil {
		panic(&access.ContractError{Op: "PackCursor", Reason: "nil cursor"})
	}
	if need := Size(args...); c.Remaining() < need {
		panic(&access.ContractError{Op: "PackCursor", Need: need, Remaining: c.Remaining()})
	}
	for _, arg := range args {
		arg.PackInto(c)
	}
}

// Pack allocates an exact-size buffer and packs args into it.
func Pack(args ...Packable) []byte {
	buffer := make([]byte, Size(args...))
	PackCursor(access.NewCursor(buffer), args...)
	return buffer
}

// PackPooled is Pack with the buffer taken from bp. The caller releases
// it with bp.Release once the bytes have been sent.
func PackPooled(bp *utils.BufferPool, args ...Packable) []byte {
	buffer := bp.Acquire(Size(args...))
	PackCursor(access.NewCursor(buffer), args...)
	return buffer
}
