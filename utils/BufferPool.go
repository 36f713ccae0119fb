package utils

import (
	"math/bits"
	"sync"
)

const (
	minClassShift = 6  // 64 bytes
	maxClassShift = 15 // 32768 bytes
)

// BufferSizeClass lists the capacities the pool hands out.
var BufferSizeClass = [...]int{64, 128, 256, 512, 1024, 2048, 4096, 8192, 16384, 32768}

// SizeIndex returns the smallest class that holds n bytes, or -1 when n is
// not pooled.
func SizeIndex(n int) int {
	if n <= 0 || n > 1<<maxClassShift {
		return -1
	}
	if n <= 1<<minClassShift {
		return 0
	}
	return bits.Len(uint(n-1)) - minClassShift
}

// BufferPool recycles pack buffers and the owned storage that string
// unpacking returns. It is safe for concurrent use.
type BufferPool struct {
	pools [len(BufferSizeClass)]sync.Pool
}

func NewBufferPool() *BufferPool {
	var bp BufferPool
	for i, sz := range BufferSizeClass {
		size := sz
		bp.pools[i].New = func() any {
			b := make([]byte, size)
			return &b
		}
	}
	return &bp
}

// Acquire returns a buffer of length n. Sizes above the largest class are
// allocated directly and are dropped again by Release.
func (bp *BufferPool) Acquire(n int) []byte {
	idx := SizeIndex(n)
	if idx < 0 {
		return make([]byte, n)
	}
	bufPtr := bp.pools[idx].Get().(*[]byte)
	return (*bufPtr)[:n]
}

// AcquireZeroed is Acquire with the contents cleared.
func (bp *BufferPool) AcquireZeroed(n int) []byte {
	buf := bp.Acquire(n)
	clear(buf)
	return buf
}

// Release returns buf to its class. Buffers whose capacity is not
// exactly a class size are ignored.
func (bp *BufferPool) Release(buf []byte) {
	c := cap(buf)
	if c&(c-1) != 0 || c < 1<<minClassShift || c > 1<<maxClassShift {
		return
	}
	buf = buf[:c]
	bp.pools[bits.Len(uint(c))-1-minClassShift].Put(&buf)
}
