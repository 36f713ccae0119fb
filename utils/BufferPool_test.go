package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeIndex(t *testing.T) {
	cases := []struct {
		n      int
		expect int
	}{
		{1, 0}, {4, 0}, {63, 0}, {64, 0}, {65, 1}, {127, 1}, {128, 1},
		{129, 2}, {256, 2}, {257, 3}, {512, 3}, {1023, 4}, {1024, 4},
		{2048, 5}, {4095, 6}, {8192, 7}, {16383, 8}, {32767, 9}, {32768, 9},
		{32769, -1}, {0, -1}, {-4, -1},
	}

	for _, tc := range cases {
		idx := SizeIndex(tc.n)
		assert.Equal(t, tc.expect, idx, "SizeIndex(%d)", tc.n)
		if idx >= 0 {
			assert.GreaterOrEqual(t, BufferSizeClass[idx], tc.n, "class %d too small for n=%d", idx, tc.n)
			if idx > 0 {
				assert.Less(t, BufferSizeClass[idx-1], tc.n, "class %d would have fit n=%d", idx-1, tc.n)
			}
		}
	}
}

func TestBufferPool_AcquireRelease(t *testing.T) {
	bp := NewBufferPool()

	for _, size := range BufferSizeClass {
		buf := bp.Acquire(size - 1)
		require.Len(t, buf, size-1)
		assert.Equal(t, size, cap(buf))

		buf[0] = 0xAA
		buf[len(buf)-1] = 0xBB
		bp.Release(buf)

		buf2 := bp.Acquire(size)
		assert.Len(t, buf2, size)
		assert.Equal(t, size, cap(buf2))
	}
}

func TestBufferPool_ZeroLength(t *testing.T) {
	bp := NewBufferPool()
	buf := bp.Acquire(0)
	require.NotNil(t, buf)
	assert.Empty(t, buf)
	bp.Release(buf)
}

func TestBufferPool_AcquireZeroed(t *testing.T) {
	bp := NewBufferPool()
	buf := bp.Acquire(100)
	for i := range buf {
		buf[i] = 0xFF
	}
	bp.Release(buf)

	z := bp.AcquireZeroed(100)
	assert.Equal(t, make([]byte, 100), z)
}

func TestBufferPool_Oversized(t *testing.T) {
	bp := NewBufferPool()
	buf := bp.Acquire(40000)
	assert.Len(t, buf, 40000)
	assert.NotPanics(t, func() { bp.Release(buf) })
	assert.NotPanics(t, func() { bp.Release(make([]byte, 100)) })
}

func BenchmarkBufferPool_AcquireVariants(b *testing.B) {
	bp := NewBufferPool()
	sizes := []int{64, 4096, 8192}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Acquire_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				buf := bp.Acquire(size)
				_ = buf[0]
				bp.Release(buf)
			}
		})

		b.Run(fmt.Sprintf("Zeroed_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				buf := bp.AcquireZeroed(size)
				_ = buf[0]
				bp.Release(buf)
			}
		})
	}
}
