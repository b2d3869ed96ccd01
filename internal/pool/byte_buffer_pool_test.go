package pool

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, bb.Cap())
}

func TestByteBuffer_Writes(t *testing.T) {
	bb := NewByteBuffer(EncodeBufferDefaultSize)

	bb.MustWrite([]byte("he"))
	require.NoError(t, bb.WriteByte('l'))
	n, err := bb.Write([]byte("lo"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, []byte("hello"), bb.Bytes())
	assert.Equal(t, 5, bb.Len())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(EncodeBufferDefaultSize)
	bb.MustWrite([]byte("some data"))
	originalCap := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len(), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, bb.Cap(), "Reset should preserve capacity")
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("test data"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)

	require.NoError(t, err)
	assert.Equal(t, int64(9), n)
	assert.Equal(t, "test data", out.String())
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(100)
		bb.Grow(50)
		assert.Equal(t, 100, bb.Cap())
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(10)
		bb.MustWrite([]byte("0123456789"))
		bb.Grow(1)
		assert.Equal(t, 10+EncodeBufferDefaultSize, bb.Cap())
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := 8 * EncodeBufferDefaultSize
		bb := NewByteBuffer(size)
		bb.B = bb.B[:size]
		bb.Grow(1)
		assert.Equal(t, size+size/4, bb.Cap())
	})

	t.Run("request larger than growth step", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(3 * EncodeBufferDefaultSize)
		assert.GreaterOrEqual(t, bb.Cap(), 3*EncodeBufferDefaultSize)
	})

	t.Run("preserves data", func(t *testing.T) {
		bb := NewByteBuffer(4)
		bb.MustWrite([]byte("abcd"))
		bb.Grow(100)
		assert.Equal(t, []byte("abcd"), bb.Bytes())
	})
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(64, 128)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("payload"))
	p.Put(bb)

	again := p.Get()
	require.NotNil(t, again)
	assert.Equal(t, 0, again.Len(), "pooled buffers must come back empty")
}

func TestByteBufferPool_PutNil(t *testing.T) {
	p := NewByteBufferPool(64, 128)
	require.NotPanics(t, func() { p.Put(nil) })
}

func TestByteBufferPool_DiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(8, 16)

	bb := p.Get()
	bb.Grow(1024)
	require.Greater(t, bb.Cap(), 16)
	p.Put(bb)

	// The oversized buffer is dropped, so a fresh one comes back.
	fresh := p.Get()
	assert.LessOrEqual(t, fresh.Cap(), 16)
}

func TestDefaultPools(t *testing.T) {
	enc := GetEncodeBuffer()
	require.NotNil(t, enc)
	assert.Equal(t, 0, enc.Len())
	PutEncodeBuffer(enc)

	frame := GetFrameBuffer()
	require.NotNil(t, frame)
	assert.Equal(t, 0, frame.Len())
	PutFrameBuffer(frame)
}

func TestPool_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for range 100 {
				bb := GetEncodeBuffer()
				bb.MustWrite([]byte{byte(id)})
				if bb.Len() != 1 {
					t.Errorf("goroutine %d: expected len 1, got %d", id, bb.Len())
				}
				PutEncodeBuffer(bb)
			}
		}(i)
	}
	wg.Wait()
}

func BenchmarkPool_GetWritePut(b *testing.B) {
	data := bytes.Repeat([]byte{0xAB}, 256)
	b.ReportAllocs()
	for b.Loop() {
		bb := GetEncodeBuffer()
		bb.MustWrite(data)
		PutEncodeBuffer(bb)
	}
}
