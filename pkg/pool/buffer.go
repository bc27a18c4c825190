package pool

import "sync"

// BufferPool manages fixed-size read buffers for streaming checksums.
type BufferPool struct {
	size int       // Size of each buffer.
	pool sync.Pool // Thread-safe pool of *[]byte.
}

// Creates a new buffer pool with a specified buffer size.
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		size: size,
		pool: sync.Pool{
			New: func() any {
				buf := make([]byte, size)
				return &buf
			},
		},
	}
}

// Size returns the length of every buffer handed out by the pool.
func (bp *BufferPool) Size() int {
	return bp.size
}

// Retrieves a buffer of exactly Size bytes from the pool.
func (bp *BufferPool) Get() *[]byte {
	return bp.pool.Get().(*[]byte)
}

// Returns a buffer to the pool.
func (bp *BufferPool) Put(buf *[]byte) {
	// Buffers of a foreign size would break the Get contract.
	if buf == nil || len(*buf) != bp.size {
		return
	}
	bp.pool.Put(buf)
}
