package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferPool(t *testing.T) {
	bp := NewBufferPool(64)
	assert.Equal(t, 64, bp.Size())

	buf := bp.Get()
	assert.Len(t, *buf, 64)
	bp.Put(buf)

	foreign := make([]byte, 10)
	bp.Put(&foreign)
	bp.Put(nil)

	for i := 0; i < 4; i++ {
		assert.Len(t, *bp.Get(), 64)
	}
}
