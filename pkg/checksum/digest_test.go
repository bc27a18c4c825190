package checksum

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigest(t *testing.T) {
	h := NewCastagnoli()
	assert.Equal(t, Size, h.Size())
	assert.Equal(t, 1, h.BlockSize())

	_, err := io.Copy(h, strings.NewReader("1234"))
	require.NoError(t, err)
	_, err = h.Write([]byte("56789"))
	require.NoError(t, err)

	assert.Equal(t, uint32(0xe3069283), h.Sum32())
	assert.Equal(t, []byte{0xaa, 0xe3, 0x06, 0x92, 0x83}, h.Sum([]byte{0xaa}))

	h.Reset()
	assert.Equal(t, uint32(0), h.Sum32())
}

func TestDigestMatchesEngine(t *testing.T) {
	data := randomBytes(t, 1000, 7)

	for _, e := range engines() {
		h := e.NewIEEE()
		for i := 0; i < len(data); i += 37 {
			end := min(i+37, len(data))
			_, _ = h.Write(data[i:end])
		}
		assert.Equal(t, e.CRC32(data, len(data), 0), h.Sum32(), e.Strategy().String())
	}

	assert.Equal(t, uint32(0xcbf43926), func() uint32 {
		h := NewIEEE()
		_, _ = h.Write(check)
		return h.Sum32()
	}())
}
