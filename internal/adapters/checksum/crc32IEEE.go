package checksum

import (
	"github.com/iamNilotpal/crc/internal/core/domain"
	"github.com/iamNilotpal/crc/pkg/checksum"
)

type crc32IEEE struct {
	name   string
	engine *checksum.Engine
}

func NewCRC32IEEE(engine *checksum.Engine) *crc32IEEE {
	return &crc32IEEE{
		name:   string(domain.CRC32IEEE),
		engine: engine,
	}
}

func (c *crc32IEEE) Update(prev uint32, data []byte) uint32 {
	return c.engine.CRC32(data, len(data), prev)
}

func (c *crc32IEEE) Calculate(data []byte) uint32 {
	return c.engine.CRC32(data, len(data), 0)
}

func (c *crc32IEEE) Verify(data []byte, expected uint32) bool {
	return c.Calculate(data) == expected
}

func (c *crc32IEEE) Size() uint8 {
	return checksum.Size
}

func (c *crc32IEEE) Name() string {
	return c.name
}
