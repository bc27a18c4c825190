package checksum

import (
	"github.com/iamNilotpal/crc/internal/core/domain"
	"github.com/iamNilotpal/crc/pkg/checksum"
)

type crc32C struct {
	name   string
	engine *checksum.Engine
}

func NewCRC32C(engine *checksum.Engine) *crc32C {
	return &crc32C{
		name:   string(domain.CRC32C),
		engine: engine,
	}
}

func (c *crc32C) Update(prev uint32, data []byte) uint32 {
	return c.engine.CRC32C(data, len(data), prev)
}

func (c *crc32C) Calculate(data []byte) uint32 {
	return c.engine.CRC32C(data, len(data), 0)
}

func (c *crc32C) Verify(data []byte, expected uint32) bool {
	return c.Calculate(data) == expected
}

func (c *crc32C) Size() uint8 {
	return checksum.Size
}

func (c *crc32C) Name() string {
	return c.name
}
