package checksum

import (
	"fmt"
	"runtime"

	"github.com/iamNilotpal/crc/internal/core/domain"
	"github.com/iamNilotpal/crc/internal/core/ports"
	"github.com/iamNilotpal/crc/pkg/checksum"
)

const (
	DefaultChunkSize = 1 << 20  // 1MB
	MinChunkSize     = 4096     // 4KB
	MaxChunkSize     = 16777216 // 16MB
)

// Returns recommended checksum settings.
func DefaultOptions() *domain.ChecksumOptions {
	return &domain.ChecksumOptions{
		Algorithm:   domain.CRC32C,
		Strategy:    checksum.Auto,
		ChunkSize:   DefaultChunkSize,
		Concurrency: uint8(min(runtime.NumCPU(), 255)),
	}
}

func Validate(input *domain.ChecksumOptions) error {
	if input.Custom == nil {
		switch input.Algorithm {
		case domain.CRC32IEEE, domain.CRC32C:
		default:
			return fmt.Errorf("unsupported checksum algorithm: %s", input.Algorithm)
		}

		switch input.Strategy {
		case checksum.Auto, checksum.Generic, checksum.Hardware:
		default:
			return fmt.Errorf("unsupported checksum strategy: %d", input.Strategy)
		}
	}

	if input.ChunkSize < MinChunkSize || input.ChunkSize > MaxChunkSize {
		return fmt.Errorf("chunk size must be between %d and %d, got %d", MinChunkSize, MaxChunkSize, input.ChunkSize)
	}

	if input.Concurrency == 0 {
		return fmt.Errorf("concurrency must be at least 1")
	}

	return nil
}

// New returns the ChecksumPort described by opts. A custom implementation
// wins over Algorithm.
func New(opts *domain.ChecksumOptions) (ports.ChecksumPort, error) {
	if opts.Custom != nil {
		return opts.Custom, nil
	}

	engine := checksum.NewEngine(opts.Strategy)

	switch opts.Algorithm {
	case domain.CRC32IEEE:
		return NewCRC32IEEE(engine), nil
	case domain.CRC32C:
		return NewCRC32C(engine), nil
	default:
		return nil, fmt.Errorf("unsupported checksum algorithm: %s", opts.Algorithm)
	}
}
