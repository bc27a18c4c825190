package sum

import (
	"github.com/iamNilotpal/crc/internal/adapters/checksum"
	"github.com/iamNilotpal/crc/internal/adapters/compression"
	"github.com/iamNilotpal/crc/internal/core/domain"
)

// prepareDefaults fills every zero option with its recommended value.
func prepareDefaults(opts *domain.ChecksumOptions) *domain.ChecksumOptions {
	defaults := checksum.DefaultOptions()

	if opts.Algorithm == "" {
		opts.Algorithm = defaults.Algorithm
	}

	if opts.ChunkSize == 0 {
		opts.ChunkSize = defaults.ChunkSize
	}

	if opts.Concurrency == 0 {
		opts.Concurrency = defaults.Concurrency
	}

	if opts.CompressionOptions == nil {
		opts.CompressionOptions = compression.DefaultOptions()
		opts.CompressionOptions.Enable = false
	}

	return opts
}
