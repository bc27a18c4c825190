package sum

import (
	"github.com/iamNilotpal/crc/internal/adapters/checksum"
	"github.com/iamNilotpal/crc/internal/adapters/compression"
	"github.com/iamNilotpal/crc/internal/core/domain"
	"github.com/iamNilotpal/crc/pkg/errors"
)

// Validate checks opts after defaults have been applied.
func Validate(opts *domain.ChecksumOptions) error {
	if err := checksum.Validate(opts); err != nil {
		return errors.NewValidationError("checksum", opts.Algorithm, err)
	}

	if opts.CompressionOptions.Enable {
		if err := compression.Validate(opts.CompressionOptions); err != nil {
			return errors.NewValidationError("compression", opts.CompressionOptions.DecoderConcurrency, err)
		}
	}

	return nil
}
