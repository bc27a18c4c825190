package compression

import (
	"fmt"
	"runtime"

	"github.com/iamNilotpal/crc/internal/core/domain"
)

// Returns CompressionOptions with decoding enabled and one decoder
// goroutine per CPU core.
func DefaultOptions() *domain.CompressionOptions {
	return &domain.CompressionOptions{
		Enable:             true,
		DecoderConcurrency: uint8(min(runtime.NumCPU(), 255)),
	}
}

// Checks if the compression options are valid and returns an error if any option
// is outside acceptable bounds.
func Validate(input *domain.CompressionOptions) error {
	// Validate decoder concurrency
	if input.DecoderConcurrency > uint8(min(runtime.NumCPU(), 255)) {
		return fmt.Errorf(
			"decoder concurrency must be between 0 and %d, got %d", runtime.NumCPU(), input.DecoderConcurrency,
		)
	}

	return nil
}
