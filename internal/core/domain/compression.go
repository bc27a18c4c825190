package domain

// CompressionOptions configures transparent decoding of compressed inputs.
// When enabled, inputs whose names carry a zstd extension are decoded and the
// checksum covers the decompressed bytes.
type CompressionOptions struct {
	// Enable toggles decoding of .zst and .zstd inputs.
	Enable bool

	// DecoderConcurrency specifies the number of concurrent decoding goroutines
	// per stream. Default is number of CPU cores if set to 0.
	DecoderConcurrency uint8
}
