// Package compression provides transparent decoding of zstd compressed inputs
// so that checksums can cover the original, uncompressed bytes.
package compression

import (
	"fmt"
	"io"
	"strings"

	"github.com/iamNilotpal/crc/internal/core/domain"
	"github.com/klauspost/compress/zstd"
)

type Options struct {
	DecoderConcurrency uint8
}

// ZstdDecompressor implements DecompressionPort using the zstd algorithm.
// It is stateless apart from its options; every call to NewReader creates an
// independent streaming decoder, so a single instance may serve concurrent inputs.
type ZstdDecompressor struct {
	concurrency uint8
}

// Extensions recognised as zstd frames.
var zstdExtensions = []string{".zst", ".zstd"}

// NewZstdDecompressor validates opts and returns a decompressor.
// A DecoderConcurrency of 0 lets the decoder pick GOMAXPROCS.
func NewZstdDecompressor(opts Options) (*ZstdDecompressor, error) {
	if err := Validate(&domain.CompressionOptions{DecoderConcurrency: opts.DecoderConcurrency}); err != nil {
		return nil, err
	}
	return &ZstdDecompressor{concurrency: opts.DecoderConcurrency}, nil
}

// NewReader returns a streaming decoder over r.
//
// Returns an error if the decoder cannot be initialised. Corrupt frames are
// reported by the returned reader's Read.
func (z *ZstdDecompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	decoder, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(int(z.concurrency)))
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	return decoder.IOReadCloser(), nil
}

// Matches reports whether name carries a zstd extension.
func (z *ZstdDecompressor) Matches(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range zstdExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
