package ports

import "io"

// Defines the interface for decoding compressed inputs.
// This allows us to swap compression algorithms without changing core logic.
type DecompressionPort interface {
	// NewReader wraps r in a decoding reader. Closing it releases decoder
	// resources but does not close r.
	NewReader(r io.Reader) (io.ReadCloser, error)

	// Matches reports whether an input of this name should be decoded.
	Matches(name string) bool
}
