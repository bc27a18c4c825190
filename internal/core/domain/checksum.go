// Package domain defines the core types and configuration of the checksum tooling.
package domain

import (
	"github.com/iamNilotpal/crc/internal/core/ports"
	"github.com/iamNilotpal/crc/pkg/checksum"
)

// ChecksumAlgorithm represents supported checksum algorithms
type ChecksumAlgorithm string

const (
	// CRC32IEEE uses the IEEE polynomial (Ethernet, zlib, gzip, PNG).
	CRC32IEEE ChecksumAlgorithm = "crc32-ieee"

	// CRC32C uses the Castagnoli polynomial (iSCSI, ext4, SCTP).
	CRC32C ChecksumAlgorithm = "crc32c"
)

// ChecksumOptions configures how inputs are checksummed.
type ChecksumOptions struct {
	// Algorithm specifies which checksum algorithm to use.
	// Defaults to CRC32C if not specified.
	Algorithm ChecksumAlgorithm

	// Strategy selects the engine implementation. Auto probes the CPU once
	// and uses hardware CRC instructions where available. The strategy
	// affects throughput only, never the checksum value.
	Strategy checksum.Strategy

	// Custom allows using a custom ChecksumPort implementation.
	// If provided, it takes precedence over Algorithm and Strategy.
	Custom ports.ChecksumPort

	// ChunkSize is the number of bytes read per step when streaming an input.
	// Each chunk is folded into the running checksum, so the value does not
	// depend on it. Must be between 4KB and 16MB.
	//
	// Default: 1MB
	ChunkSize uint32

	// Concurrency bounds how many inputs are checksummed in parallel.
	//
	// Default: number of CPU cores
	Concurrency uint8

	// CompressionOptions controls transparent decoding of compressed inputs.
	CompressionOptions *CompressionOptions
}
