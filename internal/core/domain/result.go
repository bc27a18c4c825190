package domain

import "fmt"

// Result is the checksum of one input.
type Result struct {
	// Path names the input; "-" is standard input.
	Path string

	// Algorithm used to compute Checksum.
	Algorithm ChecksumAlgorithm

	// Checksum is the finalized CRC value.
	Checksum uint32

	// Size is the number of bytes folded into Checksum, after decompression.
	Size uint64
}

// Hex returns the checksum as eight lowercase hex digits.
func (r *Result) Hex() string {
	return fmt.Sprintf("%08x", r.Checksum)
}
