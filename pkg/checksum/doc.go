// Package checksum implements the CRC-32 (IEEE) and CRC-32C (Castagnoli)
// checksums as incremental, allocation-free functions.
//
// # Incremental use
//
// Every call takes the previous result and returns the updated one, so a
// stream split into arbitrary chunks produces the same value as a single call
// over the whole stream:
//
//	crc := checksum.CRC32C(first, len(first), 0)
//	crc = checksum.CRC32C(second, len(second), crc)
//
// A zero previous value starts a fresh checksum and a zero length leaves the
// value unchanged.
//
// # Strategies
//
// The portable Generic strategy folds an unaligned prefix one byte at a time,
// the 8-byte aligned body with a slicing-by-8 table and the tail byte by byte.
// The Hardware strategy hands the buffer to github.com/klauspost/crc32, which
// uses SSE4.2/PCLMULQDQ on amd64 and the CRC32 extension on arm64. Auto probes
// the CPU once per process and picks Hardware per polynomial when the
// instructions exist. The selected strategy never changes the result.
package checksum
