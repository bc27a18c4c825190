package ports

// Defines an interface for calculating and verifying CRC-32 family checksums.
type ChecksumPort interface {
	// Folds data into a previous checksum and returns the updated value.
	// Passing 0 starts a new checksum; an empty data leaves prev unchanged.
	Update(prev uint32, data []byte) uint32

	// Calculates the checksum of data from scratch.
	Calculate(data []byte) uint32

	// Returns true if the checksum of data equals expected.
	Verify(data []byte, expected uint32) bool

	// Size of the checksum in bytes.
	Size() uint8

	// Name of the algorithm.
	Name() string
}
