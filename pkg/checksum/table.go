package checksum

// Size of a CRC-32 checksum in bytes.
const Size = 4

// Polynomials in reversed (LSB-first) form.
const (
	// IEEE is the Ethernet/zlib/gzip polynomial.
	IEEE uint32 = 0xedb88320

	// Castagnoli is the iSCSI/ext4 polynomial used by CRC-32C.
	Castagnoli uint32 = 0x82f63b78
)

// table holds the byte-at-a-time lookup for one polynomial.
type table [256]uint32

// slicing8Table holds eight derived tables so that eight input bytes can be
// folded with eight independent lookups.
type slicing8Table [8]table

// simpleMakeTable evaluates the reflected CRC recurrence for every byte value:
// eight rounds of shift right, xor-ing the polynomial in when the low bit is set.
func simpleMakeTable(poly uint32) *table {
	t := new(table)
	for i := 0; i < 256; i++ {
		crc := uint32(i)
		for j := 0; j < 8; j++ {
			if crc&1 == 1 {
				crc = (crc >> 1) ^ poly
			} else {
				crc >>= 1
			}
		}
		t[i] = crc
	}
	return t
}

// slicingMakeTable derives t[k][i], the effect of byte i followed by k zero bytes.
func slicingMakeTable(poly uint32) *slicing8Table {
	t := new(slicing8Table)
	t[0] = *simpleMakeTable(poly)
	for i := 0; i < 256; i++ {
		crc := t[0][i]
		for k := 1; k < 8; k++ {
			crc = t[0][crc&0xff] ^ (crc >> 8)
			t[k][i] = crc
		}
	}
	return t
}
