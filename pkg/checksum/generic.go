package checksum

import (
	"encoding/binary"
	"unsafe"
)

const wordSize = 8

// foldByte folds a single byte into a pre-inverted accumulator.
func foldByte(crc uint32, tab *slicing8Table, b byte) uint32 {
	return tab[0][byte(crc)^b] ^ (crc >> 8)
}

// foldWord folds eight bytes, read as a little-endian word, into a
// pre-inverted accumulator. The result equals eight foldByte calls.
func foldWord(crc uint32, tab *slicing8Table, w uint64) uint32 {
	lo := crc ^ uint32(w)
	hi := uint32(w >> 32)
	return tab[0][hi>>24] ^ tab[1][(hi>>16)&0xff] ^ tab[2][(hi>>8)&0xff] ^ tab[3][hi&0xff] ^
		tab[4][lo>>24] ^ tab[5][(lo>>16)&0xff] ^ tab[6][(lo>>8)&0xff] ^ tab[7][lo&0xff]
}

// misaligned reports whether p starts off an 8-byte boundary.
func misaligned(p []byte) bool {
	return uintptr(unsafe.Pointer(unsafe.SliceData(p)))&(wordSize-1) != 0
}

// genericUpdate folds p into prev in three phases: single bytes until the
// start address is word aligned, whole words, then the 0-7 trailing bytes.
func genericUpdate(prev uint32, tab *slicing8Table, p []byte) uint32 {
	crc := ^prev

	for len(p) > 0 && misaligned(p) {
		crc = foldByte(crc, tab, p[0])
		p = p[1:]
	}

	for len(p) >= wordSize {
		crc = foldWord(crc, tab, binary.LittleEndian.Uint64(p))
		p = p[wordSize:]
	}

	for _, b := range p {
		crc = foldByte(crc, tab, b)
	}

	return ^crc
}
