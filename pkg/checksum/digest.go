package checksum

import "hash"

// digest is the running state of a streaming checksum.
type digest struct {
	crc    uint32
	update updateFunc
}

// NewIEEE returns a hash.Hash32 computing CRC-32 with the default engine.
// Its Sum method lays the value out in big-endian byte order.
func NewIEEE() hash.Hash32 { return defaultEngine().NewIEEE() }

// NewCastagnoli returns a hash.Hash32 computing CRC-32C with the default engine.
func NewCastagnoli() hash.Hash32 { return defaultEngine().NewCastagnoli() }

// NewIEEE returns a hash.Hash32 computing CRC-32 with e.
func (e *Engine) NewIEEE() hash.Hash32 { return &digest{update: e.ieee} }

// NewCastagnoli returns a hash.Hash32 computing CRC-32C with e.
func (e *Engine) NewCastagnoli() hash.Hash32 { return &digest{update: e.castagnoli} }

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() { d.crc = 0 }

func (d *digest) Write(p []byte) (int, error) {
	d.crc = update(d.update, d.crc, p)
	return len(p), nil
}

func (d *digest) Sum32() uint32 { return d.crc }

func (d *digest) Sum(in []byte) []byte {
	s := d.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}
