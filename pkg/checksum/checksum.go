package checksum

import (
	"fmt"
	"sync"

	kcrc32 "github.com/klauspost/crc32"
)

type updateFunc func(prev uint32, p []byte) uint32

var (
	ieeeTable8       = sync.OnceValue(func() *slicing8Table { return slicingMakeTable(IEEE) })
	castagnoliTable8 = sync.OnceValue(func() *slicing8Table { return slicingMakeTable(Castagnoli) })

	ieeeHWTable       = sync.OnceValue(func() *kcrc32.Table { return kcrc32.MakeTable(kcrc32.IEEE) })
	castagnoliHWTable = sync.OnceValue(func() *kcrc32.Table { return kcrc32.MakeTable(kcrc32.Castagnoli) })
)

// Engine computes CRC-32 and CRC-32C with a fixed per-polynomial strategy.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	strategy     Strategy
	ieeeHW       bool
	castagnoliHW bool
	ieee         updateFunc
	castagnoli   updateFunc
}

var defaultEngine = sync.OnceValue(func() *Engine { return NewEngine(Auto) })

// NewEngine returns an Engine using s. Auto consults DetectCapabilities.
func NewEngine(s Strategy) *Engine {
	e := &Engine{strategy: s}

	switch s {
	case Hardware:
		e.ieeeHW, e.castagnoliHW = true, true
	case Generic:
	default:
		caps := DetectCapabilities()
		e.ieeeHW, e.castagnoliHW = caps.HasIEEE, caps.HasCastagnoli
	}

	if e.ieeeHW {
		tab := ieeeHWTable()
		e.ieee = func(prev uint32, p []byte) uint32 { return kcrc32.Update(prev, tab, p) }
	} else {
		tab := ieeeTable8()
		e.ieee = func(prev uint32, p []byte) uint32 { return genericUpdate(prev, tab, p) }
	}

	if e.castagnoliHW {
		tab := castagnoliHWTable()
		e.castagnoli = func(prev uint32, p []byte) uint32 { return kcrc32.Update(prev, tab, p) }
	} else {
		tab := castagnoliTable8()
		e.castagnoli = func(prev uint32, p []byte) uint32 { return genericUpdate(prev, tab, p) }
	}

	return e
}

// Default returns the process-wide Auto engine.
func Default() *Engine {
	return defaultEngine()
}

// Strategy returns the strategy the engine was built with.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Accelerated reports whether poly is folded by the hardware backend.
// Only IEEE and Castagnoli are recognised.
func (e *Engine) Accelerated(poly uint32) bool {
	switch poly {
	case IEEE:
		return e.ieeeHW
	case Castagnoli:
		return e.castagnoliHW
	default:
		return false
	}
}

// CRC32 folds data[:length] into prevCRC using the IEEE polynomial.
func (e *Engine) CRC32(data []byte, length int, prevCRC uint32) uint32 {
	return update(e.ieee, prevCRC, window(data, length))
}

// CRC32C folds data[:length] into prevCRC using the Castagnoli polynomial.
func (e *Engine) CRC32C(data []byte, length int, prevCRC uint32) uint32 {
	return update(e.castagnoli, prevCRC, window(data, length))
}

// UpdateIEEE folds all of p into prevCRC using the IEEE polynomial.
func (e *Engine) UpdateIEEE(prevCRC uint32, p []byte) uint32 {
	return update(e.ieee, prevCRC, p)
}

// UpdateCastagnoli folds all of p into prevCRC using the Castagnoli polynomial.
func (e *Engine) UpdateCastagnoli(prevCRC uint32, p []byte) uint32 {
	return update(e.castagnoli, prevCRC, p)
}

func update(fn updateFunc, prev uint32, p []byte) uint32 {
	if len(p) == 0 {
		return prev
	}
	return fn(prev, p)
}

// window bounds-checks the caller's length. A bad length is a programming
// error, so it panics rather than returning an error.
func window(data []byte, length int) []byte {
	if length < 0 || length > len(data) {
		panic(fmt.Sprintf("checksum: length %d out of range [0, %d]", length, len(data)))
	}
	return data[:length]
}

// CRC32 returns the IEEE CRC-32 of data[:length] continued from prevCRC.
// Pass 0 as prevCRC to start a new checksum.
func CRC32(data []byte, length int, prevCRC uint32) uint32 {
	return defaultEngine().CRC32(data, length, prevCRC)
}

// CRC32C returns the Castagnoli CRC-32C of data[:length] continued from prevCRC.
// Pass 0 as prevCRC to start a new checksum.
func CRC32C(data []byte, length int, prevCRC uint32) uint32 {
	return defaultEngine().CRC32C(data, length, prevCRC)
}

// ChecksumIEEE returns the IEEE CRC-32 of data.
func ChecksumIEEE(data []byte) uint32 {
	return defaultEngine().UpdateIEEE(0, data)
}

// ChecksumCastagnoli returns the CRC-32C of data.
func ChecksumCastagnoli(data []byte) uint32 {
	return defaultEngine().UpdateCastagnoli(0, data)
}
