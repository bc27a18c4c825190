package checksum

import "strings"

// Strategy selects how an Engine folds bulk data.
type Strategy uint8

const (
	// Auto uses Hardware for each polynomial the CPU accelerates and Generic otherwise.
	Auto Strategy = iota
	// Generic is the portable slicing-by-8 implementation.
	Generic
	// Hardware delegates to github.com/klauspost/crc32 regardless of the probe.
	Hardware
)

// String returns the string representation of a Strategy.
func (s Strategy) String() string {
	switch s {
	case Auto:
		return "auto"
	case Generic:
		return "generic"
	case Hardware:
		return "hardware"
	default:
		return "unknown"
	}
}

// ParseStrategy parses a strategy name. The empty string parses as Auto.
func ParseStrategy(s string) (Strategy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, true
	case "generic", "software":
		return Generic, true
	case "hardware":
		return Hardware, true
	default:
		return Auto, false
	}
}
