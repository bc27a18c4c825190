//go:build arm64

package checksum

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Every Apple silicon core has the CRC32 extension even where HWCAP is unavailable.
func detect() Capabilities {
	has := cpu.ARM64.HasCRC32 || runtime.GOOS == "darwin"
	return Capabilities{HasIEEE: has, HasCastagnoli: has}
}
