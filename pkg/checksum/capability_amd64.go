//go:build amd64

package checksum

import "golang.org/x/sys/cpu"

func detect() Capabilities {
	return Capabilities{
		HasIEEE:       cpu.X86.HasSSE41 && cpu.X86.HasPCLMULQDQ,
		HasCastagnoli: cpu.X86.HasSSE42,
	}
}
