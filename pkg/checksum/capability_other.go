//go:build !amd64 && !arm64

package checksum

func detect() Capabilities {
	return Capabilities{}
}
