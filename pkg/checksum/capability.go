package checksum

import "sync"

// Capabilities describes which polynomials the running CPU computes with
// dedicated instructions.
type Capabilities struct {
	HasIEEE       bool
	HasCastagnoli bool
}

// probe runs the platform query once; every later call returns the cached value.
var probe = sync.OnceValue(detect)

// DetectCapabilities returns the process-wide capability probe result.
func DetectCapabilities() Capabilities {
	return probe()
}
