//go:build arm64

package gf2p127

import "golang.org/x/sys/cpu"

func init() {
	hasPMULL = cpu.ARM64.HasPMULL
	initCapabilities()
}
