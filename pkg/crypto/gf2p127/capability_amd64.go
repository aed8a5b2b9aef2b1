//go:build amd64

package gf2p127

import "golang.org/x/sys/cpu"

func init() {
	hasPCLMULQDQ = cpu.X86.HasPCLMULQDQ
	initCapabilities()
}
