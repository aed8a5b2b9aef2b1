package gf2p127

import (
	"os"
	"strings"
)

// Backend names the carry-less multiply implementation available on this CPU.
type Backend uint8

const (
	// Generic is the portable shift-and-XOR multiply.
	Generic Backend = iota
	// PCLMULQDQ is the x86-64 carry-less multiply instruction.
	PCLMULQDQ
	// PMULL is the ARM64 polynomial multiply long instruction.
	PMULL
)

func (b Backend) String() string {
	switch b {
	case Generic:
		return "generic"
	case PCLMULQDQ:
		return "pclmulqdq"
	case PMULL:
		return "pmull"
	default:
		return "unknown"
	}
}

// Set once by the platform init, read-only afterwards.
var (
	hasPCLMULQDQ bool
	hasPMULL     bool

	detected   Backend
	overridden bool
	useNative  bool
)

// initCapabilities runs from the platform init after feature detection.
// SL2HASH_CLMUL=generic forces the generic multiply.
func initCapabilities() {
	detected = Generic
	if hasPCLMULQDQ {
		detected = PCLMULQDQ
	}
	if hasPMULL {
		detected = PMULL
	}

	if v := strings.ToLower(strings.TrimSpace(os.Getenv("SL2HASH_CLMUL"))); v == "generic" {
		detected = Generic
		overridden = true
	}

	useNative = haveNativeKernel && detected != Generic
}

// Capability reports the hardware carry-less multiply found at startup.
func Capability() Backend {
	return detected
}

// Accelerated reports whether Mul runs on the hardware kernel. It is false
// when the CPU lacks the instruction, under SL2HASH_CLMUL=generic, and in
// purego builds. Results are identical either way.
func Accelerated() bool {
	return useNative
}

// CapabilityOverridden reports whether SL2HASH_CLMUL changed the detected backend.
func CapabilityOverridden() bool {
	return overridden
}
