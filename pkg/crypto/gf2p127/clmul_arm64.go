//go:build arm64 && !purego

package gf2p127

const haveNativeKernel = true

// clmul64Native multiplies with PMULL. Callers must check the CPU first.
func clmul64Native(a, b uint64) (lo, hi uint64)
