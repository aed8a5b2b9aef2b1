//go:build amd64 && !purego

package gf2p127

const haveNativeKernel = true

// clmul64Native multiplies with PCLMULQDQ. Callers must check the CPU first.
func clmul64Native(a, b uint64) (lo, hi uint64)
