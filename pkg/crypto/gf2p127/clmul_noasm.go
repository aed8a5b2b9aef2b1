//go:build !(amd64 || arm64) || purego

package gf2p127

const haveNativeKernel = false

func clmul64Native(a, b uint64) (lo, hi uint64) {
	return clmul64Generic(a, b)
}
