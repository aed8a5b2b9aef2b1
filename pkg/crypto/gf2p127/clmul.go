package gf2p127

// clmul64 returns the 128-bit carry-less product of a and b as (lo, hi),
// on the hardware kernel when one is active.
func clmul64(a, b uint64) (lo, hi uint64) {
	if useNative {
		return clmul64Native(a, b)
	}
	return clmul64Generic(a, b)
}

// clmul64Generic is the schoolbook shift-and-XOR multiply. The mask keeps
// the loop free of data-dependent branches.
func clmul64Generic(a, b uint64) (lo, hi uint64) {
	for i := uint(0); i < 64; i++ {
		mask := -(b >> i & 1)
		lo ^= (a << i) & mask
		if i > 0 {
			hi ^= (a >> (64 - i)) & mask
		}
	}
	return lo, hi
}
