package sl2

import "github.com/Davincible/sl2hash/pkg/crypto/gf2p127"

// Generators of the construction, G_b = [[x, 1 + b·x], [1, b]]:
//
//	G0 = | x  1 |    G1 = | x  x+1 |
//	     | 1  0 |         | 1   1  |
var generators = [2]smallMatrix{
	{a: gf2p127.SmallX, b: gf2p127.SmallOne, c: gf2p127.SmallOne, d: gf2p127.SmallZero},
	{a: gf2p127.SmallX, b: gf2p127.SmallXPlusOne, c: gf2p127.SmallOne, d: gf2p127.SmallOne},
}

// Inverses of the generators, [[b, 1 + b·x], [1, x]].
var inverseGenerators = [2]smallMatrix{
	{a: gf2p127.SmallZero, b: gf2p127.SmallOne, c: gf2p127.SmallOne, d: gf2p127.SmallX},
	{a: gf2p127.SmallOne, b: gf2p127.SmallXPlusOne, c: gf2p127.SmallOne, d: gf2p127.SmallX},
}

// Generator returns G0 or G1 as a full matrix.
func Generator(bit bool) Matrix {
	return generators[b2i(bit)].matrix()
}

// MulBitRight returns m·G_bit.
func (m Matrix) MulBitRight(bit bool) Matrix {
	return m.mulSmallRight(generators[b2i(bit)])
}

// MulBitLeft returns G_bit·m.
func (m Matrix) MulBitLeft(bit bool) Matrix {
	return m.mulSmallLeft(generators[b2i(bit)])
}

// MulInverseBitRight returns m·G_bit⁻¹.
func (m Matrix) MulInverseBitRight(bit bool) Matrix {
	return m.mulSmallRight(inverseGenerators[b2i(bit)])
}

// MulInverseBitLeft returns G_bit⁻¹·m.
func (m Matrix) MulInverseBitLeft(bit bool) Matrix {
	return m.mulSmallLeft(inverseGenerators[b2i(bit)])
}

func b2i(bit bool) int {
	if bit {
		return 1
	}
	return 0
}
