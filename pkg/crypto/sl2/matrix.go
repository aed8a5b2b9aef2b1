// Package sl2 implements 2x2 matrices over GF(2^127) with determinant one,
// and the bitwise recurrence that maps byte strings into that group.
package sl2

import (
	"github.com/Davincible/sl2hash/pkg/crypto/gf2p127"
)

// Matrix is the 2x2 matrix
//
//	| A B |
//	| C D |
//
// Matrices built by this package satisfy AD + BC = 1.
type Matrix struct {
	A, B, C, D gf2p127.Element
}

// Identity returns the unit of the group.
func Identity() Matrix {
	return Matrix{
		A: gf2p127.One(),
		D: gf2p127.One(),
	}
}

func (m Matrix) Equal(n Matrix) bool {
	return m.A.Equal(n.A) && m.B.Equal(n.B) && m.C.Equal(n.C) && m.D.Equal(n.D)
}

// Mul returns the product m·n using general field multiplication.
func Mul(m, n Matrix) Matrix {
	return Matrix{
		A: m.A.Mul(n.A).Add(m.B.Mul(n.C)),
		B: m.A.Mul(n.B).Add(m.B.Mul(n.D)),
		C: m.C.Mul(n.A).Add(m.D.Mul(n.C)),
		D: m.C.Mul(n.B).Add(m.D.Mul(n.D)),
	}
}

// Mul returns m·n.
func (m Matrix) Mul(n Matrix) Matrix {
	return Mul(m, n)
}

// Determinant returns AD + BC, the determinant in characteristic 2.
func (m Matrix) Determinant() gf2p127.Element {
	return m.A.Mul(m.D).Add(m.B.Mul(m.C))
}

// IsSL2 reports whether m has determinant one.
func (m Matrix) IsSL2() bool {
	return m.Determinant().Equal(gf2p127.One())
}

// Inverse returns m⁻¹. For determinant one over characteristic 2 this is
// the adjugate [[D, B], [C, A]].
func (m Matrix) Inverse() Matrix {
	return Matrix{A: m.D, B: m.B, C: m.C, D: m.A}
}

// smallMatrix is a matrix whose entries are all in {0, 1, x, x+1}.
type smallMatrix struct {
	a, b, c, d gf2p127.Small
}

// mulSmallRight returns m·g.
func (m Matrix) mulSmallRight(g smallMatrix) Matrix {
	return Matrix{
		A: m.A.MulSmall(g.a).Add(m.B.MulSmall(g.c)),
		B: m.A.MulSmall(g.b).Add(m.B.MulSmall(g.d)),
		C: m.C.MulSmall(g.a).Add(m.D.MulSmall(g.c)),
		D: m.C.MulSmall(g.b).Add(m.D.MulSmall(g.d)),
	}
}

// mulSmallLeft returns g·m.
func (m Matrix) mulSmallLeft(g smallMatrix) Matrix {
	return Matrix{
		A: m.A.MulSmall(g.a).Add(m.C.MulSmall(g.b)),
		B: m.B.MulSmall(g.a).Add(m.D.MulSmall(g.b)),
		C: m.A.MulSmall(g.c).Add(m.C.MulSmall(g.d)),
		D: m.B.MulSmall(g.c).Add(m.D.MulSmall(g.d)),
	}
}

func (g smallMatrix) matrix() Matrix {
	one := gf2p127.One()
	return Matrix{
		A: one.MulSmall(g.a),
		B: one.MulSmall(g.b),
		C: one.MulSmall(g.c),
		D: one.MulSmall(g.d),
	}
}
