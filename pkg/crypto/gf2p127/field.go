// Package gf2p127 implements arithmetic in the binary field GF(2^127),
// represented as polynomials over GF(2) modulo x^127 + x^63 + 1.
package gf2p127

import (
	"math/bits"
	"strconv"
	"strings"
)

const (
	// Degree of the reduction polynomial x^127 + x^63 + 1
	Degree = 127

	// mask63 clears bit 63 of the high limb (the x^127 padding bit)
	mask63 = 1<<63 - 1
)

// Element is a field element. Bit i of lo is the coefficient of x^i and
// bit i of hi the coefficient of x^(64+i). The top bit of hi is always zero.
type Element struct {
	lo, hi uint64
}

// Small selects one of the four constants {0, 1, x, x+1}. Bit 1 is the
// coefficient of x, bit 0 the constant term.
type Small uint8

const (
	SmallZero Small = iota
	SmallOne
	SmallX
	SmallXPlusOne
)

func Zero() Element {
	return Element{}
}

func One() Element {
	return Element{lo: 1}
}

// X returns the primitive element x.
func X() Element {
	return Element{lo: 2}
}

// FromUint64 returns the element whose low 64 coefficients are the bits of n.
func FromUint64(n uint64) Element {
	return Element{lo: n}
}

// FromLimbs builds an element from its high and low limbs. The x^127 bit of
// hi is dropped.
func FromLimbs(hi, lo uint64) Element {
	return Element{lo: lo, hi: hi & mask63}
}

// Limbs returns the high and low 64-bit limbs.
func (e Element) Limbs() (hi, lo uint64) {
	return e.hi, e.lo
}

func (e Element) IsZero() bool {
	return e.lo == 0 && e.hi == 0
}

func (e Element) Equal(o Element) bool {
	return e.lo == o.lo && e.hi == o.hi
}

// Add returns e + o, which in characteristic 2 is also e - o.
func (e Element) Add(o Element) Element {
	return Element{lo: e.lo ^ o.lo, hi: e.hi ^ o.hi}
}

func Add(a, b Element) Element {
	return a.Add(b)
}

// MulX multiplies by x, folding x^127 back as x^63 + 1.
func (e Element) MulX() Element {
	hi := e.hi<<1 | e.lo>>63
	lo := e.lo << 1

	over := hi >> 63
	hi &= mask63
	lo ^= over<<63 | over

	return Element{lo: lo, hi: hi}
}

// MulPair multiplies e by the constant hi·x + lo.
func MulPair(e Element, hi, lo bool) Element {
	switch {
	case hi && lo:
		return e.Add(e.MulX())
	case hi:
		return e.MulX()
	case lo:
		return e
	default:
		return Element{}
	}
}

// MulSmall multiplies e by one of the constants {0, 1, x, x+1}.
func (e Element) MulSmall(k Small) Element {
	return MulPair(e, k&SmallX != 0, k&SmallOne != 0)
}

// Mul returns the product of e and o. The 254-bit carry-less product is
// formed with one level of Karatsuba and reduced with x^127 = x^63 + 1.
func (e Element) Mul(o Element) Element {
	l0, l1 := clmul64(e.lo, o.lo)
	h0, h1 := clmul64(e.hi, o.hi)
	m0, m1 := clmul64(e.lo^e.hi, o.lo^o.hi)
	m0 ^= l0 ^ h0
	m1 ^= l1 ^ h1

	p0 := l0
	p1 := l1 ^ m0
	p2 := h0 ^ m1
	p3 := h1

	return reduce(p0, p1, p2, p3)
}

func Mul(a, b Element) Element {
	return a.Mul(b)
}

// Square returns e·e.
func (e Element) Square() Element {
	return e.Mul(e)
}

// reduce folds a product of degree < 253 (p3 < 2^61) into a field element.
//
// t = p >> 127 is folded in as t·x^63 + t. The part of t·x^63 at or above
// x^127 is t >> 64, which has degree < 62, so a second fold finishes.
func reduce(p0, p1, p2, p3 uint64) Element {
	t0 := p1>>63 | p2<<1
	t1 := p2>>63 | p3<<1

	lo := p0 ^ t0 ^ t0<<63 ^ t1 ^ t1<<63
	hi := (p1 & mask63) ^ t1 ^ t0>>1 ^ t1>>1

	return Element{lo: lo, hi: hi}
}

// Degree returns the degree of e as a polynomial, or -1 for zero.
func (e Element) Degree() int {
	if e.hi != 0 {
		return 127 - bits.LeadingZeros64(e.hi)
	}
	return 63 - bits.LeadingZeros64(e.lo)
}

// String renders e as a polynomial in x, lowest degree first.
func (e Element) String() string {
	if e.IsZero() {
		return "0"
	}

	var terms []string
	for i := 0; i < Degree; i++ {
		if !e.bit(i) {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, "x^"+strconv.Itoa(i))
		}
	}
	return strings.Join(terms, " + ")
}

func (e Element) bit(i int) bool {
	if i < 64 {
		return e.lo>>uint(i)&1 == 1
	}
	return e.hi>>uint(i-64)&1 == 1
}
