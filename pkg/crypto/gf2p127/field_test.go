package gf2p127

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomElements(n int) []Element {
	rng := rand.New(rand.NewPCG(127, 63))
	out := make([]Element, n)
	for i := range out {
		out[i] = FromLimbs(rng.Uint64(), rng.Uint64())
	}
	return out
}

// monomial returns x^k for k < 127.
func monomial(k int) Element {
	if k < 64 {
		return Element{lo: 1 << uint(k)}
	}
	return Element{hi: 1 << uint(k-64)}
}

// mulByShifting multiplies bit by bit using only MulX and Add.
func mulByShifting(a, b Element) Element {
	var acc Element
	for i := 0; i < Degree; i++ {
		if b.bit(i) {
			acc = acc.Add(a)
		}
		a = a.MulX()
	}
	return acc
}

func TestAdd(t *testing.T) {
	for _, a := range randomElements(32) {
		assert.Equal(t, Zero(), a.Add(a))
		assert.Equal(t, a, a.Add(Zero()))
	}

	elems := randomElements(3)
	a, b, c := elems[0], elems[1], elems[2]
	assert.Equal(t, a.Add(b), b.Add(a))
	assert.Equal(t, a.Add(b).Add(c), a.Add(b.Add(c)))
}

func TestMulX(t *testing.T) {
	tests := []struct {
		name string
		in   Element
		want Element
	}{
		{"One", One(), X()},
		{"Limb carry", monomial(63), monomial(64)},
		{"Wraps x^126", monomial(126), Element{lo: 1<<63 | 1}},
		{"Wraps with low bits", monomial(126).Add(One()), Element{lo: 1<<63 | 1 | 2}},
		{"Zero", Zero(), Zero()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.MulX())
		})
	}
}

func TestMulPair(t *testing.T) {
	for _, a := range randomElements(32) {
		assert.Equal(t, Zero(), MulPair(a, false, false))
		assert.Equal(t, a, MulPair(a, false, true))
		assert.Equal(t, a.Mul(X()), MulPair(a, true, false))
		assert.Equal(t, a.Mul(FromUint64(3)), MulPair(a, true, true))

		assert.Equal(t, MulPair(a, true, true), a.MulSmall(SmallXPlusOne))
		assert.Equal(t, MulPair(a, true, false), a.MulSmall(SmallX))
		assert.Equal(t, a, a.MulSmall(SmallOne))
		assert.Equal(t, Zero(), a.MulSmall(SmallZero))
	}
}

func TestMulReduction(t *testing.T) {
	tests := []struct {
		name string
		a, b Element
		want Element
	}{
		{
			name: "x^63 * x^64 = x^63 + 1",
			a:    monomial(63),
			b:    monomial(64),
			want: monomial(63).Add(One()),
		},
		{
			name: "x^126 * x = x^63 + 1",
			a:    monomial(126),
			b:    X(),
			want: monomial(63).Add(One()),
		},
		{
			name: "x^126 * x^126 = x^125 + x^124 + x^61",
			a:    monomial(126),
			b:    monomial(126),
			want: monomial(125).Add(monomial(124)).Add(monomial(61)),
		},
		{
			name: "small operands stay unreduced",
			a:    FromUint64(0b1011),
			b:    FromUint64(0b110),
			want: FromUint64(0b111010),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Mul(tt.b)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, tt.b.Mul(tt.a))
		})
	}
}

func TestMulMatchesShiftAndAdd(t *testing.T) {
	elems := randomElements(64)
	for i := 0; i+1 < len(elems); i += 2 {
		a, b := elems[i], elems[i+1]
		got := a.Mul(b)
		assert.Equal(t, mulByShifting(a, b), got)

		hi, _ := got.Limbs()
		assert.Zero(t, hi>>63, "product must be reduced below x^127")
	}
}

func TestMulFieldLaws(t *testing.T) {
	elems := randomElements(24)
	for i := 0; i+2 < len(elems); i += 3 {
		a, b, c := elems[i], elems[i+1], elems[i+2]

		assert.Equal(t, a, a.Mul(One()), "identity")
		assert.Equal(t, Zero(), a.Mul(Zero()), "annihilator")
		assert.Equal(t, a.Mul(b), b.Mul(a), "commutative")
		assert.Equal(t, a.Mul(b).Mul(c), a.Mul(b.Mul(c)), "associative")
		assert.Equal(t, a.Mul(b.Add(c)), a.Mul(b).Add(a.Mul(c)), "distributive")
	}
}

func TestFrobenius(t *testing.T) {
	// a^(2^127) = a in GF(2^127).
	for _, a := range randomElements(4) {
		p := a
		for i := 0; i < Degree; i++ {
			p = p.Square()
		}
		assert.Equal(t, a, p)
	}
}

func TestDegree(t *testing.T) {
	assert.Equal(t, -1, Zero().Degree())
	assert.Equal(t, 0, One().Degree())
	assert.Equal(t, 63, monomial(63).Degree())
	assert.Equal(t, 126, monomial(126).Degree())
}

func TestString(t *testing.T) {
	assert.Equal(t, "0", Zero().String())
	assert.Equal(t, "1 + x + x^64", One().Add(X()).Add(monomial(64)).String())
}

func TestHexRoundTrip(t *testing.T) {
	for _, a := range randomElements(16) {
		s := a.Hex()
		require.Len(t, s, HexLen)

		b, err := ParseHex(s)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}

	assert.Equal(t, "00000000000000000000000000000001", One().Hex())
	assert.Equal(t, "00000000000000010000000000000000", monomial(64).Hex())
}

func TestParseHexErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", ErrLength},
		{"Too short", "0123", ErrLength},
		{"Too long", "000000000000000000000000000000001", ErrLength},
		{"Non-hex", "0000000000000000000000000000000g", ErrHex},
		{"Padding bit", "80000000000000000000000000000000", ErrOverflow},
		{"Upper case", "7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF", ErrHex},
		{"Mixed case", "7fffffffffffffffffffffffffffffFf", ErrHex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHex(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	e, err := ParseHex("7fffffffffffffffffffffffffffffff")
	require.NoError(t, err)
	assert.Equal(t, 126, e.Degree())
}

func TestBytes(t *testing.T) {
	a := FromLimbs(0x0102030405060708, 0x090a0b0c0d0e0f10)
	b := a.Bytes()
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, b)
	assert.Equal(t, b, a.AppendBytes(nil))

	back, err := FromBytes(b)
	require.NoError(t, err)
	assert.Equal(t, a, back)

	_, err = FromBytes(b[:15])
	assert.ErrorIs(t, err, ErrLength)
}

func TestCapability(t *testing.T) {
	assert.Contains(t, []Backend{Generic, PCLMULQDQ, PMULL}, Capability())
	assert.NotEqual(t, "unknown", Capability().String())
	assert.Equal(t, haveNativeKernel && Capability() != Generic, Accelerated())
}

func TestClmul64(t *testing.T) {
	tests := []struct {
		name   string
		a, b   uint64
		lo, hi uint64
	}{
		{"zero", 0, 0xffffffffffffffff, 0, 0},
		{"one", 1, 0xdeadbeefcafebabe, 0xdeadbeefcafebabe, 0},
		{"x times x^63", 2, 1 << 63, 0, 1},
		{"x+1 squared", 3, 3, 5, 0},
		{"all ones squared", 0xffffffffffffffff, 0xffffffffffffffff, 0x5555555555555555, 0x5555555555555555},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := clmul64Generic(tt.a, tt.b)
			assert.Equal(t, tt.lo, lo)
			assert.Equal(t, tt.hi, hi)

			lo, hi = clmul64(tt.a, tt.b)
			assert.Equal(t, tt.lo, lo)
			assert.Equal(t, tt.hi, hi)
		})
	}
}

func TestNativeKernelMatchesGeneric(t *testing.T) {
	if !Accelerated() {
		t.Skipf("no hardware carry-less multiply in use (backend %s)", Capability())
	}

	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 1000; i++ {
		a, b := rng.Uint64(), rng.Uint64()
		lo, hi := clmul64Native(a, b)
		wantLo, wantHi := clmul64Generic(a, b)
		require.Equal(t, wantLo, lo, "a=%#x b=%#x", a, b)
		require.Equal(t, wantHi, hi, "a=%#x b=%#x", a, b)
	}

	elems := randomElements(32)
	native := make([]Element, 0, len(elems)*len(elems))
	for _, a := range elems {
		for _, b := range elems {
			native = append(native, Mul(a, b))
		}
	}

	useNative = false
	t.Cleanup(func() { useNative = true })

	i := 0
	for _, a := range elems {
		for _, b := range elems {
			assert.Equal(t, native[i], Mul(a, b))
			i++
		}
	}
}
