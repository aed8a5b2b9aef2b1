// Package sl2hash provides a composable hash of byte strings into SL2 over
// GF(2^127).
//
// The hash of a concatenation is the product of the hashes of its parts:
//
//	Sum(append(m1, m2...)) == Combine(Sum(m1), Sum(m2))
//
// so inputs can be hashed in pieces, in any grouping, and combined later.
// Order matters: the group is not commutative. The hash is unkeyed and
// provides no secrecy.
package sl2hash

import (
	"encoding"
	"fmt"

	"github.com/Davincible/sl2hash/pkg/crypto/sl2"
)

const (
	// Size is the length of the binary form of a Hash
	Size = sl2.ByteLen
	// TextSize is the length of the canonical text form of a Hash
	TextSize = sl2.HexLen
)

// Hash is an element of SL2(GF(2^127)). It is a value type; every operation
// returns a new Hash and leaves its operands untouched.
//
// The zero value is not a valid hash. Use Identity or Sum.
type Hash struct {
	m sl2.Matrix
}

var (
	_ encoding.TextMarshaler     = Hash{}
	_ encoding.TextUnmarshaler   = (*Hash)(nil)
	_ encoding.BinaryMarshaler   = Hash{}
	_ encoding.BinaryUnmarshaler = (*Hash)(nil)
	_ fmt.Stringer               = Hash{}
)

// Identity returns the hash of the empty string, the unit of Combine.
func Identity() Hash {
	return Hash{m: sl2.Identity()}
}

// Sum returns the hash of p.
func Sum(p []byte) Hash {
	return Identity().Append(p)
}

// FromMatrix wraps m. It does not check the determinant.
func FromMatrix(m sl2.Matrix) Hash {
	return Hash{m: m}
}

// Matrix returns the underlying group element.
func (h Hash) Matrix() sl2.Matrix {
	return h.m
}

// Append returns the hash of the message of h followed by p.
func (h Hash) Append(p []byte) Hash {
	return Hash{m: h.m.AppendBytes(p)}
}

// Prepend returns the hash of p followed by the message of h.
func Prepend(p []byte, h Hash) Hash {
	return Hash{m: h.m.PrependBytes(p)}
}

// Unappend removes a known suffix p from h.
func (h Hash) Unappend(p []byte) Hash {
	return Hash{m: h.m.UnappendBytes(p)}
}

// Unprepend removes a known prefix p from h.
func Unprepend(p []byte, h Hash) Hash {
	return Hash{m: h.m.UnprependBytes(p)}
}

// Combine returns the hash of the concatenation of the messages of a and b.
func Combine(a, b Hash) Hash {
	return Hash{m: sl2.Mul(a.m, b.m)}
}

// Concat is Combine(h, o).
func (h Hash) Concat(o Hash) Hash {
	return Combine(h, o)
}

// CombineAll combines hashes in order; it returns Identity for no input.
func CombineAll(hs ...Hash) Hash {
	acc := Identity()
	for _, h := range hs {
		acc = Combine(acc, h)
	}
	return acc
}

// FoldAppend appends each chunk to h in order.
func FoldAppend(h Hash, chunks [][]byte) Hash {
	for _, c := range chunks {
		h = h.Append(c)
	}
	return h
}

// FoldPrepend prepends the chunks to h so that the result hashes
// chunks[0] ++ ... ++ chunks[n-1] ++ message(h).
func FoldPrepend(chunks [][]byte, h Hash) Hash {
	for i := len(chunks) - 1; i >= 0; i-- {
		h = Prepend(chunks[i], h)
	}
	return h
}

// Inverse returns the hash that cancels h under Combine.
func (h Hash) Inverse() Hash {
	return Hash{m: h.m.Inverse()}
}

func (h Hash) Equal(o Hash) bool {
	return h.m.Equal(o.m)
}

// Valid reports whether h has determinant one.
func (h Hash) Valid() bool {
	return h.m.IsSL2()
}

// String returns the canonical 128-character lowercase hex form.
func (h Hash) String() string {
	return h.m.Hex()
}

// Bytes returns the 64-byte binary form.
func (h Hash) Bytes() []byte {
	return h.m.Bytes()
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.m.Hex()), nil
}

// UnmarshalText parses the canonical text form, validating the determinant.
func (h *Hash) UnmarshalText(text []byte) error {
	m, err := sl2.ParseHex(string(text), true)
	if err != nil {
		return fmt.Errorf("invalid hash: %w", err)
	}
	h.m = m
	return nil
}

func (h Hash) MarshalBinary() ([]byte, error) {
	return h.m.Bytes(), nil
}

// UnmarshalBinary parses the 64-byte form, validating the determinant.
func (h *Hash) UnmarshalBinary(data []byte) error {
	m, err := sl2.FromBytes(data, true)
	if err != nil {
		return fmt.Errorf("invalid hash: %w", err)
	}
	h.m = m
	return nil
}
