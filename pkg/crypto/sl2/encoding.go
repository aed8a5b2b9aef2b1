package sl2

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Davincible/sl2hash/pkg/crypto/gf2p127"
)

const (
	// HexLen is the length of the canonical text form of a matrix
	HexLen = 4 * gf2p127.HexLen
	// ByteLen is the length of the binary form of a matrix
	ByteLen = 4 * gf2p127.ByteLen
)

var ErrDeterminant = errors.New("determinant is not one")

var entryNames = [4]string{"A", "B", "C", "D"}

// Hex returns the entries A, B, C, D as four 32-digit lowercase hex fields.
func (m Matrix) Hex() string {
	var sb strings.Builder
	sb.Grow(HexLen)
	for _, e := range m.entries() {
		sb.WriteString(e.Hex())
	}
	return sb.String()
}

// ParseHex decodes the output of Hex. With strict set, a matrix whose
// determinant is not one is rejected with ErrDeterminant.
func ParseHex(s string, strict bool) (Matrix, error) {
	if len(s) != HexLen {
		return Matrix{}, fmt.Errorf("%w: expected %d hex characters, got %d", gf2p127.ErrLength, HexLen, len(s))
	}

	var entries [4]gf2p127.Element
	for i := range entries {
		e, err := gf2p127.ParseHex(s[i*gf2p127.HexLen : (i+1)*gf2p127.HexLen])
		if err != nil {
			return Matrix{}, fmt.Errorf("entry %s: %w", entryNames[i], err)
		}
		entries[i] = e
	}

	return fromEntries(entries, strict)
}

// Bytes returns the 64-byte form: A, B, C, D, each 16 bytes big-endian.
func (m Matrix) Bytes() []byte {
	return m.AppendBinary(make([]byte, 0, ByteLen))
}

// AppendBinary appends the 64-byte form of m to b.
func (m Matrix) AppendBinary(b []byte) []byte {
	for _, e := range m.entries() {
		b = e.AppendBytes(b)
	}
	return b
}

// FromBytes decodes the output of Bytes; strict as in ParseHex.
func FromBytes(b []byte, strict bool) (Matrix, error) {
	if len(b) != ByteLen {
		return Matrix{}, fmt.Errorf("%w: expected %d bytes, got %d", gf2p127.ErrLength, ByteLen, len(b))
	}

	var entries [4]gf2p127.Element
	for i := range entries {
		e, err := gf2p127.FromBytes(b[i*gf2p127.ByteLen : (i+1)*gf2p127.ByteLen])
		if err != nil {
			return Matrix{}, fmt.Errorf("entry %s: %w", entryNames[i], err)
		}
		entries[i] = e
	}

	return fromEntries(entries, strict)
}

func fromEntries(e [4]gf2p127.Element, strict bool) (Matrix, error) {
	m := Matrix{A: e[0], B: e[1], C: e[2], D: e[3]}
	if strict && !m.IsSL2() {
		return Matrix{}, ErrDeterminant
	}
	return m, nil
}

func (m Matrix) entries() [4]gf2p127.Element {
	return [4]gf2p127.Element{m.A, m.B, m.C, m.D}
}
