package gf2p127

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
)

const (
	// HexLen is the length of the canonical hex form of an element
	HexLen = 32
	// ByteLen is the length of the big-endian binary form of an element
	ByteLen = 16
)

var (
	ErrLength   = errors.New("invalid encoded length")
	ErrHex      = errors.New("invalid hex characters")
	ErrOverflow = errors.New("value has the x^127 bit set")
)

// Hex returns the 32-digit lowercase big-endian hex form, high limb first.
func (e Element) Hex() string {
	var buf [ByteLen]byte
	e.putBytes(buf[:])
	return hex.EncodeToString(buf[:])
}

// ParseHex is the inverse of Hex. Only the canonical lowercase form is
// accepted, so every element has exactly one text.
func ParseHex(s string) (Element, error) {
	if len(s) != HexLen {
		return Element{}, fmt.Errorf("%w: expected %d hex characters, got %d", ErrLength, HexLen, len(s))
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return Element{}, fmt.Errorf("%w: %q at offset %d is not a lowercase hex digit", ErrHex, c, i)
		}
	}

	var buf [ByteLen]byte
	if _, err := hex.Decode(buf[:], []byte(s)); err != nil {
		return Element{}, fmt.Errorf("%w: %v", ErrHex, err)
	}

	return FromBytes(buf[:])
}

// Bytes returns the 16-byte big-endian form of e.
func (e Element) Bytes() []byte {
	b := make([]byte, ByteLen)
	e.putBytes(b)
	return b
}

// AppendBytes appends the 16-byte big-endian form of e to b.
func (e Element) AppendBytes(b []byte) []byte {
	b = binary.BigEndian.AppendUint64(b, e.hi)
	return binary.BigEndian.AppendUint64(b, e.lo)
}

func (e Element) putBytes(b []byte) {
	binary.BigEndian.PutUint64(b[0:8], e.hi)
	binary.BigEndian.PutUint64(b[8:16], e.lo)
}

// FromBytes decodes a 16-byte big-endian element.
func FromBytes(b []byte) (Element, error) {
	if len(b) != ByteLen {
		return Element{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrLength, ByteLen, len(b))
	}

	hi := binary.BigEndian.Uint64(b[0:8])
	lo := binary.BigEndian.Uint64(b[8:16])
	if hi>>63 != 0 {
		return Element{}, ErrOverflow
	}

	return Element{lo: lo, hi: hi}, nil
}
