package sl2hash

import (
	"hash"
	"io"
)

// Digest accumulates a Hash from written bytes.
type Digest struct {
	start Hash
	h     Hash
}

var (
	_ hash.Hash       = (*Digest)(nil)
	_ io.StringWriter = (*Digest)(nil)
)

// New returns a Digest at the identity.
func New() *Digest {
	return NewFrom(Identity())
}

// NewFrom returns a Digest that continues from h. Reset returns it to h.
func NewFrom(h Hash) *Digest {
	return &Digest{start: h, h: h}
}

// Write never returns an error.
func (d *Digest) Write(p []byte) (int, error) {
	d.h = d.h.Append(p)
	return len(p), nil
}

func (d *Digest) WriteString(s string) (int, error) {
	return d.Write([]byte(s))
}

// Sum appends the 64-byte binary form of the current hash to b.
func (d *Digest) Sum(b []byte) []byte {
	return d.h.m.AppendBinary(b)
}

// Reset restores the hash the Digest was created with.
func (d *Digest) Reset() {
	d.h = d.start
}

func (d *Digest) Size() int {
	return Size
}

// BlockSize is 1: any write length is processed without buffering.
func (d *Digest) BlockSize() int {
	return 1
}

// Hash returns the current value.
func (d *Digest) Hash() Hash {
	return d.h
}
