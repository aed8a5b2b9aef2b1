package sl2hash

import (
	"fmt"

	"github.com/Davincible/sl2hash/pkg/crypto/sl2"
)

type parseConfig struct {
	checkDeterminant bool
}

// ParseOption adjusts how Parse validates its input.
type ParseOption func(*parseConfig)

// WithoutDeterminantCheck accepts well-formed text whose matrix does not
// have determinant one.
func WithoutDeterminantCheck() ParseOption {
	return func(c *parseConfig) {
		c.checkDeterminant = false
	}
}

// WithDeterminantCheck sets whether the determinant is validated.
func WithDeterminantCheck(check bool) ParseOption {
	return func(c *parseConfig) {
		c.checkDeterminant = check
	}
}

// Parse decodes the canonical text form. It reports false for input of the
// wrong length, non-hex characters, a set padding bit, or (unless disabled)
// a determinant other than one.
func Parse(s string, opts ...ParseOption) (Hash, bool) {
	h, err := ParseStrict(s, opts...)
	if err != nil {
		return Hash{}, false
	}
	return h, true
}

// ParseStrict is Parse with the failure reason.
func ParseStrict(s string, opts ...ParseOption) (Hash, error) {
	cfg := parseConfig{checkDeterminant: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	m, err := sl2.ParseHex(s, cfg.checkDeterminant)
	if err != nil {
		return Hash{}, fmt.Errorf("invalid hash: %w", err)
	}
	return Hash{m: m}, nil
}
