package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Davincible/sl2hash/pkg/crypto/sl2hash"
)

var (
	hexPattern = regexp.MustCompile(`^[0-9a-f]+$`)
	sumPattern = regexp.MustCompile(`^([0-9a-f]+)\s+\*?(.+)$`)
)

func ValidateHex(input string) error {
	input = strings.TrimSpace(input)
	if len(input) == 0 {
		return fmt.Errorf("hex string cannot be empty")
	}

	if len(input)%2 != 0 {
		return fmt.Errorf("hex string must have even length")
	}

	if !hexPattern.MatchString(input) {
		return fmt.Errorf("invalid hex characters (expected lowercase 0-9a-f)")
	}

	return nil
}

// ValidateHash checks the shape of a serialized hash. It does not check the
// determinant; sl2hash.ParseStrict does that.
func ValidateHash(input string) error {
	input = strings.TrimSpace(input)
	if err := ValidateHex(input); err != nil {
		return fmt.Errorf("invalid hash format: %w", err)
	}

	if len(input) != sl2hash.TextSize {
		return fmt.Errorf("hash must be %d hex characters (got %d)", sl2hash.TextSize, len(input))
	}

	return nil
}

// ParseHash validates the shape and then parses the hash.
func ParseHash(input string, strict bool) (sl2hash.Hash, error) {
	input = strings.TrimSpace(input)
	if err := ValidateHash(input); err != nil {
		return sl2hash.Hash{}, err
	}

	return sl2hash.ParseStrict(input, sl2hash.WithDeterminantCheck(strict))
}

// ParseSumLine splits a "<hash>  <name>" line as written by the hash command.
func ParseSumLine(line string) (string, string, error) {
	m := sumPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", "", fmt.Errorf("malformed line: expected '<hash>  <name>'")
	}

	if err := ValidateHash(m[1]); err != nil {
		return "", "", err
	}

	return m[1], m[2], nil
}

func ValidateHashParams(chunkSize, workers int) error {
	if chunkSize < 0 {
		return fmt.Errorf("chunk size cannot be negative (got %d)", chunkSize)
	}

	if workers < 0 || workers > 1024 {
		return fmt.Errorf("workers must be between 0 and 1024 (got %d)", workers)
	}

	return nil
}

func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)

	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")

	lines := strings.Split(input, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	return strings.Join(lines, "\n")
}
