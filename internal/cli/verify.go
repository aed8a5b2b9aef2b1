package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Davincible/sl2hash/internal/validation"
	"github.com/Davincible/sl2hash/pkg/crypto/sl2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type VerifyResult struct {
	Valid         bool   `json:"valid"`
	WellFormed    bool   `json:"well_formed"`
	DeterminantOK bool   `json:"determinant_ok"`
	Error         string `json:"error,omitempty"`
}

var errInvalidHash = errors.New("hash is not valid")

func verifyHash(input string) VerifyResult {
	if err := validation.ValidateHash(input); err != nil {
		return VerifyResult{Error: err.Error()}
	}

	h, err := validation.ParseHash(input, false)
	if err != nil {
		return VerifyResult{Error: err.Error()}
	}

	result := VerifyResult{WellFormed: true, DeterminantOK: h.Valid()}
	if !result.DeterminantOK {
		result.Error = sl2.ErrDeterminant.Error()
	}
	result.Valid = result.WellFormed && result.DeterminantOK
	return result
}

func NewVerifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <hash>",
		Short: "Verify that a serialized hash is well formed",
		Long: `Verify that a hash has the canonical shape (128 hex characters, each
entry below x^127) and that its matrix has determinant one, as every hash
produced by this tool does.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.TrimSpace(args[0])
			result := verifyHash(input)

			if jsonOutput(cmd) {
				if err := printJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}
			} else {
				printVerifyText(cmd, result)
			}

			if !result.Valid {
				return errInvalidHash
			}
			return nil
		},
	}

	return cmd
}

func printVerifyText(cmd *cobra.Command, result VerifyResult) {
	w := cmd.OutOrStdout()
	green := color.New(color.FgGreen, color.Bold)
	red := color.New(color.FgRed, color.Bold)

	if result.Valid {
		green.Fprintln(w, "✓ Hash is valid")
		return
	}

	red.Fprintln(w, "✗ Hash is not valid")
	fmt.Fprintf(w, "  Well formed:     %v\n", result.WellFormed)
	fmt.Fprintf(w, "  Determinant one: %v\n", result.DeterminantOK)
	if result.Error != "" {
		fmt.Fprintf(w, "  Reason:          %s\n", result.Error)
	}
}
