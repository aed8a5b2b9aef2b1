package cli

import (
	"fmt"

	"github.com/Davincible/sl2hash/internal/validation"
	"github.com/Davincible/sl2hash/pkg/crypto/gf2p127"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type EntryInfo struct {
	Name       string `json:"name"`
	Hex        string `json:"hex"`
	Degree     int    `json:"degree"`
	Polynomial string `json:"polynomial"`
}

type InspectResult struct {
	Entries     []EntryInfo `json:"entries"`
	Determinant string      `json:"determinant"`
}

func inspectEntries(names []string, elems []gf2p127.Element) []EntryInfo {
	out := make([]EntryInfo, len(elems))
	for i, e := range elems {
		out[i] = EntryInfo{
			Name:       names[i],
			Hex:        e.Hex(),
			Degree:     e.Degree(),
			Polynomial: e.String(),
		}
	}
	return out
}

func NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <hash>",
		Short: "Show the matrix entries of a hash",
		Long: `Show the four entries of the 2x2 matrix behind a hash,

    | A B |
    | C D |

each as hex and as a polynomial over GF(2) modulo x^127 + x^63 + 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := validation.ParseHash(args[0], false)
			if err != nil {
				return err
			}

			m := h.Matrix()
			result := InspectResult{
				Entries: inspectEntries(
					[]string{"A", "B", "C", "D"},
					[]gf2p127.Element{m.A, m.B, m.C, m.D},
				),
				Determinant: m.Determinant().String(),
			}

			if jsonOutput(cmd) {
				return printJSON(cmd.OutOrStdout(), result)
			}

			w := cmd.OutOrStdout()
			cyan := color.New(color.FgCyan, color.Bold)
			for _, e := range result.Entries {
				cyan.Fprintf(w, "%s ", e.Name)
				fmt.Fprintf(w, "%s  (degree %d)\n", e.Hex, e.Degree)
				fmt.Fprintf(w, "  %s\n", e.Polynomial)
			}
			fmt.Fprintf(w, "\nDeterminant (AD + BC): %s\n", result.Determinant)
			return nil
		},
	}

	return cmd
}
