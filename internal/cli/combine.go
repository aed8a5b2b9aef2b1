package cli

import (
	"fmt"

	"github.com/Davincible/sl2hash/pkg/crypto/sl2hash"
	"github.com/spf13/cobra"
)

type CombineResult struct {
	Inputs []sl2hash.Hash `json:"inputs"`
	Hash   sl2hash.Hash   `json:"hash"`
}

func NewCombineCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "combine [hashes...]",
		Short: "Combine hashes of consecutive parts into the hash of the whole",
		Long: `Combine hashes in the order given. If the hashes are of messages
m1, m2, ..., mn, the result is the hash of m1 ++ m2 ++ ... ++ mn.

Order matters: combining the same hashes in a different order gives a
different result. With no arguments, hashes are read one per line from
stdin. No hashes yields the hash of the empty message.`,
		Example: `  # Hash of "abcd" from the hashes of "ab" and "cd"
  sl2hash combine $(sl2hash hash -s ab | cut -d' ' -f1) $(sl2hash hash -s cd | cut -d' ' -f1)

  # Combine per-chunk hashes from a file
  sl2hash combine < parts.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("strict") {
				strict = settingsFrom(cmd).Defaults.Strict
			}

			hashes, err := readHashArgs(args, cmd.InOrStdin(), strict)
			if err != nil {
				return err
			}

			result := CombineResult{
				Inputs: hashes,
				Hash:   sl2hash.CombineAll(hashes...),
			}

			if jsonOutput(cmd) {
				return printJSON(cmd.OutOrStdout(), result)
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Hash)
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", true, "Reject hashes whose determinant is not one")

	return cmd
}
