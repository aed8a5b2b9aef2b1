package cli

import (
	"fmt"

	"github.com/Davincible/sl2hash/internal/validation"
	"github.com/Davincible/sl2hash/pkg/crypto/sl2hash"
	"github.com/spf13/cobra"
)

// extendOp is one of the four ways to grow or shrink a hash by known data.
type extendOp struct {
	name  string
	short string
	long  string
	apply func(h sl2hash.Hash, data []byte) sl2hash.Hash
}

var (
	appendOp = extendOp{
		name:  "append",
		short: "Extend a hash by data appended to its message",
		long:  "Given the hash of m and data d, print the hash of m ++ d.",
		apply: func(h sl2hash.Hash, data []byte) sl2hash.Hash { return h.Append(data) },
	}
	prependOp = extendOp{
		name:  "prepend",
		short: "Extend a hash by data prepended to its message",
		long:  "Given the hash of m and data d, print the hash of d ++ m.",
		apply: func(h sl2hash.Hash, data []byte) sl2hash.Hash { return sl2hash.Prepend(data, h) },
	}
	unappendOp = extendOp{
		name:  "unappend",
		short: "Remove a known suffix from a hash",
		long:  "Given the hash of m ++ d and data d, print the hash of m.",
		apply: func(h sl2hash.Hash, data []byte) sl2hash.Hash { return h.Unappend(data) },
	}
	unprependOp = extendOp{
		name:  "unprepend",
		short: "Remove a known prefix from a hash",
		long:  "Given the hash of d ++ m and data d, print the hash of m.",
		apply: func(h sl2hash.Hash, data []byte) sl2hash.Hash { return sl2hash.Unprepend(data, h) },
	}
)

type ExtendResult struct {
	Operation string       `json:"operation"`
	Input     sl2hash.Hash `json:"input"`
	Bytes     int          `json:"bytes"`
	Hash      sl2hash.Hash `json:"hash"`
}

func NewAppendCommand() *cobra.Command    { return newExtendCommand(appendOp) }
func NewPrependCommand() *cobra.Command   { return newExtendCommand(prependOp) }
func NewUnappendCommand() *cobra.Command  { return newExtendCommand(unappendOp) }
func NewUnprependCommand() *cobra.Command { return newExtendCommand(unprependOp) }

func newExtendCommand(op extendOp) *cobra.Command {
	var (
		literal    string
		decompress string
	)

	cmd := &cobra.Command{
		Use:   op.name + " <hash> [file]",
		Short: op.short,
		Long: op.long + `

The data is read from the file, from stdin when no file (or '-') is
given, or taken from --string.`,
		Example: fmt.Sprintf(`  sl2hash %s <hash> extra.bin
  sl2hash %s <hash> --string "suffix"`, op.name, op.name),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := settingsFrom(cmd)
			if !cmd.Flags().Changed("decompress") {
				decompress = settings.Defaults.Decompress
			}

			h, err := validation.ParseHash(args[0], settings.Defaults.Strict)
			if err != nil {
				return err
			}

			var lit *string
			if cmd.Flags().Changed("string") {
				if len(args) > 1 {
					return fmt.Errorf("--string cannot be combined with a file argument")
				}
				lit = &literal
			}

			name := stdinName
			if len(args) > 1 {
				name = args[1]
			}

			data, err := readInput(lit, name, cmd.InOrStdin(), decompress)
			if err != nil {
				return err
			}

			result := ExtendResult{
				Operation: op.name,
				Input:     h,
				Bytes:     len(data),
				Hash:      op.apply(h, data),
			}

			if jsonOutput(cmd) {
				return printJSON(cmd.OutOrStdout(), result)
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Hash)
			return nil
		},
	}

	cmd.Flags().StringVarP(&literal, "string", "s", "", "Use this string as the data")
	cmd.Flags().StringVar(&decompress, "decompress", "none", "Decompress input first: none, auto, zstd, lz4, gzip")

	return cmd
}
