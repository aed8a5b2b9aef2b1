package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Davincible/sl2hash/internal/validation"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var errStdinInUse = errors.New("stdin is already used for the sum list")

type CheckResult struct {
	Name  string `json:"name"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func NewCheckCommand() *cobra.Command {
	var (
		parallelMode bool
		decompress   string
	)

	cmd := &cobra.Command{
		Use:   "check [sumfile]",
		Short: "Check files against a list of hashes",
		Long: `Read lines of the form '<hash>  <file>', as printed by 'sl2hash hash',
from the sum file (or stdin) and verify each file. Blank lines and lines
starting with '#' are ignored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := settingsFrom(cmd)
			opts := hashOptions{
				parallel:   settings.Defaults.Parallel,
				chunkSize:  settings.Defaults.ChunkSize,
				workers:    settings.Defaults.Workers,
				decompress: settings.Defaults.Decompress,
			}
			if cmd.Flags().Changed("parallel") {
				opts.parallel = parallelMode
			}
			if cmd.Flags().Changed("decompress") {
				opts.decompress = decompress
			}

			var in io.Reader = cmd.InOrStdin()
			sumFromStdin := len(args) == 0 || args[0] == stdinName
			if !sumFromStdin {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open sum file: %w", err)
				}
				defer f.Close()
				in = f
			}

			results, err := checkSums(cmd, in, sumFromStdin, opts)
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if !r.OK {
					failed++
				}
			}

			if jsonOutput(cmd) {
				if err := printJSON(cmd.OutOrStdout(), results); err != nil {
					return err
				}
			} else {
				printCheckText(cmd.OutOrStdout(), results)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d inputs did not match", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&parallelMode, "parallel", "P", false, "Hash chunks concurrently")
	cmd.Flags().StringVar(&decompress, "decompress", "none", "Decompress inputs first: none, auto, zstd, lz4, gzip")

	return cmd
}

// checkSums verifies each line of in. When in is stdin, entries naming
// stdin are reported as failures since the stream is already being read.
func checkSums(cmd *cobra.Command, in io.Reader, sumFromStdin bool, opts hashOptions) ([]CheckResult, error) {
	var results []CheckResult

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		want, name, err := validation.ParseSumLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		expected, err := validation.ParseHash(want, false)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		if sumFromStdin && name == stdinName {
			results = append(results, CheckResult{Name: name, Error: errStdinInUse.Error()})
			continue
		}

		got, err := hashInput(cmd.Context(), name, cmd.InOrStdin(), opts)
		if err != nil {
			results = append(results, CheckResult{Name: name, Error: err.Error()})
			continue
		}
		results = append(results, CheckResult{Name: name, OK: got.Equal(expected)})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sum file: %w", err)
	}

	return results, nil
}

func printCheckText(w io.Writer, results []CheckResult) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed, color.Bold)

	for _, r := range results {
		switch {
		case r.OK:
			fmt.Fprintf(w, "%s: ", r.Name)
			green.Fprintln(w, "OK")
		case r.Error != "":
			fmt.Fprintf(w, "%s: ", r.Name)
			red.Fprintf(w, "FAILED (%s)\n", r.Error)
		default:
			fmt.Fprintf(w, "%s: ", r.Name)
			red.Fprintln(w, "FAILED")
		}
	}
}
