package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type exampleStep struct {
	title    string
	commands []string
	note     string
}

type exampleScenario struct {
	name     string
	title    string
	desc     string
	scenario string
	steps    []exampleStep
}

var exampleScenarios = []exampleScenario{
	{
		name:     "basic",
		title:    "Hashing files and strings",
		desc:     "Compute and verify hashes",
		scenario: "You want a fingerprint of a file that you can later check.",
		steps: []exampleStep{
			{"Hash a file", []string{"sl2hash hash report.pdf"}, ""},
			{"Hash a literal string", []string{`sl2hash hash --string "abcd"`}, ""},
			{"Check a hash is well formed", []string{"sl2hash verify <hash>"},
				"Every hash is a matrix with determinant one; verify rejects anything else."},
		},
	},
	{
		name:     "parallel",
		title:    "Parallel hashing of large inputs",
		desc:     "Use every core on one big file",
		scenario: "A multi-gigabyte image should be hashed as fast as the disk allows.",
		steps: []exampleStep{
			{"Hash with all CPUs", []string{"sl2hash hash --parallel disk.img"},
				"The result is identical to a sequential run."},
			{"Tune chunk size and workers", []string{"sl2hash hash -P --workers 8 --chunk-size 4194304 disk.img"}, ""},
			{"Make it the default", []string{"sl2hash config init", "$EDITOR $(sl2hash config path)"},
				`Set "parallel": true under "defaults".`},
		},
	},
	{
		name:     "combine",
		title:    "Combining hashes of parts",
		desc:     "Hash pieces separately, join the results",
		scenario: "A file is split across machines; each hashes its own part.",
		steps: []exampleStep{
			{"Hash each part where it lives", []string{"sl2hash hash part-aa", "sl2hash hash part-ab"}, ""},
			{"Combine in order", []string{"sl2hash combine <hash-aa> <hash-ab>"},
				"Order matters: the result equals the hash of part-aa followed by part-ab."},
			{"Or feed hashes on stdin", []string{"sl2hash hash part-* | cut -d' ' -f1 | sl2hash combine"}, ""},
		},
	},
	{
		name:     "incremental",
		title:    "Updating a hash without rehashing",
		desc:     "Append, prepend and remove known data",
		scenario: "A log grows by a few lines and you already hold the hash of the old contents.",
		steps: []exampleStep{
			{"Extend by new data", []string{"sl2hash append <old-hash> new-lines.txt"}, ""},
			{"Add a header in front", []string{`sl2hash prepend <hash> --string "HEADER\n"`}, ""},
			{"Strip a known suffix or prefix", []string{
				"sl2hash unappend <hash> new-lines.txt",
				`sl2hash unprepend <hash> --string "HEADER\n"`,
			}, "Only data you actually know can be removed; the hash itself reveals nothing."},
		},
	},
	{
		name:     "check",
		title:    "Checking many files",
		desc:     "Sum files in the familiar format",
		scenario: "You ship a directory and want recipients to verify it.",
		steps: []exampleStep{
			{"Write a sum file", []string{"sl2hash hash dist/* > SL2SUMS"}, ""},
			{"Verify it later", []string{"sl2hash check SL2SUMS"},
				"Exits non-zero when any file is missing or differs."},
		},
	},
	{
		name:     "compressed",
		title:    "Hashing compressed content",
		desc:     "Fingerprint what is inside an archive",
		scenario: "The same data is stored as .zst in one place and .gz in another.",
		steps: []exampleStep{
			{"Hash the decompressed bytes", []string{
				"sl2hash hash --decompress auto data.zst data.gz",
			}, "Both lines print the same hash when the contents match."},
			{"Pick a codec explicitly", []string{"cat blob | sl2hash hash --decompress lz4"}, ""},
		},
	},
}

func NewExampleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "example [scenario]",
		Short: "Show practical examples",
		Long:  `Show step-by-step examples of common sl2hash workflows.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				showExampleMenu(cmd.OutOrStdout())
				return nil
			}
			return showExample(cmd.OutOrStdout(), args[0])
		},
	}

	return cmd
}

func showExampleMenu(w io.Writer) {
	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)
	yellow := color.New(color.FgYellow)

	fmt.Fprintln(w)
	green.Fprintln(w, "SL2HASH EXAMPLES")
	fmt.Fprintln(w, strings.Repeat("=", 40))
	fmt.Fprintln(w)

	cyan.Fprintln(w, "Available Examples:")
	fmt.Fprintln(w)

	for _, ex := range exampleScenarios {
		yellow.Fprintf(w, "  sl2hash example %s\n", ex.name)
		fmt.Fprintf(w, "    %s - %s\n\n", ex.title, ex.desc)
	}
}

func showExample(w io.Writer, name string) error {
	var ex *exampleScenario
	for i := range exampleScenarios {
		if exampleScenarios[i].name == strings.ToLower(name) {
			ex = &exampleScenarios[i]
			break
		}
	}
	if ex == nil {
		return fmt.Errorf("unknown example %q (run 'sl2hash example' for the list)", name)
	}

	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)

	fmt.Fprintln(w)
	green.Fprintf(w, "EXAMPLE: %s\n", ex.title)
	fmt.Fprintln(w, strings.Repeat("=", 40))
	fmt.Fprintln(w)

	cyan.Fprintln(w, "Scenario:")
	fmt.Fprintln(w, ex.scenario)
	fmt.Fprintln(w)

	for i, step := range ex.steps {
		yellow.Fprintf(w, "Step %d: %s\n", i+1, step.title)
		for _, c := range step.commands {
			fmt.Fprintf(w, "  %s\n", c)
		}
		if step.note != "" {
			fmt.Fprintf(w, "  %s\n", step.note)
		}
		fmt.Fprintln(w)
	}

	return nil
}
