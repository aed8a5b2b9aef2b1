package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Davincible/sl2hash/internal/cli"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "sl2hash",
		Short: "Composable, parallelizable hashing over SL2(GF(2^127))",
		Long: `sl2hash maps byte strings to 2x2 matrices of determinant one over the
field GF(2^127), one generator matrix per input bit. The hash of a
concatenation is the product of the hashes of its parts, so:

- large inputs can be hashed in chunks on many cores (hash --parallel)
- hashes of consecutive parts combine into the hash of the whole (combine)
- known data can be appended to, prepended to, or removed from a hash
  without rehashing the rest (append, prepend, unappend, unprepend)

The hash is unkeyed and offers no secrecy; it is not a MAC.`,
		Version:      fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			settings := cli.LoadSettings()
			level.Set(cli.LogLevel(settings, verbose))
			cmd.SetContext(cli.WithSettings(cmd.Context(), settings))
		},
	}

	rootCmd.AddCommand(
		cli.NewHashCommand(),
		cli.NewCombineCommand(),
		cli.NewAppendCommand(),
		cli.NewPrependCommand(),
		cli.NewUnappendCommand(),
		cli.NewUnprependCommand(),
		cli.NewVerifyCommand(),
		cli.NewInspectCommand(),
		cli.NewCheckCommand(),
		cli.NewInfoCommand(),
		cli.NewConfigCommand(),
		cli.NewExampleCommand(),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}
