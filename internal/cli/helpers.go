package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Davincible/sl2hash/internal/validation"
	"github.com/Davincible/sl2hash/pkg/config"
	"github.com/Davincible/sl2hash/pkg/crypto/sl2hash"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type settingsKey struct{}

// LoadSettings reads the user's configuration, falling back to the defaults
// when the file is unreadable. It never writes the file.
func LoadSettings() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Using default configuration", "error", err)
		cfg = config.DefaultConfig()
	}

	if !cfg.UI.UseColor {
		color.NoColor = true
	}
	return cfg
}

// WithSettings attaches cfg to ctx so subcommands reuse the configuration
// loaded by the root command.
func WithSettings(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, settingsKey{}, cfg)
}

func settingsFrom(cmd *cobra.Command) *config.Config {
	if ctx := cmd.Context(); ctx != nil {
		if cfg, ok := ctx.Value(settingsKey{}).(*config.Config); ok && cfg != nil {
			return cfg
		}
	}
	return LoadSettings()
}

// LogLevel maps the configured verbosity to a slog level. The --verbose
// flag always selects debug output.
func LogLevel(cfg *config.Config, verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}

	switch cfg.UI.Verbosity {
	case "quiet":
		return slog.LevelError
	case "verbose":
		return slog.LevelDebug
	default:
		return slog.LevelWarn
	}
}

// jsonOutput reports whether the persistent --json flag is set.
func jsonOutput(cmd *cobra.Command) bool {
	if cmd.Flags().Lookup("json") == nil {
		return false
	}
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func printJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// readHashArgs parses hashes from args, or one per line from in when args
// is empty.
func readHashArgs(args []string, in io.Reader, strict bool) ([]sl2hash.Hash, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("failed to read hashes: %w", err)
		}
		for _, line := range strings.Split(validation.SanitizeInput(string(data)), "\n") {
			if line != "" {
				args = append(args, line)
			}
		}
	}

	hashes := make([]sl2hash.Hash, len(args))
	for i, arg := range args {
		h, err := validation.ParseHash(arg, strict)
		if err != nil {
			return nil, fmt.Errorf("hash %d: %w", i+1, err)
		}
		hashes[i] = h
	}

	return hashes, nil
}
