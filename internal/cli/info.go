package cli

import (
	"fmt"

	"github.com/Davincible/sl2hash/pkg/config"
	"github.com/Davincible/sl2hash/pkg/crypto/gf2p127"
	"github.com/Davincible/sl2hash/pkg/crypto/sl2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type InfoResult struct {
	Field      string     `json:"field"`
	Generators [][]string `json:"generators"`
	CLMUL      string     `json:"clmul"`
	Overridden bool       `json:"clmul_overridden"`
	Native     bool       `json:"clmul_native"`
	ConfigPath string     `json:"config_path"`
	Identity   string     `json:"identity"`
}

func NewInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show construction parameters and platform capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := config.GetConfigPath()
			if err != nil {
				configPath = "unavailable: " + err.Error()
			}

			result := InfoResult{
				Field:      "GF(2^127) = GF(2)[x] / (x^127 + x^63 + 1)",
				CLMUL:      gf2p127.Capability().String(),
				Overridden: gf2p127.CapabilityOverridden(),
				Native:     gf2p127.Accelerated(),
				ConfigPath: configPath,
				Identity:   sl2.Identity().Hex(),
			}
			for _, bit := range []bool{false, true} {
				g := sl2.Generator(bit)
				result.Generators = append(result.Generators, []string{
					g.A.String(), g.B.String(), g.C.String(), g.D.String(),
				})
			}

			if jsonOutput(cmd) {
				return printJSON(cmd.OutOrStdout(), result)
			}

			w := cmd.OutOrStdout()
			cyan := color.New(color.FgCyan, color.Bold)

			cyan.Fprintln(w, "Field:")
			fmt.Fprintf(w, "  %s\n\n", result.Field)

			cyan.Fprintln(w, "Generators (bits are read most significant first):")
			for i, g := range result.Generators {
				fmt.Fprintf(w, "  G%d = | %-3s %-5s |\n", i, g[0], g[1])
				fmt.Fprintf(w, "       | %-3s %-5s |\n", g[2], g[3])
			}
			fmt.Fprintln(w)

			cyan.Fprintln(w, "Carry-less multiply:")
			fmt.Fprintf(w, "  hardware: %s", result.CLMUL)
			if result.Overridden {
				fmt.Fprint(w, " (overridden by SL2HASH_CLMUL)")
			}
			fmt.Fprintln(w)
			if result.Native {
				fmt.Fprintln(w, "  arithmetic uses the hardware instruction")
			} else {
				fmt.Fprintln(w, "  arithmetic uses the portable implementation")
			}
			fmt.Fprintln(w)

			cyan.Fprintln(w, "Config file:")
			fmt.Fprintf(w, "  %s\n", result.ConfigPath)
			return nil
		},
	}

	return cmd
}
