package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// configFlag is the --config value, an explicit config file path.
var configFlag string

// rootCmd is the base command all subcommands hang off of.
var rootCmd = &cobra.Command{
	Use:   "barlight",
	Short: "Status bar telemetry blocks for CPU and wireless",
	Long: `barlight samples CPU utilization and wireless connectivity and
renders them as colored status bar blocks.

Blocks are defined in .barlight.yaml: each has a type (cpu or wifi), a
format template, a refresh interval, and a display color.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Config returns the explicit config path from --config, if any.
func Config() string {
	return configFlag
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file path")
}
