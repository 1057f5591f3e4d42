package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/barlight/barlight/internal/errors"
)

// Command-specific flags
var (
	runOnceFlag      bool
	wifiWatchFlag    bool
	wifiIntervalFlag string
	initForce        bool
)

// runCmd renders the configured blocks to stdout
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Render blocks to stdout",
	Long: `Render the configured blocks as a single bar line.

By default each block refreshes on its own interval and the bar line is
reprinted whenever a block updates. With --once every block is sampled a
single time and the line is printed once.

Examples:
  barlight run
  barlight run --once
  barlight run --config ~/bars/laptop.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(RunOptions{ConfigPath: Config(), Once: runOnceFlag})
	},
}

// watchCmd starts the TUI dashboard
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live dashboard with a CPU sparkline",
	Long: `Start an interactive dashboard showing every configured block.

Each block refreshes on its own interval; a spinner shows while a block
is still collecting, and CPU usage history renders as a sparkline.

Keyboard shortcuts:
  q / Esc / Ctrl+C  Quit

Examples:
  barlight watch`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Watch(Config())
	},
}

// wifiCmd prints a rich wireless snapshot
var wifiCmd = &cobra.Command{
	Use:   "wifi",
	Short: "Show a wireless telemetry snapshot",
	Long: `Collect and print a one-line wireless summary: SSID, signal
bars, dBm, frequency, and transfer counters.

With --watch the snapshot repeats on an interval and shows transfer
rates computed between consecutive snapshots.

Examples:
  barlight wifi
  barlight wifi --watch
  barlight wifi --watch --interval 5s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		interval := 2 * time.Second
		if wifiIntervalFlag != "" {
			parsed, err := time.ParseDuration(wifiIntervalFlag)
			if err != nil {
				return errors.Wrap(err, errors.ErrConfig,
					"invalid interval '"+wifiIntervalFlag+"' - try something like 2s or 1m")
			}
			if parsed < 500*time.Millisecond {
				return errors.New(errors.ErrConfig,
					"interval too short - minimum is 500ms")
			}
			interval = parsed
		}

		return Wifi(WifiOptions{Watch: wifiWatchFlag, Interval: interval})
	},
}

// initCmd creates a new .barlight.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .barlight.yaml configuration",
	Long: `Write a starter config file with a cpu and a wifi block.

Prompts before overwriting an existing config unless --force is given.

Examples:
  barlight init
  barlight init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{Force: initForce})
	},
}

func init() {
	runCmd.Flags().BoolVar(&runOnceFlag, "once", false, "sample every block once and exit")

	wifiCmd.Flags().BoolVar(&wifiWatchFlag, "watch", false, "refresh continuously and show transfer rates")
	wifiCmd.Flags().StringVar(&wifiIntervalFlag, "interval", "2s", "refresh interval for --watch (e.g., 2s, 5s, 1m)")

	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(wifiCmd)
	rootCmd.AddCommand(initCmd)
}
