// Package cli implements the barlight command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to workflow functions for the actual work:
//
//	barlight run     - Print rendered blocks, once or on their intervals
//	barlight watch   - Live TUI dashboard with a CPU sparkline
//	barlight wifi    - Rich wireless snapshot, optionally with rates
//	barlight init    - Create a .barlight.yaml config
//	barlight version - Print version information
//
// Global flags (--config) are defined on the root command and available
// to all subcommands. Command-specific flags live next to their command.
package cli
