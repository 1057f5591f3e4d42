package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/barlight/barlight/internal/config"
	"github.com/barlight/barlight/internal/errors"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Path  string // Target path; empty means ./.barlight.yaml
	Force bool   // Overwrite existing config without asking
}

// Init writes a starter .barlight.yaml configuration file.
func Init(opts InitOptions) error {
	configPath := opts.Path
	if configPath == "" {
		configPath = filepath.Join(".", config.ConfigFileName)
	}

	if _, err := os.Stat(configPath); err == nil && !opts.Force {
		var overwrite bool

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", configPath)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.Wrap(err, errors.ErrConfig,
				"failed to get user input - try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := config.WriteDefault(configPath); err != nil {
		return errors.Wrap(err, errors.ErrConfig, "failed to write config")
	}

	fmt.Printf("Wrote %s\n", configPath)
	fmt.Println("Edit it to taste, then try 'barlight run --once'.")
	return nil
}
