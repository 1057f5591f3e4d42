package config

import (
	"fmt"

	"github.com/barlight/barlight/internal/errors"
)

// ValidBlockTypes are the block types the builder can construct.
var ValidBlockTypes = map[string]bool{
	BlockCpu:  true,
	BlockWifi: true,
}

// Validate checks the config for errors and returns structured error
// messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig, "config is nil")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.Newf(errors.ErrConfig,
			"config is from the future (version %d, but barlight only knows up to %d)",
			cfg.Version, CurrentConfigVersion)
	}

	if len(cfg.Blocks) == 0 {
		return errors.New(errors.ErrConfig,
			"no blocks configured - add at least one block or run 'barlight init'")
	}

	for i, block := range cfg.Blocks {
		if err := validateBlock(block); err != nil {
			return errors.Wrap(err, errors.ErrConfig,
				fmt.Sprintf("invalid block %d", i+1))
		}
	}

	return nil
}

// validateBlock checks a single block definition.
func validateBlock(b BlockConfig) error {
	if !ValidBlockTypes[b.Type] {
		return fmt.Errorf("type '%s' isn't valid - use 'cpu' or 'wifi'", b.Type)
	}

	if b.Format == "" {
		return fmt.Errorf("%s block needs a 'format' template", b.Type)
	}

	if b.Interval <= 0 {
		return fmt.Errorf("%s block interval must be positive (got %v) - try something like '5s'", b.Type, b.Interval)
	}

	if !isHexColor(b.Color) {
		return fmt.Errorf("%s block color '%s' isn't valid - use a hex color like '#A3BE8C'", b.Type, b.Color)
	}

	if b.Interface != "" && b.Type != BlockWifi {
		return fmt.Errorf("'interface' only applies to wifi blocks, not '%s'", b.Type)
	}

	return nil
}

// isHexColor reports whether s is a #RRGGBB hex color string.
func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
