package block

import (
	"github.com/barlight/barlight/internal/config"
	"github.com/barlight/barlight/internal/errors"
	"github.com/barlight/barlight/internal/probe"
)

// FromConfig constructs the collector for a single block definition.
func FromConfig(cfg config.BlockConfig, p probe.Probe) (Block, error) {
	switch cfg.Type {
	case config.BlockCpu:
		return NewCpu(cfg.Format, cfg.Interval, cfg.LipglossColor(), p), nil
	case config.BlockWifi:
		return NewWifi(cfg.Format, cfg.Interval, cfg.LipglossColor(), cfg.Interface, p), nil
	default:
		return nil, errors.Newf(errors.ErrConfig, "unknown block type '%s'", cfg.Type)
	}
}

// Build constructs every block in cfg, in config order.
func Build(cfg *config.Config, p probe.Probe) ([]Block, error) {
	blocks := make([]Block, 0, len(cfg.Blocks))
	for _, bc := range cfg.Blocks {
		b, err := FromConfig(bc, p)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}
