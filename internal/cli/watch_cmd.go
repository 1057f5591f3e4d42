package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/barlight/barlight/internal/block"
	"github.com/barlight/barlight/internal/probe"
	"github.com/barlight/barlight/internal/watch"
)

// Watch starts the TUI dashboard over the configured blocks.
func Watch(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	blocks, err := block.Build(cfg, probe.System())
	if err != nil {
		return err
	}

	model := watch.NewModel(blocks)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
