package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/barlight/barlight/internal/block"
	"github.com/barlight/barlight/internal/config"
	"github.com/barlight/barlight/internal/probe"
	"github.com/barlight/barlight/internal/ui"
)

// RunOptions holds options for the run command.
type RunOptions struct {
	ConfigPath string
	Once       bool
	Probe      probe.Probe // nil uses the real system
	Out        io.Writer   // nil uses stdout
}

// Run renders the configured blocks. In once mode every block is sampled
// a single time and the bar line printed once. Otherwise each block
// refreshes on its own goroutine and the line is reprinted whenever any
// block updates, until interrupted.
func Run(opts RunOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	p := opts.Probe
	if p == nil {
		p = probe.System()
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	blocks, err := block.Build(cfg, p)
	if err != nil {
		return err
	}

	if opts.Once {
		return runOnce(blocks, out)
	}
	return runLoop(blocks, out)
}

// loadConfig resolves and validates the config, falling back to defaults
// when no config file exists and none was requested explicitly.
func loadConfig(path string) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadOrDefault()
	}
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runOnce samples every block a single time. A failing block renders as
// an error segment rather than killing the whole line.
func runOnce(blocks []block.Block, out io.Writer) error {
	segments := make([]ui.Segment, len(blocks))
	for i, b := range blocks {
		segments[i] = collectSegment(b)
	}
	fmt.Fprintln(out, ui.RenderBar(segments))
	return nil
}

// blockUpdate carries one refresh result from a block goroutine.
type blockUpdate struct {
	index   int
	segment ui.Segment
}

// runLoop schedules each block on its own goroutine so a slow collector
// only delays its own segment. The bar line is reprinted on every update.
func runLoop(blocks []block.Block, out io.Writer) error {
	updates := make(chan blockUpdate)
	done := make(chan struct{})

	for i, b := range blocks {
		go func(i int, b block.Block) {
			collect := func() {
				select {
				case updates <- blockUpdate{index: i, segment: collectSegment(b)}:
				case <-done:
				}
			}

			collect()
			ticker := time.NewTicker(b.Interval())
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					collect()
				case <-done:
					return
				}
			}
		}(i, b)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	segments := make([]ui.Segment, len(blocks))
	for {
		select {
		case u := <-updates:
			segments[u.index] = u.segment
			fmt.Fprintln(out, ui.RenderBar(segments))
		case <-sig:
			close(done)
			return nil
		}
	}
}

// collectSegment renders one block into a bar segment.
func collectSegment(b block.Block) ui.Segment {
	text, err := b.Content()
	if err != nil {
		return ui.Segment{Text: "collect failed", Color: ui.ColorError}
	}
	return ui.Segment{Text: text, Color: b.Color()}
}
