// Package block implements the status bar's telemetry blocks. A block
// wraps a collector, a format template, a refresh interval, and a display
// color into a uniform unit the host renderer refreshes on its own cadence.
package block

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/barlight/barlight/internal/logger"
)

// Block is the contract between a collector and the host renderer.
// Content performs one full collection-and-render cycle and may block on
// filesystem I/O or subprocess execution. Interval and Color are fixed at
// construction. A single instance is not safe for concurrent Content calls;
// the renderer is expected to drive each block from one goroutine.
type Block interface {
	Content() (string, error)
	Interval() time.Duration
	Color() lipgloss.Color
}

// strategy is one step of a fallback chain: an alternative way to obtain
// the same logical value. A strategy succeeds when it returns a non-empty
// trimmed string and no error.
type strategy struct {
	name string
	fn   func() (string, error)
}

// firstOf tries strategies in order and returns the first success.
// Per-strategy failures are swallowed; only exhaustion of the whole chain
// is reported to the caller via ok=false.
func firstOf(log logger.Logger, what string, strategies []strategy) (string, bool) {
	for _, s := range strategies {
		value, err := s.fn()
		if err != nil {
			log.Debug("%s: %s failed: %v", what, s.name, err)
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			log.Debug("%s: %s returned empty output", what, s.name)
			continue
		}
		log.Debug("%s: resolved via %s", what, s.name)
		return value, true
	}
	return "", false
}
