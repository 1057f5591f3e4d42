package block

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/barlight/barlight/internal/errors"
	"github.com/barlight/barlight/internal/logger"
	"github.com/barlight/barlight/internal/probe"
)

const procStat = "/proc/stat"

// Cpu samples aggregate CPU utilization from the kernel's jiffy counters.
// Usage is the active share of the delta between two consecutive readings,
// so each instance owns its own baseline. The baseline starts at (0, 0),
// making the first delta span the whole uptime counters: the first call
// reports the since-boot average rather than an instant reading.
type Cpu struct {
	format   string
	interval time.Duration
	color    lipgloss.Color
	probe    probe.Probe
	log      logger.Logger

	prevIdle  uint64
	prevTotal uint64
	lastUsage float64
}

// NewCpu creates a CPU block. The format template may contain the tokens
// {} and {usage} (integer-rounded percentage) and {percent} (one decimal).
func NewCpu(format string, interval time.Duration, color lipgloss.Color, p probe.Probe) *Cpu {
	return &Cpu{
		format:   format,
		interval: interval,
		color:    color,
		probe:    p,
		log:      logger.NewEnvLogger("[cpu]"),
	}
}

// SetLogger replaces the block's logger. Useful for testing.
func (c *Cpu) SetLogger(l logger.Logger) {
	c.log = l
}

// Content reads /proc/stat, updates the delta baseline, and renders the
// usage percentage into the format template.
func (c *Cpu) Content() (string, error) {
	usage, err := c.sample()
	if err != nil {
		return "", err
	}
	c.lastUsage = usage

	result := strings.ReplaceAll(c.format, "{}", fmt.Sprintf("%.0f", usage))
	result = strings.ReplaceAll(result, "{percent}", fmt.Sprintf("%.1f", usage))
	result = strings.ReplaceAll(result, "{usage}", fmt.Sprintf("%.0f", usage))

	return result, nil
}

// Interval returns the block's refresh period.
func (c *Cpu) Interval() time.Duration {
	return c.interval
}

// Color returns the block's display color.
func (c *Cpu) Color() lipgloss.Color {
	return c.color
}

// LastUsage returns the usage percentage from the most recent successful
// Content call. Zero before the first sample.
func (c *Cpu) LastUsage() float64 {
	return c.lastUsage
}

// sample parses the aggregate cpu line and computes the usage percentage
// since the previous call. The baseline is updated unconditionally, even
// on the very first sample.
func (c *Cpu) sample() (float64, error) {
	stat, err := c.probe.ReadFile(procStat)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrIO, "failed to read "+procStat)
	}

	var cpuLine string
	for _, line := range strings.Split(stat, "\n") {
		if strings.HasPrefix(line, "cpu ") {
			cpuLine = line
			break
		}
	}
	if cpuLine == "" {
		return 0, errors.New(errors.ErrData, "cpu line not found in "+procStat)
	}

	// Fields after the label: user nice system idle [iowait irq softirq ...]
	var values []uint64
	for _, field := range strings.Fields(cpuLine)[1:] {
		v, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}

	if len(values) < 4 {
		return 0, errors.Newf(errors.ErrData, "invalid cpu line in %s: %d numeric fields", procStat, len(values))
	}

	idle := values[3]
	var iowait uint64
	if len(values) > 4 {
		iowait = values[4]
	}

	var total uint64
	for _, v := range values {
		total += v
	}
	idleTotal := idle + iowait

	idleDelta := saturatingSub(idleTotal, c.prevIdle)
	totalDelta := saturatingSub(total, c.prevTotal)

	c.prevIdle = idleTotal
	c.prevTotal = total

	if totalDelta == 0 {
		return 0, nil
	}

	activeDelta := saturatingSub(totalDelta, idleDelta)
	usage := float64(activeDelta) / float64(totalDelta) * 100

	c.log.Debug("usage %.1f%% (idle delta %d, total delta %d)", usage, idleDelta, totalDelta)
	return usage, nil
}

// saturatingSub returns a-b, clamped at zero. Kernel counters can appear
// to move backwards across a reset.
func saturatingSub(a, b uint64) uint64 {
	if a < b {
		return 0
	}
	return a - b
}
