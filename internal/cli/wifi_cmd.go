package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/barlight/barlight/internal/probe"
	"github.com/barlight/barlight/internal/wifi"
)

// WifiOptions holds options for the wifi command.
type WifiOptions struct {
	Watch    bool
	Interval time.Duration
	Probe    probe.Probe // nil uses the real system
	Out      io.Writer   // nil uses stdout
}

// Wifi prints a wireless telemetry snapshot. In watch mode it keeps
// sampling on the interval and appends transfer rates computed between
// consecutive snapshots.
func Wifi(opts WifiOptions) error {
	p := opts.Probe
	if p == nil {
		p = probe.System()
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	if !opts.Watch {
		snap, err := wifi.Collect(p)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, snap.FormatDisplay())
		return nil
	}

	return wifiWatch(p, out, opts.Interval)
}

// wifiWatch samples on a ticker until interrupted, printing the snapshot
// summary plus per-second rates once two snapshots exist.
func wifiWatch(p probe.Probe, out io.Writer, interval time.Duration) error {
	history := wifi.NewHistory(wifi.DefaultHistorySize)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	sample := func() {
		snap, err := wifi.Collect(p)
		if err != nil {
			fmt.Fprintln(out, "collect failed:", err)
			return
		}
		history.Push(snap)
		fmt.Fprintln(out, watchLine(snap, history, interval))
	}

	sample()
	for {
		select {
		case <-ticker.C:
			sample()
		case <-sig:
			return nil
		}
	}
}

// watchLine appends rate figures to the snapshot summary once a previous
// snapshot exists to diff against.
func watchLine(snap *wifi.Snapshot, history *wifi.History, interval time.Duration) string {
	line := snap.FormatDisplay()
	if history.Count() < 2 {
		return line
	}

	tx, rx := history.Rates(interval.Seconds())
	return fmt.Sprintf("%s | ↑%s/s ↓%s/s",
		line, wifi.BytesToHuman(uint64(tx)), wifi.BytesToHuman(uint64(rx)))
}
