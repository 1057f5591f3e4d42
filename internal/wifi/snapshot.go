// Package wifi collects and formats rich wireless telemetry. It is a
// separate component from the wifi status block: the block renders a
// one-line summary and never fails on disconnect, while this package
// builds a full snapshot and propagates I/O errors to the caller.
package wifi

import (
	"strconv"
	"strings"

	"github.com/barlight/barlight/internal/errors"
	"github.com/barlight/barlight/internal/probe"
)

const (
	procNetWireless = "/proc/net/wireless"
	sysClassNet     = "/sys/class/net"
)

// Snapshot is an immutable point-in-time capture of wireless telemetry.
// Two snapshots taken at different times can be compared to derive a
// transfer rate.
type Snapshot struct {
	Interface      string
	SSID           string
	SignalStrength int // dBm
	Frequency      string
	TxBytes        uint64
	RxBytes        uint64
	TxPackets      uint64
	RxPackets      uint64
}

// Collect builds a snapshot for the first active wireless interface.
// Unlike the status block's resolvers there are no fallback chains here:
// a missing /proc/net/wireless or statistics file is a hard failure.
func Collect(p probe.Probe) (*Snapshot, error) {
	iface, err := wirelessInterface(p)
	if err != nil {
		return nil, err
	}
	return CollectInterface(p, iface)
}

// CollectInterface builds a snapshot for a specific interface.
func CollectInterface(p probe.Probe, iface string) (*Snapshot, error) {
	s := &Snapshot{
		Interface: iface,
		SSID:      "Not Connected",
		Frequency: "Unknown",
	}

	// One link query feeds SSID, signal, and frequency. Each field keeps
	// its default when the label is absent or malformed; only the counter
	// files below can fail the snapshot.
	if out, err := p.Run("iw", "dev", iface, "link"); err == nil {
		s.SSID = linkField(out, "SSID:", s.SSID)
		if v := linkField(out, "signal:", ""); v != "" {
			if dbm, err := strconv.Atoi(firstToken(v)); err == nil {
				s.SignalStrength = dbm
			}
		}
		if v := linkField(out, "freq:", ""); v != "" {
			s.Frequency = firstToken(v) + " MHz"
		}
	}

	var err error
	if s.TxBytes, err = statCounter(p, iface, "tx_bytes"); err != nil {
		return nil, err
	}
	if s.RxBytes, err = statCounter(p, iface, "rx_bytes"); err != nil {
		return nil, err
	}
	if s.TxPackets, err = statCounter(p, iface, "tx_packets"); err != nil {
		return nil, err
	}
	if s.RxPackets, err = statCounter(p, iface, "rx_packets"); err != nil {
		return nil, err
	}

	return s, nil
}

// CalculateRate returns the transmitted and received byte deltas between
// this snapshot and an earlier one. A counter reset between the two
// snapshots would produce a negative delta; those clamp to zero.
func (s *Snapshot) CalculateRate(previous *Snapshot) (tx, rx uint64) {
	if s.TxBytes > previous.TxBytes {
		tx = s.TxBytes - previous.TxBytes
	}
	if s.RxBytes > previous.RxBytes {
		rx = s.RxBytes - previous.RxBytes
	}
	return tx, rx
}

// wirelessInterface returns the first interface named in /proc/net/wireless.
// The file has two header lines; interface names end at the first colon.
func wirelessInterface(p probe.Probe) (string, error) {
	contents, err := p.ReadFile(procNetWireless)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrIO, "no wireless interface found")
	}

	lines := strings.Split(contents, "\n")
	for i, line := range lines {
		if i < 2 {
			continue
		}
		name := strings.TrimSpace(strings.SplitN(line, ":", 2)[0])
		if name != "" {
			return name, nil
		}
	}

	return "", errors.New(errors.ErrMissing, "no active wireless interface")
}

// linkField extracts the value following a label (e.g. "SSID:") from
// iw link output. Returns fallback if the label is absent.
func linkField(output, label, fallback string) string {
	for _, line := range strings.Split(output, "\n") {
		if idx := strings.Index(line, label); idx >= 0 {
			return strings.TrimSpace(line[idx+len(label):])
		}
	}
	return fallback
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// statCounter reads one per-interface statistics counter. An unparsable
// value reads as zero; a missing file propagates as an I/O error.
func statCounter(p probe.Probe, iface, counter string) (uint64, error) {
	path := sysClassNet + "/" + iface + "/statistics/" + counter
	contents, err := p.ReadFile(path)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrIO, "failed to read "+path)
	}
	value, err := strconv.ParseUint(strings.TrimSpace(contents), 10, 64)
	if err != nil {
		return 0, nil
	}
	return value, nil
}
