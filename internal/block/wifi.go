package block

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/barlight/barlight/internal/errors"
	"github.com/barlight/barlight/internal/logger"
	"github.com/barlight/barlight/internal/probe"
)

const (
	procNetWireless = "/proc/net/wireless"
	sysClassNet     = "/sys/class/net"

	// defaultInterface is the terminal fallback when no detection
	// strategy finds a wireless device.
	defaultInterface = "wlan0"

	// maxLinkQuality is the kernel's raw link-quality ceiling used to
	// normalize /proc/net/wireless readings to a percentage.
	maxLinkQuality = 70.0
)

// Wifi renders the connected network's SSID and signal quality. Unlike the
// CPU block it never surfaces a collection error: an exhausted SSID chain
// means "not on WiFi", which is a valid displayable state, not a failure.
type Wifi struct {
	format   string
	interval time.Duration
	color    lipgloss.Color
	iface    string // pinned interface; empty means detect per call
	probe    probe.Probe
	log      logger.Logger
}

// NewWifi creates a WiFi block. iface pins the interface to inspect; leave
// it empty to detect one on every refresh. The format template may contain
// {ssid}, {quality}, and {} (the composite "<ssid> <quality>%").
func NewWifi(format string, interval time.Duration, color lipgloss.Color, iface string, p probe.Probe) *Wifi {
	return &Wifi{
		format:   format,
		interval: interval,
		color:    color,
		iface:    iface,
		probe:    p,
		log:      logger.NewEnvLogger("[wifi]"),
	}
}

// SetLogger replaces the block's logger. Useful for testing.
func (w *Wifi) SetLogger(l logger.Logger) {
	w.log = l
}

// Content resolves connectivity state and renders it into the template.
// The error return is always nil; a disconnected state renders as the
// "Disconnected" sentinel.
func (w *Wifi) Content() (string, error) {
	ssid, err := w.resolveSSID()
	if err != nil {
		w.log.Debug("rendering disconnected state: %v", err)
		result := strings.ReplaceAll(w.format, "{ssid}", "Disconnected")
		result = strings.ReplaceAll(result, "{quality}", "0")
		result = strings.ReplaceAll(result, "{}", "Disconnected")
		return result, nil
	}

	// Quality failure is non-fatal once connectivity is confirmed.
	quality, err := w.resolveSignalQuality()
	if err != nil {
		w.log.Debug("signal quality unavailable: %v", err)
		quality = 0
	}

	result := strings.ReplaceAll(w.format, "{ssid}", ssid)
	result = strings.ReplaceAll(result, "{quality}", strconv.Itoa(quality))
	result = strings.ReplaceAll(result, "{}", fmt.Sprintf("%s %d%%", ssid, quality))

	return result, nil
}

// Interval returns the block's refresh period.
func (w *Wifi) Interval() time.Duration {
	return w.interval
}

// Color returns the block's display color.
func (w *Wifi) Color() lipgloss.Color {
	return w.color
}

// resolveInterface produces the interface name to inspect. The chain never
// fails: a pinned interface wins unconditionally, detection strategies are
// tried in order, and the constant default is the terminal fallback.
func (w *Wifi) resolveInterface() string {
	if w.iface != "" {
		return w.iface
	}

	iface, ok := firstOf(w.log, "interface", []strategy{
		{"sysfs wireless marker", w.sysfsInterface},
		{"iw dev", w.iwInterface},
		{"/proc/net/wireless", w.procInterface},
	})
	if !ok {
		return defaultInterface
	}
	return iface
}

// sysfsInterface returns the first /sys/class/net entry that has a
// wireless subdirectory.
func (w *Wifi) sysfsInterface() (string, error) {
	entries, err := w.probe.ListDir(sysClassNet)
	if err != nil {
		return "", err
	}
	for _, name := range entries {
		if w.probe.Exists(sysClassNet + "/" + name + "/wireless") {
			return name, nil
		}
	}
	return "", errors.New(errors.ErrMissing, "no wireless device in "+sysClassNet)
}

// iwInterface returns the first interface reported by `iw dev`.
func (w *Wifi) iwInterface() (string, error) {
	out, err := w.probe.Run("iw", "dev")
	if err != nil {
		return "", err
	}
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[0] == "Interface" {
			return fields[1], nil
		}
	}
	return "", errors.New(errors.ErrCommand, "iw dev listed no interfaces")
}

// procInterface returns the first interface named in /proc/net/wireless,
// skipping the two header lines.
func (w *Wifi) procInterface() (string, error) {
	contents, err := w.probe.ReadFile(procNetWireless)
	if err != nil {
		return "", err
	}
	lines := strings.Split(contents, "\n")
	for i, line := range lines {
		if i < 2 || strings.TrimSpace(line) == "" {
			continue
		}
		name := strings.TrimSpace(strings.SplitN(line, ":", 2)[0])
		if name != "" {
			return name, nil
		}
	}
	return "", errors.New(errors.ErrMissing, "no interface in "+procNetWireless)
}

// resolveSSID tries each SSID strategy in order. Exhaustion means the host
// is not connected, reported as a distinguished condition rather than a
// generic I/O or parse error.
func (w *Wifi) resolveSSID() (string, error) {
	iface := w.resolveInterface()

	ssid, ok := firstOf(w.log, "ssid", []strategy{
		{"iwgetid", func() (string, error) {
			return w.probe.Run("iwgetid", iface, "-r")
		}},
		{"iw link", func() (string, error) {
			out, err := w.probe.Run("iw", "dev", iface, "link")
			if err != nil {
				return "", err
			}
			return scanLabel(out, "SSID:"), nil
		}},
		{"nmcli", func() (string, error) {
			out, err := w.probe.Run("nmcli", "-t", "-f", "active,ssid", "dev", "wifi")
			if err != nil {
				return "", err
			}
			return activeNmcliSSID(out), nil
		}},
	})
	if !ok {
		return "", errors.New(errors.ErrNotConnected, "not connected")
	}
	return ssid, nil
}

// resolveSignalQuality reads the raw link quality for the resolved
// interface from /proc/net/wireless and normalizes it to 0-100.
func (w *Wifi) resolveSignalQuality() (int, error) {
	iface := w.resolveInterface()

	contents, err := w.probe.ReadFile(procNetWireless)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrIO, "failed to read "+procNetWireless)
	}

	lines := strings.Split(contents, "\n")
	for i, line := range lines {
		if i < 2 {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		if strings.TrimSuffix(fields[0], ":") != iface {
			continue
		}

		quality, err := strconv.ParseFloat(strings.TrimSuffix(fields[2], "."), 64)
		if err != nil {
			return 0, errors.Wrap(err, errors.ErrData, "invalid quality value "+fields[2])
		}

		percentage := int(math.Round(quality / maxLinkQuality * 100))
		if percentage < 0 {
			percentage = 0
		} else if percentage > 100 {
			percentage = 100
		}
		return percentage, nil
	}

	return 0, errors.Newf(errors.ErrMissing, "interface %s not found in %s", iface, procNetWireless)
}

// scanLabel returns the value following a label (e.g. "SSID:") in command
// output, or empty if the label is absent.
func scanLabel(output, label string) string {
	for _, line := range strings.Split(output, "\n") {
		if idx := strings.Index(line, label); idx >= 0 {
			return strings.TrimSpace(line[idx+len(label):])
		}
	}
	return ""
}

// activeNmcliSSID extracts the SSID of the active row from
// `nmcli -t -f active,ssid dev wifi` output (colon-delimited, active
// rows start with "yes").
func activeNmcliSSID(output string) string {
	for _, line := range strings.Split(output, "\n") {
		if !strings.HasPrefix(line, "yes") {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) == 2 {
			return strings.TrimSpace(parts[1])
		}
	}
	return ""
}
