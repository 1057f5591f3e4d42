package wifi

import (
	"fmt"
	"strconv"
)

// Byte thresholds for human-readable formatting (binary units).
const (
	kb uint64 = 1024
	mb        = kb * 1024
	gb        = mb * 1024
)

// FormatDisplay composes the snapshot into a single display line:
// SSID, signal bars, dBm, frequency, and transferred totals.
func (s *Snapshot) FormatDisplay() string {
	return fmt.Sprintf(
		"WiFi: %s %s (%d dBm) | %s | ↑%s ↓%s",
		s.SSID,
		SignalToBars(s.SignalStrength),
		s.SignalStrength,
		s.Frequency,
		BytesToHuman(s.TxBytes),
		BytesToHuman(s.RxBytes),
	)
}

// SignalToBars maps a dBm signal strength to a 4-level visual bar.
// Threshold boundaries are inclusive: exactly -50 selects full bars.
func SignalToBars(dbm int) string {
	switch {
	case dbm >= -50:
		return "▂▄▆█"
	case dbm >= -60:
		return "▂▄▆_"
	case dbm >= -70:
		return "▂▄__"
	case dbm >= -80:
		return "▂___"
	default:
		return "____"
	}
}

// BytesToHuman formats a byte count with binary (1024-based) units.
// Values below 1 KB render as a bare integer with a B suffix.
func BytesToHuman(bytes uint64) string {
	switch {
	case bytes >= gb:
		return fmt.Sprintf("%.2fGB", float64(bytes)/float64(gb))
	case bytes >= mb:
		return fmt.Sprintf("%.2fMB", float64(bytes)/float64(mb))
	case bytes >= kb:
		return fmt.Sprintf("%.2fKB", float64(bytes)/float64(kb))
	default:
		return strconv.FormatUint(bytes, 10) + "B"
	}
}
