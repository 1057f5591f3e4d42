package wifi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytesToHuman(t *testing.T) {
	tests := []struct {
		name     string
		bytes    uint64
		expected string
	}{
		{"zero", 0, "0B"},
		{"below 1KB", 500, "500B"},
		{"boundary byte", 1023, "1023B"},
		{"exactly 1KB", 1024, "1.00KB"},
		{"exactly 1MB", 1048576, "1.00MB"},
		{"exactly 1GB", 1073741824, "1.00GB"},
		{"fractional MB", 1572864, "1.50MB"},
		{"multiple GB", 3221225472, "3.00GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BytesToHuman(tt.bytes))
		})
	}
}

func TestSignalToBars(t *testing.T) {
	tests := []struct {
		name     string
		dbm      int
		expected string
	}{
		{"strong signal", -45, "▂▄▆█"},
		{"boundary full", -50, "▂▄▆█"},
		{"three bars", -55, "▂▄▆_"},
		{"boundary three", -60, "▂▄▆_"},
		{"two bars", -65, "▂▄__"},
		{"boundary two", -70, "▂▄__"},
		{"one bar", -75, "▂___"},
		{"boundary one", -80, "▂___"},
		{"no signal", -85, "____"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SignalToBars(tt.dbm))
		})
	}
}

func TestFormatDisplay(t *testing.T) {
	s := &Snapshot{
		Interface:      "wlp3s0",
		SSID:           "HomeNet",
		SignalStrength: -52,
		Frequency:      "5180 MHz",
		TxBytes:        1048576,
		RxBytes:        1073741824,
	}

	display := s.FormatDisplay()
	// -52 dBm sits in the >=-60 tier, one bar short of full.
	assert.Equal(t, "WiFi: HomeNet ▂▄▆_ (-52 dBm) | 5180 MHz | ↑1.00MB ↓1.00GB", display)
}

func TestFormatDisplayDisconnected(t *testing.T) {
	s := &Snapshot{
		Interface: "wlp3s0",
		SSID:      "Not Connected",
		Frequency: "Unknown",
	}

	display := s.FormatDisplay()
	assert.Contains(t, display, "Not Connected")
	assert.Contains(t, display, "▂▄▆█") // 0 dBm sits above the -50 threshold
	assert.Contains(t, display, "↑0B ↓0B")
}
