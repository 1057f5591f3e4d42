package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barlight/barlight/internal/config"
	"github.com/barlight/barlight/internal/errors"
	"github.com/barlight/barlight/internal/probe/probetest"
)

const wirelessFixture = `Inter-| sta-|   Quality        |   Discarded packets               | Missed | WE
 face | tus | link level noise |  nwid  crypt   frag  retry   misc | beacon | 22
 wlp3s0: 0000   58.  -52.  -256        0      0      0      0      0        0
`

const linkFixture = `Connected to aa:bb:cc:dd:ee:ff (on wlp3s0)
	SSID: HomeNet
	freq: 5180
	signal: -52 dBm
	tx bitrate: 433.3 MBit/s
`

func fullProbe() *probetest.Fake {
	return probetest.New().
		SetFile("/proc/stat", "cpu 100 0 100 100 0 0 0 0 0 0\n").
		SetFile("/proc/net/wireless", wirelessFixture).
		SetCommand("iwgetid wlp3s0 -r", "HomeNet\n").
		SetCommand("iw dev wlp3s0 link", linkFixture).
		SetFile("/sys/class/net/wlp3s0/statistics/tx_bytes", "1048576\n").
		SetFile("/sys/class/net/wlp3s0/statistics/rx_bytes", "2097152\n").
		SetFile("/sys/class/net/wlp3s0/statistics/tx_packets", "2048\n").
		SetFile("/sys/class/net/wlp3s0/statistics/rx_packets", "4096\n")
}

func writeRunConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	content := `
version: 1
blocks:
  - type: cpu
    format: "CPU {usage}%"
    interval: 5s
    color: "#A3BE8C"
  - type: wifi
    format: "{ssid} {quality}%"
    interval: 10s
    color: "#81A1C1"
    interface: wlp3s0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunOnce(t *testing.T) {
	var out bytes.Buffer

	err := Run(RunOptions{
		ConfigPath: writeRunConfig(t),
		Once:       true,
		Probe:      fullProbe(),
		Out:        &out,
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "CPU 67%")
	assert.Contains(t, out.String(), "HomeNet")
}

func TestRunOnceRendersFailedBlock(t *testing.T) {
	var out bytes.Buffer

	// No /proc/stat fixture: the cpu block fails but the bar still prints.
	err := Run(RunOptions{
		ConfigPath: writeRunConfig(t),
		Once:       true,
		Probe:      probetest.New().SetFile("/proc/net/wireless", wirelessFixture).SetCommand("iwgetid wlp3s0 -r", "HomeNet\n"),
		Out:        &out,
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "collect failed")
	assert.Contains(t, out.String(), "HomeNet")
}

func TestRunInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("blocks:\n  - type: gpu\n"), 0644))

	err := Run(RunOptions{ConfigPath: path, Once: true, Probe: probetest.New()})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestRunMissingExplicitConfig(t *testing.T) {
	err := Run(RunOptions{
		ConfigPath: filepath.Join(t.TempDir(), "nope.yaml"),
		Once:       true,
		Probe:      probetest.New(),
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestWifiSnapshot(t *testing.T) {
	var out bytes.Buffer

	err := Wifi(WifiOptions{Probe: fullProbe(), Out: &out})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "WiFi: HomeNet")
	assert.Contains(t, out.String(), "-52 dBm")
	assert.Contains(t, out.String(), "5180 MHz")
}

func TestWifiSnapshotError(t *testing.T) {
	err := Wifi(WifiOptions{Probe: probetest.New(), Out: &bytes.Buffer{}})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrIO))
}

func TestInitForceWritesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)

	require.NoError(t, Init(InitOptions{Path: path, Force: true}))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.NoError(t, config.Validate(cfg))
}

func TestInitForceOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0644))

	require.NoError(t, Init(InitOptions{Path: path, Force: true}))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Blocks, 2)
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"dev", "dev"},
		{"", ""},
		{"1.2.3", "v1.2.3"},
		{"v1.2.3", "v1.2.3"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatVersion(tt.in))
	}
}

func TestWifiIntervalFlagValidation(t *testing.T) {
	rootCmd.SetArgs([]string{"wifi", "--watch", "--interval", "banana"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid interval")

	rootCmd.SetArgs([]string{"wifi", "--watch", "--interval", "100ms"})
	err = rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too short")
}
