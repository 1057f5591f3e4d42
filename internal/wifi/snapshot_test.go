package wifi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func statsProbe() *probetest.Fake {
	return probetest.New().
		SetFile("/sys/class/net/wlp3s0/statistics/tx_bytes", "1048576\n").
		SetFile("/sys/class/net/wlp3s0/statistics/rx_bytes", "2097152\n").
		SetFile("/sys/class/net/wlp3s0/statistics/tx_packets", "2048\n").
		SetFile("/sys/class/net/wlp3s0/statistics/rx_packets", "4096\n")
}

func TestCollectFullSnapshot(t *testing.T) {
	p := statsProbe().
		SetFile("/proc/net/wireless", wirelessFixture).
		SetCommand("iw dev wlp3s0 link", linkFixture)

	s, err := Collect(p)
	require.NoError(t, err)

	assert.Equal(t, "wlp3s0", s.Interface)
	assert.Equal(t, "HomeNet", s.SSID)
	assert.Equal(t, -52, s.SignalStrength)
	assert.Equal(t, "5180 MHz", s.Frequency)
	assert.Equal(t, uint64(1048576), s.TxBytes)
	assert.Equal(t, uint64(2097152), s.RxBytes)
	assert.Equal(t, uint64(2048), s.TxPackets)
	assert.Equal(t, uint64(4096), s.RxPackets)
}

func TestCollectNoWirelessFile(t *testing.T) {
	p := probetest.New()

	_, err := Collect(p)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrIO))
}

func TestCollectNoInterfaceLine(t *testing.T) {
	// Header lines only: the file exists but names no interface.
	p := probetest.New().SetFile("/proc/net/wireless",
		"Inter-| sta-|   Quality\n face | tus | link level\n")

	_, err := Collect(p)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrMissing))
}

func TestCollectInterfaceDefaults(t *testing.T) {
	// No link output at all: SSID, signal, frequency keep their defaults
	// but counters still read.
	p := statsProbe()

	s, err := CollectInterface(p, "wlp3s0")
	require.NoError(t, err)

	assert.Equal(t, "Not Connected", s.SSID)
	assert.Equal(t, 0, s.SignalStrength)
	assert.Equal(t, "Unknown", s.Frequency)
	assert.Equal(t, uint64(1048576), s.TxBytes)
}

func TestCollectInterfaceMalformedLinkFields(t *testing.T) {
	p := statsProbe().
		SetCommand("iw dev wlp3s0 link", "\tSSID: CoffeeShop\n\tsignal: strong\n")

	s, err := CollectInterface(p, "wlp3s0")
	require.NoError(t, err)

	assert.Equal(t, "CoffeeShop", s.SSID)
	// Unparsable signal keeps the zero default.
	assert.Equal(t, 0, s.SignalStrength)
	assert.Equal(t, "Unknown", s.Frequency)
}

func TestCollectInterfaceMissingCounterFile(t *testing.T) {
	p := probetest.New().
		SetFile("/sys/class/net/wlp3s0/statistics/tx_bytes", "100\n")
	// rx_bytes and the packet counters are absent.

	_, err := CollectInterface(p, "wlp3s0")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrIO))
}

func TestCollectInterfaceUnparsableCounter(t *testing.T) {
	p := statsProbe().
		SetFile("/sys/class/net/wlp3s0/statistics/tx_bytes", "garbage\n")

	s, err := CollectInterface(p, "wlp3s0")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), s.TxBytes)
	assert.Equal(t, uint64(2097152), s.RxBytes)
}

func TestCalculateRate(t *testing.T) {
	prev := &Snapshot{TxBytes: 1000, RxBytes: 5000}
	cur := &Snapshot{TxBytes: 1500, RxBytes: 9000}

	tx, rx := cur.CalculateRate(prev)
	assert.Equal(t, uint64(500), tx)
	assert.Equal(t, uint64(4000), rx)
}

func TestCalculateRateCounterReset(t *testing.T) {
	// A rebooted interface resets its counters; deltas clamp to zero
	// instead of wrapping.
	prev := &Snapshot{TxBytes: 1 << 40, RxBytes: 1 << 40}
	cur := &Snapshot{TxBytes: 100, RxBytes: 200}

	tx, rx := cur.CalculateRate(prev)
	assert.Equal(t, uint64(0), tx)
	assert.Equal(t, uint64(0), rx)
}
