package wifi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHistory(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		expected int
	}{
		{"default size", 0, DefaultHistorySize},
		{"negative size", -1, DefaultHistorySize},
		{"custom size", 100, 100},
		{"small size", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHistory(tt.size)
			assert.NotNil(t, h)
			assert.Equal(t, tt.expected, h.size)
		})
	}
}

func TestHistoryPush(t *testing.T) {
	h := NewHistory(10)

	h.Push(&Snapshot{TxBytes: 100})
	assert.Equal(t, 1, h.Count())

	// Nil snapshots are ignored
	h.Push(nil)
	assert.Equal(t, 1, h.Count())
}

func TestHistoryLast(t *testing.T) {
	h := NewHistory(10)

	// Empty history
	assert.Nil(t, h.Last(5))

	for i := 0; i < 7; i++ {
		h.Push(&Snapshot{TxBytes: uint64(i * 100)})
	}

	// Get all
	all := h.Last(10)
	require.Len(t, all, 7)
	assert.Equal(t, uint64(0), all[0].TxBytes)
	assert.Equal(t, uint64(600), all[6].TxBytes)

	// Get partial: the most recent entries, oldest first
	last := h.Last(3)
	require.Len(t, last, 3)
	assert.Equal(t, uint64(400), last[0].TxBytes)
	assert.Equal(t, uint64(600), last[2].TxBytes)

	// Get zero
	assert.Nil(t, h.Last(0))
}

func TestHistoryRingOverflow(t *testing.T) {
	h := NewHistory(5)

	for i := 0; i < 8; i++ {
		h.Push(&Snapshot{TxBytes: uint64(i)})
	}

	assert.Equal(t, 5, h.Count())

	last := h.Last(10)
	require.Len(t, last, 5)
	assert.Equal(t, uint64(3), last[0].TxBytes)
	assert.Equal(t, uint64(7), last[4].TxBytes)
}

func TestHistoryRates(t *testing.T) {
	h := NewHistory(10)

	// No rates until two snapshots are stored
	tx, rx := h.Rates(1)
	assert.Zero(t, tx)
	assert.Zero(t, rx)

	h.Push(&Snapshot{TxBytes: 1000, RxBytes: 2000})
	tx, rx = h.Rates(1)
	assert.Zero(t, tx)
	assert.Zero(t, rx)

	h.Push(&Snapshot{TxBytes: 3000, RxBytes: 6000})

	tx, rx = h.Rates(2)
	assert.Equal(t, float64(1000), tx)
	assert.Equal(t, float64(2000), rx)

	// Zero interval yields no rate
	tx, rx = h.Rates(0)
	assert.Zero(t, tx)
	assert.Zero(t, rx)
}

func TestHistoryRatesCounterReset(t *testing.T) {
	h := NewHistory(10)
	h.Push(&Snapshot{TxBytes: 5000, RxBytes: 5000})
	h.Push(&Snapshot{TxBytes: 100, RxBytes: 100})

	tx, rx := h.Rates(1)
	assert.Zero(t, tx)
	assert.Zero(t, rx)
}
