package wifi

import "sync"

// DefaultHistorySize is the default number of snapshots to retain.
const DefaultHistorySize = 60

// History is a fixed-size ring buffer of snapshots. It provides the
// sample pairs needed for throughput rates without letting memory grow
// with process lifetime.
type History struct {
	mu        sync.RWMutex
	snapshots []*Snapshot
	head      int
	count     int
	size      int
}

// NewHistory creates a snapshot history with the given capacity.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		snapshots: make([]*Snapshot, size),
		size:      size,
	}
}

// Push adds a snapshot. Nil snapshots are ignored.
func (h *History) Push(s *Snapshot) {
	if s == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	h.snapshots[h.head] = s
	h.head = (h.head + 1) % h.size
	if h.count < h.size {
		h.count++
	}
}

// Count returns the number of stored snapshots.
func (h *History) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

// Last returns up to n snapshots in chronological order (oldest first).
func (h *History) Last(n int) []*Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if n <= 0 || h.count == 0 {
		return nil
	}
	if n > h.count {
		n = h.count
	}

	result := make([]*Snapshot, n)
	// head points at the next write slot, so the newest entry is head-1.
	start := (h.head - n + h.size) % h.size
	for i := 0; i < n; i++ {
		result[i] = h.snapshots[(start+i)%h.size]
	}
	return result
}

// Rates derives per-second transmit and receive byte rates from the two
// most recent snapshots. Returns zeros until two snapshots are available
// or when intervalSec is not positive.
func (h *History) Rates(intervalSec float64) (txPerSec, rxPerSec float64) {
	if intervalSec <= 0 {
		return 0, 0
	}

	last := h.Last(2)
	if len(last) < 2 {
		return 0, 0
	}

	tx, rx := last[1].CalculateRate(last[0])
	return float64(tx) / intervalSec, float64(rx) / intervalSec
}
