package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// meter wraps a beep.Streamer and records the amplitude of the last N
// samples into a ring buffer so the renderer can react to what is audible.
type meter struct {
	Source    beep.Streamer
	buffer    []float64
	nextIndex int
	mu        sync.RWMutex
}

func newMeter(src beep.Streamer, ringSize int) *meter {
	return &meter{
		Source: src,
		buffer: make([]float64, ringSize),
	}
}

func (m *meter) Stream(samples [][2]float64) (int, bool) {
	n, ok := m.Source.Stream(samples)
	if n > 0 {
		m.mu.Lock()
		for i := 0; i < n; i++ {
			m.buffer[m.nextIndex] = math.Max(math.Abs(samples[i][0]), math.Abs(samples[i][1]))
			m.nextIndex++
			if m.nextIndex >= len(m.buffer) {
				m.nextIndex = 0
			}
		}
		m.mu.Unlock()
	}
	return n, ok
}

func (m *meter) Err() error { return m.Source.Err() }

// peak returns the largest amplitude among the last n samples.
func (m *meter) peak(n int) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if n > len(m.buffer) {
		n = len(m.buffer)
	}
	var p float64
	idx := m.nextIndex - 1
	for i := 0; i < n; i++ {
		if idx < 0 {
			idx = len(m.buffer) - 1
		}
		p = math.Max(p, m.buffer[idx])
		idx--
	}
	return p
}
