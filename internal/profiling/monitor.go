package profiling

import (
	"sync"
	"time"
)

// Health classifies the simulation loop's recent performance against
// its tick budget.
type Health int

const (
	HealthGood Health = iota
	HealthDegraded
	HealthCritical
)

func (h Health) String() string {
	switch h {
	case HealthGood:
		return "good"
	case HealthDegraded:
		return "degraded"
	case HealthCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Monitor keeps a fixed-capacity rolling window of per-tick physics
// durations and classifies loop health against a tick budget.
type Monitor struct {
	mu      sync.Mutex
	budget  time.Duration
	samples []time.Duration
	next    int
	count   int
}

// NewMonitor creates a monitor with the given window size and per-tick
// time budget.
func NewMonitor(window int, budget time.Duration) *Monitor {
	if window < 1 {
		window = 1
	}
	return &Monitor{budget: budget, samples: make([]time.Duration, window)}
}

// Record adds one tick duration, evicting the oldest sample once the
// window is full.
func (m *Monitor) Record(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.samples[m.next] = d
	m.next = (m.next + 1) % len(m.samples)
	if m.count < len(m.samples) {
		m.count++
	}
}

// Average returns the mean duration over the window.
func (m *Monitor) Average() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.count == 0 {
		return 0
	}
	var sum time.Duration
	for i := 0; i < m.count; i++ {
		sum += m.samples[i]
	}
	return sum / time.Duration(m.count)
}

// Worst returns the largest duration in the window.
func (m *Monitor) Worst() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	var worst time.Duration
	for i := 0; i < m.count; i++ {
		if m.samples[i] > worst {
			worst = m.samples[i]
		}
	}
	return worst
}

// Health classifies the window: good while the average fits the
// budget, degraded up to twice the budget, critical beyond that.
func (m *Monitor) Health() Health {
	avg := m.Average()
	switch {
	case avg <= m.budget:
		return HealthGood
	case avg <= 2*m.budget:
		return HealthDegraded
	default:
		return HealthCritical
	}
}
