package server

import (
	"time"

	"voxphys/internal/config"
)

// TickPacer provides high-precision tick pacing for the simulation
// loop. Uses a hybrid sleep/spin approach for better precision at high
// tick rates.
type TickPacer struct {
	next time.Time
}

// NewTickPacer creates a pacer; the first Wait establishes the cadence.
func NewTickPacer() *TickPacer {
	return &TickPacer{}
}

// Wait blocks until the next tick is due according to the configured
// tick rate.
func (p *TickPacer) Wait() {
	rate := config.GetTickRate()
	if rate <= 0 {
		p.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(rate)

	if p.next.IsZero() {
		p.next = time.Now().Add(target)
	} else {
		p.next = p.next.Add(target)
	}

	for {
		remaining := time.Until(p.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		// busy-wait for the final few microseconds
		if time.Until(p.next) <= 0 {
			break
		}
	}

	// If we're significantly late (e.g., hitch), resync to avoid drift
	if late := -time.Until(p.next); late > target {
		p.next = time.Now().Add(target)
	}
}
