package utils

import (
	"fmt"
	"time"
)

// Timer accumulates elapsed wall-clock time across possibly multiple
// start/stop spans, for the phase timings morphos-bench reports.
type Timer struct {
	startedAt time.Time
	running   bool
	elapsed   time.Duration
}

// NewTimer returns a stopped, zeroed Timer.
func NewTimer() *Timer { return &Timer{} }

// Start begins a new span. Calling Start while already running is a no-op.
func (t *Timer) Start() {
	if t.running {
		return
	}
	t.startedAt = time.Now()
	t.running = true
}

// Stop ends the current span and folds it into the accumulated duration.
func (t *Timer) Stop() {
	if !t.running {
		return
	}
	t.elapsed += time.Since(t.startedAt)
	t.running = false
}

// Reset clears the accumulated duration and stops the timer.
func (t *Timer) Reset() {
	t.running = false
	t.elapsed = 0
}

// Elapsed returns the accumulated duration across every completed span.
func (t *Timer) Elapsed() time.Duration { return t.elapsed }

func (t *Timer) String() string { return fmt.Sprintf("%s", t.elapsed) }
