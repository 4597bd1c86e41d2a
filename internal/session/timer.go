// Package session implements the typing session engine: the timer, the
// per-keystroke input tracker, the metrics calculator, and the state machine
// that ties them together. The engine is polled by the surrounding event loop
// and never owns a goroutine of its own.
package session

import (
	"errors"
	"time"
)

// ErrAlreadyStarted reports a second Start call on the same timer.
var ErrAlreadyStarted = errors.New("timer already started")

// Timer tracks elapsed time since session start. It is polled, not observed:
// callers ask for Elapsed/Remaining whenever they need a reading.
type Timer struct {
	now     func() time.Time
	startAt time.Time
	started bool
}

// NewTimer returns a timer driven by time.Now.
func NewTimer() *Timer {
	return newTimer(time.Now)
}

func newTimer(now func() time.Time) *Timer {
	return &Timer{now: now}
}

// Start records the reference instant. A second call is a misuse and fails.
func (t *Timer) Start() error {
	if t.started {
		return ErrAlreadyStarted
	}
	t.started = true
	t.startAt = t.now()
	return nil
}

// Started reports whether Start has been called.
func (t *Timer) Started() bool {
	return t.started
}

// Elapsed returns the time since Start, or zero before Start.
func (t *Timer) Elapsed() time.Duration {
	if !t.started {
		return 0
	}
	return t.now().Sub(t.startAt)
}

// Remaining returns limit minus elapsed, clamped at zero.
func (t *Timer) Remaining(limit time.Duration) time.Duration {
	rem := limit - t.Elapsed()
	if rem < 0 {
		return 0
	}
	return rem
}
