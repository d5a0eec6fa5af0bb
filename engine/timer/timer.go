// Package timer provides a pausable stopwatch.
package timer

import (
	"sync"
	"time"
)

type timer struct {
	mu  *sync.Mutex
	now func() time.Time

	running   bool
	startedAt time.Time
	banked    time.Duration
}

// Timer accumulates running time across Start/Stop pairs.
type Timer interface {
	// Start resumes counting. Starting a running timer does nothing.
	Start()

	// Stop pauses counting. Stopping a stopped timer does nothing.
	Stop()

	// Reset zeroes the accumulated time, keeping the running state.
	Reset()

	// Running reports whether the timer is counting.
	Running() bool

	// Elapsed returns the accumulated running time in seconds.
	Elapsed() float32

	// Duration returns the accumulated running time.
	Duration() time.Duration
}

var _ Timer = &timer{}

// NewTimer creates a stopped Timer at zero.
//
// Parameters:
//   - options: functional options to configure the timer
//
// Returns:
//   - Timer: the newly created timer
func NewTimer(options ...TimerBuilderOption) Timer {
	t := &timer{
		mu:  &sync.Mutex{},
		now: time.Now,
	}
	for _, option := range options {
		option(t)
	}
	return t
}

func (t *timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return
	}
	t.running = true
	t.startedAt = t.now()
}

func (t *timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return
	}
	t.banked += t.now().Sub(t.startedAt)
	t.running = false
}

func (t *timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.banked = 0
	t.startedAt = t.now()
}

func (t *timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

func (t *timer) Elapsed() float32 {
	return float32(t.Duration().Seconds())
}

func (t *timer) Duration() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	d := t.banked
	if t.running {
		d += t.now().Sub(t.startedAt)
	}
	return d
}

// TimerBuilderOption is a functional option for configuring a Timer.
type TimerBuilderOption func(*timer)

// WithClock replaces the time source.
//
// Parameters:
//   - now: returns the current time
//
// Returns:
//   - TimerBuilderOption: functional option to set the clock
func WithClock(now func() time.Time) TimerBuilderOption {
	return func(t *timer) {
		t.now = now
	}
}

// WithRunning starts the timer on construction.
func WithRunning() TimerBuilderOption {
	return func(t *timer) {
		t.running = true
		t.startedAt = t.now()
	}
}
