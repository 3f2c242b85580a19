// Package debounce coalesces rapid input into a single callback.
//
// Every search box in the back-office uses the same Debouncer so the delay and
// the Enter bypass behave identically everywhere.
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period after the last keystroke before a search fires.
const DefaultDelay = 500 * time.Millisecond

// Timer is the subset of *time.Timer the Debouncer needs.
type Timer interface {
	Stop() bool
}

// Clock schedules delayed callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type Option func(*Debouncer)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c Clock) Option {
	return func(d *Debouncer) { d.clock = c }
}

// Debouncer calls fn with the latest input once no new input arrived for delay.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func(string)
	clock   Clock
	timer   Timer
	seq     uint64
	current string
	stopped bool
}

func New(delay time.Duration, fn func(string), opts ...Option) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	d := &Debouncer{delay: delay, fn: fn, clock: realClock{}}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Input records a new value and restarts the quiet period.
func (d *Debouncer) Input(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.current = value
	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.timer = d.clock.AfterFunc(d.delay, func() { d.fire(seq) })
}

// Submit fires immediately with the current value (the Enter key).
// A pending debounced call is not cancelled.
func (d *Debouncer) Submit() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	value := d.current
	d.mu.Unlock()
	d.fn(value)
}

// Current returns the latest input.
func (d *Debouncer) Current() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// Stop cancels any pending call; later input is ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) fire(seq uint64) {
	d.mu.Lock()
	// a timer that lost the race with a newer Input must not fire
	if d.stopped || seq != d.seq {
		d.mu.Unlock()
		return
	}
	value := d.current
	d.timer = nil
	d.mu.Unlock()
	d.fn(value)
}
