package debounce

import (
	"sort"
	"sync"
	"testing"
	"time"
)

type fakeTimer struct {
	clock   *fakeClock
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, at: c.now + d, fn: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward and runs every due timer in order.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.at <= c.now {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()
	sort.Slice(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, t := range due {
		t.fn()
	}
}

type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) record(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, v)
}

func (r *recorder) get() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func TestDebouncer_CoalescesTyping(t *testing.T) {
	clock := &fakeClock{}
	rec := &recorder{}
	d := New(DefaultDelay, rec.record, WithClock(clock))

	d.Input("a")
	clock.Advance(100 * time.Millisecond)
	d.Input("ab")
	clock.Advance(100 * time.Millisecond)
	d.Input("abc")
	clock.Advance(499 * time.Millisecond)
	if got := rec.get(); len(got) != 0 {
		t.Fatalf("expected no call before quiet period, got %v", got)
	}

	clock.Advance(time.Millisecond)
	got := rec.get()
	if len(got) != 1 || got[0] != "abc" {
		t.Fatalf("expected exactly one call with abc, got %v", got)
	}

	clock.Advance(5 * time.Second)
	if got := rec.get(); len(got) != 1 {
		t.Fatalf("expected no extra calls, got %v", got)
	}
}

func TestDebouncer_EnterBypassesDelay(t *testing.T) {
	clock := &fakeClock{}
	rec := &recorder{}
	d := New(DefaultDelay, rec.record, WithClock(clock))

	d.Input("j")
	clock.Advance(50 * time.Millisecond)
	d.Input("ju")
	d.Submit()

	got := rec.get()
	if len(got) != 1 || got[0] != "ju" {
		t.Fatalf("expected immediate call with ju, got %v", got)
	}

	d.Input("jua")
	clock.Advance(DefaultDelay)
	got = rec.get()
	if len(got) != 2 || got[1] != "jua" {
		t.Fatalf("expected debounced call after enter, got %v", got)
	}
}

func TestDebouncer_Stop(t *testing.T) {
	clock := &fakeClock{}
	rec := &recorder{}
	d := New(0, rec.record, WithClock(clock))

	d.Input("x")
	d.Stop()
	clock.Advance(time.Second)
	d.Input("y")
	d.Submit()
	clock.Advance(time.Second)

	if got := rec.get(); len(got) != 0 {
		t.Fatalf("expected no calls after stop, got %v", got)
	}
	if d.Current() != "x" {
		t.Fatalf("expected current to stay x, got %q", d.Current())
	}
}
