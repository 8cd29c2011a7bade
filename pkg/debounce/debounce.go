// Package debounce runs a function once a burst of triggers has gone quiet.
package debounce

import (
	"sync"
	"time"
)

// Debouncer coalesces calls to Trigger into one run of fn that happens
// after delay has passed without a new trigger. Every trigger bumps a
// generation so a timer that was already firing when it got reset does
// not run stale work.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func()
	timer   *time.Timer
	gen     uint64
	pending bool
	running int
	done    *sync.Cond
}

func New(delay time.Duration, fn func()) *Debouncer {
	d := &Debouncer{delay: delay, fn: fn}
	d.done = sync.NewCond(&d.mu)
	return d
}

// Trigger (re)starts the idle window.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen
	d.pending = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || !d.pending {
		d.mu.Unlock()
		return
	}
	d.pending = false
	d.timer = nil
	d.running++
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.running--
		d.done.Broadcast()
		d.mu.Unlock()
	}()
	d.fn()
}

// Wait blocks until a run started by the timer has returned.
func (d *Debouncer) Wait() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for d.running > 0 {
		d.done.Wait()
	}
}

// Cancel drops the pending run. It reports whether one was pending.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	was := d.pending
	d.pending = false
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	return was
}

// Flush runs the pending work now, on the caller's goroutine.
func (d *Debouncer) Flush() bool {
	if !d.Cancel() {
		return false
	}
	d.fn()
	return true
}

func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

func (d *Debouncer) Delay() time.Duration {
	return d.delay
}
