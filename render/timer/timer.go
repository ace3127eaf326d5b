// Package timer measures time with free-running 16-bit counters.
//
// A regular counter ticks at 4096 Hz, so its raw value is already .12 fixed
// point seconds and wraps every 16 seconds. A performance counter ticks at
// 65536 Hz and wraps every second; its values are shifted down by 4 to get
// seconds.
package timer

import "fx3d/render/fx"

const (
	RegularHz = 4096
	PerfHz    = 65536
)

// MaxDuration is the longest duration a timer can run: a little over six
// days of regular ticks. Time saturates there and the timer is done.
const MaxDuration fx.Fixed12 = 0x7FFFFFFF

// Counter is a free-running 16-bit hardware counter.
type Counter interface {
	Count() uint16
}

type Kind uint8

const (
	Regular Kind = iota
	Perf
)

func (k Kind) shift() uint {
	if k == Perf {
		return 4
	}
	return 0
}

// Timer accumulates counter ticks while running. Tick must be called more
// often than the counter wraps: every frame for regular timers.
type Timer struct {
	kind     Kind
	src      Counter
	prev     uint16
	time     fx.Fixed12
	delta    fx.Fixed12
	duration fx.Fixed12
	stopped  bool
	done     bool
}

// New returns a stopped timer that is done after duration ticks.
func New(src Counter, duration fx.Fixed12, kind Kind) Timer {
	return Timer{kind: kind, src: src, duration: duration, stopped: true}
}

func (t *Timer) Start() {
	t.prev = t.src.Count()
	t.time = 0
	t.stopped = false
	t.done = false
}

func (t *Timer) Stop() { t.stopped = true }

func (t *Timer) Resume() {
	t.stopped = false
	t.prev = t.src.Count()
}

func (t *Timer) Rewind() { t.time = 0 }

func (t *Timer) Tick() {
	if t.stopped || t.done {
		return
	}
	now := t.src.Count()
	// Modular difference handles a single wrap of the counter.
	t.delta = fx.Fixed12(uint16(now - t.prev))
	if t.delta >= t.duration-t.time {
		t.time = t.duration
	} else {
		t.time += t.delta
	}
	t.prev = now
	if t.time >= t.duration {
		t.done = true
		t.stopped = true
	}
}

func (t *Timer) Done() bool    { return t.done }
func (t *Timer) Stopped() bool { return t.stopped }

// Time is the accumulated time in counter ticks.
func (t *Timer) Time() fx.Fixed12 { return t.time }

// Delta is the number of ticks seen by the last Tick.
func (t *Timer) Delta() fx.Fixed12 { return t.delta }

// Seconds returns the accumulated time as .12 seconds.
func (t *Timer) Seconds() fx.Fixed12 { return t.time >> t.kind.shift() }

// DeltaSeconds returns the last tick's delta as .12 seconds.
func (t *Timer) DeltaSeconds() fx.Fixed12 { return t.delta >> t.kind.shift() }
