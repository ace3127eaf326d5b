package hal

import (
	"time"

	"fx3d/render/timer"
)

// elapsedClock derives both 16-bit counters from a monotonic elapsed time.
type elapsedClock struct {
	since func() time.Duration
}

func (c elapsedClock) Regular() timer.Counter { return elapsedCounter{c.since, timer.RegularHz} }
func (c elapsedClock) Perf() timer.Counter    { return elapsedCounter{c.since, timer.PerfHz} }

type elapsedCounter struct {
	since func() time.Duration
	hz    int64
}

// Count is the number of hz periods in the elapsed time, modulo 2^16.
func (c elapsedCounter) Count() uint16 {
	return ticksAt(c.since(), c.hz)
}

func ticksAt(d time.Duration, hz int64) uint16 {
	sec := int64(d / time.Second)
	rem := int64(d % time.Second)
	return uint16(sec*hz + rem*hz/int64(time.Second))
}

// realClock follows the wall clock from the moment it is created.
func realClock() elapsedClock {
	start := time.Now()
	return elapsedClock{since: func() time.Duration { return time.Since(start) }}
}
