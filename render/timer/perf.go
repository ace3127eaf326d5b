package timer

import (
	"fx3d/render/fault"
	"fx3d/render/fx"
)

const MaxPerfEntries = 16

type perfEntry struct {
	name  string
	timer Timer
	last  fx.Fixed12
}

// Registry holds named performance timers. Start/End pairs accumulate into
// an entry until Gather snapshots and rewinds every entry, once per frame.
type Registry struct {
	src     Counter
	entries [MaxPerfEntries]perfEntry
	n       int
}

func NewRegistry(src Counter) *Registry {
	return &Registry{src: src}
}

// Register adds an entry and returns its id. Registering more than
// MaxPerfEntries entries is a fault.
func (r *Registry) Register(name string) int {
	fault.Check(r.n < MaxPerfEntries, "timer.Registry.Register: n < MaxPerfEntries")
	id := r.n
	r.entries[id] = perfEntry{name: name, timer: New(r.src, MaxDuration, Perf)}
	r.n++
	return id
}

func (r *Registry) Len() int { return r.n }

func (r *Registry) Start(id int) {
	fault.Check(id >= 0 && id < r.n, "timer.Registry.Start: id registered")
	r.entries[id].timer.Resume()
}

func (r *Registry) End(id int) {
	fault.Check(id >= 0 && id < r.n, "timer.Registry.End: id registered")
	t := &r.entries[id].timer
	t.Tick()
	t.Stop()
}

// Gather records what every entry accumulated since the previous Gather.
func (r *Registry) Gather() {
	for i := 0; i < r.n; i++ {
		e := &r.entries[i]
		e.last = e.timer.Seconds()
		e.timer.Rewind()
	}
}

func (r *Registry) Name(id int) string { return r.entries[id].name }

// Seconds returns the gathered time of entry id as .12 seconds.
func (r *Registry) Seconds(id int) fx.Fixed12 { return r.entries[id].last }

// Each calls fn for every entry in registration order.
func (r *Registry) Each(fn func(id int, name string, sec fx.Fixed12)) {
	for i := 0; i < r.n; i++ {
		fn(i, r.entries[i].name, r.entries[i].last)
	}
}
