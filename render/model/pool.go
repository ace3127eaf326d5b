package model

import (
	"fx3d/render/fault"
	"fx3d/render/fx"
)

// InstanceID names a pool slot. It stays valid until the instance is
// removed.
type InstanceID int32

const noSlot InstanceID = -1

// Instance is a posed reference to a shared model.
type Instance struct {
	Model            *Model
	Pos              fx.Vec3
	Scale            fx.Vec3
	Yaw, Pitch, Roll fx.Angle
	Shading          Shading
}

// slot is either empty, carrying the next free slot, or occupied, carrying
// the instance. The two payloads never share storage.
type slot struct {
	occupied bool
	next     InstanceID
	inst     Instance
}

// Pool is a fixed-capacity arena of instances with an index free list. All
// slots are allocated up front; Add and Remove are O(1).
type Pool struct {
	slots     []slot
	firstFree InstanceID
	count     int
}

func NewPool(capacity int) *Pool {
	fault.Check(capacity > 0, "model.NewPool: capacity > 0")
	p := &Pool{slots: make([]slot, capacity)}
	p.Reset()
	return p
}

// Reset empties the pool and rechains every slot into the free list.
func (p *Pool) Reset() {
	for i := range p.slots {
		next := InstanceID(i + 1)
		if i == len(p.slots)-1 {
			next = noSlot
		}
		p.slots[i] = slot{next: next}
	}
	p.firstFree = 0
	p.count = 0
}

func (p *Pool) Count() int { return p.count }
func (p *Pool) Cap() int   { return len(p.slots) }

// Add places a new instance. Adding to a full pool is a fault.
func (p *Pool) Add(m *Model, pos, scale fx.Vec3, yaw, pitch, roll fx.Angle, shading Shading) InstanceID {
	fault.Check(p.firstFree != noSlot, "model.Pool.Add: pool not full")
	fault.Check(m != nil, "model.Pool.Add: model != nil")
	id := p.firstFree
	s := &p.slots[id]
	p.firstFree = s.next
	*s = slot{
		occupied: true,
		next:     noSlot,
		inst: Instance{
			Model:   m,
			Pos:     pos,
			Scale:   scale,
			Yaw:     yaw,
			Pitch:   pitch,
			Roll:    roll,
			Shading: shading,
		},
	}
	p.count++
	return id
}

// AddUniform adds an unrotated instance with the same scale on every axis.
func (p *Pool) AddUniform(m *Model, pos fx.Vec3, scale fx.Fixed, shading Shading) InstanceID {
	return p.Add(m, pos, fx.V3(scale, scale, scale), 0, 0, 0, shading)
}

// Remove frees the slot of id. Removing from an empty pool, or removing a
// slot that is already free, is a fault.
func (p *Pool) Remove(id InstanceID) {
	fault.Check(p.count > 0, "model.Pool.Remove: pool not empty")
	fault.Check(id >= 0 && int(id) < len(p.slots), "model.Pool.Remove: id in range")
	s := &p.slots[id]
	fault.Check(s.occupied, "model.Pool.Remove: slot occupied")
	*s = slot{next: p.firstFree}
	p.firstFree = id
	p.count--
}

// Get returns the live instance for id. Asking for a free slot is a fault.
func (p *Pool) Get(id InstanceID) *Instance {
	fault.Check(id >= 0 && int(id) < len(p.slots), "model.Pool.Get: id in range")
	s := &p.slots[id]
	fault.Check(s.occupied, "model.Pool.Get: slot occupied")
	return &s.inst
}

// At returns slot i and whether it holds an instance. It is the
// allocation-free way to walk every slot.
func (p *Pool) At(i int) (*Instance, bool) {
	s := &p.slots[i]
	if !s.occupied {
		return nil, false
	}
	return &s.inst, true
}

// Each calls fn for every live instance in slot order.
func (p *Pool) Each(fn func(InstanceID, *Instance)) {
	for i := range p.slots {
		if p.slots[i].occupied {
			fn(InstanceID(i), &p.slots[i].inst)
		}
	}
}
