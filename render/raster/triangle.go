package raster

import (
	"fx3d/render/fault"
	"fx3d/render/fx"
	"fx3d/render/geom"
	"fx3d/render/model"
)

const (
	// MaxTriangles is the per-frame triangle budget.
	MaxTriangles = 512
	// OTSize is the number of depth buckets.
	OTSize = 512
)

// Triangle is a projected face ready to be drawn.
type Triangle struct {
	Vert    [3]geom.Point
	Color   geom.Color
	Shading model.Shading
	// Depth is the camera-space Z of the face's first vertex; it stands in
	// for the centroid.
	Depth fx.Fixed

	next int32
}

// Bucket maps a camera-space depth to its ordering table slot. Depths are
// quantised to half units.
func Bucket(z fx.Fixed) int {
	return int(fx.Abs(z) >> (fx.Shift - 1))
}

// OrderingTable buckets the frame's triangles by depth so they can be drawn
// back to front without sorting. Triangles in the same bucket are drawn in
// no particular order.
type OrderingTable struct {
	tris  [MaxTriangles]Triangle
	n     int
	heads [OTSize]int32
}

func NewOrderingTable() *OrderingTable {
	ot := &OrderingTable{}
	ot.Clear()
	return ot
}

// Clear drops every triangle. It is called once at the start of a frame.
func (ot *OrderingTable) Clear() {
	for i := range ot.heads {
		ot.heads[i] = -1
	}
	ot.n = 0
}

func (ot *OrderingTable) Len() int { return ot.n }

// Insert copies t into the frame's triangle buffer and links it into its
// depth bucket. Exceeding MaxTriangles or the table depth is a fault.
func (ot *OrderingTable) Insert(t *Triangle) {
	fault.Check(ot.n < MaxTriangles, "raster.OrderingTable.Insert: count < MaxTriangles")
	idx := Bucket(t.Depth)
	fault.Check(idx >= 0 && idx < OTSize, "raster.OrderingTable.Insert: idx < OTSize")
	slot := &ot.tris[ot.n]
	*slot = *t
	slot.next = ot.heads[idx]
	ot.heads[idx] = int32(ot.n)
	ot.n++
}

// Walk visits every triangle from the farthest bucket to the nearest. It
// does not modify the table.
func (ot *OrderingTable) Walk(fn func(t *Triangle)) {
	left := ot.n
	for i := OTSize - 1; i >= 0 && left > 0; i-- {
		for j := ot.heads[i]; j >= 0; j = ot.tris[j].next {
			fn(&ot.tris[j])
			left--
		}
	}
}
